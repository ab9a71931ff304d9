// Package pdf renders room brochures through the pdfcpu engine.
package pdf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Brochure carries the room field values a render is based on. ImagePath is a
// local filesystem path and may be empty for rooms without an image.
type Brochure struct {
	Title       string
	Description string
	Facilities  []string
	ImagePath   string
	CreatedAt   string
	Year        int
}

type Renderer interface {
	Render(ctx context.Context, b Brochure) ([]byte, error)
}

// BrochureRenderer builds a pdfcpu page declaration from the brochure fields
// and runs the engine with a bounded timeout. The engine has no context
// plumbing, so an expired deadline abandons the run rather than cancelling it.
type BrochureRenderer struct {
	timeout time.Duration
	log     *slog.Logger
}

func NewBrochureRenderer(timeout time.Duration, log *slog.Logger) *BrochureRenderer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &BrochureRenderer{timeout: timeout, log: log}
}

func (r *BrochureRenderer) Render(ctx context.Context, b Brochure) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	decl, err := json.Marshal(buildDeclaration(b))
	if err != nil {
		return nil, fmt.Errorf("marshal brochure declaration: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		conf := model.NewDefaultConfiguration()
		if err := api.Create(nil, bytes.NewReader(decl), &buf, conf); err != nil {
			done <- result{nil, fmt.Errorf("pdfcpu create: %w", err)}
			return
		}
		done <- result{buf.Bytes(), nil}
	}()

	select {
	case <-ctx.Done():
		r.log.Warn("brochure render abandoned", "title", b.Title, "timeout", r.timeout)
		return nil, ctx.Err()
	case res := <-done:
		return res.data, res.err
	}
}

// pdfcpu "create" declaration types, trimmed to the features the brochure
// layout uses.
type declaration struct {
	Paper  string          `json:"paper"`
	Origin string          `json:"origin"`
	Pages  map[string]page `json:"pages"`
}

type page struct {
	Content content `json:"content"`
}

type content struct {
	Text   []textBox  `json:"text,omitempty"`
	Images []imageBox `json:"image,omitempty"`
}

type font struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type textBox struct {
	Value  string  `json:"value"`
	Anchor string  `json:"anchor,omitempty"`
	Dx     float64 `json:"dx,omitempty"`
	Dy     float64 `json:"dy,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Font   font    `json:"font"`
}

type imageBox struct {
	Src    string  `json:"src"`
	Anchor string  `json:"anchor,omitempty"`
	Dx     float64 `json:"dx,omitempty"`
	Dy     float64 `json:"dy,omitempty"`
	Width  float64 `json:"width,omitempty"`
}

func buildDeclaration(b Brochure) declaration {
	const margin = 48

	text := []textBox{
		{
			Value:  b.Title,
			Anchor: "tl",
			Dx:     margin,
			Dy:     margin,
			Font:   font{Name: "Helvetica-Bold", Size: 26},
		},
		{
			Value:  "Listed since " + b.CreatedAt,
			Anchor: "tl",
			Dx:     margin,
			Dy:     margin + 34,
			Font:   font{Name: "Helvetica-Oblique", Size: 10},
		},
	}

	y := float64(margin + 64)

	if b.ImagePath != "" {
		y += 270
	}

	if b.Description != "" {
		text = append(text, textBox{
			Value:  b.Description,
			Anchor: "tl",
			Dx:     margin,
			Dy:     y,
			Width:  500,
			Font:   font{Name: "Helvetica", Size: 12},
		})
		y += 60
	}

	if len(b.Facilities) > 0 {
		text = append(text, textBox{
			Value:  "Facilities",
			Anchor: "tl",
			Dx:     margin,
			Dy:     y,
			Font:   font{Name: "Helvetica-Bold", Size: 14},
		})
		y += 24
		for _, f := range b.Facilities {
			text = append(text, textBox{
				Value:  "• " + f,
				Anchor: "tl",
				Dx:     margin + 12,
				Dy:     y,
				Font:   font{Name: "Helvetica", Size: 12},
			})
			y += 18
		}
	}

	text = append(text, textBox{
		Value:  fmt.Sprintf("© %d", b.Year),
		Anchor: "bc",
		Dy:     -24,
		Font:   font{Name: "Helvetica", Size: 9},
	})

	var images []imageBox
	if b.ImagePath != "" {
		images = append(images, imageBox{
			Src:    b.ImagePath,
			Anchor: "tl",
			Dx:     margin,
			Dy:     margin + 64,
			Width:  500,
		})
	}

	return declaration{
		Paper:  "A4",
		Origin: "upperLeft",
		Pages: map[string]page{
			"1": {Content: content{Text: text, Images: images}},
		},
	}
}
