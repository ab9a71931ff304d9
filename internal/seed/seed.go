// Package seed preloads dummy room records for local development.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/hotelops/roomadmin/internal/domain"
	"github.com/hotelops/roomadmin/internal/repository"
	"github.com/hotelops/roomadmin/lib/logger/sl"
)

type Room struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Facilities  []string `json:"facilities"`
	Image       string   `json:"image"`
}

// Load applies the rooms from path, skipping entries without a title and
// entries whose title is already present.
func Load(ctx context.Context, path string, rooms repository.RoomRepository, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var entries []Room
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.Title == "" {
			log.Warn("seed entry without title skipped")
			continue
		}

		exists, err := rooms.TitleExists(ctx, entry.Title, uuid.Nil)
		if err != nil {
			return fmt.Errorf("seed title lookup: %w", err)
		}
		if exists {
			continue
		}

		room := domain.NewRoom(entry.Title, entry.Description, entry.Facilities, entry.Image)
		if err := rooms.Create(ctx, room); err != nil {
			log.Warn("seed room failed", slog.String("title", entry.Title), sl.Err(err))
			continue
		}
		loaded++
	}

	log.Info("seed applied", slog.Int("loaded", loaded), slog.Int("total", len(entries)))
	return nil
}
