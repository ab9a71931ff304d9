package storage

import (
	"context"
	"io"
)

// Asset kinds, also the sub-directory each kind is stored under.
const (
	KindImage = "images"
	KindPDF   = "pdfs"
)

// AssetStore persists uploaded images and generated brochures. Save derives
// the stored file name from prefix and mimeType and returns it; that name is
// what room records reference.
type AssetStore interface {
	Save(ctx context.Context, kind, prefix, mimeType string, r io.Reader) (string, error)
	Open(ctx context.Context, kind, name string) (io.ReadCloser, error)
	// Path returns the location of a stored asset on the local filesystem,
	// for collaborators that need direct file access (the PDF renderer).
	Path(kind, name string) (string, error)
	Delete(ctx context.Context, kind, name string) error
}
