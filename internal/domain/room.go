package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateDisplayFormat is how timestamps are presented to clients and printed
// in brochures.
const DateDisplayFormat = "02/01/2006"

// Room is a hotel room's marketing record as managed by the admin dashboard.
// Image and PDF hold stored file names, not URLs; the API layer composes the
// public paths. Image is set once at creation and never replaced, PDF is
// replaced on every successful brochure render.
type Room struct {
	ID          uuid.UUID
	Title       string
	Description string
	Facilities  []string
	Image       string
	PDF         string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewRoom constructs a room with a generated identifier and equal
// created/updated timestamps.
func NewRoom(title, description string, facilities []string, image string) *Room {
	now := time.Now().UTC()
	return &Room{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Facilities:  CleanFacilities(facilities),
		Image:       image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CleanFacilities trims each entry and preserves submitted order. Duplicates
// and blanks that survive trimming are the caller's responsibility.
func CleanFacilities(facilities []string) []string {
	cleaned := make([]string, 0, len(facilities))
	for _, f := range facilities {
		cleaned = append(cleaned, strings.TrimSpace(f))
	}
	return cleaned
}

// ValidationError reports a rejected input field. Requests failing validation
// never reach the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
