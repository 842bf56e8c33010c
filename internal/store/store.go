package store

import (
	"context"

	"simplified/internal/model"
)

// LectureStore is the document-store adapter for lecture records. Records are
// keyed by an opaque id assigned on creation.
type LectureStore interface {
	// Create persists a new record with empty artifact fields.
	Create(ctx context.Context, userID, transcription string) (*model.Lecture, error)

	// GetByID returns the record or a NotFound error.
	GetByID(ctx context.Context, id string) (*model.Lecture, error)

	// LatestByUser returns the user's most recent record by creation time,
	// or NotFound when the user has none.
	LatestByUser(ctx context.Context, userID string) (*model.Lecture, error)

	// ListByUser returns all of the user's records, newest first.
	ListByUser(ctx context.Context, userID string) ([]model.Lecture, error)

	// UpdateFields applies a partial column update and bumps updatedAt.
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*model.Lecture, error)

	// SetArtifacts writes all four artifact fields, the processing duration
	// and updatedAt as one atomic update.
	SetArtifacts(ctx context.Context, id string, arts model.ArtifactSet, processingSeconds float64) (*model.Lecture, error)

	// Delete removes the record or returns NotFound.
	Delete(ctx context.Context, id string) error
}
