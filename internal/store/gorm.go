package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"simplified/internal/apperr"
	"simplified/internal/logger"
	"simplified/internal/model"
)

// GormStore persists lectures through gorm, backed by Postgres when a
// DATABASE_URL is configured and a local SQLite file otherwise.
type GormStore struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewGormStore opens the database connection and migrates the lectures table.
func NewGormStore(databaseURL, sqlitePath string, log *logger.Logger) (*GormStore, error) {
	var dialector gorm.Dialector
	if databaseURL != "" {
		log.Info("connecting to postgres")
		dialector = postgres.Open(databaseURL)
	} else {
		log.Info("DATABASE_URL not set, using local sqlite store", "path", sqlitePath)
		if dir := filepath.Dir(sqlitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite directory: %w", err)
			}
		}
		dialector = sqlite.Open(sqlitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open lecture store: %w", err)
	}
	if err := db.AutoMigrate(&model.Lecture{}); err != nil {
		return nil, fmt.Errorf("migrate lectures table: %w", err)
	}

	return &GormStore{db: db, log: log.With("component", "store")}, nil
}

func (s *GormStore) Create(ctx context.Context, userID, transcription string) (*model.Lecture, error) {
	now := time.Now().UTC()
	lec := &model.Lecture{
		ID:            uuid.NewString(),
		UserID:        userID,
		Transcription: transcription,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.db.WithContext(ctx).Create(lec).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "store.Create", err)
	}
	return lec, nil
}

func (s *GormStore) GetByID(ctx context.Context, id string) (*model.Lecture, error) {
	var lec model.Lecture
	err := s.db.WithContext(ctx).First(&lec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.KindNotFound, "store.GetByID", "lecture not found: "+id)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "store.GetByID", err)
	}
	return &lec, nil
}

func (s *GormStore) LatestByUser(ctx context.Context, userID string) (*model.Lecture, error) {
	var lec model.Lecture
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&lec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.KindNotFound, "store.LatestByUser", "no lectures found for user "+userID)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "store.LatestByUser", err)
	}
	return &lec, nil
}

func (s *GormStore) ListByUser(ctx context.Context, userID string) ([]model.Lecture, error) {
	lectures := make([]model.Lecture, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lectures).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "store.ListByUser", err)
	}
	return lectures, nil
}

func (s *GormStore) UpdateFields(ctx context.Context, id string, fields map[string]any) (*model.Lecture, error) {
	updates := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["updated_at"] = time.Now().UTC()

	res := s.db.WithContext(ctx).Model(&model.Lecture{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "store.UpdateFields", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.New(apperr.KindNotFound, "store.UpdateFields", "lecture not found: "+id)
	}
	return s.GetByID(ctx, id)
}

func (s *GormStore) SetArtifacts(ctx context.Context, id string, arts model.ArtifactSet, processingSeconds float64) (*model.Lecture, error) {
	// All four fields land in one UPDATE so a processing run is never
	// partially visible.
	res := s.db.WithContext(ctx).Model(&model.Lecture{}).Where("id = ?", id).Updates(map[string]any{
		"simple_text":             arts.SimpleText,
		"detailed_steps":          arts.DetailedSteps,
		"mind_map":                arts.MindMap,
		"summary":                 arts.Summary,
		"processing_time_seconds": processingSeconds,
		"updated_at":              time.Now().UTC(),
	})
	if res.Error != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "store.SetArtifacts", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.New(apperr.KindNotFound, "store.SetArtifacts", "lecture not found: "+id)
	}
	return s.GetByID(ctx, id)
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&model.Lecture{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Wrap(apperr.KindInternal, "store.Delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "store.Delete", "lecture not found: "+id)
	}
	return nil
}
