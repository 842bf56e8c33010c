package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"simplified/internal/apperr"
	"simplified/internal/model"
)

// MemoryStore keeps lecture records in a process-local map. It backs tests and
// serves as a throwaway store when no database is wanted.
type MemoryStore struct {
	mu       sync.RWMutex
	lectures map[string]*model.Lecture
	seq      map[string]int64
	nextSeq  int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		lectures: make(map[string]*model.Lecture),
		seq:      make(map[string]int64),
	}
}

func (s *MemoryStore) Create(_ context.Context, userID, transcription string) (*model.Lecture, error) {
	now := time.Now().UTC()
	lec := &model.Lecture{
		ID:            uuid.NewString(),
		UserID:        userID,
		Transcription: transcription,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSeq++
	s.seq[lec.ID] = s.nextSeq
	s.lectures[lec.ID] = lec

	out := *lec
	return &out, nil
}

func (s *MemoryStore) GetByID(_ context.Context, id string) (*model.Lecture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lec, ok := s.lectures[id]
	if !ok {
		return nil, apperr.New(apperr.KindNotFound, "store.GetByID", "lecture not found: "+id)
	}
	out := *lec
	return &out, nil
}

func (s *MemoryStore) LatestByUser(ctx context.Context, userID string) (*model.Lecture, error) {
	lectures, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lectures) == 0 {
		return nil, apperr.New(apperr.KindNotFound, "store.LatestByUser", "no lectures found for user "+userID)
	}
	return &lectures[0], nil
}

func (s *MemoryStore) ListByUser(_ context.Context, userID string) ([]model.Lecture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Lecture, 0)
	for _, lec := range s.lectures {
		if lec.UserID == userID {
			out = append(out, *lec)
		}
	}
	// Newest first; creation order breaks timestamp ties.
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return s.seq[out[i].ID] > s.seq[out[j].ID]
	})
	return out, nil
}

func (s *MemoryStore) UpdateFields(_ context.Context, id string, fields map[string]any) (*model.Lecture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lec, ok := s.lectures[id]
	if !ok {
		return nil, apperr.New(apperr.KindNotFound, "store.UpdateFields", "lecture not found: "+id)
	}
	for col, v := range fields {
		val, _ := v.(string)
		switch col {
		case "transcription":
			lec.Transcription = val
		case "simple_text":
			lec.SimpleText = val
		case "detailed_steps":
			lec.DetailedSteps = val
		case "mind_map":
			lec.MindMap = val
		case "summary":
			lec.Summary = val
		}
	}
	lec.UpdatedAt = time.Now().UTC()

	out := *lec
	return &out, nil
}

func (s *MemoryStore) SetArtifacts(_ context.Context, id string, arts model.ArtifactSet, processingSeconds float64) (*model.Lecture, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lec, ok := s.lectures[id]
	if !ok {
		return nil, apperr.New(apperr.KindNotFound, "store.SetArtifacts", "lecture not found: "+id)
	}
	lec.SimpleText = arts.SimpleText
	lec.DetailedSteps = arts.DetailedSteps
	lec.MindMap = arts.MindMap
	lec.Summary = arts.Summary
	lec.ProcessingTimeSeconds = &processingSeconds
	lec.UpdatedAt = time.Now().UTC()

	out := *lec
	return &out, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lectures[id]; !ok {
		return apperr.New(apperr.KindNotFound, "store.Delete", "lecture not found: "+id)
	}
	delete(s.lectures, id)
	delete(s.seq, id)
	return nil
}
