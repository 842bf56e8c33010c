package lecture

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"simplified/internal/ai"
	"simplified/internal/apperr"
	"simplified/internal/logger"
	"simplified/internal/model"
	"simplified/internal/store"
)

// Service runs the artifact generation pipeline: one transcription in, four
// concurrently generated artifacts out, persisted together or not at all.
type Service struct {
	store       store.LectureStore
	gen         ai.Generator
	callTimeout time.Duration
	log         *logger.Logger
}

func NewService(st store.LectureStore, gen ai.Generator, callTimeout time.Duration, log *logger.Logger) *Service {
	return &Service{
		store:       st,
		gen:         gen,
		callTimeout: callTimeout,
		log:         log.With("component", "lecture"),
	}
}

// ProcessResult is what Process returns: exactly the persisted artifacts plus
// the record id and elapsed generation time.
type ProcessResult struct {
	ID string `json:"id"`
	model.ArtifactSet
	ProcessingTimeSeconds float64 `json:"processingTimeSeconds"`
}

// Process loads the record, dispatches the four generation calls
// concurrently, and on full success writes all four artifacts plus the
// elapsed duration as one update. Any failed call fails the whole run and
// leaves the record untouched.
func (s *Service) Process(ctx context.Context, id string) (*ProcessResult, error) {
	lec, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(lec.Transcription) == "" {
		return nil, apperr.New(apperr.KindInvalidInput, "lecture.Process", "lecture "+id+" has no transcription to process")
	}

	prompts := ai.BuildArtifactPrompts(lec.Transcription)
	s.log.Info("processing lecture", "id", id, "provider", s.gen.Name(), "transcription_chars", len(lec.Transcription))

	start := time.Now()
	var results [4]string

	// One goroutine per prompt; the first failure cancels the rest and no
	// store write happens.
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range prompts {
		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(gctx, s.callTimeout)
			defer cancel()

			text, genErr := s.gen.Generate(callCtx, p.Prompt, p.System)
			if genErr != nil {
				if apperr.KindOf(genErr) == apperr.KindProviderUnavailable {
					return genErr
				}
				return apperr.Wrap(apperr.KindGenerationFailed, "lecture.Process",
					fmt.Errorf("%s generation failed: %w", p.Artifact, genErr))
			}
			results[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("generation run failed", "id", id, "error", err)
		return nil, err
	}

	elapsed := math.Round(time.Since(start).Seconds()*100) / 100
	arts := model.ArtifactSet{
		SimpleText:    results[0],
		DetailedSteps: results[1],
		MindMap:       results[2],
		Summary:       results[3],
	}

	if _, err := s.store.SetArtifacts(ctx, id, arts, elapsed); err != nil {
		return nil, err
	}
	s.log.Info("lecture processed", "id", id, "seconds", elapsed)

	return &ProcessResult{ID: lec.ID, ArtifactSet: arts, ProcessingTimeSeconds: elapsed}, nil
}
