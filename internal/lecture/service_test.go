package lecture

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"simplified/internal/ai"
	"simplified/internal/apperr"
	"simplified/internal/logger"
	"simplified/internal/store"
)

// stubGenerator answers each prompt with a marker derived from the prompt's
// trailing instruction, so tests can check the artifact-to-field mapping.
type stubGenerator struct {
	mu      sync.Mutex
	calls   int
	failOn  ai.Artifact
	failErr error
}

func (g *stubGenerator) Name() string { return "stub" }

func (g *stubGenerator) Generate(_ context.Context, prompt, _ string) (string, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()

	art := artifactFor(prompt)
	if art == g.failOn {
		if g.failErr != nil {
			return "", g.failErr
		}
		return "", errors.New("upstream refused")
	}
	return "generated " + string(art), nil
}

func (g *stubGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func artifactFor(prompt string) ai.Artifact {
	switch {
	case strings.HasSuffix(prompt, "Syllable breakdown:"):
		return ai.ArtifactBreakdown
	case strings.HasSuffix(prompt, "Step-by-step breakdown:"):
		return ai.ArtifactSteps
	case strings.HasSuffix(prompt, "Brief mind map:"):
		return ai.ArtifactMindMap
	default:
		return ai.ArtifactSummary
	}
}

func newTestService(gen ai.Generator) (*Service, *store.MemoryStore) {
	st := store.NewMemoryStore()
	return NewService(st, gen, 5*time.Second, logger.NewNop()), st
}

func TestProcessWritesAllFourArtifacts(t *testing.T) {
	gen := &stubGenerator{}
	svc, st := newTestService(gen)

	lec, err := st.Create(context.Background(), "user-1", "Photosynthesis converts light into energy. Plants do this.")
	require.NoError(t, err)

	result, err := svc.Process(context.Background(), lec.ID)
	require.NoError(t, err)
	require.Equal(t, lec.ID, result.ID)
	require.Equal(t, "generated simpleText", result.SimpleText)
	require.Equal(t, "generated detailedSteps", result.DetailedSteps)
	require.Equal(t, "generated mindMap", result.MindMap)
	require.Equal(t, "generated summary", result.Summary)
	require.GreaterOrEqual(t, result.ProcessingTimeSeconds, 0.0)
	require.Equal(t, 4, gen.callCount())

	stored, err := st.GetByID(context.Background(), lec.ID)
	require.NoError(t, err)
	require.Equal(t, result.SimpleText, stored.SimpleText)
	require.Equal(t, result.DetailedSteps, stored.DetailedSteps)
	require.Equal(t, result.MindMap, stored.MindMap)
	require.Equal(t, result.Summary, stored.Summary)
	require.NotNil(t, stored.ProcessingTimeSeconds)
	require.Equal(t, result.ProcessingTimeSeconds, *stored.ProcessingTimeSeconds)
	require.Equal(t, lec.Transcription, stored.Transcription)
	require.False(t, stored.UpdatedAt.Before(stored.CreatedAt))
}

func TestProcessUnknownLecture(t *testing.T) {
	gen := &stubGenerator{}
	svc, _ := newTestService(gen)

	_, err := svc.Process(context.Background(), "missing-id")
	require.Error(t, err)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	require.Zero(t, gen.callCount())
}

func TestProcessEmptyTranscriptionSkipsProviderCalls(t *testing.T) {
	gen := &stubGenerator{}
	svc, st := newTestService(gen)

	lec, err := st.Create(context.Background(), "user-1", "   ")
	require.NoError(t, err)

	_, err = svc.Process(context.Background(), lec.ID)
	require.Error(t, err)
	require.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	require.Zero(t, gen.callCount())
}

func TestProcessOneFailureLeavesRecordUntouched(t *testing.T) {
	gen := &stubGenerator{failOn: ai.ArtifactMindMap}
	svc, st := newTestService(gen)

	lec, err := st.Create(context.Background(), "user-1", "Some lecture content.")
	require.NoError(t, err)

	_, err = svc.Process(context.Background(), lec.ID)
	require.Error(t, err)
	require.Equal(t, apperr.KindGenerationFailed, apperr.KindOf(err))
	require.Contains(t, err.Error(), "mindMap generation failed")

	stored, err := st.GetByID(context.Background(), lec.ID)
	require.NoError(t, err)
	require.Empty(t, stored.SimpleText)
	require.Empty(t, stored.DetailedSteps)
	require.Empty(t, stored.MindMap)
	require.Empty(t, stored.Summary)
	require.Nil(t, stored.ProcessingTimeSeconds)
	require.Equal(t, lec.UpdatedAt, stored.UpdatedAt)
}

func TestProcessProviderUnavailablePassesThrough(t *testing.T) {
	gen := &stubGenerator{
		failOn:  ai.ArtifactSummary,
		failErr: apperr.New(apperr.KindProviderUnavailable, "stub.Generate", "api key is not configured"),
	}
	svc, st := newTestService(gen)

	lec, err := st.Create(context.Background(), "user-1", "Some lecture content.")
	require.NoError(t, err)

	_, err = svc.Process(context.Background(), lec.ID)
	require.Error(t, err)
	require.Equal(t, apperr.KindProviderUnavailable, apperr.KindOf(err))
}
