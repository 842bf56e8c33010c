package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildArtifactPromptsDeterministic(t *testing.T) {
	const transcription = "The cat sat. It was happy."

	first := BuildArtifactPrompts(transcription)
	second := BuildArtifactPrompts(transcription)
	require.Equal(t, first, second)
}

func TestBuildArtifactPromptsOrderAndContent(t *testing.T) {
	const transcription = "The cat sat. It was happy."

	prompts := BuildArtifactPrompts(transcription)

	require.Equal(t, ArtifactBreakdown, prompts[0].Artifact)
	require.Equal(t, ArtifactSteps, prompts[1].Artifact)
	require.Equal(t, ArtifactMindMap, prompts[2].Artifact)
	require.Equal(t, ArtifactSummary, prompts[3].Artifact)

	for _, p := range prompts {
		require.NotEmpty(t, p.Prompt)
		require.NotEmpty(t, p.System)
		require.Contains(t, p.Prompt, transcription)
	}

	// Breakdown asks for syllable hyphenation while keeping the input intact.
	require.Contains(t, prompts[0].Prompt, "syllables")
	require.Contains(t, prompts[0].Prompt, "hyphens")
	require.Contains(t, prompts[0].Prompt, "Keep punctuation and capitalization")
	require.Contains(t, prompts[0].System, "syllables")

	require.Contains(t, prompts[1].Prompt, "numbered steps")
	require.Contains(t, prompts[1].Prompt, "5-7 steps")

	require.Contains(t, prompts[2].Prompt, "mind map")
	require.Contains(t, prompts[2].Prompt, "├─")

	require.Contains(t, prompts[3].Prompt, "3-4 sentence summary")
}

func TestCapTranscriptShortInputUntouched(t *testing.T) {
	require.Equal(t, "Short text.", capTranscript("Short text.", 100))
}

func TestCapTranscriptCutsAtSentenceBoundary(t *testing.T) {
	text := "First sentence. Second sentence. Third sentence that runs long"
	capped := capTranscript(text, 40)

	require.Equal(t, "First sentence. Second sentence.", capped)
}

func TestCapTranscriptHardCutWithoutBoundary(t *testing.T) {
	text := strings.Repeat("a", 100)
	capped := capTranscript(text, 10)

	require.Len(t, capped, 10)
}

func TestCapTranscriptNeverChangesPromptCount(t *testing.T) {
	long := strings.Repeat("A sentence about photosynthesis. ", 2000)
	prompts := BuildArtifactPrompts(long)

	require.Len(t, prompts, 4)
	for _, p := range prompts {
		require.Less(t, len(p.Prompt), len(long))
	}
}
