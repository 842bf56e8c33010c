package ai

import (
	"fmt"
	"strings"
)

// Artifact names one of the four derived outputs. The values match the
// lecture record's JSON field names.
type Artifact string

const (
	ArtifactBreakdown Artifact = "simpleText"
	ArtifactSteps     Artifact = "detailedSteps"
	ArtifactMindMap   Artifact = "mindMap"
	ArtifactSummary   Artifact = "summary"
)

// ArtifactPrompt pairs a user prompt with its system instruction.
type ArtifactPrompt struct {
	Artifact Artifact
	Prompt   string
	System   string
}

// Transcriptions above this size are capped at a sentence boundary before
// prompt assembly to keep per-call latency bounded. Capping only shapes a
// single call's input, never the output.
const maxTranscriptChars = 24000

const breakdownPrompt = `Break down this text by splitting EVERY word into syllables using hyphens. Keep the sentence structure intact.

Example: "Photosynthesis is the process" → "Pho-to-syn-the-sis is the pro-cess"

Rules:
- Split EVERY word into syllables with hyphens
- Keep punctuation and capitalization
- Maintain the original sentence flow
- Short words (1-2 syllables) can stay as is if obvious

Transcription: %s

Syllable breakdown:`

const stepsPrompt = `Break down this lecture into clear, numbered steps. Each step should be action-oriented, easy to follow, and in logical order. Use at most 5-7 steps and keep each one concise.

Transcription: %s

Step-by-step breakdown:`

const mindMapPrompt = `Create a BRIEF text-based mind map. Use ONLY the most important points:

Main Topic
├─ Key Point 1
├─ Key Point 2
└─ Key Point 3

Keep it SHORT - maximum 5-7 points total. Be concise.

Transcription: %s

Brief mind map:`

const summaryPrompt = `Provide a concise 3-4 sentence summary with main topic, key points, and conclusion.

Transcription: %s

Summary:`

// BuildArtifactPrompts deterministically produces the four prompt/system
// pairs for one transcription, always in the same order.
func BuildArtifactPrompts(transcription string) [4]ArtifactPrompt {
	text := capTranscript(transcription, maxTranscriptChars)
	return [4]ArtifactPrompt{
		{
			Artifact: ArtifactBreakdown,
			Prompt:   fmt.Sprintf(breakdownPrompt, text),
			System:   "You are an expert in breaking words into syllables for reading assistance.",
		},
		{
			Artifact: ArtifactSteps,
			Prompt:   fmt.Sprintf(stepsPrompt, text),
			System:   "You are an expert educator who creates clear, sequential learning materials.",
		},
		{
			Artifact: ArtifactMindMap,
			Prompt:   fmt.Sprintf(mindMapPrompt, text),
			System:   "You are an expert in creating brief, focused mind maps. Be extremely concise.",
		},
		{
			Artifact: ArtifactSummary,
			Prompt:   fmt.Sprintf(summaryPrompt, text),
			System:   "You are an expert in creating clear, concise academic summaries.",
		},
	}
}

// capTranscript truncates oversized input at the last sentence end before the
// limit, falling back to a hard cut when no sentence boundary exists.
func capTranscript(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := text[:max]
	if idx := strings.LastIndexAny(cut, ".!?"); idx > 0 {
		return strings.TrimSpace(cut[:idx+1])
	}
	return strings.TrimSpace(cut)
}
