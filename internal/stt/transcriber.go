package stt

import (
	"context"
	"io"
)

// Result is a finished transcription.
type Result struct {
	Text       string  `json:"transcription"`
	Confidence float64 `json:"confidence"`
	Words      int     `json:"words"`
}

// Transcriber turns audio into text through an external provider.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader) (*Result, error)

	// Name returns the provider name (e.g. "assemblyai").
	Name() string
}
