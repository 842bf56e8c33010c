package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"simplified/internal/apperr"
	"simplified/internal/logger"
)

// AssemblyAIClient submits audio to the AssemblyAI transcription API and
// polls the job on a fixed interval until it completes, errors, or the
// attempt budget runs out.
type AssemblyAIClient struct {
	apiKey       string
	baseURL      string
	httpClient   *http.Client
	pollInterval time.Duration
	maxPolls     int
	log          *logger.Logger
}

func NewAssemblyAIClient(apiKey, baseURL string, pollInterval time.Duration, maxPolls int, log *logger.Logger) *AssemblyAIClient {
	if strings.TrimSpace(apiKey) == "" {
		log.Warn("ASSEMBLYAI_API_KEY not set, transcription requests will fail until configured")
	}
	return &AssemblyAIClient{
		apiKey:       apiKey,
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{Timeout: 90 * time.Second},
		pollInterval: pollInterval,
		maxPolls:     maxPolls,
		log:          log.With("provider", "assemblyai"),
	}
}

func (c *AssemblyAIClient) Name() string { return "assemblyai" }

type transcriptJob struct {
	ID         string  `json:"id"`
	Status     string  `json:"status"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Error      string  `json:"error"`
}

func (c *AssemblyAIClient) Transcribe(ctx context.Context, audio io.Reader) (*Result, error) {
	const op = "assemblyai.Transcribe"

	if strings.TrimSpace(c.apiKey) == "" {
		return nil, apperr.New(apperr.KindProviderUnavailable, op, "assemblyai api key is not configured")
	}

	audioBytes, err := io.ReadAll(audio)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindTranscriptionFailed, op, fmt.Errorf("read audio: %w", err))
	}
	if len(audioBytes) == 0 {
		return nil, apperr.New(apperr.KindInvalidInput, op, "uploaded audio is empty")
	}

	uploadURL, err := c.upload(ctx, audioBytes)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindTranscriptionFailed, op, err)
	}

	jobID, err := c.submit(ctx, uploadURL)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindTranscriptionFailed, op, err)
	}
	c.log.Info("transcription job submitted", "job_id", jobID, "audio_bytes", len(audioBytes))

	for attempt := 0; attempt < c.maxPolls; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, apperr.Wrap(apperr.KindTranscriptionFailed, op, ctx.Err())
			case <-time.After(c.pollInterval):
			}
		}

		job, err := c.poll(ctx, jobID)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindTranscriptionFailed, op, err)
		}

		switch job.Status {
		case "completed":
			text := strings.TrimSpace(job.Text)
			return &Result{
				Text:       text,
				Confidence: job.Confidence,
				Words:      len(strings.Fields(text)),
			}, nil
		case "error":
			return nil, apperr.New(apperr.KindTranscriptionFailed, op, "transcription failed: "+job.Error)
		}
	}

	return nil, apperr.New(apperr.KindTranscriptionTimeout, op,
		fmt.Sprintf("transcription job %s still pending after %d polls", jobID, c.maxPolls))
}

func (c *AssemblyAIClient) upload(ctx context.Context, audio []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("authorization", c.apiKey)

	var payload struct {
		UploadURL string `json:"upload_url"`
	}
	if err := c.do(req, &payload); err != nil {
		return "", fmt.Errorf("upload audio: %w", err)
	}
	if payload.UploadURL == "" {
		return "", fmt.Errorf("upload response missing upload_url")
	}
	return payload.UploadURL, nil
}

func (c *AssemblyAIClient) submit(ctx context.Context, audioURL string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"audio_url":     audioURL,
		"language_code": "en",
	})
	if err != nil {
		return "", fmt.Errorf("encode transcript request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcript", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create transcript request: %w", err)
	}
	req.Header.Set("authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	var job transcriptJob
	if err := c.do(req, &job); err != nil {
		return "", fmt.Errorf("submit transcription: %w", err)
	}
	if job.ID == "" {
		return "", fmt.Errorf("transcript response missing job id")
	}
	return job.ID, nil
}

func (c *AssemblyAIClient) poll(ctx context.Context, jobID string) (*transcriptJob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transcript/"+jobID, nil)
	if err != nil {
		return nil, fmt.Errorf("create poll request: %w", err)
	}
	req.Header.Set("authorization", c.apiKey)

	var job transcriptJob
	if err := c.do(req, &job); err != nil {
		return nil, fmt.Errorf("poll transcription %s: %w", jobID, err)
	}
	return &job, nil
}

func (c *AssemblyAIClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("api returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
