package model

import "time"

// Lecture is the persisted record: one transcription plus the four derived
// learning artifacts. The artifact fields stay empty until a processing run
// populates all of them together.
type Lecture struct {
	ID                    string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID                string    `json:"userId" gorm:"index;not null"`
	Transcription         string    `json:"transcription" gorm:"not null"`
	SimpleText            string    `json:"simpleText"`
	DetailedSteps         string    `json:"detailedSteps"`
	MindMap               string    `json:"mindMap"`
	Summary               string    `json:"summary"`
	ProcessingTimeSeconds *float64  `json:"processingTimeSeconds,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// ArtifactSet bundles the four outputs of one processing run.
type ArtifactSet struct {
	SimpleText    string `json:"simpleText"`
	DetailedSteps string `json:"detailedSteps"`
	MindMap       string `json:"mindMap"`
	Summary       string `json:"summary"`
}

// CreateLectureRequest is the POST /api/lectures body.
type CreateLectureRequest struct {
	UserID        string `json:"userId" binding:"required"`
	Transcription string `json:"transcription" binding:"required"`
}

// UpdateLectureRequest is the PATCH /api/lectures/:id body. Nil means the
// field is untouched.
type UpdateLectureRequest struct {
	Transcription *string `json:"transcription"`
	SimpleText    *string `json:"simpleText"`
	DetailedSteps *string `json:"detailedSteps"`
	MindMap       *string `json:"mindMap"`
	Summary       *string `json:"summary"`
}

// Fields converts the set request fields to a column update map.
func (r UpdateLectureRequest) Fields() map[string]any {
	fields := make(map[string]any)
	if r.Transcription != nil {
		fields["transcription"] = *r.Transcription
	}
	if r.SimpleText != nil {
		fields["simple_text"] = *r.SimpleText
	}
	if r.DetailedSteps != nil {
		fields["detailed_steps"] = *r.DetailedSteps
	}
	if r.MindMap != nil {
		fields["mind_map"] = *r.MindMap
	}
	if r.Summary != nil {
		fields["summary"] = *r.Summary
	}
	return fields
}
