package model

import "time"

// MaterialType classifies an uploaded resource.
type MaterialType string

const (
	TypePastPaper MaterialType = "past-paper"
	TypeNote      MaterialType = "note"
	TypeLabManual MaterialType = "lab-manual"
)

// Valid reports whether t is one of the known material types.
func (t MaterialType) Valid() bool {
	switch t {
	case TypePastPaper, TypeNote, TypeLabManual:
		return true
	}
	return false
}

// MaterialStatus is the moderation state of a material.
// Every material starts as pending; approved and rejected are terminal.
type MaterialStatus string

const (
	StatusPending  MaterialStatus = "pending"
	StatusApproved MaterialStatus = "approved"
	StatusRejected MaterialStatus = "rejected"
)

// Terminal reports whether no further transition is defined for s.
func (s MaterialStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Material represents one uploaded academic document plus its metadata and
// moderation status. This is a pure domain model with no database-specific
// dependencies or tags; it is shared across the HTTP, service, and storage layers.
type Material struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Type         MaterialType   `json:"type"`
	Department   string         `json:"department"`
	Semester     int            `json:"semester"`
	Subject      string         `json:"subject"`
	FileURL      string         `json:"file_url"`
	FileName     string         `json:"file_name"`
	FileSize     int64          `json:"file_size"`
	FileType     string         `json:"file_type"`
	UploaderID   string         `json:"uploader_id"`
	UploaderName string         `json:"uploader_name"`
	CreatedAt    time.Time      `json:"created_at"`
	Status       MaterialStatus `json:"status"`
}
