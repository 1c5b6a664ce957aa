package models

import (
	"time"

	"gorm.io/datatypes"
)

// GeneratedReport is the audit record written after a review document is
// rendered and stored. The QMS keeps these so auditors can trace which
// artifact was produced from which review and when.
type GeneratedReport struct {
	ID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ReviewID string `gorm:"type:uuid;index" json:"review_id"`

	// Kind is one of 'Management_Review_Presentation',
	// 'Management_Review_Minutes', 'Management_Review_Attendance'.
	Kind string `json:"kind"`

	Filename  string `json:"filename"`
	ObjectKey string `json:"object_key"`
	FileURL   string `json:"file_url"`
	SizeBytes int64  `json:"size_bytes"`
	Pages     int    `json:"pages"`

	// Summary is a JSONB snapshot of the counts that went into the
	// document (inputs, actions, attendees), for audit without re-opening the PDF.
	Summary datatypes.JSON `json:"summary"`

	CreatedAt time.Time `json:"created_at"`
}
