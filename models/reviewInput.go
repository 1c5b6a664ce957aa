package models

import "time"

// ReviewInput is a single input item presented at a management review
// (audit result, complaint trend, process metric, etc.). Inputs are grouped
// by Category when summarized; an empty Category falls back to "General".
type ReviewInput struct {
	ID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" elastic:"type:keyword" json:"id"`
	ReviewID string `gorm:"type:uuid;index" elastic:"type:keyword" json:"review_id"`

	Category    string `elastic:"type:keyword" json:"category"`
	Title       string `gorm:"not null" elastic:"type:text,analyzer:standard" json:"title"`
	Description string `elastic:"type:text,analyzer:standard" json:"description"`

	// Priority is one of 'critical', 'high', 'medium', 'low'.
	Priority string `elastic:"type:keyword" json:"priority"`

	// ComplianceStatus is one of 'compliant', 'non_compliant',
	// 'improvement_needed', 'under_review'.
	ComplianceStatus string `elastic:"type:keyword" json:"compliance_status"`

	CreatedAt time.Time `elastic:"type:date" json:"created_at"`
}
