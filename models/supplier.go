package models

import "time"

// Supplier is an approved-supplier record. RequalificationDue is derived
// from Criticality and LastQualifiedAt through a fixed interval table and
// is recomputed by the service whenever either changes.
type Supplier struct {
	ID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name string `gorm:"not null" json:"name"`

	// Criticality is one of 'critical', 'major', 'minor'.
	Criticality string `json:"criticality"`

	Status             string     `json:"status"`
	LastQualifiedAt    *time.Time `json:"last_qualified_at"`
	RequalificationDue *time.Time `json:"requalification_due"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
