package models

import (
	"time"

	"gorm.io/gorm"
)

// Review represents a management review record per ISO 13485:2016 section 5.6.
type Review struct {
	// ID is a unique identifier for the review, stored as a UUID in the database.
	// In Elasticsearch, it's indexed as a keyword for exact matching.
	ID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" elastic:"type:keyword" json:"id"`

	// Title is the review's title, indexed as text for full-text search.
	Title string `gorm:"not null" elastic:"type:text,analyzer:standard" json:"title"`

	// Status tracks the review lifecycle (e.g., 'scheduled', 'in_progress', 'completed'), indexed as a keyword.
	Status string `elastic:"type:keyword" json:"status"`

	// ReviewDate is when the review meeting takes place. Nullable: upstream
	// data may never have scheduled a date, so every consumer must go
	// through the safe formatter instead of dereferencing directly.
	ReviewDate *time.Time `elastic:"type:date" json:"review_date"`

	// ReviewType distinguishes scheduled reviews from ad-hoc ones (e.g., 'scheduled', 'ad_hoc', 'post_market').
	ReviewType string `elastic:"type:keyword" json:"review_type"`

	// Description is the purpose/scope paragraph shown on the overview slide.
	Description string `elastic:"type:text,analyzer:standard" json:"description"`

	// Conclusion is the free-text outcome recorded at the end of the meeting.
	Conclusion string `elastic:"type:text,analyzer:standard" json:"conclusion"`

	// ScheduledBy is the email of the user who scheduled the review.
	ScheduledBy string `elastic:"type:keyword" json:"scheduled_by"`

	CreatedAt time.Time `elastic:"type:date" json:"created_at"`
	UpdatedAt time.Time `elastic:"type:date" json:"updated_at"`

	// SearchContent is a computed field for full-text search, combining Title and Description.
	// It's not stored in the database but is indexed in Elasticsearch.
	SearchContent string `gorm:"-" elastic:"type:text,analyzer:standard" json:"-"`
}

// BeforeSave is a GORM hook to populate SearchContent before saving to Elasticsearch.
func (r *Review) BeforeSave(tx *gorm.DB) error {
	// Combine Title and Description for full-text search.
	r.SearchContent = r.Title + " " + r.Description
	return nil
}
