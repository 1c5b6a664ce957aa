package models

import "time"

type ActionItem struct {
	ID          string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ReviewID    string     `gorm:"type:uuid;index" json:"review_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	AssignedTo  string     `json:"assigned_to"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
