package services

import (
	"fmt"
	"log"
	"time"

	model "github.com/araad04/eqms/models"
	"gorm.io/gorm"
)

// Requalification intervals in years per supplier criticality. Higher
// criticality means a shorter interval; unknown values get the longest one.
var requalificationYears = map[string]int{
	"critical": 1,
	"major":    2,
	"minor":    3,
}

const defaultRequalificationYears = 3

// SupplierService manages the approved-supplier list and its
// requalification schedule.
type SupplierService struct {
	db *gorm.DB
}

func NewSupplierService(db *gorm.DB) *SupplierService {
	return &SupplierService{db: db}
}

// RequalificationDue computes the next requalification date from the
// criticality interval table. Deterministic in its two inputs: whenever
// either changes, the due date must be recomputed through this function.
func RequalificationDue(criticality string, lastQualified time.Time) time.Time {
	years, ok := requalificationYears[criticality]
	if !ok {
		years = defaultRequalificationYears
	}
	return lastQualified.AddDate(years, 0, 0)
}

// CreateSupplier stores a supplier with its derived requalification date.
func (s *SupplierService) CreateSupplier(sup *model.Supplier) error {
	sup.Status = orDefault(sup.Status, "pending_qualification")
	sup.CreatedAt = time.Now()
	sup.UpdatedAt = time.Now()
	applyRequalification(sup)

	if err := s.db.Create(sup).Error; err != nil {
		log.Printf("[CreateSupplier] Error saving supplier: %v", err)
		return fmt.Errorf("failed to save supplier: %w", err)
	}
	log.Printf("[CreateSupplier] Supplier %s created", sup.ID)
	return nil
}

// UpdateSupplier applies field changes and recomputes the requalification
// date whenever criticality or the qualification date moved.
func (s *SupplierService) UpdateSupplier(id string, changes model.Supplier) (*model.Supplier, error) {
	var sup model.Supplier
	if err := s.db.First(&sup, "id = ?", id).Error; err != nil {
		log.Printf("[UpdateSupplier] Error fetching supplier %s: %v", id, err)
		return nil, fmt.Errorf("failed to fetch supplier %s: %w", id, err)
	}

	if changes.Name != "" {
		sup.Name = changes.Name
	}
	if changes.Status != "" {
		sup.Status = changes.Status
	}
	if changes.Criticality != "" {
		sup.Criticality = changes.Criticality
	}
	if changes.LastQualifiedAt != nil {
		sup.LastQualifiedAt = changes.LastQualifiedAt
	}
	sup.UpdatedAt = time.Now()
	applyRequalification(&sup)

	if err := s.db.Save(&sup).Error; err != nil {
		log.Printf("[UpdateSupplier] Error updating supplier %s: %v", id, err)
		return nil, fmt.Errorf("failed to update supplier %s: %w", id, err)
	}
	log.Printf("[UpdateSupplier] Supplier %s updated", id)
	return &sup, nil
}

// GetAllSuppliers lists suppliers, soonest requalification first.
func (s *SupplierService) GetAllSuppliers() ([]model.Supplier, error) {
	var suppliers []model.Supplier
	if err := s.db.Order("requalification_due ASC NULLS LAST").Find(&suppliers).Error; err != nil {
		log.Printf("[GetAllSuppliers] Error fetching suppliers: %v", err)
		return nil, fmt.Errorf("failed to fetch suppliers: %w", err)
	}
	return suppliers, nil
}

// applyRequalification derives RequalificationDue from the current
// criticality and qualification date, clearing it when never qualified.
func applyRequalification(sup *model.Supplier) {
	if sup.LastQualifiedAt == nil {
		sup.RequalificationDue = nil
		return
	}
	due := RequalificationDue(sup.Criticality, *sup.LastQualifiedAt)
	sup.RequalificationDue = &due
}
