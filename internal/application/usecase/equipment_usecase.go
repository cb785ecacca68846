package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/sajiloprint/press-api/internal/application/dto"
	"github.com/sajiloprint/press-api/internal/domain"
	"github.com/sajiloprint/press-api/internal/domain/entity"
	"github.com/sajiloprint/press-api/internal/domain/repository"
	"github.com/sajiloprint/press-api/pkg/bsdate"
)

// EquipmentUseCase CRUD for press equipment.
type EquipmentUseCase struct {
	repo repository.EquipmentRepository
}

// NewEquipmentUseCase builds the use case.
func NewEquipmentUseCase(repo repository.EquipmentRepository) *EquipmentUseCase {
	return &EquipmentUseCase{repo: repo}
}

func validEquipmentStatus(s string) bool {
	switch s {
	case entity.EquipmentStatusOperational, entity.EquipmentStatusMaintenance, entity.EquipmentStatusRetired:
		return true
	}
	return false
}

// Create persists a new equipment record.
func (uc *EquipmentUseCase) Create(adminID string, in dto.CreateEquipmentRequest) (*dto.EquipmentResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchaseDate != "" && !bsdate.Valid(in.PurchaseDate) {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.EquipmentStatusOperational
	}
	if !validEquipmentStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	eq := &entity.Equipment{
		ID:           uuid.New().String(),
		AdminID:      adminID,
		Name:         in.Name,
		Model:        in.Model,
		Vendor:       in.Vendor,
		PurchaseDate: in.PurchaseDate,
		Status:       status,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(eq); err != nil {
		return nil, err
	}
	return toEquipmentResponse(eq), nil
}

// GetByID returns an equipment record scoped to the tenant.
func (uc *EquipmentUseCase) GetByID(adminID, id string) (*dto.EquipmentResponse, error) {
	eq, err := uc.repo.GetByID(adminID, id)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, domain.ErrNotFound
	}
	return toEquipmentResponse(eq), nil
}

// List returns the tenant's equipment, newest first.
func (uc *EquipmentUseCase) List(adminID string, page dto.PageRequest) ([]*dto.EquipmentResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByAdmin(adminID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EquipmentResponse, len(list))
	for i, eq := range list {
		out[i] = toEquipmentResponse(eq)
	}
	return out, nil
}

// Update applies a partial update.
func (uc *EquipmentUseCase) Update(adminID, id string, in dto.UpdateEquipmentRequest) (*dto.EquipmentResponse, error) {
	eq, err := uc.repo.GetByID(adminID, id)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		eq.Name = *in.Name
	}
	if in.Model != nil {
		eq.Model = *in.Model
	}
	if in.Vendor != nil {
		eq.Vendor = *in.Vendor
	}
	if in.PurchaseDate != nil {
		if *in.PurchaseDate != "" && !bsdate.Valid(*in.PurchaseDate) {
			return nil, domain.ErrInvalidInput
		}
		eq.PurchaseDate = *in.PurchaseDate
	}
	if in.Status != nil {
		if !validEquipmentStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		eq.Status = *in.Status
	}
	if in.Notes != nil {
		eq.Notes = *in.Notes
	}
	eq.UpdatedAt = time.Now()
	if err := uc.repo.Update(eq); err != nil {
		return nil, err
	}
	return toEquipmentResponse(eq), nil
}

// Delete removes an equipment record.
func (uc *EquipmentUseCase) Delete(adminID, id string) error {
	eq, err := uc.repo.GetByID(adminID, id)
	if err != nil {
		return err
	}
	if eq == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(adminID, id)
}

func toEquipmentResponse(eq *entity.Equipment) *dto.EquipmentResponse {
	return &dto.EquipmentResponse{
		ID:           eq.ID,
		Name:         eq.Name,
		Model:        eq.Model,
		Vendor:       eq.Vendor,
		PurchaseDate: eq.PurchaseDate,
		Status:       eq.Status,
		Notes:        eq.Notes,
	}
}
