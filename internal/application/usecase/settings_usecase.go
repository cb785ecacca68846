package usecase

import (
	"time"

	"github.com/sajiloprint/press-api/internal/application/dto"
	"github.com/sajiloprint/press-api/internal/domain"
	"github.com/sajiloprint/press-api/internal/domain/entity"
	"github.com/sajiloprint/press-api/internal/domain/repository"
)

// SettingsUseCase reads and writes the per-tenant configuration record. The
// record is loaded per request; nothing is cached process-wide.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase builds the use case.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get returns the tenant's settings, falling back to defaults for a tenant
// that has no row yet.
func (uc *SettingsUseCase) Get(adminID string) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get(adminID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultSettings(adminID)
	}
	return toSettingsResponse(settings), nil
}

// Update applies a partial update and persists the whole record.
func (uc *SettingsUseCase) Update(adminID string, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get(adminID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultSettings(adminID)
	}
	if in.PressName != nil {
		settings.PressName = *in.PressName
	}
	if in.Address != nil {
		settings.Address = *in.Address
	}
	if in.Phone != nil {
		settings.Phone = *in.Phone
	}
	if in.PANNo != nil {
		settings.PANNo = *in.PANNo
	}
	if in.VATRate != nil {
		if in.VATRate.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		settings.VATRate = *in.VATRate
	}
	if in.QuotationPrefix != nil {
		settings.QuotationPrefix = *in.QuotationPrefix
	}
	if in.EstimatePrefix != nil {
		settings.EstimatePrefix = *in.EstimatePrefix
	}
	if in.ChallanPrefix != nil {
		settings.ChallanPrefix = *in.ChallanPrefix
	}
	if in.JobPrefix != nil {
		settings.JobPrefix = *in.JobPrefix
	}
	settings.UpdatedAt = time.Now()
	if err := uc.repo.Upsert(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		PressName:       s.PressName,
		Address:         s.Address,
		Phone:           s.Phone,
		PANNo:           s.PANNo,
		VATRate:         s.VATRate,
		QuotationPrefix: s.QuotationPrefix,
		EstimatePrefix:  s.EstimatePrefix,
		ChallanPrefix:   s.ChallanPrefix,
		JobPrefix:       s.JobPrefix,
	}
}
