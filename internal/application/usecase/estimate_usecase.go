package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sajiloprint/press-api/internal/application/dto"
	"github.com/sajiloprint/press-api/internal/domain"
	"github.com/sajiloprint/press-api/internal/domain/billing"
	"github.com/sajiloprint/press-api/internal/domain/entity"
	"github.com/sajiloprint/press-api/internal/domain/repository"
	"github.com/sajiloprint/press-api/pkg/bsdate"
)

// EstimateUseCase CRUD for estimates; same arithmetic family as quotations
// with its own numbering sequence.
type EstimateUseCase struct {
	tx           DocumentTxRunner
	repo         repository.EstimateRepository
	clientRepo   repository.ClientRepository
	settingsRepo repository.SettingsRepository
}

// NewEstimateUseCase builds the use case.
func NewEstimateUseCase(tx DocumentTxRunner, repo repository.EstimateRepository, clientRepo repository.ClientRepository, settingsRepo repository.SettingsRepository) *EstimateUseCase {
	return &EstimateUseCase{tx: tx, repo: repo, clientRepo: clientRepo, settingsRepo: settingsRepo}
}

// Create persists an estimate with computed totals and a generated number.
func (uc *EstimateUseCase) Create(ctx context.Context, adminID string, in dto.CreateEstimateRequest) (*dto.EstimateResponse, error) {
	if in.ClientID == "" || len(in.Items) == 0 || !bsdate.Valid(in.Date) {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(adminID, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	settings, err := uc.settingsRepo.Get(adminID)
	if err != nil {
		return nil, err
	}
	prefix := "EST"
	if settings != nil && settings.EstimatePrefix != "" {
		prefix = settings.EstimatePrefix
	}

	e := &entity.Estimate{
		ID:         uuid.New().String(),
		AdminID:    adminID,
		ClientID:   client.ID,
		ClientName: client.Name,
		Date:       in.Date,
		Discount:   in.Discount,
		VATRate:    vatRateOrDefault(in.VATRate, settings),
		Remarks:    in.Remarks,
	}
	if err := applyEstimateItems(e, in.Items); err != nil {
		return nil, err
	}
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now

	err = uc.tx.RunDocuments(ctx, func(
		counterRepo repository.CounterRepository,
		_ repository.JobRepository,
		_ repository.QuotationRepository,
		estimateRepo repository.EstimateRepository,
		_ repository.ChallanRepository,
	) error {
		n, err := counterRepo.Next(adminID, repository.CounterEstimate)
		if err != nil {
			return err
		}
		e.EstimateNo = formatDocNo(prefix, n)
		return estimateRepo.Create(e)
	})
	if err != nil {
		return nil, err
	}
	return toEstimateResponse(e), nil
}

// GetByID returns an estimate with its lines.
func (uc *EstimateUseCase) GetByID(adminID, id string) (*dto.EstimateResponse, error) {
	e, err := uc.repo.GetByID(adminID, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toEstimateResponse(e), nil
}

// List returns the tenant's estimates, newest first.
func (uc *EstimateUseCase) List(adminID string, page dto.PageRequest) ([]*dto.EstimateResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByAdmin(adminID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EstimateResponse, len(list))
	for i, e := range list {
		out[i] = toEstimateResponse(e)
	}
	return out, nil
}

// Update replaces the mutable parts and recomputes totals.
func (uc *EstimateUseCase) Update(adminID, id string, in dto.UpdateEstimateRequest) (*dto.EstimateResponse, error) {
	e, err := uc.repo.GetByID(adminID, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.Date != nil {
		if !bsdate.Valid(*in.Date) {
			return nil, domain.ErrInvalidInput
		}
		e.Date = *in.Date
	}
	if in.Discount != nil {
		e.Discount = *in.Discount
	}
	if in.VATRate != nil {
		if in.VATRate.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		e.VATRate = *in.VATRate
	}
	if in.Remarks != nil {
		e.Remarks = *in.Remarks
	}
	items := in.Items
	if items == nil {
		items = estimateItemRequests(e)
	}
	if err := applyEstimateItems(e, items); err != nil {
		return nil, err
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return toEstimateResponse(e), nil
}

// Delete removes an estimate and its lines.
func (uc *EstimateUseCase) Delete(adminID, id string) error {
	e, err := uc.repo.GetByID(adminID, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(adminID, id)
}

func applyEstimateItems(e *entity.Estimate, items []dto.DocumentItemRequest) error {
	lines, built, err := buildLines(items)
	if err != nil {
		return err
	}
	e.Items = make([]entity.EstimateItem, len(built))
	for i, it := range built {
		e.Items[i] = entity.EstimateItem{
			ID:         uuid.New().String(),
			EstimateID: e.ID,
			Particular: it.Particular,
			Quantity:   it.Quantity,
			Rate:       it.Rate,
			Amount:     it.Amount,
		}
	}
	totals := billing.Compute(lines, e.Discount, e.VATRate)
	e.Subtotal = totals.Subtotal
	e.Discount = totals.Discount
	e.VATAmount = totals.VATAmount
	e.GrandTotal = totals.GrandTotal
	return nil
}

func estimateItemRequests(e *entity.Estimate) []dto.DocumentItemRequest {
	out := make([]dto.DocumentItemRequest, len(e.Items))
	for i, it := range e.Items {
		out[i] = dto.DocumentItemRequest{Particular: it.Particular, Quantity: it.Quantity, Rate: it.Rate}
	}
	return out
}

func toEstimateResponse(e *entity.Estimate) *dto.EstimateResponse {
	items := make([]dto.DocumentItemResponse, len(e.Items))
	for i, it := range e.Items {
		items[i] = dto.DocumentItemResponse{
			Particular: it.Particular,
			Quantity:   it.Quantity,
			Rate:       it.Rate,
			Amount:     it.Amount,
		}
	}
	return &dto.EstimateResponse{
		ID:         e.ID,
		EstimateNo: e.EstimateNo,
		ClientID:   e.ClientID,
		ClientName: e.ClientName,
		Date:       e.Date,
		Items:      items,
		Subtotal:   e.Subtotal,
		Discount:   e.Discount,
		VATRate:    e.VATRate,
		VATAmount:  e.VATAmount,
		GrandTotal: e.GrandTotal,
		Remarks:    e.Remarks,
	}
}
