package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sajiloprint/press-api/internal/application/dto"
	"github.com/sajiloprint/press-api/internal/domain"
	"github.com/sajiloprint/press-api/internal/domain/billing"
	"github.com/sajiloprint/press-api/internal/domain/entity"
	"github.com/sajiloprint/press-api/internal/domain/repository"
	"github.com/sajiloprint/press-api/pkg/bsdate"
)

// QuotationUseCase CRUD for quotations. Totals use the sequential
// discount-then-VAT arithmetic; the number comes from the per-tenant counter.
type QuotationUseCase struct {
	tx           DocumentTxRunner
	repo         repository.QuotationRepository
	clientRepo   repository.ClientRepository
	settingsRepo repository.SettingsRepository
}

// NewQuotationUseCase builds the use case.
func NewQuotationUseCase(tx DocumentTxRunner, repo repository.QuotationRepository, clientRepo repository.ClientRepository, settingsRepo repository.SettingsRepository) *QuotationUseCase {
	return &QuotationUseCase{tx: tx, repo: repo, clientRepo: clientRepo, settingsRepo: settingsRepo}
}

// Create persists a quotation with computed totals and a generated number.
func (uc *QuotationUseCase) Create(ctx context.Context, adminID string, in dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
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
	vatRate := vatRateOrDefault(in.VATRate, settings)
	prefix := "QTN"
	if settings != nil && settings.QuotationPrefix != "" {
		prefix = settings.QuotationPrefix
	}

	q := &entity.Quotation{
		ID:         uuid.New().String(),
		AdminID:    adminID,
		ClientID:   client.ID,
		ClientName: client.Name, // snapshot at write time
		Date:       in.Date,
		Discount:   in.Discount,
		VATRate:    vatRate,
		Remarks:    in.Remarks,
	}
	if err := applyQuotationItems(q, in.Items); err != nil {
		return nil, err
	}
	now := time.Now()
	q.CreatedAt = now
	q.UpdatedAt = now

	err = uc.tx.RunDocuments(ctx, func(
		counterRepo repository.CounterRepository,
		_ repository.JobRepository,
		quotationRepo repository.QuotationRepository,
		_ repository.EstimateRepository,
		_ repository.ChallanRepository,
	) error {
		n, err := counterRepo.Next(adminID, repository.CounterQuotation)
		if err != nil {
			return err
		}
		q.QuotationNo = formatDocNo(prefix, n)
		return quotationRepo.Create(q)
	})
	if err != nil {
		return nil, err
	}
	return toQuotationResponse(q), nil
}

// GetByID returns a quotation with its lines.
func (uc *QuotationUseCase) GetByID(adminID, id string) (*dto.QuotationResponse, error) {
	q, err := uc.repo.GetByID(adminID, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	return toQuotationResponse(q), nil
}

// Get returns the entity form, used by the PDF exporter.
func (uc *QuotationUseCase) Get(adminID, id string) (*entity.Quotation, error) {
	q, err := uc.repo.GetByID(adminID, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	return q, nil
}

// List returns the tenant's quotations, newest first.
func (uc *QuotationUseCase) List(adminID string, page dto.PageRequest) ([]*dto.QuotationResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByAdmin(adminID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.QuotationResponse, len(list))
	for i, q := range list {
		out[i] = toQuotationResponse(q)
	}
	return out, nil
}

// Update replaces the mutable parts and recomputes totals. The number and the
// client snapshot never change.
func (uc *QuotationUseCase) Update(adminID, id string, in dto.UpdateQuotationRequest) (*dto.QuotationResponse, error) {
	q, err := uc.repo.GetByID(adminID, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if in.Date != nil {
		if !bsdate.Valid(*in.Date) {
			return nil, domain.ErrInvalidInput
		}
		q.Date = *in.Date
	}
	if in.Discount != nil {
		q.Discount = *in.Discount
	}
	if in.VATRate != nil {
		if in.VATRate.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		q.VATRate = *in.VATRate
	}
	if in.Remarks != nil {
		q.Remarks = *in.Remarks
	}
	items := in.Items
	if items == nil {
		items = itemRequests(q)
	}
	if err := applyQuotationItems(q, items); err != nil {
		return nil, err
	}
	q.UpdatedAt = time.Now()
	if err := uc.repo.Update(q); err != nil {
		return nil, err
	}
	return toQuotationResponse(q), nil
}

// Delete removes a quotation and its lines.
func (uc *QuotationUseCase) Delete(adminID, id string) error {
	q, err := uc.repo.GetByID(adminID, id)
	if err != nil {
		return err
	}
	if q == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(adminID, id)
}

// applyQuotationItems replaces the line set and recomputes the totals.
func applyQuotationItems(q *entity.Quotation, items []dto.DocumentItemRequest) error {
	lines, entityItems, err := buildLines(items)
	if err != nil {
		return err
	}
	q.Items = make([]entity.QuotationItem, len(entityItems))
	for i, it := range entityItems {
		q.Items[i] = entity.QuotationItem{
			ID:          uuid.New().String(),
			QuotationID: q.ID,
			Particular:  it.Particular,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Amount:      it.Amount,
		}
	}
	totals := billing.Compute(lines, q.Discount, q.VATRate)
	q.Subtotal = totals.Subtotal
	q.Discount = totals.Discount
	q.VATAmount = totals.VATAmount
	q.GrandTotal = totals.GrandTotal
	return nil
}

// builtLine is the validated, amount-carrying intermediate for one item.
type builtLine struct {
	Particular string
	Quantity   decimal.Decimal
	Rate       decimal.Decimal
	Amount     decimal.Decimal
}

func buildLines(items []dto.DocumentItemRequest) ([]billing.Line, []builtLine, error) {
	if len(items) == 0 {
		return nil, nil, domain.ErrInvalidInput
	}
	lines := make([]billing.Line, len(items))
	built := make([]builtLine, len(items))
	for i, it := range items {
		if it.Particular == "" || it.Quantity.IsNegative() || it.Rate.IsNegative() {
			return nil, nil, domain.ErrInvalidInput
		}
		l := billing.Line{Quantity: it.Quantity, Rate: it.Rate}
		lines[i] = l
		built[i] = builtLine{
			Particular: it.Particular,
			Quantity:   it.Quantity,
			Rate:       it.Rate,
			Amount:     l.Amount(),
		}
	}
	return lines, built, nil
}

func vatRateOrDefault(rate *decimal.Decimal, settings *entity.Settings) decimal.Decimal {
	if rate != nil && !rate.IsNegative() {
		return *rate
	}
	if settings != nil {
		return settings.VATRate
	}
	return decimal.NewFromInt(13)
}

func itemRequests(q *entity.Quotation) []dto.DocumentItemRequest {
	out := make([]dto.DocumentItemRequest, len(q.Items))
	for i, it := range q.Items {
		out[i] = dto.DocumentItemRequest{Particular: it.Particular, Quantity: it.Quantity, Rate: it.Rate}
	}
	return out
}

func toQuotationResponse(q *entity.Quotation) *dto.QuotationResponse {
	items := make([]dto.DocumentItemResponse, len(q.Items))
	for i, it := range q.Items {
		items[i] = dto.DocumentItemResponse{
			Particular: it.Particular,
			Quantity:   it.Quantity,
			Rate:       it.Rate,
			Amount:     it.Amount,
		}
	}
	return &dto.QuotationResponse{
		ID:          q.ID,
		QuotationNo: q.QuotationNo,
		ClientID:    q.ClientID,
		ClientName:  q.ClientName,
		Date:        q.Date,
		Items:       items,
		Subtotal:    q.Subtotal,
		Discount:    q.Discount,
		VATRate:     q.VATRate,
		VATAmount:   q.VATAmount,
		GrandTotal:  q.GrandTotal,
		Remarks:     q.Remarks,
	}
}
