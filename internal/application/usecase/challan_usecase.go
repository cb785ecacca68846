package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sajiloprint/press-api/internal/application/dto"
	"github.com/sajiloprint/press-api/internal/domain"
	"github.com/sajiloprint/press-api/internal/domain/entity"
	"github.com/sajiloprint/press-api/internal/domain/repository"
	"github.com/sajiloprint/press-api/pkg/bsdate"
)

// ChallanUseCase CRUD for delivery notes. Client and job names are snapshots
// taken at create time.
type ChallanUseCase struct {
	tx           DocumentTxRunner
	repo         repository.ChallanRepository
	clientRepo   repository.ClientRepository
	jobRepo      repository.JobRepository
	settingsRepo repository.SettingsRepository
}

// NewChallanUseCase builds the use case.
func NewChallanUseCase(tx DocumentTxRunner, repo repository.ChallanRepository, clientRepo repository.ClientRepository, jobRepo repository.JobRepository, settingsRepo repository.SettingsRepository) *ChallanUseCase {
	return &ChallanUseCase{tx: tx, repo: repo, clientRepo: clientRepo, jobRepo: jobRepo, settingsRepo: settingsRepo}
}

// Create persists a challan with a generated number and snapshots of the
// referenced client and job.
func (uc *ChallanUseCase) Create(ctx context.Context, adminID string, in dto.CreateChallanRequest) (*dto.ChallanResponse, error) {
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
	ch := &entity.Challan{
		ID:         uuid.New().String(),
		AdminID:    adminID,
		ClientID:   client.ID,
		ClientName: client.Name,
		Date:       in.Date,
		Remarks:    in.Remarks,
	}
	if in.JobID != "" {
		job, err := uc.jobRepo.GetByID(adminID, in.JobID)
		if err != nil {
			return nil, err
		}
		if job == nil {
			return nil, domain.ErrNotFound
		}
		ch.JobID = job.ID
		ch.JobNo = job.JobNo
		ch.JobName = job.Name
	}
	if err := applyChallanItems(ch, in.Items); err != nil {
		return nil, err
	}
	now := time.Now()
	ch.CreatedAt = now
	ch.UpdatedAt = now

	settings, err := uc.settingsRepo.Get(adminID)
	if err != nil {
		return nil, err
	}
	prefix := "CHN"
	if settings != nil && settings.ChallanPrefix != "" {
		prefix = settings.ChallanPrefix
	}

	err = uc.tx.RunDocuments(ctx, func(
		counterRepo repository.CounterRepository,
		_ repository.JobRepository,
		_ repository.QuotationRepository,
		_ repository.EstimateRepository,
		challanRepo repository.ChallanRepository,
	) error {
		n, err := counterRepo.Next(adminID, repository.CounterChallan)
		if err != nil {
			return err
		}
		ch.ChallanNo = formatDocNo(prefix, n)
		return challanRepo.Create(ch)
	})
	if err != nil {
		return nil, err
	}
	return toChallanResponse(ch), nil
}

// GetByID returns a challan with its lines.
func (uc *ChallanUseCase) GetByID(adminID, id string) (*dto.ChallanResponse, error) {
	ch, err := uc.repo.GetByID(adminID, id)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return nil, domain.ErrNotFound
	}
	return toChallanResponse(ch), nil
}

// Get returns the entity form, used by the PDF exporter.
func (uc *ChallanUseCase) Get(adminID, id string) (*entity.Challan, error) {
	ch, err := uc.repo.GetByID(adminID, id)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return nil, domain.ErrNotFound
	}
	return ch, nil
}

// List returns the tenant's challans, newest first.
func (uc *ChallanUseCase) List(adminID string, page dto.PageRequest) ([]*dto.ChallanResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByAdmin(adminID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ChallanResponse, len(list))
	for i, ch := range list {
		out[i] = toChallanResponse(ch)
	}
	return out, nil
}

// Update replaces the mutable parts of a challan. The number and the client
// and job snapshots never change after creation.
func (uc *ChallanUseCase) Update(adminID, id string, in dto.UpdateChallanRequest) (*dto.ChallanResponse, error) {
	ch, err := uc.repo.GetByID(adminID, id)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return nil, domain.ErrNotFound
	}
	if in.Date != nil {
		if !bsdate.Valid(*in.Date) {
			return nil, domain.ErrInvalidInput
		}
		ch.Date = *in.Date
	}
	if in.Remarks != nil {
		ch.Remarks = *in.Remarks
	}
	if in.Items != nil {
		if err := applyChallanItems(ch, in.Items); err != nil {
			return nil, err
		}
	}
	ch.UpdatedAt = time.Now()
	if err := uc.repo.Update(ch); err != nil {
		return nil, err
	}
	return toChallanResponse(ch), nil
}

// Delete removes a challan and its lines.
func (uc *ChallanUseCase) Delete(adminID, id string) error {
	ch, err := uc.repo.GetByID(adminID, id)
	if err != nil {
		return err
	}
	if ch == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(adminID, id)
}

func applyChallanItems(ch *entity.Challan, items []dto.ChallanItemRequest) error {
	if len(items) == 0 {
		return domain.ErrInvalidInput
	}
	ch.Items = make([]entity.ChallanItem, len(items))
	for i, it := range items {
		if it.Description == "" || it.Quantity.IsNegative() {
			return domain.ErrInvalidInput
		}
		ch.Items[i] = entity.ChallanItem{
			ID:          uuid.New().String(),
			ChallanID:   ch.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			Remarks:     it.Remarks,
		}
	}
	return nil
}

func toChallanResponse(ch *entity.Challan) *dto.ChallanResponse {
	items := make([]dto.ChallanItemResponse, len(ch.Items))
	for i, it := range ch.Items {
		items[i] = dto.ChallanItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			Remarks:     it.Remarks,
		}
	}
	return &dto.ChallanResponse{
		ID:         ch.ID,
		ChallanNo:  ch.ChallanNo,
		ClientID:   ch.ClientID,
		ClientName: ch.ClientName,
		JobID:      ch.JobID,
		JobNo:      ch.JobNo,
		JobName:    ch.JobName,
		Date:       ch.Date,
		Items:      items,
		Remarks:    ch.Remarks,
	}
}
