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

// JobUseCase CRUD for print jobs. The job number comes from the per-tenant
// counter inside the creating transaction.
type JobUseCase struct {
	tx           DocumentTxRunner
	repo         repository.JobRepository
	clientRepo   repository.ClientRepository
	settingsRepo repository.SettingsRepository
}

// NewJobUseCase builds the use case.
func NewJobUseCase(tx DocumentTxRunner, repo repository.JobRepository, clientRepo repository.ClientRepository, settingsRepo repository.SettingsRepository) *JobUseCase {
	return &JobUseCase{tx: tx, repo: repo, clientRepo: clientRepo, settingsRepo: settingsRepo}
}

// Create persists a new job with a generated number and a snapshot of the
// client's name.
func (uc *JobUseCase) Create(ctx context.Context, adminID string, in dto.CreateJobRequest) (*dto.JobResponse, error) {
	if in.Name == "" || in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.DeliveryDate != "" && !bsdate.Valid(in.DeliveryDate) {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(adminID, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	prefix, err := uc.jobPrefix(adminID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	job := &entity.Job{
		ID:           uuid.New().String(),
		AdminID:      adminID,
		Name:         in.Name,
		ClientID:     client.ID,
		ClientName:   client.Name, // snapshot at write time
		Quantity:     in.Quantity,
		Description:  in.Description,
		DeliveryDate: in.DeliveryDate,
		Status:       entity.JobStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.tx.RunDocuments(ctx, func(
		counterRepo repository.CounterRepository,
		jobRepo repository.JobRepository,
		_ repository.QuotationRepository,
		_ repository.EstimateRepository,
		_ repository.ChallanRepository,
	) error {
		n, err := counterRepo.Next(adminID, repository.CounterJob)
		if err != nil {
			return err
		}
		job.JobNo = formatDocNo(prefix, n)
		return jobRepo.Create(job)
	})
	if err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// GetByID returns a job scoped to the tenant.
func (uc *JobUseCase) GetByID(adminID, id string) (*dto.JobResponse, error) {
	job, err := uc.repo.GetByID(adminID, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	return toJobResponse(job), nil
}

// List returns the tenant's jobs, newest first.
func (uc *JobUseCase) List(adminID string, page dto.PageRequest) ([]*dto.JobResponse, error) {
	page.DefaultPage()
	jobs, err := uc.repo.ListByAdmin(adminID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.JobResponse, len(jobs))
	for i, j := range jobs {
		out[i] = toJobResponse(j)
	}
	return out, nil
}

// Update applies a partial update. The job number and client snapshot never
// change after creation.
func (uc *JobUseCase) Update(adminID, id string, in dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := uc.repo.GetByID(adminID, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		job.Name = *in.Name
	}
	if in.Quantity != nil {
		job.Quantity = *in.Quantity
	}
	if in.Description != nil {
		job.Description = *in.Description
	}
	if in.DeliveryDate != nil {
		if *in.DeliveryDate != "" && !bsdate.Valid(*in.DeliveryDate) {
			return nil, domain.ErrInvalidInput
		}
		job.DeliveryDate = *in.DeliveryDate
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.JobStatusPending, entity.JobStatusRunning, entity.JobStatusCompleted, entity.JobStatusDelivered:
			job.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	job.UpdatedAt = time.Now()
	if err := uc.repo.Update(job); err != nil {
		return nil, err
	}
	return toJobResponse(job), nil
}

// Delete removes a job.
func (uc *JobUseCase) Delete(adminID, id string) error {
	job, err := uc.repo.GetByID(adminID, id)
	if err != nil {
		return err
	}
	if job == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(adminID, id)
}

func (uc *JobUseCase) jobPrefix(adminID string) (string, error) {
	settings, err := uc.settingsRepo.Get(adminID)
	if err != nil {
		return "", err
	}
	if settings == nil || settings.JobPrefix == "" {
		return "JOB", nil
	}
	return settings.JobPrefix, nil
}

func toJobResponse(j *entity.Job) *dto.JobResponse {
	return &dto.JobResponse{
		ID:           j.ID,
		JobNo:        j.JobNo,
		Name:         j.Name,
		ClientID:     j.ClientID,
		ClientName:   j.ClientName,
		Quantity:     j.Quantity,
		Description:  j.Description,
		DeliveryDate: j.DeliveryDate,
		Status:       j.Status,
	}
}
