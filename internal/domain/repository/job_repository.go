package repository

import "github.com/sajiloprint/press-api/internal/domain/entity"

// JobRepository is the persistence port for print jobs.
type JobRepository interface {
	Create(job *entity.Job) error
	GetByID(adminID, id string) (*entity.Job, error)
	ListByAdmin(adminID string, limit, offset int) ([]*entity.Job, error)
	Update(job *entity.Job) error
	Delete(adminID, id string) error
}
