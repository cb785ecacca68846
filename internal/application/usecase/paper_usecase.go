package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sajiloprint/press-api/internal/application/dto"
	"github.com/sajiloprint/press-api/internal/domain"
	"github.com/sajiloprint/press-api/internal/domain/entity"
	"github.com/sajiloprint/press-api/internal/domain/repository"
)

// PaperUseCase CRUD for paper reference records. The ledger itself never
// mutates a paper; OriginalStock is locked down once entries exist because
// the recomputation's base case depends on it.
type PaperUseCase struct {
	repo      repository.PaperRepository
	entryRepo repository.StockEntryRepository
}

// NewPaperUseCase builds the use case.
func NewPaperUseCase(repo repository.PaperRepository, entryRepo repository.StockEntryRepository) *PaperUseCase {
	return &PaperUseCase{repo: repo, entryRepo: entryRepo}
}

// Create persists a new paper.
func (uc *PaperUseCase) Create(adminID string, in dto.CreatePaperRequest) (*dto.PaperResponse, error) {
	if !entity.ValidPaperType(in.Type) || in.OriginalStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Type == entity.PaperTypeOther && in.TypeOther == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	paper := &entity.Paper{
		ID:            uuid.New().String(),
		AdminID:       adminID,
		Type:          in.Type,
		TypeOther:     in.TypeOther,
		Size:          in.Size,
		Weight:        in.Weight,
		Unit:          in.Unit,
		OriginalStock: in.OriginalStock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(paper); err != nil {
		return nil, err
	}
	return uc.toPaperResponse(paper)
}

// GetByID returns a paper with its current ledger balance.
func (uc *PaperUseCase) GetByID(adminID, id string) (*dto.PaperResponse, error) {
	paper, err := uc.repo.GetByID(adminID, id)
	if err != nil {
		return nil, err
	}
	if paper == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toPaperResponse(paper)
}

// List returns the tenant's papers with current balances.
func (uc *PaperUseCase) List(adminID string, page dto.PageRequest) ([]*dto.PaperResponse, error) {
	page.DefaultPage()
	papers, err := uc.repo.ListByAdmin(adminID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaperResponse, len(papers))
	for i, p := range papers {
		resp, err := uc.toPaperResponse(p)
		if err != nil {
			return nil, err
		}
		out[i] = resp
	}
	return out, nil
}

// Update applies a partial update. OriginalStock is rejected once stock
// entries exist against the paper.
func (uc *PaperUseCase) Update(adminID, id string, in dto.UpdatePaperRequest) (*dto.PaperResponse, error) {
	paper, err := uc.repo.GetByID(adminID, id)
	if err != nil {
		return nil, err
	}
	if paper == nil {
		return nil, domain.ErrNotFound
	}
	if in.OriginalStock != nil {
		count, err := uc.entryRepo.CountByPaper(adminID, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, domain.ErrConflict
		}
		if in.OriginalStock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		paper.OriginalStock = *in.OriginalStock
	}
	if in.Type != nil {
		if !entity.ValidPaperType(*in.Type) {
			return nil, domain.ErrInvalidInput
		}
		paper.Type = *in.Type
	}
	if in.TypeOther != nil {
		paper.TypeOther = *in.TypeOther
	}
	if paper.Type == entity.PaperTypeOther && paper.TypeOther == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Size != nil {
		paper.Size = *in.Size
	}
	if in.Weight != nil {
		paper.Weight = *in.Weight
	}
	if in.Unit != nil {
		paper.Unit = *in.Unit
	}
	paper.UpdatedAt = time.Now()
	if err := uc.repo.Update(paper); err != nil {
		return nil, err
	}
	return uc.toPaperResponse(paper)
}

// Delete removes a paper. Papers with ledger entries cannot be deleted; that
// would orphan the entries and their balances.
func (uc *PaperUseCase) Delete(adminID, id string) error {
	paper, err := uc.repo.GetByID(adminID, id)
	if err != nil {
		return err
	}
	if paper == nil {
		return domain.ErrNotFound
	}
	count, err := uc.entryRepo.CountByPaper(adminID, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(adminID, id)
}

func (uc *PaperUseCase) toPaperResponse(p *entity.Paper) (*dto.PaperResponse, error) {
	current, err := uc.currentBalance(p)
	if err != nil {
		return nil, err
	}
	return &dto.PaperResponse{
		ID:            p.ID,
		Type:          p.Type,
		TypeOther:     p.TypeOther,
		Size:          p.Size,
		Weight:        p.Weight,
		Unit:          p.Unit,
		OriginalStock: p.OriginalStock,
		CurrentStock:  current,
	}, nil
}

func (uc *PaperUseCase) currentBalance(p *entity.Paper) (decimal.Decimal, error) {
	entries, err := uc.entryRepo.ListByPaperAsc(p.AdminID, p.ID)
	if err != nil {
		return decimal.Zero, err
	}
	if len(entries) == 0 {
		return p.OriginalStock, nil
	}
	return entries[len(entries)-1].Remaining, nil
}
