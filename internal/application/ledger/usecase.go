package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sajiloprint/press-api/internal/application/dto"
	"github.com/sajiloprint/press-api/internal/domain"
	"github.com/sajiloprint/press-api/internal/domain/entity"
	domledger "github.com/sajiloprint/press-api/internal/domain/ledger"
	"github.com/sajiloprint/press-api/internal/domain/repository"
)

// StockEntryUseCase orchestrates the paper stock ledger: CRUD on entries plus
// the recomputation cascade that keeps every Remaining consistent.
//
// Every mutation runs inside one transaction that first locks the paper row
// (SELECT FOR UPDATE), so concurrent edits of the same paper's ledger
// serialize and a failed cascade never leaves a stale suffix behind.
type StockEntryUseCase struct {
	tx        TxRunner
	paperRepo repository.PaperRepository
	entryRepo repository.StockEntryRepository
	jobRepo   repository.JobRepository
}

// NewStockEntryUseCase builds the use case. paperRepo/entryRepo are the
// pool-bound repos used for reads; mutations get tx-bound ones from tx.
func NewStockEntryUseCase(tx TxRunner, paperRepo repository.PaperRepository, entryRepo repository.StockEntryRepository, jobRepo repository.JobRepository) *StockEntryUseCase {
	return &StockEntryUseCase{tx: tx, paperRepo: paperRepo, entryRepo: entryRepo, jobRepo: jobRepo}
}

// Create inserts a ledger row and recomputes from its sorted position. An
// append gets just its own balance computed; a backdated entry triggers the
// forward cascade over everything after it.
func (uc *StockEntryUseCase) Create(ctx context.Context, adminID string, in dto.CreateStockEntryRequest) (*dto.StockEntryResponse, error) {
	now := time.Now()
	entry := &entity.StockEntry{
		ID:          uuid.New().String(),
		AdminID:     adminID,
		PaperID:     in.PaperID,
		Date:        in.Date,
		EntryType:   in.EntryType,
		IssuedPaper: in.IssuedPaper,
		Wastage:     in.Wastage,
		AddedStock:  in.AddedStock,
		JobID:       in.JobID,
		JobNo:       in.JobNo,
		JobName:     in.JobName,
		Remarks:     in.Remarks,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.PaperID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := domledger.ValidateEntry(entry); err != nil {
		return nil, err
	}
	if err := uc.resolveJobSnapshot(adminID, entry); err != nil {
		return nil, err
	}

	err := uc.tx.Run(ctx, func(paperRepo repository.PaperRepository, entryRepo repository.StockEntryRepository) error {
		paper, err := paperRepo.GetForUpdate(adminID, in.PaperID)
		if err != nil {
			return err
		}
		if paper == nil {
			return domain.ErrNotFound
		}
		entries, err := entryRepo.ListByPaperAsc(adminID, in.PaperID)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
		domledger.Sort(entries)
		pos := domledger.IndexOf(entries, entry.ID)
		changed := domledger.RecomputeFrom(paper.OriginalStock, entries, pos)

		if err := entryRepo.Create(entry); err != nil {
			return err
		}
		return persistBalances(entryRepo, changed, entry.ID)
	})
	if err != nil {
		return nil, err
	}
	return toStockEntryResponse(entry), nil
}

// GetByID returns a single entry scoped to the tenant.
func (uc *StockEntryUseCase) GetByID(adminID, id string) (*dto.StockEntryResponse, error) {
	entry, err := uc.entryRepo.GetByID(adminID, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	return toStockEntryResponse(entry), nil
}

// ListByPaper returns a paper's entries in display order (date descending).
// No recomputation side effect.
func (uc *StockEntryUseCase) ListByPaper(adminID, paperID string) ([]*dto.StockEntryResponse, error) {
	paper, err := uc.paperRepo.GetByID(adminID, paperID)
	if err != nil {
		return nil, err
	}
	if paper == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := uc.entryRepo.ListByPaperDesc(adminID, paperID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = toStockEntryResponse(e)
	}
	return out, nil
}

// Update applies a partial edit, then recomputes. A date change can move the
// entry's sort position; the cascade runs from the earlier of the old and new
// positions so the whole sequence ends up consistent.
func (uc *StockEntryUseCase) Update(ctx context.Context, adminID, id string, in dto.UpdateStockEntryRequest) (*dto.StockEntryResponse, error) {
	var updated *entity.StockEntry
	err := uc.tx.Run(ctx, func(paperRepo repository.PaperRepository, entryRepo repository.StockEntryRepository) error {
		current, err := entryRepo.GetByID(adminID, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		paper, err := paperRepo.GetForUpdate(adminID, current.PaperID)
		if err != nil {
			return err
		}
		if paper == nil {
			return domain.ErrNotFound
		}
		entries, err := entryRepo.ListByPaperAsc(adminID, current.PaperID)
		if err != nil {
			return err
		}
		oldPos := domledger.IndexOf(entries, id)
		if oldPos < 0 {
			return domain.ErrNotFound
		}
		entry := entries[oldPos]
		applyEntryUpdate(entry, in)
		if err := domledger.ValidateEntry(entry); err != nil {
			return err
		}
		if err := uc.resolveJobSnapshot(adminID, entry); err != nil {
			return err
		}
		entry.UpdatedAt = time.Now()

		domledger.Sort(entries)
		newPos := domledger.IndexOf(entries, id)
		from := oldPos
		if newPos < from {
			from = newPos
		}
		changed := domledger.RecomputeFrom(paper.OriginalStock, entries, from)

		if err := entryRepo.Update(entry); err != nil {
			return err
		}
		updated = entry
		return persistBalances(entryRepo, changed, entry.ID)
	})
	if err != nil {
		return nil, err
	}
	return toStockEntryResponse(updated), nil
}

// Delete removes an entry and reseeds the suffix from its predecessor's
// remaining, or the paper's original stock when the deleted entry was first.
func (uc *StockEntryUseCase) Delete(ctx context.Context, adminID, id string) error {
	return uc.tx.Run(ctx, func(paperRepo repository.PaperRepository, entryRepo repository.StockEntryRepository) error {
		current, err := entryRepo.GetByID(adminID, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		paper, err := paperRepo.GetForUpdate(adminID, current.PaperID)
		if err != nil {
			return err
		}
		if paper == nil {
			return domain.ErrNotFound
		}
		entries, err := entryRepo.ListByPaperAsc(adminID, current.PaperID)
		if err != nil {
			return err
		}
		pos := domledger.IndexOf(entries, id)
		if pos < 0 {
			return domain.ErrNotFound
		}
		entries = append(entries[:pos], entries[pos+1:]...)

		if err := entryRepo.Delete(adminID, id); err != nil {
			return err
		}
		changed := domledger.RecomputeFrom(paper.OriginalStock, entries, pos)
		return persistBalances(entryRepo, changed, "")
	})
}

// resolveJobSnapshot denormalizes job number and name onto the entry when a
// job is referenced without explicit values. Snapshot at write time: later job
// renames do not propagate.
func (uc *StockEntryUseCase) resolveJobSnapshot(adminID string, entry *entity.StockEntry) error {
	if entry.JobID == "" || entry.JobNo != "" {
		return nil
	}
	job, err := uc.jobRepo.GetByID(adminID, entry.JobID)
	if err != nil {
		return err
	}
	if job == nil {
		return domain.ErrNotFound
	}
	entry.JobNo = job.JobNo
	entry.JobName = job.Name
	return nil
}

// persistBalances writes the recomputed balances in ledger order, skipping
// skipID (the row persisted separately by Create/Update). Order matters: each
// row's value was derived from its predecessor's.
func persistBalances(entryRepo repository.StockEntryRepository, changed []*entity.StockEntry, skipID string) error {
	for _, e := range changed {
		if e.ID == skipID {
			continue
		}
		if err := entryRepo.UpdateBalance(e); err != nil {
			return err
		}
	}
	return nil
}

func applyEntryUpdate(entry *entity.StockEntry, in dto.UpdateStockEntryRequest) {
	if in.Date != nil {
		entry.Date = *in.Date
	}
	if in.IssuedPaper != nil {
		entry.IssuedPaper = *in.IssuedPaper
	}
	if in.Wastage != nil {
		entry.Wastage = *in.Wastage
	}
	if in.AddedStock != nil {
		entry.AddedStock = *in.AddedStock
	}
	if in.JobID != nil {
		entry.JobID = *in.JobID
		// A new job reference re-resolves the snapshot unless the caller
		// supplied explicit values.
		entry.JobNo = ""
		entry.JobName = ""
	}
	if in.JobNo != nil {
		entry.JobNo = *in.JobNo
	}
	if in.JobName != nil {
		entry.JobName = *in.JobName
	}
	if in.Remarks != nil {
		entry.Remarks = *in.Remarks
	}
}

func toStockEntryResponse(e *entity.StockEntry) *dto.StockEntryResponse {
	return &dto.StockEntryResponse{
		ID:          e.ID,
		PaperID:     e.PaperID,
		Date:        e.Date,
		EntryType:   e.EntryType,
		IssuedPaper: e.IssuedPaper,
		Wastage:     e.Wastage,
		AddedStock:  e.AddedStock,
		Remaining:   e.Remaining,
		Clamped:     e.Clamped,
		JobID:       e.JobID,
		JobNo:       e.JobNo,
		JobName:     e.JobName,
		Remarks:     e.Remarks,
	}
}
