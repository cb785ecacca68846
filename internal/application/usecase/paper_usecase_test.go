package usecase_test

import (
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajiloprint/press-api/internal/application/usecase"
	"github.com/sajiloprint/press-api/internal/domain"
	"github.com/sajiloprint/press-api/internal/domain/entity"
	"github.com/sajiloprint/press-api/pkg/bsdate"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes, read paths only: the paper use case computes its current
// balance from the stored ledger without mutating it.
// ──────────────────────────────────────────────────────────────────────────────

type paperStore struct {
	papers map[string]*entity.Paper
}

func (s *paperStore) Create(p *entity.Paper) error { s.papers[p.ID] = p; return nil }
func (s *paperStore) GetByID(adminID, id string) (*entity.Paper, error) {
	p := s.papers[id]
	if p == nil || p.AdminID != adminID {
		return nil, nil
	}
	return p, nil
}
func (s *paperStore) GetForUpdate(adminID, id string) (*entity.Paper, error) {
	return s.GetByID(adminID, id)
}
func (s *paperStore) ListByAdmin(adminID string, limit, offset int) ([]*entity.Paper, error) {
	var out []*entity.Paper
	for _, p := range s.papers {
		if p.AdminID == adminID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (s *paperStore) Update(p *entity.Paper) error { s.papers[p.ID] = p; return nil }
func (s *paperStore) Delete(adminID, id string) error {
	delete(s.papers, id)
	return nil
}

type entryStore struct {
	entries map[string]*entity.StockEntry
}

func (s *entryStore) Create(e *entity.StockEntry) error { s.entries[e.ID] = e; return nil }
func (s *entryStore) GetByID(adminID, id string) (*entity.StockEntry, error) {
	e := s.entries[id]
	if e == nil || e.AdminID != adminID {
		return nil, nil
	}
	return e, nil
}
func (s *entryStore) ListByPaperAsc(adminID, paperID string) ([]*entity.StockEntry, error) {
	var out []*entity.StockEntry
	for _, e := range s.entries {
		if e.AdminID == adminID && e.PaperID == paperID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if c := bsdate.Compare(out[i].Date, out[j].Date); c != 0 {
			return c < 0
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
func (s *entryStore) ListByPaperDesc(adminID, paperID string) ([]*entity.StockEntry, error) {
	asc, _ := s.ListByPaperAsc(adminID, paperID)
	for i, j := 0, len(asc)-1; i < j; i, j = i+1, j-1 {
		asc[i], asc[j] = asc[j], asc[i]
	}
	return asc, nil
}
func (s *entryStore) Update(e *entity.StockEntry) error        { s.entries[e.ID] = e; return nil }
func (s *entryStore) UpdateBalance(e *entity.StockEntry) error { s.entries[e.ID] = e; return nil }
func (s *entryStore) Delete(adminID, id string) error {
	delete(s.entries, id)
	return nil
}
func (s *entryStore) CountByPaper(adminID, paperID string) (int, error) {
	n := 0
	for _, e := range s.entries {
		if e.AdminID == adminID && e.PaperID == paperID {
			n++
		}
	}
	return n, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Scenarios
// ──────────────────────────────────────────────────────────────────────────────

const paperAdmin = "admin-1"

func newPaperFixture() (*usecase.PaperUseCase, *paperStore, *entryStore) {
	papers := &paperStore{papers: map[string]*entity.Paper{}}
	entries := &entryStore{entries: map[string]*entity.StockEntry{}}
	return usecase.NewPaperUseCase(papers, entries), papers, entries
}

func seedPaper(papers *paperStore, id string, originalStock int64) *entity.Paper {
	p := &entity.Paper{
		ID:            id,
		AdminID:       paperAdmin,
		Type:          entity.PaperTypeArt,
		Size:          "25x36",
		Weight:        "80gsm",
		Unit:          "sheets",
		OriginalStock: decimal.NewFromInt(originalStock),
	}
	papers.papers[id] = p
	return p
}

func seedLedgerRow(entries *entryStore, id, paperID, date string, remaining int64, at time.Time) {
	entries.entries[id] = &entity.StockEntry{
		ID:        id,
		AdminID:   paperAdmin,
		PaperID:   paperID,
		Date:      date,
		EntryType: entity.EntryTypeIssue,
		Remaining: decimal.NewFromInt(remaining),
		CreatedAt: at,
	}
}

func TestPaperGetByID_EmptyLedgerBalanceIsOriginalStock(t *testing.T) {
	uc, papers, _ := newPaperFixture()
	seedPaper(papers, "p1", 1000)

	out, err := uc.GetByID(paperAdmin, "p1")
	require.NoError(t, err)
	assert.EqualValues(t, 1000, out.CurrentStock.IntPart())
}

func TestPaperGetByID_BalanceIsLastEntryRemaining(t *testing.T) {
	uc, papers, entries := newPaperFixture()
	seedPaper(papers, "p1", 1000)
	seedLedgerRow(entries, "e1", "p1", "2081-01-01", 900, time.Unix(1, 0))
	seedLedgerRow(entries, "e2", "p1", "2081-01-05", 850, time.Unix(2, 0))
	// Latest by date, not by insertion order.
	seedLedgerRow(entries, "e3", "p1", "2081-01-03", 870, time.Unix(3, 0))

	out, err := uc.GetByID(paperAdmin, "p1")
	require.NoError(t, err)
	assert.EqualValues(t, 850, out.CurrentStock.IntPart())
}

func TestPaperGetByID_CrossTenantIsNotFound(t *testing.T) {
	uc, papers, _ := newPaperFixture()
	seedPaper(papers, "p1", 1000)

	_, err := uc.GetByID("other-admin", "p1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPaperDelete_RefusedWhileLedgerRowsExist(t *testing.T) {
	uc, papers, entries := newPaperFixture()
	seedPaper(papers, "p1", 1000)
	seedLedgerRow(entries, "e1", "p1", "2081-01-01", 900, time.Unix(1, 0))

	err := uc.Delete(paperAdmin, "p1")
	assert.ErrorIs(t, err, domain.ErrConflict)

	entries.entries = map[string]*entity.StockEntry{}
	require.NoError(t, uc.Delete(paperAdmin, "p1"))
}
