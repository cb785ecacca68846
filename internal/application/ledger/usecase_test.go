package ledger_test

import (
	"context"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajiloprint/press-api/internal/application/dto"
	applledger "github.com/sajiloprint/press-api/internal/application/ledger"
	"github.com/sajiloprint/press-api/internal/domain"
	"github.com/sajiloprint/press-api/internal/domain/entity"
	"github.com/sajiloprint/press-api/internal/domain/repository"
	"github.com/sajiloprint/press-api/pkg/bsdate"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes. The tx runner hands the use case the same stores, so the
// scenarios exercise the full fetch-recompute-persist orchestration without a
// database.
// ──────────────────────────────────────────────────────────────────────────────

type fakePaperRepo struct {
	papers map[string]*entity.Paper
}

func (f *fakePaperRepo) Create(p *entity.Paper) error { f.papers[p.ID] = p; return nil }
func (f *fakePaperRepo) GetByID(adminID, id string) (*entity.Paper, error) {
	p := f.papers[id]
	if p == nil || p.AdminID != adminID {
		return nil, nil
	}
	return p, nil
}
func (f *fakePaperRepo) GetForUpdate(adminID, id string) (*entity.Paper, error) {
	return f.GetByID(adminID, id)
}
func (f *fakePaperRepo) ListByAdmin(adminID string, limit, offset int) ([]*entity.Paper, error) {
	return nil, nil
}
func (f *fakePaperRepo) Update(p *entity.Paper) error      { return nil }
func (f *fakePaperRepo) Delete(adminID, id string) error   { return nil }

type fakeEntryRepo struct {
	entries map[string]*entity.StockEntry
}

func (f *fakeEntryRepo) Create(e *entity.StockEntry) error {
	cp := *e
	f.entries[e.ID] = &cp
	return nil
}
func (f *fakeEntryRepo) GetByID(adminID, id string) (*entity.StockEntry, error) {
	e := f.entries[id]
	if e == nil || e.AdminID != adminID {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}
func (f *fakeEntryRepo) ListByPaperAsc(adminID, paperID string) ([]*entity.StockEntry, error) {
	var out []*entity.StockEntry
	for _, e := range f.entries {
		if e.AdminID == adminID && e.PaperID == paperID {
			cp := *e
			out = append(out, &cp)
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
func (f *fakeEntryRepo) ListByPaperDesc(adminID, paperID string) ([]*entity.StockEntry, error) {
	asc, _ := f.ListByPaperAsc(adminID, paperID)
	for i, j := 0, len(asc)-1; i < j; i, j = i+1, j-1 {
		asc[i], asc[j] = asc[j], asc[i]
	}
	return asc, nil
}
func (f *fakeEntryRepo) Update(e *entity.StockEntry) error {
	cp := *e
	f.entries[e.ID] = &cp
	return nil
}
func (f *fakeEntryRepo) UpdateBalance(e *entity.StockEntry) error {
	stored, ok := f.entries[e.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Remaining = e.Remaining
	stored.Clamped = e.Clamped
	return nil
}
func (f *fakeEntryRepo) Delete(adminID, id string) error {
	delete(f.entries, id)
	return nil
}
func (f *fakeEntryRepo) CountByPaper(adminID, paperID string) (int, error) {
	list, _ := f.ListByPaperAsc(adminID, paperID)
	return len(list), nil
}

type fakeJobRepo struct {
	jobs map[string]*entity.Job
}

func (f *fakeJobRepo) Create(j *entity.Job) error { f.jobs[j.ID] = j; return nil }
func (f *fakeJobRepo) GetByID(adminID, id string) (*entity.Job, error) {
	j := f.jobs[id]
	if j == nil || j.AdminID != adminID {
		return nil, nil
	}
	return j, nil
}
func (f *fakeJobRepo) ListByAdmin(adminID string, limit, offset int) ([]*entity.Job, error) {
	return nil, nil
}
func (f *fakeJobRepo) Update(j *entity.Job) error    { return nil }
func (f *fakeJobRepo) Delete(adminID, id string) error { return nil }

type fakeTxRunner struct {
	paperRepo *fakePaperRepo
	entryRepo *fakeEntryRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.PaperRepository, repository.StockEntryRepository) error) error {
	return fn(f.paperRepo, f.entryRepo)
}

// ──────────────────────────────────────────────────────────────────────────────

const (
	testAdmin = "admin-1"
	testPaper = "paper-1"
)

func newFixture(originalStock int64) (*applledger.StockEntryUseCase, *fakeEntryRepo) {
	papers := &fakePaperRepo{papers: map[string]*entity.Paper{
		testPaper: {
			ID:            testPaper,
			AdminID:       testAdmin,
			Type:          entity.PaperTypeArt,
			OriginalStock: decimal.NewFromInt(originalStock),
		},
	}}
	entries := &fakeEntryRepo{entries: map[string]*entity.StockEntry{}}
	jobs := &fakeJobRepo{jobs: map[string]*entity.Job{
		"job-1": {ID: "job-1", AdminID: testAdmin, JobNo: "JOB-0007", Name: "Wedding cards"},
	}}
	tx := &fakeTxRunner{paperRepo: papers, entryRepo: entries}
	return applledger.NewStockEntryUseCase(tx, papers, entries, jobs), entries
}

func issueReq(date string, issued, wastage int64) dto.CreateStockEntryRequest {
	return dto.CreateStockEntryRequest{
		PaperID:     testPaper,
		Date:        date,
		EntryType:   entity.EntryTypeIssue,
		IssuedPaper: decimal.NewFromInt(issued),
		Wastage:     decimal.NewFromInt(wastage),
	}
}

func additionReq(date string, added int64) dto.CreateStockEntryRequest {
	return dto.CreateStockEntryRequest{
		PaperID:    testPaper,
		Date:       date,
		EntryType:  entity.EntryTypeAddition,
		AddedStock: decimal.NewFromInt(added),
	}
}

func storedRemaining(t *testing.T, repo *fakeEntryRepo, id string) int64 {
	t.Helper()
	e, err := repo.GetByID(testAdmin, id)
	require.NoError(t, err)
	require.NotNil(t, e)
	return e.Remaining.IntPart()
}

// Scenario from the ledger's product behavior: issue, addition, edit, a
// backdated insert in between, then delete it again.
func TestStockEntryLifecycle(t *testing.T) {
	ctx := context.Background()
	uc, repo := newFixture(1000)

	a, err := uc.Create(ctx, testAdmin, issueReq("2081-01-01", 100, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 890, a.Remaining.IntPart())

	b, err := uc.Create(ctx, testAdmin, additionReq("2081-01-05", 200))
	require.NoError(t, err)
	assert.EqualValues(t, 1090, b.Remaining.IntPart())

	// Edit A: issued 100 -> 50. B's stored balance must follow.
	fifty := decimal.NewFromInt(50)
	edited, err := uc.Update(ctx, testAdmin, a.ID, dto.UpdateStockEntryRequest{IssuedPaper: &fifty})
	require.NoError(t, err)
	assert.EqualValues(t, 940, edited.Remaining.IntPart())
	assert.EqualValues(t, 1140, storedRemaining(t, repo, b.ID))

	// Backdated insert between A and B.
	c, err := uc.Create(ctx, testAdmin, issueReq("2081-01-03", 40, 0))
	require.NoError(t, err)
	assert.EqualValues(t, 900, c.Remaining.IntPart())
	assert.EqualValues(t, 1100, storedRemaining(t, repo, b.ID))

	// Delete C: B reseeds from A.
	require.NoError(t, uc.Delete(ctx, testAdmin, c.ID))
	assert.EqualValues(t, 1140, storedRemaining(t, repo, b.ID))
}

func TestCreate_OverdrawClampsAndFlags(t *testing.T) {
	ctx := context.Background()
	uc, _ := newFixture(100)

	out, err := uc.Create(ctx, testAdmin, issueReq("2081-01-01", 2000, 0))
	require.NoError(t, err)
	assert.True(t, out.Remaining.IsZero())
	assert.True(t, out.Clamped)
}

func TestUpdate_DateChangeMovesEntry(t *testing.T) {
	ctx := context.Background()
	uc, repo := newFixture(1000)

	a, err := uc.Create(ctx, testAdmin, issueReq("2081-01-01", 100, 0))
	require.NoError(t, err)
	b, err := uc.Create(ctx, testAdmin, issueReq("2081-01-05", 50, 0))
	require.NoError(t, err)

	// Move B before A; the cascade reruns from the new head of the ledger.
	newDate := "2080-12-20"
	_, err = uc.Update(ctx, testAdmin, b.ID, dto.UpdateStockEntryRequest{Date: &newDate})
	require.NoError(t, err)

	assert.EqualValues(t, 950, storedRemaining(t, repo, b.ID))
	assert.EqualValues(t, 850, storedRemaining(t, repo, a.ID))
}

func TestCreate_JobSnapshotDenormalized(t *testing.T) {
	ctx := context.Background()
	uc, _ := newFixture(1000)

	req := issueReq("2081-01-01", 10, 0)
	req.JobID = "job-1"
	out, err := uc.Create(ctx, testAdmin, req)
	require.NoError(t, err)
	assert.Equal(t, "JOB-0007", out.JobNo)
	assert.Equal(t, "Wedding cards", out.JobName)
}

func TestCreate_UnknownPaperIsNotFound(t *testing.T) {
	ctx := context.Background()
	uc, _ := newFixture(1000)

	req := issueReq("2081-01-01", 10, 0)
	req.PaperID = "missing"
	_, err := uc.Create(ctx, testAdmin, req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCrossTenantLooksLikeNotFound(t *testing.T) {
	ctx := context.Background()
	uc, _ := newFixture(1000)

	out, err := uc.Create(ctx, testAdmin, issueReq("2081-01-01", 10, 0))
	require.NoError(t, err)

	_, err = uc.GetByID("other-admin", out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(ctx, "other-admin", out.ID, dto.UpdateStockEntryRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(ctx, "other-admin", out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ValidationRejectsMixedRow(t *testing.T) {
	ctx := context.Background()
	uc, _ := newFixture(1000)

	req := issueReq("2081-01-01", 10, 0)
	req.AddedStock = decimal.NewFromInt(5)
	_, err := uc.Create(ctx, testAdmin, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListByPaper_DisplayOrderIsDateDescending(t *testing.T) {
	ctx := context.Background()
	uc, _ := newFixture(1000)

	_, err := uc.Create(ctx, testAdmin, issueReq("2081-01-01", 10, 0))
	require.NoError(t, err)
	_, err = uc.Create(ctx, testAdmin, issueReq("2081-01-10", 10, 0))
	require.NoError(t, err)
	_, err = uc.Create(ctx, testAdmin, issueReq("2081-01-05", 10, 0))
	require.NoError(t, err)

	list, err := uc.ListByPaper(testAdmin, testPaper)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2081-01-10", list[0].Date)
	assert.Equal(t, "2081-01-05", list[1].Date)
	assert.Equal(t, "2081-01-01", list[2].Date)
}
