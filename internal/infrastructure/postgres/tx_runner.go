package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sajiloprint/press-api/internal/application/ledger"
	"github.com/sajiloprint/press-api/internal/application/usecase"
	"github.com/sajiloprint/press-api/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner and usecase.DocumentTxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)
var _ usecase.DocumentTxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner around the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, runs fn with ledger repos bound to the tx, and
// commits or rolls back.
func (r *TxRunner) Run(ctx context.Context, fn func(
	paperRepo repository.PaperRepository,
	entryRepo repository.StockEntryRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	paperRepo := NewPaperRepository(tx)
	entryRepo := NewStockEntryRepository(tx)

	if err := fn(paperRepo, entryRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunDocuments begins a transaction with the repositories document creation
// needs (counter plus document repos).
func (r *TxRunner) RunDocuments(ctx context.Context, fn func(
	counterRepo repository.CounterRepository,
	jobRepo repository.JobRepository,
	quotationRepo repository.QuotationRepository,
	estimateRepo repository.EstimateRepository,
	challanRepo repository.ChallanRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	counterRepo := NewCounterRepository(tx)
	jobRepo := NewJobRepository(tx)
	quotationRepo := NewQuotationRepository(tx)
	estimateRepo := NewEstimateRepository(tx)
	challanRepo := NewChallanRepository(tx)

	if err := fn(counterRepo, jobRepo, quotationRepo, estimateRepo, challanRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
