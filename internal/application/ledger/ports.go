package ledger

import (
	"context"

	"github.com/sajiloprint/press-api/internal/domain/repository"
)

// TxRunner executes a function inside a DB transaction, handing it
// repositories bound to that transaction. The ledger use cases run every
// fetch-recompute-persist sequence through it so a mid-cascade failure rolls
// the whole mutation back.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		paperRepo repository.PaperRepository,
		entryRepo repository.StockEntryRepository,
	) error) error
}
