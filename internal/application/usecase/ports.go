package usecase

import (
	"context"
	"fmt"

	"github.com/sajiloprint/press-api/internal/domain/repository"
)

// DocumentTxRunner executes a function inside a DB transaction with the
// repositories document creation needs. Taking the next counter value and
// inserting the document happen atomically, so a rolled-back create does not
// burn a number.
type DocumentTxRunner interface {
	RunDocuments(ctx context.Context, fn func(
		counterRepo repository.CounterRepository,
		jobRepo repository.JobRepository,
		quotationRepo repository.QuotationRepository,
		estimateRepo repository.EstimateRepository,
		challanRepo repository.ChallanRepository,
	) error) error
}

// formatDocNo renders a counter value as a prefixed document number,
// e.g. ("QTN", 7) -> "QTN-0007".
func formatDocNo(prefix string, n int64) string {
	return fmt.Sprintf("%s-%04d", prefix, n)
}
