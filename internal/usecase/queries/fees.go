package queries

import (
	"context"

	"library-clean-service/internal/domain/borrowing"
	"library-clean-service/internal/domain/fees"
	"library-clean-service/internal/infra"
	"library-clean-service/internal/pkg/clock"
	"library-clean-service/internal/pkg/errs"
)

//go:generate mockgen -source=fees.go -destination=../../../tests/mock/queries/fees_mock.go -package=queriesmock

type FeeQueries interface {
	// LateFeeForBook recomputes the fee for the pair's most recent borrow
	// record on demand. A missing record is not an error; it reports a zero
	// fee with a "no record found" status.
	LateFeeForBook(ctx context.Context, patronID string, bookID int64) (*FeeView, error)
}

type feeQueriesImpl struct {
	records BorrowReadStore
	clock   clock.Clock
}

func NewFeeQueries(records BorrowReadStore, clk clock.Clock) FeeQueries {
	return &feeQueriesImpl{records: records, clock: clk}
}

func (q *feeQueriesImpl) LateFeeForBook(ctx context.Context, patronID string, bookID int64) (*FeeView, error) {
	patron, err := borrowing.NewPatronID(patronID)
	if err != nil {
		return nil, err
	}

	loan, err := q.records.LatestByPatronAndBook(ctx, patron.String(), bookID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return feeViewFromResult(fees.NoRecordResult()), nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	result := fees.Assess(loan.DueAt, loan.ReturnedAt, q.clock.Now())
	return feeViewFromResult(result), nil
}

func feeViewFromResult(r fees.Result) *FeeView {
	return &FeeView{
		FeeAmount:   r.Amount,
		DaysOverdue: r.DaysOverdue,
		Status:      r.Status,
	}
}
