package queries

import (
	"context"

	"library-clean-service/internal/domain/borrowing"
	"library-clean-service/internal/domain/fees"
	"library-clean-service/internal/pkg/clock"
	"library-clean-service/internal/pkg/errs"
)

//go:generate mockgen -source=report.go -destination=../../../tests/mock/queries/report_mock.go -package=queriesmock

type ReportQueries interface {
	// PatronStatusReport aggregates a patron's outstanding loans and the sum
	// of their accrued fees. Read-only composition; cents arithmetic makes
	// the single end rounding exact.
	PatronStatusReport(ctx context.Context, patronID string) (*PatronReportView, error)
}

type reportQueriesImpl struct {
	records BorrowReadStore
	clock   clock.Clock
}

func NewReportQueries(records BorrowReadStore, clk clock.Clock) ReportQueries {
	return &reportQueriesImpl{records: records, clock: clk}
}

func (q *reportQueriesImpl) PatronStatusReport(ctx context.Context, patronID string) (*PatronReportView, error) {
	patron, err := borrowing.NewPatronID(patronID)
	if err != nil {
		return nil, err
	}

	loans, err := q.records.OutstandingByPatron(ctx, patron.String())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	now := q.clock.Now()
	var total fees.Money
	borrowed := make([]LoanView, 0, len(loans))
	for _, loan := range loans {
		result := fees.Assess(loan.DueAt, loan.ReturnedAt, now)
		total = total.Add(result.Amount)
		borrowed = append(borrowed, *loan)
	}

	return &PatronReportView{
		PatronID:      patron.String(),
		BorrowedBooks: borrowed,
		TotalLateFees: total,
		BorrowedCount: len(borrowed),
	}, nil
}
