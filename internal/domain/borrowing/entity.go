package borrowing

import (
	"errors"
	"time"

	"library-clean-service/internal/pkg/clock"
)

const (
	// LoanPeriodDays is the standard loan window before a record is overdue.
	LoanPeriodDays = 14
	// MaxOutstandingLoans is the advertised per-patron limit. The workflow
	// rejects a borrow only once the outstanding count exceeds this value,
	// so a patron can in fact reach six open records; that boundary is the
	// documented product behavior and is asserted by tests.
	MaxOutstandingLoans = 5
)

var ErrAlreadyReturned = errors.New("borrow record is already returned")

// Record tracks a single copy loan. It transitions exactly once, from
// outstanding to returned, and is never deleted.
type Record struct {
	id         int64
	patronID   PatronID
	bookID     int64
	borrowedAt time.Time
	dueAt      time.Time
	returnedAt *time.Time
}

// NewRecord opens an outstanding loan due LoanPeriodDays from now.
func NewRecord(clk clock.Clock, patronID PatronID, bookID int64) *Record {
	now := clk.Now()
	return &Record{
		patronID:   patronID,
		bookID:     bookID,
		borrowedAt: now,
		dueAt:      now.AddDate(0, 0, LoanPeriodDays),
	}
}

func ReconstructRecord(id int64, patronID PatronID, bookID int64, borrowedAt, dueAt time.Time, returnedAt *time.Time) *Record {
	return &Record{
		id:         id,
		patronID:   patronID,
		bookID:     bookID,
		borrowedAt: borrowedAt,
		dueAt:      dueAt,
		returnedAt: returnedAt,
	}
}

func (r *Record) IsOutstanding() bool {
	return r.returnedAt == nil
}

// MarkReturned stamps the return time. Returning twice is a bug in the
// caller, not a state this entity allows.
func (r *Record) MarkReturned(at time.Time) error {
	if r.returnedAt != nil {
		return ErrAlreadyReturned
	}
	r.returnedAt = &at
	return nil
}

func (r *Record) ID() int64              { return r.id }
func (r *Record) PatronID() PatronID     { return r.patronID }
func (r *Record) BookID() int64          { return r.bookID }
func (r *Record) BorrowedAt() time.Time  { return r.borrowedAt }
func (r *Record) DueAt() time.Time       { return r.dueAt }
func (r *Record) ReturnedAt() *time.Time { return r.returnedAt }
