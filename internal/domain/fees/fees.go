// Package fees holds the late-fee policy: a cheap first week, a steeper
// per-day rate afterward, and a hard cap. All arithmetic is done in cents
// so tier math and the cap are exact.
package fees

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// DailyRateCents applies through the first overdue week.
	DailyRateCents int64 = 50
	// ExtendedRateCents applies from day eight onward.
	ExtendedRateCents int64 = 100
	// FirstTierDays is the length of the cheap tier.
	FirstTierDays = 7
	// MaxFeeCents caps any single fee at $15.00.
	MaxFeeCents int64 = 1500
)

var ErrNegativeAmount = errors.New("amount cannot be negative")

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// MoneyFromDollars converts a decimal dollar amount, rounding to the cent.
func MoneyFromDollars(dollars float64) (Money, error) {
	cents := int64(math.Round(dollars * 100))
	return NewMoney(cents)
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Dollars())
}

type Status string

const (
	StatusNoRecord Status = "no record found"
	StatusOnTime   Status = "returned on time"
	StatusOverdue  Status = "overdue"
)

// Result is derived on demand from a borrow record and never persisted.
type Result struct {
	Amount      Money
	DaysOverdue int
	Status      Status
}

func NoRecordResult() Result {
	return Result{Status: StatusNoRecord}
}

// Assess computes the fee for a record with the given due date. The
// reference point is the return time when the record is settled, otherwise
// now. Partial days do not count: a record is one day overdue only once a
// full 24 hours have elapsed past the due date.
func Assess(dueAt time.Time, returnedAt *time.Time, now time.Time) Result {
	reference := now
	if returnedAt != nil {
		reference = *returnedAt
	}

	daysOverdue := int(reference.Sub(dueAt).Hours() / 24)
	if daysOverdue <= 0 {
		return Result{Status: StatusOnTime}
	}

	var cents int64
	if daysOverdue <= FirstTierDays {
		cents = int64(daysOverdue) * DailyRateCents
	} else {
		cents = int64(FirstTierDays)*DailyRateCents + int64(daysOverdue-FirstTierDays)*ExtendedRateCents
	}
	if cents > MaxFeeCents {
		cents = MaxFeeCents
	}

	return Result{
		Amount:      Money{cents: cents},
		DaysOverdue: daysOverdue,
		Status:      StatusOverdue,
	}
}
