package payment

import (
	"errors"
	"regexp"

	"library-clean-service/internal/domain/fees"
)

var (
	ErrInvalidTransactionRef = errors.New("invalid transaction reference")
	ErrAmountNotPositive     = errors.New("refund amount must be greater than 0")
	ErrAmountExceedsCap      = errors.New("refund amount exceeds the maximum late fee")
)

// Gateway references look like "txn_8f2e1c": a txn_ prefix followed by an
// opaque alphanumeric token. Anything else is noise and never hits the
// gateway.
var transactionRefPattern = regexp.MustCompile(`^txn_[A-Za-z0-9]+$`)

type TransactionRef struct {
	value string
}

func NewTransactionRef(value string) (TransactionRef, error) {
	if !transactionRefPattern.MatchString(value) {
		return TransactionRef{}, ErrInvalidTransactionRef
	}
	return TransactionRef{value: value}, nil
}

func (t TransactionRef) String() string {
	return t.value
}

// RefundAmount is bounded by the late-fee ceiling: no single fee can exceed
// it, so no refund may either.
type RefundAmount struct {
	amount fees.Money
}

func NewRefundAmount(dollars float64) (RefundAmount, error) {
	if dollars <= 0 {
		return RefundAmount{}, ErrAmountNotPositive
	}
	amount, err := fees.MoneyFromDollars(dollars)
	if err != nil {
		return RefundAmount{}, ErrAmountNotPositive
	}
	if amount.Cents() > fees.MaxFeeCents {
		return RefundAmount{}, ErrAmountExceedsCap
	}
	return RefundAmount{amount: amount}, nil
}

func (r RefundAmount) Money() fees.Money {
	return r.amount
}
