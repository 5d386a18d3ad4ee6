package commands

import (
	"context"
	"fmt"

	"library-clean-service/internal/domain/borrowing"
	"library-clean-service/internal/domain/fees"
	"library-clean-service/internal/domain/payment"
	"library-clean-service/internal/infra"
	"library-clean-service/internal/pkg/clock"
	"library-clean-service/internal/pkg/errs"
)

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/commands/payment_mock.go -package=commandsmock

var (
	ErrNoOutstandingFees = errs.New("no outstanding fees for this book")
	ErrPaymentProcessing = errs.New("payment processing error")
	ErrPaymentDeclined   = errs.New("payment failed")
	ErrRefundProcessing  = errs.New("refund processing error")
	ErrRefundDeclined    = errs.New("refund failed")
)

type PaymentOutcome struct {
	TransactionRef string
	AmountPaid     fees.Money
	Message        string
}

type RefundOutcome struct {
	Message string
}

type PaymentCommands interface {
	PayLateFee(ctx context.Context, patronID string, bookID int64) (*PaymentOutcome, error)
	RefundLateFeePayment(ctx context.Context, transactionRef string, amount float64) (*RefundOutcome, error)
}

type paymentUseCaseImpl struct {
	bookRepo   BookRepository
	recordRepo BorrowRecordRepository
	gateway    PaymentGateway
	clock      clock.Clock
}

func NewPaymentCommands(bookRepo BookRepository, recordRepo BorrowRecordRepository, gateway PaymentGateway, clk clock.Clock) PaymentCommands {
	return &paymentUseCaseImpl{
		bookRepo:   bookRepo,
		recordRepo: recordRepo,
		gateway:    gateway,
		clock:      clk,
	}
}

// PayLateFee settles the fee for a single book through the gateway. It never
// touches borrow or book state: settlement is independent of return-state
// bookkeeping. Every validation failure happens before the gateway is
// called, and no gateway fault escapes as anything but an error value.
func (uc *paymentUseCaseImpl) PayLateFee(ctx context.Context, patronID string, bookID int64) (*PaymentOutcome, error) {
	patron, err := borrowing.NewPatronID(patronID)
	if err != nil {
		return nil, err
	}

	bookSnap, err := uc.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	fee, err := uc.assessLatestFee(ctx, patron.String(), bookID)
	if err != nil {
		return nil, err
	}
	if fee.Amount.IsZero() {
		return nil, ErrNoOutstandingFees
	}

	description := fmt.Sprintf("Late fees for '%s'", bookSnap.Title)
	receipt, err := uc.gateway.ProcessPayment(ctx, patron.String(), fee.Amount, description)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentProcessing)
	}
	if !receipt.Success {
		return nil, errs.Mark(errs.Newf("gateway declined: %s", receipt.Message), ErrPaymentDeclined)
	}

	return &PaymentOutcome{
		TransactionRef: receipt.TransactionRef,
		AmountPaid:     fee.Amount,
		Message:        fmt.Sprintf("Payment successful. %s", receipt.Message),
	}, nil
}

func (uc *paymentUseCaseImpl) RefundLateFeePayment(ctx context.Context, transactionRef string, amount float64) (*RefundOutcome, error) {
	ref, err := payment.NewTransactionRef(transactionRef)
	if err != nil {
		return nil, err
	}
	refund, err := payment.NewRefundAmount(amount)
	if err != nil {
		return nil, err
	}

	receipt, err := uc.gateway.RefundPayment(ctx, ref.String(), refund.Money())
	if err != nil {
		return nil, errs.Mark(err, ErrRefundProcessing)
	}
	if !receipt.Success {
		return nil, errs.Mark(errs.Newf("gateway declined: %s", receipt.Message), ErrRefundDeclined)
	}

	return &RefundOutcome{
		Message: fmt.Sprintf("Refund successful. %s", receipt.Message),
	}, nil
}

func (uc *paymentUseCaseImpl) assessLatestFee(ctx context.Context, patronID string, bookID int64) (fees.Result, error) {
	rec, err := uc.recordRepo.LatestByPatronAndBook(ctx, patronID, bookID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return fees.NoRecordResult(), nil
		}
		return fees.Result{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return fees.Assess(rec.DueAt, rec.ReturnedAt, uc.clock.Now()), nil
}
