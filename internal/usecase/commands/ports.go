package commands

import (
	"context"
	"time"

	"library-clean-service/internal/domain/book"
	"library-clean-service/internal/domain/borrowing"
	"library-clean-service/internal/domain/fees"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// Write-side snapshots keep the command layer off the read-side query types.
type BookSnapshot struct {
	ID              int64
	Title           string
	Author          string
	ISBN            string
	TotalCopies     int32
	AvailableCopies int32
}

type RecordSnapshot struct {
	ID         int64
	PatronID   string
	BookID     int64
	BorrowedAt time.Time
	DueAt      time.Time
	ReturnedAt *time.Time
}

type BookRepository interface {
	Create(ctx context.Context, b *book.Book) (int64, error)
	FindByID(ctx context.Context, id int64) (*BookSnapshot, error)
	FindByISBN(ctx context.Context, isbn string) (*BookSnapshot, error)
	// AdjustAvailableCopies moves the available count by a signed delta. The
	// store refuses adjustments that would leave the count outside
	// [0, total_copies].
	AdjustAvailableCopies(ctx context.Context, id int64, delta int32) error
}

type BorrowRecordRepository interface {
	Create(ctx context.Context, rec *borrowing.Record) (int64, error)
	OutstandingByPatron(ctx context.Context, patronID string) ([]*RecordSnapshot, error)
	// LatestByPatronAndBook returns the most recent record for the pair by
	// borrow time, outstanding or returned.
	LatestByPatronAndBook(ctx context.Context, patronID string, bookID int64) (*RecordSnapshot, error)
	SetReturnedAt(ctx context.Context, patronID string, bookID int64, returnedAt time.Time) error
}

// GatewayReceipt is the gateway's answer to a charge or refund attempt. A
// declined attempt comes back as a receipt with Success=false; a transport
// or processor fault comes back as an error from the call itself.
type GatewayReceipt struct {
	Success        bool
	TransactionRef string
	Message        string
}

// PaymentGateway is the external payment processor's two-call contract.
// Implementations must not panic; faults surface as returned errors.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, patronID string, amount fees.Money, description string) (*GatewayReceipt, error)
	RefundPayment(ctx context.Context, transactionRef string, amount fees.Money) (*GatewayReceipt, error)
}
