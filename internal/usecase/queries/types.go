package queries

import (
	"context"
	"time"

	"library-clean-service/internal/domain/fees"
)

//go:generate mockgen -source=types.go -destination=../../../tests/mock/queries/readstore_mock.go -package=queriesmock

type BookView struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn"`
	TotalCopies     int32     `json:"total_copies"`
	AvailableCopies int32     `json:"available_copies"`
	CreatedAt       time.Time `json:"created_at"`
}

type LoanView struct {
	RecordID   int64      `json:"record_id"`
	BookID     int64      `json:"book_id"`
	BookTitle  string     `json:"book_title"`
	BorrowedAt time.Time  `json:"borrowed_at"`
	DueAt      time.Time  `json:"due_at"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
}

type FeeView struct {
	FeeAmount   fees.Money  `json:"-"`
	DaysOverdue int         `json:"days_overdue"`
	Status      fees.Status `json:"status"`
}

type PatronReportView struct {
	PatronID      string     `json:"patron_id"`
	BorrowedBooks []LoanView `json:"borrowed_books"`
	TotalLateFees fees.Money `json:"-"`
	BorrowedCount int        `json:"borrowed_count"`
}

// Read-side store ports. The write side has its own snapshots; these views
// are shaped for responses.
type BookReadStore interface {
	FindAll(ctx context.Context) ([]*BookView, error)
}

type BorrowReadStore interface {
	OutstandingByPatron(ctx context.Context, patronID string) ([]*LoanView, error)
	// LatestByPatronAndBook returns the newest record for the pair by borrow
	// time, whether outstanding or returned.
	LatestByPatronAndBook(ctx context.Context, patronID string, bookID int64) (*LoanView, error)
}
