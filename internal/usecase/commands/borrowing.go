package commands

import (
	"context"
	"fmt"
	"time"

	"library-clean-service/internal/domain/borrowing"
	"library-clean-service/internal/domain/fees"
	"library-clean-service/internal/infra"
	"library-clean-service/internal/pkg/clock"
	"library-clean-service/internal/pkg/errs"
)

//go:generate mockgen -source=borrowing.go -destination=../../../tests/mock/commands/borrowing_mock.go -package=commandsmock

var (
	ErrBookNotFound       = errs.New("book not found")
	ErrBookUnavailable    = errs.New("this book is currently not available")
	ErrBorrowLimitReached = errs.New("maximum borrowing limit of 5 books reached")
	ErrNoActiveBorrow     = errs.New("no active borrow record found for this patron and book")
)

type BorrowConfirmation struct {
	RecordID  int64
	BookTitle string
	DueAt     time.Time
	Message   string
}

type ReturnConfirmation struct {
	Fee     fees.Result
	Message string
}

type BorrowingCommands interface {
	BorrowBook(ctx context.Context, patronID string, bookID int64) (*BorrowConfirmation, error)
	ReturnBook(ctx context.Context, patronID string, bookID int64) (*ReturnConfirmation, error)
}

type borrowingUseCaseImpl struct {
	bookRepo   BookRepository
	recordRepo BorrowRecordRepository
	clock      clock.Clock
}

func NewBorrowingCommands(bookRepo BookRepository, recordRepo BorrowRecordRepository, clk clock.Clock) BorrowingCommands {
	return &borrowingUseCaseImpl{
		bookRepo:   bookRepo,
		recordRepo: recordRepo,
		clock:      clk,
	}
}

// BorrowBook runs the precondition chain in a fixed order; the first failing
// check decides the error. The record insert and the availability decrement
// are two store writes: when the decrement fails after the insert succeeded,
// the whole operation reports failure.
func (uc *borrowingUseCaseImpl) BorrowBook(ctx context.Context, patronID string, bookID int64) (*BorrowConfirmation, error) {
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
	if bookSnap.AvailableCopies <= 0 {
		return nil, ErrBookUnavailable
	}

	outstanding, err := uc.recordRepo.OutstandingByPatron(ctx, patron.String())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	// Strictly-greater comparison: a sixth loan is allowed, a seventh is
	// not. See the borrowing package doc on MaxOutstandingLoans.
	if len(outstanding) > borrowing.MaxOutstandingLoans {
		return nil, ErrBorrowLimitReached
	}

	record := borrowing.NewRecord(uc.clock, patron, bookID)
	recordID, err := uc.recordRepo.Create(ctx, record)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := uc.bookRepo.AdjustAvailableCopies(ctx, bookID, -1); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &BorrowConfirmation{
		RecordID:  recordID,
		BookTitle: bookSnap.Title,
		DueAt:     record.DueAt(),
		Message:   fmt.Sprintf("Successfully borrowed %q. Due date: %s.", bookSnap.Title, record.DueAt().Format("2006-01-02")),
	}, nil
}

func (uc *borrowingUseCaseImpl) ReturnBook(ctx context.Context, patronID string, bookID int64) (*ReturnConfirmation, error) {
	patron, err := borrowing.NewPatronID(patronID)
	if err != nil {
		return nil, err
	}

	outstanding, err := uc.recordRepo.OutstandingByPatron(ctx, patron.String())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var active *RecordSnapshot
	for _, rec := range outstanding {
		if rec.BookID == bookID {
			active = rec
			break
		}
	}
	if active == nil {
		return nil, ErrNoActiveBorrow
	}

	returnedAt := uc.clock.Now()
	if err := uc.recordRepo.SetReturnedAt(ctx, patron.String(), bookID, returnedAt); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := uc.bookRepo.AdjustAvailableCopies(ctx, bookID, +1); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	fee := fees.Assess(active.DueAt, &returnedAt, returnedAt)

	msg := "Book returned successfully. No late fees."
	if !fee.Amount.IsZero() {
		msg = fmt.Sprintf("Book returned with late fee $%s (%d days overdue).", fee.Amount, fee.DaysOverdue)
	}

	return &ReturnConfirmation{Fee: fee, Message: msg}, nil
}
