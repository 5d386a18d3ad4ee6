//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"library-clean-service/internal/domain/borrowing"
	"library-clean-service/internal/infra"
	"library-clean-service/internal/pkg/clock"
	"library-clean-service/internal/usecase/commands"
	commandsmock "library-clean-service/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func availableBook() *commands.BookSnapshot {
	return &commands.BookSnapshot{
		ID:              42,
		Title:           "1984",
		Author:          "George Orwell",
		ISBN:            "1234567890123",
		TotalCopies:     3,
		AvailableCopies: 2,
	}
}

func outstandingRecords(n int) []*commands.RecordSnapshot {
	recs := make([]*commands.RecordSnapshot, n)
	for i := range recs {
		recs[i] = &commands.RecordSnapshot{
			ID:         int64(i + 1),
			PatronID:   "123456",
			BookID:     int64(100 + i),
			BorrowedAt: testNow.AddDate(0, 0, -i),
			DueAt:      testNow.AddDate(0, 0, borrowing.LoanPeriodDays-i),
		}
	}
	return recs
}

func TestBorrowBook(t *testing.T) {
	ctx := context.Background()

	newUseCase := func(ctrl *gomock.Controller) (commands.BorrowingCommands, *commandsmock.MockBookRepository, *commandsmock.MockBorrowRecordRepository) {
		bookRepo := commandsmock.NewMockBookRepository(ctrl)
		recordRepo := commandsmock.NewMockBorrowRecordRepository(ctrl)
		uc := commands.NewBorrowingCommands(bookRepo, recordRepo, clock.NewMockClock(testNow))
		return uc, bookRepo, recordRepo
	}

	t.Run("success: record created and availability decremented", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, bookRepo, recordRepo := newUseCase(ctrl)

		bookRepo.EXPECT().FindByID(ctx, int64(42)).Return(availableBook(), nil)
		recordRepo.EXPECT().OutstandingByPatron(ctx, "123456").Return(nil, nil)
		recordRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, rec *borrowing.Record) (int64, error) {
				assert.Equal(t, testNow, rec.BorrowedAt())
				assert.Equal(t, testNow.AddDate(0, 0, 14), rec.DueAt())
				assert.True(t, rec.IsOutstanding())
				return int64(9), nil
			})
		bookRepo.EXPECT().AdjustAvailableCopies(ctx, int64(42), int32(-1)).Return(nil)

		confirmation, err := uc.BorrowBook(ctx, "123456", 42)

		require.NoError(t, err)
		assert.Equal(t, int64(9), confirmation.RecordID)
		assert.Equal(t, testNow.AddDate(0, 0, 14), confirmation.DueAt)
		assert.Contains(t, confirmation.Message, "1984")
		assert.Contains(t, confirmation.Message, "2025-03-15")
	})

	t.Run("invalid patron id fails before any store access", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newUseCase(ctrl)

		_, err := uc.BorrowBook(ctx, "12A45", 42)
		require.ErrorIs(t, err, borrowing.ErrInvalidPatronID)
	})

	t.Run("book not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, bookRepo, _ := newUseCase(ctrl)

		bookRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, notFoundErr())

		_, err := uc.BorrowBook(ctx, "123456", 99)
		require.ErrorIs(t, err, commands.ErrBookNotFound)
	})

	t.Run("no available copies fails without mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, bookRepo, _ := newUseCase(ctrl)

		depleted := availableBook()
		depleted.AvailableCopies = 0
		bookRepo.EXPECT().FindByID(ctx, int64(42)).Return(depleted, nil)

		_, err := uc.BorrowBook(ctx, "123456", 42)
		require.ErrorIs(t, err, commands.ErrBookUnavailable)
	})

	// The limit check uses a strictly-greater comparison: five outstanding
	// loans still admit a sixth, six block a seventh.
	t.Run("five outstanding loans still admit a borrow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, bookRepo, recordRepo := newUseCase(ctrl)

		bookRepo.EXPECT().FindByID(ctx, int64(42)).Return(availableBook(), nil)
		recordRepo.EXPECT().OutstandingByPatron(ctx, "123456").Return(outstandingRecords(5), nil)
		recordRepo.EXPECT().Create(ctx, gomock.Any()).Return(int64(10), nil)
		bookRepo.EXPECT().AdjustAvailableCopies(ctx, int64(42), int32(-1)).Return(nil)

		_, err := uc.BorrowBook(ctx, "123456", 42)
		require.NoError(t, err)
	})

	t.Run("six outstanding loans block the next borrow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, bookRepo, recordRepo := newUseCase(ctrl)

		bookRepo.EXPECT().FindByID(ctx, int64(42)).Return(availableBook(), nil)
		recordRepo.EXPECT().OutstandingByPatron(ctx, "123456").Return(outstandingRecords(6), nil)

		_, err := uc.BorrowBook(ctx, "123456", 42)
		require.ErrorIs(t, err, commands.ErrBorrowLimitReached)
		assert.Contains(t, err.Error(), "maximum borrowing limit")
	})

	t.Run("decrement failure after insert reports overall failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, bookRepo, recordRepo := newUseCase(ctrl)

		bookRepo.EXPECT().FindByID(ctx, int64(42)).Return(availableBook(), nil)
		recordRepo.EXPECT().OutstandingByPatron(ctx, "123456").Return(nil, nil)
		recordRepo.EXPECT().Create(ctx, gomock.Any()).Return(int64(9), nil)
		bookRepo.EXPECT().AdjustAvailableCopies(ctx, int64(42), int32(-1)).
			Return(infra.WrapRepoErr("update failed", errors.New("connection reset")))

		_, err := uc.BorrowBook(ctx, "123456", 42)
		require.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})
}

func TestReturnBook(t *testing.T) {
	ctx := context.Background()

	newUseCase := func(ctrl *gomock.Controller, clk clock.Clock) (commands.BorrowingCommands, *commandsmock.MockBookRepository, *commandsmock.MockBorrowRecordRepository) {
		bookRepo := commandsmock.NewMockBookRepository(ctrl)
		recordRepo := commandsmock.NewMockBorrowRecordRepository(ctrl)
		uc := commands.NewBorrowingCommands(bookRepo, recordRepo, clk)
		return uc, bookRepo, recordRepo
	}

	t.Run("on-time return reports no late fees", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, bookRepo, recordRepo := newUseCase(ctrl, clock.NewMockClock(testNow))

		recordRepo.EXPECT().OutstandingByPatron(ctx, "123456").Return([]*commands.RecordSnapshot{
			{ID: 1, PatronID: "123456", BookID: 42, BorrowedAt: testNow.AddDate(0, 0, -3), DueAt: testNow.AddDate(0, 0, 11)},
		}, nil)
		recordRepo.EXPECT().SetReturnedAt(ctx, "123456", int64(42), testNow).Return(nil)
		bookRepo.EXPECT().AdjustAvailableCopies(ctx, int64(42), int32(1)).Return(nil)

		confirmation, err := uc.ReturnBook(ctx, "123456", 42)

		require.NoError(t, err)
		assert.True(t, confirmation.Fee.Amount.IsZero())
		assert.Contains(t, confirmation.Message, "No late fees")
	})

	t.Run("overdue return folds the fee into the message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// Borrowed 24 days ago: due 14 days in, returned 10 days late.
		uc, bookRepo, recordRepo := newUseCase(ctrl, clock.NewMockClock(testNow))
		recordRepo.EXPECT().OutstandingByPatron(ctx, "123456").Return([]*commands.RecordSnapshot{
			{ID: 1, PatronID: "123456", BookID: 42, BorrowedAt: testNow.AddDate(0, 0, -24), DueAt: testNow.AddDate(0, 0, -10)},
		}, nil)
		recordRepo.EXPECT().SetReturnedAt(ctx, "123456", int64(42), testNow).Return(nil)
		bookRepo.EXPECT().AdjustAvailableCopies(ctx, int64(42), int32(1)).Return(nil)

		confirmation, err := uc.ReturnBook(ctx, "123456", 42)

		require.NoError(t, err)
		assert.Equal(t, int64(650), confirmation.Fee.Amount.Cents())
		assert.Equal(t, 10, confirmation.Fee.DaysOverdue)
		assert.Contains(t, confirmation.Message, "$6.50")
		assert.Contains(t, confirmation.Message, "10 days overdue")
	})

	t.Run("no active borrow record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, recordRepo := newUseCase(ctrl, clock.NewMockClock(testNow))

		recordRepo.EXPECT().OutstandingByPatron(ctx, "999999").Return(outstandingRecords(2), nil)

		_, err := uc.ReturnBook(ctx, "999999", 555)
		require.ErrorIs(t, err, commands.ErrNoActiveBorrow)
		assert.Contains(t, err.Error(), "no active borrow record")
	})

	t.Run("invalid patron id fails before lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newUseCase(ctrl, clock.NewMockClock(testNow))

		_, err := uc.ReturnBook(ctx, "abc123", 42)
		require.ErrorIs(t, err, borrowing.ErrInvalidPatronID)
	})
}
