//go:build unit

package borrowing_test

import (
	"testing"
	"time"

	"library-clean-service/internal/domain/borrowing"
	"library-clean-service/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPatronID(t *testing.T) {
	cases := []struct {
		name  string
		value string
		errIs error
	}{
		{name: "valid 6-digit id", value: "123456"},
		{name: "all zeros is still a valid id", value: "000000"},
		{name: "too short", value: "12345", errIs: borrowing.ErrInvalidPatronID},
		{name: "too long", value: "1234567", errIs: borrowing.ErrInvalidPatronID},
		{name: "contains letters", value: "12A456", errIs: borrowing.ErrInvalidPatronID},
		{name: "empty", value: "", errIs: borrowing.ErrInvalidPatronID},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := borrowing.NewPatronID(tc.value)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.value, id.String())
		})
	}
}

func TestNewRecord(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	patronID, err := borrowing.NewPatronID("123456")
	require.NoError(t, err)

	rec := borrowing.NewRecord(clk, patronID, 42)

	assert.Equal(t, patronID, rec.PatronID())
	assert.Equal(t, int64(42), rec.BookID())
	assert.Equal(t, now, rec.BorrowedAt())
	assert.Equal(t, now.AddDate(0, 0, borrowing.LoanPeriodDays), rec.DueAt())
	assert.True(t, rec.IsOutstanding())
	assert.Nil(t, rec.ReturnedAt())
}

func TestRecord_MarkReturned(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	patronID, _ := borrowing.NewPatronID("123456")
	rec := borrowing.NewRecord(clk, patronID, 42)

	returnedAt := now.AddDate(0, 0, 10)
	require.NoError(t, rec.MarkReturned(returnedAt))
	assert.False(t, rec.IsOutstanding())
	require.NotNil(t, rec.ReturnedAt())
	assert.Equal(t, returnedAt, *rec.ReturnedAt())

	// The outstanding-to-returned transition happens exactly once.
	err := rec.MarkReturned(returnedAt.Add(time.Hour))
	require.ErrorIs(t, err, borrowing.ErrAlreadyReturned)
	assert.Equal(t, returnedAt, *rec.ReturnedAt())
}
