//go:build unit

package book_test

import (
	"strings"
	"testing"

	"library-clean-service/internal/domain/book"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookInput struct {
	title       string
	author      string
	isbn        string
	totalCopies int32
}

func validInput() bookInput {
	return bookInput{
		title:       "Test Book",
		author:      "Test Author",
		isbn:        "1234567890123",
		totalCopies: 3,
	}
}

func TestNewBook(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		in := validInput()
		actual, err := book.NewBook(in.title, in.author, in.isbn, in.totalCopies)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "Test Book", actual.Title().String())
		assert.Equal(t, "Test Author", actual.Author().String())
		assert.Equal(t, "1234567890123", actual.ISBN().String())
		assert.Equal(t, int32(3), actual.TotalCopies())
		assert.Equal(t, actual.TotalCopies(), actual.AvailableCopies())
		assert.True(t, actual.HasAvailableCopy())
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		in := validInput()
		actual, err := book.NewBook("  "+in.title+"  ", " "+in.author+" ", in.isbn, in.totalCopies)
		require.NoError(t, err)
		assert.Equal(t, "Test Book", actual.Title().String())
		assert.Equal(t, "Test Author", actual.Author().String())
	})

	cases := []struct {
		name   string
		mutate func(*bookInput)
		errIs  error
	}{
		{
			name:   "empty title",
			mutate: func(in *bookInput) { in.title = "" },
			errIs:  book.ErrTitleRequired,
		},
		{
			name:   "whitespace only title",
			mutate: func(in *bookInput) { in.title = "   " },
			errIs:  book.ErrTitleRequired,
		},
		{
			name:   "title at maximum length",
			mutate: func(in *bookInput) { in.title = strings.Repeat("a", book.MaxTitleLength) },
		},
		{
			name:   "title exceeds maximum length",
			mutate: func(in *bookInput) { in.title = strings.Repeat("a", book.MaxTitleLength+1) },
			errIs:  book.ErrTitleTooLong,
		},
		{
			name:   "multibyte title at maximum length",
			mutate: func(in *bookInput) { in.title = strings.Repeat("図", book.MaxTitleLength) },
		},
		{
			name:   "multibyte title exceeds maximum length",
			mutate: func(in *bookInput) { in.title = strings.Repeat("図", book.MaxTitleLength+1) },
			errIs:  book.ErrTitleTooLong,
		},
		{
			name:   "empty author",
			mutate: func(in *bookInput) { in.author = "" },
			errIs:  book.ErrAuthorRequired,
		},
		{
			name:   "author at maximum length",
			mutate: func(in *bookInput) { in.author = strings.Repeat("a", book.MaxAuthorLength) },
		},
		{
			name:   "author exceeds maximum length",
			mutate: func(in *bookInput) { in.author = strings.Repeat("a", book.MaxAuthorLength+1) },
			errIs:  book.ErrAuthorTooLong,
		},
		{
			name:   "multibyte author at maximum length",
			mutate: func(in *bookInput) { in.author = strings.Repeat("著", book.MaxAuthorLength) },
		},
		{
			name:   "isbn too short",
			mutate: func(in *bookInput) { in.isbn = "123456789" },
			errIs:  book.ErrInvalidISBN,
		},
		{
			name:   "isbn too long",
			mutate: func(in *bookInput) { in.isbn = "123456789012345" },
			errIs:  book.ErrInvalidISBN,
		},
		{
			name:   "isbn with non-digit characters",
			mutate: func(in *bookInput) { in.isbn = "123456789012X" },
			errIs:  book.ErrInvalidISBN,
		},
		{
			name:   "zero copies",
			mutate: func(in *bookInput) { in.totalCopies = 0 },
			errIs:  book.ErrInvalidCopies,
		},
		{
			name:   "negative copies",
			mutate: func(in *bookInput) { in.totalCopies = -1 },
			errIs:  book.ErrInvalidCopies,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			actual, err := book.NewBook(in.title, in.author, in.isbn, in.totalCopies)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestBook_HasAvailableCopy(t *testing.T) {
	title, _ := book.NewTitle("Test Book")
	author, _ := book.NewAuthor("Test Author")
	isbn, _ := book.NewISBN("1234567890123")

	depleted := book.ReconstructBook(1, title, author, isbn, 3, 0)
	assert.False(t, depleted.HasAvailableCopy())

	stocked := book.ReconstructBook(1, title, author, isbn, 3, 1)
	assert.True(t, stocked.HasAvailableCopy())
}
