package book

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	MaxTitleLength  = 200
	MaxAuthorLength = 100
	ISBNLength      = 13
)

var (
	ErrTitleRequired  = errors.New("title is required")
	ErrTitleTooLong   = errors.New("title must be less than 200 characters")
	ErrAuthorRequired = errors.New("author is required")
	ErrAuthorTooLong  = errors.New("author must be less than 100 characters")
	ErrInvalidISBN    = errors.New("isbn must be exactly 13 digits")
	ErrInvalidCopies  = errors.New("total copies must be a positive integer")
)

type Title struct {
	value string
}

func NewTitle(value string) (Title, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Title{}, ErrTitleRequired
	}
	if utf8.RuneCountInString(trimmed) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: trimmed}, nil
}

func (t Title) String() string {
	return t.value
}

type Author struct {
	value string
}

func NewAuthor(value string) (Author, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Author{}, ErrAuthorRequired
	}
	if utf8.RuneCountInString(trimmed) > MaxAuthorLength {
		return Author{}, ErrAuthorTooLong
	}
	return Author{value: trimmed}, nil
}

func (a Author) String() string {
	return a.value
}

type ISBN struct {
	value string
}

func NewISBN(value string) (ISBN, error) {
	if len(value) != ISBNLength || !isDigits(value) {
		return ISBN{}, ErrInvalidISBN
	}
	return ISBN{value: value}, nil
}

func (i ISBN) String() string {
	return i.value
}

type CopyCount struct {
	value int32
}

func NewCopyCount(value int32) (CopyCount, error) {
	if value <= 0 {
		return CopyCount{}, ErrInvalidCopies
	}
	return CopyCount{value: value}, nil
}

func (c CopyCount) Value() int32 {
	return c.value
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
