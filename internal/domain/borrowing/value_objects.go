package borrowing

import "errors"

const PatronIDLength = 6

var ErrInvalidPatronID = errors.New("invalid patron id: must be exactly 6 digits")

// PatronID is the 6-digit library card number.
type PatronID struct {
	value string
}

func NewPatronID(value string) (PatronID, error) {
	if len(value) != PatronIDLength {
		return PatronID{}, ErrInvalidPatronID
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return PatronID{}, ErrInvalidPatronID
		}
	}
	return PatronID{value: value}, nil
}

func (p PatronID) String() string {
	return p.value
}
