package response

import (
	"time"

	"library-clean-service/internal/usecase/commands"
)

type BorrowResponse struct {
	RecordID  int64     `json:"recordId"`
	BookTitle string    `json:"bookTitle"`
	DueAt     time.Time `json:"dueAt"`
	Message   string    `json:"message"`
}

type ReturnResponse struct {
	FeeAmount   float64 `json:"feeAmount"`
	DaysOverdue int     `json:"daysOverdue"`
	Status      string  `json:"status"`
	Message     string  `json:"message"`
}

func FromBorrowConfirmation(c *commands.BorrowConfirmation) *BorrowResponse {
	return &BorrowResponse{
		RecordID:  c.RecordID,
		BookTitle: c.BookTitle,
		DueAt:     c.DueAt,
		Message:   c.Message,
	}
}

func FromReturnConfirmation(c *commands.ReturnConfirmation) *ReturnResponse {
	return &ReturnResponse{
		FeeAmount:   c.Fee.Amount.Dollars(),
		DaysOverdue: c.Fee.DaysOverdue,
		Status:      string(c.Fee.Status),
		Message:     c.Message,
	}
}
