package response

import (
	"time"

	"library-clean-service/internal/usecase/queries"
)

type LoanResponse struct {
	RecordID   int64      `json:"recordId"`
	BookID     int64      `json:"bookId"`
	BookTitle  string     `json:"bookTitle"`
	BorrowedAt time.Time  `json:"borrowedAt"`
	DueAt      time.Time  `json:"dueAt"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty"`
}

type PatronReportResponse struct {
	PatronID      string         `json:"patronId"`
	BorrowedBooks []LoanResponse `json:"borrowedBooks"`
	TotalLateFees float64        `json:"totalLateFees"`
	BorrowedCount int            `json:"borrowedCount"`
}

type FeeResponse struct {
	FeeAmount   float64 `json:"feeAmount"`
	DaysOverdue int     `json:"daysOverdue"`
	Status      string  `json:"status"`
}

func FromPatronReportView(v *queries.PatronReportView) *PatronReportResponse {
	loans := make([]LoanResponse, len(v.BorrowedBooks))
	for i, l := range v.BorrowedBooks {
		loans[i] = LoanResponse{
			RecordID:   l.RecordID,
			BookID:     l.BookID,
			BookTitle:  l.BookTitle,
			BorrowedAt: l.BorrowedAt,
			DueAt:      l.DueAt,
			ReturnedAt: l.ReturnedAt,
		}
	}
	return &PatronReportResponse{
		PatronID:      v.PatronID,
		BorrowedBooks: loans,
		TotalLateFees: v.TotalLateFees.Dollars(),
		BorrowedCount: v.BorrowedCount,
	}
}

func FromFeeView(v *queries.FeeView) *FeeResponse {
	return &FeeResponse{
		FeeAmount:   v.FeeAmount.Dollars(),
		DaysOverdue: v.DaysOverdue,
		Status:      string(v.Status),
	}
}
