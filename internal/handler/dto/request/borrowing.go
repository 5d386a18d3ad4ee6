package request

type BorrowBookRequest struct {
	PatronID string `json:"patron_id"`
	BookID   int64  `json:"book_id"`
}

type ReturnBookRequest struct {
	PatronID string `json:"patron_id"`
	BookID   int64  `json:"book_id"`
}
