package request

type PayLateFeeRequest struct {
	PatronID string `json:"patron_id"`
	BookID   int64  `json:"book_id"`
}

type RefundRequest struct {
	TransactionRef string  `json:"transaction_ref"`
	Amount         float64 `json:"amount"`
}
