package request

// AddBookRequest carries raw catalog input. Field validation lives in the
// domain layer so the first failing check decides the error, not the binder.
type AddBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	TotalCopies int32  `json:"total_copies"`
}
