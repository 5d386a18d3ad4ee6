package response

import (
	"time"

	"library-clean-service/internal/usecase/commands"
	"library-clean-service/internal/usecase/queries"
)

type AddBookResponse struct {
	BookID  int64  `json:"bookId"`
	Message string `json:"message"`
}

type BookResponse struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn"`
	TotalCopies     int32     `json:"totalCopies"`
	AvailableCopies int32     `json:"availableCopies"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromAddBookResult(r *commands.AddBookResult) *AddBookResponse {
	return &AddBookResponse{
		BookID:  r.BookID,
		Message: r.Message,
	}
}

func FromBookView(v *queries.BookView) *BookResponse {
	return &BookResponse{
		ID:              v.ID,
		Title:           v.Title,
		Author:          v.Author,
		ISBN:            v.ISBN,
		TotalCopies:     v.TotalCopies,
		AvailableCopies: v.AvailableCopies,
		CreatedAt:       v.CreatedAt,
	}
}

func FromBookList(views []*queries.BookView) []*BookResponse {
	out := make([]*BookResponse, len(views))
	for i, v := range views {
		out[i] = FromBookView(v)
	}
	return out
}
