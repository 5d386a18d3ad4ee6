package api

import (
	"errors"
	"net/http"

	"library-clean-service/internal/domain/borrowing"
	reqdto "library-clean-service/internal/handler/dto/request"
	resdto "library-clean-service/internal/handler/dto/response"
	"library-clean-service/internal/handler/httperr"
	"library-clean-service/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BorrowingHandler struct {
	cmds commands.BorrowingCommands
}

func NewBorrowingHandler(cmds commands.BorrowingCommands) *BorrowingHandler {
	return &BorrowingHandler{cmds: cmds}
}

// @Summary Borrow book
// @Description Borrow an available book for a patron
// @Tags borrowing
// @Accept json
// @Produce json
// @Param request body reqdto.BorrowBookRequest true "Borrow request"
// @Success 201 {object} resdto.BorrowResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /borrowings [post]
func (h *BorrowingHandler) BorrowBook(c *gin.Context) {
	var req reqdto.BorrowBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.BorrowBook(c.Request.Context(), req.PatronID, req.BookID)
	if err != nil {
		switch {
		case errors.Is(err, borrowing.ErrInvalidPatronID):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errors.Is(err, commands.ErrBookNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Book not found", nil)
		case errors.Is(err, commands.ErrBookUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "This book is currently not available", nil)
		case errors.Is(err, commands.ErrBorrowLimitReached):
			httperr.AbortWithError(c, http.StatusConflict, err, "Maximum borrowing limit of 5 books reached", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBorrowConfirmation(result))
}

// @Summary Return book
// @Description Return a borrowed book and assess any late fee
// @Tags borrowing
// @Accept json
// @Produce json
// @Param request body reqdto.ReturnBookRequest true "Return request"
// @Success 200 {object} resdto.ReturnResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /returns [post]
func (h *BorrowingHandler) ReturnBook(c *gin.Context) {
	var req reqdto.ReturnBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.ReturnBook(c.Request.Context(), req.PatronID, req.BookID)
	if err != nil {
		switch {
		case errors.Is(err, borrowing.ErrInvalidPatronID):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errors.Is(err, commands.ErrNoActiveBorrow):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No active borrow record found for this patron and book", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReturnConfirmation(result))
}
