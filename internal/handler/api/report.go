package api

import (
	"errors"
	"net/http"
	"strconv"

	"library-clean-service/internal/domain/borrowing"
	resdto "library-clean-service/internal/handler/dto/response"
	"library-clean-service/internal/handler/httperr"
	"library-clean-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	fees    queries.FeeQueries
	reports queries.ReportQueries
}

func NewReportHandler(fees queries.FeeQueries, reports queries.ReportQueries) *ReportHandler {
	return &ReportHandler{fees: fees, reports: reports}
}

// @Summary Patron status report
// @Description Outstanding loans and accrued late fees for a patron
// @Tags reports
// @Produce json
// @Param id path string true "Patron ID"
// @Success 200 {object} resdto.PatronReportResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /patrons/{id}/report [get]
func (h *ReportHandler) PatronReport(c *gin.Context) {
	view, err := h.reports.PatronStatusReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, borrowing.ErrInvalidPatronID) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPatronReportView(view))
}

// @Summary Late fee inquiry
// @Description Current late fee for a patron's most recent borrow of a book
// @Tags reports
// @Produce json
// @Param id path string true "Patron ID"
// @Param bookId path int true "Book ID"
// @Success 200 {object} resdto.FeeResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /patrons/{id}/books/{bookId}/late-fee [get]
func (h *ReportHandler) LateFee(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid book ID format", nil)
		return
	}

	view, err := h.fees.LateFeeForBook(c.Request.Context(), c.Param("id"), bookID)
	if err != nil {
		if errors.Is(err, borrowing.ErrInvalidPatronID) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFeeView(view))
}
