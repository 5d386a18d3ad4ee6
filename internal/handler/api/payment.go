package api

import (
	"errors"
	"net/http"

	"library-clean-service/internal/domain/borrowing"
	"library-clean-service/internal/domain/payment"
	reqdto "library-clean-service/internal/handler/dto/request"
	resdto "library-clean-service/internal/handler/dto/response"
	"library-clean-service/internal/handler/httperr"
	"library-clean-service/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Pay late fee
// @Description Settle the outstanding late fee for a patron and book
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.PayLateFeeRequest true "Payment request"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /payments [post]
func (h *PaymentHandler) PayLateFee(c *gin.Context) {
	var req reqdto.PayLateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.PayLateFee(c.Request.Context(), req.PatronID, req.BookID)
	if err != nil {
		switch {
		case errors.Is(err, borrowing.ErrInvalidPatronID):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errors.Is(err, commands.ErrBookNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Book not found", nil)
		case errors.Is(err, commands.ErrNoOutstandingFees):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No outstanding fees for this book", nil)
		case errors.Is(err, commands.ErrPaymentDeclined):
			httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment failed", nil)
		case errors.Is(err, commands.ErrPaymentProcessing):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment processing error", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentOutcome(result))
}

// @Summary Refund late fee payment
// @Description Refund a previously settled late fee by transaction reference
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.RefundRequest true "Refund request"
// @Success 200 {object} resdto.RefundResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /refunds [post]
func (h *PaymentHandler) Refund(c *gin.Context) {
	var req reqdto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.RefundLateFeePayment(c.Request.Context(), req.TransactionRef, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidTransactionRef),
			errors.Is(err, payment.ErrAmountNotPositive),
			errors.Is(err, payment.ErrAmountExceedsCap):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errors.Is(err, commands.ErrRefundDeclined):
			httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Refund failed", nil)
		case errors.Is(err, commands.ErrRefundProcessing):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Refund processing error", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRefundOutcome(result))
}
