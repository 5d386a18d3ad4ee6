package response

import (
	"library-clean-service/internal/usecase/commands"
)

type PaymentResponse struct {
	TransactionRef string  `json:"transactionRef"`
	AmountPaid     float64 `json:"amountPaid"`
	Message        string  `json:"message"`
}

type RefundResponse struct {
	Message string `json:"message"`
}

func FromPaymentOutcome(o *commands.PaymentOutcome) *PaymentResponse {
	return &PaymentResponse{
		TransactionRef: o.TransactionRef,
		AmountPaid:     o.AmountPaid.Dollars(),
		Message:        o.Message,
	}
}

func FromRefundOutcome(o *commands.RefundOutcome) *RefundResponse {
	return &RefundResponse{Message: o.Message}
}
