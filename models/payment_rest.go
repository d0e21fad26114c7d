package models

import "time"

// PaymentResourceRest is public facing payment details to be returned in the response
type PaymentResourceRest struct {
	ID                           string                    `json:"id"`
	Kind                         string                    `json:"kind"`
	InvoiceNumber                string                    `json:"invoice_number"`
	Amount                       string                    `json:"amount"`
	Currency                     string                    `json:"currency"`
	PaymentMethodID              string                    `json:"payment_method_id"`
	Status                       string                    `json:"status"`
	CreatedAt                    time.Time                 `json:"created_at,omitempty"`
	CompletedAt                  time.Time                 `json:"completed_at,omitempty"`
	ExternalPaymentTransactionID string                    `json:"external_payment_transaction_id,omitempty"`
	RefundID                     string                    `json:"refund_id,omitempty"`
	RefundStatus                 string                    `json:"refund_status,omitempty"`
	Source                       ExpressCheckoutSourceRest `json:"source"`
}

// ExpressCheckoutSourceRest is the provider-specific checkout source attached
// to a payment
type ExpressCheckoutSourceRest struct {
	Token   string `json:"token"`
	PayerID string `json:"payer_id"`
}
