package models

import "time"

// PaymentResourceDB contains all payment details to be stored in the DB
type PaymentResourceDB struct {
	ID                           string                  `bson:"_id"`
	Kind                         string                  `bson:"kind"`
	InvoiceNumber                string                  `bson:"invoice_number"`
	Amount                       string                  `bson:"amount"`
	Currency                     string                  `bson:"currency"`
	PaymentMethodID              string                  `bson:"payment_method_id"`
	Status                       string                  `bson:"status"`
	CreatedAt                    time.Time               `bson:"created_at,omitempty"`
	CompletedAt                  time.Time               `bson:"completed_at,omitempty"`
	ExternalPaymentTransactionID string                  `bson:"external_payment_transaction_id,omitempty"`
	RefundID                     string                  `bson:"refund_id,omitempty"`
	RefundStatus                 string                  `bson:"refund_status,omitempty"`
	Source                       ExpressCheckoutSourceDB `bson:"source"`
}

// ExpressCheckoutSourceDB is the provider-specific checkout source attached
// to a payment, holding the identifiers returned after buyer approval
type ExpressCheckoutSourceDB struct {
	Token   string `bson:"token"`
	PayerID string `bson:"payer_id"`
}
