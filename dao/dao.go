package dao

import "github.com/cartways/paypal-express-api/models"

// DAO is an interface for accessing payment data from a backend store
type DAO interface {
	CreatePaymentResource(paymentResource *models.PaymentResourceDB) error
	GetPaymentResource(id string) (*models.PaymentResourceDB, error)
	GetPaymentResourceByInvoice(invoiceNumber string) (*models.PaymentResourceDB, error)
	PatchPaymentResource(id string, paymentUpdate *models.PaymentResourceDB) error
}
