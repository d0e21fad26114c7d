package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cartways/paypal-express-api/config"
	"github.com/cartways/paypal-express-api/dao"
	"github.com/cartways/paypal-express-api/models"
	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
)

// PaymentService contains the DAO for db access
type PaymentService struct {
	DAO    dao.DAO
	Config config.Config
}

// PaymentStatus Enum Type
type PaymentStatus int

// Enumeration containing all possible payment statuses
const (
	Checkout PaymentStatus = 1 + iota
	Completed
	Refunded
)

// String representation of payment statuses
var paymentStatuses = [...]string{
	"checkout",
	"completed",
	"refunded",
}

func (paymentStatus PaymentStatus) String() string {
	return paymentStatuses[paymentStatus-1]
}

// Billing entity kinds a payment can be created against
const (
	KindOrder        = "order"
	KindSubscription = "subscription"
)

// ConfirmedPaymentParams carry the provider identifiers and billing entity
// details needed to record a payment after buyer approval
type ConfirmedPaymentParams struct {
	Kind            string
	InvoiceNumber   string
	Amount          string
	Currency        string
	Token           string
	PayerID         string
	PaymentMethodID string
}

// CreateConfirmedPayment records exactly one payment against the billing
// entity, holding the provider's token and payer id as its source. A
// persistence failure propagates, there is no partial state to clean up.
// Advancing the order's workflow state is left to the host platform.
func (service *PaymentService) CreateConfirmedPayment(req *http.Request, params ConfirmedPaymentParams) (*models.PaymentResourceDB, ResponseType, error) {

	paymentResource := &models.PaymentResourceDB{
		ID:              uuid.NewString(),
		Kind:            params.Kind,
		InvoiceNumber:   params.InvoiceNumber,
		Amount:          params.Amount,
		Currency:        params.Currency,
		PaymentMethodID: params.PaymentMethodID,
		Status:          Completed.String(),
		// To match the format time is saved to mongo, e.g. "2018-11-22T08:39:16.782Z", truncate the time
		CreatedAt: time.Now().Truncate(time.Millisecond),
		Source: models.ExpressCheckoutSourceDB{
			Token:   params.Token,
			PayerID: params.PayerID,
		},
	}

	err := service.DAO.CreatePaymentResource(paymentResource)
	if err != nil {
		return nil, Error, fmt.Errorf("error writing to MongoDB: %v", err)
	}

	log.InfoR(req, "created payment resource for confirmed express checkout", log.Data{"payment_id": paymentResource.ID, "invoice_number": params.InvoiceNumber})

	return paymentResource, Success, nil
}

// RecordExternalTransaction patches the provider transaction id onto the
// payment created against the given invoice number. Used by the notify
// endpoint, and later by the refund path to find the capture to refund.
func (service *PaymentService) RecordExternalTransaction(invoiceNumber, transactionID string) (ResponseType, error) {
	paymentResource, err := service.DAO.GetPaymentResourceByInvoice(invoiceNumber)
	if err != nil {
		return Error, fmt.Errorf("error getting payment resource from db: [%v]", err)
	}
	if paymentResource == nil {
		return NotFound, fmt.Errorf("payment resource not found for invoice number [%s]", invoiceNumber)
	}

	update := &models.PaymentResourceDB{
		ExternalPaymentTransactionID: transactionID,
		CompletedAt:                  time.Now().Truncate(time.Millisecond),
	}

	err = service.DAO.PatchPaymentResource(paymentResource.ID, update)
	if err != nil {
		return Error, fmt.Errorf("error patching payment resource on database: [%v]", err)
	}

	return Success, nil
}

// GetPayment retrieves a payment resource by id
func (service *PaymentService) GetPayment(id string) (*models.PaymentResourceDB, ResponseType, error) {
	paymentResource, err := service.DAO.GetPaymentResource(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting payment resource from db: [%v]", err)
	}
	if paymentResource == nil {
		return nil, NotFound, fmt.Errorf("payment resource not found. id: %s", id)
	}

	return paymentResource, Success, nil
}
