package transformers

import (
	"github.com/cartways/paypal-express-api/models"
)

// PaymentTransformer transforms payment resource data between rest and database models
type PaymentTransformer struct{}

// TransformToRest transforms payment resource database model into payment resource rest model
func (pt PaymentTransformer) TransformToRest(dbResource models.PaymentResourceDB) models.PaymentResourceRest {
	return models.PaymentResourceRest{
		ID:                           dbResource.ID,
		Kind:                         dbResource.Kind,
		InvoiceNumber:                dbResource.InvoiceNumber,
		Amount:                       dbResource.Amount,
		Currency:                     dbResource.Currency,
		PaymentMethodID:              dbResource.PaymentMethodID,
		Status:                       dbResource.Status,
		CreatedAt:                    dbResource.CreatedAt,
		CompletedAt:                  dbResource.CompletedAt,
		ExternalPaymentTransactionID: dbResource.ExternalPaymentTransactionID,
		RefundID:                     dbResource.RefundID,
		RefundStatus:                 dbResource.RefundStatus,
		Source:                       models.ExpressCheckoutSourceRest(dbResource.Source),
	}
}

// TransformToDB transforms payment resource rest model into payment resource database model
func (pt PaymentTransformer) TransformToDB(rest models.PaymentResourceRest) models.PaymentResourceDB {
	return models.PaymentResourceDB{
		ID:                           rest.ID,
		Kind:                         rest.Kind,
		InvoiceNumber:                rest.InvoiceNumber,
		Amount:                       rest.Amount,
		Currency:                     rest.Currency,
		PaymentMethodID:              rest.PaymentMethodID,
		Status:                       rest.Status,
		CreatedAt:                    rest.CreatedAt,
		CompletedAt:                  rest.CompletedAt,
		ExternalPaymentTransactionID: rest.ExternalPaymentTransactionID,
		RefundID:                     rest.RefundID,
		RefundStatus:                 rest.RefundStatus,
		Source:                       models.ExpressCheckoutSourceDB(rest.Source),
	}
}
