package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cartways/paypal-express-api/models"
	"github.com/companieshouse/chs.go/log"
	"github.com/plutov/paypal/v4"
)

// RefundService handles refunding captured express checkout payments through
// the PayPal REST API
type RefundService struct {
	Client         PayPalSDK
	PaymentService *PaymentService
}

// CreateRefund refunds the captured transaction behind a payment resource
// and records the refund against it
func (s *RefundService) CreateRefund(req *http.Request, paymentID string) (*models.PaymentResourceDB, ResponseType, error) {

	paymentResource, responseType, err := s.PaymentService.GetPayment(paymentID)
	if err != nil {
		return nil, responseType, err
	}

	if paymentResource.ExternalPaymentTransactionID == "" {
		return nil, InvalidData, fmt.Errorf("no captured transaction recorded for payment [%s]", paymentID)
	}

	refund, err := s.Client.RefundCapture(
		context.Background(),
		paymentResource.ExternalPaymentTransactionID,
		paypal.RefundCaptureRequest{},
	)
	if err != nil {
		return nil, Error, fmt.Errorf("error refunding capture with PayPal: [%v]", err)
	}

	log.InfoR(req, "refunded capture with PayPal", log.Data{"payment_id": paymentID, "refund_id": refund.ID, "refund_status": refund.Status})

	update := &models.PaymentResourceDB{
		Status:       Refunded.String(),
		RefundID:     refund.ID,
		RefundStatus: refund.Status,
	}
	err = s.PaymentService.DAO.PatchPaymentResource(paymentResource.ID, update)
	if err != nil {
		return nil, Error, fmt.Errorf("error patching payment resource with refund details: [%v]", err)
	}

	paymentResource.Status = update.Status
	paymentResource.RefundID = refund.ID
	paymentResource.RefundStatus = refund.Status

	return paymentResource, Success, nil
}
