package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cartways/paypal-express-api/config"
	"github.com/cartways/paypal-express-api/models"
	"github.com/companieshouse/chs.go/log"
)

// ConnectionFailedMessage is the fixed message returned when the provider
// cannot be reached. Connectivity failures are the only transport-level
// error class, everything else the provider reports is a business outcome.
const ConnectionFailedMessage = "Could not connect to PayPal."

// The user action requested when generating the hosted approval page URL
const userActionCommit = "commit"

// ExpressCheckoutProvider is an interface for the provider operations used
// to initiate an express checkout session
type ExpressCheckoutProvider interface {
	SetExpressCheckout(ctx context.Context, request *models.SetExpressCheckoutRequest) (*models.SetExpressCheckoutResponse, error)
	ExpressCheckoutURL(response *models.SetExpressCheckoutResponse, userAction string) string
}

// ExpressCheckoutService handles the specific functionality of initiating
// express checkout sessions with the provider
type ExpressCheckoutService struct {
	Provider ExpressCheckoutProvider
	Config   config.Config
}

// CreateSessionAndGenerateRedirectURL invokes the provider's set express
// checkout operation and produces the hosted approval page URL for the buyer.
// A provider-reported failure is a normal, non-exceptional outcome and is
// reported as InvalidData with the provider's messages as the error text; a
// connectivity failure is reported as Error. Neither is ever retried.
func (s *ExpressCheckoutService) CreateSessionAndGenerateRedirectURL(req *http.Request, checkoutRequest *models.SetExpressCheckoutRequest) (string, ResponseType, error) {

	log.TraceR(req, "performing set express checkout request", log.Data{"invoice_id": checkoutRequest.SetExpressCheckoutRequestDetails.InvoiceID})

	response, err := s.Provider.SetExpressCheckout(req.Context(), checkoutRequest)
	if err != nil {
		return "", Error, fmt.Errorf("error sending request to PayPal to start express checkout session: [%w]", err)
	}

	if !response.Success() {
		log.Debug(fmt.Sprintf("express checkout response ack: %s", response.Ack))
		return "", InvalidData, errors.New(response.JoinedErrorMessages())
	}

	return s.Provider.ExpressCheckoutURL(response, userActionCommit), Success, nil
}
