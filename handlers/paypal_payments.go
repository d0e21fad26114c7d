package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cartways/paypal-express-api/helpers"
	"github.com/cartways/paypal-express-api/models"
	"github.com/cartways/paypal-express-api/service"
	"github.com/cartways/paypal-express-api/utils"
	"github.com/companieshouse/chs.go/log"

	"gopkg.in/go-playground/validator.v9"
)

// Platform lookups are package vars so unit tests can stub them out
var getOrder = service.GetOrder

// HandleCreateOrderPayment initiates an express checkout session for a cart
// order and returns the provider's hosted approval page URL
func HandleCreateOrderPayment(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var createRequest models.CreateOrderPaymentRequest
	err := requestDecoder.Decode(&createRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validateCreateRequest(createRequest, createRequest.ConfirmURL, createRequest.CancelURL); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to create paypal payment: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	paymentMethod, ok := req.Context().Value(helpers.ContextKeyPaymentMethod).(*models.PaymentMethodRest)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid PaymentMethodRest in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	order, httpStatus, err := getOrder(createRequest.OrderID, &expressCheckoutService.Config)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting order resource: [%v]", err))
		w.WriteHeader(httpStatus)
		return
	}

	redirectURL, done := createOrderCheckoutSession(w, req, order, paymentMethod, service.CheckoutURLs{
		ConfirmURL: createRequest.ConfirmURL,
		CancelURL:  createRequest.CancelURL,
	})
	if done {
		return
	}

	utils.WriteJSONWithStatus(w, req, models.RedirectResponse{RedirectURL: redirectURL}, http.StatusOK)

	log.InfoR(req, "Successful POST request for new express checkout session", log.Data{"order_number": order.Number, "status": http.StatusOK})
}

// HandleConfirmOrderPayment records a payment against a cart order using the
// provider token and payer id returned with the buyer
func HandleConfirmOrderPayment(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var confirmRequest models.ConfirmOrderPaymentRequest
	err := requestDecoder.Decode(&confirmRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	validate := validator.New()
	if err = validate.Struct(confirmRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to confirm paypal payment: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	paymentMethod, ok := req.Context().Value(helpers.ContextKeyPaymentMethod).(*models.PaymentMethodRest)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid PaymentMethodRest in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	order, httpStatus, err := getOrder(confirmRequest.OrderID, &paymentService.Config)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting order resource: [%v]", err))
		w.WriteHeader(httpStatus)
		return
	}

	// The recorded amount is the order total as served by the platform, with
	// no coercion applied. The subscription path coerces its total instead;
	// both sources are kept as the platform supplied them.
	_, responseType, err := paymentService.CreateConfirmedPayment(req, service.ConfirmedPaymentParams{
		Kind:            service.KindOrder,
		InvoiceNumber:   order.Number,
		Amount:          order.Total,
		Currency:        order.Currency,
		Token:           confirmRequest.Token,
		PayerID:         confirmRequest.PayerID,
		PaymentMethodID: paymentMethod.ID,
	})
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating payment resource: [%v]", err), log.Data{"service_response_type": responseType.String()})
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Moving the order to its next state is left to the host platform once
	// this call returns.
	utils.WriteJSONWithStatus(w, req, order, http.StatusOK)

	log.InfoR(req, "Successful POST request to confirm express checkout payment", log.Data{"order_number": order.Number, "status": http.StatusOK})
}

// HandleCancelOrderPayment acknowledges a buyer cancelling on the provider's
// approval page; there is no provider session to tear down
func HandleCancelOrderPayment(w http.ResponseWriter, req *http.Request) {
	utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse("payment cancelled"), http.StatusOK)
}

// createOrderCheckoutSession collects line items, builds the checkout
// request and calls the provider. It writes the error response and reports
// done when the session could not be created.
func createOrderCheckoutSession(w http.ResponseWriter, req *http.Request, order *models.OrderResourceRest, paymentMethod *models.PaymentMethodRest, urls service.CheckoutURLs) (string, bool) {
	items, err := service.CollectOrderItems(order)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error collecting order line items: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return "", true
	}

	checkoutRequest, err := service.BuildOrderCheckoutRequest(order, items, paymentMethod, urls)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error building express checkout request: [%v]", err))
		if errors.Is(err, service.ErrMissingCheckoutURL) {
			w.WriteHeader(http.StatusBadRequest)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}
		return "", true
	}

	redirectURL, responseType, err := expressCheckoutService.CreateSessionAndGenerateRedirectURL(req, checkoutRequest)
	if err != nil {
		writeProviderError(w, req, responseType, err)
		return "", true
	}

	return redirectURL, false
}

// writeProviderError renders a provider-reported failure as a client error
// with the provider's own messages, and a connectivity failure as a server
// error with the fixed connection failed message
func writeProviderError(w http.ResponseWriter, req *http.Request, responseType service.ResponseType, err error) {
	log.ErrorR(req, fmt.Errorf("error creating express checkout session: [%v]", err), log.Data{"service_response_type": responseType.String()})

	switch responseType {
	case service.InvalidData:
		utils.WriteJSONWithStatus(w, req, models.ProviderErrorsResponse{Errors: err.Error()}, http.StatusUnprocessableEntity)
	default:
		utils.WriteJSONWithStatus(w, req, models.ConnectionErrorResponse{Errors: []string{service.ConnectionFailedMessage}}, http.StatusInternalServerError)
	}
}

func validateCreateRequest(createRequest interface{}, confirmURL, cancelURL string) error {
	validate := validator.New()
	if err := validate.Struct(createRequest); err != nil {
		return err
	}

	cfg := &expressCheckoutService.Config
	if err := service.ValidateCheckoutURL(confirmURL, cfg); err != nil {
		return err
	}
	return service.ValidateCheckoutURL(cancelURL, cfg)
}
