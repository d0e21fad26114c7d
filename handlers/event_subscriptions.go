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
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var getEvent = service.GetEvent
var getEventSubscription = service.GetEventSubscription

// HandleCreateSubscriptionPayment initiates an express checkout session for
// an event subscription and returns the provider's hosted approval page URL
func HandleCreateSubscriptionPayment(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var createRequest models.CreateSubscriptionPaymentRequest
	err := requestDecoder.Decode(&createRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validateCreateRequest(createRequest, createRequest.ConfirmURL, createRequest.CancelURL); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to create subscription paypal payment: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	paymentMethod, ok := req.Context().Value(helpers.ContextKeyPaymentMethod).(*models.PaymentMethodRest)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid PaymentMethodRest in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	event, subscription, done := loadEventAndSubscription(w, req, createRequest.UserID)
	if done {
		return
	}

	items, err := service.CollectSubscriptionItems(subscription, event)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error collecting subscription line items: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	checkoutRequest, err := service.BuildSubscriptionCheckoutRequest(subscription, event, items, paymentMethod, service.CheckoutURLs{
		ConfirmURL: createRequest.ConfirmURL,
		CancelURL:  createRequest.CancelURL,
	})
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error building express checkout request: [%v]", err))
		if errors.Is(err, service.ErrMissingCheckoutURL) {
			w.WriteHeader(http.StatusBadRequest)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	redirectURL, responseType, err := expressCheckoutService.CreateSessionAndGenerateRedirectURL(req, checkoutRequest)
	if err != nil {
		writeProviderError(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, models.RedirectResponse{RedirectURL: redirectURL}, http.StatusOK)

	log.InfoR(req, "Successful POST request for new subscription express checkout session", log.Data{"subscription_number": subscription.Number, "status": http.StatusOK})
}

// HandleConfirmSubscriptionPayment records a payment against an event
// subscription using the provider token and payer id returned with the buyer
func HandleConfirmSubscriptionPayment(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var confirmRequest models.ConfirmSubscriptionPaymentRequest
	err := requestDecoder.Decode(&confirmRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	validate := validator.New()
	if err = validate.Struct(confirmRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to confirm subscription paypal payment: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	paymentMethod, ok := req.Context().Value(helpers.ContextKeyPaymentMethod).(*models.PaymentMethodRest)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid PaymentMethodRest in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	_, subscription, done := loadEventAndSubscription(w, req, confirmRequest.UserID)
	if done {
		return
	}

	// Unlike the order path this total passes through amount coercion before
	// it is recorded.
	amount, err := service.CoerceAmount(service.MoneyValueFromRest(subscription.DisplayTotal))
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error coercing subscription total: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	_, responseType, err := paymentService.CreateConfirmedPayment(req, service.ConfirmedPaymentParams{
		Kind:            service.KindSubscription,
		InvoiceNumber:   subscription.Number,
		Amount:          amount.String(),
		Currency:        subscription.Currency,
		Token:           confirmRequest.Token,
		PayerID:         confirmRequest.PayerID,
		PaymentMethodID: paymentMethod.ID,
	})
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating payment resource: [%v]", err), log.Data{"service_response_type": responseType.String()})
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	utils.WriteJSONWithStatus(w, req, subscription, http.StatusOK)

	log.InfoR(req, "Successful POST request to confirm subscription express checkout payment", log.Data{"subscription_number": subscription.Number, "status": http.StatusOK})
}

func loadEventAndSubscription(w http.ResponseWriter, req *http.Request, userID string) (*models.EventResourceRest, *models.SubscriptionResourceRest, bool) {
	eventID := mux.Vars(req)["event_id"]
	if eventID == "" {
		log.ErrorR(req, fmt.Errorf("event id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, true
	}

	cfg := &paymentService.Config

	event, httpStatus, err := getEvent(eventID, cfg)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting event resource: [%v]", err))
		w.WriteHeader(httpStatus)
		return nil, nil, true
	}

	subscription, httpStatus, err := getEventSubscription(eventID, userID, cfg)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting subscription resource: [%v]", err))
		w.WriteHeader(httpStatus)
		return nil, nil, true
	}

	return event, subscription, false
}
