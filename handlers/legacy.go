package handlers

import (
	"fmt"
	"net/http"

	"github.com/cartways/paypal-express-api/helpers"
	"github.com/cartways/paypal-express-api/models"
	"github.com/cartways/paypal-express-api/service"
	"github.com/companieshouse/chs.go/log"
)

// Legacy storefront endpoints predate the JSON API. They drive the same
// express checkout flow but redirect the buyer's browser directly instead of
// returning URLs to a calling app.

// HandleLegacyExpress initiates an express checkout session from the
// storefront and redirects the buyer to the provider's approval page
func HandleLegacyExpress(w http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()
	orderID := query.Get("order_id")
	if orderID == "" {
		log.ErrorR(req, fmt.Errorf("order id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	paymentMethod, ok := req.Context().Value(helpers.ContextKeyPaymentMethod).(*models.PaymentMethodRest)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid PaymentMethodRest in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	order, httpStatus, err := getOrder(orderID, &expressCheckoutService.Config)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting order resource: [%v]", err))
		w.WriteHeader(httpStatus)
		return
	}

	cfg := expressCheckoutService.Config
	redirectURL, done := createOrderCheckoutSession(w, req, order, paymentMethod, service.CheckoutURLs{
		ConfirmURL: fmt.Sprintf("%s/paypal/confirm?order_id=%s&payment_method_id=%s", cfg.StorefrontURL, orderID, paymentMethod.ID),
		CancelURL:  fmt.Sprintf("%s/paypal/cancel?order_id=%s", cfg.StorefrontURL, orderID),
	})
	if done {
		return
	}

	http.Redirect(w, req, redirectURL, http.StatusFound)
}

// HandleLegacyConfirm records the payment when the buyer returns from the
// provider's approval page and sends them back to their order
func HandleLegacyConfirm(w http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()
	orderID := query.Get("order_id")
	token := query.Get("token")
	payerID := query.Get("PayerID")
	if orderID == "" || token == "" || payerID == "" {
		log.ErrorR(req, fmt.Errorf("order id, token or PayerID not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	paymentMethod, ok := req.Context().Value(helpers.ContextKeyPaymentMethod).(*models.PaymentMethodRest)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid PaymentMethodRest in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	order, httpStatus, err := getOrder(orderID, &paymentService.Config)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting order resource: [%v]", err))
		w.WriteHeader(httpStatus)
		return
	}

	_, responseType, err := paymentService.CreateConfirmedPayment(req, service.ConfirmedPaymentParams{
		Kind:            service.KindOrder,
		InvoiceNumber:   order.Number,
		Amount:          order.Total,
		Currency:        order.Currency,
		Token:           token,
		PayerID:         payerID,
		PaymentMethodID: paymentMethod.ID,
	})
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating payment resource: [%v]", err), log.Data{"service_response_type": responseType.String()})
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	http.Redirect(w, req, fmt.Sprintf("%s/orders/%s", paymentService.Config.StorefrontURL, order.Number), http.StatusFound)
}

// HandleLegacyCancel sends a buyer who cancelled on the provider's approval
// page back to their cart
func HandleLegacyCancel(w http.ResponseWriter, req *http.Request) {
	http.Redirect(w, req, paymentService.Config.StorefrontURL+"/cart", http.StatusFound)
}

// HandleNotify receives the provider's asynchronous payment notification and
// records the captured transaction id against the payment. A non-200 reply
// makes the provider retry the notification later.
func HandleNotify(w http.ResponseWriter, req *http.Request) {
	if err := req.ParseForm(); err != nil {
		log.ErrorR(req, fmt.Errorf("error parsing notification: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	invoiceNumber := req.Form.Get("invoice")
	transactionID := req.Form.Get("txn_id")
	if invoiceNumber == "" || transactionID == "" {
		log.ErrorR(req, fmt.Errorf("invoice or txn_id not supplied in notification"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	responseType, err := paymentService.RecordExternalTransaction(invoiceNumber, transactionID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error recording external transaction: [%v]", err), log.Data{"service_response_type": responseType.String()})
		switch responseType {
		case service.NotFound:
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	log.InfoR(req, "recorded external transaction from payment notification", log.Data{"invoice_number": invoiceNumber})
	w.WriteHeader(http.StatusOK)
}
