package handlers

import (
	"net/http"

	"github.com/cartways/paypal-express-api/config"
	"github.com/cartways/paypal-express-api/dao"
	"github.com/cartways/paypal-express-api/interceptors"
	"github.com/cartways/paypal-express-api/service"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

var paymentService *service.PaymentService
var expressCheckoutService *service.ExpressCheckoutService
var refundService *service.RefundService

// Register defines the route mappings for the main router and it's subrouters
func Register(mainRouter *mux.Router, cfg config.Config) {
	m := dao.NewDAOService(cfg.MongoDBURL, cfg.Database, cfg.Collection)

	paymentService = &service.PaymentService{
		DAO:    m,
		Config: cfg,
	}

	expressCheckoutService = &service.ExpressCheckoutService{
		Provider: service.NewNVPClient(cfg),
		Config:   cfg,
	}

	refundService = &service.RefundService{
		PaymentService: paymentService,
	}

	pm := interceptors.PaymentMethodInterceptor{Config: cfg}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// Create subrouters. The payment method interceptor must not run on
	// notification or cancel callbacks the provider sends itself, so the
	// routes are split up to allow per-subrouter middleware.

	// create and confirm need a resolved payment method
	orderPaymentRouter := mainRouter.PathPrefix("/api/v2/paypal_payments").Subrouter()
	orderPaymentRouter.HandleFunc("", HandleCreateOrderPayment).Methods("POST").Name("create-order-payment")
	orderPaymentRouter.HandleFunc("/confirm", HandleConfirmOrderPayment).Methods("POST").Name("confirm-order-payment")

	orderCallbackRouter := mainRouter.PathPrefix("/api/v2/paypal_payments").Subrouter()
	orderCallbackRouter.HandleFunc("/cancel", HandleCancelOrderPayment).Methods("POST").Name("cancel-order-payment")
	orderCallbackRouter.HandleFunc("/notify", HandleNotify).Methods("GET").Name("notify-order-payment")

	// event subscriptions get the same shape scoped to an event
	subscriptionPaymentRouter := mainRouter.PathPrefix("/api/v2/events/{event_id}/paypal_payments").Subrouter()
	subscriptionPaymentRouter.HandleFunc("", HandleCreateSubscriptionPayment).Methods("POST").Name("create-subscription-payment")
	subscriptionPaymentRouter.HandleFunc("/confirm", HandleConfirmSubscriptionPayment).Methods("POST").Name("confirm-subscription-payment")

	subscriptionCallbackRouter := mainRouter.PathPrefix("/api/v2/events/{event_id}/paypal_payments").Subrouter()
	subscriptionCallbackRouter.HandleFunc("/cancel", HandleCancelOrderPayment).Methods("POST").Name("cancel-subscription-payment")
	subscriptionCallbackRouter.HandleFunc("/notify", HandleNotify).Methods("GET").Name("notify-subscription-payment")

	// legacy storefront endpoints drive the buyer's browser directly
	legacyPaymentRouter := mainRouter.PathPrefix("/paypal").Subrouter()
	legacyPaymentRouter.HandleFunc("", HandleLegacyExpress).Methods("POST").Name("legacy-express")
	legacyPaymentRouter.HandleFunc("/confirm", HandleLegacyConfirm).Methods("GET").Name("legacy-confirm")

	legacyCallbackRouter := mainRouter.PathPrefix("/paypal").Subrouter()
	legacyCallbackRouter.HandleFunc("/cancel", HandleLegacyCancel).Methods("GET").Name("legacy-cancel")
	legacyCallbackRouter.HandleFunc("/notify", HandleNotify).Methods("GET", "POST").Name("legacy-notify")

	// admin refund endpoint
	adminRefundRouter := mainRouter.PathPrefix("/admin/orders/{order_id}/payments/{payment_id}/paypal_refund").Subrouter()
	adminRefundRouter.HandleFunc("", HandlePaypalRefund).Methods("GET", "POST").Name("paypal-refund")

	// Set middleware for subrouters
	orderPaymentRouter.Use(log.Handler, pm.PaymentMethodIntercept)
	orderCallbackRouter.Use(log.Handler)
	subscriptionPaymentRouter.Use(log.Handler, pm.PaymentMethodIntercept)
	subscriptionCallbackRouter.Use(log.Handler)
	legacyPaymentRouter.Use(log.Handler, pm.PaymentMethodIntercept)
	legacyCallbackRouter.Use(log.Handler)
	adminRefundRouter.Use(log.Handler)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
