package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/cartways/paypal-express-api/config"
	"github.com/cartways/paypal-express-api/dao"
	"github.com/cartways/paypal-express-api/models"
	"github.com/cartways/paypal-express-api/service"

	"github.com/golang/mock/gomock"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitHandleLegacyExpress(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	cfg := testConfig()
	paymentService = &service.PaymentService{Config: cfg}

	Convey("Missing order id is a bad request", t, func() {
		expressCheckoutService = &service.ExpressCheckoutService{Config: cfg}

		req := httptest.NewRequest("POST", "/paypal", nil)
		w := httptest.NewRecorder()
		HandleLegacyExpress(w, withPaymentMethod(req))
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Buyer is redirected to the provider's approval page", t, func() {
		mockProvider := service.NewMockExpressCheckoutProvider(mockCtrl)
		expressCheckoutService = &service.ExpressCheckoutService{Provider: mockProvider, Config: cfg}

		getOrder = func(orderID string, cfg *config.Config) (*models.OrderResourceRest, int, error) {
			return stubOrder(), http.StatusOK, nil
		}
		defer func() { getOrder = service.GetOrder }()

		response := &models.SetExpressCheckoutResponse{Ack: "Success", Token: "EC-123"}
		approvalURL := "https://www.sandbox.paypal.com/cgi-bin/webscr?cmd=_express-checkout&token=EC-123&useraction=commit"
		mockProvider.EXPECT().SetExpressCheckout(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, checkoutRequest *models.SetExpressCheckoutRequest) (*models.SetExpressCheckoutResponse, error) {
				details := checkoutRequest.SetExpressCheckoutRequestDetails
				// The storefront supplies the return journey URLs itself
				So(details.ReturnURL, ShouldEqual, "https://shop.example.com/paypal/confirm?order_id=R123456789&payment_method_id=3")
				So(details.CancelURL, ShouldEqual, "https://shop.example.com/paypal/cancel?order_id=R123456789")
				return response, nil
			})
		mockProvider.EXPECT().ExpressCheckoutURL(response, "commit").Return(approvalURL)

		req := httptest.NewRequest("POST", "/paypal?order_id=R123456789", nil)
		w := httptest.NewRecorder()
		HandleLegacyExpress(w, withPaymentMethod(req))

		So(w.Code, ShouldEqual, http.StatusFound)
		So(w.Header().Get("Location"), ShouldEqual, approvalURL)
	})
}

func TestUnitHandleLegacyConfirm(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	cfg := testConfig()

	Convey("Missing token or payer id is a bad request", t, func() {
		paymentService = &service.PaymentService{Config: cfg}

		req := httptest.NewRequest("GET", "/paypal/confirm?order_id=R123456789", nil)
		w := httptest.NewRecorder()
		HandleLegacyConfirm(w, withPaymentMethod(req))
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Payment is recorded and the buyer sent back to their order", t, func() {
		mockDAO := newMockDAOExpectingPayment(mockCtrl, func(resource *models.PaymentResourceDB) {
			So(resource.Kind, ShouldEqual, "order")
			So(resource.Source.Token, ShouldEqual, "EC-123")
			So(resource.Source.PayerID, ShouldEqual, "PAYER1")
		})
		paymentService = &service.PaymentService{DAO: mockDAO, Config: cfg}

		getOrder = func(orderID string, cfg *config.Config) (*models.OrderResourceRest, int, error) {
			return stubOrder(), http.StatusOK, nil
		}
		defer func() { getOrder = service.GetOrder }()

		target := "/paypal/confirm?" + url.Values{
			"order_id": {"R123456789"},
			"token":    {"EC-123"},
			"PayerID":  {"PAYER1"},
		}.Encode()
		req := httptest.NewRequest("GET", target, nil)
		w := httptest.NewRecorder()
		HandleLegacyConfirm(w, withPaymentMethod(req))

		So(w.Code, ShouldEqual, http.StatusFound)
		So(w.Header().Get("Location"), ShouldEqual, "https://shop.example.com/orders/R123456789")
	})
}

func TestUnitHandleLegacyCancel(t *testing.T) {

	Convey("Buyer who cancelled is sent back to their cart", t, func() {
		paymentService = &service.PaymentService{Config: testConfig()}

		req := httptest.NewRequest("GET", "/paypal/cancel?order_id=R123456789", nil)
		w := httptest.NewRecorder()
		HandleLegacyCancel(w, req)

		So(w.Code, ShouldEqual, http.StatusFound)
		So(w.Header().Get("Location"), ShouldEqual, "https://shop.example.com/cart")
	})
}

func TestUnitHandleNotify(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	cfg := testConfig()

	Convey("Missing invoice or transaction id is a bad request", t, func() {
		paymentService = &service.PaymentService{Config: cfg}

		req := httptest.NewRequest("POST", "/paypal/notify", strings.NewReader("invoice=R123456789"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		HandleNotify(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Captured transaction id is recorded against the invoice", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockDAO.EXPECT().GetPaymentResourceByInvoice("R123456789").Return(&models.PaymentResourceDB{ID: "abc"}, nil)
		mockDAO.EXPECT().PatchPaymentResource("abc", gomock.Any()).DoAndReturn(
			func(id string, update *models.PaymentResourceDB) error {
				So(update.ExternalPaymentTransactionID, ShouldEqual, "TXN-1")
				return nil
			})
		paymentService = &service.PaymentService{DAO: mockDAO, Config: cfg}

		req := httptest.NewRequest("POST", "/paypal/notify", strings.NewReader("invoice=R123456789&txn_id=TXN-1"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		HandleNotify(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
	})

	Convey("Notification for an unknown invoice is not found", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockDAO.EXPECT().GetPaymentResourceByInvoice("R000000000").Return(nil, nil)
		paymentService = &service.PaymentService{DAO: mockDAO, Config: cfg}

		req := httptest.NewRequest("GET", "/paypal/notify?invoice=R000000000&txn_id=TXN-1", nil)
		w := httptest.NewRecorder()
		HandleNotify(w, req)
		So(w.Code, ShouldEqual, http.StatusNotFound)
	})

	Convey("Database failure while recording is a server error", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockDAO.EXPECT().GetPaymentResourceByInvoice("R123456789").Return(nil, errors.New("connection reset"))
		paymentService = &service.PaymentService{DAO: mockDAO, Config: cfg}

		req := httptest.NewRequest("GET", "/paypal/notify?invoice=R123456789&txn_id=TXN-1", nil)
		w := httptest.NewRecorder()
		HandleNotify(w, req)
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})
}
