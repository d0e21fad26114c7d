package service

import (
	"net/http"
	"testing"

	"github.com/cartways/paypal-express-api/config"

	"github.com/jarcoal/httpmock"
	. "github.com/smartystreets/goconvey/convey"
)

func platformConfig() *config.Config {
	return &config.Config{
		PlatformAPIURL:  "https://platform.example.com",
		DomainAllowList: "https://shop.example.com,https://admin.example.com",
	}
}

func TestUnitGetOrder(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	cfg := platformConfig()

	Convey("Order is fetched and decoded from the platform API", t, func() {
		httpmock.RegisterResponder("GET", "https://platform.example.com/api/orders/R123456789",
			httpmock.NewStringResponder(http.StatusOK,
				`{"number":"R123456789","email":"buyer@example.com","currency":"USD","total":"25.00"}`))

		order, status, err := GetOrder("R123456789", cfg)
		So(err, ShouldBeNil)
		So(status, ShouldEqual, http.StatusOK)
		So(order.Number, ShouldEqual, "R123456789")
		So(order.Email, ShouldEqual, "buyer@example.com")
		So(order.Total, ShouldEqual, "25.00")
	})

	Convey("Missing order returns a bad request status", t, func() {
		httpmock.RegisterResponder("GET", "https://platform.example.com/api/orders/R000000000",
			httpmock.NewStringResponder(http.StatusNotFound, ""))

		order, status, err := GetOrder("R000000000", cfg)
		So(order, ShouldBeNil)
		So(status, ShouldEqual, http.StatusBadRequest)
		So(err, ShouldNotBeNil)
	})

	Convey("Malformed body returns a bad request status", t, func() {
		httpmock.RegisterResponder("GET", "https://platform.example.com/api/orders/R123456789",
			httpmock.NewStringResponder(http.StatusOK, "not json"))

		order, status, err := GetOrder("R123456789", cfg)
		So(order, ShouldBeNil)
		So(status, ShouldEqual, http.StatusBadRequest)
		So(err, ShouldNotBeNil)
	})
}

func TestUnitGetPaymentMethod(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	cfg := platformConfig()

	Convey("Payment method is fetched and decoded from the platform API", t, func() {
		httpmock.RegisterResponder("GET", "https://platform.example.com/api/payment_methods/3",
			httpmock.NewStringResponder(http.StatusOK,
				`{"id":"3","type":"paypal_express","preferred_solution":"Sole"}`))

		paymentMethod, status, err := GetPaymentMethod("3", cfg)
		So(err, ShouldBeNil)
		So(status, ShouldEqual, http.StatusOK)
		So(paymentMethod.ID, ShouldEqual, "3")
		So(paymentMethod.PreferredSolution, ShouldEqual, "Sole")
	})
}

func TestUnitGetEventSubscription(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	cfg := platformConfig()

	Convey("Subscription is fetched for the event and user", t, func() {
		httpmock.RegisterResponder("GET", "https://platform.example.com/api/events/77/subscription",
			httpmock.NewStringResponder(http.StatusOK,
				`{"number":"S0001","currency":"USD","user_email":"member@example.com"}`))

		subscription, status, err := GetEventSubscription("77", "42", cfg)
		So(err, ShouldBeNil)
		So(status, ShouldEqual, http.StatusOK)
		So(subscription.Number, ShouldEqual, "S0001")
		So(subscription.BuyerEmail(), ShouldEqual, "member@example.com")
	})
}

func TestUnitValidateCheckoutURL(t *testing.T) {

	cfg := platformConfig()

	Convey("Allow listed domain is accepted", t, func() {
		So(ValidateCheckoutURL("https://shop.example.com/orders/R1/confirm", cfg), ShouldBeNil)
	})

	Convey("Unknown domain is rejected", t, func() {
		err := ValidateCheckoutURL("https://evil.example.net/confirm", cfg)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "invalid redirect domain")
	})

	Convey("Scheme must match the allow list entry", t, func() {
		err := ValidateCheckoutURL("http://shop.example.com/confirm", cfg)
		So(err, ShouldNotBeNil)
	})
}
