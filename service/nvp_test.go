package service

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/url"
	"testing"

	"github.com/cartways/paypal-express-api/config"
	"github.com/cartways/paypal-express-api/models"

	"github.com/jarcoal/httpmock"
	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"
)

func testNVPClient() *NVPClient {
	return NewNVPClient(config.Config{
		PaypalNVPURL:    "https://api-3t.sandbox.paypal.com/nvp",
		PaypalWebscrURL: "https://www.sandbox.paypal.com/cgi-bin/webscr",
		PaypalNVPUser:   "seller_api1.example.com",
		PaypalNVPPwd:    "secret",
		PaypalNVPSig:    "signature",
	})
}

func amountOf(value string, currency string) models.ExpressCheckoutAmount {
	d, _ := decimal.NewFromString(value)
	return models.ExpressCheckoutAmount{CurrencyID: currency, Value: models.AmountValue{Decimal: d}}
}

func fullCheckoutRequest() *models.SetExpressCheckoutRequest {
	itemTotal := amountOf("20", "USD")
	shippingTotal := amountOf("5", "USD")
	taxTotal := amountOf("0", "USD")

	return &models.SetExpressCheckoutRequest{
		SetExpressCheckoutRequestDetails: models.SetExpressCheckoutRequestDetails{
			InvoiceID:      "R123456789",
			BuyerEmail:     "buyer@example.com",
			ReturnURL:      "https://shop.example.com/confirm",
			CancelURL:      "https://shop.example.com/cancel",
			SolutionType:   "Mark",
			LandingPage:    "Billing",
			HeaderImageURL: "",
			NoShipping:     1,
			PaymentDetails: []models.PaymentDetails{
				{
					OrderTotal:    amountOf("25", "USD"),
					ItemTotal:     &itemTotal,
					ShippingTotal: &shippingTotal,
					TaxTotal:      &taxTotal,
					ShipToAddress: &models.ShipToAddress{},
					PaymentDetailsItem: []models.ExpressCheckoutItem{
						{Name: "Widget", Number: "WID-1", Quantity: 2, Amount: amountOf("10", "USD")},
					},
					ShippingMethod: "Shipping Method Name Goes Here",
					PaymentAction:  "Sale",
				},
			},
		},
	}
}

func TestUnitNVPSetExpressCheckout(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	client := testNVPClient()

	Convey("Request fields are flattened into provider field names", t, func() {
		var sent url.Values
		httpmock.RegisterResponder("POST", client.APIURL,
			func(req *http.Request) (*http.Response, error) {
				body, _ := ioutil.ReadAll(req.Body)
				sent, _ = url.ParseQuery(string(body))
				return httpmock.NewStringResponse(http.StatusOK, "ACK=Success&TOKEN=EC-123&CORRELATIONID=abc123"), nil
			})

		response, err := client.SetExpressCheckout(context.Background(), fullCheckoutRequest())
		So(err, ShouldBeNil)
		So(response.Ack, ShouldEqual, "Success")
		So(response.Token, ShouldEqual, "EC-123")
		So(response.CorrelationID, ShouldEqual, "abc123")

		So(sent.Get("METHOD"), ShouldEqual, "SetExpressCheckout")
		So(sent.Get("VERSION"), ShouldEqual, "204")
		So(sent.Get("USER"), ShouldEqual, "seller_api1.example.com")
		So(sent.Get("PWD"), ShouldEqual, "secret")
		So(sent.Get("SIGNATURE"), ShouldEqual, "signature")
		So(sent.Get("INVNUM"), ShouldEqual, "R123456789")
		So(sent.Get("EMAIL"), ShouldEqual, "buyer@example.com")
		So(sent.Get("RETURNURL"), ShouldEqual, "https://shop.example.com/confirm")
		So(sent.Get("CANCELURL"), ShouldEqual, "https://shop.example.com/cancel")
		So(sent.Get("SOLUTIONTYPE"), ShouldEqual, "Mark")
		So(sent.Get("LANDINGPAGE"), ShouldEqual, "Billing")
		So(sent.Get("NOSHIPPING"), ShouldEqual, "1")
		So(sent.Get("PAYMENTREQUEST_0_AMT"), ShouldEqual, "25")
		So(sent.Get("PAYMENTREQUEST_0_CURRENCYCODE"), ShouldEqual, "USD")
		So(sent.Get("PAYMENTREQUEST_0_ITEMAMT"), ShouldEqual, "20")
		So(sent.Get("PAYMENTREQUEST_0_SHIPPINGAMT"), ShouldEqual, "5")
		So(sent.Get("PAYMENTREQUEST_0_TAXAMT"), ShouldEqual, "0")
		So(sent.Get("PAYMENTREQUEST_0_PAYMENTACTION"), ShouldEqual, "Sale")
		So(sent.Get("L_PAYMENTREQUEST_0_NAME0"), ShouldEqual, "Widget")
		So(sent.Get("L_PAYMENTREQUEST_0_NUMBER0"), ShouldEqual, "WID-1")
		So(sent.Get("L_PAYMENTREQUEST_0_QTY0"), ShouldEqual, "2")
		So(sent.Get("L_PAYMENTREQUEST_0_AMT0"), ShouldEqual, "10")

		// An empty address block is never sent
		So(sent.Has("PAYMENTREQUEST_0_SHIPTONAME"), ShouldBeFalse)
	})

	Convey("Populated address block is flattened into ship-to fields", t, func() {
		var sent url.Values
		httpmock.RegisterResponder("POST", client.APIURL,
			func(req *http.Request) (*http.Response, error) {
				body, _ := ioutil.ReadAll(req.Body)
				sent, _ = url.ParseQuery(string(body))
				return httpmock.NewStringResponse(http.StatusOK, "ACK=Success&TOKEN=EC-123"), nil
			})

		checkoutRequest := fullCheckoutRequest()
		checkoutRequest.SetExpressCheckoutRequestDetails.PaymentDetails[0].ShipToAddress = &models.ShipToAddress{
			Name:            "Jo Smith",
			Street1:         "1 High Street",
			CityName:        "Norwich",
			Phone:           "01603123456",
			StateOrProvince: "Norfolk",
			Country:         "GB",
			PostalCode:      "NR1 1AA",
		}

		_, err := client.SetExpressCheckout(context.Background(), checkoutRequest)
		So(err, ShouldBeNil)
		So(sent.Get("PAYMENTREQUEST_0_SHIPTONAME"), ShouldEqual, "Jo Smith")
		So(sent.Get("PAYMENTREQUEST_0_SHIPTOSTREET"), ShouldEqual, "1 High Street")
		So(sent.Get("PAYMENTREQUEST_0_SHIPTOCITY"), ShouldEqual, "Norwich")
		So(sent.Get("PAYMENTREQUEST_0_SHIPTOCOUNTRYCODE"), ShouldEqual, "GB")
		So(sent.Get("PAYMENTREQUEST_0_SHIPTOZIP"), ShouldEqual, "NR1 1AA")
	})

	Convey("Provider errors are read out of the indexed error fields", t, func() {
		httpmock.RegisterResponder("POST", client.APIURL,
			httpmock.NewStringResponder(http.StatusOK,
				"ACK=Failure&CORRELATIONID=abc123"+
					"&L_ERRORCODE0=10410&L_SHORTMESSAGE0=Invalid+token&L_LONGMESSAGE0=Invalid+token"+
					"&L_ERRORCODE1=10413&L_SHORTMESSAGE1=Transaction+refused&L_LONGMESSAGE1=Amount+mismatch"))

		response, err := client.SetExpressCheckout(context.Background(), fullCheckoutRequest())
		So(err, ShouldBeNil)
		So(response.Success(), ShouldBeFalse)
		So(response.Errors, ShouldHaveLength, 2)
		So(response.Errors[0].ErrorCode, ShouldEqual, "10410")
		So(response.Errors[1].LongMessage, ShouldEqual, "Amount mismatch")
		So(response.JoinedErrorMessages(), ShouldEqual, "Invalid token Amount mismatch")
	})

	Convey("Non-200 status from the provider is an error", t, func() {
		httpmock.RegisterResponder("POST", client.APIURL,
			httpmock.NewStringResponder(http.StatusBadGateway, "upstream unavailable"))

		response, err := client.SetExpressCheckout(context.Background(), fullCheckoutRequest())
		So(response, ShouldBeNil)
		So(err.Error(), ShouldContainSubstring, "502")
	})
}

func TestUnitExpressCheckoutURL(t *testing.T) {

	Convey("Approval page URL carries the token and user action", t, func() {
		client := testNVPClient()
		url := client.ExpressCheckoutURL(&models.SetExpressCheckoutResponse{Token: "EC-123"}, "commit")
		So(url, ShouldEqual, "https://www.sandbox.paypal.com/cgi-bin/webscr?cmd=_express-checkout&token=EC-123&useraction=commit")
	})
}
