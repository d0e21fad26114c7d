package service

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cartways/paypal-express-api/config"
	"github.com/cartways/paypal-express-api/models"
)

// nvpVersion is the classic API version sent with every call
const nvpVersion = "204"

// NVPClient talks to PayPal's classic NVP endpoint. Only the single
// operation this service needs is mapped; the NVP API at large is out of
// scope here.
type NVPClient struct {
	APIURL      string
	RedirectURL string
	User        string
	Password    string
	Signature   string
}

// NewNVPClient returns an NVP client configured from service config
func NewNVPClient(cfg config.Config) *NVPClient {
	return &NVPClient{
		APIURL:      cfg.PaypalNVPURL,
		RedirectURL: cfg.PaypalWebscrURL,
		User:        cfg.PaypalNVPUser,
		Password:    cfg.PaypalNVPPwd,
		Signature:   cfg.PaypalNVPSig,
	}
}

// SetExpressCheckout sends a SetExpressCheckout call to the provider. An
// error return means the provider could not be reached or answered outside
// its protocol; a reachable provider that rejects the request is reported
// through the response's Ack and error collection instead.
func (c *NVPClient) SetExpressCheckout(ctx context.Context, checkoutRequest *models.SetExpressCheckoutRequest) (*models.SetExpressCheckoutResponse, error) {
	values := c.flatten(checkoutRequest)

	request, err := http.NewRequestWithContext(ctx, "POST", c.APIURL, strings.NewReader(values.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error generating request for PayPal: [%s]", err)
	}
	request.Header.Add("content-type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("error sending request to PayPal: [%w]", err)
	}

	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from PayPal: [%s]", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error status [%v] back from PayPal", resp.StatusCode)
	}

	return parseNVPResponse(string(body))
}

// ExpressCheckoutURL builds the hosted approval page URL the buyer is
// redirected to
func (c *NVPClient) ExpressCheckoutURL(response *models.SetExpressCheckoutResponse, userAction string) string {
	return fmt.Sprintf("%s?cmd=_express-checkout&token=%s&useraction=%s",
		c.RedirectURL, url.QueryEscape(response.Token), url.QueryEscape(userAction))
}

// flatten maps the checkout request structure onto the provider's flat
// name-value field names
func (c *NVPClient) flatten(checkoutRequest *models.SetExpressCheckoutRequest) url.Values {
	details := checkoutRequest.SetExpressCheckoutRequestDetails

	values := url.Values{}
	values.Set("METHOD", "SetExpressCheckout")
	values.Set("VERSION", nvpVersion)
	values.Set("USER", c.User)
	values.Set("PWD", c.Password)
	values.Set("SIGNATURE", c.Signature)

	values.Set("INVNUM", details.InvoiceID)
	values.Set("EMAIL", details.BuyerEmail)
	values.Set("RETURNURL", details.ReturnURL)
	values.Set("CANCELURL", details.CancelURL)
	values.Set("SOLUTIONTYPE", details.SolutionType)
	values.Set("LANDINGPAGE", details.LandingPage)
	values.Set("HDRIMG", details.HeaderImageURL)
	values.Set("NOSHIPPING", strconv.Itoa(details.NoShipping))

	for i, paymentDetails := range details.PaymentDetails {
		prefix := fmt.Sprintf("PAYMENTREQUEST_%d_", i)

		values.Set(prefix+"AMT", paymentDetails.OrderTotal.Value.String())
		values.Set(prefix+"CURRENCYCODE", paymentDetails.OrderTotal.CurrencyID)

		if paymentDetails.ItemTotal != nil {
			values.Set(prefix+"ITEMAMT", paymentDetails.ItemTotal.Value.String())
		}
		if paymentDetails.ShippingTotal != nil {
			values.Set(prefix+"SHIPPINGAMT", paymentDetails.ShippingTotal.Value.String())
		}
		if paymentDetails.TaxTotal != nil {
			values.Set(prefix+"TAXAMT", paymentDetails.TaxTotal.Value.String())
		}
		if paymentDetails.PaymentAction != "" {
			values.Set(prefix+"PAYMENTACTION", paymentDetails.PaymentAction)
		}

		if address := paymentDetails.ShipToAddress; address != nil && *address != (models.ShipToAddress{}) {
			values.Set(prefix+"SHIPTONAME", address.Name)
			values.Set(prefix+"SHIPTOSTREET", address.Street1)
			values.Set(prefix+"SHIPTOSTREET2", address.Street2)
			values.Set(prefix+"SHIPTOCITY", address.CityName)
			values.Set(prefix+"SHIPTOPHONENUM", address.Phone)
			values.Set(prefix+"SHIPTOSTATE", address.StateOrProvince)
			values.Set(prefix+"SHIPTOCOUNTRYCODE", address.Country)
			values.Set(prefix+"SHIPTOZIP", address.PostalCode)
		}

		for j, item := range paymentDetails.PaymentDetailsItem {
			itemSuffix := strconv.Itoa(j)
			values.Set("L_"+prefix+"NAME"+itemSuffix, item.Name)
			values.Set("L_"+prefix+"NUMBER"+itemSuffix, item.Number)
			values.Set("L_"+prefix+"QTY"+itemSuffix, strconv.Itoa(item.Quantity))
			values.Set("L_"+prefix+"AMT"+itemSuffix, item.Amount.Value.String())
		}
	}

	return values
}

func parseNVPResponse(body string) (*models.SetExpressCheckoutResponse, error) {
	fields, err := url.ParseQuery(body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from PayPal: [%s]", err)
	}

	response := &models.SetExpressCheckoutResponse{
		Ack:           fields.Get("ACK"),
		Token:         fields.Get("TOKEN"),
		CorrelationID: fields.Get("CORRELATIONID"),
	}

	for i := 0; ; i++ {
		suffix := strconv.Itoa(i)
		if !fields.Has("L_ERRORCODE" + suffix) {
			break
		}
		response.Errors = append(response.Errors, models.ProviderError{
			ErrorCode:    fields.Get("L_ERRORCODE" + suffix),
			ShortMessage: fields.Get("L_SHORTMESSAGE" + suffix),
			LongMessage:  fields.Get("L_LONGMESSAGE" + suffix),
		})
	}

	return response, nil
}
