package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AmountValue is a provider-safe decimal amount. It marshals as a bare JSON
// number with fractional zeros trimmed, so whole amounts serialise as
// integer literals.
type AmountValue struct {
	decimal.Decimal
}

// MarshalJSON writes the amount as an unquoted number
func (a AmountValue) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// ExpressCheckoutAmount is a currency and value pair in provider format
type ExpressCheckoutAmount struct {
	CurrencyID string      `json:"currencyID"`
	Value      AmountValue `json:"value"`
}

// ExpressCheckoutItem is one line item reported to the provider with its own
// amount. Adjustments are reported with a fixed quantity of 1.
type ExpressCheckoutItem struct {
	Name     string                `json:"Name"`
	Number   string                `json:"Number,omitempty"`
	Quantity int                   `json:"Quantity"`
	Amount   ExpressCheckoutAmount `json:"Amount"`
}

// SetExpressCheckoutRequest is the payload sent to the provider to initiate
// an express checkout session
type SetExpressCheckoutRequest struct {
	SetExpressCheckoutRequestDetails SetExpressCheckoutRequestDetails `json:"SetExpressCheckoutRequestDetails"`
}

// SetExpressCheckoutRequestDetails holds the buyer, URLs and payment details
// for an express checkout session
type SetExpressCheckoutRequestDetails struct {
	InvoiceID      string           `json:"InvoiceID"`
	BuyerEmail     string           `json:"BuyerEmail"`
	ReturnURL      string           `json:"ReturnURL"`
	CancelURL      string           `json:"CancelURL"`
	SolutionType   string           `json:"SolutionType"`
	LandingPage    string           `json:"LandingPage"`
	HeaderImageURL string           `json:"cppheaderimage"`
	NoShipping     int              `json:"NoShipping"`
	PaymentDetails []PaymentDetails `json:"PaymentDetails"`
}

// PaymentDetails is one payment detail block of an express checkout session.
// When the item subtotal is zero only the order total is present and the
// provider displays a generic purchase label.
type PaymentDetails struct {
	OrderTotal         ExpressCheckoutAmount  `json:"OrderTotal"`
	ItemTotal          *ExpressCheckoutAmount `json:"ItemTotal,omitempty"`
	ShippingTotal      *ExpressCheckoutAmount `json:"ShippingTotal,omitempty"`
	TaxTotal           *ExpressCheckoutAmount `json:"TaxTotal,omitempty"`
	ShipToAddress      *ShipToAddress         `json:"ShipToAddress,omitempty"`
	PaymentDetailsItem []ExpressCheckoutItem  `json:"PaymentDetailsItem,omitempty"`
	ShippingMethod     string                 `json:"ShippingMethod,omitempty"`
	PaymentAction      string                 `json:"PaymentAction,omitempty"`
}

// ShipToAddress is the address block of a payment detail
type ShipToAddress struct {
	Name            string `json:"Name,omitempty"`
	Street1         string `json:"Street1,omitempty"`
	Street2         string `json:"Street2,omitempty"`
	CityName        string `json:"CityName,omitempty"`
	Phone           string `json:"Phone,omitempty"`
	StateOrProvince string `json:"StateOrProvince,omitempty"`
	Country         string `json:"Country,omitempty"`
	PostalCode      string `json:"PostalCode,omitempty"`
}

// ProviderError is a single error reported by the provider
type ProviderError struct {
	ErrorCode    string
	ShortMessage string
	LongMessage  string
}

// SetExpressCheckoutResponse is the provider's response to a set express
// checkout call
type SetExpressCheckoutResponse struct {
	Ack           string
	Token         string
	CorrelationID string
	Errors        []ProviderError
}

// Success reports whether the provider accepted the request
func (r *SetExpressCheckoutResponse) Success() bool {
	return r.Ack == "Success" || r.Ack == "SuccessWithWarning"
}

// JoinedErrorMessages concatenates the provider's long messages with a
// single space separator
func (r *SetExpressCheckoutResponse) JoinedErrorMessages() string {
	messages := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		messages = append(messages, e.LongMessage)
	}
	return strings.Join(messages, " ")
}
