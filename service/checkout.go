package service

import (
	"errors"
	"fmt"

	"github.com/cartways/paypal-express-api/models"
	"github.com/shopspring/decimal"
)

// ErrMissingCheckoutURL is returned when a required confirm or cancel URL is
// not supplied with the request
var ErrMissingCheckoutURL = errors.New("confirm_url and cancel_url are required")

const (
	defaultSolutionType = "Mark"
	defaultLandingPage  = "Billing"

	// The solution type that requires a ship-to address to be sent
	addressRequiredSolutionType = "Sole"

	paymentActionSale         = "Sale"
	placeholderShippingMethod = "Shipping Method Name Goes Here"
)

// CheckoutURLs are the caller supplied return and cancel URLs for an express
// checkout session
type CheckoutURLs struct {
	ConfirmURL string
	CancelURL  string
}

// BuildOrderCheckoutRequest assembles the full express checkout request for
// a cart order
func BuildOrderCheckoutRequest(order *models.OrderResourceRest, items []models.ExpressCheckoutItem, paymentMethod *models.PaymentMethodRest, urls CheckoutURLs) (*models.SetExpressCheckoutRequest, error) {
	if urls.ConfirmURL == "" || urls.CancelURL == "" {
		return nil, ErrMissingCheckoutURL
	}

	paymentDetails, err := orderPaymentDetails(order, items, paymentMethod)
	if err != nil {
		return nil, err
	}

	return &models.SetExpressCheckoutRequest{
		SetExpressCheckoutRequestDetails: requestDetails(order.Number, order.Email, paymentMethod, urls, paymentDetails),
	}, nil
}

// BuildSubscriptionCheckoutRequest assembles the full express checkout
// request for an event subscription
func BuildSubscriptionCheckoutRequest(subscription *models.SubscriptionResourceRest, event *models.EventResourceRest, items []models.ExpressCheckoutItem, paymentMethod *models.PaymentMethodRest, urls CheckoutURLs) (*models.SetExpressCheckoutRequest, error) {
	if urls.ConfirmURL == "" || urls.CancelURL == "" {
		return nil, ErrMissingCheckoutURL
	}

	paymentDetails, err := subscriptionPaymentDetails(subscription, event)
	if err != nil {
		return nil, err
	}
	paymentDetails.PaymentDetailsItem = items

	return &models.SetExpressCheckoutRequest{
		SetExpressCheckoutRequestDetails: requestDetails(subscription.Number, subscription.BuyerEmail(), paymentMethod, urls, paymentDetails),
	}, nil
}

func requestDetails(invoiceID, buyerEmail string, paymentMethod *models.PaymentMethodRest, urls CheckoutURLs, paymentDetails models.PaymentDetails) models.SetExpressCheckoutRequestDetails {
	solutionType := paymentMethod.PreferredSolution
	if solutionType == "" {
		solutionType = defaultSolutionType
	}

	landingPage := paymentMethod.PreferredLandingPage
	if landingPage == "" {
		landingPage = defaultLandingPage
	}

	return models.SetExpressCheckoutRequestDetails{
		InvoiceID:      invoiceID,
		BuyerEmail:     buyerEmail,
		ReturnURL:      urls.ConfirmURL,
		CancelURL:      urls.CancelURL,
		SolutionType:   solutionType,
		LandingPage:    landingPage,
		HeaderImageURL: paymentMethod.PreferredLogoURL,
		NoShipping:     1,
		PaymentDetails: []models.PaymentDetails{paymentDetails},
	}
}

func orderPaymentDetails(order *models.OrderResourceRest, items []models.ExpressCheckoutItem, paymentMethod *models.PaymentMethodRest) (models.PaymentDetails, error) {
	total, err := ParseAmount(order.Total)
	if err != nil {
		return models.PaymentDetails{}, fmt.Errorf("error parsing order total: [%v]", err)
	}

	taxTotal, err := ParseAmount(orDefaultAmount(order.AdditionalTaxTotal))
	if err != nil {
		return models.PaymentDetails{}, fmt.Errorf("error parsing order tax total: [%v]", err)
	}

	// The cost of shipping after promotions are applied. If shipping costs 10
	// and is free with a promotion, the shipment sum stays 10.
	shipmentSum := decimal.Zero
	for _, shipment := range order.Shipments {
		cost, err := ParseAmount(orDefaultAmount(shipment.DiscountedCost))
		if err != nil {
			return models.PaymentDetails{}, fmt.Errorf("error parsing shipment cost: [%v]", err)
		}
		shipmentSum = shipmentSum.Add(cost.Decimal)
	}

	// The item sum is derived from the order total because the platform does
	// not expose an items-only subtotal.
	itemSum := total.Sub(shipmentSum).Sub(taxTotal.Decimal)

	if itemSum.IsZero() {
		// The provider does not support no items or a zero ItemTotal. The
		// order summary then displays simply as the current purchase.
		return models.PaymentDetails{
			OrderTotal: models.ExpressCheckoutAmount{
				CurrencyID: order.Currency,
				Value:      total,
			},
		}, nil
	}

	return models.PaymentDetails{
		OrderTotal: models.ExpressCheckoutAmount{
			CurrencyID: order.Currency,
			Value:      total,
		},
		ItemTotal: &models.ExpressCheckoutAmount{
			CurrencyID: order.Currency,
			Value:      models.AmountValue{Decimal: itemSum},
		},
		ShippingTotal: &models.ExpressCheckoutAmount{
			CurrencyID: order.Currency,
			Value:      models.AmountValue{Decimal: shipmentSum},
		},
		TaxTotal: &models.ExpressCheckoutAmount{
			CurrencyID: order.Currency,
			Value:      taxTotal,
		},
		ShipToAddress:      shipToAddress(order, paymentMethod),
		PaymentDetailsItem: items,
		ShippingMethod:     placeholderShippingMethod,
		PaymentAction:      paymentActionSale,
	}, nil
}

func subscriptionPaymentDetails(subscription *models.SubscriptionResourceRest, event *models.EventResourceRest) (models.PaymentDetails, error) {
	total, err := CoerceAmount(MoneyValueFromRest(subscription.DisplayTotal))
	if err != nil {
		return models.PaymentDetails{}, fmt.Errorf("error coercing subscription total: [%v]", err)
	}

	itemTotal, err := CoerceAmount(MoneyValueFromRest(event.DisplayPrice))
	if err != nil {
		return models.PaymentDetails{}, fmt.Errorf("error coercing event price: [%v]", err)
	}

	taxTotal, err := CoerceAmount(MoneyValueFromRest(subscription.DisplayAdditionalTaxTotal))
	if err != nil {
		return models.PaymentDetails{}, fmt.Errorf("error coercing subscription additional tax total: [%v]", err)
	}

	return models.PaymentDetails{
		OrderTotal: models.ExpressCheckoutAmount{
			CurrencyID: subscription.Currency,
			Value:      total,
		},
		ItemTotal: &models.ExpressCheckoutAmount{
			CurrencyID: subscription.Currency,
			Value:      itemTotal,
		},
		TaxTotal: &models.ExpressCheckoutAmount{
			CurrencyID: subscription.Currency,
			Value:      taxTotal,
		},
		PaymentAction: paymentActionSale,
	}, nil
}

// shipToAddress derives the address block from the bill address, falling
// back to the ship address. An empty block is sent unless the payment
// method's solution type requires an address.
func shipToAddress(order *models.OrderResourceRest, paymentMethod *models.PaymentMethodRest) *models.ShipToAddress {
	if paymentMethod.PreferredSolution != addressRequiredSolutionType {
		return &models.ShipToAddress{}
	}

	address := order.BillAddress
	if address == nil {
		address = order.ShipAddress
	}
	if address == nil {
		return &models.ShipToAddress{}
	}

	return &models.ShipToAddress{
		Name:            address.FullName(),
		Street1:         address.Address1,
		Street2:         address.Address2,
		CityName:        address.City,
		Phone:           address.Phone,
		StateOrProvince: address.State,
		Country:         address.CountryISO,
		PostalCode:      address.Zipcode,
	}
}

func orDefaultAmount(amount string) string {
	if amount == "" {
		return "0"
	}
	return amount
}
