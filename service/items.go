package service

import (
	"fmt"

	"github.com/cartways/paypal-express-api/models"
)

// CollectOrderItems turns an order's line items and adjustments into
// provider-format line items. Tax and shipping adjustments are excluded as
// they are reported through their own totals, and ineligible adjustments are
// skipped. Zero-amount entries are dropped last because the provider rejects
// a zero amount item.
func CollectOrderItems(order *models.OrderResourceRest) ([]models.ExpressCheckoutItem, error) {
	items := make([]models.ExpressCheckoutItem, 0, len(order.LineItems)+len(order.Adjustments))

	for _, lineItem := range order.LineItems {
		price, err := ParseAmount(lineItem.Price)
		if err != nil {
			return nil, fmt.Errorf("error parsing price for line item [%s]: [%v]", lineItem.ProductName, err)
		}

		items = append(items, models.ExpressCheckoutItem{
			Name:     lineItem.ProductName,
			Number:   lineItem.SKU,
			Quantity: lineItem.Quantity,
			Amount: models.ExpressCheckoutAmount{
				CurrencyID: order.Currency,
				Value:      price,
			},
		})
	}

	for _, adjustment := range order.Adjustments {
		if !adjustment.Eligible || adjustment.Tax || adjustment.Shipping {
			continue
		}

		amount, err := ParseAmount(adjustment.Amount)
		if err != nil {
			return nil, fmt.Errorf("error parsing amount for adjustment [%s]: [%v]", adjustment.Label, err)
		}

		items = append(items, models.ExpressCheckoutItem{
			Name:     adjustment.Label,
			Quantity: 1,
			Amount: models.ExpressCheckoutAmount{
				CurrencyID: order.Currency,
				Value:      amount,
			},
		})
	}

	return rejectZeroItems(items), nil
}

// CollectSubscriptionItems produces the fixed two-entry item sequence for an
// event subscription: a taxes line and an event-identified line. Zero-amount
// entries are dropped.
func CollectSubscriptionItems(subscription *models.SubscriptionResourceRest, event *models.EventResourceRest) ([]models.ExpressCheckoutItem, error) {
	price, err := CoerceAmount(MoneyValueFromRest(subscription.DisplayPrice))
	if err != nil {
		return nil, fmt.Errorf("error coercing subscription price: [%v]", err)
	}

	additionalTax, err := CoerceAmount(MoneyValueFromRestOrZero(subscription.DisplayAdditionalTaxTotal))
	if err != nil {
		return nil, fmt.Errorf("error coercing subscription additional tax total: [%v]", err)
	}

	items := []models.ExpressCheckoutItem{
		{
			Name:     "taxes",
			Quantity: 1,
			Amount: models.ExpressCheckoutAmount{
				CurrencyID: subscription.Currency,
				Value:      price,
			},
		},
		{
			Name:     fmt.Sprintf("Event ID:%s", event.ID),
			Quantity: 1,
			Amount: models.ExpressCheckoutAmount{
				CurrencyID: subscription.Currency,
				Value:      additionalTax,
			},
		},
	}

	return rejectZeroItems(items), nil
}

// The provider rejects zero amount items outright, so they must never reach
// the payload. Zero order-level totals are still legal and handled by the
// request builder.
func rejectZeroItems(items []models.ExpressCheckoutItem) []models.ExpressCheckoutItem {
	kept := make([]models.ExpressCheckoutItem, 0, len(items))
	for _, item := range items {
		if item.Amount.Value.IsZero() {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}
