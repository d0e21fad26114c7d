package service

import (
	"testing"

	"github.com/cartways/paypal-express-api/models"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitCollectOrderItems(t *testing.T) {

	Convey("Line items and eligible adjustments become provider items in input order", t, func() {
		order := &models.OrderResourceRest{
			Currency: "USD",
			LineItems: []models.LineItemRest{
				{ProductName: "Widget", SKU: "WID-1", Quantity: 2, Price: "10.00"},
				{ProductName: "Gadget", SKU: "GAD-1", Quantity: 1, Price: "7.50"},
			},
			Adjustments: []models.AdjustmentRest{
				{Label: "Promotion (Summer)", Amount: "-2.00", Eligible: true},
				{Label: "Tax", Amount: "1.50", Tax: true, Eligible: true},
				{Label: "Shipping", Amount: "5.00", Shipping: true, Eligible: true},
				{Label: "Ineligible promo", Amount: "-1.00", Eligible: false},
			},
		}

		items, err := CollectOrderItems(order)

		So(err, ShouldBeNil)
		So(items, ShouldHaveLength, 3)
		So(items[0].Name, ShouldEqual, "Widget")
		So(items[0].Number, ShouldEqual, "WID-1")
		So(items[0].Quantity, ShouldEqual, 2)
		So(items[0].Amount.CurrencyID, ShouldEqual, "USD")
		So(items[0].Amount.Value.String(), ShouldEqual, "10")
		So(items[1].Name, ShouldEqual, "Gadget")
		So(items[1].Amount.Value.String(), ShouldEqual, "7.5")
		So(items[2].Name, ShouldEqual, "Promotion (Summer)")
		So(items[2].Quantity, ShouldEqual, 1)
		So(items[2].Amount.Value.String(), ShouldEqual, "-2")
	})

	Convey("Zero amount entries never appear in the final list", t, func() {
		order := &models.OrderResourceRest{
			Currency: "GBP",
			LineItems: []models.LineItemRest{
				{ProductName: "Free sample", SKU: "FREE-1", Quantity: 1, Price: "0.00"},
				{ProductName: "Widget", SKU: "WID-1", Quantity: 1, Price: "20.00"},
			},
			Adjustments: []models.AdjustmentRest{
				{Label: "Zero promo", Amount: "0", Eligible: true},
			},
		}

		items, err := CollectOrderItems(order)

		So(err, ShouldBeNil)
		So(items, ShouldHaveLength, 1)
		So(items[0].Name, ShouldEqual, "Widget")
	})

	Convey("Bad line item price fails", t, func() {
		order := &models.OrderResourceRest{
			Currency: "USD",
			LineItems: []models.LineItemRest{
				{ProductName: "Widget", SKU: "WID-1", Quantity: 1, Price: "ten"},
			},
		}

		items, err := CollectOrderItems(order)

		So(items, ShouldBeNil)
		So(err.Error(), ShouldContainSubstring, "error parsing price for line item [Widget]")
	})
}

func TestUnitCollectSubscriptionItems(t *testing.T) {

	Convey("Subscription yields a taxes line and an event identified line", t, func() {
		subscription := &models.SubscriptionResourceRest{
			Currency:                  "USD",
			DisplayPrice:              &models.MoneyRest{Amount: "30.00", Currency: "USD"},
			DisplayAdditionalTaxTotal: &models.MoneyRest{Amount: "2.50", Currency: "USD"},
		}
		event := &models.EventResourceRest{ID: "77", Name: "Conference"}

		items, err := CollectSubscriptionItems(subscription, event)

		So(err, ShouldBeNil)
		So(items, ShouldHaveLength, 2)
		So(items[0].Name, ShouldEqual, "taxes")
		So(items[0].Quantity, ShouldEqual, 1)
		So(items[0].Amount.Value.String(), ShouldEqual, "30")
		So(items[1].Name, ShouldEqual, "Event ID:77")
		So(items[1].Amount.Value.String(), ShouldEqual, "2.5")
	})

	Convey("Absent additional tax total defaults to zero and is dropped", t, func() {
		subscription := &models.SubscriptionResourceRest{
			Currency:     "USD",
			DisplayPrice: &models.MoneyRest{Amount: "30.00", Currency: "USD"},
		}
		event := &models.EventResourceRest{ID: "77", Name: "Conference"}

		items, err := CollectSubscriptionItems(subscription, event)

		So(err, ShouldBeNil)
		So(items, ShouldHaveLength, 1)
		So(items[0].Name, ShouldEqual, "taxes")
	})

	Convey("Missing subscription price fails with the designated error", t, func() {
		subscription := &models.SubscriptionResourceRest{Currency: "USD"}
		event := &models.EventResourceRest{ID: "77", Name: "Conference"}

		items, err := CollectSubscriptionItems(subscription, event)

		So(items, ShouldBeNil)
		So(err.Error(), ShouldContainSubstring, ErrUnsupportedAmountType.Error())
	})
}
