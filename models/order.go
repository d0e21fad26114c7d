package models

// OrderResourceRest is an order as served by the host commerce platform API.
// The platform owns the order and its state machine; this service only reads it.
type OrderResourceRest struct {
	Number             string           `json:"number"            validate:"required"`
	State              string           `json:"state"`
	Email              string           `json:"email"`
	Currency           string           `json:"currency"          validate:"required"`
	Total              string           `json:"total"             validate:"required"`
	AdditionalTaxTotal string           `json:"additional_tax_total"`
	BillAddress        *AddressRest     `json:"bill_address,omitempty"`
	ShipAddress        *AddressRest     `json:"ship_address,omitempty"`
	LineItems          []LineItemRest   `json:"line_items"`
	Adjustments        []AdjustmentRest `json:"adjustments"`
	Shipments          []ShipmentRest   `json:"shipments"`
}

// LineItemRest is a single purchasable entry on an order
type LineItemRest struct {
	ProductName string `json:"product_name" validate:"required"`
	SKU         string `json:"sku"`
	Quantity    int    `json:"quantity"     validate:"required"`
	Price       string `json:"price"        validate:"required"`
}

// AdjustmentRest is a non-base-price charge or discount applied to an order
type AdjustmentRest struct {
	Label    string `json:"label"`
	Amount   string `json:"amount"`
	Tax      bool   `json:"tax"`
	Shipping bool   `json:"shipping"`
	Eligible bool   `json:"eligible"`
}

// ShipmentRest carries the cost of one shipment after promotions are applied
type ShipmentRest struct {
	DiscountedCost string `json:"discounted_cost"`
}

// AddressRest is a billing or shipping address on an order
type AddressRest struct {
	FirstName  string `json:"firstname"`
	LastName   string `json:"lastname"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	City       string `json:"city"`
	Phone      string `json:"phone"`
	State      string `json:"state"`
	CountryISO string `json:"country_iso"`
	Zipcode    string `json:"zipcode"`
}

// FullName returns the addressee name in the form the provider expects
func (a *AddressRest) FullName() string {
	if a.FirstName == "" {
		return a.LastName
	}
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}
