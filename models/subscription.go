package models

// MoneyRest is the platform's money wrapper, an amount with its currency
type MoneyRest struct {
	Amount   string `json:"amount"   validate:"required"`
	Currency string `json:"currency"`
}

// EventResourceRest is an event as served by the host commerce platform API
type EventResourceRest struct {
	ID           string     `json:"id"   validate:"required"`
	Name         string     `json:"name" validate:"required"`
	DisplayPrice *MoneyRest `json:"display_price"`
}

// SubscriptionResourceRest is a recurring event subscription as served by the
// host commerce platform API
type SubscriptionResourceRest struct {
	Number                    string     `json:"number"   validate:"required"`
	Currency                  string     `json:"currency" validate:"required"`
	Email                     string     `json:"email"`
	UserEmail                 string     `json:"user_email"`
	DisplayPrice              *MoneyRest `json:"display_price"`
	DisplayTotal              *MoneyRest `json:"display_total"`
	DisplayAdditionalTaxTotal *MoneyRest `json:"display_additional_tax_total"`
}

// BuyerEmail returns the subscription email, falling back to the owning
// user's email when the subscription has none of its own
func (s *SubscriptionResourceRest) BuyerEmail() string {
	if s.Email != "" {
		return s.Email
	}
	return s.UserEmail
}
