package models

// PaymentMethodRest is a configured payment method as served by the host
// commerce platform API. Preferences drive the express checkout payload.
type PaymentMethodRest struct {
	ID                   string `json:"id"   validate:"required"`
	Type                 string `json:"type"`
	Name                 string `json:"name"`
	PreferredSolution    string `json:"preferred_solution"`
	PreferredLandingPage string `json:"preferred_landing_page"`
	PreferredLogoURL     string `json:"preferred_logourl"`
}
