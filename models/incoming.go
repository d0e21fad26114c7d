package models

// CreateOrderPaymentRequest is the data received in the body of a request to
// initiate an express checkout session for a cart order
type CreateOrderPaymentRequest struct {
	OrderID    string `json:"order_id"    validate:"required"`
	ConfirmURL string `json:"confirm_url" validate:"required"`
	CancelURL  string `json:"cancel_url"  validate:"required"`
}

// CreateSubscriptionPaymentRequest is the data received in the body of a
// request to initiate an express checkout session for an event subscription
type CreateSubscriptionPaymentRequest struct {
	UserID     string `json:"user_id"     validate:"required"`
	ConfirmURL string `json:"confirm_url" validate:"required"`
	CancelURL  string `json:"cancel_url"  validate:"required"`
}

// ConfirmOrderPaymentRequest is the data received when the buyer returns from
// the provider's approval page for a cart order
type ConfirmOrderPaymentRequest struct {
	OrderID string `json:"order_id" validate:"required"`
	Token   string `json:"token"    validate:"required"`
	PayerID string `json:"PayerID"  validate:"required"`
}

// ConfirmSubscriptionPaymentRequest is the data received when the buyer
// returns from the provider's approval page for an event subscription
type ConfirmSubscriptionPaymentRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Token   string `json:"token"   validate:"required"`
	PayerID string `json:"PayerID" validate:"required"`
}

// RedirectResponse carries the provider's hosted approval page URL for the
// calling app to redirect the buyer to
type RedirectResponse struct {
	RedirectURL string `json:"redirect_url"`
}

// ProviderErrorsResponse carries the provider's error messages joined with a
// single space separator
type ProviderErrorsResponse struct {
	Errors string `json:"errors"`
}

// ConnectionErrorResponse carries the fixed message returned when the
// provider cannot be reached
type ConnectionErrorResponse struct {
	Errors []string `json:"errors"`
}
