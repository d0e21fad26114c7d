package helpers

// ContextKey is a type for creating context keys
type ContextKey string

const (
	// ContextKeyPaymentMethod is the request context key under which the
	// resolved payment method is stored
	ContextKeyPaymentMethod = ContextKey("payment_method")
)
