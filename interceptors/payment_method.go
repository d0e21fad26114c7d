package interceptors

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cartways/paypal-express-api/config"
	"github.com/cartways/paypal-express-api/helpers"
	"github.com/cartways/paypal-express-api/service"
	"github.com/companieshouse/chs.go/log"
)

// PaymentMethodHeader carries the payment method id on API requests; the
// payment_method_id query parameter is the fallback
const PaymentMethodHeader = "X-Payment-Method-Id"

// fetchPaymentMethod allows us to stub the platform lookup for unit tests
var fetchPaymentMethod = service.GetPaymentMethod

// PaymentMethodInterceptor contains the config used to resolve payment
// methods from the host platform
type PaymentMethodInterceptor struct {
	Config config.Config
}

// PaymentMethodIntercept resolves the payment method named by the request
// header or parameter and stores it in the request context, so handlers
// receive an already resolved method instead of looking it up ad hoc
func (interceptor PaymentMethodInterceptor) PaymentMethodIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(PaymentMethodHeader)
		if id == "" {
			id = r.URL.Query().Get("payment_method_id")
		}
		if id == "" {
			log.ErrorR(r, fmt.Errorf("PaymentMethodInterceptor error: no payment method id"))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		paymentMethod, httpStatus, err := fetchPaymentMethod(id, &interceptor.Config)
		if err != nil {
			log.ErrorR(r, fmt.Errorf("PaymentMethodInterceptor error resolving payment method [%s]: [%v]", id, err))
			w.WriteHeader(httpStatus)
			return
		}

		ctx := context.WithValue(r.Context(), helpers.ContextKeyPaymentMethod, paymentMethod)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
