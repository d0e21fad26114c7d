package handlers

import (
	"fmt"
	"net/http"

	"github.com/cartways/paypal-express-api/service"
	"github.com/cartways/paypal-express-api/transformers"
	"github.com/cartways/paypal-express-api/utils"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

// HandlePaypalRefund refunds the captured transaction behind an admin's
// chosen payment
func HandlePaypalRefund(w http.ResponseWriter, req *http.Request) {
	paymentID := mux.Vars(req)["payment_id"]
	if paymentID == "" {
		log.ErrorR(req, fmt.Errorf("payment id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// The REST client authenticates on first use, so it is resolved here
	// rather than at startup
	if refundService.Client == nil {
		client, err := service.GetPayPalClient(refundService.PaymentService.Config)
		if err != nil {
			log.ErrorR(req, fmt.Errorf("error getting paypal client: [%v]", err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		refundService.Client = client
	}

	paymentResource, responseType, err := refundService.CreateRefund(req, paymentID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating refund: [%v]", err), log.Data{"service_response_type": responseType.String()})
		switch responseType {
		case service.NotFound:
			w.WriteHeader(http.StatusNotFound)
		case service.InvalidData:
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	rest := transformers.PaymentTransformer{}.TransformToRest(*paymentResource)
	utils.WriteJSONWithStatus(w, req, rest, http.StatusOK)

	log.InfoR(req, "Successful request for new refund", log.Data{"payment_id": paymentID, "refund_id": rest.RefundID, "status": http.StatusOK})
}
