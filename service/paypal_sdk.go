package service

import (
	"context"
	"fmt"

	"github.com/cartways/paypal-express-api/config"
	"github.com/plutov/paypal/v4"
)

var restClient *paypal.Client

// GetPayPalClient returns a shared PayPal REST client, authenticating on
// first use. The REST API is only used for refunds; express checkout
// sessions go through the NVP client.
func GetPayPalClient(cfg config.Config) (*paypal.Client, error) {
	if restClient != nil {
		return restClient, nil
	}

	paypalAPIBase := getPayPalAPIBase(cfg.PaypalEnv)
	if paypalAPIBase == "" {
		return nil, fmt.Errorf("invalid paypal env in config: %s", cfg.PaypalEnv)
	}

	c, err := paypal.NewClient(cfg.PaypalClientID, cfg.PaypalSecret, paypalAPIBase)
	if err != nil {
		return nil, fmt.Errorf("error creating paypal client: [%v]", err)
	}
	_, err = c.GetAccessToken(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting access token: [%v]", err)
	}

	restClient = c
	return restClient, nil
}

// PayPalSDK is an interface for all the PayPal REST client methods that will
// be used in this service
type PayPalSDK interface {
	GetAccessToken(ctx context.Context) (*paypal.TokenResponse, error)
	RefundCapture(ctx context.Context, captureID string, refundCaptureRequest paypal.RefundCaptureRequest) (*paypal.RefundResponse, error)
}

func getPayPalAPIBase(env string) string {
	switch env {
	case "live":
		return paypal.APIBaseLive
	case "test":
		return paypal.APIBaseSandBox
	default:
		return ""
	}
}
