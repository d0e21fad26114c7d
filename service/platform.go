package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/cartways/paypal-express-api/config"
	"github.com/cartways/paypal-express-api/models"
	"github.com/companieshouse/chs.go/log"

	"gopkg.in/go-playground/validator.v9"
)

// The order, subscription and payment method all live in the host commerce
// platform; this service reads them per request and never writes them back.

// GetOrder fetches an order from the host platform API
func GetOrder(orderID string, cfg *config.Config) (*models.OrderResourceRest, int, error) {
	order := &models.OrderResourceRest{}
	httpStatus, err := getPlatformResource(fmt.Sprintf("%s/api/orders/%s", cfg.PlatformAPIURL, orderID), order)
	if err != nil {
		return nil, httpStatus, err
	}

	if err = validatePlatformResource(order); err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("invalid order resource: [%v]", err)
	}

	return order, http.StatusOK, nil
}

// GetPaymentMethod fetches a configured payment method from the host
// platform API
func GetPaymentMethod(paymentMethodID string, cfg *config.Config) (*models.PaymentMethodRest, int, error) {
	paymentMethod := &models.PaymentMethodRest{}
	httpStatus, err := getPlatformResource(fmt.Sprintf("%s/api/payment_methods/%s", cfg.PlatformAPIURL, paymentMethodID), paymentMethod)
	if err != nil {
		return nil, httpStatus, err
	}

	if err = validatePlatformResource(paymentMethod); err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("invalid payment method resource: [%v]", err)
	}

	return paymentMethod, http.StatusOK, nil
}

// GetEvent fetches an event from the host platform API
func GetEvent(eventID string, cfg *config.Config) (*models.EventResourceRest, int, error) {
	event := &models.EventResourceRest{}
	httpStatus, err := getPlatformResource(fmt.Sprintf("%s/api/events/%s", cfg.PlatformAPIURL, eventID), event)
	if err != nil {
		return nil, httpStatus, err
	}

	if err = validatePlatformResource(event); err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("invalid event resource: [%v]", err)
	}

	return event, http.StatusOK, nil
}

// GetEventSubscription fetches the given user's subscription to an event
// from the host platform API
func GetEventSubscription(eventID, userID string, cfg *config.Config) (*models.SubscriptionResourceRest, int, error) {
	subscription := &models.SubscriptionResourceRest{}
	resource := fmt.Sprintf("%s/api/events/%s/subscription?user_id=%s", cfg.PlatformAPIURL, eventID, url.QueryEscape(userID))
	httpStatus, err := getPlatformResource(resource, subscription)
	if err != nil {
		return nil, httpStatus, err
	}

	if err = validatePlatformResource(subscription); err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("invalid subscription resource: [%v]", err)
	}

	return subscription, http.StatusOK, nil
}

func getPlatformResource(resource string, target interface{}) (int, error) {
	resourceReq, err := http.NewRequest("GET", resource, nil)
	if err != nil {
		return http.StatusInternalServerError, fmt.Errorf("failed to create platform resource request: [%v]", err)
	}

	var client http.Client
	resp, err := client.Do(resourceReq)
	if err != nil {
		return http.StatusInternalServerError, fmt.Errorf("error getting platform resource: [%v]", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.New("error getting platform resource")
		log.ErrorR(resourceReq, err)
		return http.StatusBadRequest, err
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return http.StatusInternalServerError, fmt.Errorf("error reading platform resource: [%v]", err)
	}

	err = json.Unmarshal(body, target)
	if err != nil {
		return http.StatusBadRequest, fmt.Errorf("error reading platform resource: [%v]", err)
	}

	return http.StatusOK, nil
}

func validatePlatformResource(resource interface{}) error {
	validate := validator.New()
	return validate.Struct(resource)
}

// ValidateCheckoutURL checks a caller supplied confirm or cancel URL against
// the configured domain allow list
func ValidateCheckoutURL(checkoutURL string, cfg *config.Config) error {
	parsedURL, err := url.Parse(checkoutURL)
	if err != nil {
		return err
	}
	urlDomain := strings.Join([]string{parsedURL.Scheme, parsedURL.Host}, "://")

	allowList := strings.Split(cfg.DomainAllowList, ",")
	matched := false
	for _, domain := range allowList {
		if urlDomain == domain {
			matched = true
			break
		}
	}
	if !matched {
		err = fmt.Errorf("invalid redirect domain: %s", urlDomain)
		return err
	}
	return err
}
