// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr        string `env:"BIND_ADDR"            flag:"bind-addr"            flagDesc:"Bind address"`
	Collection      string `env:"MONGODB_COLLECTION"   flag:"mongodb-collection"   flagDesc:"MongoDB collection for payment data"`
	Database        string `env:"MONGODB_DATABASE"     flag:"mongodb-database"     flagDesc:"MongoDB database for payment data"`
	MongoDBURL      string `env:"MONGODB_URL"          flag:"mongodb-url"          flagDesc:"MongoDB server URL"`
	PlatformAPIURL  string `env:"PLATFORM_API_URL"     flag:"platform-api-url"     flagDesc:"Base URL of the host commerce platform API"`
	StorefrontURL   string `env:"STOREFRONT_URL"       flag:"storefront-url"       flagDesc:"Base URL of the storefront, used for legacy redirects"`
	DomainAllowList string `env:"DOMAIN_ALLOW_LIST"    flag:"domain-allow-list"    flagDesc:"List of valid domains for confirm and cancel URLs"`
	PaypalNVPURL    string `env:"PAYPAL_NVP_URL"       flag:"paypal-nvp-url"       flagDesc:"URL used to make express checkout calls to PayPal"`
	PaypalWebscrURL string `env:"PAYPAL_WEBSCR_URL"    flag:"paypal-webscr-url"    flagDesc:"PayPal hosted approval page base URL"`
	PaypalNVPUser   string `env:"PAYPAL_NVP_USER"      flag:"paypal-nvp-user"      flagDesc:"PayPal API username for express checkout calls"`
	PaypalNVPPwd    string `env:"PAYPAL_NVP_PWD"       flag:"paypal-nvp-pwd"       flagDesc:"PayPal API password for express checkout calls"`
	PaypalNVPSig    string `env:"PAYPAL_NVP_SIGNATURE" flag:"paypal-nvp-signature" flagDesc:"PayPal API signature for express checkout calls"`
	PaypalEnv       string `env:"PAYPAL_ENV"           flag:"paypal-env"           flagDesc:"PayPal REST environment, live or test"`
	PaypalClientID  string `env:"PAYPAL_CLIENT_ID"     flag:"paypal-client-id"     flagDesc:"PayPal REST client ID, used for refunds"`
	PaypalSecret    string `env:"PAYPAL_SECRET"        flag:"paypal-secret"        flagDesc:"PayPal REST secret, used for refunds"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:        "payments",
		Collection:      "payments",
		PaypalWebscrURL: "https://www.paypal.com/cgi-bin/webscr",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
