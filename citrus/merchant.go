// Package citrus implements the merchant side of the CitrusPay hosted
// payment gateway protocol: request signing, payment payload construction,
// response interpretation and catalog retrieval.
package citrus

// Environment selects which gateway deployment the merchant talks to.
type Environment int

const (
	Sandbox Environment = iota
	Production
)

// BaseURL returns the root URL of the gateway for the environment.
func (e Environment) BaseURL() string {
	switch e {
	case Production:
		return "https://admin.citruspay.com"
	default:
		return "https://sandboxadmin.citruspay.com"
	}
}

func (e Environment) String() string {
	if e == Production {
		return "production"
	}
	return "sandbox"
}

// MerchantConfig carries the credentials issued to a merchant by the
// gateway. SigninID/SigninSecret are the OAuth client credentials used for
// payer token exchange and are only needed when calling AccessToken or
// UserInstruments.
type MerchantConfig struct {
	AccessKey    string
	SecretKey    string
	VanityURL    string
	Environment  Environment
	SigninID     string
	SigninSecret string
}

// Merchant is an immutable merchant identity. The secret key never leaves
// this package; it is only ever fed into the request signer.
type Merchant struct {
	accessKey    string
	secretKey    string
	vanityURL    string
	env          Environment
	signinID     string
	signinSecret string
}

// NewMerchant builds a merchant identity from its gateway credentials.
func NewMerchant(cfg MerchantConfig) (*Merchant, error) {
	if cfg.AccessKey == "" {
		return nil, &InvalidInputError{Reason: "access key is empty"}
	}
	if cfg.SecretKey == "" {
		return nil, &InvalidInputError{Reason: "secret key is empty"}
	}
	return &Merchant{
		accessKey:    cfg.AccessKey,
		secretKey:    cfg.SecretKey,
		vanityURL:    cfg.VanityURL,
		env:          cfg.Environment,
		signinID:     cfg.SigninID,
		signinSecret: cfg.SigninSecret,
	}, nil
}

// AccessKey returns the merchant's public access key.
func (m *Merchant) AccessKey() string { return m.accessKey }

// VanityURL returns the merchant's vanity URL path segment.
func (m *Merchant) VanityURL() string { return m.vanityURL }

// Environment returns the gateway deployment this merchant is bound to.
func (m *Merchant) Environment() Environment { return m.env }
