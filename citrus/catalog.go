package citrus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/alovak/citruspay-go/citrus/models"
	"github.com/alovak/citruspay-go/instrument"
)

// Bank is one net-banking option enabled for the merchant.
type Bank struct {
	Name string
	Code string
}

// PaymentMethods is the merchant's enabled instrument catalog. It is a
// snapshot: every call to EligibleInstruments re-fetches it.
type PaymentMethods struct {
	Banks       []Bank
	CreditCards []instrument.Scheme
	DebitCards  []instrument.Scheme
}

type pgSettingResponse struct {
	NetBanking []struct {
		BankName   string `json:"bankName"`
		IssuerCode string `json:"issuerCode"`
	} `json:"netBanking"`
	CreditCard []string `json:"creditCard"`
	DebitCard  []string `json:"debitCard"`
}

// EligibleInstruments fetches the catalog of payment methods the gateway
// has enabled for the merchant's vanity URL. Scheme names reported by the
// gateway are normalised; an unrecognised scheme fails the whole fetch.
func (c *Client) EligibleInstruments(ctx context.Context) (*PaymentMethods, error) {
	status, body, err := c.postForm(ctx, "pgsetting", "/service/v1/merchant/pgsetting", url.Values{
		"vanity": {c.merchant.VanityURL()},
	})
	if err != nil {
		return nil, err
	}
	if status/100 != 2 {
		return nil, &TransportError{Op: "pgsetting", Status: status, Err: fmt.Errorf("unexpected status")}
	}

	var resp pgSettingResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &TransportError{Op: "pgsetting", Status: status, Err: fmt.Errorf("decode response: %w", err)}
	}

	methods := &PaymentMethods{}
	for _, bank := range resp.NetBanking {
		methods.Banks = append(methods.Banks, Bank{Name: bank.BankName, Code: bank.IssuerCode})
	}
	for _, raw := range resp.CreditCard {
		scheme, err := instrument.ParseScheme(raw)
		if err != nil {
			return nil, fmt.Errorf("credit card catalog: %w", err)
		}
		methods.CreditCards = append(methods.CreditCards, scheme)
	}
	for _, raw := range resp.DebitCard {
		scheme, err := instrument.ParseScheme(raw)
		if err != nil {
			return nil, fmt.Errorf("debit card catalog: %w", err)
		}
		methods.DebitCards = append(methods.DebitCards, scheme)
	}

	return methods, nil
}

type paymentOption struct {
	Name       string `json:"name"`
	Token      string `json:"token"`
	Type       string `json:"type"`
	Scheme     string `json:"scheme"`
	Number     string `json:"number"`
	ExpiryDate string `json:"expiryDate"`
	Bank       string `json:"bank"`
}

type profilePaymentResponse struct {
	PaymentOptions []paymentOption `json:"paymentOptions"`
}

// UserInstruments lists the payer's saved instruments. Each entry carries a
// stored-token id usable for tokenized payments. Entries whose type the
// gateway has not documented come back with no variant populated; callers
// should check Valid() before use.
func (c *Client) UserInstruments(ctx context.Context, token *models.AccessToken) ([]instrument.Instrument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/service/v2/profile/me/payment", nil)
	if err != nil {
		return nil, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	status, body, err := c.do(req, "profile")
	if err != nil {
		return nil, err
	}
	if status/100 != 2 {
		return nil, &TransportError{Op: "profile", Status: status, Err: fmt.Errorf("unexpected status")}
	}

	var resp profilePaymentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &TransportError{Op: "profile", Status: status, Err: fmt.Errorf("decode response: %w", err)}
	}

	instruments := make([]instrument.Instrument, 0, len(resp.PaymentOptions))
	for _, opt := range resp.PaymentOptions {
		ins, err := mapPaymentOption(opt)
		if err != nil {
			return nil, fmt.Errorf("payment option %q: %w", opt.Name, err)
		}
		instruments = append(instruments, ins)
	}

	return instruments, nil
}

func mapPaymentOption(opt paymentOption) (instrument.Instrument, error) {
	switch opt.Type {
	case "credit", "debit":
		kind := instrument.KindCredit
		if opt.Type == "debit" {
			kind = instrument.KindDebit
		}
		scheme, err := instrument.ParseScheme(opt.Scheme)
		if err != nil {
			return instrument.Instrument{}, err
		}
		exp, err := instrument.ParseExpiry(opt.ExpiryDate)
		if err != nil {
			return instrument.Instrument{}, err
		}
		card := instrument.Card{
			Kind:   kind,
			Scheme: scheme,
			Number: opt.Number,
			Expiry: exp,
		}
		return instrument.NewCard(card).WithToken(opt.Token), nil
	case "netbanking":
		bank := instrument.NetBanking{BankName: opt.Bank}
		return instrument.NewNetBanking(bank).WithToken(opt.Token), nil
	}

	// Unknown type: keep the token so the "1&" tokenized path still works,
	// but leave the variant empty.
	if opt.Token != "" {
		return instrument.NewStoredToken(opt.Token, ""), nil
	}

	return instrument.Instrument{}, nil
}
