package citrus

import (
	"fmt"

	"github.com/alovak/citruspay-go/citrus/models"
	"github.com/alovak/citruspay-go/instrument"
	"github.com/go-playground/validator/v10"
)

// Flow selects the payload shape the gateway expects.
type Flow int

const (
	// FlowRedirect is the browser flow: the payer is redirected to the
	// gateway's hosted payment page, which calls back on returnUrl.
	FlowRedirect Flow = iota
	// FlowMOTO is the server-to-server flow: instrument details are
	// submitted directly to the authorize endpoint.
	FlowMOTO
)

// requestOrigin identifies this library to the gateway on MOTO requests.
const requestOrigin = "CJSG"

var validate = validator.New()

// Amount is the transaction amount as the gateway expects it.
type Amount struct {
	Value    string `json:"value" validate:"required"`
	Currency string `json:"currency" validate:"required"`
}

// AddressDetails mirrors the gateway's address block.
type AddressDetails struct {
	Street1 string `json:"street1"`
	Street2 string `json:"street2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
}

// UserDetails mirrors the gateway's payer block.
type UserDetails struct {
	Email     string         `json:"email"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	MobileNo  string         `json:"mobileNo"`
	Address   AddressDetails `json:"address"`
}

// PaymentMode carries raw instrument details inside a paymentOptionToken.
type PaymentMode struct {
	Type   string `json:"type"`
	Scheme string `json:"scheme,omitempty"`
	Number string `json:"number,omitempty"`
	Holder string `json:"holder,omitempty"`
	Expiry string `json:"expiry,omitempty"`
	CVV    string `json:"cvv,omitempty"`
	Bank   string `json:"bank,omitempty"`
	Code   string `json:"code,omitempty"`
}

// PaymentToken is the polymorphic instrument encoding: either a stored
// token reference (paymentOptionIdToken) or raw details (paymentOptionToken).
type PaymentToken struct {
	Type        string       `json:"type"`
	ID          string       `json:"id,omitempty"`
	CVV         string       `json:"cvv,omitempty"`
	PaymentMode *PaymentMode `json:"paymentMode,omitempty"`
}

// Payload is the request body for the gateway's authorize endpoint.
type Payload struct {
	MerchantTxnID     string            `json:"merchantTxnId" validate:"required"`
	RequestSignature  string            `json:"requestSignature" validate:"required"`
	ReturnURL         string            `json:"returnUrl,omitempty"`
	NotifyURL         string            `json:"notifyUrl,omitempty"`
	MerchantAccessKey string            `json:"merchantAccessKey" validate:"required"`
	Amount            Amount            `json:"amount"`
	UserDetails       UserDetails       `json:"userDetails"`
	CustomParameters  map[string]string `json:"customParameters,omitempty"`
	RequestOrigin     string            `json:"requestOrigin,omitempty"`
	PaymentToken      *PaymentToken     `json:"paymentToken"`
}

// BuildPayload assembles the gateway request for a signed transaction. It
// performs no I/O. The transaction must carry a signature matching its
// current id and amount; a missing or stale signature is rejected so that a
// mutated transaction can never reach the gateway with stale evidence.
func (m *Merchant) BuildPayload(txn *models.Transaction, user models.User, ins instrument.Instrument, flow Flow) (*Payload, error) {
	if txn.Signature == "" {
		return nil, &IncompletePayloadError{Reason: "transaction is not signed"}
	}
	want, err := Sign(m.accessKey, m.secretKey, txn.ID, txn.Amount)
	if err != nil {
		return nil, err
	}
	if txn.Signature != want {
		return nil, &IncompletePayloadError{Reason: "request signature is stale; re-sign the transaction"}
	}

	token, err := encodeInstrument(ins)
	if err != nil {
		return nil, err
	}

	p := &Payload{
		MerchantTxnID:     txn.ID,
		RequestSignature:  txn.Signature,
		ReturnURL:         txn.ReturnURL,
		NotifyURL:         txn.NotifyURL,
		MerchantAccessKey: m.accessKey,
		Amount:            Amount{Value: txn.Amount, Currency: txn.Currency},
		UserDetails: UserDetails{
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			MobileNo:  user.MobileNo,
			Address: AddressDetails{
				Street1: user.Address.Street1,
				Street2: user.Address.Street2,
				City:    user.Address.City,
				State:   user.Address.State,
				Country: user.Address.Country,
				Zip:     user.Address.Zip,
			},
		},
		PaymentToken: token,
	}

	switch flow {
	case FlowRedirect:
		if txn.ReturnURL == "" {
			return nil, &IncompletePayloadError{Reason: "returnUrl is required for the redirect flow"}
		}
	case FlowMOTO:
		p.RequestOrigin = requestOrigin
		p.CustomParameters = map[string]string{}
		for _, param := range txn.CustomParams {
			p.CustomParameters[param.Name] = param.Value
		}
	default:
		return nil, &IncompletePayloadError{Reason: fmt.Sprintf("unsupported flow %d", flow)}
	}

	if err := validate.Struct(p); err != nil {
		return nil, &IncompletePayloadError{Reason: err.Error()}
	}

	return p, nil
}

// encodeInstrument maps an instrument variant onto the gateway's payment
// token encoding. A stored token always wins over raw details.
func encodeInstrument(ins instrument.Instrument) (*PaymentToken, error) {
	if tok, ok := ins.StoredToken(); ok {
		if ins.Kind().IsCard() {
			// Tokenized cards keep their plain token id and need a CVV.
			return &PaymentToken{
				Type: "paymentOptionIdToken",
				ID:   tok.ID,
				CVV:  tok.CVV,
			}, nil
		}
		// Non-card tokens are submitted with the "1&" prefix.
		return &PaymentToken{
			Type: "paymentOptionIdToken",
			ID:   "1&" + tok.ID,
		}, nil
	}

	switch ins.Kind() {
	case instrument.KindCredit, instrument.KindDebit:
		card, ok := ins.Card()
		if !ok {
			return nil, &IncompletePayloadError{Reason: "card instrument has no card details"}
		}
		return &PaymentToken{
			Type: "paymentOptionToken",
			PaymentMode: &PaymentMode{
				Type:   ins.Kind().String(),
				Scheme: card.Scheme.GatewayCode(),
				Number: card.Number,
				Holder: card.Holder,
				Expiry: card.Expiry.CardFace(),
				CVV:    card.CVV,
			},
		}, nil
	case instrument.KindNetBanking:
		bank, ok := ins.NetBanking()
		if !ok {
			return nil, &IncompletePayloadError{Reason: "net-banking instrument has no bank details"}
		}
		return &PaymentToken{
			Type: "paymentOptionToken",
			PaymentMode: &PaymentMode{
				Type: "netbanking",
				Bank: bank.BankName,
				Code: bank.BankCode,
			},
		}, nil
	}

	return nil, &IncompletePayloadError{Reason: "instrument has no variant populated"}
}
