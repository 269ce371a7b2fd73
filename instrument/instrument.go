// Package instrument models the payment methods accepted by the gateway:
// raw cards, net-banking accounts and previously tokenized instruments.
package instrument

// Kind identifies which variant of an Instrument is populated.
type Kind int

const (
	KindNone Kind = iota
	KindCredit
	KindDebit
	KindNetBanking
)

func (k Kind) String() string {
	switch k {
	case KindCredit:
		return "credit"
	case KindDebit:
		return "debit"
	case KindNetBanking:
		return "netbanking"
	}
	return "none"
}

// IsCard reports whether the kind is one of the card products.
func (k Kind) IsCard() bool {
	return k == KindCredit || k == KindDebit
}

// Card holds raw card details for a direct (non-tokenized) payment.
type Card struct {
	Kind   Kind // KindCredit or KindDebit
	Scheme Scheme
	Number string
	Holder string
	Expiry Expiry
	CVV    string
}

// NetBanking holds a net-banking selection. Code is the gateway's issuer
// code for the bank, e.g. "CID002".
type NetBanking struct {
	BankName string
	BankCode string
}

// StoredToken references an instrument the gateway has tokenized earlier.
// CVV is only required when the token points at a card product.
type StoredToken struct {
	ID  string
	CVV string
}

// Instrument is a closed variant over the payment methods the gateway
// accepts. Exactly one variant is populated; an Instrument may additionally
// carry a stored token for an underlying card or bank variant, in which case
// the token takes precedence when the payment payload is built.
type Instrument struct {
	kind  Kind
	token *StoredToken
	card  *Card
	bank  *NetBanking
}

// NewCard builds a raw card instrument. The card's Kind selects between the
// credit and debit products.
func NewCard(c Card) Instrument {
	kind := c.Kind
	if !kind.IsCard() {
		kind = KindCredit
		c.Kind = kind
	}
	return Instrument{kind: kind, card: &c}
}

// NewNetBanking builds a net-banking instrument.
func NewNetBanking(b NetBanking) Instrument {
	return Instrument{kind: KindNetBanking, bank: &b}
}

// NewStoredToken builds an instrument backed only by a gateway token, with
// no underlying card or bank detail attached.
func NewStoredToken(id, cvv string) Instrument {
	return Instrument{token: &StoredToken{ID: id, CVV: cvv}}
}

// WithToken returns a copy of the instrument carrying a stored-token
// reference. Used when mapping the gateway's saved-instrument listing, where
// every entry arrives with a token alongside its card or bank detail.
func (i Instrument) WithToken(id string) Instrument {
	i.token = &StoredToken{ID: id}
	return i
}

// WithTokenCVV returns a copy with the CVV attached to the stored token.
// Callers collect the CVV at payment time for tokenized card instruments.
func (i Instrument) WithTokenCVV(cvv string) Instrument {
	if i.token == nil {
		return i
	}
	tok := *i.token
	tok.CVV = cvv
	i.token = &tok
	return i
}

// Kind returns the populated variant's kind, or KindNone when the gateway
// reported a type this library does not recognise.
func (i Instrument) Kind() Kind { return i.kind }

// Valid reports whether the instrument can be turned into a payment payload:
// it must either carry a stored token or have a recognised variant.
func (i Instrument) Valid() bool {
	return i.token != nil || i.kind != KindNone
}

// StoredToken returns the attached token reference, if any.
func (i Instrument) StoredToken() (StoredToken, bool) {
	if i.token == nil {
		return StoredToken{}, false
	}
	return *i.token, true
}

// Card returns the card detail for card-kind instruments.
func (i Instrument) Card() (Card, bool) {
	if i.card == nil {
		return Card{}, false
	}
	return *i.card, true
}

// NetBanking returns the bank detail for net-banking instruments.
func (i Instrument) NetBanking() (NetBanking, bool) {
	if i.bank == nil {
		return NetBanking{}, false
	}
	return *i.bank, true
}
