package instrument

import (
	"fmt"

	"github.com/alovak/citruspay-go/internal/expiry"
)

// Expiry is a card expiry split into its month and year parts.
type Expiry struct {
	Month int
	Year  int
}

// MalformedExpiryError reports a stored-instrument expiry that is not a
// 4-digit MMYY string.
type MalformedExpiryError struct {
	Raw string
	err error
}

func (e *MalformedExpiryError) Error() string {
	return fmt.Sprintf("malformed expiry %q: %v", e.Raw, e.err)
}

func (e *MalformedExpiryError) Unwrap() error { return e.err }

// ParseExpiry parses the MMYY expiry format used by the gateway's
// stored-instrument listing, e.g. "0129" -> {Month: 1, Year: 29}.
func ParseExpiry(s string) (Expiry, error) {
	month, year, err := expiry.ParseMMYY(s)
	if err != nil {
		return Expiry{}, &MalformedExpiryError{Raw: s, err: err}
	}
	return Expiry{Month: month, Year: year}, nil
}

// CardFace renders the expiry the way raw card payloads expect it, e.g. "1/29".
func (e Expiry) CardFace() string {
	return expiry.CardFace(e.Month, e.Year)
}
