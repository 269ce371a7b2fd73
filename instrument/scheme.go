package instrument

import (
	"fmt"
	"strings"
)

// Scheme is a canonical card scheme recognised by the gateway.
type Scheme int

const (
	SchemeUnknown Scheme = iota
	Visa
	Mastercard
	Maestro
	Amex
	Diners
	Rupay
)

// UnknownSchemeError reports a scheme name that has no canonical mapping.
// The gateway's catalog occasionally grows new scheme spellings; failing
// loudly here beats sending an empty scheme in a money-moving request.
type UnknownSchemeError struct {
	Raw string
}

func (e *UnknownSchemeError) Error() string {
	return fmt.Sprintf("unknown card scheme %q", e.Raw)
}

// schemeAliases maps the spellings the gateway has been observed to use,
// case-insensitively, onto canonical schemes.
var schemeAliases = map[string]Scheme{
	"visa":         Visa,
	"mastercard":   Mastercard,
	"master card":  Mastercard,
	"mcrd":         Mastercard,
	"maestro":      Maestro,
	"maestro card": Maestro,
	"mtro":         Maestro,
	"amex":         Amex,
	"diners":       Diners,
	"dinersclub":   Diners,
	"diners club":  Diners,
	"rupay":        Rupay,
	"rpay":         Rupay,
}

// ParseScheme normalises a free-text scheme name into a Scheme. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseScheme(raw string) (Scheme, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if s, ok := schemeAliases[key]; ok {
		return s, nil
	}
	return SchemeUnknown, &UnknownSchemeError{Raw: raw}
}

func (s Scheme) String() string {
	switch s {
	case Visa:
		return "VISA"
	case Mastercard:
		return "MASTERCARD"
	case Maestro:
		return "MAESTRO"
	case Amex:
		return "AMEX"
	case Diners:
		return "DINERS"
	case Rupay:
		return "RUPAY"
	}
	return "UNKNOWN"
}

// GatewayCode returns the short code the gateway uses for the scheme inside
// payment payloads. These differ from the canonical names for historical
// reasons and are part of the wire contract.
func (s Scheme) GatewayCode() string {
	switch s {
	case Visa:
		return "VISA"
	case Mastercard:
		return "MCRD"
	case Maestro:
		return "MTRO"
	case Amex:
		return "AMEX"
	case Diners:
		return "DINERS"
	case Rupay:
		return "RPAY"
	}
	return ""
}
