package expiry

import (
	"fmt"
	"strconv"
)

// ParseMMYY splits a 4-digit MMYY expiry (as returned by the gateway's
// stored-instrument listing) into its month and year parts.
func ParseMMYY(s string) (month, year int, err error) {
	if err := validateMMYY(s); err != nil {
		return 0, 0, err
	}
	month, _ = strconv.Atoi(s[:2])
	year, _ = strconv.Atoi(s[2:])
	return month, year, nil
}

// FormatMMYY renders month/year back into the 4-digit wire form.
func FormatMMYY(month, year int) string {
	return fmt.Sprintf("%02d%02d", month, year)
}

// CardFace renders month/year the way the gateway expects it inside a raw
// card payload: bare integers joined by a slash, no zero padding.
func CardFace(month, year int) string {
	return strconv.Itoa(month) + "/" + strconv.Itoa(year)
}

func validateMMYY(s string) error {
	if len(s) != 4 {
		return fmt.Errorf("expiry must be MMYY (4 digits)")
	}
	for i := 0; i < 4; i++ {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("expiry must be digits: MMYY")
		}
	}
	mm := int(s[0]-'0')*10 + int(s[1]-'0')
	if mm < 1 || mm > 12 {
		return fmt.Errorf("expiry month must be 01..12")
	}
	return nil
}
