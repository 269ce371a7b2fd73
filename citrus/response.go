package citrus

import (
	"encoding/json"
	"fmt"
)

// successCode is the only pgRespCode the gateway uses for an approved
// request. Anything else, including a missing code, is a rejection.
const successCode = "0"

type gatewayResponse struct {
	PgRespCode  string `json:"pgRespCode"`
	RedirectURL string `json:"redirectUrl"`
	TxMsg       string `json:"txMsg"`
}

// Interpret maps a raw gateway response onto this library's result model:
// the hosted payment page URL on success, a *GatewayError on a business
// rejection, or a *TransportError when the response is not something the
// gateway protocol can produce (non-2xx status, malformed JSON).
func Interpret(status int, body []byte) (string, error) {
	if status/100 != 2 {
		return "", &TransportError{
			Op:     "authorize",
			Status: status,
			Err:    fmt.Errorf("unexpected status"),
		}
	}

	var resp gatewayResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &TransportError{
			Op:     "authorize",
			Status: status,
			Err:    fmt.Errorf("decode response: %w", err),
		}
	}

	if resp.PgRespCode != successCode {
		return "", &GatewayError{Code: resp.PgRespCode, Message: resp.TxMsg}
	}

	return resp.RedirectURL, nil
}
