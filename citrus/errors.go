package citrus

import "fmt"

// InvalidInputError reports signer input that can never produce a valid
// signature, such as an empty access or secret key.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// IncompletePayloadError reports a payment payload that is missing a field
// the selected flow requires, or an instrument that cannot be encoded.
type IncompletePayloadError struct {
	Reason string
}

func (e *IncompletePayloadError) Error() string {
	return "incomplete payload: " + e.Reason
}

// GatewayError is a business-level rejection from the payment processor.
// Code is the gateway's pgRespCode; Message is its txMsg verbatim.
type GatewayError struct {
	Code    string
	Message string
}

func (e *GatewayError) Error() string {
	return e.Code + ": " + e.Message
}

// TransportError reports an HTTP-layer failure: a network error, a
// cancelled context, a non-2xx status or a response body that is not valid
// JSON. Status is zero when no HTTP status was received.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status=%d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AuthenticationError reports a failed OAuth exchange; no token was issued.
type AuthenticationError struct {
	Status int
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: status=%d", e.Status)
}
