package models

import "github.com/google/uuid"

// CustomParam is a single merchant-defined name/value pair forwarded to the
// gateway with a transaction. Order is preserved as supplied.
type CustomParam struct {
	Name  string
	Value string
}

// Transaction identifies one payment attempt. Amount is the exact decimal
// string the gateway will see (e.g. "10.00"); it is signed verbatim, so the
// caller controls the formatting. Signature is stamped once by the merchant's
// signer; changing ID or Amount afterwards invalidates it and the payload
// builder will refuse the transaction until it is re-signed.
type Transaction struct {
	ID           string
	Amount       string
	Currency     string
	ReturnURL    string
	NotifyURL    string
	CustomParams []CustomParam
	Signature    string
}

// NewTransaction builds a transaction with a generated id.
func NewTransaction(amount, currency string) *Transaction {
	return &Transaction{
		ID:       uuid.New().String(),
		Amount:   amount,
		Currency: currency,
	}
}
