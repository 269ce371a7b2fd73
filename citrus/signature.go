package citrus

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"

	"github.com/alovak/citruspay-go/citrus/models"
)

// Sign computes the request signature binding a transaction to a merchant.
// The signed string is exactly
//
//	merchantAccessKey=<accessKey>&transactionId=<txnID>&amount=<amount>
//
// in that order; the gateway rebuilds the same string to verify, so the
// order must never change. The digest is HMAC-SHA1 keyed by the secret key,
// hex encoded in lowercase. The function is deterministic: no nonce, no
// timestamp.
func Sign(accessKey, secretKey, txnID, amount string) (string, error) {
	if accessKey == "" {
		return "", &InvalidInputError{Reason: "access key is empty"}
	}
	if secretKey == "" {
		return "", &InvalidInputError{Reason: "secret key is empty"}
	}

	data := "merchantAccessKey=" + accessKey +
		"&transactionId=" + txnID +
		"&amount=" + amount

	mac := hmac.New(sha1.New, []byte(secretKey))
	mac.Write([]byte(data))

	return hex.EncodeToString(mac.Sum(nil)), nil
}

// SignTransaction stamps the transaction with its request signature and
// returns it. The signature is write-once: signing an already-signed
// transaction is an error. To re-sign after changing the id or amount,
// clear txn.Signature first.
func (m *Merchant) SignTransaction(txn *models.Transaction) (string, error) {
	if txn.Signature != "" {
		return "", &InvalidInputError{Reason: "transaction is already signed"}
	}

	sig, err := Sign(m.accessKey, m.secretKey, txn.ID, txn.Amount)
	if err != nil {
		return "", err
	}
	txn.Signature = sig

	return sig, nil
}
