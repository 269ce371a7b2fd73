package citrus_test

import (
	"errors"
	"testing"

	"github.com/alovak/citruspay-go/citrus"
	"github.com/alovak/citruspay-go/citrus/models"
	"github.com/stretchr/testify/require"
)

func TestSign_KnownVector(t *testing.T) {
	// Regression vector for the canonical string format:
	// merchantAccessKey=AK1&transactionId=T1&amount=10.00 keyed by SK1.
	sig, err := citrus.Sign("AK1", "SK1", "T1", "10.00")
	require.NoError(t, err)
	require.Equal(t, "44af128c631da4222aa976874e95af4cc0e93fa8", sig)
	require.Len(t, sig, 40)
}

func TestSign_Deterministic(t *testing.T) {
	first, err := citrus.Sign("access", "secret", "TXN-42", "250.00")
	require.NoError(t, err)
	second, err := citrus.Sign("access", "secret", "TXN-42", "250.00")
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, "a9e346af6fe8c7325803a1aca38b2c9b3264b317", first)
}

func TestSign_DifferentAmountDifferentSignature(t *testing.T) {
	a, err := citrus.Sign("AK1", "SK1", "T1", "10.00")
	require.NoError(t, err)
	b, err := citrus.Sign("AK1", "SK1", "T1", "11.00")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestSign_EmptyKeys(t *testing.T) {
	_, err := citrus.Sign("", "SK1", "T1", "10.00")
	var invalid *citrus.InvalidInputError
	require.True(t, errors.As(err, &invalid))

	_, err = citrus.Sign("AK1", "", "T1", "10.00")
	require.True(t, errors.As(err, &invalid))
}

func TestSignTransaction(t *testing.T) {
	m, err := citrus.NewMerchant(citrus.MerchantConfig{
		AccessKey: "AK1",
		SecretKey: "SK1",
		VanityURL: "shop",
	})
	require.NoError(t, err)

	txn := &models.Transaction{ID: "T1", Amount: "10.00", Currency: "INR"}
	sig, err := m.SignTransaction(txn)
	require.NoError(t, err)
	require.Equal(t, "44af128c631da4222aa976874e95af4cc0e93fa8", sig)
	require.Equal(t, sig, txn.Signature)

	// write-once: a second signing attempt fails
	_, err = m.SignTransaction(txn)
	var invalid *citrus.InvalidInputError
	require.True(t, errors.As(err, &invalid))

	// after clearing, re-signing a mutated transaction yields a new value
	txn.Amount = "11.00"
	txn.Signature = ""
	resigned, err := m.SignTransaction(txn)
	require.NoError(t, err)
	require.NotEqual(t, sig, resigned)
}

func TestNewMerchant_RequiresKeys(t *testing.T) {
	_, err := citrus.NewMerchant(citrus.MerchantConfig{SecretKey: "SK1"})
	var invalid *citrus.InvalidInputError
	require.True(t, errors.As(err, &invalid))

	_, err = citrus.NewMerchant(citrus.MerchantConfig{AccessKey: "AK1"})
	require.True(t, errors.As(err, &invalid))
}
