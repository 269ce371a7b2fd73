package citrus_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alovak/citruspay-go/citrus"
	"github.com/alovak/citruspay-go/citrus/models"
	"github.com/alovak/citruspay-go/instrument"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// newGateway spins up a stub gateway covering the endpoints the client
// talks to.
func newGateway(t *testing.T) *httptest.Server {
	t.Helper()

	router := chi.NewRouter()

	router.Post("/service/v1/merchant/pgsetting", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "shop", r.Form.Get("vanity"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"netBanking": [{"bankName": "AXIS Bank", "issuerCode": "CID002"}],
			"creditCard": ["Visa", "Master Card"],
			"debitCard":  ["maestro"]
		}`))
	})

	router.Post("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.Form.Get("password") != "pass" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		require.Equal(t, "password", r.Form.Get("grant_type"))
		require.Equal(t, "signin-id", r.Form.Get("client_id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"access_token": "tok-123",
			"token_type": "Bearer",
			"refresh_token": "ref-123",
			"expires_in": 3600,
			"scope": "read write"
		}`))
	})

	router.Get("/service/v2/profile/me/payment", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"paymentOptions": [
				{"name": "my visa", "token": "card-tok", "type": "credit", "scheme": "visa", "number": "4111XXXX1111", "expiryDate": "0129"},
				{"name": "my bank", "token": "bank-tok", "type": "netbanking", "bank": "AXIS Bank"},
				{"name": "mystery", "token": "misc-tok", "type": "wallet"}
			]
		}`))
	})

	router.Post("/service/moto/authorize/struct/{vanity}", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "shop", chi.URLParam(r, "vanity"))

		var p citrus.Payload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))

		w.Header().Set("Content-Type", "application/json")
		if p.PaymentToken == nil || p.RequestSignature == "" {
			w.Write([]byte(`{"pgRespCode":"9","txMsg":"bad request"}`))
			return
		}
		w.Write([]byte(`{"pgRespCode":"0","redirectUrl":"https://gateway.example/pay/123"}`))
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

func newTestClient(t *testing.T, base string) *citrus.Client {
	t.Helper()

	m, err := citrus.NewMerchant(citrus.MerchantConfig{
		AccessKey:    "AK1",
		SecretKey:    "SK1",
		VanityURL:    "shop",
		SigninID:     "signin-id",
		SigninSecret: "signin-secret",
	})
	require.NoError(t, err)

	return citrus.NewClient(m, citrus.WithBaseURL(base))
}

func TestClient_EligibleInstruments(t *testing.T) {
	srv := newGateway(t)
	c := newTestClient(t, srv.URL)

	methods, err := c.EligibleInstruments(context.Background())
	require.NoError(t, err)

	require.Equal(t, []citrus.Bank{{Name: "AXIS Bank", Code: "CID002"}}, methods.Banks)
	require.Equal(t, []instrument.Scheme{instrument.Visa, instrument.Mastercard}, methods.CreditCards)
	require.Equal(t, []instrument.Scheme{instrument.Maestro}, methods.DebitCards)
}

func TestClient_EligibleInstruments_UnknownScheme(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/service/v1/merchant/pgsetting", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"netBanking": [], "creditCard": ["solo"], "debitCard": []}`))
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv.URL)
	_, err := c.EligibleInstruments(context.Background())

	var schemeErr *instrument.UnknownSchemeError
	require.True(t, errors.As(err, &schemeErr))
}

func TestClient_AccessToken(t *testing.T) {
	srv := newGateway(t)
	c := newTestClient(t, srv.URL)

	token, err := c.AccessToken(context.Background(), "john", "pass")
	require.NoError(t, err)
	require.Equal(t, "tok-123", token.AccessToken)
	require.Equal(t, "Bearer", token.TokenType)
	require.Equal(t, []string{"read", "write"}, token.Scopes)
	require.True(t, token.Valid(time.Now()))
	require.False(t, token.Valid(time.Now().Add(2*time.Hour)))
}

func TestClient_AccessToken_BadCredentials(t *testing.T) {
	srv := newGateway(t)
	c := newTestClient(t, srv.URL)

	_, err := c.AccessToken(context.Background(), "john", "wrong")

	var authErr *citrus.AuthenticationError
	require.True(t, errors.As(err, &authErr))
	require.Equal(t, http.StatusUnauthorized, authErr.Status)
}

func TestClient_UserInstruments(t *testing.T) {
	srv := newGateway(t)
	c := newTestClient(t, srv.URL)

	token, err := c.AccessToken(context.Background(), "john", "pass")
	require.NoError(t, err)

	instruments, err := c.UserInstruments(context.Background(), token)
	require.NoError(t, err)
	require.Len(t, instruments, 3)

	card := instruments[0]
	require.Equal(t, instrument.KindCredit, card.Kind())
	detail, ok := card.Card()
	require.True(t, ok)
	require.Equal(t, instrument.Visa, detail.Scheme)
	require.Equal(t, instrument.Expiry{Month: 1, Year: 29}, detail.Expiry)
	tok, ok := card.StoredToken()
	require.True(t, ok)
	require.Equal(t, "card-tok", tok.ID)

	bank := instruments[1]
	require.Equal(t, instrument.KindNetBanking, bank.Kind())
	bankDetail, ok := bank.NetBanking()
	require.True(t, ok)
	require.Equal(t, "AXIS Bank", bankDetail.BankName)

	// the wallet entry has no recognised variant but keeps its token
	misc := instruments[2]
	require.Equal(t, instrument.KindNone, misc.Kind())
	require.True(t, misc.Valid())
	tok, _ = misc.StoredToken()
	require.Equal(t, "misc-tok", tok.ID)
}

func TestClient_PaymentURL(t *testing.T) {
	srv := newGateway(t)
	c := newTestClient(t, srv.URL)

	m, err := citrus.NewMerchant(citrus.MerchantConfig{AccessKey: "AK1", SecretKey: "SK1", VanityURL: "shop"})
	require.NoError(t, err)

	txn := models.NewTransaction("10.00", "INR")
	txn.ReturnURL = "https://merchant.example/return"
	_, err = m.SignTransaction(txn)
	require.NoError(t, err)

	ins := instrument.NewNetBanking(instrument.NetBanking{BankName: "AXIS Bank", BankCode: "CID002"})
	url, err := c.PaymentURL(context.Background(), models.User{Email: "john.doe@gmail.com"}, ins, txn)
	require.NoError(t, err)
	require.Equal(t, "https://gateway.example/pay/123", url)
}

func TestClient_Pay_GatewayRejection(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/service/moto/authorize/struct/{vanity}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pgRespCode":"5","txMsg":"declined"}`))
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv.URL)

	m, err := citrus.NewMerchant(citrus.MerchantConfig{AccessKey: "AK1", SecretKey: "SK1", VanityURL: "shop"})
	require.NoError(t, err)
	txn := models.NewTransaction("10.00", "INR")
	_, err = m.SignTransaction(txn)
	require.NoError(t, err)

	ins := instrument.NewStoredToken("abc", "")
	_, err = c.PaymentURL(context.Background(), models.User{}, ins, txn)

	var gwErr *citrus.GatewayError
	require.True(t, errors.As(err, &gwErr))
	require.Equal(t, "5", gwErr.Code)
	require.Equal(t, "declined", gwErr.Message)
}

func TestClient_CancelledContext(t *testing.T) {
	srv := newGateway(t)
	c := newTestClient(t, srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.EligibleInstruments(ctx)

	var trErr *citrus.TransportError
	require.True(t, errors.As(err, &trErr))
	require.True(t, errors.Is(err, context.Canceled))
}
