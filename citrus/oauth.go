package citrus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alovak/citruspay-go/citrus/models"
)

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope"`
}

// AccessToken exchanges a payer's credentials for an OAuth access token
// using the password grant and the merchant's signin client credentials.
// A non-200 response means no token was issued and surfaces as
// *AuthenticationError. The token is not cached or refreshed here.
func (c *Client) AccessToken(ctx context.Context, username, password string) (*models.AccessToken, error) {
	status, body, err := c.postForm(ctx, "oauth", "/oauth/token", url.Values{
		"client_id":     {c.merchant.signinID},
		"client_secret": {c.merchant.signinSecret},
		"grant_type":    {"password"},
		"username":      {username},
		"password":      {password},
	})
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &AuthenticationError{Status: status}
	}

	var resp tokenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &TransportError{Op: "oauth", Status: status, Err: fmt.Errorf("decode response: %w", err)}
	}

	return &models.AccessToken{
		AccessToken:  resp.AccessToken,
		TokenType:    resp.TokenType,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
		Scopes:       strings.Fields(resp.Scope),
		ReceivedAt:   time.Now(),
	}, nil
}
