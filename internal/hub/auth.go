package hub

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/smarthub-adapter/internal/constants"
	"golang.org/x/oauth2"
)

var ErrAuthenticationFailed = errors.New("authentication failed")

type Authenticator struct {
	client       *Client
	clientID     string
	clientSecret string
	logger       *log.Logger
}

func NewAuthenticator(logger *log.Logger, client *Client, clientID string, clientSecret string) *Authenticator {
	return &Authenticator{client: client, clientID: clientID, clientSecret: clientSecret, logger: logger}
}

// Login exchanges the user's credentials for a bearer token.
// Every failure wraps ErrAuthenticationFailed.
func (a *Authenticator) Login(ctx context.Context, username string, password string) (*oauth2.Token, error) {

	headers := http.Header{}
	headers.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(a.clientID+":"+a.clientSecret)))

	payload := LoginRequest{
		Username:  username,
		Password:  password,
		GrantType: constants.GrantTypePassword,
	}

	resp := TokenResponse{}
	status, err := a.client.Post(ctx, constants.PathAuthToken, headers, payload, &resp)
	if err != nil {
		a.logger.Error("Login to hub failed", "status", status, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	if status != http.StatusOK {
		a.logger.Error("Login to hub failed", "status", status)
		return nil, fmt.Errorf("%w: unexpected status %d", ErrAuthenticationFailed, status)
	}

	if resp.AccessToken == "" {
		a.logger.Error("Login to hub returned no access token")
		return nil, fmt.Errorf("%w: no access_token in response", ErrAuthenticationFailed)
	}

	a.logger.Info("Logged in to hub", "url", a.client.BaseURL(), "user", username)

	return &oauth2.Token{AccessToken: resp.AccessToken, TokenType: "Bearer"}, nil
}
