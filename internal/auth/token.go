package auth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

// TokenProvider supplies a bearer token for outgoing requests. Refresh, if
// any, happens behind this interface.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Authorizer is a TokenProvider backed by an oauth2 token source. The source
// transparently refreshes the access token with the refresh token obtained
// at login; tokens live for the process run only and are never persisted.
type Authorizer struct {
	source oauth2.TokenSource
}

// NewAuthorizer wraps an oauth2 token source. The initial token is reused
// until it expires; ctx is used for refresh round-trips.
func NewAuthorizer(ctx context.Context, conf *oauth2.Config, initial *oauth2.Token) *Authorizer {
	return &Authorizer{
		source: oauth2.ReuseTokenSource(initial, conf.TokenSource(ctx, initial)),
	}
}

// Token implements TokenProvider.
func (a *Authorizer) Token(_ context.Context) (string, error) {
	token, err := a.source.Token()
	if err != nil {
		return "", fmt.Errorf("getting access token: %w", err)
	}

	return token.AccessToken, nil
}

// StaticTokenProvider provides a fixed token. Used by tests.
type StaticTokenProvider struct {
	AccessToken string
}

// Token implements TokenProvider.
func (p *StaticTokenProvider) Token(_ context.Context) (string, error) {
	return p.AccessToken, nil
}
