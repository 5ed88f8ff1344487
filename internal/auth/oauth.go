package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/evotools-io/evo-client/internal/constants"
	"github.com/evotools-io/evo-client/pkg/evo"
	"golang.org/x/oauth2"
)

const maxMetadataBytes = 1 << 20

// ProviderMetadata is the subset of the OIDC discovery document the login
// flow needs.
type ProviderMetadata struct {
	Issuer                string `json:"issuer"`
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
}

// DiscoverProvider fetches the issuer's OIDC discovery document.
func DiscoverProvider(ctx context.Context, httpClient *http.Client, issuer string) (*ProviderMetadata, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	wellKnown := issuer + "/.well-known/openid-configuration"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wellKnown, nil)
	if err != nil {
		return nil, fmt.Errorf("creating discovery request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constants.UserAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching issuer metadata: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("issuer metadata request returned status %d", resp.StatusCode)
	}

	var metadata ProviderMetadata

	err = json.NewDecoder(io.LimitReader(resp.Body, maxMetadataBytes)).Decode(&metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing issuer metadata: %w", err)
	}

	if metadata.AuthorizationEndpoint == "" {
		return nil, constants.ErrNoAuthEndpoint
	}

	if metadata.TokenEndpoint == "" {
		return nil, constants.ErrNoTokenEndpoint
	}

	return &metadata, nil
}

// NewState returns a random state value for the authorization request.
func NewState() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generating state: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// LoginOptions tune the interactive login. The zero value is production
// behavior.
type LoginOptions struct {
	// HTTPClient is used for discovery and the token exchange.
	HTTPClient *http.Client

	// OpenURL launches the authorization URL in a browser. nil uses the OS
	// launcher; tests substitute their own.
	OpenURL func(url string) error

	// Out receives user-facing login messages. nil means os.Stdout.
	Out io.Writer
}

// Login runs the OAuth authorization-code flow with PKCE against the
// configured issuer: it starts the localhost callback server, sends the user
// to the authorization endpoint, waits for the redirect, and exchanges the
// code for tokens. The returned Authorizer refreshes transparently for the
// rest of the run.
func Login(ctx context.Context, cfg *evo.Config, opts LoginOptions) (*Authorizer, error) {
	if cfg.ClientID == "" {
		return nil, evo.ErrClientIDRequired
	}

	issuer := cfg.Issuer
	if issuer == "" {
		issuer = constants.IssuerURL
	}

	redirectURL := cfg.RedirectURL
	if redirectURL == "" {
		redirectURL = constants.RedirectURL
	}

	metadata, err := DiscoverProvider(ctx, opts.HTTPClient, issuer)
	if err != nil {
		return nil, fmt.Errorf("discovering issuer: %w", err)
	}

	conf := &oauth2.Config{
		ClientID:    cfg.ClientID,
		RedirectURL: redirectURL,
		Scopes:      constants.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  metadata.AuthorizationEndpoint,
			TokenURL: metadata.TokenEndpoint,
		},
	}

	state, err := NewState()
	if err != nil {
		return nil, err
	}

	verifier := oauth2.GenerateVerifier()

	callback, err := StartCallbackServer(redirectURL, state)
	if err != nil {
		return nil, fmt.Errorf("starting callback server: %w", err)
	}

	authURL := conf.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))

	promptLogin(opts, authURL)

	code, err := callback.WaitForCode(ctx, constants.LoginTimeout)
	if err != nil {
		return nil, fmt.Errorf("waiting for login: %w", err)
	}

	if opts.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, opts.HTTPClient)
	}

	token, err := conf.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	return NewAuthorizer(ctx, conf, token), nil
}
