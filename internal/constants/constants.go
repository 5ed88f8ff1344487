package constants

import "time"

// Fixed Evo service endpoints.
const (
	// IssuerURL is the OIDC issuer performing the interactive login.
	IssuerURL = "https://ims.bentley.com"

	// RedirectURL receives the authorization code. The port and path are
	// registered with the issuer and cannot vary per run.
	RedirectURL = "http://localhost:3000/signin-oidc"

	// DiscoveryURL is the base URL of the organization discovery service.
	DiscoveryURL = "https://discover.api.seequent.com"

	// UserAgent identifies this client to the Evo services.
	UserAgent = "EvoGoClient"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// LoginTimeout bounds the wait for the browser round-trip.
	LoginTimeout = 5 * time.Minute
)

// Retry limits for the transport.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination and display limits.
const (
	// StandardPageSize is the common page size for list requests.
	StandardPageSize = 50
)

// Rendering.
const (
	// OrgRuleWidth is the width of the rule under each organization header.
	OrgRuleWidth = 50
)

// Scopes are the OAuth scopes requested at login.
//
//nolint:gochecknoglobals // fixed scope set, shared by login and tests
var Scopes = []string{
	"evo.discovery",
	"email",
	"openid",
	"evo.object",
	"evo.file",
	"evo.workspace",
	"offline_access",
}
