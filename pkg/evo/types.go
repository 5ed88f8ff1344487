package evo

import (
	"time"
)

// Organization represents an Evo organization returned by the discovery
// service, together with the hubs it can be reached through.
type Organization struct {
	ID          string `json:"id"           yaml:"id"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	Hubs        []Hub  `json:"hubs"         yaml:"hubs"`
}

// Hub is a regional API endpoint grouping within an organization.
type Hub struct {
	URL         string   `json:"url"          yaml:"url"`
	Code        string   `json:"code"         yaml:"code"`
	DisplayName string   `json:"display_name" yaml:"display_name"`
	Services    []string `json:"services"     yaml:"services"`
}

// Workspace is a named project container scoped to one organization and hub.
type Workspace struct {
	ID          string    `json:"id"                   yaml:"id"`
	DisplayName string    `json:"display_name"         yaml:"display_name"`
	Description string    `json:"description"          yaml:"description"`
	OrgID       string    `json:"org_id,omitempty"     yaml:"org_id,omitempty"`
	HubURL      string    `json:"hub_url,omitempty"    yaml:"hub_url,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// FileMetadata describes a file stored in a workspace.
type FileMetadata struct {
	ID          string    `json:"id"                   yaml:"id"`
	Name        string    `json:"name"                 yaml:"name"`
	Description string    `json:"description"          yaml:"description"`
	CreatedAt   time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// ObjectMetadata describes a geoscience object stored in a workspace.
type ObjectMetadata struct {
	ID        string    `json:"id"                   yaml:"id"`
	Name      string    `json:"name"                 yaml:"name"`
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Environment identifies the scope for file and object queries: one
// workspace within one organization, reached through one hub. It is a plain
// value with no identity beyond its fields.
type Environment struct {
	HubURL      string
	OrgID       string
	WorkspaceID string
}

// Page is one fetch result from an offset/limit paginated endpoint: a subset
// of items plus the overall item count.
type Page[T any] struct {
	Total  int `json:"total"  yaml:"total"`
	Limit  int `json:"limit"  yaml:"limit"`
	Offset int `json:"offset" yaml:"offset"`
	Items  []T `json:"results" yaml:"results"`
}

// Len returns the number of items carried by this page.
func (p *Page[T]) Len() int {
	return len(p.Items)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for talking to the Evo services.
type Config struct {
	// ClientID is the OAuth client ID used for the interactive login.
	ClientID string

	// Issuer is the OIDC issuer performing the authorization-code flow.
	Issuer string

	// RedirectURL receives the authorization code on localhost.
	RedirectURL string

	// DiscoveryURL is the base URL of the organization discovery service.
	DiscoveryURL string

	// UserAgent for HTTP requests
	UserAgent string

	// Debug enables request/response logging on the transport.
	Debug bool

	// Logger for debug output
	Logger Logger

	// Retry configuration for the underlying transport.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}
