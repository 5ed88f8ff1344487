// Package client contains the thin REST clients for the Evo services: the
// discovery service plus the hub-scoped workspace, file, and object services.
// Wire formats are decoded here and nowhere else; callers see only the types
// in pkg/evo.
package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/evotools-io/evo-client/internal/http"
	"github.com/evotools-io/evo-client/pkg/evo"
)

const discoveryPath = "/evo/identity/v2/discovery"

// DiscoveryClient lists the organizations visible to the signed-in user,
// together with the hubs each organization can be reached through.
type DiscoveryClient struct {
	httpClient *http.Client
}

// NewDiscoveryClient creates a discovery client over httpClient, which must
// be scoped to the discovery service base URL.
func NewDiscoveryClient(httpClient *http.Client) *DiscoveryClient {
	return &DiscoveryClient{
		httpClient: httpClient,
	}
}

// ListOrganizations returns every organization in one call; the discovery
// endpoint does not paginate.
func (c *DiscoveryClient) ListOrganizations(ctx context.Context) ([]evo.Organization, error) {
	resp, err := c.httpClient.Get(ctx, discoveryPath, nil)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}

	var document struct {
		Organizations []evo.Organization `json:"organizations"`
	}

	err = json.Unmarshal(resp.Body, &document)
	if err != nil {
		return nil, fmt.Errorf("parsing discovery response: %w", err)
	}

	return document.Organizations, nil
}
