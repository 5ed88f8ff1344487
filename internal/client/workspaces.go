package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/evotools-io/evo-client/internal/http"
	"github.com/evotools-io/evo-client/pkg/evo"
)

// WorkspacesClient lists the workspaces of one organization on one hub.
type WorkspacesClient struct {
	httpClient *http.Client
	orgID      string
}

// NewWorkspacesClient creates a workspaces client. httpClient must be scoped
// to the hub base URL.
func NewWorkspacesClient(httpClient *http.Client, orgID string) *WorkspacesClient {
	return &WorkspacesClient{
		httpClient: httpClient,
		orgID:      orgID,
	}
}

// ListWorkspaces fetches one page of workspaces. It has the evo.PageFunc
// shape, so it plugs straight into an evo.Pager.
func (c *WorkspacesClient) ListWorkspaces(ctx context.Context, limit, offset int) (*evo.Page[evo.Workspace], error) {
	path := "/workspace/orgs/" + url.PathEscape(c.orgID) + "/workspaces"

	resp, err := c.httpClient.Get(ctx, path, pageQuery(limit, offset))
	if err != nil {
		return nil, fmt.Errorf("listing workspaces: %w", err)
	}

	var page evo.Page[evo.Workspace]

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing workspaces page: %w", err)
	}

	return &page, nil
}

// pageQuery builds the offset/limit query every paged listing shares.
func pageQuery(limit, offset int) url.Values {
	return url.Values{
		"limit":  []string{strconv.Itoa(limit)},
		"offset": []string{strconv.Itoa(offset)},
	}
}
