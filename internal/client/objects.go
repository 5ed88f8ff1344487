package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/evotools-io/evo-client/internal/http"
	"github.com/evotools-io/evo-client/pkg/evo"
)

// ObjectsClient lists the geoscience objects of one workspace, identified
// by an Environment scope triple.
type ObjectsClient struct {
	httpClient *http.Client
	env        evo.Environment
}

// NewObjectsClient creates an objects client. httpClient must be scoped to
// the environment's hub URL.
func NewObjectsClient(httpClient *http.Client, env evo.Environment) *ObjectsClient {
	return &ObjectsClient{
		httpClient: httpClient,
		env:        env,
	}
}

// ListObjects fetches one page of object metadata. It has the evo.PageFunc
// shape, so it plugs straight into an evo.Pager.
func (c *ObjectsClient) ListObjects(ctx context.Context, limit, offset int) (*evo.Page[evo.ObjectMetadata], error) {
	path := "/geoscience-object/orgs/" + url.PathEscape(c.env.OrgID) +
		"/workspaces/" + url.PathEscape(c.env.WorkspaceID) + "/objects"

	resp, err := c.httpClient.Get(ctx, path, pageQuery(limit, offset))
	if err != nil {
		return nil, fmt.Errorf("listing objects: %w", err)
	}

	var page evo.Page[evo.ObjectMetadata]

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing objects page: %w", err)
	}

	return &page, nil
}
