package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/evotools-io/evo-client/internal/http"
	"github.com/evotools-io/evo-client/pkg/evo"
)

// FilesClient lists the files of one workspace, identified by an
// Environment scope triple.
type FilesClient struct {
	httpClient *http.Client
	env        evo.Environment
}

// NewFilesClient creates a files client. httpClient must be scoped to the
// environment's hub URL.
func NewFilesClient(httpClient *http.Client, env evo.Environment) *FilesClient {
	return &FilesClient{
		httpClient: httpClient,
		env:        env,
	}
}

// ListFiles fetches one page of file metadata. It has the evo.PageFunc
// shape, so it plugs straight into an evo.Pager.
func (c *FilesClient) ListFiles(ctx context.Context, limit, offset int) (*evo.Page[evo.FileMetadata], error) {
	path := "/file/v2/orgs/" + url.PathEscape(c.env.OrgID) +
		"/workspaces/" + url.PathEscape(c.env.WorkspaceID) + "/files"

	resp, err := c.httpClient.Get(ctx, path, pageQuery(limit, offset))
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}

	var page evo.Page[evo.FileMetadata]

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, fmt.Errorf("parsing files page: %w", err)
	}

	return &page, nil
}
