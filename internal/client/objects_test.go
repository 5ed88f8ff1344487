package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evotools-io/evo-client/internal/client"
	"github.com/evotools-io/evo-client/pkg/evo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectsClient_ListObjects(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/geoscience-object/orgs/org-1/workspaces/ws-1/objects", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(evo.Page[evo.ObjectMetadata]{
			Total: 2,
			Items: []evo.ObjectMetadata{
				{ID: "obj-1", Name: "block-model"},
				{ID: "obj-2", Name: "topography"},
			},
		})
	}))
	defer server.Close()

	env := evo.Environment{HubURL: server.URL, OrgID: "org-1", WorkspaceID: "ws-1"}
	objects := client.NewObjectsClient(newTestClient(server.URL), env)

	page, err := objects.ListObjects(context.Background(), 50, 0)
	require.NoError(t, err)
	require.Equal(t, 2, page.Len())
	assert.Equal(t, "block-model", page.Items[0].Name)
	assert.Equal(t, "topography", page.Items[1].Name)
}

func TestObjectsClient_EmptyWorkspace(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_ = json.NewEncoder(writer).Encode(evo.Page[evo.ObjectMetadata]{Total: 0})
	}))
	defer server.Close()

	env := evo.Environment{HubURL: server.URL, OrgID: "org-1", WorkspaceID: "ws-1"}
	objects := client.NewObjectsClient(newTestClient(server.URL), env)

	all, err := evo.FetchAll(context.Background(), objects.ListObjects, 50)
	require.NoError(t, err)
	assert.Empty(t, all)
}
