package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/evotools-io/evo-client/pkg/evo"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrganizations() []evo.Organization {
	return []evo.Organization{
		{
			ID:          "org-1",
			DisplayName: "Acme Mining",
			Hubs: []evo.Hub{
				{
					URL:         "https://hub-a.example.com",
					Code:        "hub-a",
					DisplayName: "Hub A",
					Services:    []string{"file", "geoscience-object"},
				},
			},
		},
		{
			ID:          "org-2",
			DisplayName: "Globex",
			Hubs: []evo.Hub{
				{
					URL:         "https://hub-b.example.com",
					Code:        "hub-b",
					DisplayName: "Hub B",
					Services:    []string{"workspace"},
				},
			},
		},
	}
}

func TestRenderOrganizationBlocks(t *testing.T) {
	var buf bytes.Buffer

	err := renderOrganizationBlocks(&buf, testOrganizations())
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Acme Mining: org-1")
	assert.Contains(t, output, "Globex: org-2")
	assert.Contains(t, output, strings.Repeat("=", 50))
	assert.Contains(t, output, "https://hub-a.example.com")
	assert.Contains(t, output, "hub-b")
	assert.Contains(t, output, "Hub A")
	assert.Contains(t, output, "file, geoscience-object")

	// One block per organization, in listing order.
	assert.Less(t, strings.Index(output, "Acme Mining"), strings.Index(output, "Globex"))
	assert.Equal(t, 2, strings.Count(output, strings.Repeat("=", 50)))
}

func TestRenderOrganizationBlocks_Empty(t *testing.T) {
	var buf bytes.Buffer

	err := renderOrganizationBlocks(&buf, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No organizations found")
}

func TestRenderWorkspaceTable(t *testing.T) {
	var buf bytes.Buffer

	workspaces := []evo.Workspace{
		{ID: "ws-1", DisplayName: "North Pit", Description: "drill campaign"},
		{ID: "ws-2", DisplayName: "South Pit", Description: ""},
	}

	err := renderWorkspaceTable(&buf, workspaces)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "ws-1")
	assert.Contains(t, output, "North Pit")
	assert.Contains(t, output, "drill campaign")
	assert.Contains(t, output, "ws-2")
}

func TestRenderWorkspaceTable_Empty(t *testing.T) {
	var buf bytes.Buffer

	err := renderWorkspaceTable(&buf, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No workspaces found")
}

func TestRenderFileTable(t *testing.T) {
	var buf bytes.Buffer

	files := []evo.FileMetadata{
		{ID: "file-1", Name: "assays.csv", Description: "lab results"},
	}

	err := renderFileTable(&buf, files)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "file-1")
	assert.Contains(t, output, "assays.csv")
	assert.Contains(t, output, "lab results")
}

func TestRenderObjectTable(t *testing.T) {
	var buf bytes.Buffer

	objects := []evo.ObjectMetadata{
		{ID: "obj-1", Name: "block-model"},
		{ID: "obj-2", Name: "topography"},
	}

	err := renderObjectTable(&buf, objects)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "obj-1")
	assert.Contains(t, output, "block-model")
	assert.Contains(t, output, "topography")
}

func TestRenderObjectTable_Empty(t *testing.T) {
	var buf bytes.Buffer

	err := renderObjectTable(&buf, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No objects found")
}

func TestOutputOrganizations_JSON(t *testing.T) {
	viper.Reset()
	viper.Set("output", OutputFormatJSON)

	defer viper.Reset()

	var buf bytes.Buffer

	err := outputOrganizations(&buf, testOrganizations())
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, `"id": "org-1"`)
	assert.Contains(t, output, `"display_name": "Acme Mining"`)
	assert.NotContains(t, output, "=====")
}

func TestOutputWorkspaces_YAML(t *testing.T) {
	viper.Reset()
	viper.Set("output", OutputFormatYAML)

	defer viper.Reset()

	var buf bytes.Buffer

	workspaces := []evo.Workspace{{ID: "ws-1", DisplayName: "North Pit"}}

	err := outputWorkspaces(&buf, workspaces)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "id: ws-1")
	assert.Contains(t, output, "display_name: North Pit")
}
