package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/evotools-io/evo-client/internal/constants"
	"github.com/evotools-io/evo-client/pkg/evo"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	jsonIndent = 2
)

func renderJSON(out io.Writer, data interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", strings.Repeat(" ", jsonIndent))

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

func renderYAML(out io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(out)

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	return encoder.Close()
}

func outputOrganizations(out io.Writer, orgs []evo.Organization) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return renderJSON(out, orgs)
	case OutputFormatYAML:
		return renderYAML(out, orgs)
	default:
		return renderOrganizationBlocks(out, orgs)
	}
}

// renderOrganizationBlocks writes one block per organization: a header
// line, a rule, the hub table, then a blank line.
func renderOrganizationBlocks(out io.Writer, orgs []evo.Organization) error {
	if len(orgs) == 0 {
		_, err := fmt.Fprintln(out, "No organizations found")

		return err
	}

	for _, org := range orgs {
		fmt.Fprintf(out, "%s: %s\n", org.DisplayName, org.ID)
		fmt.Fprintln(out, strings.Repeat("=", constants.OrgRuleWidth))

		table := tablewriter.NewWriter(out)
		table.Header("Url", "Code", "Name", "Services")

		for _, hub := range org.Hubs {
			_ = table.Append(hub.URL, hub.Code, hub.DisplayName, strings.Join(hub.Services, ", "))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		fmt.Fprintln(out)
	}

	return nil
}

func outputWorkspaces(out io.Writer, workspaces []evo.Workspace) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return renderJSON(out, workspaces)
	case OutputFormatYAML:
		return renderYAML(out, workspaces)
	default:
		return renderWorkspaceTable(out, workspaces)
	}
}

func renderWorkspaceTable(out io.Writer, workspaces []evo.Workspace) error {
	if len(workspaces) == 0 {
		_, err := fmt.Fprintln(out, "No workspaces found")

		return err
	}

	table := tablewriter.NewWriter(out)
	table.Header("Id", "Name", "Description")

	for _, workspace := range workspaces {
		_ = table.Append(workspace.ID, workspace.DisplayName, workspace.Description)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func outputFiles(out io.Writer, files []evo.FileMetadata) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return renderJSON(out, files)
	case OutputFormatYAML:
		return renderYAML(out, files)
	default:
		return renderFileTable(out, files)
	}
}

func renderFileTable(out io.Writer, files []evo.FileMetadata) error {
	if len(files) == 0 {
		_, err := fmt.Fprintln(out, "No files found")

		return err
	}

	table := tablewriter.NewWriter(out)
	table.Header("Id", "Name", "Description")

	for _, file := range files {
		_ = table.Append(file.ID, file.Name, file.Description)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func outputObjects(out io.Writer, objects []evo.ObjectMetadata) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return renderJSON(out, objects)
	case OutputFormatYAML:
		return renderYAML(out, objects)
	default:
		return renderObjectTable(out, objects)
	}
}

func renderObjectTable(out io.Writer, objects []evo.ObjectMetadata) error {
	if len(objects) == 0 {
		_, err := fmt.Fprintln(out, "No objects found")

		return err
	}

	table := tablewriter.NewWriter(out)
	table.Header("Id", "Name")

	for _, object := range objects {
		_ = table.Append(object.ID, object.Name)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
