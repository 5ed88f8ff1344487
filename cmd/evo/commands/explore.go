package commands

import (
	"fmt"

	"github.com/evotools-io/evo-client/internal/auth"
	"github.com/evotools-io/evo-client/internal/client"
	"github.com/evotools-io/evo-client/internal/constants"
	evohttp "github.com/evotools-io/evo-client/internal/http"
	"github.com/evotools-io/evo-client/pkg/evo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// loginSession performs the interactive login and returns the authorizer
// threaded through the rest of the run.
func loginSession(cmd *cobra.Command, opts *exploreOptions) (*auth.Authorizer, error) {
	cfg := &evo.Config{
		ClientID:  opts.ClientID,
		UserAgent: constants.UserAgent,
		Debug:     viper.GetBool("debug"),
		Logger:    newFieldLogger(),
	}

	authorizer, err := auth.Login(cmd.Context(), cfg, auth.LoginOptions{
		Out: cmd.OutOrStdout(),
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return authorizer, nil
}

// newServiceClient builds the HTTP connector for one service base URL. The
// caller owns it for the duration of the listing operation and releases it
// on the way out.
func newServiceClient(baseURL string, authorizer auth.TokenProvider) *evohttp.Client {
	return evohttp.NewClient(baseURL, authorizer,
		evohttp.WithUserAgent(constants.UserAgent),
		evohttp.WithLogger(newFieldLogger()),
		evohttp.WithDebug(viper.GetBool("debug")),
	)
}

func runInstances(cmd *cobra.Command, opts *exploreOptions) error {
	ctx := cmd.Context()

	authorizer, err := loginSession(cmd, opts)
	if err != nil {
		return err
	}

	httpClient := newServiceClient(constants.DiscoveryURL, authorizer)
	defer httpClient.CloseIdleConnections()

	orgs, err := client.NewDiscoveryClient(httpClient).ListOrganizations(ctx)
	if err != nil {
		return fmt.Errorf("failed to list organizations: %w", err)
	}

	log.Info().Int("organizations", len(orgs)).Msg("listing complete")

	return outputOrganizations(cmd.OutOrStdout(), orgs)
}

func runWorkspaces(cmd *cobra.Command, opts *exploreOptions) error {
	ctx := cmd.Context()

	authorizer, err := loginSession(cmd, opts)
	if err != nil {
		return err
	}

	httpClient := newServiceClient(opts.InstanceURL, authorizer)
	defer httpClient.CloseIdleConnections()

	workspaces := client.NewWorkspacesClient(httpClient, opts.OrgID)

	all, err := evo.FetchAll(ctx, workspaces.ListWorkspaces, opts.Limit)
	if err != nil {
		return fmt.Errorf("failed to list workspaces: %w", err)
	}

	log.Info().Int("workspaces", len(all)).Msg("listing complete")

	return outputWorkspaces(cmd.OutOrStdout(), all)
}

func runFiles(cmd *cobra.Command, opts *exploreOptions) error {
	ctx := cmd.Context()

	authorizer, err := loginSession(cmd, opts)
	if err != nil {
		return err
	}

	env := evo.Environment{
		HubURL:      opts.InstanceURL,
		OrgID:       opts.OrgID,
		WorkspaceID: opts.WorkspaceID,
	}

	httpClient := newServiceClient(env.HubURL, authorizer)
	defer httpClient.CloseIdleConnections()

	files := client.NewFilesClient(httpClient, env)

	all, err := evo.FetchAll(ctx, files.ListFiles, opts.Limit)
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}

	log.Info().Int("files", len(all)).Msg("listing complete")

	return outputFiles(cmd.OutOrStdout(), all)
}

func runObjects(cmd *cobra.Command, opts *exploreOptions) error {
	ctx := cmd.Context()

	authorizer, err := loginSession(cmd, opts)
	if err != nil {
		return err
	}

	env := evo.Environment{
		HubURL:      opts.InstanceURL,
		OrgID:       opts.OrgID,
		WorkspaceID: opts.WorkspaceID,
	}

	httpClient := newServiceClient(env.HubURL, authorizer)
	defer httpClient.CloseIdleConnections()

	objects := client.NewObjectsClient(httpClient, env)

	all, err := evo.FetchAll(ctx, objects.ListObjects, opts.Limit)
	if err != nil {
		return fmt.Errorf("failed to list objects: %w", err)
	}

	log.Info().Int("objects", len(all)).Msg("listing complete")

	return outputObjects(cmd.OutOrStdout(), all)
}
