package commands

import (
	"fmt"
	"strings"

	"github.com/evotools-io/evo-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// modeSpec describes one listing mode: its flag, the flags it requires
// beyond --client-id, and the sequence that serves it. The four modes share
// one authenticate/scope/list/render runner; only the descriptor differs.
type modeSpec struct {
	flag     string
	requires []string
	run      func(cmd *cobra.Command, opts *exploreOptions) error
}

func modes() []modeSpec {
	return []modeSpec{
		{
			flag: "instances",
			run:  runInstances,
		},
		{
			flag:     "workspaces",
			requires: []string{"org-id", "instance-url"},
			run:      runWorkspaces,
		},
		{
			flag:     "files",
			requires: []string{"org-id", "instance-url", "workspace-id"},
			run:      runFiles,
		},
		{
			flag:     "objects",
			requires: []string{"org-id", "instance-url", "workspace-id"},
			run:      runObjects,
		},
	}
}

// exploreOptions carries the resolved per-invocation arguments.
type exploreOptions struct {
	ClientID    string
	OrgID       string
	InstanceURL string
	WorkspaceID string
	Limit       int
}

// NewRootCommand creates the evo root command. The root itself runs the
// selected listing: exactly one of --instances, --workspaces, --files, or
// --objects must be given, each with its required scope flags.
func NewRootCommand(version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evo",
		Short: "Seequent Evo console explorer",
		Long: `A command-line explorer for the Seequent Evo APIs.

Sign in with an OAuth client ID, then list your organizations and their
hubs, the workspaces of an organization, or the files and geoscience
objects of a workspace, as text tables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCommand,
	}

	cobra.OnInitialize(initConfig)

	cmd.Flags().Bool("instances", false, "show Evo instances for each organization")
	cmd.Flags().Bool("workspaces", false, "show workspaces for an organization (requires --org-id and --instance-url)")
	cmd.Flags().Bool("files", false, "show files for a workspace (requires --org-id, --instance-url and --workspace-id)")
	cmd.Flags().Bool("objects", false, "show objects for a workspace (requires --org-id, --instance-url and --workspace-id)")

	cmd.Flags().String("client-id", "", "OAuth client ID (required)")
	cmd.Flags().String("org-id", "", "organization ID")
	cmd.Flags().String("instance-url", "", "hub instance URL")
	cmd.Flags().String("workspace-id", "", "workspace ID")
	cmd.Flags().Int("limit", constants.StandardPageSize, "page size for paginated listings")

	cmd.PersistentFlags().String("output", "table", "output format (table, json, yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	cmd.PersistentFlags().Bool("debug", false, "log HTTP requests and responses")

	cmd.MarkFlagsOneRequired("instances", "workspaces", "files", "objects")
	cmd.MarkFlagsMutuallyExclusive("instances", "workspaces", "files", "objects")

	_ = viper.BindPFlag("client-id", cmd.Flags().Lookup("client-id"))
	_ = viper.BindPFlag("output", cmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", cmd.PersistentFlags().Lookup("debug"))

	cmd.AddCommand(NewVersionCommand(version, commit, date))

	return cmd
}

func initConfig() {
	viper.SetEnvPrefix("EVO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// runRootCommand validates the selected mode's required arguments and
// dispatches. Validation happens before login: a bad argument set never
// reaches the network.
func runRootCommand(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	for _, mode := range modes() {
		selected, err := cmd.Flags().GetBool(mode.flag)
		if err != nil {
			return fmt.Errorf("reading --%s: %w", mode.flag, err)
		}

		if !selected {
			continue
		}

		if err := validateMode(mode, opts); err != nil {
			return err
		}

		initLogging()

		return mode.run(cmd, opts)
	}

	// MarkFlagsOneRequired guarantees a mode was selected.
	return nil
}

func resolveOptions(cmd *cobra.Command) (*exploreOptions, error) {
	orgID, err := cmd.Flags().GetString("org-id")
	if err != nil {
		return nil, fmt.Errorf("reading --org-id: %w", err)
	}

	instanceURL, err := cmd.Flags().GetString("instance-url")
	if err != nil {
		return nil, fmt.Errorf("reading --instance-url: %w", err)
	}

	workspaceID, err := cmd.Flags().GetString("workspace-id")
	if err != nil {
		return nil, fmt.Errorf("reading --workspace-id: %w", err)
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return nil, fmt.Errorf("reading --limit: %w", err)
	}

	// The client ID may come from the flag or EVO_CLIENT_ID.
	return &exploreOptions{
		ClientID:    viper.GetString("client-id"),
		OrgID:       orgID,
		InstanceURL: instanceURL,
		WorkspaceID: workspaceID,
		Limit:       limit,
	}, nil
}

func validateMode(mode modeSpec, opts *exploreOptions) error {
	var missing []string

	if opts.ClientID == "" {
		missing = append(missing, "--client-id")
	}

	for _, name := range mode.requires {
		value := ""

		switch name {
		case "org-id":
			value = opts.OrgID
		case "instance-url":
			value = opts.InstanceURL
		case "workspace-id":
			value = opts.WorkspaceID
		}

		if value == "" {
			missing = append(missing, "--"+name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("--%s requires %s", mode.flag, strings.Join(missing, ", "))
	}

	return nil
}
