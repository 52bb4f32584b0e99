package cli

import (
	"fmt"

	"github.com/beacon-labs/beacon/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgAuthor   string
	cfgEmail    string
	cfgGithubID string
)

func init() {
	configCmd.Flags().StringVar(&cfgAuthor, "author", "", "Author name written to the sidecar")
	configCmd.Flags().StringVar(&cfgEmail, "author_email", "", "Author email written to the sidecar")
	configCmd.Flags().StringVar(&cfgGithubID, "author_github_id", "", "GitHub ID used in index links")
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or update the collection's author identity",
	Long: `Update identity fields in the current directory's sidecar file.

Only the flags you pass are changed; the collection name and contents are
never touched. With no flags, the current identity is printed.

The set/get subcommands manage global defaults (~/.beacon/config.yaml) that
seed new collections instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}

		// TODO: validate author_email looks like an email before persisting.
		var author, email, githubID *string
		if cmd.Flags().Changed("author") {
			author = &cfgAuthor
		}
		if cmd.Flags().Changed("author_email") {
			email = &cfgEmail
		}
		if cmd.Flags().Changed("author_github_id") {
			githubID = &cfgGithubID
		}

		if author == nil && email == nil && githubID == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "author:           %s\n", ws.cfg.Author)
			fmt.Fprintf(cmd.OutOrStdout(), "author_email:     %s\n", ws.cfg.AuthorEmail)
			fmt.Fprintf(cmd.OutOrStdout(), "author_github_id: %s\n", ws.cfg.AuthorGithubID)
			return nil
		}

		ws.cfg.Update(author, email, githubID)
		return ws.cfg.Save(ws.sidecar)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a global default value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a global default value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
