package cli

import (
	"fmt"
	"os"
	"strings"

	"wishlist-cli/internal/api"
	"wishlist-cli/internal/format"
	"wishlist-cli/internal/store"
	"wishlist-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	BaseURL    string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "wishlist",
		Short:        "Wishlist tracker CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  wishlist

  # Scriptable commands
  wishlist items list
  wishlist items add --url https://example.com/thing --price 12.50 --category Svago

  # Direct item lookup (shortcut for: wishlist items show <id>)
  wishlist 3
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.BaseURL, "api", envOr("WISHLIST_API", api.DefaultBaseURL), "Base URL of the wishlist API")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newItemsCmd(app))
	cmd.AddCommand(newCategoriesCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func newStore(app *App) *store.Store {
	return store.New(api.New(app.BaseURL))
}

func runTUI(app *App) error {
	return tui.Run(newStore(app))
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
