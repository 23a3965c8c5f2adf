// Package cli is the inkwell command tree.
package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/khushisingh18/Ai-blog-website/internal/config"
	"github.com/khushisingh18/Ai-blog-website/internal/logger"
)

type rootOptions struct {
	apiURL  string
	dataDir string
	debug   bool
	metrics bool

	cfg *config.Config
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "inkwell",
		Short:         "Inkwell: write, translate and listen to blogs from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			logger.Setup(cmd.ErrOrStderr(), cfg.LogLevel, o.debug)
			if cmd.Flags().Changed("api-url") {
				cfg.APIURL = o.apiURL
			}
			if cmd.Flags().Changed("data-dir") {
				cfg.DataDir = o.dataDir
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			o.cfg = cfg
			log.Debug().Str("api_url", cfg.APIURL).Msg("debug logging enabled")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHome(cmd, o)
		},
	}

	rootCmd.PersistentFlags().StringVar(&o.apiURL, "api-url", "", "Backend base URL (overrides INKWELL_API_URL)")
	rootCmd.PersistentFlags().StringVar(&o.dataDir, "data-dir", "", "Local state directory (overrides INKWELL_DATA_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&o.debug, "debug", "d", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&o.metrics, "metrics", false, "Print backend request metrics to stderr on exit")

	// Sub-commands
	rootCmd.AddCommand(newHomeCmd(o))
	rootCmd.AddCommand(newLoginCmd(o))
	rootCmd.AddCommand(newRegisterCmd(o))
	rootCmd.AddCommand(newLogoutCmd(o))
	rootCmd.AddCommand(newWhoamiCmd(o))
	rootCmd.AddCommand(newFeedCmd(o))
	rootCmd.AddCommand(newBlogCmd(o))
	rootCmd.AddCommand(newCreateCmd(o))
	rootCmd.AddCommand(newDeleteCmd(o))
	rootCmd.AddCommand(newSettingsCmd(o))
	rootCmd.AddCommand(newProfileCmd(o))
	rootCmd.AddCommand(newCommunityCmd(o))
	rootCmd.AddCommand(newGenerateCmd(o))
	rootCmd.AddCommand(newThemeCmd(o))
	rootCmd.AddCommand(newStateCmd(o))

	return rootCmd
}

// commandContext is cancelled when the user interrupts the command. Backend
// calls carry no deadline unless INKWELL_HTTP_TIMEOUT sets one.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt)
}
