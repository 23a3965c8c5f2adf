package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/khushisingh18/Ai-blog-website/internal/config"
	"github.com/khushisingh18/Ai-blog-website/internal/generator"
	"github.com/khushisingh18/Ai-blog-website/internal/screens"
)

func newHomeCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show the landing page",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHome(cmd, o)
		},
	}
}

func runHome(cmd *cobra.Command, o *rootOptions) error {
	return o.run(cmd, func(a *app) error {
		ctx, stop := commandContext(cmd)
		defer stop()

		a.navbar()
		h := &screens.Home{API: a.api, Session: a.session}
		recent, err := h.Recent(ctx)
		if err != nil {
			return err
		}
		screens.RenderHome(a.out, a.session, recent)
		return nil
	})
}

func newCommunityCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "community",
		Short: "Show the leaderboard, badges and platform stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(a *app) error {
				ctx, stop := commandContext(cmd)
				defer stop()

				v := (&screens.Community{API: a.api}).Load(ctx)
				screens.RenderCommunity(a.out, v)
				return nil
			})
		},
	}
}

func newThemeCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the current theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(a *app) error {
				fmt.Fprintf(a.out, "Theme: %s\n", a.theme.Current())
				return nil
			})
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(a *app) error {
				m, err := a.theme.Toggle(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Theme: %s\n", m)
				return nil
			})
		},
	})
	return cmd
}

func newGenerateCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "generate <topic>",
		Short: "Draft an article with the configured AI provider",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newGenerator(o.cfg)
			if err != nil {
				var engErr *generator.EngineError
				if errors.As(err, &engErr) {
					return &screens.FailureError{Message: engErr.Hint(), Err: err}
				}
				return err
			}
			ctx, stop := commandContext(cmd)
			defer stop()

			g := &screens.ArticleGenerator{Engine: eng, TTY: generator.IsTerminal(os.Stdout)}
			text, err := g.Generate(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func newGenerator(cfg *config.Config) (generator.Generator, error) {
	s := generator.Settings{
		Provider: cfg.AIProvider,
		Model:    cfg.AIModel,
		APIKey:   cfg.ProviderKey(),
	}
	if cfg.AIProvider == config.ProviderOpenAI {
		s.BaseURL = cfg.OpenAIBaseURL
	}
	return generator.New(s)
}

func newStateCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "List what is stored locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(a *app) error {
				entries, err := a.kv.Entries(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Database: %s\n", a.dbPath)
				if len(entries) == 0 {
					fmt.Fprintln(a.out, "Nothing stored.")
					return nil
				}
				for _, e := range entries {
					fmt.Fprintf(a.out, "%-8s %10s  updated %s\n", e.Key, units.HumanSize(float64(e.Size)), e.UpdatedAt.Local().Format(time.DateTime))
				}
				return nil
			})
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Log out and forget the theme and cached user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(a *app) error {
				if err := (&screens.Auth{Session: a.session}).Logout(cmd.Context()); err != nil {
					return err
				}
				n, err := a.kv.Reset(cmd.Context())
				if err != nil {
					return err
				}
				log.Debug().Int64("keys", n).Msg("local state reset")
				fmt.Fprintln(a.out, "Local state cleared")
				return nil
			})
		},
	})
	return cmd
}
