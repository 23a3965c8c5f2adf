package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khushisingh18/Ai-blog-website/internal/screens"
)

func newSettingsCmd(o *rootOptions) *cobra.Command {
	var name, bio, avatar, language string
	var interests []string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or edit your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(a *app) error {
				ctx, stop := commandContext(cmd)
				defer stop()

				s := &screens.Settings{API: a.api, Session: a.session}
				form, err := s.Load(ctx)
				if err != nil {
					return err
				}

				flags := cmd.Flags()
				edited := false
				if flags.Changed("name") {
					form.Name, edited = name, true
				}
				if flags.Changed("bio") {
					form.Bio, edited = bio, true
				}
				if flags.Changed("avatar") {
					form.Avatar, edited = avatar, true
				}
				if flags.Changed("language") {
					form.PreferredLanguage, edited = language, true
				}
				if flags.Changed("interest") {
					form.Interests, edited = interests, true
				}

				if edited {
					if _, err := s.Save(ctx, *form); err != nil {
						return err
					}
					fmt.Fprintln(a.out, "Profile updated successfully!")
				}
				fmt.Fprintf(a.out, "Name:      %s\n", form.Name)
				fmt.Fprintf(a.out, "Bio:       %s\n", form.Bio)
				fmt.Fprintf(a.out, "Avatar:    %s\n", form.Avatar)
				fmt.Fprintf(a.out, "Language:  %s\n", form.PreferredLanguage)
				fmt.Fprintf(a.out, "Interests: %s\n", strings.Join(form.Interests, ", "))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&bio, "bio", "", "Short bio")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar image URL")
	cmd.Flags().StringVar(&language, "language", "", "Preferred language code")
	cmd.Flags().StringSliceVar(&interests, "interest", nil, "Interest (repeatable, replaces the list)")

	return cmd
}

func newProfileCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "profile [user-id]",
		Short: "Show a user's profile and blogs (yours by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(a *app) error {
				ctx, stop := commandContext(cmd)
				defer stop()

				id := ""
				if len(args) == 1 {
					id = args[0]
				}
				v, err := (&screens.Profile{API: a.api, Session: a.session}).Open(ctx, id)
				if err != nil {
					return err
				}
				screens.RenderProfile(a.out, v)
				return nil
			})
		},
	}
}
