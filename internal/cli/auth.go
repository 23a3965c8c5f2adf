package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/khushisingh18/Ai-blog-website/internal/screens"
)

// readPassword reads a password without echo. Replaced in tests.
var readPassword = term.ReadPassword

// promptPassword prompts on out and reads from the terminal, or reads one
// line from in when stdin is not a terminal.
func promptPassword(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := readPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newLoginCmd(o *rootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to your account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error
				if password, err = promptPassword(cmd, "Password: "); err != nil {
					return err
				}
			}
			return o.run(cmd, func(a *app) error {
				ctx, stop := commandContext(cmd)
				defer stop()

				id, err := (&screens.Auth{Session: a.session}).Login(ctx, email, password)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Welcome back, %s!\n", id.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newRegisterCmd(o *rootOptions) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error
				if password, err = promptPassword(cmd, "Password: "); err != nil {
					return err
				}
			}
			return o.run(cmd, func(a *app) error {
				ctx, stop := commandContext(cmd)
				defer stop()

				id, err := (&screens.Auth{Session: a.session}).Register(ctx, name, email, password)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Welcome to Inkwell, %s!\n", id.Name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(a *app) error {
				if err := (&screens.Auth{Session: a.session}).Logout(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "Logged out")
				return nil
			})
		},
	}
}

func newWhoamiCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(a *app) error {
				id, ok := a.session.Identity()
				if !ok {
					fmt.Fprintln(a.out, "Guest")
					return nil
				}
				fmt.Fprintf(a.out, "%s <%s>\n", id.Name, id.Email)
				fmt.Fprintf(a.out, "id: %s\nlevel %d · %d points\n", id.ID, id.Level, id.Points)
				if exp, ok := a.session.TokenExpiry(); ok {
					fmt.Fprintf(a.out, "token expires: %s\n", exp.Local().Format(time.RFC1123))
				}
				return nil
			})
		},
	}
}
