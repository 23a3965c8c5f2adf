package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/khushisingh18/Ai-blog-website/internal/generator"
	"github.com/khushisingh18/Ai-blog-website/internal/screens"
	"github.com/khushisingh18/Ai-blog-website/internal/speech"
	"github.com/khushisingh18/Ai-blog-website/internal/upload"
)

func newFeedCmd(o *rootOptions) *cobra.Command {
	var page int
	var personalized bool
	var search string

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Browse blogs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(a *app) error {
				ctx, stop := commandContext(cmd)
				defer stop()

				mode := screens.FeedAll
				if personalized {
					mode = screens.FeedPersonalized
				}
				p, err := (&screens.Feed{API: a.api, Session: a.session}).Load(ctx, mode, page)
				if err != nil {
					return err
				}
				screens.RenderFeed(a.out, p, screens.Search(p.Blogs, search))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().BoolVar(&personalized, "personalized", false, "Show blogs matching your interests")
	cmd.Flags().StringVar(&search, "search", "", "Filter by title or tag")

	return cmd
}

func newBlogCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blog",
		Short: "Read and interact with a blog",
	}
	cmd.AddCommand(newBlogShowCmd(o))
	cmd.AddCommand(newBlogLikeCmd(o))
	cmd.AddCommand(newBlogCommentCmd(o))
	cmd.AddCommand(newBlogListenCmd(o))
	return cmd
}

// openBlog loads blogID and translates it when lang is not English.
func openBlog(ctx context.Context, d *screens.BlogDetail, blogID, lang string) (*screens.BlogView, error) {
	v, err := d.Open(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if lang != "" && lang != "en" {
		if err := d.Translate(ctx, v, lang); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func newBlogShowCmd(o *rootOptions) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "show <blog-id>",
		Short: "Show a blog and its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(a *app) error {
				ctx, stop := commandContext(cmd)
				defer stop()

				v, err := openBlog(ctx, &screens.BlogDetail{API: a.api, Session: a.session}, args[0], lang)
				if err != nil {
					return err
				}
				tty := generator.IsTerminal(os.Stdout)
				screens.RenderBlog(a.out, v, func(s string) string { return generator.RenderEmphasis(s, tty) })
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "en", "Translate to this language code")

	return cmd
}

func newBlogLikeCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "like <blog-id>",
		Short: "Like or unlike a blog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(a *app) error {
				ctx, stop := commandContext(cmd)
				defer stop()

				d := &screens.BlogDetail{API: a.api, Session: a.session}
				v, err := d.Open(ctx, args[0])
				if err != nil {
					return err
				}
				if err := d.Like(ctx, v); err != nil {
					return err
				}
				verb := "Unliked"
				if v.IsLiked {
					verb = "Liked"
				}
				fmt.Fprintf(a.out, "%s %q (%d likes)\n", verb, v.Blog.Title, v.Likes)
				return nil
			})
		},
	}
}

func newBlogCommentCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "comment <blog-id> <text>",
		Short: "Comment on a blog (+2 points)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(a *app) error {
				ctx, stop := commandContext(cmd)
				defer stop()

				d := &screens.BlogDetail{API: a.api, Session: a.session}
				v, err := d.Open(ctx, args[0])
				if err != nil {
					return err
				}
				if _, err := d.Comment(ctx, v, strings.Join(args[1:], " ")); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Comment posted (%d comments)\n", v.Blog.CommentsCount)
				return nil
			})
		},
	}
}

func newBlogListenCmd(o *rootOptions) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "listen <blog-id>",
		Short: "Read a blog aloud",
		Long:  "Read a blog aloud. On a terminal, type p to pause, r to resume and s to stop.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(a *app) error {
				eng := speech.NewProcessEngine(o.cfg.TTSCommand)
				if !eng.Available() {
					fmt.Fprintln(a.out, speech.UnavailableMessage)
					return nil
				}

				idle := make(chan struct{}, 1)
				ctrl := speech.NewController(eng,
					speech.WithAlert(func(msg string) { fmt.Fprintln(a.out, msg) }),
					speech.WithStateListener(func(s speech.State) {
						log.Debug().Stringer("state", s).Msg("speech state")
						if s == speech.Idle {
							select {
							case idle <- struct{}{}:
							default:
							}
						}
					}),
				)

				ctx, stop := commandContext(cmd)
				defer stop()
				d := &screens.BlogDetail{API: a.api, Session: a.session, Speech: ctrl}
				v, err := openBlog(ctx, d, args[0], lang)
				if err != nil {
					return err
				}
				if _, err := d.Listen(v); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Listening to %q via %s\n", v.Blog.Title, eng.Program())

				if term.IsTerminal(int(os.Stdin.Fd())) {
					go speechKeys(ctrl, cmd)
				}
				select {
				case <-idle:
				case <-ctx.Done():
					ctrl.Stop()
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "en", "Translate and speak in this language code")

	return cmd
}

// speechKeys maps typed lines to pause, resume and stop.
func speechKeys(ctrl *speech.Controller, cmd *cobra.Command) {
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		switch strings.TrimSpace(sc.Text()) {
		case "p":
			ctrl.Pause()
		case "r":
			ctrl.Resume()
		case "s", "q":
			ctrl.Stop()
			return
		}
	}
}

func newCreateCmd(o *rootOptions) *cobra.Command {
	var title, content, contentFile, cover, coverFile string
	var tags []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a blog (+10 points)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if contentFile != "" {
				b, err := os.ReadFile(contentFile)
				if err != nil {
					return err
				}
				content = string(b)
			}
			return o.run(cmd, func(a *app) error {
				ctx, stop := commandContext(cmd)
				defer stop()

				if coverFile != "" {
					url, err := uploadCover(ctx, a, coverFile, cover)
					if err != nil {
						return err
					}
					cover = url
				}
				blog, err := (&screens.Create{API: a.api, Session: a.session}).Publish(ctx, screens.Draft{
					Title:      title,
					Content:    content,
					CoverImage: cover,
					Tags:       tags,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Blog published successfully! %s\n", blog.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Blog title")
	cmd.Flags().StringVar(&content, "content", "", "Blog content")
	cmd.Flags().StringVar(&contentFile, "content-file", "", "Read content from this file")
	cmd.Flags().StringVar(&cover, "cover", "", "Cover image URL")
	cmd.Flags().StringVar(&coverFile, "cover-file", "", "Upload this image as the cover")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag (repeatable)")

	return cmd
}

// uploadCover sends path through the upload widget and returns the hosted URL.
func uploadCover(ctx context.Context, a *app, path, current string) (string, error) {
	f, closer, err := upload.OpenFile(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = closer.Close() }()

	w := upload.New(a.api, a.session, current, nil)
	url, err := w.Select(ctx, f)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(a.out, "Image uploaded: %s\n", w.Preview())
	return url, nil
}

func newDeleteCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <blog-id>",
		Short: "Delete one of your blogs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(a *app) error {
				ctx, stop := commandContext(cmd)
				defer stop()

				p := &screens.Profile{API: a.api, Session: a.session}
				v, err := p.Open(ctx, "")
				if err != nil {
					return err
				}
				if err := p.Delete(ctx, v, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "Blog deleted")
				return nil
			})
		},
	}
}
