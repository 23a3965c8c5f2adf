package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/khushisingh18/Ai-blog-website/client"
	"github.com/khushisingh18/Ai-blog-website/internal/localstate"
	"github.com/khushisingh18/Ai-blog-website/internal/screens"
	"github.com/khushisingh18/Ai-blog-website/internal/session"
	"github.com/khushisingh18/Ai-blog-website/internal/theme"
)

// app is the wired state one command runs against.
type app struct {
	out     io.Writer
	errOut  io.Writer
	kv      *localstate.Store
	dbPath  string
	session *session.Store
	api     *client.Client
	theme   *theme.Store

	metrics     *prometheus.Registry
	dumpMetrics bool
	unsubscribe func()
}

// open wires the durable store, session, client and theme. The caller must
// Close the result.
func (o *rootOptions) open(cmd *cobra.Command) (*app, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	dbPath, err := localstate.DBPath(o.cfg.DataDir)
	if err != nil {
		return nil, err
	}
	kv, err := localstate.OpenStore(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("open local state: %w", err)
	}

	sess := session.New(kv, nil)
	reg := prometheus.NewRegistry()
	opts := []client.Option{client.WithTokenSource(sess), client.WithMetrics(reg)}
	if o.cfg.HTTPTimeout > 0 {
		opts = append(opts, client.WithHTTPTimeout(o.cfg.HTTPTimeout))
	}
	c, err := client.New(o.cfg.APIURL, opts...)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}
	sess.SetAuthenticator(c)
	if err := sess.Initialize(ctx); err != nil {
		_ = kv.Close()
		return nil, err
	}

	th := theme.New(kv)
	if err := th.Initialize(ctx); err != nil {
		_ = kv.Close()
		return nil, err
	}
	log.Debug().Str("db", dbPath).Bool("authenticated", sess.IsAuthenticated()).Msg("local state opened")

	a := &app{
		out:         cmd.OutOrStdout(),
		errOut:      cmd.ErrOrStderr(),
		kv:          kv,
		dbPath:      dbPath,
		session:     sess,
		api:         c,
		theme:       th,
		metrics:     reg,
		dumpMetrics: o.metrics,
	}
	// Session changes made by the command redraw the header line.
	a.unsubscribe = sess.Subscribe(a.navbar)
	return a, nil
}

func (a *app) Close() {
	a.unsubscribe()
	if a.dumpMetrics {
		if err := writeMetrics(a.errOut, a.metrics); err != nil {
			log.Warn().Err(err).Msg("write metrics")
		}
	}
	if err := a.kv.Close(); err != nil {
		log.Warn().Err(err).Msg("close local state")
	}
}

// writeMetrics prints the client metrics in the Prometheus text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) navbar() {
	screens.Navbar(a.out, a.session, a.theme.Current())
}

// run opens the app, runs fn and closes it.
func (o *rootOptions) run(cmd *cobra.Command, fn func(a *app) error) error {
	a, err := o.open(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
