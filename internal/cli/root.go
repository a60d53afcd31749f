// Package cli holds the timeview command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bengobox/clock-service/internal/view"
	"github.com/spf13/cobra"
)

// ErrViewFailed is returned when the fetch ended in the Error state.
var ErrViewFailed = errors.New("view ended in error state")

type rootOptions struct {
	url     string
	format  string
	timeout time.Duration
}

// NewRootCmd builds the timeview command writing its view to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "timeview",
		Short: "Fetch the backend time report once and render it",
		Long: `timeview issues a single GET /api/hello against the backend and renders
the result the way the browser page does: the IST and UTC times plus the raw
JSON, or the error message when the request fails.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), out, opts)
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", "http://localhost:3000", "Backend base URL")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text or html")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Give up after this long (0 waits forever)")
	return cmd
}

func run(ctx context.Context, out io.Writer, opts *rootOptions) error {
	render := view.RenderText
	switch opts.format {
	case "text":
	case "html":
		render = view.Render
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	m := view.NewLoader(http.DefaultClient, opts.url).Load(ctx)
	if err := render(out, m); err != nil {
		return fmt.Errorf("render view: %w", err)
	}
	if m.State == view.StateError {
		return ErrViewFailed
	}
	return nil
}
