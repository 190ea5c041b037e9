package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tipkit/pkg/config"
	"github.com/matzehuels/tipkit/pkg/ident"
	"github.com/matzehuels/tipkit/pkg/observability"
	"github.com/matzehuels/tipkit/pkg/screen"
	"github.com/matzehuels/tipkit/pkg/textutil"
	"github.com/matzehuels/tipkit/pkg/tooltip"
)

const defaultSeed = 42 // random seed for reproducible generated scenes

// demoOpts holds the command-line flags for the demo command.
type demoOpts struct {
	config  string // scene file; empty generates one
	seed    uint64 // seed for the generated scene
	logFile string // debug log destination while the TUI owns the terminal
}

// demoCommand creates the interactive demo command.
func (c *CLI) demoCommand() *cobra.Command {
	opts := demoOpts{seed: defaultSeed}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Move anchors around and watch tooltips follow",
		Long: `Run an interactive demo in the terminal.

Keys:
  arrows / hjkl   move the selected anchor
  tab, shift+tab  select the next or previous anchor
  p               cycle the placement of the focus tooltip
  n               toggle a string nudge on the focus tooltip
  q               quit

Without --config the scene at ~/.config/tipkit/scene.toml is used, or a
random scene is generated from --seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDemo(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "f", "", "scene file (.toml, .yaml, .json)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "seed for the generated scene")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file while the demo runs")

	return cmd
}

// runDemo loads or generates a scene and runs the TUI until the user quits.
func (c *CLI) runDemo(ctx context.Context, opts demoOpts) error {
	// the TUI owns the terminal, so logs go to a file or nowhere
	var w io.Writer = io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	logger := newLogger(w, loggerFromContext(ctx).GetLevel())
	observability.SetLayoutHooks(logHooks{logger: logger})

	scene, err := demoScene(opts)
	if err != nil {
		return err
	}
	canvas, err := scene.Build(screen.WithLogger(logger))
	if err != nil {
		return err
	}
	m, err := newDemoModel(ctx, canvas, scene)
	if err != nil {
		return err
	}

	logger.Info("Demo started", "anchors", len(scene.Anchors), "tooltips", len(scene.Tooltips))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

func demoScene(opts demoOpts) (*config.Scene, error) {
	path := opts.config
	if path == "" {
		path = defaultScenePath()
	}
	if path != "" {
		return config.Load(path)
	}
	return randomScene(opts.seed, config.DefaultWidth, config.DefaultHeight-statusLines)
}

var demoLabels = []string{"Save", "Open", "Share", "Delete", "Search", "Settings", "Help"}

var demoClasses = []string{"info", "success", "warning", "error"}

// randomScene scatters a few anchors, each with a tooltip on a different
// side. The same seed always yields the same scene.
func randomScene(seed uint64, width, height int) (*config.Scene, error) {
	g := ident.NewGenerator(seed)
	n := 3 + g.Intn(3)
	first := g.Intn(len(demoLabels))

	s := &config.Scene{Canvas: config.Canvas{Width: width, Height: height}}
	for i := range n {
		label := demoLabels[(first+i)%len(demoLabels)]
		a := config.Anchor{
			ID:    textutil.Slugify(label),
			Label: label,
			X:     g.Intn(max(1, width-textutil.Width(label)-4)),
			Y:     g.Intn(max(1, height-3)),
			Color: g.Color(),
		}
		s.Anchors = append(s.Anchors, a)
		s.Tooltips = append(s.Tooltips, config.Tooltip{
			ID:        g.ID("tip"),
			Target:    a.ID,
			Content:   label + " tip",
			Placement: string(tooltip.Placements[i%len(tooltip.Placements)]),
			Classes:   demoClasses[g.Intn(len(demoClasses))],
		})
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

