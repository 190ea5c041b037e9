package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tipkit/pkg/config"
	"github.com/matzehuels/tipkit/pkg/errors"
	"github.com/matzehuels/tipkit/pkg/screen"
)

// renderCommand creates the render command for drawing a scene once.
func (c *CLI) renderCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw a scene file to the terminal",
		Long: `Draw a scene file to the terminal.

The scene lists anchors and tooltips in TOML, YAML or JSON. Every tooltip
with a target is placed next to it; the rest go to their x/y offsets.
Without --config the scene at ~/.config/tipkit/scene.toml is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), path)
		},
	}

	cmd.Flags().StringVarP(&path, "config", "f", "", "scene file (.toml, .yaml, .json)")

	return cmd
}

// runRender loads the scene and prints one frame.
func (c *CLI) runRender(ctx context.Context, path string) error {
	logger := loggerFromContext(ctx)

	if path == "" {
		if path = defaultScenePath(); path == "" {
			return errors.New(errors.ErrCodeInvalidInput, "no scene given; pass --config or create %s in the config directory", sceneFile)
		}
	}

	prog := newProgress(logger)
	scene, err := config.Load(path)
	if err != nil {
		return err
	}
	canvas, err := scene.Build(screen.WithLogger(logger))
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, canvas.Render(ctx))

	shown := 0
	for _, t := range canvas.Tooltips() {
		if t.Visible() {
			shown++
		}
	}
	prog.done(fmt.Sprintf("Rendered %d of %d tooltips", shown, len(canvas.Tooltips())))
	return nil
}
