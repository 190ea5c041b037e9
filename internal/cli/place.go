package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tipkit/pkg/api"
	"github.com/matzehuels/tipkit/pkg/errors"
	"github.com/matzehuels/tipkit/pkg/snapshot"
	"github.com/matzehuels/tipkit/pkg/tooltip"
)

// placeOpts holds the command-line flags for the place command.
type placeOpts struct {
	container string  // container size as WxH
	target    string  // target rect as X,Y,W,H
	placement string  // top, bottom, left or right
	x, y      float64 // absolute coordinates, used without a target
	dx, dy    string  // string deltas added to the result
	png       string  // snapshot output path
	scale     float64 // snapshot pixels per unit
	json      bool    // print JSON instead of key/value lines
}

// placeCommand creates the place command for computing a single position.
func (c *CLI) placeCommand() *cobra.Command {
	opts := placeOpts{
		placement: string(tooltip.DefaultPlacement),
		scale:     snapshot.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute where a tooltip container goes",
		Long: `Compute the top-left corner of a tooltip container.

With --target the container is placed next to the target on the side given
by --placement, separated by a 5 unit gap. Without a target the container
goes to --x/--y. String deltas from --dx/--dy are added last in both cases.`,
		Example: `  tipkit place --container 40x20 --target 100,50,200,30
  tipkit place --container 60x20 --target 50,50,100,30 --placement top --dy -2
  tipkit place --container 10x4 --x 12 --y 7 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y := tooltip.Offset{}, tooltip.Offset{}
			if cmd.Flags().Changed("x") {
				x = tooltip.Abs(opts.x)
			}
			if cmd.Flags().Changed("dx") {
				x = tooltip.Delta(opts.dx)
			}
			if cmd.Flags().Changed("y") {
				y = tooltip.Abs(opts.y)
			}
			if cmd.Flags().Changed("dy") {
				y = tooltip.Delta(opts.dy)
			}
			return runPlace(opts, x, y)
		},
	}

	cmd.Flags().StringVarP(&opts.container, "container", "c", "", "container size as WxH (required)")
	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "target rect as X,Y,W,H")
	cmd.Flags().StringVarP(&opts.placement, "placement", "p", opts.placement, "placement: top, bottom, left, right")
	cmd.Flags().Float64Var(&opts.x, "x", 0, "absolute x, used without a target")
	cmd.Flags().Float64Var(&opts.y, "y", 0, "absolute y, used without a target")
	cmd.Flags().StringVar(&opts.dx, "dx", "", "x delta added to the result (e.g. 3, -2.5)")
	cmd.Flags().StringVar(&opts.dy, "dy", "", "y delta added to the result")
	cmd.Flags().StringVar(&opts.png, "png", "", "write a PNG snapshot to this file")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "snapshot pixels per unit")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")

	_ = cmd.MarkFlagRequired("container")
	cmd.MarkFlagsMutuallyExclusive("x", "dx")
	cmd.MarkFlagsMutuallyExclusive("y", "dy")

	return cmd
}

// runPlace computes and prints the position.
func runPlace(opts placeOpts, x, y tooltip.Offset) error {
	container, err := parseSize(opts.container)
	if err != nil {
		return err
	}
	placement, err := tooltip.ParsePlacement(opts.placement)
	if err != nil {
		return err
	}
	var target *tooltip.Rect
	if opts.target != "" {
		r, err := parseRect(opts.target)
		if err != nil {
			return err
		}
		target = &r
	}

	pos, err := tooltip.ComputePosition(x, y, target, container, placement)
	if err != nil {
		return err
	}

	resp := api.PointResponse{X: pos.X, Y: pos.Y}
	if target != nil {
		resp.Placement = placement.String()
	}
	if opts.json {
		enc := json.NewEncoder(stdout)
		if err := enc.Encode(resp); err != nil {
			return err
		}
	} else {
		if resp.Placement != "" {
			printKeyValue("placement", resp.Placement)
		}
		printKeyValue("x", StyleNumber.Render(formatFloat(resp.X)))
		printKeyValue("y", StyleNumber.Render(formatFloat(resp.Y)))
	}

	if opts.png == "" {
		return nil
	}
	scene := snapshot.Scene{
		Container: container,
		Target:    target,
		Position:  pos,
		Label:     strings.TrimSpace(resp.Placement + " " + pos.String()),
	}
	return writeSnapshot(opts.png, scene, opts.scale, !opts.json)
}

func writeSnapshot(path string, scene snapshot.Scene, scale float64, announce bool) error {
	var buf bytes.Buffer
	if err := snapshot.RenderPNG(&buf, scene, snapshot.WithScale(scale)); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if announce {
		printSuccess("Wrote snapshot")
		printFile(path)
	}
	return nil
}

// =============================================================================
// Flag Parsing
// =============================================================================

// parseSize parses "WxH" into a zero-origin rect.
func parseSize(s string) (tooltip.Rect, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return tooltip.Rect{}, errors.New(errors.ErrCodeInvalidInput, "invalid size %q (want WxH, e.g. 40x20)", s)
	}
	nums, err := parseFloats(s, w, h)
	if err != nil {
		return tooltip.Rect{}, err
	}
	r := tooltip.Rect{Width: nums[0], Height: nums[1]}
	return r, r.Validate()
}

// parseRect parses "X,Y,W,H".
func parseRect(s string) (tooltip.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return tooltip.Rect{}, errors.New(errors.ErrCodeInvalidInput, "invalid rect %q (want X,Y,W,H)", s)
	}
	nums, err := parseFloats(s, parts...)
	if err != nil {
		return tooltip.Rect{}, err
	}
	r := tooltip.Rect{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]}
	return r, r.Validate()
}

func parseFloats(orig string, parts ...string) ([]float64, error) {
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid number %q in %q", strings.TrimSpace(p), orig)
		}
		out[i] = v
	}
	return out, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
