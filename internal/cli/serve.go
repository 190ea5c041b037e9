package cli

import (
	"net"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tipkit/pkg/api"
)

// serveCommand creates the serve command for the HTTP placement service.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the placement math over HTTP",
		Long: `Serve the placement math over HTTP.

Routes:
  GET  /healthz       liveness probe
  POST /v1/resolve    anchored position for a placement
  POST /v1/position   position with manual offsets

The listen address defaults to $TIPKIT_ADDR, then :8080. The server shuts
down gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			srv := api.NewServer(loggerFromContext(ctx))
			printInfo("Serving on %s", StyleHighlight.Render(addr))
			for _, r := range srv.Routes() {
				printDetail("%s", r)
			}
			printNextStep("Try", "curl -s localhost"+portOf(addr)+"/healthz")
			return srv.Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr(), "listen address")

	return cmd
}

func defaultAddr() string {
	if a := os.Getenv(addrEnv); a != "" {
		return a
	}
	return api.DefaultAddr
}

// portOf returns the ":port" suffix of addr, or "" if there is none.
func portOf(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil || port == "" {
		return ""
	}
	return ":" + port
}
