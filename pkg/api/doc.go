// Package api serves the placement math over HTTP.
//
// # Overview
//
// The service is stateless: every request carries the geometry it needs and
// the response is computed by [tooltip.Resolve] or [tooltip.ComputePosition].
// Nothing is stored between requests.
//
// # Routes
//
//   - GET /healthz: liveness probe with the build version
//   - POST /v1/resolve: anchored position for a placement
//   - POST /v1/position: full position with manual offsets
//
// Request bodies are JSON. Offsets keep their JSON type: a number is an
// absolute coordinate, a string is a delta.
//
//	curl -s localhost:8080/v1/position -H 'Content-Type: application/json' -d '{
//	    "container": {"width": 60, "height": 20},
//	    "target": {"x": 50, "y": 50, "width": 100, "height": 30},
//	    "placement": "top",
//	    "y": "-2"
//	}'
//	{"x":70,"y":23,"placement":"top"}
//
// # Errors
//
// Failures are returned as {"code": ..., "message": ...}. Input errors such
// as UNRECOGNIZED_PLACEMENT or INVALID_OFFSET map to 400; anything else maps
// to 500.
//
// # Usage
//
//	srv := api.NewServer(logger)
//	if err := srv.Run(ctx, ":8080"); err != nil {
//	    log.Fatal(err)
//	}
package api
