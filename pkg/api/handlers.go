package api

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/tipkit/pkg/buildinfo"
	"github.com/matzehuels/tipkit/pkg/errors"
	"github.com/matzehuels/tipkit/pkg/tooltip"
)

// =============================================================================
// Wire Types
// =============================================================================

// ResolveRequest is the body of POST /v1/resolve. Only the container's size
// is used.
type ResolveRequest struct {
	Placement string       `json:"placement"`
	Container tooltip.Rect `json:"container"`
	Target    tooltip.Rect `json:"target"`
}

// PositionRequest is the body of POST /v1/position.
type PositionRequest struct {
	X         tooltip.Offset `json:"x"`
	Y         tooltip.Offset `json:"y"`
	Target    *tooltip.Rect  `json:"target,omitempty"`
	Container tooltip.Rect   `json:"container"`
	Placement string         `json:"placement"`
}

// PointResponse is a computed position. Placement is set when a target
// took part in the computation.
type PointResponse struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Placement string  `json:"placement,omitempty"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := decode(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}
	placement, err := placementOrDefault(req.Placement)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	if err := validateRects(req.Container, &req.Target); err != nil {
		s.handleError(w, r, err)
		return
	}

	p, err := tooltip.Resolve(placement, req.Container, req.Target)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PointResponse{X: p.X, Y: p.Y, Placement: placement.String()})
}

func (s *Server) handlePosition(w http.ResponseWriter, r *http.Request) {
	var req PositionRequest
	if err := decode(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}
	placement, err := placementOrDefault(req.Placement)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	if err := validateRects(req.Container, req.Target); err != nil {
		s.handleError(w, r, err)
		return
	}

	p, err := tooltip.ComputePosition(req.X, req.Y, req.Target, req.Container, placement)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	resp := PointResponse{X: p.X, Y: p.Y}
	if req.Target != nil {
		resp.Placement = placement.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// Helpers
// =============================================================================

func placementOrDefault(s string) (tooltip.Placement, error) {
	if s == "" {
		return tooltip.DefaultPlacement, nil
	}
	return tooltip.ParsePlacement(s)
}

func validateRects(container tooltip.Rect, target *tooltip.Rect) error {
	if err := container.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "container")
	}
	if target != nil {
		if err := target.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "target")
		}
	}
	return nil
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}

func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.IsInput(err):
		status = http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNotFound):
		status = http.StatusNotFound
	default:
		s.logger.Error("Request failed", "path", r.URL.Path, "err", err)
	}

	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	writeError(w, status, string(code), msg)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
