package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"carrier-bridge/internal/logx"
)

func reqID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return "-"
}

func writeJSON(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		logger.Error("json encode error",
			logx.String("req_id", reqID(r.Context())),
			logx.Any("err", err),
		)
	}
}

// ErrorResponse is the JSON error body for all locally-produced failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg string) {
	logger.Warn("http error",
		logx.String("req_id", reqID(r.Context())),
		logx.Int("status", status),
		logx.String("msg", msg),
	)
	writeJSON(logger, w, r, status, ErrorResponse{Error: msg})
}

const bodyLimit = 1 << 20

// decodeBody reads the request body as a generic JSON object. Unknown and
// extra keys are tolerated on purpose: the normalizers are the ones that
// decide what matters.
func decodeBody(logger logx.Logger, w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(logger, w, r, http.StatusBadRequest, "cannot read body")
		return nil, false
	}
	if len(raw) == 0 {
		return map[string]any{}, true
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json")
		return nil, false
	}
	return body, true
}
