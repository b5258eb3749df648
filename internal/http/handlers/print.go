package handlers

import (
	"errors"
	"net/http"

	"carrier-bridge/internal/apperr"
	"carrier-bridge/internal/logx"
)

// PrintHandler handles label generation requests.
type PrintHandler struct {
	usecase printUsecase
	logger  logx.Logger
}

// NewPrintHandler creates a new PrintHandler.
func NewPrintHandler(logger logx.Logger, uc printUsecase) *PrintHandler {
	return &PrintHandler{usecase: uc, logger: logger}
}

// Print handles POST /print and relays the label PDF.
func (h *PrintHandler) Print(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBody(h.logger, w, r)
	if !ok {
		return
	}

	pdf, err := h.usecase.Print(r.Context(), body)

	var upstream *apperr.UpstreamError
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="labels.pdf"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(pdf)
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
	case errors.As(err, &upstream):
		relayUpstream(h.logger, w, r, upstream)
	default:
		writeError(h.logger, w, r, http.StatusBadGateway, "carrier unreachable")
	}
}
