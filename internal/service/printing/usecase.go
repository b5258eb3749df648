// Package printing orchestrates label generation against the carrier's
// binary print endpoint.
package printing

import (
	"context"
	"fmt"

	"carrier-bridge/internal/apperr"
	"carrier-bridge/internal/domain"
	"carrier-bridge/internal/gateway/carrier"
	"carrier-bridge/internal/logx"
	"carrier-bridge/internal/normalize"
)

type binaryGateway interface {
	CallBinary(ctx context.Context, path string, payload any, creds domain.Credentials) (carrier.BinaryResult, error)
}

// Service produces PDF labels for previously created shipments.
type Service struct {
	norm   *normalize.Normalizer
	gw     binaryGateway
	creds  domain.Credentials
	logger logx.Logger
}

// NewService creates a printing Service.
func NewService(norm *normalize.Normalizer, gw binaryGateway, creds domain.Credentials, logger logx.Logger) *Service {
	if norm == nil || gw == nil {
		return nil
	}
	return &Service{norm: norm, gw: gw, creds: creds, logger: logger}
}

// Print normalizes the legacy id list and fetches the label PDF. A
// non-PDF carrier response (even with a success status) is an
// UpstreamError carrying the body as diagnostic text.
func (s *Service) Print(ctx context.Context, body map[string]any) ([]byte, error) {
	req, creds, err := s.norm.Print(body)
	if err != nil {
		return nil, err
	}

	creds = creds.Or(s.creds)
	if !creds.Present() {
		return nil, fmt.Errorf("carrier credentials missing: %w", apperr.ErrInvalid)
	}

	res, err := s.gw.CallBinary(ctx, carrier.PrintPath, req, creds)
	if err != nil {
		return nil, err
	}
	if !res.OK {
		return nil, &apperr.UpstreamError{Status: res.Status, Body: res.Diagnostic}
	}

	s.logger.Info("labels printed",
		logx.Int("parcels", len(req.Parcels)),
		logx.String("paper_size", req.PaperSize),
	)
	return res.PDF, nil
}
