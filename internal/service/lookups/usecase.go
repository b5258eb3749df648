// Package lookups relays carrier lookup endpoints (site, office, contract
// client) without reshaping the payload.
package lookups

import (
	"context"
	"fmt"

	"carrier-bridge/internal/apperr"
	"carrier-bridge/internal/domain"
	"carrier-bridge/internal/gateway/carrier"
)

type jsonGateway interface {
	CallJSON(ctx context.Context, path string, payload any, creds domain.Credentials) (carrier.Result, error)
}

// Service passes lookup requests through to the carrier.
type Service struct {
	gw    jsonGateway
	creds domain.Credentials
}

// NewService creates a lookups Service.
func NewService(gw jsonGateway, creds domain.Credentials) *Service {
	if gw == nil {
		return nil
	}
	return &Service{gw: gw, creds: creds}
}

// Sites relays a location/site search.
func (s *Service) Sites(ctx context.Context, body map[string]any) (carrier.Result, error) {
	return s.call(ctx, carrier.SitePath, body)
}

// Offices relays a location/office search.
func (s *Service) Offices(ctx context.Context, body map[string]any) (carrier.Result, error) {
	return s.call(ctx, carrier.OfficePath, body)
}

// ContractClients relays a client/contract lookup.
func (s *Service) ContractClients(ctx context.Context, body map[string]any) (carrier.Result, error) {
	return s.call(ctx, carrier.ContractPath, body)
}

func (s *Service) call(ctx context.Context, path string, body map[string]any) (carrier.Result, error) {
	creds := credentialsFrom(body).Or(s.creds)
	if !creds.Present() {
		return carrier.Result{}, fmt.Errorf("carrier credentials missing: %w", apperr.ErrInvalid)
	}
	if body == nil {
		body = map[string]any{}
	}
	return s.gw.CallJSON(ctx, path, body, creds)
}

func credentialsFrom(body map[string]any) domain.Credentials {
	var c domain.Credentials
	if u, ok := body["username"].(string); ok {
		c.Username = u
	}
	if p, ok := body["password"].(string); ok {
		c.Password = p
	}
	return c
}
