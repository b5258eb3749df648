// Package shipments orchestrates shipment creation: Normalize → Resolve
// (door deliveries only) → Submit.
package shipments

import (
	"context"
	"fmt"

	"carrier-bridge/internal/apperr"
	"carrier-bridge/internal/domain"
	"carrier-bridge/internal/gateway/carrier"
	"carrier-bridge/internal/logx"
	"carrier-bridge/internal/normalize"
)

// Service creates shipments at the carrier.
type Service struct {
	norm     *normalize.Normalizer
	gw       carrierGateway
	resolver siteResolver
	creds    domain.Credentials
	logger   logx.Logger
}

// NewService creates a shipments Service. creds is the process-wide
// credential fallback for requests that carry none.
func NewService(norm *normalize.Normalizer, gw carrierGateway, resolver siteResolver, creds domain.Credentials, logger logx.Logger) *Service {
	if norm == nil || gw == nil || resolver == nil {
		return nil
	}
	return &Service{norm: norm, gw: gw, resolver: resolver, creds: creds, logger: logger}
}

// CreateResult carries the carrier's response body plus the resolution
// diagnostics when a site lookup was needed.
type CreateResult struct {
	CarrierBody map[string]any
	Resolution  *domain.SiteResolution
}

// Create normalizes the payload, resolves the site id for door deliveries
// that lack one, and submits the shipment to the carrier.
func (s *Service) Create(ctx context.Context, body map[string]any) (CreateResult, error) {
	shipment, creds, err := s.norm.Shipment(body)
	if err != nil {
		return CreateResult{}, err
	}

	creds = creds.Or(s.creds)
	if !creds.Present() {
		return CreateResult{}, fmt.Errorf("carrier credentials missing: %w", apperr.ErrInvalid)
	}

	var resolution *domain.SiteResolution
	if shipment.DoorDelivery() && !shipment.SiteResolved() {
		res, err := s.resolveSite(ctx, &shipment, creds)
		if err != nil {
			return CreateResult{}, err
		}
		resolution = res
	}

	carrierBody, err := s.gw.Submit(ctx, carrier.ShipmentPath, shipment, creds)
	if err != nil {
		return CreateResult{}, err
	}

	s.logger.Info("shipment created",
		logx.String("event", "shipment_created"),
		logx.Any("door_delivery", shipment.DoorDelivery()),
	)
	return CreateResult{CarrierBody: carrierBody, Resolution: resolution}, nil
}

// resolveSite runs the site resolver for a staged door delivery and
// attaches the resolved id. Missing locality input and an exhausted ladder
// are both hard failures: an unresolved address is never submitted.
func (s *Service) resolveSite(ctx context.Context, shipment *domain.Shipment, creds domain.Credentials) (*domain.SiteResolution, error) {
	city := shipment.Staging.CityName
	postCode := shipment.Staging.PostCode
	if city == "" && postCode == "" {
		return nil, fmt.Errorf("door delivery needs a city name or postal code: %w", apperr.ErrInvalid)
	}

	res, err := s.resolver.Resolve(ctx, creds, city, postCode)
	if err != nil {
		return nil, err
	}
	if !res.Resolved() {
		return nil, &apperr.ResolutionError{Attempts: res.Attempts, LastResponse: res.LastResponse}
	}

	if shipment.Recipient.Address == nil {
		shipment.Recipient.Address = &domain.Address{}
	}
	shipment.Recipient.Address.SiteID = res.SiteID
	shipment.Staging.Resolution = &res
	return &res, nil
}
