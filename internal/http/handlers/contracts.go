package handlers

import (
	"context"

	"carrier-bridge/internal/gateway/carrier"
	"carrier-bridge/internal/service/lookups"
	"carrier-bridge/internal/service/printing"
	"carrier-bridge/internal/service/shipments"
)

type shipmentUsecase interface {
	Create(ctx context.Context, body map[string]any) (shipments.CreateResult, error)
}

// NewShipmentUsecase wires a shipments.Service into a shipmentUsecase.
func NewShipmentUsecase(svc *shipments.Service) shipmentUsecase {
	return svc
}

type printUsecase interface {
	Print(ctx context.Context, body map[string]any) ([]byte, error)
}

// NewPrintUsecase wires a printing.Service into a printUsecase.
func NewPrintUsecase(svc *printing.Service) printUsecase {
	return svc
}

type lookupUsecase interface {
	Sites(ctx context.Context, body map[string]any) (carrier.Result, error)
	Offices(ctx context.Context, body map[string]any) (carrier.Result, error)
	ContractClients(ctx context.Context, body map[string]any) (carrier.Result, error)
}

// NewLookupUsecase wires a lookups.Service into a lookupUsecase.
func NewLookupUsecase(svc *lookups.Service) lookupUsecase {
	return svc
}
