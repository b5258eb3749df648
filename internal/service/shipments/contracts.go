//go:generate mockgen -source=contracts.go -destination=shipments_mocks_test.go -package=shipments

package shipments

import (
	"context"

	"carrier-bridge/internal/domain"
)

type carrierGateway interface {
	Submit(ctx context.Context, path string, payload any, creds domain.Credentials) (map[string]any, error)
}

type siteResolver interface {
	Resolve(ctx context.Context, creds domain.Credentials, cityName, postCode string) (domain.SiteResolution, error)
}
