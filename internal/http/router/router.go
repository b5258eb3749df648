package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"carrier-bridge/internal/http/handlers"
	appmw "carrier-bridge/internal/http/middleware"
)

// requestTimeout bounds a whole inbound request, including every carrier
// round trip the resolver ladder may issue.
const requestTimeout = 60 * time.Second

// New constructs a chi-based http.Handler with base middleware and routes.
func New(h *handlers.Handlers, sh *handlers.ShipmentHandler, ph *handlers.PrintHandler, lh *handlers.LookupHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(appmw.Observability(h.Logger))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/shipment", sh.Create)
	r.Post("/print", ph.Print)
	r.Post("/location/site", lh.Sites)
	r.Post("/location/office", lh.Offices)
	r.Post("/client/contract", lh.ContractClients)

	r.NotFound(http.HandlerFunc(h.NotFound))

	return r
}
