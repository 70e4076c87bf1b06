package restapi

import (
	"fmt"
	"net/http"
	"time"

	"dao_networks/internal/infrastructure/configloader"
	"dao_networks/internal/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter wires the middleware and routes of the API.
// Forwarded-for headers are honored only from cfg.Server.TrustedProxies; with none configured the peer address is used.
func SetupRouter(h *NetworkHandler, cfg *configloader.Config, m *metrics.Metrics, gatherer prometheus.Gatherer) (*gin.Engine, error) {
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies %v: %w", cfg.Server.TrustedProxies, err)
	}
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	router.Use(cors.New(corsConfig))
	router.Use(MetricsMiddleware(m))

	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(
		cfg.RateLimit.RequestsPerSecond,
		cfg.RateLimit.Burst,
		time.Duration(cfg.RateLimit.IdleTTLSeconds)*time.Second,
	))
	{
		v1.GET("/networks", h.ListNetworksHandler)
		v1.GET("/networks/:network", h.GetNetworkHandler)
		v1.GET("/chains/:chainId", h.GetChainHandler)
		v1.GET("/endpoints", h.GetEndpointsHandler)
	}

	return router, nil
}
