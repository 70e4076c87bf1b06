package restapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dao_networks/internal/app/service"
	"dao_networks/internal/domain/entity"
	"dao_networks/internal/infrastructure/configloader"
	networkdefinition "dao_networks/internal/infrastructure/network/definition"
	"dao_networks/internal/infrastructure/network/endpoints"
	"dao_networks/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func newTestRouter(t *testing.T, rps float64, burst int) *gin.Engine {
	t.Helper()
	cfg := &configloader.Config{RateLimit: configloader.RateLimitConfig{RequestsPerSecond: rps, Burst: burst, IdleTTLSeconds: 60}}
	return newTestRouterWith(t, cfg, "key")
}

func newTestRouterWith(t *testing.T, cfg *configloader.Config, infuraKey string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	provider := networkdefinition.NewNetworkDefinitionProvider(nopLogger{}, infuraKey)
	svc := service.NewNetworkService(provider, endpoints.NewSecrets(infuraKey, nil), nopLogger{}, m)
	h := NewNetworkHandler(svc, networkdefinition.SupportedChainIDs(), networkdefinition.AvailableNetworks(), nopLogger{})

	r, err := SetupRouter(h, cfg, m, reg)
	require.NoError(t, err)
	return r
}

func doGet(r http.Handler, path string) *httptest.ResponseRecorder {
	return doGetFrom(r, path, "")
}

func doGetFrom(r http.Handler, path, forwardedFor string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestNetworkRoutes(t *testing.T) {
	router := newTestRouter(t, 1000, 1000)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"list", "/api/v1/networks", http.StatusOK, `"supportedChainIds":[1,5,137,1337,2019,2151,80001,42161,421613]`},
		{"by name", "/api/v1/networks/mumbai", http.StatusOK, `"id":80001`},
		{"unknown name", "/api/v1/networks/solana", http.StatusNotFound, `"network":"unsupported"`},
		{"sentinel name", "/api/v1/networks/unsupported", http.StatusNotFound, `unsupported network`},
		{"by chain id", "/api/v1/chains/137", http.StatusOK, `"network":"polygon"`},
		{"unknown chain id", "/api/v1/chains/9999999", http.StatusNotFound, `unsupported chain id`},
		{"bad chain id", "/api/v1/chains/abc", http.StatusBadRequest, `chain id must be an integer`},
		{"endpoints", "/api/v1/endpoints", http.StatusOK, `"defaultCurrency":"usd"`},
		{"health", "/healthz", http.StatusOK, ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(router, tt.path)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestListNetworksPayload(t *testing.T) {
	router := newTestRouter(t, 1000, 1000)

	w := doGet(router, "/api/v1/networks")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Networks []entity.NetworkProfile `json:"networks"`
		} `json:"data"`
		AvailableNetworks []entity.SupportedNetwork `json:"availableNetworks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Networks, len(networkdefinition.SupportedNetworks()))
	assert.Equal(t, networkdefinition.AvailableNetworks(), resp.AvailableNetworks)
}

func TestRateLimit(t *testing.T) {
	router := newTestRouter(t, 0.001, 2)

	assert.Equal(t, http.StatusOK, doGet(router, "/api/v1/endpoints").Code)
	assert.Equal(t, http.StatusOK, doGet(router, "/api/v1/endpoints").Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet(router, "/api/v1/endpoints").Code)

	// Outside the limited group.
	assert.Equal(t, http.StatusOK, doGet(router, "/healthz").Code)
}

func TestRateLimitIgnoresSpoofedForwardedFor(t *testing.T) {
	router := newTestRouter(t, 0.001, 2)

	// httptest requests all come from 192.0.2.1, which is not a trusted proxy.
	assert.Equal(t, http.StatusOK, doGetFrom(router, "/api/v1/endpoints", "203.0.113.1").Code)
	assert.Equal(t, http.StatusOK, doGetFrom(router, "/api/v1/endpoints", "203.0.113.2").Code)
	assert.Equal(t, http.StatusTooManyRequests, doGetFrom(router, "/api/v1/endpoints", "203.0.113.3").Code)
}

func TestRateLimitHonorsTrustedProxy(t *testing.T) {
	cfg := &configloader.Config{
		Server:    configloader.ServerConfig{TrustedProxies: []string{"192.0.2.0/24"}},
		RateLimit: configloader.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1, IdleTTLSeconds: 60},
	}
	router := newTestRouterWith(t, cfg, "key")

	assert.Equal(t, http.StatusOK, doGetFrom(router, "/api/v1/endpoints", "203.0.113.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, doGetFrom(router, "/api/v1/endpoints", "203.0.113.1").Code)
	assert.Equal(t, http.StatusOK, doGetFrom(router, "/api/v1/endpoints", "203.0.113.2").Code)
}

func TestSetupRouterRejectsBadTrustedProxy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &configloader.Config{Server: configloader.ServerConfig{TrustedProxies: []string{"not-an-ip"}}}
	_, err := SetupRouter(&NetworkHandler{}, cfg, nil, prometheus.NewRegistry())
	assert.Error(t, err)
}

func TestIPRateLimiterEvictsIdleClients(t *testing.T) {
	l := newIPRateLimiter(1, 1, 200*time.Millisecond)
	for i := range 100 {
		l.get(fmt.Sprintf("198.51.100.%d", i))
	}
	require.Equal(t, 100, l.store.ItemCount())

	time.Sleep(300 * time.Millisecond)
	l.store.DeleteExpired()
	assert.Equal(t, 0, l.store.ItemCount())
}

func TestIPRateLimiterReusesBucket(t *testing.T) {
	l := newIPRateLimiter(0.001, 1, time.Minute)
	assert.True(t, l.get("198.51.100.7").Allow())
	assert.False(t, l.get("198.51.100.7").Allow())
	assert.True(t, l.get("198.51.100.8").Allow())
}

func TestListNetworksWarnsWithoutInfuraKey(t *testing.T) {
	cfg := &configloader.Config{RateLimit: configloader.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000, IdleTTLSeconds: 60}}
	router := newTestRouterWith(t, cfg, "")

	w := doGet(router, "/api/v1/networks")
	require.Equal(t, http.StatusOK, w.Code)

	var resp APINetworksResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Warnings)
	assert.Contains(t, strings.Join(resp.Warnings, "\n"), "ethereum")

	var noticed []entity.SupportedNetwork
	for _, p := range resp.Data.Networks {
		if p.RPCNotice != "" {
			assert.Empty(t, p.RPC, p.Network)
			noticed = append(noticed, p.Network)
		}
	}
	assert.ElementsMatch(t, []entity.SupportedNetwork{
		entity.NetworkEthereum, entity.NetworkGoerli, entity.NetworkPolygon, entity.NetworkMumbai,
	}, noticed)

	w = doGet(router, "/api/v1/networks/bosagora")
	assert.NotContains(t, w.Body.String(), "rpcNotice")
}

func TestListNetworksNoWarningsWithInfuraKey(t *testing.T) {
	router := newTestRouter(t, 1000, 1000)

	w := doGet(router, "/api/v1/networks")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"warnings"`)
	assert.NotContains(t, w.Body.String(), `"rpcNotice"`)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t, 1000, 1000)

	doGet(router, "/api/v1/networks/goerli")
	w := doGet(router, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.Contains(body, `dao_networks_lookups_total{kind="name",outcome="found"} 1`), body)
	assert.Contains(t, body, `dao_networks_http_requests_total{route="/api/v1/networks/:network",status="200"} 1`)
}
