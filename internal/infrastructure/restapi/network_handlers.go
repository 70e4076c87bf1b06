package restapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"dao_networks/internal/app/port"
	"dao_networks/internal/domain/entity"

	"github.com/gin-gonic/gin"
)

// APIErrorResponse is returned with every non-2xx status.
type APIErrorResponse struct {
	Error   string                  `json:"error"`
	Network entity.SupportedNetwork `json:"network,omitempty"`
}

// APINetworksResponse wraps the list of network profiles.
type APINetworksResponse struct {
	Data struct {
		Networks []entity.NetworkProfile `json:"networks"`
	} `json:"data"`
	SupportedChainIDs []int64                   `json:"supportedChainIds"`
	AvailableNetworks []entity.SupportedNetwork `json:"availableNetworks"`
	Warnings          []string                  `json:"warnings,omitempty"`
}

// NetworkHandler serves the network catalog.
type NetworkHandler struct {
	networkService    port.NetworkService
	supportedChainIDs []int64
	availableNetworks []entity.SupportedNetwork
	logger            port.Logger
}

// NewNetworkHandler creates a new NetworkHandler.
func NewNetworkHandler(ns port.NetworkService, chainIDs []int64, available []entity.SupportedNetwork, l port.Logger) *NetworkHandler {
	return &NetworkHandler{
		networkService:    ns,
		supportedChainIDs: chainIDs,
		availableNetworks: available,
		logger:            l,
	}
}

// ListNetworksHandler returns every supported network profile.
func (h *NetworkHandler) ListNetworksHandler(c *gin.Context) {
	var resp APINetworksResponse
	resp.Data.Networks = h.networkService.Profiles()
	resp.SupportedChainIDs = h.supportedChainIDs
	resp.AvailableNetworks = h.availableNetworks
	for _, p := range resp.Data.Networks {
		if p.RPCNotice != "" {
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("%s: %s", p.Network, p.RPCNotice))
		}
	}
	c.JSON(http.StatusOK, resp)
}

// GetNetworkHandler returns the profile of :network.
func (h *NetworkHandler) GetNetworkHandler(c *gin.Context) {
	profile, err := h.networkService.Profile(c.Param("network"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetChainHandler returns the profile of the network with chain id :chainId.
func (h *NetworkHandler) GetChainHandler(c *gin.Context) {
	chainID, err := strconv.ParseInt(c.Param("chainId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, APIErrorResponse{Error: "chain id must be an integer"})
		return
	}
	profile, err := h.networkService.ProfileByChainID(chainID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetEndpointsHandler returns the network independent endpoints.
func (h *NetworkHandler) GetEndpointsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.networkService.Endpoints())
}

func (h *NetworkHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrUnsupportedNetwork), errors.Is(err, entity.ErrUnsupportedChainID):
		c.JSON(http.StatusNotFound, APIErrorResponse{Error: err.Error(), Network: entity.NetworkUnsupported})
	default:
		h.logger.Error("Unexpected error while serving network request", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, APIErrorResponse{Error: "internal error"})
	}
}
