package service

import (
	"fmt"
	"slices"
	"strings"

	"dao_networks/internal/app/port"
	"dao_networks/internal/domain/entity"
	networkdefinition "dao_networks/internal/infrastructure/network/definition"
	"dao_networks/internal/infrastructure/network/endpoints"
	"dao_networks/internal/pkg/metrics"
)

// networkServiceImpl implements port.NetworkService.
type networkServiceImpl struct {
	networkProvider port.NetworkDefinitionProvider
	secrets         endpoints.Secrets
	logger          port.Logger
	metrics         *metrics.Metrics
}

// NewNetworkService creates a new instance of networkServiceImpl. m may be nil.
func NewNetworkService(
	np port.NetworkDefinitionProvider,
	secrets endpoints.Secrets,
	l port.Logger,
	m *metrics.Metrics,
) port.NetworkService {
	s := &networkServiceImpl{
		networkProvider: np,
		secrets:         secrets,
		logger:          l,
		metrics:         m,
	}
	l.Info("NetworkService initialized.")
	return s
}

// Profiles returns the profile of every supported network. The unsupported placeholder is skipped.
func (s *networkServiceImpl) Profiles() []entity.NetworkProfile {
	defs := s.networkProvider.GetAllNetworkDefinitions()
	profiles := make([]entity.NetworkProfile, 0, len(defs))
	for _, def := range defs {
		if def.Network == entity.NetworkUnsupported {
			continue
		}
		profiles = append(profiles, s.buildProfile(def))
	}
	return profiles
}

// Profile returns the profile of the network with the given identifier.
func (s *networkServiceImpl) Profile(name string) (entity.NetworkProfile, error) {
	def, ok := s.networkProvider.GetNetworkDefinitionByName(name)
	s.metrics.ObserveLookup("name", ok)
	if !ok {
		s.logger.Debug("Network lookup by name missed", "network", name)
		return entity.NetworkProfile{}, fmt.Errorf("network %q: %w", name, entity.ErrUnsupportedNetwork)
	}
	return s.buildProfile(def), nil
}

// ProfileByChainID returns the profile of the network with the given chain ID.
func (s *networkServiceImpl) ProfileByChainID(chainID int64) (entity.NetworkProfile, error) {
	def, ok := s.networkProvider.GetNetworkDefinitionByChainID(chainID)
	s.metrics.ObserveLookup("chain_id", ok)
	if !ok {
		s.logger.Debug("Network lookup by chain id missed", "chainId", chainID)
		return entity.NetworkProfile{}, fmt.Errorf("chain id %d: %w", chainID, entity.ErrUnsupportedChainID)
	}
	return s.buildProfile(def), nil
}

// Endpoints returns the network independent endpoints.
func (s *networkServiceImpl) Endpoints() entity.GlobalEndpoints {
	return endpoints.Global()
}

func (s *networkServiceImpl) buildProfile(def entity.NetworkDefinition) entity.NetworkProfile {
	profile := entity.NetworkProfile{
		NetworkDefinition: def,
		NativeTokenID:     endpoints.NativeTokenID(def.Network),
		IPFSEndpoints:     endpoints.IPFSEndpoints(def.Network),
	}
	if u, ok := endpoints.SubgraphAPIURL(def.Network); ok {
		profile.SubgraphURL = u
	}
	if p, ok := endpoints.AssetPlatform(def.Network); ok {
		profile.AssetPlatform = p
	}
	_, profile.AlchemyKeyProvided = s.secrets.AlchemyAPIKey(def.Network)
	if len(def.RPC) == 0 && needsInfuraKey(def.Network) {
		profile.RPCNotice = RPCNoticeMissingInfuraKey
	}
	return profile
}

// RPCNoticeMissingInfuraKey is set on profiles whose only RPC endpoints are Infura ones while no project ID is configured.
const RPCNoticeMissingInfuraKey = "no RPC endpoint available: Infura project ID is not configured"

func needsInfuraKey(network entity.SupportedNetwork) bool {
	raw, ok := networkdefinition.ChainMetadata(network)
	if !ok {
		return false
	}
	return slices.ContainsFunc(raw.RPC, func(u string) bool {
		return strings.Contains(u, networkdefinition.InfuraKeyPlaceholder)
	})
}
