package networkdefinition

import (
	"fmt"
	"os"
	"strings"

	"dao_networks/internal/app/port"
	"dao_networks/internal/domain/entity"
)

// NetworkDefinitionProvider provides network definitions with RPC URLs resolved against the injected secrets.
// It is built once at start-up and never mutated afterwards.
type NetworkDefinitionProvider struct {
	logger port.Logger
	defs   []entity.NetworkDefinition
	byName map[entity.SupportedNetwork]int
}

// NewNetworkDefinitionProvider creates a new NetworkDefinitionProvider.
// RPC URLs that need the Infura project ID are dropped when infuraAPIKey is empty.
func NewNetworkDefinitionProvider(log port.Logger, infuraAPIKey string) *NetworkDefinitionProvider {
	p := &NetworkDefinitionProvider{
		logger: log,
		defs:   AllChainMetadata(),
		byName: make(map[entity.SupportedNetwork]int, len(chainMetadata)),
	}

	if infuraAPIKey == "" {
		p.logger.Warn("Infura project ID is not set, Infura RPC endpoints will be omitted")
	}

	for i := range p.defs {
		def := &p.defs[i]
		def.RPC = resolveRPCURLs(def.RPC, infuraAPIKey)
		if len(def.RPC) == 0 && def.Network != entity.NetworkUnsupported {
			p.logger.Warn(fmt.Sprintf("Network '%s' has no usable RPC endpoint", def.Network))
		}
		p.byName[def.Network] = i
		p.logger.Debug(fmt.Sprintf("  - Network: %s (ChainID: %d, RPC endpoints: %d)", def.Network, def.ID, len(def.RPC)))
	}

	p.logger.Info(fmt.Sprintf("NetworkDefinitionProvider initialized. Known networks: %d", len(p.defs)))
	return p
}

func resolveRPCURLs(urls []string, infuraAPIKey string) []string {
	resolved := make([]string, 0, len(urls))
	for _, u := range urls {
		if strings.Contains(u, InfuraKeyPlaceholder) {
			if infuraAPIKey == "" {
				continue
			}
			u = os.Expand(u, func(key string) string {
				if key == InfuraKeyVar {
					return infuraAPIKey
				}
				return ""
			})
		}
		resolved = append(resolved, u)
	}
	return resolved
}

// GetAllNetworkDefinitions returns every known definition, including the unsupported placeholder, in lookup order.
func (p *NetworkDefinitionProvider) GetAllNetworkDefinitions() []entity.NetworkDefinition {
	if p == nil {
		return []entity.NetworkDefinition{}
	}
	out := make([]entity.NetworkDefinition, len(p.defs))
	for i, def := range p.defs {
		out[i] = entity.NetworkDefinition{Network: def.Network, ChainData: def.ChainData.Clone()}
	}
	return out
}

// GetNetworkDefinitionByName returns the definition of a recognized network.
// The unsupported sentinel is reported as not found.
func (p *NetworkDefinitionProvider) GetNetworkDefinitionByName(name string) (entity.NetworkDefinition, bool) {
	if p == nil || !IsSupportedNetwork(name) {
		return entity.NetworkDefinition{}, false
	}
	i, ok := p.byName[entity.SupportedNetwork(name)]
	if !ok {
		return entity.NetworkDefinition{}, false
	}
	def := p.defs[i]
	return entity.NetworkDefinition{Network: def.Network, ChainData: def.ChainData.Clone()}, true
}

// GetNetworkDefinitionByChainID returns the definition of the network with the given chain ID.
func (p *NetworkDefinitionProvider) GetNetworkDefinitionByChainID(chainID int64) (entity.NetworkDefinition, bool) {
	if p == nil {
		return entity.NetworkDefinition{}, false
	}
	network, ok := SupportedNetworkByChainID(chainID)
	if !ok {
		return entity.NetworkDefinition{}, false
	}
	return p.GetNetworkDefinitionByName(network.String())
}
