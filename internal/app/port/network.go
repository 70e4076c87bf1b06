package port

import "dao_networks/internal/domain/entity"

// NetworkDefinitionProvider defines the interface for providing network definitions.
type NetworkDefinitionProvider interface {
	// GetAllNetworkDefinitions returns all known network definitions in lookup order.
	GetAllNetworkDefinitions() []entity.NetworkDefinition

	// GetNetworkDefinitionByName returns a specific network definition by its identifier.
	GetNetworkDefinitionByName(name string) (entity.NetworkDefinition, bool)

	// GetNetworkDefinitionByChainID returns the network definition with the given chain ID.
	GetNetworkDefinitionByChainID(chainID int64) (entity.NetworkDefinition, bool)
}

// NetworkService resolves full network profiles for API consumers.
type NetworkService interface {
	Profiles() []entity.NetworkProfile
	Profile(name string) (entity.NetworkProfile, error)
	ProfileByChainID(chainID int64) (entity.NetworkProfile, error)
	Endpoints() entity.GlobalEndpoints
}
