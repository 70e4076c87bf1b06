package networkdefinition

import (
	"slices"

	"dao_networks/internal/domain/entity"
)

// InfuraKeyPlaceholder marks RPC URLs that need the Infura project ID. It is expanded by the Provider.
const InfuraKeyPlaceholder = "${" + InfuraKeyVar + "}"

// InfuraKeyVar is the variable name used inside InfuraKeyPlaceholder.
const InfuraKeyVar = "INFURA_API_KEY"

const (
	ethereumLogo = "https://assets.coingecko.com/coins/images/279/large/ethereum.png?1595348880"
	maticLogo    = "https://assets.coingecko.com/coins/images/4713/large/matic-token-icon.png?1624446912"
	arbitrumLogo = "https://bridge.arbitrum.io/logo.png"
	boaLogo      = "https://file.bosagora.io/bosagora.png"
)

var ( //nolint:gochecknoglobals // Immutable lookup tables, only exposed through copies
	supportedChainIDs = []int64{1, 5, 137, 1337, 2019, 2151, 80001, 42161, 421613}

	supportedNetworks = []entity.SupportedNetwork{
		entity.NetworkEthereum,
		entity.NetworkGoerli,
		entity.NetworkPolygon,
		entity.NetworkMumbai,
		entity.NetworkArbitrum,
		entity.NetworkArbitrumTest,
		entity.NetworkBosagora,
		entity.NetworkAthens,
		entity.NetworkLocalhost,
	}

	// Networks offered for new DAOs.
	availableNetworks = []entity.SupportedNetwork{
		entity.NetworkEthereum,
		entity.NetworkGoerli,
		entity.NetworkPolygon,
		entity.NetworkMumbai,
		entity.NetworkLocalhost,
	}

	ether       = entity.NativeCurrency{Name: "Ether", Symbol: "ETH", Decimals: 18}
	goerliEther = entity.NativeCurrency{Name: "Goerli Ether", Symbol: "ETH", Decimals: 18}
	matic       = entity.NativeCurrency{Name: "MATIC", Symbol: "MATIC", Decimals: 18}
	boa         = entity.NativeCurrency{Name: "BOA", Symbol: "BOA", Decimals: 18}
)

// chainMetadata is ordered; lookups by chain ID return the first match in this order.
var chainMetadata = []entity.NetworkDefinition{ //nolint:gochecknoglobals // Global for definitions
	{
		Network: entity.NetworkArbitrum,
		ChainData: entity.ChainData{
			ID:             42161,
			Name:           "Arbitrum One",
			Domain:         entity.DomainL2,
			Logo:           arbitrumLogo,
			Explorer:       "https://arbiscan.io/",
			RPC:            []string{"https://arb1.arbitrum.io/rpc", "wss://arb1.arbitrum.io/ws"},
			NativeCurrency: ether,
			EtherscanAPI:   "https://api.arbiscan.io/api",
		},
	},
	{
		Network: entity.NetworkEthereum,
		ChainData: entity.ChainData{
			ID:       1,
			Name:     "Ethereum",
			Domain:   entity.DomainL1,
			Logo:     ethereumLogo,
			Explorer: "https://etherscan.io/",
			RPC: []string{
				"https://mainnet.infura.io/v3/" + InfuraKeyPlaceholder,
				"wss://mainnet.infura.io/ws/v3/" + InfuraKeyPlaceholder,
			},
			NativeCurrency: ether,
			EtherscanAPI:   "https://api.etherscan.io/api",
		},
	},
	{
		Network: entity.NetworkPolygon,
		ChainData: entity.ChainData{
			ID:       137,
			Name:     "Polygon",
			Domain:   entity.DomainL2,
			Logo:     maticLogo,
			Explorer: "https://polygonscan.com/",
			RPC: []string{
				"https://polygon-mainnet.infura.io/v3/" + InfuraKeyPlaceholder,
				"wss://polygon-mainnet.infura.io/ws/v3/" + InfuraKeyPlaceholder,
			},
			NativeCurrency: matic,
			EtherscanAPI:   "https://api.polygonscan.com/api",
		},
	},
	{
		Network: entity.NetworkArbitrumTest,
		ChainData: entity.ChainData{
			ID:             421613,
			Name:           "Arbitrum Goerli",
			Domain:         entity.DomainL2,
			Logo:           arbitrumLogo,
			Explorer:       "https://goerli-rollup-explorer.arbitrum.io/",
			Testnet:        true,
			RPC:            []string{"https://goerli-rollup.arbitrum.io/rpc"},
			NativeCurrency: goerliEther,
			EtherscanAPI:   "https://api-goerli.arbiscan.io/api",
		},
	},
	{
		Network: entity.NetworkGoerli,
		ChainData: entity.ChainData{
			ID:       5,
			Name:     "Goerli",
			Domain:   entity.DomainL1,
			Logo:     ethereumLogo,
			Explorer: "https://goerli.etherscan.io/",
			Testnet:  true,
			RPC: []string{
				"https://goerli.infura.io/v3/" + InfuraKeyPlaceholder,
				"wss://goerli.infura.io/ws/v3/" + InfuraKeyPlaceholder,
			},
			NativeCurrency: goerliEther,
			EtherscanAPI:   "https://api-goerli.etherscan.io/api",
		},
	},
	{
		Network: entity.NetworkMumbai,
		ChainData: entity.ChainData{
			ID:       80001,
			Name:     "Mumbai",
			Domain:   entity.DomainL2,
			Logo:     maticLogo,
			Explorer: "https://mumbai.polygonscan.com/",
			Testnet:  true,
			RPC: []string{
				"https://polygon-mumbai.infura.io/v3/" + InfuraKeyPlaceholder,
				"wss://polygon-mumbai.infura.io/ws/v3/" + InfuraKeyPlaceholder,
			},
			NativeCurrency: matic,
			EtherscanAPI:   "https://api-testnet.polygonscan.com/api",
		},
	},
	{
		Network: entity.NetworkBosagora,
		ChainData: entity.ChainData{
			ID:             2151,
			Name:           "Bosagora",
			Domain:         entity.DomainL2,
			Logo:           boaLogo,
			Explorer:       "https://www.boascan.io/",
			Testnet:        true,
			RPC:            []string{"https://mainnet.bosagora.io"},
			NativeCurrency: boa,
		},
	},
	{
		Network: entity.NetworkAthens,
		ChainData: entity.ChainData{
			ID:             2019,
			Name:           "Athens",
			Domain:         entity.DomainL2,
			Logo:           boaLogo,
			Explorer:       "https://testnet.boascan.io/",
			Testnet:        true,
			RPC:            []string{"https://testnet.bosagora.io"},
			NativeCurrency: boa,
		},
	},
	{
		Network: entity.NetworkLocalhost,
		ChainData: entity.ChainData{
			ID:             1337,
			Name:           "Localhost",
			Domain:         entity.DomainL2,
			Logo:           boaLogo,
			Testnet:        true,
			RPC:            []string{"http://localhost:8485"},
			NativeCurrency: boa,
		},
	},
	{
		// Fallback placeholder. Reuses chain ID 1 on purpose.
		Network: entity.NetworkUnsupported,
		ChainData: entity.ChainData{
			ID:             1,
			Name:           "Unsupported",
			Domain:         entity.DomainL1,
			RPC:            []string{},
			NativeCurrency: entity.NativeCurrency{Decimals: 18},
		},
	},
}

// SupportedChainIDs returns the list of chain IDs the application can work with.
func SupportedChainIDs() []int64 {
	return slices.Clone(supportedChainIDs)
}

// IsSupportedChainID reports whether chainID is in the supported list.
func IsSupportedChainID(chainID int64) bool {
	return slices.Contains(supportedChainIDs, chainID)
}

// SupportedNetworks returns the recognized network identifiers. The sentinel is not included.
func SupportedNetworks() []entity.SupportedNetwork {
	return slices.Clone(supportedNetworks)
}

// AvailableNetworks returns the networks on which new DAOs can be created.
func AvailableNetworks() []entity.SupportedNetwork {
	return slices.Clone(availableNetworks)
}

// IsSupportedNetwork reports whether network is a recognized identifier.
func IsSupportedNetwork(network string) bool {
	return slices.Contains(supportedNetworks, entity.SupportedNetwork(network))
}

// ToSupportedNetwork returns network unchanged when recognized and NetworkUnsupported otherwise.
func ToSupportedNetwork(network string) entity.SupportedNetwork {
	if IsSupportedNetwork(network) {
		return entity.SupportedNetwork(network)
	}
	return entity.NetworkUnsupported
}

// SupportedNetworkByChainID returns the network with the given chain id.
// The second value is false when the chain id is not supported.
func SupportedNetworkByChainID(chainID int64) (entity.SupportedNetwork, bool) {
	if !IsSupportedChainID(chainID) {
		return "", false
	}
	for _, def := range chainMetadata {
		if def.ID == chainID {
			return def.Network, true
		}
	}
	return "", false
}

// ChainMetadata returns the raw descriptor of network. RPC URLs may still carry InfuraKeyPlaceholder.
func ChainMetadata(network entity.SupportedNetwork) (entity.ChainData, bool) {
	for _, def := range chainMetadata {
		if def.Network == network {
			return def.ChainData.Clone(), true
		}
	}
	return entity.ChainData{}, false
}

// AllChainMetadata returns a copy of the raw descriptor table in lookup order.
func AllChainMetadata() []entity.NetworkDefinition {
	out := make([]entity.NetworkDefinition, len(chainMetadata))
	for i, def := range chainMetadata {
		out[i] = entity.NetworkDefinition{Network: def.Network, ChainData: def.ChainData.Clone()}
	}
	return out
}
