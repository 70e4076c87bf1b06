// Package endpoints holds the indexer, price-feed and storage endpoints used next to the chain metadata.
package endpoints

import (
	"slices"

	"dao_networks/internal/domain/entity"
)

const (
	FeedbackForm = "https://aragonassociation.atlassian.net/servicedesk/customer/portal/3"

	// CoinGeckoBaseURL is the price-data API root.
	CoinGeckoBaseURL = "https://api.coingecko.com/api/v3"
	DefaultCurrency  = "usd"

	AragonRPC = "mainnet.bosagora.org"

	IPFSEndpointTest  = "https://athens-ipfs-api.dao.bosagora.org/api/v0"
	IPFSEndpointMain0 = "https://mainnet-ipfs-api-0.dao.bosagora.org/api/v0"
	IPFSEndpointMain1 = "https://mainnet-ipfs-api-1.dao.bosagora.org/api/v0"

	// AvatarIPFSURL is the gateway used to resolve avatars.
	AvatarIPFSURL = "https://athens-ipfs-gateway.dao.bosagora.org/ipfs"
)

// Default CoinGecko coin IDs for native tokens.
const (
	NativeTokenIDDefault  = "ethereum"
	NativeTokenIDPolygon  = "matic-network"
	NativeTokenIDBosagora = "boa"
)

// Networks without an entry have no subgraph deployment.
var subgraphAPIURL = map[entity.SupportedNetwork]string{ //nolint:gochecknoglobals
	entity.NetworkEthereum: "https://subgraph.satsuma-prod.com/qHR2wGfc5RLi6/aragon/osx-mainnet/api",
	entity.NetworkGoerli:   "https://subgraph.satsuma-prod.com/qHR2wGfc5RLi6/aragon/osx-goerli/version/v1.0.0/api",
	entity.NetworkPolygon:  "https://subgraph.satsuma-prod.com/qHR2wGfc5RLi6/aragon/osx-polygon/api",
	entity.NetworkMumbai:   "https://subgraph.satsuma-prod.com/qHR2wGfc5RLi6/aragon/osx-mumbai/api",
	entity.NetworkBosagora: "https://mainnet-subgraph-api.dao.bosagora.org/subgraphs/name/aragon/osx-mainnet",
	entity.NetworkAthens:   "https://athens-subgraph-api.dao.bosagora.org/subgraphs/name/aragon/osx-athens",
}

// CoinGecko asset platform keys.
var assetPlatforms = map[entity.SupportedNetwork]string{ //nolint:gochecknoglobals
	entity.NetworkArbitrum: "arbitrum-one",
	entity.NetworkEthereum: "ethereum",
	entity.NetworkPolygon:  "polygon-pos",
}

// Testnets and the local chain price their native token as the matching mainnet coin.
var nativeTokenIDs = map[entity.SupportedNetwork]string{ //nolint:gochecknoglobals
	entity.NetworkPolygon:   NativeTokenIDPolygon,
	entity.NetworkMumbai:    NativeTokenIDPolygon,
	entity.NetworkBosagora:  NativeTokenIDBosagora,
	entity.NetworkAthens:    NativeTokenIDBosagora,
	entity.NetworkLocalhost: NativeTokenIDBosagora,
}

// SubgraphAPIURL returns the subgraph endpoint of network, if it has one.
func SubgraphAPIURL(network entity.SupportedNetwork) (string, bool) {
	u, ok := subgraphAPIURL[network]
	return u, ok
}

// AssetPlatform returns the CoinGecko asset platform of network, if it has one.
func AssetPlatform(network entity.SupportedNetwork) (string, bool) {
	p, ok := assetPlatforms[network]
	return p, ok
}

// NativeTokenID returns the CoinGecko coin ID of the native token of network.
func NativeTokenID(network entity.SupportedNetwork) string {
	if id, ok := nativeTokenIDs[network]; ok {
		return id
	}
	return NativeTokenIDDefault
}

// IPFSEndpoints returns the IPFS API endpoints to pin and fetch DAO metadata on network.
// Only the BOSagora mainnet has dedicated nodes; everything else uses the test node.
func IPFSEndpoints(network entity.SupportedNetwork) []string {
	if network == entity.NetworkBosagora {
		return []string{IPFSEndpointMain0, IPFSEndpointMain1}
	}
	return []string{IPFSEndpointTest}
}

// Global returns the network independent endpoints.
func Global() entity.GlobalEndpoints {
	return entity.GlobalEndpoints{
		FeedbackForm:     FeedbackForm,
		CoinGeckoBaseURL: CoinGeckoBaseURL,
		DefaultCurrency:  DefaultCurrency,
		AragonRPC:        AragonRPC,
		AvatarIPFSURL:    AvatarIPFSURL,
	}
}

// alchemyNetworks are the networks that read an Alchemy key.
var alchemyNetworks = []entity.SupportedNetwork{entity.NetworkPolygon, entity.NetworkMumbai} //nolint:gochecknoglobals

// Secrets carries the API keys injected from the environment.
type Secrets struct {
	InfuraAPIKey string
	alchemy      map[entity.SupportedNetwork]string
}

// NewSecrets builds Secrets. Alchemy keys for networks that do not use Alchemy are ignored, as are empty keys.
func NewSecrets(infuraAPIKey string, alchemyKeys map[entity.SupportedNetwork]string) Secrets {
	s := Secrets{InfuraAPIKey: infuraAPIKey, alchemy: make(map[entity.SupportedNetwork]string)}
	for network, key := range alchemyKeys {
		if key == "" || !slices.Contains(alchemyNetworks, network) {
			continue
		}
		s.alchemy[network] = key
	}
	return s
}

// AlchemyAPIKey returns the Alchemy key of network, if one was provided.
func (s Secrets) AlchemyAPIKey(network entity.SupportedNetwork) (string, bool) {
	key, ok := s.alchemy[network]
	return key, ok
}
