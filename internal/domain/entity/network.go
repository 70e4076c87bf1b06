package entity

// SupportedNetwork is the identifier used as the primary key across all network tables.
type SupportedNetwork string

const (
	NetworkEthereum     SupportedNetwork = "ethereum"
	NetworkGoerli       SupportedNetwork = "goerli"
	NetworkPolygon      SupportedNetwork = "polygon"
	NetworkMumbai       SupportedNetwork = "mumbai"
	NetworkArbitrum     SupportedNetwork = "arbitrum"
	NetworkArbitrumTest SupportedNetwork = "arbitrum-test"
	NetworkBosagora     SupportedNetwork = "bosagora"
	NetworkAthens       SupportedNetwork = "athens"
	NetworkLocalhost    SupportedNetwork = "localhost"

	// NetworkUnsupported is the sentinel returned for unrecognized input.
	NetworkUnsupported SupportedNetwork = "unsupported"
)

// String implements fmt.Stringer.
func (n SupportedNetwork) String() string {
	return string(n)
}

// NetworkDomain classifies a chain as a base layer or a scaling layer.
type NetworkDomain string

const (
	DomainL1 NetworkDomain = "L1 Blockchain"
	DomainL2 NetworkDomain = "L2 Blockchain"
)

// NativeCurrency describes the base asset of a chain.
type NativeCurrency struct {
	Name     string `json:"name" yaml:"name"`
	Symbol   string `json:"symbol" yaml:"symbol"`
	Decimals int    `json:"decimals" yaml:"decimals"`
}

// ChainData holds the metadata of a single network.
// This structure is defined at the domain level to be used across application and infrastructure layers.
type ChainData struct {
	ID             int64          `json:"id" yaml:"id"`
	Name           string         `json:"name" yaml:"name"`
	Domain         NetworkDomain  `json:"domain" yaml:"domain"`
	Testnet        bool           `json:"testnet" yaml:"testnet"`
	Explorer       string         `json:"explorer" yaml:"explorer"`
	Logo           string         `json:"logo" yaml:"logo"`
	RPC            []string       `json:"rpc" yaml:"rpc"`
	NativeCurrency NativeCurrency `json:"nativeCurrency" yaml:"nativeCurrency"`
	EtherscanAPI   string         `json:"etherscanApi" yaml:"etherscanApi"`
}

// Clone returns a deep copy, so the RPC slice is never shared with the caller.
func (c ChainData) Clone() ChainData {
	out := c
	out.RPC = append([]string(nil), c.RPC...)
	if out.RPC == nil {
		out.RPC = []string{}
	}
	return out
}

// NetworkDefinition pairs a descriptor with its identifier.
type NetworkDefinition struct {
	Network SupportedNetwork `json:"network" yaml:"network"`
	ChainData
}
