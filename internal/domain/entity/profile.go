package entity

// NetworkProfile is everything a consumer needs to talk to one network:
// chain metadata plus the indexer, price-feed and storage endpoints that belong to it.
type NetworkProfile struct {
	NetworkDefinition
	SubgraphURL        string   `json:"subgraphUrl,omitempty"`
	AssetPlatform      string   `json:"assetPlatform,omitempty"`
	NativeTokenID      string   `json:"nativeTokenId"`
	IPFSEndpoints      []string `json:"ipfsEndpoints"`
	AlchemyKeyProvided bool     `json:"alchemyKeyProvided"`

	// RPCNotice explains why RPC is empty, if it is.
	RPCNotice string `json:"rpcNotice,omitempty"`
}

// GlobalEndpoints are the endpoints that do not depend on a network.
type GlobalEndpoints struct {
	FeedbackForm     string `json:"feedbackForm"`
	CoinGeckoBaseURL string `json:"coinGeckoBaseUrl"`
	DefaultCurrency  string `json:"defaultCurrency"`
	AragonRPC        string `json:"aragonRpc"`
	AvatarIPFSURL    string `json:"avatarIpfsUrl"`
}
