package networkdefinition

import (
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"strconv"

	"dao_networks/internal/domain/entity"

	"github.com/ethereum/go-ethereum/params"
)

var allowedRPCSchemes = map[string]struct{}{ //nolint:gochecknoglobals
	"http":  {},
	"https": {},
	"ws":    {},
	"wss":   {},
}

// gethNetworkNames maps our identifiers to the names go-ethereum registers for the same chains.
var gethNetworkNames = map[entity.SupportedNetwork]string{ //nolint:gochecknoglobals
	entity.NetworkEthereum: "mainnet",
}

// Validate checks the invariants of the descriptor table and returns every violation joined together.
func Validate() error {
	return validateDefinitions(chainMetadata)
}

func validateDefinitions(defs []entity.NetworkDefinition) error {
	var errs []error
	seenIDs := make(map[int64]entity.SupportedNetwork, len(defs))
	seenNames := make(map[entity.SupportedNetwork]struct{}, len(defs))

	for _, def := range defs {
		if def.Network != entity.NetworkUnsupported && !IsSupportedNetwork(def.Network.String()) {
			errs = append(errs, fmt.Errorf("network %q is not a supported network identifier", def.Network))
		}
		if _, dup := seenNames[def.Network]; dup {
			errs = append(errs, fmt.Errorf("network %q is defined more than once", def.Network))
		}
		seenNames[def.Network] = struct{}{}

		if def.NativeCurrency.Decimals < 0 {
			errs = append(errs, fmt.Errorf("network %q has negative decimals %d", def.Network, def.NativeCurrency.Decimals))
		}

		// The sentinel shares chain ID 1 and has no endpoints.
		if def.Network == entity.NetworkUnsupported {
			continue
		}

		if !IsSupportedChainID(def.ID) {
			errs = append(errs, fmt.Errorf("network %q uses chain id %d which is not in the supported list", def.Network, def.ID))
		}
		if other, dup := seenIDs[def.ID]; dup {
			errs = append(errs, fmt.Errorf("chain id %d is shared by %q and %q", def.ID, other, def.Network))
		}
		seenIDs[def.ID] = def.Network

		if len(def.RPC) == 0 {
			errs = append(errs, fmt.Errorf("network %q has no RPC endpoints", def.Network))
		}
		for _, raw := range def.RPC {
			u, err := url.Parse(raw)
			if err != nil {
				errs = append(errs, fmt.Errorf("network %q has malformed RPC url %q: %w", def.Network, raw, err))
				continue
			}
			if _, ok := allowedRPCSchemes[u.Scheme]; !ok {
				errs = append(errs, fmt.Errorf("network %q has RPC url %q with unsupported scheme %q", def.Network, raw, u.Scheme))
			}
		}

		errs = append(errs, checkAgainstGeth(def)...)
	}

	return errors.Join(errs...)
}

// checkAgainstGeth compares a descriptor with the chain configs compiled into go-ethereum.
func checkAgainstGeth(def entity.NetworkDefinition) []error {
	var errs []error

	gethName, known := params.NetworkNames[strconv.FormatInt(def.ID, 10)]
	want, mapped := gethNetworkNames[def.Network]
	switch {
	case known && gethName != want:
		errs = append(errs, fmt.Errorf("network %q uses chain id %d, which go-ethereum registers as %q", def.Network, def.ID, gethName))
	case mapped && !known:
		errs = append(errs, fmt.Errorf("network %q uses chain id %d, which go-ethereum does not register as %q", def.Network, def.ID, want))
	}

	if def.NativeCurrency.Symbol == "ETH" && def.NativeCurrency.Decimals >= 0 {
		unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(def.NativeCurrency.Decimals)), nil)
		if unit.Cmp(big.NewInt(params.Ether)) != 0 {
			errs = append(errs, fmt.Errorf("network %q has ETH with %d decimals, one ether is %d wei", def.Network, def.NativeCurrency.Decimals, int64(params.Ether)))
		}
	}
	return errs
}
