package entity

import "errors"

var (
	// ErrUnsupportedNetwork is returned when a network name is not in the supported set.
	ErrUnsupportedNetwork = errors.New("unsupported network")
	// ErrUnsupportedChainID is returned when a chain ID is not in the supported list.
	ErrUnsupportedChainID = errors.New("unsupported chain id")
)
