package networkdefinition

import (
	"strings"
	"testing"

	"dao_networks/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func TestProviderResolvesInfuraKey(t *testing.T) {
	p := NewNetworkDefinitionProvider(nopLogger{}, "project123")

	def, ok := p.GetNetworkDefinitionByName("ethereum")
	require.True(t, ok)
	assert.Equal(t, []string{
		"https://mainnet.infura.io/v3/project123",
		"wss://mainnet.infura.io/ws/v3/project123",
	}, def.RPC)

	for _, d := range p.GetAllNetworkDefinitions() {
		for _, u := range d.RPC {
			assert.False(t, strings.Contains(u, "${"), u)
		}
	}
}

func TestProviderWithoutInfuraKey(t *testing.T) {
	p := NewNetworkDefinitionProvider(nopLogger{}, "")

	def, ok := p.GetNetworkDefinitionByName("mumbai")
	require.True(t, ok)
	assert.Empty(t, def.RPC)

	def, ok = p.GetNetworkDefinitionByName("arbitrum")
	require.True(t, ok)
	assert.Len(t, def.RPC, 2)
}

func TestProviderLookups(t *testing.T) {
	p := NewNetworkDefinitionProvider(nopLogger{}, "k")

	_, ok := p.GetNetworkDefinitionByName("unsupported")
	assert.False(t, ok)
	_, ok = p.GetNetworkDefinitionByName("solana")
	assert.False(t, ok)

	def, ok := p.GetNetworkDefinitionByChainID(1)
	require.True(t, ok)
	assert.Equal(t, entity.NetworkEthereum, def.Network)

	def, ok = p.GetNetworkDefinitionByChainID(2019)
	require.True(t, ok)
	assert.Equal(t, entity.NetworkAthens, def.Network)
	assert.Equal(t, "BOA", def.NativeCurrency.Symbol)

	_, ok = p.GetNetworkDefinitionByChainID(9999999)
	assert.False(t, ok)

	all := p.GetAllNetworkDefinitions()
	require.NotEmpty(t, all)
	assert.Equal(t, entity.NetworkArbitrum, all[0].Network)
	assert.Equal(t, entity.NetworkUnsupported, all[len(all)-1].Network)

	all[0].RPC[0] = "mutated"
	again, _ := p.GetNetworkDefinitionByName("arbitrum")
	assert.NotEqual(t, "mutated", again.RPC[0])
}

func TestNilProvider(t *testing.T) {
	var p *NetworkDefinitionProvider
	assert.Empty(t, p.GetAllNetworkDefinitions())
	_, ok := p.GetNetworkDefinitionByName("ethereum")
	assert.False(t, ok)
	_, ok = p.GetNetworkDefinitionByChainID(1)
	assert.False(t, ok)
}
