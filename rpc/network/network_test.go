package network

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/status-im/wc-signer/params"
)

func TestManagerFind(t *testing.T) {
	nm := NewManager(params.DefaultNetworks())

	mainnet := nm.Find(params.MainnetChainID)
	require.NotNil(t, mainnet)
	require.Equal(t, "Ethereum", mainnet.ChainName)

	mainnet.ChainName = "mutated"
	require.Equal(t, "Ethereum", nm.Find(params.MainnetChainID).ChainName)

	require.Nil(t, nm.Find(999999))
}

func TestManagerFindByCAIP2(t *testing.T) {
	nm := NewManager(params.DefaultNetworks())

	require.Equal(t, "Optimism", nm.FindByCAIP2("eip155:10").ChainName)
	require.Nil(t, nm.FindByCAIP2("eip155:999999"))
	require.Nil(t, nm.FindByCAIP2("solana:4sGjMW1sUnHzSxGspuhpqLDx6wiyjNtZ"))
	require.Nil(t, nm.FindByCAIP2("garbage"))
}

func TestManagerGet(t *testing.T) {
	nm := NewManager([]params.Network{
		{ChainID: 10, ChainName: "Optimism", Enabled: true},
		{ChainID: 1, ChainName: "Ethereum", Enabled: true},
		{ChainID: 5, ChainName: "Goerli", Enabled: false},
	})

	all := nm.Get(false)
	require.Len(t, all, 3)
	require.Equal(t, uint64(1), all[0].ChainID)
	require.Equal(t, uint64(5), all[1].ChainID)
	require.Equal(t, uint64(10), all[2].ChainID)

	enabled := nm.Get(true)
	require.Len(t, enabled, 2)
}

func TestParseCAIP2ChainID(t *testing.T) {
	testCases := []struct {
		in      string
		want    uint64
		wantErr error
	}{
		{in: "eip155:1", want: 1},
		{in: "eip155:11155111", want: 11155111},
		{in: "eip155", wantErr: ErrInvalidCAIP2},
		{in: "eip155:1:2", wantErr: ErrInvalidCAIP2},
		{in: "eip155:abc", wantErr: ErrInvalidCAIP2},
		{in: "cosmos:cosmoshub-4", wantErr: ErrUnsupportedNamespace},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCAIP2ChainID(tc.in)
			if tc.wantErr != nil {
				require.True(t, errors.Is(err, tc.wantErr), err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestCAIP2(t *testing.T) {
	require.Equal(t, "eip155:137", CAIP2(137))
}
