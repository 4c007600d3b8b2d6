package params

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestNewConfigDefaultsAreValid(t *testing.T) {
	c := NewConfig()
	require.NoError(t, c.Validate())
	require.Equal(t, 5*time.Minute, c.SessionRequestTTL())
	require.Equal(t, "localhost:8645", c.HTTPEndpoint())
	require.Len(t, c.Networks, len(DefaultNetworks()))
}

func TestNewConfigFromJSON(t *testing.T) {
	testCases := []struct {
		name     string
		json     string
		checkErr func(*testing.T, error)
		check    func(*testing.T, *Config)
	}{
		{
			name: "overrides defaults",
			json: `{"LogLevel": "DEBUG", "HTTPPort": 9999, "SessionRequestExpiry": 30}`,
			check: func(t *testing.T, c *Config) {
				require.Equal(t, "DEBUG", c.LogLevel)
				require.Equal(t, 9999, c.HTTPPort)
				require.Equal(t, 30*time.Second, c.SessionRequestTTL())
			},
		},
		{
			name: "invalid log level",
			json: `{"LogLevel": "LOUD"}`,
			checkErr: func(t *testing.T, err error) {
				require.Contains(t, err.Error(), "LogLevel")
			},
		},
		{
			name: "relay enabled without url",
			json: `{"RelayConfig": {"Enabled": true}}`,
			checkErr: func(t *testing.T, err error) {
				require.Contains(t, err.Error(), "URL")
			},
		},
		{
			name: "relay with invalid url",
			json: `{"RelayConfig": {"Enabled": true, "URL": "not a url"}}`,
			checkErr: func(t *testing.T, err error) {
				require.Contains(t, err.Error(), "RelayConfig.URL")
			},
		},
		{
			name: "relay disabled ignores url",
			json: `{"RelayConfig": {"Enabled": false}}`,
			check: func(t *testing.T, c *Config) {
				require.False(t, c.RelayConfig.Enabled)
			},
		},
		{
			name: "custom networks replace defaults",
			json: `{"Networks": [{"chainId": 31337, "chainName": "Anvil", "rpcUrl": "http://127.0.0.1:8545"}]}`,
			check: func(t *testing.T, c *Config) {
				require.Len(t, c.Networks, 1)
				require.Equal(t, uint64(31337), c.Networks[0].ChainID)
			},
		},
		{
			name: "network without name",
			json: `{"Networks": [{"chainId": 31337}]}`,
			checkErr: func(t *testing.T, err error) {
				require.Contains(t, err.Error(), "ChainName")
			},
		},
		{
			name: "duplicated chain id",
			json: `{"Networks": [{"chainId": 1, "chainName": "a"}, {"chainId": 1, "chainName": "b"}]}`,
			checkErr: func(t *testing.T, err error) {
				require.Contains(t, err.Error(), "configured twice")
			},
		},
		{
			name: "relay and network errors are reported together",
			json: `{"RelayConfig": {"Enabled": true, "URL": "not a url"}, "Networks": [{"chainId": 1, "chainName": "a"}, {"chainId": 1, "chainName": "b"}]}`,
			checkErr: func(t *testing.T, err error) {
				require.Len(t, multierr.Errors(err), 2)
			},
		},
		{
			name: "unknown field",
			json: `{"NoSuchField": true}`,
			checkErr: func(t *testing.T, err error) {
				require.Contains(t, err.Error(), "NoSuchField")
			},
		},
		{
			name: "zero expiry",
			json: `{"SessionRequestExpiry": 0}`,
			checkErr: func(t *testing.T, err error) {
				require.Contains(t, err.Error(), "SessionRequestExpiry")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewConfigFromJSON(tc.json)
			if tc.checkErr != nil {
				require.Error(t, err)
				tc.checkErr(t, err)
				return
			}
			require.NoError(t, err)
			tc.check(t, c)
		})
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Name": "desk", "LogFile": "signer.log"}`), 0600))

	c, err := LoadConfigFromFile(path)
	require.NoError(t, err)
	require.Equal(t, "desk", c.Name)

	settings := c.LogSettings()
	require.Equal(t, "signer.log", settings.File)
	require.True(t, settings.Enabled)
	require.Equal(t, DefaultLogLevel, settings.Level)

	_, err = LoadConfigFromFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestDefaultNetworksAreCopies(t *testing.T) {
	a := DefaultNetworks()
	a[0].ChainName = "changed"
	require.Equal(t, "Ethereum", DefaultNetworks()[0].ChainName)
}
