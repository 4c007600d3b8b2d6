package params

// Network describes a chain the wallet can display requests for.
type Network struct {
	ChainID                uint64 `json:"chainId" validate:"required"`
	ChainName              string `json:"chainName" validate:"required"`
	RPCURL                 string `json:"rpcUrl" validate:"omitempty,url"`
	BlockExplorerURL       string `json:"blockExplorerUrl,omitempty"`
	IconURL                string `json:"iconUrl,omitempty"`
	NativeCurrencyName     string `json:"nativeCurrencyName,omitempty"`
	NativeCurrencySymbol   string `json:"nativeCurrencySymbol,omitempty"`
	NativeCurrencyDecimals uint64 `json:"nativeCurrencyDecimals"`
	IsTest                 bool   `json:"isTest"`
	Layer                  uint64 `json:"layer"`
	Enabled                bool   `json:"enabled"`
}

// Chain IDs of the networks shipped by default.
const (
	MainnetChainID  uint64 = 1
	GoerliChainID   uint64 = 5
	OptimismChainID uint64 = 10
	GnosisChainID   uint64 = 100
	PolygonChainID  uint64 = 137
	BaseChainID     uint64 = 8453
	ArbitrumChainID uint64 = 42161
	SepoliaChainID  uint64 = 11155111
)

// DefaultNetworks returns a fresh copy of the built-in EIP-155 chain table.
func DefaultNetworks() []Network {
	return []Network{
		ethNetwork(MainnetChainID, "Ethereum", "https://cloudflare-eth.com/", "https://etherscan.io", false, 1),
		ethNetwork(GoerliChainID, "Ethereum Goerli", "https://rpc.ankr.com/eth_goerli", "https://goerli.etherscan.io", true, 1),
		ethNetwork(SepoliaChainID, "Ethereum Sepolia", "https://rpc.sepolia.org", "https://sepolia.etherscan.io", true, 1),
		ethNetwork(OptimismChainID, "Optimism", "https://mainnet.optimism.io", "https://optimistic.etherscan.io", false, 2),
		ethNetwork(ArbitrumChainID, "Arbitrum", "https://arb1.arbitrum.io/rpc", "https://arbiscan.io", false, 2),
		ethNetwork(BaseChainID, "Base", "https://mainnet.base.org", "https://basescan.org", false, 2),
		{
			ChainID:                PolygonChainID,
			ChainName:              "Polygon",
			RPCURL:                 "https://polygon-rpc.com/",
			BlockExplorerURL:       "https://polygonscan.com",
			NativeCurrencyName:     "MATIC",
			NativeCurrencySymbol:   "MATIC",
			NativeCurrencyDecimals: 18,
			Layer:                  1,
			Enabled:                true,
		},
		{
			ChainID:                GnosisChainID,
			ChainName:              "Gnosis",
			RPCURL:                 "https://rpc.gnosischain.com",
			BlockExplorerURL:       "https://gnosisscan.io",
			NativeCurrencyName:     "xDAI",
			NativeCurrencySymbol:   "XDAI",
			NativeCurrencyDecimals: 18,
			Layer:                  1,
			Enabled:                true,
		},
	}
}

func ethNetwork(chainID uint64, name, rpcURL, explorer string, isTest bool, layer uint64) Network {
	return Network{
		ChainID:                chainID,
		ChainName:              name,
		RPCURL:                 rpcURL,
		BlockExplorerURL:       explorer,
		NativeCurrencyName:     "Ether",
		NativeCurrencySymbol:   "ETH",
		NativeCurrencyDecimals: 18,
		IsTest:                 isTest,
		Layer:                  layer,
		Enabled:                true,
	}
}
