package network

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/status-im/wc-signer/params"
)

// EIP155Namespace is the CAIP-2 namespace of EVM chains.
const EIP155Namespace = "eip155"

var (
	ErrInvalidCAIP2         = errors.New("CAIP-2 string is not valid")
	ErrUnsupportedNamespace = errors.New("CAIP-2 namespace is not eip155")
)

// Manager is a read-only lookup table of networks keyed by chain id.
type Manager struct {
	networks map[uint64]*params.Network
}

func NewManager(networks []params.Network) *Manager {
	nm := &Manager{
		networks: make(map[uint64]*params.Network, len(networks)),
	}
	for i := range networks {
		n := networks[i]
		nm.networks[n.ChainID] = &n
	}
	return nm
}

// Find returns a copy of the network with the given chain id, nil when unknown.
func (nm *Manager) Find(chainID uint64) *params.Network {
	n, ok := nm.networks[chainID]
	if !ok {
		return nil
	}
	cpy := *n
	return &cpy
}

// FindByCAIP2 resolves a CAIP-2 chain reference such as "eip155:1".
func (nm *Manager) FindByCAIP2(caip2 string) *params.Network {
	chainID, err := ParseCAIP2ChainID(caip2)
	if err != nil {
		return nil
	}
	return nm.Find(chainID)
}

// Get returns networks sorted by chain id.
func (nm *Manager) Get(onlyEnabled bool) []*params.Network {
	res := make([]*params.Network, 0, len(nm.networks))
	for _, n := range nm.networks {
		if onlyEnabled && !n.Enabled {
			continue
		}
		cpy := *n
		res = append(res, &cpy)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].ChainID < res[j].ChainID
	})
	return res
}

// ParseCAIP2ChainID extracts the numeric chain id of an eip155 CAIP-2 string.
func ParseCAIP2ChainID(str string) (uint64, error) {
	caip2 := strings.Split(str, ":")
	if len(caip2) != 2 {
		return 0, ErrInvalidCAIP2
	}
	if caip2[0] != EIP155Namespace {
		return 0, ErrUnsupportedNamespace
	}

	chainID, err := strconv.ParseUint(caip2[1], 10, 64)
	if err != nil {
		return 0, errors.Join(ErrInvalidCAIP2, err)
	}
	return chainID, nil
}

// CAIP2 formats an eip155 chain id as CAIP-2.
func CAIP2(chainID uint64) string {
	return EIP155Namespace + ":" + strconv.FormatUint(chainID, 10)
}
