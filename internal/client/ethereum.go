package client

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"ewt/internal/config"
)

// chainNames maps well-known chain ids to human-readable network names.
var chainNames = map[uint64]string{
	1:        "mainnet",
	5:        "goerli",
	17000:    "holesky",
	11155111: "sepolia",
	560048:   "hoodi",
}

// EthereumClient is a client for working with an Ethereum JSON-RPC node
type EthereumClient struct {
	rpcClient *ethclient.Client
	rpcURL    string
}

// NewEthereumClient creates a new Ethereum client for the configured RPC endpoint.
func NewEthereumClient() (*EthereumClient, error) {
	rpcURL := config.GetEthereumRPCURL()

	rpcClient, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", rpcURL, err)
	}

	return &EthereumClient{
		rpcClient: rpcClient,
		rpcURL:    rpcURL,
	}, nil
}

// Provider returns the underlying ethclient instance.
func (c *EthereumClient) Provider() *ethclient.Client {
	return c.rpcClient
}

// Network returns the chain id reported by the node.
func (c *EthereumClient) Network(ctx context.Context) (*big.Int, error) {
	chainID, err := c.rpcClient.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}
	return chainID, nil
}

// NetworkName returns the human-readable name for a chain id, or "unknown".
func NetworkName(chainID *big.Int) string {
	if chainID == nil {
		return "unknown"
	}
	if name, ok := chainNames[chainID.Uint64()]; ok {
		return name
	}
	return "unknown"
}

// GetBalanceWei gets the latest ETH balance of an address in wei
func (c *EthereumClient) GetBalanceWei(ctx context.Context, address string) (*big.Int, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid Ethereum address: %s", address)
	}

	balance, err := c.rpcClient.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	return balance, nil
}
