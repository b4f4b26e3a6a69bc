package wallet

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// TransactionRequest describes a transaction to sign. Either GasPrice
// (legacy) or GasFeeCap/GasTipCap (dynamic fee) should be set; a request
// with fee caps or Type 2 produces an EIP-1559 transaction. The request is
// never mutated.
type TransactionRequest struct {
	To        *common.Address
	Value     *big.Int
	Gas       uint64
	GasPrice  *big.Int
	GasFeeCap *big.Int
	GasTipCap *big.Int
	Nonce     uint64
	Data      []byte
	ChainID   *big.Int
	Type      uint8
}

// SignTransaction signs the request with the wallet's key and returns the
// raw RLP-encoded signed transaction, 0x-prefixed.
func (m *Manager) SignTransaction(w Wallet, req *TransactionRequest) (string, error) {
	if req == nil {
		return "", fmt.Errorf("transaction request must not be nil")
	}

	tx := buildTransaction(req)

	signed, err := w.SignTx(tx, types.LatestSignerForChainID(req.ChainID))
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	raw, err := signed.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("failed to encode signed transaction: %w", err)
	}

	return hexutil.Encode(raw), nil
}

// buildTransaction maps the request onto the concrete go-ethereum
// transaction type.
func buildTransaction(req *TransactionRequest) *types.Transaction {
	if req.Type == types.DynamicFeeTxType || req.GasFeeCap != nil || req.GasTipCap != nil {
		return types.NewTx(&types.DynamicFeeTx{
			ChainID:   req.ChainID,
			Nonce:     req.Nonce,
			GasTipCap: req.GasTipCap,
			GasFeeCap: req.GasFeeCap,
			Gas:       req.Gas,
			To:        req.To,
			Value:     req.Value,
			Data:      req.Data,
		})
	}

	return types.NewTx(&types.LegacyTx{
		Nonce:    req.Nonce,
		GasPrice: req.GasPrice,
		Gas:      req.Gas,
		To:       req.To,
		Value:    req.Value,
		Data:     req.Data,
	})
}
