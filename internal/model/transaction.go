package model

// SignTransactionRequest represents request for POST /wallet/sign-transaction.
// Value is in ETH, fees are in gwei; both are decimal strings converted
// without float precision loss. Type 2 (or any fee cap set) selects an
// EIP-1559 dynamic-fee transaction.
type SignTransactionRequest struct {
	Mnemonic     string `json:"mnemonic" binding:"required"`
	To           string `json:"to" binding:"required"`
	Value        string `json:"value"`
	Gas          uint64 `json:"gas"`
	GasPrice     string `json:"gasPrice,omitempty"`
	MaxFeePerGas string `json:"maxFeePerGas,omitempty"`
	MaxPriority  string `json:"maxPriorityFeePerGas,omitempty"`
	Nonce        uint64 `json:"nonce"`
	Data         string `json:"data,omitempty"`
	ChainID      uint64 `json:"chainId" binding:"required"`
	Type         uint8  `json:"type,omitempty"`
}

// SignTransactionResponse represents response for POST /wallet/sign-transaction
type SignTransactionResponse struct {
	RawTransaction string `json:"rawTransaction"`
}
