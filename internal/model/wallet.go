package model

// EncryptRequest represents request for POST /wallet/encrypt
type EncryptRequest struct {
	Mnemonic   string `json:"mnemonic" binding:"required"`
	Passphrase string `json:"passphrase" binding:"required"`
}

// EncryptResponse represents response for POST /wallet/encrypt
type EncryptResponse struct {
	Keystore string `json:"keystore"`
}

// DecryptRequest represents request for POST /wallet/decrypt
type DecryptRequest struct {
	Keystore   string `json:"keystore" binding:"required"`
	Passphrase string `json:"passphrase" binding:"required"`
}

// WalletResponse represents a decrypted or restored wallet
type WalletResponse struct {
	Address   string `json:"address"`
	PublicKey string `json:"publicKey"`
	Mnemonic  string `json:"mnemonic,omitempty"`
}
