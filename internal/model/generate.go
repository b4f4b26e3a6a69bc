package model

// GenerateResponse represents response for POST /wallet/generate
type GenerateResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Address   string `json:"address,omitempty"`
	PublicKey string `json:"publicKey,omitempty"`
	Mnemonic  string `json:"mnemonic,omitempty"`
	QR        string `json:"QR,omitempty"`
}
