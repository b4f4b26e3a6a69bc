package model

// SignMessageRequest represents request for POST /wallet/sign-message
type SignMessageRequest struct {
	Mnemonic string `json:"mnemonic" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

// SignMessageResponse represents response for POST /wallet/sign-message
type SignMessageResponse struct {
	Signature string `json:"signature"`
}

// RecoverSignerRequest represents request for POST /wallet/recover-signer
type RecoverSignerRequest struct {
	Message   string `json:"message" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// RecoverSignerResponse represents response for POST /wallet/recover-signer
type RecoverSignerResponse struct {
	Signer string `json:"signer"`
}

// VerifySignerRequest represents request for POST /wallet/verify-signer
type VerifySignerRequest struct {
	Message   string `json:"message" binding:"required"`
	Signature string `json:"signature" binding:"required"`
	Signer    string `json:"signer" binding:"required"`
}

// VerifySignerResponse represents response for POST /wallet/verify-signer
type VerifySignerResponse struct {
	Valid bool `json:"valid"`
}
