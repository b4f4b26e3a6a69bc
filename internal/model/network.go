package model

// NetworkResponse represents response for GET /network
type NetworkResponse struct {
	ChainID uint64 `json:"chainId"`
	Name    string `json:"name"`
}
