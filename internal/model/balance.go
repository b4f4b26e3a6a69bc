package model

// BalanceResponse represents response for GET /wallet/balance
type BalanceResponse struct {
	Address string `json:"address"`
	ETH     string `json:"eth"`
	Rate    string `json:"rate"`
	USD     string `json:"eth_amount_in_usd"`
}
