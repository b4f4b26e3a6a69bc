package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"ewt/internal/client"
	"ewt/internal/config"
	"ewt/internal/handler"
	"ewt/wallet"
)

// SetupRouter sets up router with handlers
func SetupRouter() (http.Handler, error) {
	eth, err := client.NewEthereumClient()
	if err != nil {
		return nil, err
	}

	opts := []wallet.Option{wallet.WithProvider(eth.Provider())}
	if config.GetKeystoreScrypt() == config.ScryptLight {
		opts = append(opts, wallet.WithLightScrypt())
	}
	manager := wallet.NewManager(opts...)

	walletHandler := handler.NewWalletHandler(manager, eth, client.NewCoinGeckoClient())

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet endpoints
	mux.HandleFunc("/wallet/generate", walletHandler.Generate)
	mux.HandleFunc("/wallet/encrypt", walletHandler.Encrypt)
	mux.HandleFunc("/wallet/decrypt", walletHandler.Decrypt)
	mux.HandleFunc("/wallet/sign-message", walletHandler.SignMessage)
	mux.HandleFunc("/wallet/recover-signer", walletHandler.RecoverSigner)
	mux.HandleFunc("/wallet/verify-signer", walletHandler.VerifySigner)
	mux.HandleFunc("/wallet/sign-transaction", walletHandler.SignTransaction)
	mux.HandleFunc("/wallet/balance", walletHandler.GetBalance)

	// Network endpoint
	mux.HandleFunc("/network", walletHandler.GetNetwork)

	return mux, nil
}
