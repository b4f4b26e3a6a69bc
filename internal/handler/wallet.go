package handler

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog/log"
	"github.com/skip2/go-qrcode"

	"ewt/internal/client"
	"ewt/internal/common"
	"ewt/internal/model"
	"ewt/wallet"
)

// WalletHandler holds the wallet manager and network clients
type WalletHandler struct {
	manager *wallet.Manager
	eth     *client.EthereumClient
	rates   *client.CoinGeckoClient
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(manager *wallet.Manager, eth *client.EthereumClient, rates *client.CoinGeckoClient) *WalletHandler {
	return &WalletHandler{
		manager: manager,
		eth:     eth,
		rates:   rates,
	}
}

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError writes the error as JSON; caller-side failures get 400,
// everything else 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if isCallerError(err) {
		status = http.StatusBadRequest
	} else {
		log.Error().Err(err).Msg("wallet operation failed")
	}
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func isCallerError(err error) bool {
	for _, sentinel := range []error{
		wallet.ErrInvalidPassphrase,
		wallet.ErrEmptyEncryptedWallet,
		wallet.ErrEmptyPassphrase,
		wallet.ErrFailedToDecrypt,
		wallet.ErrEmptyMessageToSign,
		wallet.ErrEmptyMessage,
		wallet.ErrEmptySignature,
		wallet.ErrEmptySigner,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// Generate handles POST /wallet/generate
// @Summary      Generate new wallet
// @Description  Generates a new HD wallet (12-word mnemonic, m/44'/60'/0'/0/0)
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Success      200  {object}  model.GenerateResponse
// @Router       /wallet/generate [post]
func (h *WalletHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	newWallet, err := h.manager.GenerateWallet()
	if err != nil {
		writeError(w, err)
		return
	}

	qrCode, err := generateQRCode(newWallet.AddressHex())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success:   true,
		Message:   "Wallet generated successfully",
		Address:   newWallet.AddressHex(),
		PublicKey: newWallet.PublicKeyHex(),
		Mnemonic:  newWallet.Mnemonic(),
		QR:        qrCode,
	})
}

// Encrypt handles POST /wallet/encrypt
// @Summary      Encrypt wallet
// @Description  Encrypts the wallet restored from a mnemonic into a keystore string
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.EncryptRequest  true  "Mnemonic and passphrase"
// @Success      200      {object}  model.EncryptResponse
// @Router       /wallet/encrypt [post]
func (h *WalletHandler) Encrypt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.EncryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	restored, err := h.manager.FromMnemonic(req.Mnemonic)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	keystoreJSON, err := h.manager.EncryptWallet(restored, req.Passphrase)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.EncryptResponse{Keystore: keystoreJSON})
}

// Decrypt handles POST /wallet/decrypt
// @Summary      Decrypt wallet
// @Description  Decrypts a keystore string back into wallet details
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.DecryptRequest  true  "Keystore and passphrase"
// @Success      200      {object}  model.WalletResponse
// @Router       /wallet/decrypt [post]
func (h *WalletHandler) Decrypt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.DecryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	decrypted, err := h.manager.DecryptWallet(req.Keystore, req.Passphrase)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.WalletResponse{
		Address:   decrypted.AddressHex(),
		PublicKey: decrypted.PublicKeyHex(),
		Mnemonic:  decrypted.Mnemonic(),
	})
}

// SignMessage handles POST /wallet/sign-message
// @Summary      Sign message
// @Description  Signs a plaintext message with the wallet restored from a mnemonic
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.SignMessageRequest  true  "Mnemonic and message"
// @Success      200      {object}  model.SignMessageResponse
// @Router       /wallet/sign-message [post]
func (h *WalletHandler) SignMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.SignMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	restored, err := h.manager.FromMnemonic(req.Mnemonic)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	signature, err := h.manager.SignMessage(restored, req.Message)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.SignMessageResponse{Signature: signature})
}

// RecoverSigner handles POST /wallet/recover-signer
// @Summary      Recover message signer
// @Description  Recovers the address that signed a message
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.RecoverSignerRequest  true  "Message and signature"
// @Success      200      {object}  model.RecoverSignerResponse
// @Router       /wallet/recover-signer [post]
func (h *WalletHandler) RecoverSigner(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.RecoverSignerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	signer, err := h.manager.GetMessageSigner(req.Message, req.Signature)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.RecoverSignerResponse{Signer: signer})
}

// VerifySigner handles POST /wallet/verify-signer
// @Summary      Verify message signer
// @Description  Checks whether an address signed a message
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.VerifySignerRequest  true  "Message, signature and candidate signer"
// @Success      200      {object}  model.VerifySignerResponse
// @Router       /wallet/verify-signer [post]
func (h *WalletHandler) VerifySigner(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.VerifySignerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	valid, err := h.manager.IsMessageSigner(req.Message, req.Signature, req.Signer)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.VerifySignerResponse{Valid: valid})
}

// SignTransaction handles POST /wallet/sign-transaction
// @Summary      Sign transaction
// @Description  Signs a transaction request and returns the raw signed transaction hex
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.SignTransactionRequest  true  "Transaction data"
// @Success      200      {object}  model.SignTransactionResponse
// @Router       /wallet/sign-transaction [post]
func (h *WalletHandler) SignTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.SignTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	restored, err := h.manager.FromMnemonic(req.Mnemonic)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	txReq, err := toTransactionRequest(&req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
		return
	}

	raw, err := h.manager.SignTransaction(restored, txReq)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.SignTransactionResponse{RawTransaction: raw})
}

// GetBalance handles GET /wallet/balance
// @Summary      Get address balance
// @Description  Gets the ETH balance of an address with the ETH/USD rate
// @Tags         wallet
// @Produce      json
// @Param        address  query     string  true  "Ethereum address"
// @Success      200      {object}  model.BalanceResponse
// @Router       /wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	address := r.URL.Query().Get("address")
	if address == "" {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "address query parameter is required"})
		return
	}

	wei, err := h.eth.GetBalanceWei(r.Context(), address)
	if err != nil {
		writeError(w, err)
		return
	}
	eth := common.WeiToETH(wei)

	rate, err := h.rates.GetETHToUSDRate()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.BalanceResponse{
		Address: address,
		ETH:     eth,
		Rate:    rate,
		USD:     multiplyDecimalStrings(eth, rate),
	})
}

// GetNetwork handles GET /network
// @Summary      Get network identity
// @Description  Returns the chain id and name of the connected network
// @Tags         network
// @Produce      json
// @Success      200  {object}  model.NetworkResponse
// @Router       /network [get]
func (h *WalletHandler) GetNetwork(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	chainID, err := h.manager.Network(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.NetworkResponse{
		ChainID: chainID.Uint64(),
		Name:    client.NetworkName(chainID),
	})
}

// toTransactionRequest converts the HTTP DTO (ETH / gwei decimal strings)
// into the wallet-level request (wei big integers).
func toTransactionRequest(req *model.SignTransactionRequest) (*wallet.TransactionRequest, error) {
	if !gethcommon.IsHexAddress(req.To) {
		return nil, errors.New("invalid recipient address")
	}
	to := gethcommon.HexToAddress(req.To)

	out := &wallet.TransactionRequest{
		To:      &to,
		Gas:     req.Gas,
		Nonce:   req.Nonce,
		ChainID: new(big.Int).SetUint64(req.ChainID),
		Type:    req.Type,
	}

	var err error
	if req.Value != "" {
		if out.Value, err = common.ETHToWei(req.Value); err != nil {
			return nil, err
		}
	}
	if req.GasPrice != "" {
		if out.GasPrice, err = common.GweiToWei(req.GasPrice); err != nil {
			return nil, err
		}
	}
	if req.MaxFeePerGas != "" {
		if out.GasFeeCap, err = common.GweiToWei(req.MaxFeePerGas); err != nil {
			return nil, err
		}
	}
	if req.MaxPriority != "" {
		if out.GasTipCap, err = common.GweiToWei(req.MaxPriority); err != nil {
			return nil, err
		}
	}
	if req.Data != "" {
		if out.Data, err = hexutil.Decode(req.Data); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// multiplyDecimalStrings multiplies two decimal strings and keeps two
// fractional digits. Used only for the display USD value.
func multiplyDecimalStrings(a, b string) string {
	fa, ok := new(big.Float).SetString(a)
	if !ok {
		return ""
	}
	fb, ok := new(big.Float).SetString(b)
	if !ok {
		return ""
	}
	return new(big.Float).Mul(fa, fb).Text('f', 2)
}

// generateQRCode generates QR code of address in base64
func generateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", err
	}

	png, err := qr.PNG(256)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
