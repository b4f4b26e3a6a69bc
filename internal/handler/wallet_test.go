package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ewt/internal/model"
	"ewt/wallet"
)

const (
	testMnemonic   = "test test test test test test test test test test test junk"
	testAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	testPassphrase = "Correct-Horse-Battery!"
)

// testHandler wires a handler without network clients; only the local
// crypto endpoints are exercised here.
func testHandler() *WalletHandler {
	return NewWalletHandler(wallet.NewManager(wallet.WithLightScrypt()), nil, nil)
}

func postJSON(t *testing.T, h http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestGenerateHandler(t *testing.T) {
	h := testHandler()

	rec := httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/wallet/generate", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.GenerateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.True(t, resp.Success)
	require.Len(t, resp.Address, 42)
	require.Len(t, resp.PublicKey, 68)
	require.Len(t, strings.Split(resp.Mnemonic, " "), 12)
	require.NotEmpty(t, resp.QR)
}

func TestGenerateHandlerMethodNotAllowed(t *testing.T) {
	h := testHandler()

	rec := httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodGet, "/wallet/generate", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestEncryptDecryptHandlers(t *testing.T) {
	h := testHandler()

	rec := postJSON(t, h.Encrypt, "/wallet/encrypt", model.EncryptRequest{
		Mnemonic:   testMnemonic,
		Passphrase: testPassphrase,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var encResp model.EncryptResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&encResp))
	require.NotEmpty(t, encResp.Keystore)

	rec = postJSON(t, h.Decrypt, "/wallet/decrypt", model.DecryptRequest{
		Keystore:   encResp.Keystore,
		Passphrase: testPassphrase,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var walletResp model.WalletResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&walletResp))
	require.Equal(t, testAddress, walletResp.Address)
	require.Equal(t, testMnemonic, walletResp.Mnemonic)
}

func TestEncryptHandlerWeakPassphrase(t *testing.T) {
	h := testHandler()

	rec := postJSON(t, h.Encrypt, "/wallet/encrypt", model.EncryptRequest{
		Mnemonic:   testMnemonic,
		Passphrase: "weak",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecryptHandlerWrongPassphrase(t *testing.T) {
	h := testHandler()

	rec := postJSON(t, h.Encrypt, "/wallet/encrypt", model.EncryptRequest{
		Mnemonic:   testMnemonic,
		Passphrase: testPassphrase,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var encResp model.EncryptResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&encResp))

	rec = postJSON(t, h.Decrypt, "/wallet/decrypt", model.DecryptRequest{
		Keystore:   encResp.Keystore,
		Passphrase: "Wrong-Horse-Battery!",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignRecoverVerifyHandlers(t *testing.T) {
	h := testHandler()
	const message = "hello over http"

	rec := postJSON(t, h.SignMessage, "/wallet/sign-message", model.SignMessageRequest{
		Mnemonic: testMnemonic,
		Message:  message,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var signResp model.SignMessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&signResp))
	require.NotEmpty(t, signResp.Signature)

	rec = postJSON(t, h.RecoverSigner, "/wallet/recover-signer", model.RecoverSignerRequest{
		Message:   message,
		Signature: signResp.Signature,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var recoverResp model.RecoverSignerResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&recoverResp))
	require.Equal(t, testAddress, recoverResp.Signer)

	rec = postJSON(t, h.VerifySigner, "/wallet/verify-signer", model.VerifySignerRequest{
		Message:   message,
		Signature: signResp.Signature,
		Signer:    testAddress,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var verifyResp model.VerifySignerResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&verifyResp))
	require.True(t, verifyResp.Valid)
}

func TestSignMessageHandlerEmptyMessage(t *testing.T) {
	h := testHandler()

	rec := postJSON(t, h.SignMessage, "/wallet/sign-message", model.SignMessageRequest{
		Mnemonic: testMnemonic,
		Message:  "",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignTransactionHandler(t *testing.T) {
	h := testHandler()

	rec := postJSON(t, h.SignTransaction, "/wallet/sign-transaction", model.SignTransactionRequest{
		Mnemonic:     testMnemonic,
		To:           "0x0000000000000000000000000000000000000042",
		Value:        "0.001",
		Gas:          21000,
		MaxFeePerGas: "40",
		MaxPriority:  "2",
		Nonce:        0,
		ChainID:      11155111,
		Type:         2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var txResp model.SignTransactionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&txResp))
	require.True(t, strings.HasPrefix(txResp.RawTransaction, "0x"))
}

func TestSignTransactionHandlerBadRecipient(t *testing.T) {
	h := testHandler()

	rec := postJSON(t, h.SignTransaction, "/wallet/sign-transaction", model.SignTransactionRequest{
		Mnemonic: testMnemonic,
		To:       "not-an-address",
		ChainID:  1,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetNetworkHandlerWithoutProvider(t *testing.T) {
	h := testHandler()

	rec := httptest.NewRecorder()
	h.GetNetwork(rec, httptest.NewRequest(http.MethodGet, "/network", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
