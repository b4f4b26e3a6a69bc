// Package wallet implements a local Ethereum HD wallet manager: generation,
// passphrase-protected keystore encryption, message and transaction signing.
// All cryptographic primitives are delegated to go-ethereum, go-bip39 and
// btcd's hdkeychain.
package wallet

import (
	"crypto/ecdsa"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Wallet is an opaque signing capability. The concrete implementation in
// this package holds a local secp256k1 key derived from a BIP-39 mnemonic;
// alternate backends (hardware wallet, remote signer) can substitute as
// long as they can sign digests.
type Wallet interface {
	// Address returns the 20-byte account address.
	Address() common.Address
	// AddressHex returns the checksummed 0x-prefixed address (42 characters).
	AddressHex() string
	// PublicKeyHex returns the compressed public key, 0x-prefixed (68 characters).
	PublicKeyHex() string
	// Mnemonic returns the BIP-39 phrase the wallet was derived from,
	// or "" for wallets restored from raw key material.
	Mnemonic() string
	// SignHash signs a 32-byte digest and returns the 65-byte [R || S || V]
	// signature with V in {0, 1}.
	SignHash(digest []byte) ([]byte, error)
	// SignTx signs the transaction for the given signer.
	SignTx(tx *types.Transaction, signer types.Signer) (*types.Transaction, error)
}

// KeyExporter is the optional capability of wallets that can reveal their
// private key. Keystore encryption requires it; hardware-backed wallets
// will not implement it.
type KeyExporter interface {
	ExportKey() (*ecdsa.PrivateKey, error)
}

// hdWallet is the local software wallet.
type hdWallet struct {
	key      *ecdsa.PrivateKey
	mnemonic string
}

func (w *hdWallet) Address() common.Address {
	return crypto.PubkeyToAddress(w.key.PublicKey)
}

func (w *hdWallet) AddressHex() string {
	return w.Address().Hex()
}

func (w *hdWallet) PublicKeyHex() string {
	return hexutil.Encode(crypto.CompressPubkey(&w.key.PublicKey))
}

func (w *hdWallet) Mnemonic() string {
	return w.mnemonic
}

func (w *hdWallet) SignHash(digest []byte) ([]byte, error) {
	if w.key == nil {
		return nil, errors.New("wallet has no key material")
	}
	return crypto.Sign(digest, w.key)
}

func (w *hdWallet) SignTx(tx *types.Transaction, signer types.Signer) (*types.Transaction, error) {
	if w.key == nil {
		return nil, errors.New("wallet has no key material")
	}
	return types.SignTx(tx, signer, w.key)
}

func (w *hdWallet) ExportKey() (*ecdsa.PrivateKey, error) {
	if w.key == nil {
		return nil, errors.New("wallet has no key material")
	}
	return w.key, nil
}
