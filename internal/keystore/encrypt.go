// Package keystore serializes wallets to a passphrase-encrypted JSON
// envelope. Key derivation and the cipher are go-ethereum's keystore V3
// primitives (scrypt + AES-128-CTR); this package only defines the envelope.
package keystore

import (
	"crypto/ecdsa"
	"encoding/json"
	"fmt"

	gethkeystore "github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

// Scrypt cost presets, re-exported so callers do not import go-ethereum's
// keystore directly. Light parameters are for tests only.
const (
	StandardScryptN = gethkeystore.StandardScryptN
	StandardScryptP = gethkeystore.StandardScryptP
	LightScryptN    = gethkeystore.LightScryptN
	LightScryptP    = gethkeystore.LightScryptP
)

const version = 3

// File is the on-wire encrypted wallet envelope. Both the private key and
// the mnemonic are encrypted under the same passphrase; the mnemonic field
// is always present so that tampering with or removing it breaks decryption.
type File struct {
	Version  int                     `json:"version"`
	ID       string                  `json:"id"`
	Address  string                  `json:"address"`
	Crypto   gethkeystore.CryptoJSON `json:"crypto"`
	Mnemonic gethkeystore.CryptoJSON `json:"mnemonic"`
}

// Encrypt serializes the private key and mnemonic into an encrypted
// envelope string. scryptN and scryptP control the key derivation cost.
func Encrypt(key *ecdsa.PrivateKey, mnemonic, address, passphrase string, scryptN, scryptP int) (string, error) {
	keyCrypto, err := gethkeystore.EncryptDataV3(crypto.FromECDSA(key), []byte(passphrase), scryptN, scryptP)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt private key: %w", err)
	}

	mnemonicCrypto, err := gethkeystore.EncryptDataV3([]byte(mnemonic), []byte(passphrase), scryptN, scryptP)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt mnemonic: %w", err)
	}

	file := File{
		Version:  version,
		ID:       uuid.New().String(),
		Address:  address,
		Crypto:   keyCrypto,
		Mnemonic: mnemonicCrypto,
	}

	data, err := json.Marshal(file)
	if err != nil {
		return "", fmt.Errorf("failed to marshal keystore: %w", err)
	}

	return string(data), nil
}
