package keystore

import (
	"crypto/ecdsa"
	"encoding/json"
	"fmt"

	gethkeystore "github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
)

// Decrypt parses an encrypted wallet envelope and recovers the private key
// and mnemonic. A wrong passphrase, a corrupted field or malformed JSON all
// surface as errors; callers are expected to collapse them into a single
// decryption failure.
func Decrypt(keystoreJSON, passphrase string) (*ecdsa.PrivateKey, string, error) {
	var file File
	if err := json.Unmarshal([]byte(keystoreJSON), &file); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal keystore: %w", err)
	}

	if file.Version != version {
		return nil, "", fmt.Errorf("unsupported keystore version: %d", file.Version)
	}

	keyBytes, err := gethkeystore.DecryptDataV3(file.Crypto, passphrase)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decrypt private key: %w", err)
	}
	defer clear(keyBytes)

	key, err := crypto.ToECDSA(keyBytes)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse private key: %w", err)
	}

	mnemonicBytes, err := gethkeystore.DecryptDataV3(file.Mnemonic, passphrase)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decrypt mnemonic: %w", err)
	}

	return key, string(mnemonicBytes), nil
}
