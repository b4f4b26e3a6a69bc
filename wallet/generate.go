package wallet

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
)

const (
	// mnemonicEntropyBits gives a 12-word BIP-39 phrase.
	mnemonicEntropyBits = 128

	// BIP-44 path components for m/44'/60'/0'/0/0 (Ethereum, first account).
	purposeBIP44 = 44
	coinTypeETH  = 60
)

// GenerateWallet creates a new HD wallet from fresh 128-bit entropy.
// The key is derived at m/44'/60'/0'/0/0 from the 12-word mnemonic.
func (m *Manager) GenerateWallet() (Wallet, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate entropy: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mnemonic: %w", err)
	}

	return deriveWallet(mnemonic)
}

// FromMnemonic restores the wallet derived at m/44'/60'/0'/0/0 from a
// previously generated BIP-39 phrase.
func (m *Manager) FromMnemonic(mnemonic string) (Wallet, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.New("invalid mnemonic")
	}
	return deriveWallet(mnemonic)
}

// deriveWallet walks m/44'/60'/0'/0/0 from the mnemonic seed.
func deriveWallet(mnemonic string) (Wallet, error) {
	seed := bip39.NewSeed(mnemonic, "")

	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("failed to derive master key: %w", err)
	}

	path := []uint32{
		hdkeychain.HardenedKeyStart + purposeBIP44,
		hdkeychain.HardenedKeyStart + coinTypeETH,
		hdkeychain.HardenedKeyStart, // account 0'
		0,                           // external chain
		0,                           // address index
	}

	child := master
	for _, index := range path {
		child, err = child.Derive(index)
		if err != nil {
			return nil, fmt.Errorf("failed to derive child key: %w", err)
		}
	}

	ecPriv, err := child.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("failed to extract private key: %w", err)
	}

	// Re-parse on go-ethereum's secp256k1 curve so signing helpers accept it.
	key, err := crypto.ToECDSA(ecPriv.Serialize())
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return &hdWallet{key: key, mnemonic: mnemonic}, nil
}
