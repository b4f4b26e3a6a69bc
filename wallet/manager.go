package wallet

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/ethclient"

	"ewt/internal/keystore"
)

// Manager is the wallet facade. It holds no mutable state besides the
// provider handle, so all operations are safe to call concurrently.
type Manager struct {
	provider *ethclient.Client
	scryptN  int
	scryptP  int
}

// Option configures a Manager.
type Option func(*Manager)

// WithProvider attaches a JSON-RPC provider for network queries.
func WithProvider(provider *ethclient.Client) Option {
	return func(m *Manager) {
		m.provider = provider
	}
}

// WithLightScrypt switches keystore encryption to go-ethereum's light
// scrypt parameters. Intended for tests; standard parameters take seconds
// per call.
func WithLightScrypt() Option {
	return func(m *Manager) {
		m.scryptN = keystore.LightScryptN
		m.scryptP = keystore.LightScryptP
	}
}

// NewManager creates a wallet manager with standard scrypt parameters and
// no provider unless configured otherwise.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		scryptN: keystore.StandardScryptN,
		scryptP: keystore.StandardScryptP,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// EncryptWallet serializes the wallet to an encrypted keystore string.
// The passphrase must satisfy the policy (at least 15 characters, one
// upper, one lower, one special character) or ErrInvalidPassphrase is
// returned before anything is encrypted.
func (m *Manager) EncryptWallet(w Wallet, passphrase string) (string, error) {
	if !validPassphrase(passphrase) {
		return "", ErrInvalidPassphrase
	}

	exporter, ok := w.(KeyExporter)
	if !ok {
		return "", errors.New("wallet does not expose key material")
	}
	key, err := exporter.ExportKey()
	if err != nil {
		return "", err
	}

	return keystore.Encrypt(key, w.Mnemonic(), w.AddressHex(), passphrase, m.scryptN, m.scryptP)
}

// DecryptWallet restores a wallet from an encrypted keystore string. Any
// decryption failure (malformed JSON, corrupted field, wrong passphrase)
// is reported as ErrFailedToDecrypt.
func (m *Manager) DecryptWallet(encryptedWallet, passphrase string) (Wallet, error) {
	if encryptedWallet == "" {
		return nil, ErrEmptyEncryptedWallet
	}
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}

	key, mnemonic, err := keystore.Decrypt(encryptedWallet, passphrase)
	if err != nil {
		return nil, ErrFailedToDecrypt
	}

	return &hdWallet{key: key, mnemonic: mnemonic}, nil
}

// Provider returns the configured JSON-RPC provider, or nil if none.
func (m *Manager) Provider() *ethclient.Client {
	return m.provider
}

// Network returns the chain id reported by the provider.
func (m *Manager) Network(ctx context.Context) (*big.Int, error) {
	if m.provider == nil {
		return nil, ErrNoProvider
	}
	return m.provider.ChainID(ctx)
}
