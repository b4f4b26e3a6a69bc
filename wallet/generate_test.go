package wallet

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Standard development mnemonic; account 0 at m/44'/60'/0'/0/0.
const (
	testMnemonic = "test test test test test test test test test test test junk"
	testAddress  = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

var (
	addressRe   = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	publicKeyRe = regexp.MustCompile(`^0x[0-9a-fA-F]{66}$`)
)

func TestGenerateWallet(t *testing.T) {
	m := NewManager()

	w, err := m.GenerateWallet()
	require.NoError(t, err)

	require.Regexp(t, addressRe, w.AddressHex())
	require.Len(t, w.AddressHex(), 42)
	require.Regexp(t, publicKeyRe, w.PublicKeyHex())
	require.Len(t, w.PublicKeyHex(), 68)
	require.Len(t, strings.Split(w.Mnemonic(), " "), 12)
}

func TestGenerateWalletUnique(t *testing.T) {
	m := NewManager()

	a, err := m.GenerateWallet()
	require.NoError(t, err)
	b, err := m.GenerateWallet()
	require.NoError(t, err)

	require.NotEqual(t, a.AddressHex(), b.AddressHex())
	require.NotEqual(t, a.Mnemonic(), b.Mnemonic())
}

func TestFromMnemonicDeterministic(t *testing.T) {
	m := NewManager()

	w, err := m.GenerateWallet()
	require.NoError(t, err)

	restored, err := m.FromMnemonic(w.Mnemonic())
	require.NoError(t, err)
	require.Equal(t, w.AddressHex(), restored.AddressHex())
	require.Equal(t, w.PublicKeyHex(), restored.PublicKeyHex())
}

func TestFromMnemonicKnownVector(t *testing.T) {
	m := NewManager()

	w, err := m.FromMnemonic(testMnemonic)
	require.NoError(t, err)
	require.Equal(t, testAddress, w.AddressHex())
}

func TestFromMnemonicInvalid(t *testing.T) {
	m := NewManager()

	for _, mnemonic := range []string{
		"",
		"not a mnemonic",
		"test test test test test test test test test test test test", // bad checksum
	} {
		_, err := m.FromMnemonic(mnemonic)
		require.Error(t, err, "mnemonic %q", mnemonic)
	}
}
