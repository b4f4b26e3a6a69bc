package wallet

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// signatureLen is the [R || S || V] length of a recoverable signature.
const signatureLen = 65

// SignMessage signs the message with the EIP-191 personal-message prefix
// and returns the 65-byte signature hex-encoded with V in {27, 28}.
func (m *Manager) SignMessage(w Wallet, message string) (string, error) {
	if message == "" {
		return "", ErrEmptyMessageToSign
	}

	sig, err := w.SignHash(accounts.TextHash([]byte(message)))
	if err != nil {
		return "", ErrFailedToSignMessage
	}

	// Legacy V encoding expected by most verifiers.
	if sig[signatureLen-1] < 27 {
		sig[signatureLen-1] += 27
	}

	return hexutil.Encode(sig), nil
}

// GetMessageSigner recovers the checksummed address that produced the
// signature over the EIP-191 hash of the message.
func (m *Manager) GetMessageSigner(message, signature string) (string, error) {
	if message == "" {
		return "", ErrEmptyMessage
	}
	if signature == "" {
		return "", ErrEmptySignature
	}

	sig, err := hexutil.Decode(signature)
	if err != nil {
		return "", fmt.Errorf("invalid signature encoding: %w", err)
	}
	if len(sig) != signatureLen {
		return "", fmt.Errorf("invalid signature length: expected %d bytes, got %d", signatureLen, len(sig))
	}

	// Undo the legacy V offset before recovery.
	recoverSig := make([]byte, signatureLen)
	copy(recoverSig, sig)
	if recoverSig[signatureLen-1] >= 27 {
		recoverSig[signatureLen-1] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), recoverSig)
	if err != nil {
		return "", fmt.Errorf("failed to recover signer: %w", err)
	}

	return crypto.PubkeyToAddress(*pub).Hex(), nil
}

// IsMessageSigner reports whether the candidate address produced the
// signature over the message. Comparison is case-insensitive: both sides
// are normalized to their canonical address form, so checksummed and
// lower-cased spellings of the same address match.
func (m *Manager) IsMessageSigner(message, signature, signer string) (bool, error) {
	if message == "" {
		return false, ErrEmptyMessage
	}
	if signature == "" {
		return false, ErrEmptySignature
	}
	if signer == "" {
		return false, ErrEmptySigner
	}

	recovered, err := m.GetMessageSigner(message, signature)
	if err != nil {
		return false, err
	}

	if !common.IsHexAddress(signer) {
		return false, nil
	}

	return common.HexToAddress(recovered) == common.HexToAddress(signer), nil
}
