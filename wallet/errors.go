package wallet

import "errors"

// Sentinel errors returned by Manager operations. Input validation always
// runs before any delegated call; failures inside the underlying library
// are normalized to one of these and the original diagnostic is dropped.
// Callers match with errors.Is.
var (
	// ErrInvalidPassphrase is returned by EncryptWallet when the passphrase
	// fails the policy (length, upper, lower, special character).
	ErrInvalidPassphrase = errors.New("invalid passphrase: must be at least 15 characters and contain an upper case, a lower case and a special character")

	// ErrEmptyEncryptedWallet is returned by DecryptWallet for an empty keystore string.
	ErrEmptyEncryptedWallet = errors.New("encrypted wallet must not be empty")

	// ErrEmptyPassphrase is returned by DecryptWallet for an empty passphrase.
	ErrEmptyPassphrase = errors.New("passphrase must not be empty")

	// ErrFailedToDecrypt covers malformed keystore JSON, corrupted fields
	// and wrong passphrases alike.
	ErrFailedToDecrypt = errors.New("failed to decrypt wallet")

	// ErrEmptyMessageToSign is returned by SignMessage for an empty message.
	ErrEmptyMessageToSign = errors.New("message to sign must not be empty")

	// ErrFailedToSignMessage is returned when the wallet cannot produce a
	// signature (missing key material, broken signer backend).
	ErrFailedToSignMessage = errors.New("failed to sign message")

	// ErrEmptyMessage is returned by the recovery operations for an empty message.
	ErrEmptyMessage = errors.New("message must not be empty")

	// ErrEmptySignature is returned by the recovery operations for an empty signature.
	ErrEmptySignature = errors.New("signature must not be empty")

	// ErrEmptySigner is returned by IsMessageSigner for an empty candidate address.
	ErrEmptySigner = errors.New("signer must not be empty")

	// ErrNoProvider is returned by Network when the manager was built
	// without an RPC provider.
	ErrNoProvider = errors.New("no provider configured")
)
