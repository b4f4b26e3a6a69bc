// One-off: decrypt a keystore file and re-encrypt it under a new
// passphrase (policy enforced). Prints the new keystore JSON to stdout.
// Usage: go run ./cmd/reencrypt_keystore <keystore-file>
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"ewt/wallet"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: reencrypt_keystore <keystore-file>")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	oldPassphrase, err := promptPassphrase("Enter current passphrase: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	newPassphrase, err := promptPassphrase("Enter new passphrase: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	manager := wallet.NewManager()

	w, err := manager.DecryptWallet(string(data), oldPassphrase)
	if err != nil {
		fmt.Fprintln(os.Stderr, "decrypt failed:", err)
		os.Exit(1)
	}

	reencrypted, err := manager.EncryptWallet(w, newPassphrase)
	if err != nil {
		fmt.Fprintln(os.Stderr, "encrypt failed:", err)
		os.Exit(1)
	}

	fmt.Print(reencrypted)
}

// promptPassphrase reads a passphrase from the terminal without echoing.
func promptPassphrase(prompt string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("stdin is not a terminal: run interactively to enter passphrase")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("failed to read passphrase: %w", err)
	}
	return string(raw), nil
}
