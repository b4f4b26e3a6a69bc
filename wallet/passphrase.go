package wallet

import "unicode"

// minPassphraseLen is the minimum accepted passphrase length for keystore
// encryption.
const minPassphraseLen = 15

// validPassphrase reports whether the passphrase satisfies the encryption
// policy: at least 15 characters with at least one upper case letter, one
// lower case letter and one special (non-alphanumeric) character.
func validPassphrase(passphrase string) bool {
	runes := []rune(passphrase)
	if len(runes) < minPassphraseLen {
		return false
	}

	var hasUpper, hasLower, hasSpecial bool
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasSpecial
}
