package wallet

import "testing"

func TestValidPassphrase(t *testing.T) {
	tests := []struct {
		name       string
		passphrase string
		want       bool
	}{
		{"valid", "Correct-Horse-Battery!", true},
		{"valid exactly 15", "Aa!aaaaaaaaaaaa", true},
		{"empty", "", false},
		{"too short", "Aa!aaaaaaaaaaa", false},
		{"no upper", "aa!aaaaaaaaaaaaa", false},
		{"no lower", "AA!AAAAAAAAAAAAA", false},
		{"no special", "AaAaAaAaAaAaAaAa", false},
		{"digits are not special", "Aa1aaaaaaaaaaaaa", false},
		{"space counts as special", "Aa aaaaaaaaaaaaa", true},
		{"unicode letters counted", "Ää!ääääääääääää", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validPassphrase(tt.passphrase); got != tt.want {
				t.Errorf("validPassphrase(%q) = %v, want %v", tt.passphrase, got, tt.want)
			}
		})
	}
}
