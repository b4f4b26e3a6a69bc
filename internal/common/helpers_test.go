package common

import (
	"math/big"
	"testing"
)

func TestWeiToETH(t *testing.T) {
	tests := []struct {
		name string
		wei  *big.Int
		want string
	}{
		{"zero", big.NewInt(0), "0.000000000000000000"},
		{"one wei", big.NewInt(1), "0.000000000000000001"},
		{"one eth", big.NewInt(1_000_000_000_000_000_000), "1.000000000000000000"},
		{"fraction", big.NewInt(24_981_836_000_000_000), "0.024981836000000000"},
		{"above uint64", mustBig("100000000000000000000"), "100.000000000000000000"},
		{"nil treated as zero", nil, "0.000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeiToETH(tt.wei); got != tt.want {
				t.Errorf("WeiToETH(%v) = %q, want %q", tt.wei, got, tt.want)
			}
		})
	}
}

func TestETHToWei(t *testing.T) {
	tests := []struct {
		name    string
		eth     string
		want    *big.Int
		wantErr bool
	}{
		{"integer", "1", big.NewInt(1_000_000_000_000_000_000), false},
		{"fraction", "0.5", big.NewInt(500_000_000_000_000_000), false},
		{"small fraction", "0.024981836", big.NewInt(24_981_836_000_000_000), false},
		{"trailing digits truncated", "0.0000000000000000019", big.NewInt(1), false},
		{"above uint64", "100", mustBig("100000000000000000000"), false},
		{"empty", "", nil, true},
		{"negative", "-1", nil, true},
		{"garbage", "one point five", nil, true},
		{"two dots", "1.2.3", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ETHToWei(tt.eth)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ETHToWei(%q) error = %v, wantErr %v", tt.eth, err, tt.wantErr)
			}
			if !tt.wantErr && got.Cmp(tt.want) != 0 {
				t.Errorf("ETHToWei(%q) = %v, want %v", tt.eth, got, tt.want)
			}
		})
	}
}

func TestGweiRoundTrip(t *testing.T) {
	wei, err := GweiToWei("1.5")
	if err != nil {
		t.Fatalf("GweiToWei failed: %v", err)
	}
	if wei.Cmp(big.NewInt(1_500_000_000)) != 0 {
		t.Errorf("GweiToWei(1.5) = %v, want 1500000000", wei)
	}
	if got := WeiToGwei(wei); got != "1.500000000" {
		t.Errorf("WeiToGwei = %q, want 1.500000000", got)
	}
}

func mustBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad big int literal: " + s)
	}
	return n
}
