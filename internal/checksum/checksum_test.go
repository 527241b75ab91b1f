package checksum_test

import (
	"testing"

	"carrierid/internal/checksum"

	"github.com/stretchr/testify/assert"
)

func TestLuhn(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"classic valid", "79927398713", true},
		{"13 digit valid", "1234567890128", true},
		{"16 digit valid", "9400111899562906", true},
		{"22 digit valid", "9205500000000000000003", true},
		{"corrupted check digit", "1234567890120", false},
		{"non-digit body", "12345A7890128", false},
		{"empty", "", false},
		{"single digit", "7", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checksum.Luhn(tt.input))
		})
	}
}

func TestMod11(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"10 digit valid", "1234567806", true},
		{"10 digit valid alt", "7351234566", true},
		{"corrupted check digit", "1234567800", false},
		{"remainder ten is invalid", "1234567891", false},
		{"letters rejected", "12345678A6", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checksum.Mod11(tt.input))
		})
	}
}

func TestUPS(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid", "1Z999AA10123456784", true},
		{"valid different shipper", "1Z999AA10129303848", true},
		{"corrupted check digit", "1Z999AA10123456780", false},
		{"wrong prefix", "2Z999AA10123456784", false},
		{"too short", "1Z999AA1012345678", false},
		{"lowercase not accepted", "1z999AA10123456784", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checksum.UPS(tt.input))
		})
	}
}

func TestS10(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid GB item", "RB123456785GB", true},
		{"valid US item", "EC502940305US", true},
		{"corrupted check digit", "RB123456780GB", false},
		{"digits in prefix", "R1123456785GB", false},
		{"too short", "RB12345678GB", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checksum.S10(tt.input))
		})
	}
}

func TestFedEx(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"12 digit express valid", "986578788855", true},
		{"12 digit express valid alt", "123456789012", true},
		{"12 digit corrupted", "986578788850", false},
		{"15 digit ground valid", "987654321098767", true},
		{"15 digit corrupted", "987654321098760", false},
		{"uncheckable length", "12345678901234", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checksum.FedEx(tt.input))
		})
	}
}
