package otp

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sixDigits = regexp.MustCompile(`^\d{6}$`)

func TestFormat(t *testing.T) {
	tests := []struct {
		value  int64
		length int
		want   string
	}{
		{7, 6, "000007"},
		{0, 6, "000000"},
		{999999, 6, "999999"},
		{4321, 6, "004321"},
		{12, 4, "0012"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.value, tt.length))
	}
}

func TestCryptoGenerator_RandomCode(t *testing.T) {
	g := NewCryptoGenerator()

	for i := 0; i < 500; i++ {
		code, err := g.RandomCode(6)
		require.NoError(t, err)
		assert.Regexp(t, sixDigits, code)
	}
}

func TestCryptoGenerator_RejectsBadLength(t *testing.T) {
	_, err := NewCryptoGenerator().RandomCode(0)
	assert.Error(t, err)
}

func TestGOTPGenerator_RandomCode(t *testing.T) {
	g := NewGOTPGenerator()

	for i := 0; i < 100; i++ {
		code, err := g.RandomCode(6)
		require.NoError(t, err)
		assert.Regexp(t, sixDigits, code)
	}
}
