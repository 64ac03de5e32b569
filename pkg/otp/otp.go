package otp

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/big"

	"github.com/xlzd/gotp"
)

const secretLength = 32

// Generator produces numeric one-time codes of a fixed number of digits.
type Generator interface {
	RandomCode(length int) (string, error)
}

// Format left pads value with zeros up to length digits.
func Format(value int64, length int) string {
	return fmt.Sprintf("%0*d", length, value)
}

// CryptoGenerator draws codes uniformly from [0, 10^length) using crypto/rand.
type CryptoGenerator struct{}

func NewCryptoGenerator() *CryptoGenerator {
	return &CryptoGenerator{}
}

func (g *CryptoGenerator) RandomCode(length int) (string, error) {
	if length <= 0 || length > 18 {
		return "", fmt.Errorf("unsupported code length %d", length)
	}

	limit := big.NewInt(int64(math.Pow10(length)))
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("read random failed: %w", err)
	}

	return Format(n.Int64(), length), nil
}

// GOTPGenerator derives codes from an HOTP over a fresh random secret and counter.
type GOTPGenerator struct{}

func NewGOTPGenerator() *GOTPGenerator {
	return &GOTPGenerator{}
}

func (g *GOTPGenerator) RandomCode(length int) (string, error) {
	if length < 6 || length > 8 {
		return "", fmt.Errorf("unsupported hotp length %d", length)
	}

	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("read random counter failed: %w", err)
	}
	counter := int(binary.BigEndian.Uint32(buf[:]) >> 1)

	hotp := gotp.NewHOTP(gotp.RandomSecret(secretLength), length, nil)

	return hotp.At(counter), nil
}
