package service

import (
	"crypto/rand"
	"io"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	base36Alphabet   = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	orderSuffixChars = 5
)

// OrderNumberGenerator produces order numbers of the form
// PREFIX-<unix millis in base 36>-<5 random base-36 chars>, all upper case.
type OrderNumberGenerator struct {
	prefix string
	now    func() time.Time
	random io.Reader
}

// NewOrderNumberGenerator creates a generator using the wall clock and crypto/rand.
func NewOrderNumberGenerator(prefix string) *OrderNumberGenerator {
	return &OrderNumberGenerator{
		prefix: prefix,
		now:    time.Now,
		random: rand.Reader,
	}
}

// Next returns a fresh order number.
func (g *OrderNumberGenerator) Next() (string, error) {
	ts := strings.ToUpper(strconv.FormatInt(g.now().UnixMilli(), 36))

	suffix := make([]byte, orderSuffixChars)
	max := big.NewInt(int64(len(base36Alphabet)))
	for i := range suffix {
		n, err := rand.Int(g.random, max)
		if err != nil {
			return "", err
		}
		suffix[i] = base36Alphabet[n.Int64()]
	}

	return g.prefix + "-" + ts + "-" + string(suffix), nil
}
