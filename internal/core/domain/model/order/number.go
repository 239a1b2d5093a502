package order

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	numberPrefix       = "ORD-"
	numberSuffixLength = 4
	base36Alphabet     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewNumber builds a human-readable order number of the form
// ORD-<unix millis in upper base36>-<4 random upper base36 chars>.
// Collisions are possible in theory; the storage layer keeps the column unique.
func NewNumber(now time.Time) string {
	var b strings.Builder
	b.WriteString(numberPrefix)
	b.WriteString(strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)))
	b.WriteByte('-')
	for range numberSuffixLength {
		b.WriteByte(base36Alphabet[rand.IntN(len(base36Alphabet))])
	}
	return b.String()
}
