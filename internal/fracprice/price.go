// Package fracprice implements the 1/256 fractional bond-price codec
// and the process-wide order/inquiry ID generator (spec.md §4.1).
package fracprice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	eight      = decimal.NewFromInt(8)
	twoFiveSix = decimal.NewFromInt(256)
)

// Encode renders a decimal price in "h-tte" Treasury fraction notation:
// h is the whole-point part, tt is the 32nds (zero-padded to two
// digits), and e is the eighth of a 32nd — rendered as "+" when e == 4
// rather than the digit "4" (spec.md §4.1).
func Encode(p decimal.Decimal) string {
	h := p.Floor()
	frac := p.Sub(h)
	r := frac.Mul(twoFiveSix).Floor()
	t := r.Div(eight).Floor()
	e := r.Sub(t.Mul(eight))

	tt := t.String()
	if len(tt) < 2 {
		tt = "0" + tt
	}

	eStr := e.String()
	if e.Equal(decimal.NewFromInt(4)) {
		eStr = "+"
	}

	return fmt.Sprintf("%s-%s%s", h.String(), tt, eStr)
}

// Decode parses an "h-tte" fractional price back into a decimal value.
// Malformed input (wrong shape, non-numeric whole/32nds part) returns an
// error; callers at the ingest boundary are expected to treat this as a
// skip-the-record parse error per spec.md §7, not propagate it further.
func Decode(s string) (decimal.Decimal, error) {
	whole, rest, ok := strings.Cut(s, "-")
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("fracprice: malformed price %q: missing '-'", s)
	}
	if len(rest) != 3 {
		return decimal.Decimal{}, fmt.Errorf("fracprice: malformed price %q: fraction part must be 3 characters", s)
	}

	h, err := decimal.NewFromString(whole)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("fracprice: malformed whole part %q: %w", whole, err)
	}

	ttDigits := rest[:2]
	eChar := rest[2]

	tt, err := strconv.Atoi(ttDigits)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("fracprice: malformed 32nds part %q: %w", ttDigits, err)
	}

	var e int
	if eChar == '+' {
		e = 4
	} else {
		e, err = strconv.Atoi(string(eChar))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("fracprice: malformed eighths part %q: %w", string(eChar), err)
		}
	}

	r := decimal.NewFromInt(int64(tt)*8 + int64(e))
	return h.Add(r.Div(twoFiveSix)), nil
}
