// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"math"
	"strconv"

	"codello.dev/codec"
)

// number is a JSON number literal decomposed into sign, integer mantissa,
// and decimal exponent: value = (neg ? -1 : 1) * mantissa * 10^exponent.
// hasFrac/hasExp report whether the literal carried a '.' part or an 'e'/'E'
// part, so callers decoding into an integer type can reject a literal that
// is not already an integer instead of silently truncating it.
type number struct {
	neg       bool
	mantissa  uint64
	exponent  int32
	hasFrac   bool
	hasExp    bool
	overflow  bool // mantissa did not fit uint64; only composeFloat64 (from digits) yields a value
	digits    []byte
}

// parseNumber decomposes a raw JSON number literal (as produced by
// [lexer.readNumber]) without converting it to a float, so that integer
// decode targets can be satisfied exactly for any literal that fits.
func parseNumber(raw []byte) (number, error) {
	var n number
	i := 0
	if i < len(raw) && raw[i] == '-' {
		n.neg = true
		i++
	}
	intStart := i
	for i < len(raw) && isDigit(raw[i]) {
		i++
	}
	if i == intStart {
		return number{}, isSyntaxError("number literal has no integer part")
	}
	digits := make([]byte, 0, len(raw))
	digits = append(digits, raw[intStart:i]...)
	fracDigits := 0
	if i < len(raw) && raw[i] == '.' {
		n.hasFrac = true
		i++
		fracStart := i
		for i < len(raw) && isDigit(raw[i]) {
			i++
		}
		fracDigits = i - fracStart
		digits = append(digits, raw[fracStart:i]...)
	}
	exp := 0
	if i < len(raw) && (raw[i] == 'e' || raw[i] == 'E') {
		n.hasExp = true
		i++
		expNeg := false
		if i < len(raw) && (raw[i] == '+' || raw[i] == '-') {
			expNeg = raw[i] == '-'
			i++
		}
		expStart := i
		for i < len(raw) && isDigit(raw[i]) {
			i++
		}
		if i == expStart {
			return number{}, isSyntaxError("number literal has malformed exponent")
		}
		e, err := strconv.Atoi(string(raw[expStart:i]))
		if err != nil {
			return number{}, isSyntaxError("number literal exponent out of range")
		}
		if expNeg {
			e = -e
		}
		exp = e
	}
	n.digits = digits
	n.exponent = int32(exp - fracDigits)
	m, err := strconv.ParseUint(string(digits), 10, 64)
	if err != nil {
		n.overflow = true
	} else {
		n.mantissa = m
	}
	return n, nil
}

// powersOfTen covers every power of ten that fits a uint64; for an exponent
// beyond it, integer composition fails (composeFloat64 never uses the table).
var powersOfTen = [...]uint64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

// checkedPow10 returns 10^e and true if 0 <= e < len(powersOfTen), or false
// otherwise. Callers check the multiplication by the mantissa themselves.
func checkedPow10(e int32) (uint64, bool) {
	if e < 0 || int(e) >= len(powersOfTen) {
		return 0, false
	}
	return powersOfTen[e], true
}

// composeInt64 returns the exact integer value of n if it is an integer
// (hasFrac/hasExp fractional digits are all zero) and fits int64.
func (n number) composeInt64() (int64, error) {
	if n.overflow {
		return 0, codec.ErrOverflow("number literal does not fit int64")
	}
	mant := n.mantissa
	exp := n.exponent
	if exp < 0 {
		// Negative exponent: only acceptable if the dropped digits are all
		// zero, i.e. the fractional part is exactly .000...
		scale, ok := checkedPow10(-exp)
		if !ok || scale == 0 || mant%scale != 0 {
			return 0, codec.ErrDecimal("number literal has a non-zero fractional part")
		}
		mant /= scale
	} else if exp > 0 {
		scale, ok := checkedPow10(exp)
		if !ok || mant != 0 && scale > math.MaxUint64/mant {
			return 0, codec.ErrOverflow("number literal does not fit int64")
		}
		mant *= scale
	}
	if n.neg {
		const maxMagnitude = uint64(math.MaxInt64) + 1
		if mant > maxMagnitude {
			return 0, codec.ErrOverflow("number literal does not fit int64")
		}
		if mant == maxMagnitude {
			return math.MinInt64, nil
		}
		return -int64(mant), nil
	}
	if mant > math.MaxInt64 {
		return 0, codec.ErrOverflow("number literal does not fit int64")
	}
	return int64(mant), nil
}

// composeUint64 is composeInt64's unsigned counterpart.
func (n number) composeUint64() (uint64, error) {
	if n.overflow {
		return 0, codec.ErrOverflow("number literal does not fit uint64")
	}
	mant := n.mantissa
	exp := n.exponent
	if exp < 0 {
		scale, ok := checkedPow10(-exp)
		if !ok || scale == 0 || mant%scale != 0 {
			return 0, codec.ErrDecimal("number literal has a non-zero fractional part")
		}
		mant /= scale
	} else if exp > 0 {
		scale, ok := checkedPow10(exp)
		if !ok || mant != 0 && scale > math.MaxUint64/mant {
			return 0, codec.ErrOverflow("number literal does not fit uint64")
		}
		mant *= scale
	}
	if n.neg && mant != 0 {
		return 0, codec.ErrOverflow("negative number literal does not fit an unsigned type")
	}
	return mant, nil
}

// composeFloat64 converts n to the nearest float64, using strconv's
// correctly-rounded decimal parser on the canonical digit string rather than
// composing the mantissa/exponent by hand (that composition is only
// exact-integer-preserving, not correctly-rounded for the general case).
func (n number) composeFloat64() (float64, error) {
	f, err := strconv.ParseFloat(n.literal(), 64)
	if err != nil {
		return 0, codec.ErrInvalidEncoding("malformed number literal", err)
	}
	return f, nil
}

func (n number) literal() string {
	sign := ""
	if n.neg {
		sign = "-"
	}
	// n.digits has the decimal point already removed; exponent accounts for
	// where it was, so "digits * 10^exponent" reconstructs the value exactly.
	return sign + string(n.digits) + "e" + strconv.Itoa(int(n.exponent))
}

// isInteger reports whether the literal denotes a whole number (an explicit
// fractional/exponent part is fine as long as it doesn't leave a remainder).
func (n number) isInteger() bool {
	_, err := n.composeUint64()
	if err == nil {
		return true
	}
	if e, ok := codec.AsError(err); ok && e.Kind == codec.KindErrOverflow {
		return true
	}
	return false
}

// ParseUint parses a byte-level JSON number literal (no surrounding
// whitespace or quotes) as an exact uint64, rejecting any literal with a
// non-zero fractional part. It is exported so that callers decoding a
// numeric object key outside of a full document decode (as [Decoder] does
// internally) can reuse the same parser.
func ParseUint(raw []byte) (uint64, error) {
	n, err := parseNumber(raw)
	if err != nil {
		return 0, err
	}
	if n.neg {
		return 0, codec.ErrOverflow("number literal does not fit uint64")
	}
	return n.composeUint64()
}

// ParseInt is [ParseUint]'s signed counterpart.
func ParseInt(raw []byte) (int64, error) {
	n, err := parseNumber(raw)
	if err != nil {
		return 0, err
	}
	return n.composeInt64()
}
