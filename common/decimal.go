package common

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

const DecimalMaximumExponent = 1024

// NewRationalFromDecimal keeps the decimal scale in the denominator
// without reducing, "0.25" becomes 25/100.
func NewRationalFromDecimal(s string) (Rational, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rational{}, err
	}
	num, exp := d.Coefficient(), d.Exponent()
	if exp > DecimalMaximumExponent || exp < -DecimalMaximumExponent {
		return Rational{}, fmt.Errorf("%w: decimal exponent %d out of range", ErrInvalidArgument, exp)
	}
	if exp >= 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
		return makeRatio(num.Mul(num, scale), big.NewInt(1))
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-exp)), nil)
	return makeRatio(num, den)
}

// Decimal rounds half away from zero to the given number of places.
func (r Rational) Decimal(places int32) string {
	num := decimal.NewFromBigInt(&r.num, 0)
	den := decimal.NewFromBigInt(r.denom(), 0)
	return num.DivRound(den, places).StringFixed(places)
}
