package common

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/cespare/xxhash/v2"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")

	bigOne = big.NewInt(1)
)

type ParseError struct {
	Literal string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid integer literal %q", e.Literal)
}

// Rational is an immutable num/den pair over arbitrary-precision integers.
// The pair is kept exactly as constructed, neither reduced nor sign
// normalized. Only Equal and String reduce, on a private copy.
//
// The zero value is 0, its denominator reads as 1.
type Rational struct {
	num big.Int
	den big.Int
}

func NewRational(x, y *big.Int) (Rational, error) {
	return makeRatio(new(big.Int).Set(x), new(big.Int).Set(y))
}

func NewRationalFromInt64(x, y int64) (Rational, error) {
	return makeRatio(big.NewInt(x), big.NewInt(y))
}

// ParseRational accepts "n" or "n/d" with decimal integer literals.
func ParseRational(s string) (Rational, error) {
	parts := strings.Split(s, "/")
	switch len(parts) {
	case 1:
		n, err := parseInteger(parts[0])
		if err != nil {
			return Rational{}, err
		}
		return makeRatio(n, big.NewInt(1))
	case 2:
		n, err := parseInteger(parts[0])
		if err != nil {
			return Rational{}, err
		}
		d, err := parseInteger(parts[1])
		if err != nil {
			return Rational{}, err
		}
		return makeRatio(n, d)
	default:
		return Rational{}, fmt.Errorf("%w: invalid format %q", ErrInvalidArgument, s)
	}
}

func parseInteger(s string) (*big.Int, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, &ParseError{Literal: s}
	}
	return i, nil
}

// makeRatio takes ownership of num and den.
func makeRatio(num, den *big.Int) (v Rational, err error) {
	if den.Sign() == 0 {
		return v, fmt.Errorf("%w: denominator cannot be 0", ErrInvalidArgument)
	}
	v.num.Set(num)
	v.den.Set(den)
	return v, nil
}

func mustRatio(num, den *big.Int) Rational {
	v, err := makeRatio(num, den)
	if err != nil {
		panic(fmt.Errorf("mustRatio(%s, %s) => %v", num, den, err))
	}
	return v
}

func (r Rational) denom() *big.Int {
	if r.den.Sign() == 0 {
		return bigOne
	}
	return &r.den
}

func (r Rational) Num() *big.Int {
	return new(big.Int).Set(&r.num)
}

func (r Rational) Denom() *big.Int {
	return new(big.Int).Set(r.denom())
}

func (r Rational) Add(o Rational) Rational {
	num := new(big.Int).Mul(&r.num, o.denom())
	num.Add(num, new(big.Int).Mul(r.denom(), &o.num))
	den := new(big.Int).Mul(r.denom(), o.denom())
	return mustRatio(num, den)
}

func (r Rational) Sub(o Rational) Rational {
	num := new(big.Int).Mul(&r.num, o.denom())
	num.Sub(num, new(big.Int).Mul(r.denom(), &o.num))
	den := new(big.Int).Mul(r.denom(), o.denom())
	return mustRatio(num, den)
}

func (r Rational) Mul(o Rational) Rational {
	num := new(big.Int).Mul(&r.num, &o.num)
	den := new(big.Int).Mul(r.denom(), o.denom())
	return mustRatio(num, den)
}

// Div fails with ErrInvalidArgument when o is zero, the resulting
// denominator being zero.
func (r Rational) Div(o Rational) (Rational, error) {
	num := new(big.Int).Mul(&r.num, o.denom())
	den := new(big.Int).Mul(r.denom(), &o.num)
	return makeRatio(num, den)
}

func (r Rational) Neg() Rational {
	return mustRatio(new(big.Int).Neg(&r.num), r.Denom())
}

// Cmp compares by cross multiplication of the raw pairs, so the result is
// only meaningful when both denominators are positive. A negative
// denominator on either side inverts the ordering.
func (r Rational) Cmp(o Rational) int {
	x := new(big.Int).Mul(&r.num, o.denom())
	y := new(big.Int).Mul(r.denom(), &o.num)
	return x.Cmp(y)
}

func (r Rational) Sign() int {
	return r.num.Sign() * r.denom().Sign()
}

// Equal reduces both sides to lowest terms and compares their float64
// quotients. Identical raw pairs are equal without conversion.
func (r Rational) Equal(o Rational) bool {
	if r.num.Cmp(&o.num) == 0 && r.denom().Cmp(o.denom()) == 0 {
		return true
	}
	return r.simplify().Float64() == o.simplify().Float64()
}

func (r Rational) Float64() float64 {
	n, _ := new(big.Float).SetInt(&r.num).Float64()
	d, _ := new(big.Float).SetInt(r.denom()).Float64()
	return n / d
}

// simplify divides both terms by their non-negative GCD, signs untouched.
func (r Rational) simplify() Rational {
	gcd := new(big.Int).GCD(nil, nil, &r.num, r.denom())
	num := new(big.Int).Quo(&r.num, gcd)
	den := new(big.Int).Quo(r.denom(), gcd)
	return mustRatio(num, den)
}

// Hash combines the raw numerator and denominator, so two values that are
// Equal may still hash differently, e.g. 1/2 and 2/4.
func (r Rational) Hash() uint64 {
	return 31*hashInteger(&r.num) + hashInteger(r.denom())
}

func hashInteger(i *big.Int) uint64 {
	var sign [1]byte
	if i.Sign() < 0 {
		sign[0] = 1
	}
	h := xxhash.New()
	h.Write(sign[:])
	h.Write(i.Bytes())
	return h.Sum64()
}

func (r Rational) String() string {
	den := r.denom()
	if den.Cmp(bigOne) == 0 || new(big.Int).Rem(&r.num, den).Sign() == 0 {
		return new(big.Int).Quo(&r.num, den).String()
	}
	s := r.simplify()
	if s.den.Sign() < 0 || (s.num.Sign() < 0 && s.den.Sign() < 0) {
		s = mustRatio(new(big.Int).Neg(&s.num), new(big.Int).Neg(&s.den))
	}
	return s.fraction()
}

func (r Rational) fraction() string {
	return r.num.String() + "/" + r.denom().String()
}

// Bytes encodes the raw pair as one sign byte, the uvarint length of the
// numerator magnitude, then both magnitudes big endian.
func (r Rational) Bytes() []byte {
	var sign byte
	if r.num.Sign() < 0 {
		sign |= 1
	}
	if r.denom().Sign() < 0 {
		sign |= 2
	}
	n, d := r.num.Bytes(), r.denom().Bytes()
	buf := make([]byte, 1, 1+binary.MaxVarintLen64+len(n)+len(d))
	buf[0] = sign
	buf = binary.AppendUvarint(buf, uint64(len(n)))
	buf = append(buf, n...)
	return append(buf, d...)
}

func NewRationalFromBytes(b []byte) (Rational, error) {
	if len(b) < 2 {
		return Rational{}, fmt.Errorf("invalid rational bytes %x", b)
	}
	sign := b[0]
	l, size := binary.Uvarint(b[1:])
	if size <= 0 || uint64(len(b)-1-size) < l {
		return Rational{}, fmt.Errorf("invalid rational bytes %x", b)
	}
	b = b[1+size:]
	num := new(big.Int).SetBytes(b[:l])
	den := new(big.Int).SetBytes(b[l:])
	if sign&1 != 0 {
		num.Neg(num)
	}
	if sign&2 != 0 {
		den.Neg(den)
	}
	return makeRatio(num, den)
}
