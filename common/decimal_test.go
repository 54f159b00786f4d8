package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRationalDecimal(t *testing.T) {
	assert := assert.New(t)

	r, err := NewRationalFromDecimal("0.25")
	assert.Nil(err)
	assert.Equal("25", r.Num().String())
	assert.Equal("100", r.Denom().String())
	assert.Equal("1/4", r.String())

	r, err = NewRationalFromDecimal("1.50")
	assert.Nil(err)
	assert.Equal("3/2", r.String())
	r, err = NewRationalFromDecimal("-0.5")
	assert.Nil(err)
	assert.True(r.Equal(ratio(-1, 2)))
	r, err = NewRationalFromDecimal("12")
	assert.Nil(err)
	assert.Equal("12", r.String())
	_, err = NewRationalFromDecimal("1/2")
	assert.NotNil(err)
	r, err = NewRationalFromDecimal("1e1024")
	assert.Nil(err)
	assert.Equal(1025, len(r.String()))
	_, err = NewRationalFromDecimal("1e300000000")
	assert.ErrorIs(err, ErrInvalidArgument)
	_, err = NewRationalFromDecimal("1e-1025")
	assert.ErrorIs(err, ErrInvalidArgument)

	assert.Equal("0.33", ratio(1, 3).Decimal(2))
	assert.Equal("0.6667", ratio(2, 3).Decimal(4))
	assert.Equal("-0.13", ratio(-1, 8).Decimal(2))
	assert.Equal("1", ratio(1, 2).Decimal(0))
	assert.Equal("0.00000000", Rational{}.Decimal(8))
	assert.Equal("0.10655738", ratio(117, 1098).Decimal(8))
}
