package main

import (
	"math/big"

	"github.com/MixinNetwork/rational/common"
)

type demoAssertion struct {
	name  string
	check func() (bool, error)
}

func divBy(x, y int64) common.Rational {
	r, err := common.NewRationalFromInt64(x, y)
	if err != nil {
		panic(err)
	}
	return r
}

func demoAssertions() []demoAssertion {
	half, third, twoThirds := divBy(1, 2), divBy(1, 3), divBy(2, 3)
	return []demoAssertion{
		{"1/2 + 1/3 == 5/6", func() (bool, error) {
			return half.Add(third).Equal(divBy(5, 6)), nil
		}},
		{"1/2 - 1/3 == 1/6", func() (bool, error) {
			return half.Sub(third).Equal(divBy(1, 6)), nil
		}},
		{"1/2 * 1/3 == 1/6", func() (bool, error) {
			return half.Mul(third).Equal(divBy(1, 6)), nil
		}},
		{"(1/2) / (1/3) == 3/2", func() (bool, error) {
			q, err := half.Div(third)
			return err == nil && q.Equal(divBy(3, 2)), err
		}},
		{"-(1/2) == -1/2", func() (bool, error) {
			return half.Neg().Equal(divBy(-1, 2)), nil
		}},
		{"2/1 formats as 2", func() (bool, error) {
			return divBy(2, 1).String() == "2", nil
		}},
		{"-2/4 formats as -1/2", func() (bool, error) {
			return divBy(-2, 4).String() == "-1/2", nil
		}},
		{"117/1098 formats as 13/122", func() (bool, error) {
			r, err := common.ParseRational("117/1098")
			return err == nil && r.String() == "13/122", err
		}},
		{"1/2 < 2/3", func() (bool, error) {
			return half.Cmp(twoThirds) < 0, nil
		}},
		{"1/3 <= 1/2 <= 2/3", func() (bool, error) {
			return third.Cmp(half) <= 0 && half.Cmp(twoThirds) <= 0, nil
		}},
		{"2000000000/4000000000 == 1/2", func() (bool, error) {
			return divBy(2000000000, 4000000000).Equal(half), nil
		}},
		{"40 digit ratio == 1/2", func() (bool, error) {
			x, _ := new(big.Int).SetString("912016490186296920119201192141970416029", 10)
			y, _ := new(big.Int).SetString("1824032980372593840238402384283940832058", 10)
			r, err := common.NewRational(x, y)
			return err == nil && r.Equal(half), err
		}},
	}
}
