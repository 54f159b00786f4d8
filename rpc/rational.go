package rpc

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/MixinNetwork/rational/common"
	"github.com/MixinNetwork/rational/config"
)

func rationalView(r common.Rational) map[string]interface{} {
	return map[string]interface{}{
		"value": r.String(),
		"num":   r.Num().String(),
		"den":   r.Denom().String(),
	}
}

func parseParams(params []interface{}, count int) ([]common.Rational, error) {
	if len(params) != count {
		return nil, errors.New("invalid params count")
	}
	rs := make([]common.Rational, count)
	for i, p := range params {
		r, err := common.ParseRational(fmt.Sprint(p))
		if err != nil {
			return nil, err
		}
		rs[i] = r
	}
	return rs, nil
}

func arithmetic(method string, params []interface{}) (map[string]interface{}, error) {
	rs, err := parseParams(params, 2)
	if err != nil {
		return nil, err
	}
	x, y := rs[0], rs[1]
	switch method {
	case "add":
		return rationalView(x.Add(y)), nil
	case "sub":
		return rationalView(x.Sub(y)), nil
	case "mul":
		return rationalView(x.Mul(y)), nil
	case "div":
		q, err := x.Div(y)
		if err != nil {
			return nil, err
		}
		return rationalView(q), nil
	}
	return nil, fmt.Errorf("invalid method %s", method)
}

func negate(params []interface{}) (map[string]interface{}, error) {
	rs, err := parseParams(params, 1)
	if err != nil {
		return nil, err
	}
	return rationalView(rs[0].Neg()), nil
}

func compare(params []interface{}) (int, error) {
	rs, err := parseParams(params, 2)
	if err != nil {
		return 0, err
	}
	return rs[0].Cmp(rs[1]), nil
}

func equal(params []interface{}) (bool, error) {
	rs, err := parseParams(params, 2)
	if err != nil {
		return false, err
	}
	return rs[0].Equal(rs[1]), nil
}

func format(params []interface{}) (string, error) {
	rs, err := parseParams(params, 1)
	if err != nil {
		return "", err
	}
	return rs[0].String(), nil
}

func parse(params []interface{}) (map[string]interface{}, error) {
	rs, err := parseParams(params, 1)
	if err != nil {
		return nil, err
	}
	return rationalView(rs[0]), nil
}

func hash(params []interface{}) (string, error) {
	rs, err := parseParams(params, 1)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(rs[0].Hash(), 10), nil
}

func toDecimal(custom *config.Custom, params []interface{}) (string, error) {
	places := custom.Format.Precision
	switch len(params) {
	case 1:
	case 2:
		n, err := strconv.Atoi(fmt.Sprint(params[1]))
		if err != nil {
			return "", err
		}
		if n < 0 || n > config.MaximumPrecision {
			return "", fmt.Errorf("invalid decimal places %d", n)
		}
		places = n
		params = params[:1]
	default:
		return "", errors.New("invalid params count")
	}
	rs, err := parseParams(params, 1)
	if err != nil {
		return "", err
	}
	return rs[0].Decimal(int32(places)), nil
}

func fromDecimal(params []interface{}) (map[string]interface{}, error) {
	if len(params) != 1 {
		return nil, errors.New("invalid params count")
	}
	r, err := common.NewRationalFromDecimal(fmt.Sprint(params[0]))
	if err != nil {
		return nil, err
	}
	return rationalView(r), nil
}
