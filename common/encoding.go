package common

import (
	"strconv"
)

func (r Rational) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(r.String())), nil
}

func (r *Rational) UnmarshalJSON(b []byte) error {
	unquoted, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	v, err := ParseRational(unquoted)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
