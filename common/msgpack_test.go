package common

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRationalMsgpack(t *testing.T) {
	require := require.New(t)

	r := ratio(1, 2)
	p := MsgpackMarshalPanic(r)
	require.Equal("d60100010102", hex.EncodeToString(p))
	var v Rational
	err := MsgpackUnmarshal(p, &v)
	require.Nil(err)
	require.Equal("1", v.Num().String())
	require.Equal("2", v.Denom().String())

	r = ratio(6, -8)
	p = MsgpackMarshalPanic(r)
	err = MsgpackUnmarshal(p, &v)
	require.Nil(err)
	require.Equal("6", v.Num().String())
	require.Equal("-8", v.Denom().String())
	require.Equal(r.Hash(), v.Hash())

	a := ratio(123456789, 987654321)
	b := a
	err = MsgpackUnmarshal(MsgpackMarshalPanic(ratio(5, 7)), &b)
	require.Nil(err)
	require.Equal("5/7", b.String())
	require.Equal("123456789", a.Num().String())
	require.Equal("987654321", a.Denom().String())

	err = MsgpackUnmarshal([]byte{0xc1}, &v)
	require.NotNil(err)
	require.Contains(err.Error(), "MsgpackUnmarshal: c1")
}

func TestRationalCompression(t *testing.T) {
	require := require.New(t)

	rates := []Rational{ratio(1, 2), ratio(-117, 1098), ratio(2000000000, 4000000000)}
	data := CompressMsgpackMarshalPanic(rates)
	require.Equal(CompressionVersionLatest, data[:len(CompressionVersionLatest)])

	var decoded []Rational
	err := DecompressMsgpackUnmarshal(data, &decoded)
	require.Nil(err)
	require.Len(decoded, 3)
	for i, r := range rates {
		require.Equal(r.Num().String(), decoded[i].Num().String())
		require.Equal(r.Denom().String(), decoded[i].Denom().String())
	}

	large := zstdEncoder.EncodeAll(make([]byte, DecompressionMaximumMemory*2), nil)
	large = append(append([]byte{}, CompressionVersionLatest...), large...)
	err = DecompressMsgpackUnmarshal(large, &decoded)
	require.NotNil(err)

	decoded = nil
	err = DecompressMsgpackUnmarshal(MsgpackMarshalPanic(rates), &decoded)
	require.Nil(err)
	require.Len(decoded, 3)
	require.Equal("-117", decoded[1].Num().String())
}

func TestRationalJSON(t *testing.T) {
	assert := assert.New(t)

	b, err := json.Marshal(map[string]Rational{"rate": ratio(-2, 4)})
	assert.Nil(err)
	assert.Equal(`{"rate":"-1/2"}`, string(b))

	var body struct {
		Rate Rational `json:"rate"`
	}
	err = json.Unmarshal([]byte(`{"rate":"117/1098"}`), &body)
	assert.Nil(err)
	assert.Equal("117", body.Rate.Num().String())
	assert.Equal("13/122", body.Rate.String())

	a := ratio(123456789, 987654321)
	c := a
	err = json.Unmarshal([]byte(`"5/7"`), &c)
	assert.Nil(err)
	assert.Equal("5/7", c.String())
	assert.Equal("123456789", a.Num().String())
	assert.Equal("987654321", a.Denom().String())

	err = json.Unmarshal([]byte(`{"rate":"1/2/3"}`), &body)
	assert.ErrorIs(err, ErrInvalidArgument)
	err = json.Unmarshal([]byte(`{"rate":12}`), &body)
	assert.NotNil(err)
}
