package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MixinNetwork/rational/common"
	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/logger"
	"github.com/MixinNetwork/rational/rpc"
	"github.com/urfave/cli/v2"
)

func setupCmd(c *cli.Context) error {
	custom := config.Default()
	if file := c.String("config"); file != "" {
		cfg, err := config.Initialize(file)
		if err != nil {
			return err
		}
		custom = cfg
	}
	if c.IsSet("log") {
		custom.Log.Level = c.Int("log")
	}
	if c.IsSet("filter") {
		custom.Log.Filter = c.String("filter")
	}
	logger.SetLevel(custom.Log.Level)
	logger.SetLimiter(custom.Log.Limiter)
	err := logger.SetFilter(custom.Log.Filter)
	if err != nil {
		return err
	}
	c.App.Metadata = map[string]interface{}{"config": custom}
	return nil
}

func customFromContext(c *cli.Context) *config.Custom {
	if custom, ok := c.App.Metadata["config"].(*config.Custom); ok {
		return custom
	}
	return config.Default()
}

func rationalFlag(c *cli.Context, name string) (common.Rational, error) {
	r, err := common.ParseRational(c.String(name))
	if err != nil {
		return r, fmt.Errorf("invalid %s %q: %w", name, c.String(name), err)
	}
	logger.Debugf("PARSE %s %s => %s", name, c.String(name), r)
	return r, nil
}

func binaryFlags(c *cli.Context) (common.Rational, common.Rational, error) {
	x, err := rationalFlag(c, "x")
	if err != nil {
		return x, x, err
	}
	y, err := rationalFlag(c, "y")
	return x, y, err
}

func arithmeticCmd(op string) cli.ActionFunc {
	return func(c *cli.Context) error {
		x, y, err := binaryFlags(c)
		if err != nil {
			return err
		}
		var r common.Rational
		switch op {
		case "add":
			r = x.Add(y)
		case "sub":
			r = x.Sub(y)
		case "mul":
			r = x.Mul(y)
		case "div":
			r, err = x.Div(y)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("invalid operation %s", op)
		}
		logger.Verbosef("%s %s %s => %s/%s", op, x, y, r.Num(), r.Denom())
		fmt.Println(r.String())
		return nil
	}
}

func negCmd(c *cli.Context) error {
	x, err := rationalFlag(c, "x")
	if err != nil {
		return err
	}
	fmt.Println(x.Neg().String())
	return nil
}

func cmpCmd(c *cli.Context) error {
	x, y, err := binaryFlags(c)
	if err != nil {
		return err
	}
	if x.Denom().Sign() < 0 || y.Denom().Sign() < 0 {
		logger.Verbosef("cmp %s %s with a negative denominator, the order is inverted", x, y)
	}
	fmt.Println(x.Cmp(y))
	return nil
}

func equalCmd(c *cli.Context) error {
	x, y, err := binaryFlags(c)
	if err != nil {
		return err
	}
	fmt.Println(x.Equal(y))
	return nil
}

func formatCmd(c *cli.Context) error {
	x, err := rationalFlag(c, "x")
	if err != nil {
		return err
	}
	fmt.Println(x.String())
	return nil
}

func decimalCmd(c *cli.Context) error {
	x, err := rationalFlag(c, "x")
	if err != nil {
		return err
	}
	places := c.Int("places")
	if places < 0 {
		places = customFromContext(c).Format.Precision
	}
	if places > config.MaximumPrecision {
		return fmt.Errorf("invalid decimal places %d", places)
	}
	fmt.Println(x.Decimal(int32(places)))
	return nil
}

func fromDecimalCmd(c *cli.Context) error {
	r, err := common.NewRationalFromDecimal(c.String("x"))
	if err != nil {
		return err
	}
	fmt.Printf("value:\t%s\n", r.String())
	fmt.Printf("raw:\t%s/%s\n", r.Num(), r.Denom())
	return nil
}

func encodeCmd(c *cli.Context) error {
	var rs []common.Rational
	for _, s := range c.StringSlice("x") {
		r, err := common.ParseRational(s)
		if err != nil {
			return fmt.Errorf("invalid x %q: %w", s, err)
		}
		rs = append(rs, r)
	}
	if c.Bool("compress") || customFromContext(c).Format.Compress {
		fmt.Println(hex.EncodeToString(common.CompressMsgpackMarshalPanic(rs)))
	} else {
		fmt.Println(hex.EncodeToString(common.MsgpackMarshalPanic(rs)))
	}
	return nil
}

func decodeCmd(c *cli.Context) error {
	raw, err := hex.DecodeString(c.String("raw"))
	if err != nil {
		return err
	}
	var rs []common.Rational
	err = common.DecompressMsgpackUnmarshal(raw, &rs)
	if err != nil {
		return err
	}
	for i, r := range rs {
		fmt.Printf("%d:\t%s/%s\t%s\n", i, r.Num(), r.Denom(), r.String())
	}
	return nil
}

func demoCmd(c *cli.Context) error {
	failed := 0
	for _, a := range demoAssertions() {
		ok, err := a.check()
		switch {
		case err != nil:
			failed++
			fmt.Printf("FAIL\t%s\t%s\n", a.name, err.Error())
		case !ok:
			failed++
			fmt.Printf("FAIL\t%s\n", a.name)
		default:
			fmt.Printf("ok\t%s\n", a.name)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d demo assertions failed", failed)
	}
	return nil
}

func serveCmd(c *cli.Context) error {
	custom := customFromContext(c)
	port := custom.RPC.Port
	if c.IsSet("port") {
		port = c.Int("port")
	}
	logger.Printf("RPC server listening on :%d\n", port)
	return rpc.StartHTTP(custom, port)
}

func callCmd(c *cli.Context) error {
	var params []any
	err := json.Unmarshal([]byte(c.String("params")), &params)
	if err != nil {
		return err
	}
	timeout := time.Duration(customFromContext(c).RPC.Timeout) * time.Second
	data, err := rpc.CallRPC(c.String("node"), c.String("method"), params, timeout)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
