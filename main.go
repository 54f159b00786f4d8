package main

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	defaultRPC := os.Getenv("RATIONAL_RPC")
	if defaultRPC == "" {
		defaultRPC = fmt.Sprintf("http://127.0.0.1:%d", config.DefaultRPCPort)
	}

	app := cli.NewApp()
	app.Name = "rational"
	app.Usage = "Exact rational number arithmetic over arbitrary precision integers."
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the TOML configuration file",
		},
		&cli.StringFlag{
			Name:    "node",
			Aliases: []string{"n"},
			Value:   defaultRPC,
			Usage:   "the RPC endpoint, and the default value is read from environment variable RATIONAL_RPC",
		},
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Usage:   "the log level, overrides the configuration file",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "the RE2 regex pattern to filter log",
		},
	}
	app.Before = setupCmd
	app.EnableBashCompletion = true

	binary := []cli.Flag{
		&cli.StringFlag{
			Name:     "x",
			Usage:    "the first operand `RATIONAL`",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "y",
			Usage:    "the second operand `RATIONAL`",
			Required: true,
		},
	}
	unary := []cli.Flag{
		&cli.StringFlag{
			Name:     "x",
			Usage:    "the operand `RATIONAL`",
			Required: true,
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:   "add",
			Usage:  "Print x + y",
			Action: arithmeticCmd("add"),
			Flags:  binary,
		},
		{
			Name:   "sub",
			Usage:  "Print x - y",
			Action: arithmeticCmd("sub"),
			Flags:  binary,
		},
		{
			Name:   "mul",
			Usage:  "Print x * y",
			Action: arithmeticCmd("mul"),
			Flags:  binary,
		},
		{
			Name:   "div",
			Usage:  "Print x / y",
			Action: arithmeticCmd("div"),
			Flags:  binary,
		},
		{
			Name:   "neg",
			Usage:  "Print -x",
			Action: negCmd,
			Flags:  unary,
		},
		{
			Name:   "cmp",
			Usage:  "Print -1, 0 or 1 by cross multiplying x and y",
			Action: cmpCmd,
			Flags:  binary,
		},
		{
			Name:   "equal",
			Usage:  "Print whether x and y are equal in lowest terms",
			Action: equalCmd,
			Flags:  binary,
		},
		{
			Name:   "format",
			Usage:  "Print the canonical form of x",
			Action: formatCmd,
			Flags:  unary,
		},
		{
			Name:   "decimal",
			Usage:  "Print x as a rounded decimal",
			Action: decimalCmd,
			Flags: append([]cli.Flag{
				&cli.IntFlag{
					Name:  "places",
					Value: -1,
					Usage: "the decimal places, and the default value is read from the configuration file",
				},
			}, unary...),
		},
		{
			Name:   "fromdecimal",
			Usage:  "Convert a decimal literal to a rational",
			Action: fromDecimalCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "x",
					Usage:    "the decimal literal",
					Required: true,
				},
			},
		},
		{
			Name:   "encode",
			Usage:  "Encode rationals as hex msgpack",
			Action: encodeCmd,
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:     "x",
					Usage:    "the `RATIONAL` to encode, repeat for more",
					Required: true,
				},
				&cli.BoolFlag{
					Name:  "compress",
					Usage: "zstd compress the msgpack payload",
				},
			},
		},
		{
			Name:   "decode",
			Usage:  "Decode hex msgpack rationals",
			Action: decodeCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "raw",
					Usage:    "the hex encoded msgpack, compressed or not",
					Required: true,
				},
			},
		},
		{
			Name:   "demo",
			Usage:  "Run the fixed arithmetic assertions",
			Action: demoCmd,
		},
		{
			Name:   "serve",
			Usage:  "Start the JSON RPC server",
			Action: serveCmd,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "port",
					Aliases: []string{"p"},
					Usage:   "the port to listen, and the default value is read from the configuration file",
				},
			},
		},
		{
			Name:   "call",
			Usage:  "Call a method of the JSON RPC server",
			Action: callCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "method",
					Aliases:  []string{"m"},
					Usage:    "the RPC method",
					Required: true,
				},
				&cli.StringFlag{
					Name:  "params",
					Value: "[]",
					Usage: "the JSON encoded params array",
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		logger.Errorf("%s", err.Error())
		os.Exit(1)
	}
}
