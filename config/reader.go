package config

import (
	"os"

	"github.com/pelletier/go-toml"
)

const (
	BuildVersion = "v0.1.0-BUILD_VERSION"

	DefaultLogLevel    = 2
	DefaultPrecision   = 8
	DefaultRPCPort     = 6860
	DefaultRPCTimeout  = 20
	MaximumPrecision   = 1024
	RequestMaximumSize = 1024 * 64
)

type Custom struct {
	Log struct {
		Level   int    `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"log"`
	Format struct {
		Precision int  `toml:"precision"`
		Compress  bool `toml:"compress"`
	} `toml:"format"`
	RPC struct {
		Port    int `toml:"port"`
		Timeout int `toml:"timeout"`
	} `toml:"rpc"`
}

func Default() *Custom {
	var config Custom
	config.fillDefaults()
	return &config
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var config Custom
	err = toml.Unmarshal(f, &config)
	if err != nil {
		return nil, err
	}
	config.fillDefaults()
	return &config, nil
}

func (c *Custom) fillDefaults() {
	if c.Log.Level == 0 {
		c.Log.Level = DefaultLogLevel
	}
	if c.Format.Precision <= 0 {
		c.Format.Precision = DefaultPrecision
	}
	if c.Format.Precision > MaximumPrecision {
		c.Format.Precision = MaximumPrecision
	}
	if c.RPC.Port == 0 {
		c.RPC.Port = DefaultRPCPort
	}
	if c.RPC.Timeout == 0 {
		c.RPC.Timeout = DefaultRPCTimeout
	}
}
