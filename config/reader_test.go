package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	require := require.New(t)

	custom, err := Initialize("./config.example.toml")
	require.Nil(err)

	require.Equal(3, custom.Log.Level)
	require.Equal("(?i)rational", custom.Log.Filter)
	require.Equal(100, custom.Log.Limiter)
	require.Equal(12, custom.Format.Precision)
	require.Equal(true, custom.Format.Compress)
	require.Equal(7860, custom.RPC.Port)
	require.Equal(5, custom.RPC.Timeout)
}

func TestConfigDefaults(t *testing.T) {
	require := require.New(t)

	custom := Default()
	require.Equal(DefaultLogLevel, custom.Log.Level)
	require.Equal("", custom.Log.Filter)
	require.Equal(DefaultPrecision, custom.Format.Precision)
	require.Equal(false, custom.Format.Compress)
	require.Equal(DefaultRPCPort, custom.RPC.Port)
	require.Equal(DefaultRPCTimeout, custom.RPC.Timeout)

	dir := t.TempDir()
	file := filepath.Join(dir, "partial.toml")
	err := os.WriteFile(file, []byte("[format]\nprecision = 4096\n"), 0644)
	require.Nil(err)
	custom, err = Initialize(file)
	require.Nil(err)
	require.Equal(MaximumPrecision, custom.Format.Precision)
	require.Equal(DefaultRPCPort, custom.RPC.Port)

	err = os.WriteFile(file, []byte("[format\n"), 0644)
	require.Nil(err)
	_, err = Initialize(file)
	require.NotNil(err)

	_, err = Initialize(filepath.Join(dir, "missing.toml"))
	require.NotNil(err)
}
