package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-d", "db", "-s", "secret",
			"-t", "15", "-h", "argon2id", "-k", "12", "-n", "3", "-m", ":9100",
		}, expectPanic: false,
			expected: &Config{
				EndpointAddrGRPC:      "127.0.0.1:9090",
				DatabaseDSN:           "db",
				SecretKey:             "secret",
				TokenValidityDuration: 15 * time.Minute,
				PasswordHasher:        "argon2id",
				BcryptCost:            12,
				HashConcurrency:       3,
				MetricsAddr:           ":9100",
			}},
		{name: "Test2 zero validity", args: []string{"cmd", "-s", "secret", "-t", "0"},
			expected: &Config{SecretKey: "secret"}},
		{name: "Test3 unknown flags ignored", args: []string{"cmd", "-x", "1", "-s", "k"},
			expected: &Config{SecretKey: "k"}},
		{name: "Test4 bad int", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
