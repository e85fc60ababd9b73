package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// rootCmd is shared between tests; flags changed by a previous run
	// must not leak into this one.
	rootCmd.Flags().Visit(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// TestExecute_ListsInterfaces tests the plain listing path.
func TestExecute_ListsInterfaces(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)

	if !strings.Contains(out, ": ") {
		t.Skip("no network interfaces on this system")
	}
	assert.Contains(t, out, "<")
}

// TestExecute_FamilyFilter tests that a link-only listing never shows
// IP addresses.
func TestExecute_FamilyFilter(t *testing.T) {
	out, err := execute(t, "--family", "link")
	require.NoError(t, err)
	assert.NotContains(t, out, "IPv4")
	assert.NotContains(t, out, "IPv6")
}

// TestExecute_RejectsBadFamily tests config validation through the CLI.
func TestExecute_RejectsBadFamily(t *testing.T) {
	_, err := execute(t, "--family", "ipx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown address family")
}

// TestExecute_RejectsBadLevel tests log level validation through the CLI.
func TestExecute_RejectsBadLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}
