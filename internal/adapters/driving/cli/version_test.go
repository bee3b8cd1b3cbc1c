package cli

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useVersion sets the reported version for one test.
func useVersion(t *testing.T, v string) {
	t.Helper()
	original := version
	SetVersion(v)
	t.Cleanup(func() {
		SetVersion(original)
		versionShort = false
		resetFlags()
	})
}

func TestVersionCmd_ReportsSetVersion(t *testing.T) {
	useVersion(t, "1.4.2")

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "jotter version 1.4.2")
	assert.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestVersionCmd_DefaultsToDev(t *testing.T) {
	useVersion(t, "dev")

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "jotter version dev")
}

func TestVersionCmd_Short(t *testing.T) {
	useVersion(t, "1.4.2")

	out, err := execute(t, "version", "--short")

	require.NoError(t, err)
	assert.Equal(t, "1.4.2\n", out)
}

func TestVersionCmd_RejectsArgs(t *testing.T) {
	useVersion(t, "1.4.2")

	_, err := execute(t, "version", "extra")

	assert.Error(t, err)
}
