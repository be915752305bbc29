package cli

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	defer func(v string) { version = v }(version)
	SetVersion("1.4.0")

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "notekeeper 1.4.0")
	assert.Contains(t, out, runtime.Version())
	assert.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestVersionCmd_Short(t *testing.T) {
	defer func(v string) { version = v }(version)
	SetVersion("1.4.0")

	out, err := execute(t, "version", "--short")

	require.NoError(t, err)
	assert.Equal(t, "1.4.0\n", out)
}

func TestVersionCmd_RejectsArgs(t *testing.T) {
	_, err := execute(t, "version", "extra")
	assert.Error(t, err)
}
