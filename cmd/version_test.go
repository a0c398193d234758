package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	Version = "1.0.0-test"
	defer func() { Version = "dev" }()

	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "1.0.0-test\n", stdout)
}

func TestVersionCmd_Default(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "dev\n", stdout)
}
