package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	version, _ := buildVersion()
	assert.Contains(t, out.String(), "meshtrace\t "+version)
	assert.Contains(t, out.String(), "config schema\t 1")
}

func TestBuildVersion_NeverEmpty(t *testing.T) {
	version, goVersion := buildVersion()

	assert.NotEmpty(t, version)
	assert.NotEmpty(t, goVersion)
}
