package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("APP_ENV", "development")
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCmd_SubcomandosRegistrados(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["migrate"])
	assert.True(t, names["seed"])
	assert.True(t, names["create-admin"])

	sub := map[string]bool{}
	for _, c := range migrateCmd.Commands() {
		sub[c.Name()] = true
	}
	assert.True(t, sub["up"])
	assert.True(t, sub["down"])
	assert.True(t, sub["version"])
}

func TestMigrateDown_ArgumentoInvalido(t *testing.T) {
	_, err := execute(t, "migrate", "down", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entero positivo")
}

func TestCreateAdmin_SinPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")
	_, err := execute(t, "create-admin", "--username", "admin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_PASSWORD")
}
