package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd(t *testing.T) {
	cmd := ServeCmd()
	assert.Equal(t, "serve", cmd.Use)
	assert.Equal(t, "Start the HTTP API", cmd.Short)

	flags := cmd.Flags()
	require.NotNil(t, flags.Lookup("migrate"))
	assert.Equal(t, "true", flags.Lookup("migrate").DefValue)
	require.NotNil(t, flags.Lookup("seed"))
	assert.Equal(t, "false", flags.Lookup("seed").DefValue)
}

func TestMigrateCmd(t *testing.T) {
	cmd := MigrateCmd()
	assert.Equal(t, "migrate", cmd.Use)
	assert.Equal(t, "Create or update the database schema", cmd.Short)
}

func TestSeedCmd(t *testing.T) {
	cmd := SeedCmd()
	assert.Equal(t, "seed", cmd.Use)
	assert.Equal(t, "Load the demo dataset into an empty database", cmd.Short)
}

func TestRootCmd(t *testing.T) {
	root := newRootCmd()
	assert.NotNil(t, root.RunE, "root runs the server by default")
	assert.NotNil(t, root.Flags().Lookup("seed"))

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "migrate", "seed"})
}
