package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"expense_tracker/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	assert.NotNil(t, rootCmd, "rootCmd should be defined")
	assert.Equal(t, "ledger", rootCmd.Use)
	assert.Contains(t, rootCmd.Short, "expense transactions")
	assert.Contains(t, rootCmd.Long, "Ledger keeps")

	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "categories")
	assert.NotNil(t, serveCmd.Flags().Lookup("config"))
}

func TestCategoriesCommand(t *testing.T) {
	var out bytes.Buffer
	categoriesCmd.SetOut(&out)
	t.Cleanup(func() { categoriesCmd.SetOut(nil) })

	categoriesCmd.Run(categoriesCmd, nil)

	assert.Equal(t, domain.Categories(), strings.Fields(out.String()))
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv(configEnvVar, "from-env.yml")

	assert.Equal(t, "from-flag.yml", resolveConfigPath("from-flag.yml"))
	assert.Equal(t, "from-env.yml", resolveConfigPath(""))

	t.Setenv(configEnvVar, "")
	assert.Empty(t, resolveConfigPath(""))
}

func TestServe_InvalidConfig(t *testing.T) {
	err := serve(t.Context(), filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
