package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estacionamientos-api/pkg/config"
)

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "estacionamientos", cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "Abono", cfg.Backfill.ServiceMatch)
	assert.Equal(t, 1, cfg.Backfill.DefaultDays)
	assert.Equal(t, 30, cfg.Backfill.FallbackDivisor)
	assert.Equal(t, "single", cfg.Backfill.CommitMode)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BACKFILL_COMMIT_MODE", "per_abono")
	t.Setenv("BACKFILL_DEFAULT_DAYS", "30")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "per_abono", cfg.Backfill.CommitMode)
	assert.Equal(t, 30, cfg.Backfill.DefaultDays)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestLoad_ModoDeCommitInvalido(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BACKFILL_COMMIT_MODE", "todo")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "estacionamientos", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/estacionamientos?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgresql://otro"
	assert.Equal(t, "postgresql://otro", c.ConnectionString())
}
