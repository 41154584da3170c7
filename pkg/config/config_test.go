package config_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supplychain-analytics/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Chdir(t.TempDir()) // sin .env ni config.env

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.Dataset.Source)
	assert.Equal(t, "data/SCA.csv", cfg.Dataset.Path)
	assert.Equal(t, "png", cfg.Output.ChartFormat)
	assert.Equal(t, 5, cfg.Report.PreviewRows)
	assert.Equal(t, 3, cfg.Report.TopDefects)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvSobrescribeDefecto(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SCA_DATA_PATH", "/tmp/otro.csv")
	t.Setenv("SCA_CHART_FORMAT", "SVG")
	t.Setenv("SCA_TOP_DEFECTS", "5")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/otro.csv", cfg.Dataset.Path)
	assert.Equal(t, "svg", cfg.Output.ChartFormat, "el formato se normaliza a minúsculas")
	assert.Equal(t, 5, cfg.Report.TopDefects)
}

func TestLoadWithFlags_FlagGanaSobreEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SCA_OUTPUT_DIR", "desde-env")

	fs := pflag.NewFlagSet("report", pflag.ContinueOnError)
	fs.String("out", "out", "")
	fs.String("data", "data/SCA.csv", "")
	require.NoError(t, fs.Parse([]string{"--out", "desde-flag"}))

	cfg, err := config.LoadWithFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, "desde-flag", cfg.Output.Dir)
	assert.Equal(t, "data/SCA.csv", cfg.Dataset.Path, "un flag no pasado no pisa el default")
}

func TestLoad_FormatoInvalido(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SCA_CHART_FORMAT", "gif")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCA_CHART_FORMAT")
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss:w/rd", DBName: "sc", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss%3Aw%2Frd@db:5432/sc?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
