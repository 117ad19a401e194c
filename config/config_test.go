package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: test
  serviceName: gearshare
http:
  port: 9090
database:
  driver: sqlite
sqlite:
  path: ":memory:"
secretKey:
  session: from-file
auth:
  loginTokenTTL: 2h
`

func TestLoadWithEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_SESSION", "from-env")
	t.Setenv("HTTP_PORT", "9191")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, 9191, cfg.HTTP.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.SQLite.Path)
	assert.Equal(t, "from-env", cfg.SecretKey.Session)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 2*time.Hour, cfg.Auth.LoginTokenTTL)
	assert.Nil(t, cfg.Postgres)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.ErrorContains(t, err, "config file config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Driver = DriverSQLite

	cfg.ApplyDefaults()

	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "gearshare.sqlite", cfg.SQLite.Path)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.RegistrationTokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.Auth.LoginTokenTTL)
	assert.Equal(t, "gearshare", cfg.Auth.Issuer)

	empty := &Config{}
	empty.ApplyDefaults()
	assert.Equal(t, DriverPostgres, empty.Database.Driver)
	assert.Nil(t, empty.SQLite)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.SecretKey.Session = "secret"
		cfg.Database.Driver = DriverSQLite

		return cfg
	}

	require.NoError(t, valid().Validate())

	noSecret := valid()
	noSecret.SecretKey.Session = "   "
	assert.ErrorContains(t, noSecret.Validate(), "secretKey.session")

	noPostgres := valid()
	noPostgres.Database.Driver = DriverPostgres
	assert.ErrorContains(t, noPostgres.Validate(), "postgres settings are required")

	unknown := valid()
	unknown.Database.Driver = "mysql"
	assert.ErrorContains(t, unknown.Validate(), "unknown database driver: mysql")
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1, "a replica without a port ends the list")
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "5433", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
}
