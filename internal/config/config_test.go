package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 8080
read_timeout = 10
write_timeout = 10
idle_timeout = 60
shutdown_timeout = 15

[database]
host = "localhost"
port = 5432
user = "carwash"
password = "from-file"
dbname = "carwash"

[logs]
level = "info"

[metrics]
enabled = true
path = "/metrics"
service_name = "carwash_bot"

[state]
backend = "redis"
ttl = 3600

[booking_api]
url = "http://localhost:5000"
timeout = 5

[recognizer]
endpoint = "http://localhost:5001/classify"
min_score = 0.5
timeout = 5

[knowledge]
file = "faq.yaml"
min_score = 0.4

[auth]
jwt_secret = "file-secret-0123456789"

[smtp]
host = "smtp.example.com"
port = 587
from = "noreply@example.com"
contact = "carwash@example.com"

[rate_limit]
per_second = 1.0
burst = 5

[bot]
companies = ["Contoso", "Fabrikam"]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("JWT_SECRET", "env-secret-0123456789")

	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "env-secret-0123456789", cfg.Auth.JWTSecret)
	assert.Equal(t, "redis", cfg.State.Backend)
	assert.Equal(t, time.Hour, cfg.State.TTLDuration())
	assert.Equal(t, []string{"Contoso", "Fabrikam"}, cfg.Bot.Companies)
	assert.Equal(t, "host=localhost port=5432 user=carwash password=from-env dbname=carwash sslmode=disable", cfg.Database.DSN())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)

	_, err = Load(writeConfig(t, "[server\n"))
	assert.ErrorIs(t, err, ErrReadConfig)

	invalid := strings.Replace(validConfig, `backend = "redis"`, `backend = "etcd"`, 1)
	_, err = Load(writeConfig(t, invalid))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
