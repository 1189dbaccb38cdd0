package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-fifo/pkg/config"
)

func TestTarget_OcultaPassword(t *testing.T) {
	cfg := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "secreto", DBName: "inv", SSLMode: "disable"}
	got := Target(cfg)
	assert.NotContains(t, got, "secreto")
	assert.Contains(t, got, "app:xxxxx@db:5432/inv")

	cfg.DatabaseURL = "postgres://u@host/x"
	assert.Equal(t, "postgres://u@host/x", Target(cfg))
}

func TestResolveIPv4_Literales(t *testing.T) {
	ip, err := resolveIPv4(context.Background(), "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", ip)

	_, err = resolveIPv4(context.Background(), "::1")
	assert.Error(t, err)
}
