package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DUPLICATES_SIMILARITY_THRESHOLD", "0.75")

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "0.0.0.0:9090", cfg.ServerAddr())
	require.Equal(t, 0.75, cfg.Duplicates.SimilarityThreshold)
	require.Equal(t, 3*24*time.Hour, cfg.Duplicates.Window())
	require.Equal(t, 30, cfg.FollowUp.DefaultFrequencyDays)
	require.Equal(t, 10*time.Minute, cfg.Redis.GraphTTL)
	require.False(t, cfg.Redis.Enabled())
}

func TestValidate(t *testing.T) {
	valid := Config{
		Server:     ServerConfig{Port: 8080},
		Postgres:   PostgresConfig{Host: "db", User: "u", Password: "p", DBName: "d"},
		Duplicates: DuplicatesConfig{SimilarityThreshold: 0.8},
	}
	require.NoError(t, valid.Validate())

	noPort := valid
	noPort.Server.Port = 0
	require.Error(t, noPort.Validate())

	noCreds := valid
	noCreds.Postgres.Password = ""
	require.Error(t, noCreds.Validate())

	badThreshold := valid
	badThreshold.Duplicates.SimilarityThreshold = 1.5
	require.Error(t, badThreshold.Validate())

	negative := valid
	negative.FollowUp.DefaultFrequencyDays = -1
	require.Error(t, negative.Validate())
}

func TestPostgresDSN(t *testing.T) {
	p := PostgresConfig{Host: "h", Port: 5432, User: "u", Password: "p", DBName: "d", SSLMode: "disable"}
	require.Equal(t, "host=h port=5432 user=u password=p dbname=d sslmode=disable", p.DSN())
}
