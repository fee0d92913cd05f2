package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-tracker/pkg/config"
)

func TestApplyPoolLimits(t *testing.T) {
	pc, err := pgxpool.ParseConfig("postgres://pos@localhost:5432/pos_tracker?sslmode=disable")
	require.NoError(t, err)

	applyPoolLimits(pc, config.DBConfig{MaxConns: 10, MinConns: 3, AppName: "pos-tracker"})
	assert.Equal(t, int32(10), pc.MaxConns)
	assert.Equal(t, int32(3), pc.MinConns)
	assert.Equal(t, "pos-tracker", pc.ConnConfig.RuntimeParams["application_name"])
}

func TestApplyPoolLimits_ValoresPorDefecto(t *testing.T) {
	pc, err := pgxpool.ParseConfig("postgres://pos@localhost:5432/pos_tracker")
	require.NoError(t, err)

	applyPoolLimits(pc, config.DBConfig{MinConns: 99})
	assert.Equal(t, int32(25), pc.MaxConns)
	assert.Equal(t, int32(0), pc.MinConns, "MinConns mayor que MaxConns se ignora")
}
