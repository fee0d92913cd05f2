package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-tracker/internal/application/dto"
	"github.com/jhoicas/pos-tracker/internal/infrastructure/scheduler"
)

type stubReporter struct {
	items []dto.LowStockItemDTO
	err   error
	calls int
}

func (s *stubReporter) LowStock(context.Context) ([]dto.LowStockItemDTO, error) {
	s.calls++
	return s.items, s.err
}

func TestLowStockJob_Check(t *testing.T) {
	rep := &stubReporter{items: []dto.LowStockItemDTO{{SKU: "A"}, {SKU: "B"}}}
	n, err := scheduler.NewLowStockJob(rep, time.Second).Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rep.err = errors.New("db caída")
	_, err = scheduler.NewLowStockJob(rep, time.Second).Check(context.Background())
	assert.Error(t, err)
}

func TestNew_ExpresionInvalida(t *testing.T) {
	_, err := scheduler.New("cada rato", &stubReporter{}, time.Second)
	assert.Error(t, err)
}

func TestNew_SinExpresionNoRegistraJobs(t *testing.T) {
	s, err := scheduler.New("", &stubReporter{}, time.Second)
	require.NoError(t, err)
	s.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
