// Package scheduler registra las tareas periódicas de la aplicación (robfig/cron).
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/pos-tracker/internal/application/dto"
)

// LowStockReporter fuente de la lista de reposición.
type LowStockReporter interface {
	LowStock(ctx context.Context) ([]dto.LowStockItemDTO, error)
}

// Scheduler envuelve un *cron.Cron con los jobs de inventario.
type Scheduler struct {
	c *cron.Cron
}

// New registra el job de bajo stock con la expresión dada ("@every 1h", "0 7 * * *").
// Una expresión vacía deja el scheduler sin jobs.
func New(spec string, reporter LowStockReporter, timeout time.Duration) (*Scheduler, error) {
	c := cron.New(cron.WithChain(cron.Recover(cronLogger{}), cron.SkipIfStillRunning(cronLogger{})))
	if spec != "" {
		if _, err := c.AddJob(spec, NewLowStockJob(reporter, timeout)); err != nil {
			return nil, fmt.Errorf("registrar job low-stock %q: %w", spec, err)
		}
	}
	return &Scheduler{c: c}, nil
}

// Start arranca el scheduler en segundo plano.
func (s *Scheduler) Start() {
	s.c.Start()
	log.Info().Int("jobs", len(s.c.Entries())).Msg("scheduler iniciado")
}

// Stop detiene el scheduler y espera a que terminen los jobs en curso o a ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.c.Stop().Done():
	case <-ctx.Done():
	}
}

// LowStockJob registra en el log los artículos que requieren reposición.
type LowStockJob struct {
	reporter LowStockReporter
	timeout  time.Duration
}

// NewLowStockJob construye el job (útil para ejecutarlo fuera del cron).
func NewLowStockJob(reporter LowStockReporter, timeout time.Duration) *LowStockJob {
	return &LowStockJob{reporter: reporter, timeout: timeout}
}

// Run implementa cron.Job.
func (j *LowStockJob) Run() {
	ctx := context.Background()
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}
	if _, err := j.Check(ctx); err != nil {
		log.Error().Err(err).Msg("job low-stock falló")
	}
}

// Check consulta la lista de reposición y la registra; devuelve cuántos artículos la integran.
func (j *LowStockJob) Check(ctx context.Context) (int, error) {
	items, err := j.reporter.LowStock(ctx)
	if err != nil {
		return 0, err
	}
	for _, it := range items {
		log.Warn().
			Str("item_id", it.ItemID).
			Str("sku", it.SKU).
			Int("quantity", it.Quantity).
			Int("reorder_level", it.ReorderLevel).
			Int("suggested_order_qty", it.SuggestedOrderQty).
			Msg("artículo bajo punto de reorden")
	}
	log.Info().Int("low_stock_items", len(items)).Msg("revisión de stock completada")
	return len(items), nil
}

// cronLogger adapta cron.Logger al logger global de zerolog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...any) {
	log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...any) {
	log.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
