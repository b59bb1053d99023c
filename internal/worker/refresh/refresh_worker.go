package refresh

import (
	"context"
	stderrors "errors"
	"time"

	"go.uber.org/zap"

	"github.com/commute-heatmap/internal/pkg/errors"
	"github.com/commute-heatmap/internal/usecase"
	"github.com/commute-heatmap/internal/usecase/dto"
	"github.com/commute-heatmap/internal/worker"
)

// Refresher - контракт загрузчика, который воркер запускает по расписанию
type Refresher interface {
	Refresh(ctx context.Context, req dto.FetchRequest) (*dto.FetchResponse, error)
}

// RefreshWorker периодически перезагружает матрицу времени в пути.
// Пропущенный тик не ставится в очередь: если загрузка уже идёт,
// воркер дожидается следующего тика.
type RefreshWorker struct {
	*worker.BaseWorker
	fetchUC  Refresher
	interval time.Duration
}

// NewRefreshWorker создает новый RefreshWorker
func NewRefreshWorker(fetchUC Refresher, interval time.Duration, logger *zap.Logger) *RefreshWorker {
	return &RefreshWorker{
		BaseWorker: worker.NewBaseWorker("travel-time-refresh", logger),
		fetchUC:    fetchUC,
		interval:   interval,
	}
}

// Start запускает воркер
func (w *RefreshWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting RefreshWorker", zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

// runOnce - один плановый прогон полной загрузки
func (w *RefreshWorker) runOnce(ctx context.Context) {
	logger := w.Logger()

	resp, err := w.fetchUC.Refresh(ctx, dto.FetchRequest{Period: usecase.FetchPeriodAll})
	if err != nil {
		if stderrors.Is(err, errors.ErrFetchInProgress) {
			logger.Warn("Refresh tick skipped, a fetch is already running")
			return
		}
		logger.Error("Scheduled refresh failed", zap.Error(err))
		return
	}

	for _, p := range resp.Periods {
		logger.Info("Scheduled refresh completed",
			zap.String("period", p.Period),
			zap.Int("samples", p.Samples),
			zap.Int("ok_samples", p.OKSamples))
	}
}
