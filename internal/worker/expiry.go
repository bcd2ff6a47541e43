package worker

import (
	"casino-backend/internal/service"
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ExpiryWorker periodically rejects deposits whose payment link has lapsed.
type ExpiryWorker struct {
	service  service.ExpiryService
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	wg       *sync.WaitGroup
}

func NewExpiryWorker(svc service.ExpiryService, interval time.Duration, logger zerolog.Logger) *ExpiryWorker {
	return &ExpiryWorker{
		service:  svc,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *ExpiryWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Expiry worker started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("Running deposit expiry task")
				expired, err := w.service.ExpireStaleDeposits(ctx)
				if err != nil {
					w.logger.Error().Err(err).Msg("Failed to run deposit expiry task")
					continue
				}
				if expired > 0 {
					w.logger.Info().Int("expired", expired).Msg("Expired stale deposits")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Expiry worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Expiry worker stopping (context done)")
				return
			}
		}
	}()
}

// Stop is safe to call more than once.
func (w *ExpiryWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopChan) })
	w.wg.Wait()
}
