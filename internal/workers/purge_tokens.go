package workers

import (
	"context"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/sirupsen/logrus"
)

// purgeTokensWorker periodically removes expired refresh tokens so the
// authentications table does not grow without bound.
type purgeTokensWorker struct {
	AuthRepo domain.AuthenticationRepository
	interval time.Duration
	now      domain.Clock
}

func NewPurgeTokensWorker(ar domain.AuthenticationRepository, interval time.Duration, now domain.Clock) *purgeTokensWorker {
	return &purgeTokensWorker{
		AuthRepo: ar,
		interval: interval,
		now:      now,
	}
}

func (w *purgeTokensWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.purge(ctx)
		case <-ctx.Done():
			logrus.Info("shutting down PurgeTokensWorker")
			return
		}
	}
}

func (w *purgeTokensWorker) purge(ctx context.Context) {
	deleted, err := w.AuthRepo.DeleteExpired(ctx, w.now())
	if err != nil {
		logrus.Errorf("failed to purge expired refresh tokens: %v", err)
		return
	}
	if deleted > 0 {
		logrus.Infof("purged %d expired refresh tokens", deleted)
	}
}
