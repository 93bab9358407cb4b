// Package worker содержит фоновые процессы, работающие рядом с HTTP сервером.
package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultServiceTimeout = 3 * time.Second
	defaultSweepInterval  = time.Minute
)

// TopupExpirer периодически помечает протухшими заявки на пополнение, которые
// висят в статусе pending дольше TTL. Заявка при этом не удаляется: оператор
// видит ее в истории, но подтвердить уже не может.
type TopupExpirer struct {
	svs           Servicer
	l             *logrus.Entry
	ttl           time.Duration
	sweepInterval time.Duration
}

// New создает новый экземпляр чистильщика заявок. При ttl == 0 заявки не протухают
// и Run завершается сразу.
func New(svs Servicer, ttl time.Duration, l *logrus.Logger) *TopupExpirer {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "worker",
		"module":    "topup_expirer",
	})

	return &TopupExpirer{
		svs:           svs,
		l:             loggerEntry,
		ttl:           ttl,
		sweepInterval: defaultSweepInterval,
	}
}

// SetSweepInterval устанавливает период между проходами чистильщика.
func (e *TopupExpirer) SetSweepInterval(interval time.Duration) *TopupExpirer {
	e.sweepInterval = interval
	return e
}

// Run запускает периодическую чистку до отмены контекста.
func (e *TopupExpirer) Run(ctx context.Context) {
	if e.ttl <= 0 {
		e.l.Info("TTL is not set, expirer disabled")
		return
	}

	e.l.WithFields(logrus.Fields{
		"ttl":           e.ttl.String(),
		"sweepInterval": e.sweepInterval.String(),
	}).Info("Starting")

	ticker := time.NewTicker(e.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			e.l.Info("Got stop signal, exiting...")
			return
		case <-ticker.C:
			e.sweep(ctx)
		}
	}
}

func (e *TopupExpirer) sweep(ctx context.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	expired, err := e.svs.ExpireOlderThan(reqCtx, e.ttl)
	if err != nil {
		e.l.WithError(err).Error("sweep error")
		return
	}
	if expired > 0 {
		e.l.WithField("expired", expired).Info("Expired stale topup requests")
	}
}
