package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samvad-hq/hyperion-client/internal/config"
	"github.com/samvad-hq/hyperion-client/internal/logger"
	"github.com/samvad-hq/hyperion-client/internal/metrics"
	"github.com/samvad-hq/hyperion-client/internal/storage"
	"github.com/samvad-hq/hyperion-client/internal/watcher"
	"github.com/samvad-hq/hyperion-client/pkg/hyperion"
	"github.com/samvad-hq/hyperion-client/pkg/publishers"
	"github.com/samvad-hq/hyperion-client/pkg/queries"
	"golang.org/x/time/rate"
)

// Watcher represents the snapshot watcher runtime. It manages the poll loop,
// coordinating between the query registry, the watcher service, and
// publishers. It also handles storage and metrics lifecycle.
type Watcher struct {
	cfg          *config.Config
	queryReg     *queries.Registry
	fanout       *publishers.Fanout
	service      *watcher.Service
	pollInterval time.Duration
	log          logger.Logger
	store        storage.Store
	metrics      *metrics.Metrics
}

// NewWatcher builds a watcher runtime from config files.
func NewWatcher(ctx context.Context, cfg *config.Config, log logger.Logger) (*Watcher, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	queryReg, err := queries.LoadRegistry(cfg.QueriesFile)
	if err != nil {
		return nil, fmt.Errorf("load queries registry: %w", err)
	}
	queryIDs := make([]string, 0)
	for _, q := range queryReg.Enabled() {
		queryIDs = append(queryIDs, q.ID)
	}
	log.InfoObj("queries registry loaded", "queries_meta", map[string]any{
		"count": len(queryIDs),
		"ids":   queryIDs,
	})

	publisherReg, err := publishers.LoadRegistry(cfg.PublishersFile)
	if err != nil {
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}

	enabledPublishers := publisherReg.Enabled()
	if len(enabledPublishers) == 0 {
		return nil, fmt.Errorf("no publishers configured")
	}

	pubClients, err := publishers.BuildAll(ctx, publishers.DefaultRegistry(), enabledPublishers, log)
	if err != nil {
		return nil, fmt.Errorf("build publishers: %w", err)
	}
	fanout := publishers.NewFanout(pubClients)
	publisherSummaries := make([]map[string]string, 0, len(enabledPublishers))
	for _, pubCfg := range enabledPublishers {
		publisherSummaries = append(publisherSummaries, map[string]string{
			"id":   pubCfg.ID,
			"type": pubCfg.Type,
		})
	}
	log.InfoObj("publishers registry loaded", "publishers_meta", map[string]any{
		"count":      len(publisherSummaries),
		"publishers": publisherSummaries,
	})

	storeOpts := storage.Options{
		SnapshotTTL:     cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	}
	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storeOpts)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("init storage: %w", err), fanout.Close())
	}
	log.InfoObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.StorageType,
		"path":                     cfg.BBoltPath,
		"snapshot_ttl_seconds":     int(cfg.StorageTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.StorageCleanupInterval.Seconds()),
	})

	m := metrics.New()
	client := hyperion.New(
		hyperion.WithBaseURL(cfg.HyperionBaseURL),
		hyperion.WithTimeout(cfg.HyperionTimeout),
		hyperion.WithUserAgent(cfg.HyperionUserAgent),
		hyperion.WithLogger(log),
		hyperion.WithObserver(m),
	)

	service := watcher.NewService(client, fanout, log, store,
		watcher.WithLimiter(rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)),
		watcher.WithRecorder(m),
	)

	return &Watcher{
		cfg:          cfg,
		queryReg:     queryReg,
		fanout:       fanout,
		service:      service,
		pollInterval: cfg.PollInterval,
		log:          log,
		store:        store,
		metrics:      m,
	}, nil
}

// Run starts the poll loop until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if w == nil || w.service == nil {
		return fmt.Errorf("watcher is not initialized")
	}
	defer w.close()

	if w.cfg.MetricsAddr != "" && w.metrics != nil {
		go func() {
			if err := w.metrics.Serve(ctx, w.cfg.MetricsAddr, w.log); err != nil {
				w.log.ErrorObj("metrics server failed", "error", err)
			}
		}()
	}

	qs := w.queryReg.Enabled()
	if len(qs) == 0 {
		w.log.WarnObj("no queries enabled; watcher idle", "queries_file", w.cfg.QueriesFile)
		<-ctx.Done()
		return nil
	}

	w.log.InfoObj("watcher loop starting", "watcher_state", map[string]any{
		"queries_count":    len(qs),
		"publishers_count": w.fanout.Size(),
		"poll_interval":    w.pollInterval.String(),
		"base_url":         w.cfg.HyperionBaseURL,
	})

	if err := w.runOnce(ctx, qs); err != nil {
		w.log.ErrorObj("initial poll failed", "error", err)
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.InfoObj("watcher loop exiting", "reason", ctx.Err())
			return nil
		case <-ticker.C:
			if err := w.runOnce(ctx, qs); err != nil {
				w.log.ErrorObj("scheduled poll failed", "error", err)
			}
		}
	}
}

// runOnce performs a single poll pass across all enabled queries.
func (w *Watcher) runOnce(ctx context.Context, qs []queries.Query) error {
	start := time.Now()
	w.log.InfoObj("poll started", "poll_meta", map[string]any{
		"queries_count": len(qs),
		"started_at":    start.UTC(),
	})
	if err := w.service.Run(ctx, qs); err != nil {
		return err
	}
	w.log.InfoObj("poll completed", "poll_meta", map[string]any{
		"queries_count": len(qs),
		"elapsed_ms":    time.Since(start).Milliseconds(),
	})
	return nil
}

// close releases the store and publisher connections, logging any errors encountered.
func (w *Watcher) close() {
	if w == nil {
		return
	}
	if w.store != nil {
		if err := w.store.Close(); err != nil {
			w.log.ErrorObj("storage close failed", "error", err)
		}
	}
	if err := w.fanout.Close(); err != nil {
		w.log.ErrorObj("publisher close failed", "error", err)
	}
}
