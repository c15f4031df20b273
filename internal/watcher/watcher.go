package watcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samvad-hq/hyperion-client/internal/domain"
	"github.com/samvad-hq/hyperion-client/internal/logger"
	"github.com/samvad-hq/hyperion-client/pkg/publishers"
	"github.com/samvad-hq/hyperion-client/pkg/queries"
)

// Service polls watched queries and publishes the ones whose response changed.
type Service struct {
	caller    Caller
	publisher EventPublisher
	log       logger.Logger
	deduper   Deduper
	limiter   Limiter
	recorder  Recorder
	now       func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithLimiter paces calls, typically with a *rate.Limiter.
func WithLimiter(l Limiter) Option {
	return func(s *Service) { s.limiter = l }
}

func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// NewService wires a watcher with a Hyperion caller, a publisher and a digest store.
func NewService(caller Caller, pub EventPublisher, log logger.Logger, deduper Deduper, opts ...Option) *Service {
	if log == nil {
		log = logger.NopLogger{}
	}
	s := &Service{
		caller:    caller,
		publisher: pub,
		log:       log,
		deduper:   deduper,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes a poll pass over qs.
func (s *Service) Run(ctx context.Context, qs []queries.Query) error {
	if s == nil || s.caller == nil {
		return fmt.Errorf("watcher service is not initialized")
	}

	if len(qs) == 0 {
		return fmt.Errorf("no queries configured for watching")
	}

	errs := s.runAll(ctx, qs)
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

func (s *Service) runAll(ctx context.Context, qs []queries.Query) []error {
	errs := make([]error, 0, len(qs))

	for _, q := range qs {
		if ctx.Err() != nil {
			break
		}
		if _, err := s.Process(ctx, q); err != nil {
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				break
			}
			errs = append(errs, err)
			s.record(func(r Recorder) { r.QueryFailed(q.ID) })
			s.log.ErrorObj("query poll failed", "query_error", map[string]any{
				"query_id": q.ID,
				"endpoint": q.Endpoint,
				"error":    err.Error(),
			})
		}
	}

	return errs
}

// Process polls one query. It reports whether a changed snapshot was published.
func (s *Service) Process(ctx context.Context, q queries.Query) (bool, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return false, err
		}
	}

	payload, err := s.caller.Call(ctx, q.Endpoint, q.Args())
	if err != nil {
		return false, fmt.Errorf("call %s for query %s: %w", q.Endpoint, q.ID, err)
	}

	digest, compact, err := Digest(payload)
	if err != nil {
		return false, fmt.Errorf("digest query %s: %w", q.ID, err)
	}

	if s.isUnchanged(q.ID, digest) {
		s.record(func(r Recorder) { r.SnapshotUnchanged(q.ID) })
		s.log.DebugObj("query unchanged", "query_result", map[string]any{
			"query_id": q.ID,
			"digest":   digest,
		})
		return false, nil
	}

	snap := domain.Snapshot{
		QueryID:   q.ID,
		Endpoint:  q.Endpoint,
		Digest:    digest,
		Payload:   compact,
		FetchedAt: s.now().UTC(),
	}
	evt := publishers.NewEvent(q.Name, snap)

	delivered, pubErr := s.publisher.Publish(ctx, evt)
	if delivered == 0 {
		if pubErr == nil {
			pubErr = errors.New("no publisher accepted the event")
		}
		return false, fmt.Errorf("publish query %s: %w", q.ID, pubErr)
	}
	if pubErr != nil {
		s.log.WarnObj("snapshot partially published", "publish_error", map[string]any{
			"query_id":  q.ID,
			"event_id":  evt.ID,
			"delivered": delivered,
			"error":     pubErr.Error(),
		})
	}

	// The event is already out; a failed mark only means the next poll repeats it.
	if err := s.markDigest(q.ID, digest); err != nil {
		s.log.WarnObj("digest mark failed", "storage_error", map[string]any{
			"query_id": q.ID,
			"event_id": evt.ID,
			"error":    err.Error(),
		})
	}

	s.record(func(r Recorder) { r.SnapshotPublished(q.ID) })
	s.log.InfoObj("snapshot published", "query_result", map[string]any{
		"query_id":  q.ID,
		"endpoint":  q.Endpoint,
		"event_id":  evt.ID,
		"digest":    digest,
		"delivered": delivered,
	})
	return true, nil
}

// isUnchanged treats store failures as a change so the snapshot still goes out.
func (s *Service) isUnchanged(queryID, digest string) bool {
	if s.deduper == nil {
		return false
	}
	seen, err := s.deduper.SeenDigest(queryID, digest)
	if err != nil {
		s.log.WarnObj("digest lookup failed", "storage_error", map[string]any{
			"query_id": queryID,
			"error":    err.Error(),
		})
		return false
	}
	return seen
}

func (s *Service) markDigest(queryID, digest string) error {
	if s.deduper == nil {
		return nil
	}
	if err := s.deduper.MarkDigest(queryID, digest); err != nil {
		return fmt.Errorf("mark digest for query %s: %w", queryID, err)
	}
	return nil
}

func (s *Service) record(fn func(Recorder)) {
	if s.recorder != nil {
		fn(s.recorder)
	}
}
