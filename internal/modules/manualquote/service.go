// README: Manual quote service queues unpriceable quotes for a human to follow up.
package manualquote

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tarifa/internal/modules/pricing"
)

type Service struct {
	store *Store
	ttl   time.Duration
	log   *zap.Logger
	now   func() time.Time
}

func NewService(store *Store, ttl time.Duration, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, ttl: ttl, log: log.Named("manualquote"), now: time.Now}
}

// Enqueue records a quote that came back unmatched. Found results are not
// queued.
func (s *Service) Enqueue(ctx context.Context, q pricing.QuoteRequest, res pricing.Result) (Request, error) {
	if res.Found {
		return Request{}, nil
	}
	r := newRequest(uuid.NewString(), s.now(), q, res)
	if err := s.store.Save(ctx, r, s.ttl); err != nil {
		return Request{}, err
	}
	s.log.Info("manual quote queued",
		zap.String("id", r.ID),
		zap.String("reason", r.Reason),
		zap.String("delivery_city", r.DeliveryCity),
	)
	return r, nil
}

func (s *Service) Get(ctx context.Context, id string) (Request, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Request{}, ErrNotFound
	}
	return s.store.Get(ctx, id)
}

// List returns the newest requests; limit is clamped to [1, MaxListLimit]
// with DefaultListLimit for zero or negative values.
func (s *Service) List(ctx context.Context, limit int) ([]Request, error) {
	return s.store.List(ctx, clampLimit(limit))
}
