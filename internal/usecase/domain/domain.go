package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pulse-network-organizer/internal/adapter/cache"
	"pulse-network-organizer/internal/calendar"
	"pulse-network-organizer/internal/entities"
	"pulse-network-organizer/internal/events"
	"pulse-network-organizer/internal/matching"
	"pulse-network-organizer/internal/repository"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Settings holds business tunables.
type Settings struct {
	DuplicateThreshold   float64
	DuplicateWindow      time.Duration
	DefaultFrequencyDays int
}

// Deps carries optional collaborators. Nil fields get working defaults.
type Deps struct {
	Cache     repository.NetworkCache
	Matcher   matching.Matcher
	Calendar  calendar.Provider
	Publisher events.Publisher
	Tracer    trace.Tracer
	Settings  Settings
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx       context.Context
	log       *zap.SugaredLogger
	repo      repository.Repository
	timeout   time.Duration
	cache     repository.NetworkCache
	matcher   matching.Matcher
	calendar  calendar.Provider
	publisher events.Publisher
	tracer    trace.Tracer
	settings  Settings
	now       func() time.Time
	newID     func() string
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	deps Deps,
) *Usecase {
	u := &Usecase{
		ctx:       ctx,
		log:       log,
		repo:      repo,
		timeout:   timeout,
		cache:     deps.Cache,
		matcher:   deps.Matcher,
		calendar:  deps.Calendar,
		publisher: deps.Publisher,
		tracer:    deps.Tracer,
		settings:  deps.Settings,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	if u.cache == nil {
		u.cache = cache.NoopNetworkCache{}
	}
	if u.matcher == nil {
		u.matcher = matching.Heuristic{}
	}
	if u.calendar == nil {
		u.calendar = calendar.NewMock(repo)
	}
	if u.publisher == nil {
		u.publisher = events.Noop{}
	}
	if u.tracer == nil {
		u.tracer = otel.Tracer("pulse-network-organizer")
	}
	if u.settings.DuplicateThreshold <= 0 {
		u.settings.DuplicateThreshold = 0.8
	}
	if u.settings.DefaultFrequencyDays <= 0 {
		u.settings.DefaultFrequencyDays = 30
	}
	return u
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// publish sends an event; failures never fail the originating write.
func (u *Usecase) publish(ctx context.Context, key string, payload any) {
	if err := u.publisher.Publish(ctx, key, payload); err != nil {
		u.log.Warnw("failed to publish event", "error", err, "routing_key", key)
	}
}

// checkID rejects references that are not UUIDs before they reach a uuid column.
func checkID(field, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s must be a uuid", entities.ErrInvalidArgument, field)
	}
	return nil
}

// optionalID drops a blank reference and validates a present one.
func optionalID(field string, id *string) (*string, error) {
	if id == nil || strings.TrimSpace(*id) == "" {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*id)
	if err := checkID(field, trimmed); err != nil {
		return nil, err
	}
	return &trimmed, nil
}
