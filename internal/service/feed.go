package service

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"xcfeed/internal/domain"
	"xcfeed/internal/feed"
)

// FeedConfig carries the parts of the configuration the run needs.
type FeedConfig struct {
	Key   string
	URL   string
	Users []string
}

type FeedService struct {
	resolver  PilotResolver
	fetcher   FlightFetcher
	cache     PilotCache
	renderer  Renderer
	store     FlightStore
	publisher Publisher
	logger    *slog.Logger
	config    FeedConfig
}

// NewFeedService wires the pipeline. store and publisher may be nil.
func NewFeedService(
	resolver PilotResolver,
	fetcher FlightFetcher,
	cache PilotCache,
	renderer Renderer,
	store FlightStore,
	publisher Publisher,
	logger *slog.Logger,
	cfg FeedConfig,
) *FeedService {
	return &FeedService{
		resolver:  resolver,
		fetcher:   fetcher,
		cache:     cache,
		renderer:  renderer,
		store:     store,
		publisher: publisher,
		logger:    logger,
		config:    cfg,
	}
}

// Run resolves missing pilot ids, fetches flights of every cached pilot and
// renders the merged feed. Per-user failures are logged and skipped.
func (s *FeedService) Run(ctx context.Context) (string, *domain.RunStats, error) {
	startTime := time.Now()
	stats := &domain.RunStats{Users: len(s.config.Users)}

	ids, err := s.cache.Load()
	if err != nil {
		return "", nil, fmt.Errorf("load pilot cache: %w", err)
	}

	updated, err := s.resolveMissing(ctx, ids, stats)
	if err != nil {
		return "", nil, err
	}

	if updated {
		if err := s.cache.Save(ids); err != nil {
			return "", nil, fmt.Errorf("save pilot cache: %w", err)
		}
		s.logger.Info("pilot cache updated", "pilots", len(ids))
	}

	flights, err := s.fetchAll(ctx, ids, stats)
	if err != nil {
		return "", nil, err
	}

	s.archive(ctx, flights, stats)
	s.publish(ctx, flights, stats)

	out, err := s.renderer.Render(flights, s.config.URL)
	if err != nil {
		return "", nil, fmt.Errorf("render feed: %w", err)
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("feed generated",
		"users", stats.Users,
		"resolved", stats.Resolved,
		"resolve_errors", stats.ResolveErrors,
		"pilots", stats.Pilots,
		"fetch_errors", stats.FetchErrors,
		"flights", stats.Flights,
		"archived", stats.Archived,
		"published", stats.Published,
		"publish_errors", stats.PublishErrors,
		"duration", stats.Duration,
	)

	return out, stats, nil
}

func (s *FeedService) resolveMissing(ctx context.Context, ids map[string]uint64, stats *domain.RunStats) (bool, error) {
	updated := false

	for _, user := range s.config.Users {
		if _, ok := ids[user]; ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return false, err
		}

		id, err := s.resolver.ResolvePilotID(ctx, user)
		if err != nil {
			stats.ResolveErrors++
			s.logger.Error("error fetching pilot id", "user", user, "error", err)
			continue
		}

		ids[user] = id
		updated = true
		stats.Resolved++
	}

	return updated, nil
}

// fetchAll walks every cached pilot, not only the configured users. Several
// usernames may map to one pilot id; each id is fetched once and each flight
// id is kept once, first occurrence wins.
func (s *FeedService) fetchAll(ctx context.Context, ids map[string]uint64, stats *domain.RunStats) ([]domain.Flight, error) {
	var flights []domain.Flight
	fetched := make(map[uint64]string)
	seen := make(map[uint64]struct{})

	for _, user := range slices.Sorted(maps.Keys(ids)) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id := ids[user]
		if first, ok := fetched[id]; ok {
			s.logger.Debug("pilot already fetched", "user", user, "pilot_id", id, "as", first)
			continue
		}
		fetched[id] = user

		userFlights, err := s.fetcher.FetchFlights(ctx, id, s.config.Key)
		if err != nil {
			stats.FetchErrors++
			s.logger.Error("error fetching flights", "user", user, "pilot_id", id, "error", err)
			continue
		}

		stats.Pilots++
		for _, f := range userFlights {
			if _, dup := seen[f.ID]; dup {
				s.logger.Debug("duplicate flight dropped", "user", user, "id", f.ID)
				continue
			}
			seen[f.ID] = struct{}{}
			s.logger.Debug("flight", "user", user, "id", f.ID, "summary", feed.Summary(f))
			flights = append(flights, f)
		}
	}

	stats.Flights = len(flights)

	return flights, nil
}

func (s *FeedService) archive(ctx context.Context, flights []domain.Flight, stats *domain.RunStats) {
	if s.store == nil || len(flights) == 0 {
		return
	}

	n, err := s.store.UpsertBatch(ctx, flights)
	if err != nil {
		s.logger.Error("error archiving flights", "count", len(flights), "error", err)
		return
	}
	stats.Archived = n
}

func (s *FeedService) publish(ctx context.Context, flights []domain.Flight, stats *domain.RunStats) {
	if s.publisher == nil {
		return
	}

	for i := range flights {
		f := &flights[i]
		if err := s.publisher.Publish(ctx, f); err != nil {
			stats.PublishErrors++
			s.logger.Error("error publishing flight", "id", f.ID, "error", err)
			continue
		}
		stats.Published++
	}
}
