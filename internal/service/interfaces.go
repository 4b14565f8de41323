package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"xcfeed/internal/domain"
)

type PilotResolver interface {
	ResolvePilotID(ctx context.Context, username string) (uint64, error)
}

type FlightFetcher interface {
	FetchFlights(ctx context.Context, pilotID uint64, key string) ([]domain.Flight, error)
}

type PilotCache interface {
	Load() (map[string]uint64, error)
	Save(ids map[string]uint64) error
}

type Renderer interface {
	Render(flights []domain.Flight, channelLink string) (string, error)
}

type FlightStore interface {
	UpsertBatch(ctx context.Context, flights []domain.Flight) (int, error)
}

type Publisher interface {
	Publish(ctx context.Context, flight *domain.Flight) error
}
