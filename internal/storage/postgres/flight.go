package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"

	"xcfeed/internal/domain"
)

// FlightStore archives fetched flights.
type FlightStore struct {
	db *sqlx.DB
	tm *TransactionManager
}

func NewFlightStore(db *sqlx.DB) *FlightStore {
	return &FlightStore{db: db, tm: NewTransactionManager(db)}
}

type flightRow struct {
	ID        string    `db:"id"`
	Pilot     string    `db:"pilot"`
	StartTime string    `db:"start_time"`
	Duration  string    `db:"duration"`
	URL       string    `db:"url"`
	RouteType string    `db:"route_type"`
	Distance  float64   `db:"distance"`
	Points    float64   `db:"points"`
	FetchedAt time.Time `db:"fetched_at"`
}

func (r flightRow) toDomain() (domain.Flight, error) {
	id, err := strconv.ParseUint(r.ID, 10, 64)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("parse flight id %q: %w", r.ID, err)
	}
	return domain.Flight{
		ID:        id,
		Duration:  r.Duration,
		StartTime: r.StartTime,
		URL:       r.URL,
		By:        r.Pilot,
		Route: domain.Route{
			Type:     r.RouteType,
			Distance: r.Distance,
			Points:   r.Points,
		},
	}, nil
}

// Upsert inserts the flight or refreshes the stored copy.
func (s *FlightStore) Upsert(ctx context.Context, flight *domain.Flight) error {
	query := `
		INSERT INTO flights (
			id, pilot, start_time, duration, url, route_type, distance, points, fetched_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		ON CONFLICT (id) DO UPDATE SET
			pilot = EXCLUDED.pilot,
			start_time = EXCLUDED.start_time,
			duration = EXCLUDED.duration,
			url = EXCLUDED.url,
			route_type = EXCLUDED.route_type,
			distance = EXCLUDED.distance,
			points = EXCLUDED.points,
			fetched_at = EXCLUDED.fetched_at`

	// ids may exceed the int64 range database/sql accepts, so they travel as text.
	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		strconv.FormatUint(flight.ID, 10),
		flight.By,
		flight.StartTime,
		flight.Duration,
		flight.URL,
		flight.Route.Type,
		flight.Route.Distance,
		flight.Route.Points,
		time.Now().UTC(),
	)
	return err
}

// UpsertBatch stores all flights in one transaction and returns how many were written.
func (s *FlightStore) UpsertBatch(ctx context.Context, flights []domain.Flight) (int, error) {
	if len(flights) == 0 {
		return 0, nil
	}

	err := s.tm.WithTransaction(ctx, func(txCtx context.Context) error {
		for i := range flights {
			if err := s.Upsert(txCtx, &flights[i]); err != nil {
				return fmt.Errorf("upsert flight %d: %w", flights[i].ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(flights), nil
}

func (s *FlightStore) Get(ctx context.Context, id uint64) (*domain.Flight, error) {
	var row flightRow
	query := `
		SELECT id::text AS id, pilot, start_time, duration, url, route_type, distance, points, fetched_at
		FROM flights
		WHERE id = $1`

	if err := s.db.GetContext(ctx, &row, query, strconv.FormatUint(id, 10)); err != nil {
		return nil, err
	}

	f, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &f, nil
}
