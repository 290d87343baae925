// README: Tariff store backed by PostgreSQL (startup load and dataset seeding).
package tariff

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// LoadRows reads the dataset in table order. Validation is left to NewTable so
// a destination without prices surfaces as a startup error.
func (s *Store) LoadRows(ctx context.Context) ([]Row, error) {
	rows, err := s.db.Query(ctx, `
        SELECT d.id, d.destination, d.state, d.distance_km, p.vehicle_key, p.price::float8
        FROM tariff_destinations d
        LEFT JOIN tariff_prices p ON p.destination_id = d.id
        ORDER BY d.position, d.id`)
	if err != nil {
		return nil, fmt.Errorf("querying tariffs: %w", err)
	}
	defer rows.Close()

	var out []Row
	lastID := int64(-1)
	for rows.Next() {
		var (
			id          int64
			destination string
			state       string
			distanceKm  float64
			vehicleKey  *string
			price       *float64
		)
		if err := rows.Scan(&id, &destination, &state, &distanceKm, &vehicleKey, &price); err != nil {
			return nil, fmt.Errorf("scanning tariff row: %w", err)
		}
		if id != lastID {
			out = append(out, Row{
				Destination: destination,
				State:       state,
				DistanceKm:  distanceKm,
				Prices:      make(map[VehicleKey]float64, len(vehicleKeys)),
			})
			lastID = id
		}
		if vehicleKey != nil && price != nil {
			out[len(out)-1].Prices[VehicleKey(*vehicleKey)] = *price
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading tariffs: %w", err)
	}
	return out, nil
}

// Seed replaces the stored dataset with rows in a single transaction.
func (s *Store) Seed(ctx context.Context, rows []Row) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `TRUNCATE tariff_destinations RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("clearing tariffs: %w", err)
	}

	for i, r := range rows {
		var id int64
		err := tx.QueryRow(ctx, `
            INSERT INTO tariff_destinations (position, destination, state, distance_km)
            VALUES ($1, $2, $3, $4)
            RETURNING id`,
			i, r.Destination, r.State, r.DistanceKm,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("inserting destination %q: %w", r.Destination, err)
		}
		for key, price := range r.Prices {
			if _, err := tx.Exec(ctx, `
                INSERT INTO tariff_prices (destination_id, vehicle_key, price)
                VALUES ($1, $2, $3)`,
				id, string(key), price,
			); err != nil {
				return fmt.Errorf("inserting price %q for %q: %w", key, r.Destination, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}
