package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"tarifa/internal/config"
	"tarifa/internal/infra"
	"tarifa/internal/modules/places"
	"tarifa/internal/modules/pricing"
	"tarifa/internal/modules/tariff"
)

// errNotQuoted marks a quote that ran but found no automatic price.
var errNotQuoted = errors.New("no automatic quote")

const commandTimeout = 30 * time.Second

// sourceFlags selects where the tariff table is read from. Defaults come from
// the TARIFA_* environment.
type sourceFlags struct {
	source string
	dsn    string
}

// register fails on an invalid TARIFA_* environment rather than guessing a
// source.
func (s *sourceFlags) register(fs *flag.FlagSet) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	fs.StringVar(&s.source, "source", cfg.TariffSource, "tariff source: embedded or postgres")
	fs.StringVar(&s.dsn, "dsn", cfg.DBDSN, "Postgres DSN when -source=postgres")
	return nil
}

func (s *sourceFlags) table(ctx context.Context) (*tariff.Table, error) {
	switch s.source {
	case config.TariffSourceEmbedded, "":
		return tariff.NewTable(tariff.DefaultRows())
	case config.TariffSourcePostgres:
		if s.dsn == "" {
			return nil, errors.New("-dsn is required with -source=postgres")
		}
		db, err := infra.NewDB(ctx, s.dsn)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		rows, err := tariff.NewStore(db).LoadRows(ctx)
		if err != nil {
			return nil, err
		}
		return tariff.NewTable(rows)
	default:
		return nil, fmt.Errorf("unknown source %q", s.source)
	}
}

// parse treats -h as success so the command exits cleanly after usage.
func parse(fs *flag.FlagSet, args []string) (bool, error) {
	err := fs.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return false, nil
	}
	return err == nil, err
}

func runQuote(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("quote", flag.ContinueOnError)
	var src sourceFlags
	if err := src.register(fs); err != nil {
		return err
	}
	pickupCity := fs.String("pickup-city", "", "pickup city (display only)")
	pickupState := fs.String("pickup-state", "", "pickup state (display only)")
	city := fs.String("city", "", "delivery city (required)")
	state := fs.String("state", "", "delivery state")
	vehicle := fs.String("vehicle", string(pricing.DefaultVehicleKey), "vehicle label or key")
	priority := fs.String("priority", string(pricing.PriorityEstandar), "economico, estandar or urgente")
	if ok, err := parse(fs, args); !ok {
		return err
	}

	if *city == "" {
		return errors.New("-city is required")
	}
	p, err := pricing.ParsePriority(*priority)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	table, err := src.table(ctx)
	if err != nil {
		return err
	}

	res := pricing.NewService(table, zap.NewNop()).CalculatePrice(pricing.QuoteRequest{
		PickupCity:    *pickupCity,
		PickupState:   *pickupState,
		DeliveryCity:  *city,
		DeliveryState: *state,
		VehicleType:   *vehicle,
		Priority:      p,
	})

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return err
	}
	if !res.Found {
		return errNotQuoted
	}
	return nil
}

func runCities(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("cities", flag.ContinueOnError)
	var src sourceFlags
	if err := src.register(fs); err != nil {
		return err
	}
	query := fs.String("q", "", "search query; lists every city when empty")
	state := fs.String("state", "", "restrict results to a state")
	if ok, err := parse(fs, args); !ok {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	table, err := src.table(ctx)
	if err != nil {
		return err
	}
	svc := pricing.NewService(table, zap.NewNop())

	cities := svc.AllCities()
	if *query != "" {
		cities = svc.SearchCities(*query, *state)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CITY\tSTATE\tNOTE")
	for _, c := range cities {
		note := ""
		switch {
		case c.ManualQuote:
			note = "virtual, manual quote"
		case c.Virtual:
			note = "virtual"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.City, c.State, note)
	}
	return tw.Flush()
}

func runCheck(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	var src sourceFlags
	if err := src.register(fs); err != nil {
		return err
	}
	if ok, err := parse(fs, args); !ok {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	table, err := src.table(ctx)
	if err != nil {
		return err
	}

	perState := map[places.State]int{}
	minKm, maxKm := -1.0, 0.0
	for _, e := range table.Entries() {
		perState[e.State]++
		if minKm < 0 || e.DistanceKm < minKm {
			minKm = e.DistanceKm
		}
		if e.DistanceKm > maxKm {
			maxKm = e.DistanceKm
		}
	}
	states := make([]places.State, 0, len(perState))
	for s := range perState {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })

	cities := tariff.BuildCityIndex(table.Entries())

	fmt.Fprintf(out, "tariff table OK (source=%s)\n", src.source)
	fmt.Fprintf(out, "destinations: %d\n", table.Len())
	fmt.Fprintf(out, "cities indexed: %d\n", cities.Len())
	fmt.Fprintf(out, "vehicle keys: %d, labels: %d\n", len(tariff.VehicleKeys()), len(tariff.VehicleLabels()))
	fmt.Fprintf(out, "distance range: %.0f-%.0f km\n", minKm, maxKm)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STATE\tDESTINATIONS")
	for _, s := range states {
		fmt.Fprintf(tw, "%s\t%d\n", s, perState[s])
	}
	return tw.Flush()
}

func runSeed(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	dsn := fs.String("dsn", os.Getenv("TARIFA_DB_DSN"), "Postgres DSN (required)")
	migrations := fs.String("migrations", "migrations", "migrations directory")
	migrate := fs.Bool("migrate", true, "apply migrations before seeding")
	if ok, err := parse(fs, args); !ok {
		return err
	}
	if *dsn == "" {
		return errors.New("-dsn or TARIFA_DB_DSN is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	db, err := infra.NewDB(ctx, *dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if *migrate {
		if err := infra.ApplyMigrations(ctx, db, *migrations); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}

	rows := tariff.DefaultRows()
	if _, err := tariff.NewTable(rows); err != nil {
		return err
	}
	store := tariff.NewStore(db)
	if err := store.Seed(ctx, rows); err != nil {
		return err
	}

	loaded, err := store.LoadRows(ctx)
	if err != nil {
		return err
	}
	table, err := tariff.NewTable(loaded)
	if err != nil {
		return fmt.Errorf("seeded data does not validate: %w", err)
	}
	fmt.Fprintf(out, "seeded %d destinations\n", table.Len())
	return nil
}
