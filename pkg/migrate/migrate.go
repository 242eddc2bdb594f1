package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strconv"

	"github.com/pressly/goose/v3"

	"github.com/angelmondragon/salesboard/pkg/config"
)

//go:embed migrations/*.sql
var embedded embed.FS

// Migrations returns the embedded goose files rooted at their directory.
func Migrations() fs.FS {
	sub, err := fs.Sub(embedded, "migrations")
	if err != nil {
		panic(err)
	}
	return sub
}

// DialectFor maps a configured database driver to its goose dialect.
func DialectFor(driver string) (goose.Dialect, error) {
	switch driver {
	case config.DriverPostgres:
		return goose.DialectPostgres, nil
	case config.DriverSQLite, "":
		return goose.DialectSQLite3, nil
	}
	return "", fmt.Errorf("unsupported migration driver %q", driver)
}

func newProvider(db *sql.DB, driver string) (*goose.Provider, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	dialect, err := DialectFor(driver)
	if err != nil {
		return nil, err
	}
	provider, err := goose.NewProvider(dialect, db, Migrations())
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	return provider, nil
}

// Up applies every pending migration and returns how many ran.
func Up(ctx context.Context, db *sql.DB, driver string) (int, error) {
	provider, err := newProvider(db, driver)
	if err != nil {
		return 0, err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose up: %w", err)
	}
	return len(results), nil
}

// Run executes a goose command against db and writes a line per
// migration touched to out. Supported commands are up, down, status and
// version, which takes the target version as its only argument.
func Run(ctx context.Context, db *sql.DB, driver string, out io.Writer, command string, args ...string) error {
	provider, err := newProvider(db, driver)
	if err != nil {
		return err
	}
	if out == nil {
		out = io.Discard
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		printResults(out, results)
		return nil

	case "down":
		result, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		printResults(out, []*goose.MigrationResult{result})
		return nil

	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, st := range statuses {
			fmt.Fprintf(out, "%-8s %s\n", st.State, st.Source.Path)
		}
		return nil

	case "version":
		if len(args) != 1 || args[0] == "" {
			return fmt.Errorf("version requires a target version")
		}
		return migrateToVersion(ctx, provider, out, args[0])
	}
	return fmt.Errorf("unknown migrate command %q", command)
}

// migrateToVersion moves up or down to target by comparing the current
// database version.
func migrateToVersion(ctx context.Context, provider *goose.Provider, out io.Writer, targetVersion string) error {
	target, err := strconv.ParseInt(targetVersion, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid version %q (expected YYYYMMDDHHMMSS): %w", targetVersion, err)
	}

	current, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("get db version: %w", err)
	}

	var results []*goose.MigrationResult
	switch {
	case current == target:
		return nil
	case current < target:
		results, err = provider.UpTo(ctx, target)
	default:
		results, err = provider.DownTo(ctx, target)
	}
	if err != nil {
		return fmt.Errorf("goose migrate to %d: %w", target, err)
	}
	printResults(out, results)
	return nil
}

func printResults(out io.Writer, results []*goose.MigrationResult) {
	for _, r := range results {
		if r == nil {
			continue
		}
		fmt.Fprintf(out, "%-4s %s (%s)\n", r.Direction, r.Source.Path, r.Duration)
	}
}
