package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"hotel/config"
	"hotel/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

var ErrUnknownAction = errors.New("unknown migration action, use 'up', 'down', 'drop' or 'step-up'")

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	params := url.Values{}
	if config.DB.Postgres.MigrationTable != "" {
		params.Set("x-migrations-table", config.DB.Postgres.MigrationTable)
	}

	mig, err := migrate.New(migrationSource, postgres.DSN(config, config.DB.Postgres.Write, params))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies one migration action against the write endpoint. Having nothing to do is not an error.
func Runner(config *config.Config, action string) error {
	var step func(mig *migrate.Migrate) error

	switch action {
	case "up":
		step = (*migrate.Migrate).Up
	case "down":
		step = func(mig *migrate.Migrate) error { return mig.Steps(-1) }
	case "step-up":
		step = func(mig *migrate.Migrate) error { return mig.Steps(1) }
	case "drop":
		step = (*migrate.Migrate).Down
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err = step(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migration completed successfully")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, "up")
}

func StepUp(config *config.Config) error {
	return Runner(config, "step-up")
}

func Down(config *config.Config) error {
	return Runner(config, "down")
}

func Drop(config *config.Config) error {
	return Runner(config, "drop")
}
