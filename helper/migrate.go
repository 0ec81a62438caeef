package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"

	"todo/config"
)

const (
	migrationSource         = "file://migrations/mongodb"
	migrationsCollectionArg = "x-migrations-collection"
	actionUp                = "up"
	actionDown              = "down"
	actionStepUp            = "step-up"
	actionDrop              = "drop"
)

// DatabaseURL points the configured Mongo URI at the configured database and
// names the collection that records applied migrations.
func DatabaseURL(config *config.Config) (string, error) {
	mongoConfig := config.DB.Mongo

	uri, err := url.Parse(mongoConfig.URI)
	if err != nil {
		return "", fmt.Errorf("invalid mongo uri: %w", err)
	}

	uri.Path = "/" + mongoConfig.Database

	if mongoConfig.MigrationCollection != "" {
		query := uri.Query()
		query.Set(migrationsCollectionArg, mongoConfig.MigrationCollection)
		uri.RawQuery = query.Encode()
	}

	return uri.String(), nil
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	connectionString, err := DatabaseURL(config)
	if err != nil {
		return nil, err
	}

	mig, err := migrate.New(migrationSource, connectionString)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	mig, err := getConnection(config)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	switch action {
	case actionUp:
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case actionDown:
		if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	case actionStepUp:
		if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case actionDrop:
		if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	}

	return fmt.Errorf("unknown migration action %q", action)
}

func Up(config *config.Config) error {
	return Runner(config, actionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, actionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, actionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, actionDrop)
}
