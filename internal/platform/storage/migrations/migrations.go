package migrations

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
)

//go:embed *.sql
var files embed.FS

// migrationLogger adapts zerolog to migrate.Logger.
type migrationLogger struct {
	logger *zerolog.Logger
}

// Printf writes migrate progress at debug level.
func (l migrationLogger) Printf(format string, v ...any) {
	l.logger.Debug().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Verbose reports whether migrate should write verbose logs.
func (l migrationLogger) Verbose() bool {
	return l.logger.GetLevel() <= zerolog.DebugLevel
}

// Up applies all embedded migrations not yet applied to database under databaseURL.
// It uses its own connection which is closed before return.
func Up(databaseURL string, logger *zerolog.Logger) error {
	source, err := iofs.New(files, ".")
	if err != nil {
		return fmt.Errorf("can't open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		return fmt.Errorf("can't create migrate instance: %w", err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			logger.Warn().AnErr("sourceErr", srcErr).AnErr("dbErr", dbErr).Msg("can't close migrate instance")
		}
	}()
	m.Log = migrationLogger{logger: logger}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info().Msg("no new migrations to apply")
		return nil
	}
	if err != nil {
		version, dirty, _ := m.Version()
		return fmt.Errorf("can't apply migrations (version %d, dirty %t): %w", version, dirty, err)
	}

	version, _, _ := m.Version()
	logger.Info().Uint("version", version).Msg("migrations applied")

	return nil
}
