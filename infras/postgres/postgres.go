package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"time"

	"hotel/config"
	"hotel/shared/constant"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// Connection holds the primary only. Collections are read and rewritten as a whole, so every
// read must see the latest write.
type Connection struct {
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	write := Connect("write", config, config.DB.Postgres.Write)
	if write == nil {
		log.Fatal().Msg("Failed to connect to postgres write endpoint")
	}

	return &Connection{Write: write}
}

// DBName applies the configured database name prefix.
func DBName(config *config.Config, baseName string) string {
	return config.DB.Postgres.Prefix + baseName
}

// DSN builds a postgres URL for the endpoint. Extra query parameters are appended as given.
func DSN(config *config.Config, endpoint config.PostgresEndpoint, params url.Values) string {
	query := url.Values{}
	if endpoint.SSLMode != constant.Empty {
		query.Set("sslmode", endpoint.SSLMode)
	}

	if endpoint.Timezone != constant.Empty {
		query.Set("timezone", endpoint.Timezone)
	}

	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(endpoint.Username, endpoint.Password),
		Host:     net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:     "/" + DBName(config, endpoint.Name),
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// Connect makes at least one attempt and retries up to MAX_RETRY times. It returns nil when every attempt fails.
func Connect(name string, config *config.Config, endpoint config.PostgresEndpoint) *sqlx.DB {
	attempts := max(1, config.DB.Postgres.MaxRetry)
	waitTime := time.Duration(config.DB.Postgres.RetryWaitTime) * time.Second

	logger := log.With().
		Str("name", name).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("dbName", DBName(config, endpoint.Name)).
		Logger()

	for attempt := range attempts {
		sqlDB, err := sqlx.Connect("postgres", DSN(config, endpoint, nil))
		if err == nil {
			logger.Info().Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		logger.Error().Err(err).Int("attempt", attempt+1).Msg("Failed connecting to database")

		if attempt+1 < attempts {
			time.Sleep(waitTime)
		}
	}

	return nil
}
