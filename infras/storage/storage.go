// Package storage holds named JSON documents for the whole-collection stores.
// Drivers: local files (default), an S3 compatible bucket, or a postgres table.
package storage

//go:generate go run go.uber.org/mock/mockgen -source=./storage.go -destination=./mocks/storage_mock.go -package=mocks

import (
	"context"
	"errors"
	"hotel/config"
	"hotel/helper"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/s3"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

var ErrNotExist = errors.New("blob does not exist")

// Blob reads and writes a whole named document. Write either replaces the content or leaves it untouched.
type Blob interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
}

// New selects the driver named by STORAGE_DRIVER.
func New(cfg *config.Config, ot otel.Otel) Blob {
	driver := cfg.Storage.Driver

	logger := log.With().Str("driver", driver).Logger()

	switch driver {
	case constant.StorageDriverS3:
		logger.Info().Str("bucket", cfg.External.S3.BucketName).Str("prefix", cfg.Storage.Prefix).Msg("Using S3 blob storage")

		return NewS3(s3.New(cfg, ot), cfg.Storage.Prefix, ot)
	case constant.StorageDriverPostgres:
		logger.Info().Msg("Using postgres blob storage")

		conn := postgres.New(cfg)

		if cfg.DB.Postgres.AutoMigrate {
			if err := helper.Up(cfg); err != nil {
				logger.Fatal().Err(err).Msg("Failed to migrate blob table")
			}
		}

		return NewPostgres(conn, ot)
	case constant.StorageDriverFile, constant.Empty:
		logger.Info().Str("directory", cfg.Storage.Directory).Msg("Using file blob storage")

		return NewFile(cfg.Storage.Directory, ot)
	default:
		logger.Fatal().Msg("Unknown storage driver")

		return nil
	}
}
