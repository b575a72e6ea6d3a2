package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/shared/constant"
)

const (
	queryReadBlob  = `SELECT content FROM blobs WHERE name = $1`
	queryWriteBlob = `INSERT INTO blobs (name, content, modified_at) VALUES ($1, $2, NOW())
ON CONFLICT (name) DO UPDATE SET content = EXCLUDED.content, modified_at = EXCLUDED.modified_at`
)

type postgresBlob struct {
	db   *postgres.Connection
	otel otel.Otel
}

func NewPostgres(db *postgres.Connection, ot otel.Otel) Blob {
	return &postgresBlob{
		db:   db,
		otel: ot,
	}
}

func (b *postgresBlob) Read(ctx context.Context, name string) ([]byte, error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".postgres.Read")
	defer scope.End()

	scope.SetAttribute(constant.OtelBlobAttributeKey, name)

	var content string

	err := b.db.Write.GetContext(ctx, &content, queryReadBlob, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotExist
		}

		scope.TraceError(err)

		return nil, fmt.Errorf("failed to read blob %s: %w", name, err)
	}

	return []byte(content), nil
}

// Write upserts the document in a single statement.
func (b *postgresBlob) Write(ctx context.Context, name string, data []byte) error {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".postgres.Write")
	defer scope.End()

	scope.SetAttribute(constant.OtelBlobAttributeKey, name)

	if _, err := b.db.Write.ExecContext(ctx, queryWriteBlob, name, string(data)); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to write blob %s: %w", name, err)
	}

	return nil
}
