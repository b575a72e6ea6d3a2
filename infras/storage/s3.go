package storage

import (
	"context"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/s3"
	"hotel/shared/constant"
)

type s3Blob struct {
	client s3.S3
	prefix string
	otel   otel.Otel
}

func NewS3(client s3.S3, prefix string, ot otel.Otel) Blob {
	return &s3Blob{
		client: client,
		prefix: prefix,
		otel:   ot,
	}
}

func (b *s3Blob) Read(ctx context.Context, name string) ([]byte, error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".s3.Read")
	defer scope.End()

	scope.SetAttribute(constant.OtelBlobAttributeKey, name)

	data, err := b.client.GetObject(ctx, b.prefix, name)
	if err != nil {
		if errors.Is(err, s3.ErrObjectNotFound) {
			return nil, ErrNotExist
		}

		scope.TraceError(err)

		return nil, fmt.Errorf("failed to read blob %s: %w", name, err)
	}

	return data, nil
}

func (b *s3Blob) Write(ctx context.Context, name string, data []byte) error {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".s3.Write")
	defer scope.End()

	scope.SetAttribute(constant.OtelBlobAttributeKey, name)

	if err := b.client.PutObject(ctx, b.prefix, name, constant.ContentTypeJSON, data); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to write blob %s: %w", name, err)
	}

	return nil
}
