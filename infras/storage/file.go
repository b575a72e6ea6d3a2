package storage

import (
	"context"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	fileDirPerm  = 0o755
	filePerm     = 0o644
	tempFileGlob = ".*.tmp"
)

type fileBlob struct {
	directory string
	otel      otel.Otel
}

func NewFile(directory string, ot otel.Otel) Blob {
	return &fileBlob{
		directory: directory,
		otel:      ot,
	}
}

func (b *fileBlob) Read(ctx context.Context, name string) (data []byte, err error) {
	_, scope := b.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".file.Read")
	defer scope.End()

	scope.SetAttribute(constant.OtelBlobAttributeKey, name)

	data, err = os.ReadFile(filepath.Join(b.directory, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotExist
		}

		scope.TraceError(err)

		return nil, fmt.Errorf("failed to read blob %s: %w", name, err)
	}

	return data, nil
}

// Write goes through a temp file in the same directory and a rename, so readers never see a partial document.
func (b *fileBlob) Write(ctx context.Context, name string, data []byte) (err error) {
	_, scope := b.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".file.Write")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelBlobAttributeKey, name)

	if err = os.MkdirAll(b.directory, fileDirPerm); err != nil {
		return fmt.Errorf("failed to create blob directory: %w", err)
	}

	tmp, err := os.CreateTemp(b.directory, name+tempFileGlob)
	if err != nil {
		return fmt.Errorf("failed to create temp blob: %w", err)
	}

	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("failed to write temp blob: %w", err)
	}

	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("failed to sync temp blob: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp blob: %w", err)
	}

	if err = os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("failed to chmod temp blob: %w", err)
	}

	if err = os.Rename(tmpName, filepath.Join(b.directory, name)); err != nil {
		return fmt.Errorf("failed to replace blob %s: %w", name, err)
	}

	return nil
}
