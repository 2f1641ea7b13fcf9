package snapshot

import (
	"bytes"
	"context"
	"os"

	"github.com/natefinch/atomic"
)

// SaveFile writes the bundle to path, replacing any existing file
// atomically so a crash mid-write never leaves a torn snapshot behind.
func SaveFile(ctx context.Context, path string, b *Bundle, optFns ...Option) error {
	var buf bytes.Buffer
	if err := Save(ctx, &buf, b, optFns...); err != nil {
		return err
	}
	return atomic.WriteFile(path, bytes.NewReader(buf.Bytes()))
}

// LoadFile restores the bundle from the snapshot at path.
func LoadFile(ctx context.Context, path string, b *Bundle, optFns ...Option) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Load(ctx, f, b, optFns...)
}

// InspectFile reports on the snapshot at path.
func InspectFile(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Inspect(f)
}
