package loader

import (
	"context"
	"errors"
	"io"

	pkgdata "github.com/goliatone/go-docfill/pkg/data"
)

func loadReader(ctx context.Context, src pkgdata.Source) ([]byte, error) {
	rs, ok := src.(pkgdata.ReaderSource)
	if !ok {
		return nil, errors.New("data loader: reader source does not expose a reader")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	r := rs.Reader()
	if r == nil {
		return nil, errors.New("data loader: reader source has a nil reader")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return data, nil
}
