package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	pkgdata "github.com/goliatone/go-docfill/pkg/data"
)

// Loader implements pkgdata.Loader by delegating to file, fs.FS, HTTP, or
// reader strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ pkgdata.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgdata.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src pkgdata.Source) (pkgdata.Document, error) {
	if src == nil {
		return pkgdata.Document{}, errors.New("data loader: source is nil")
	}

	var (
		payload []byte
		err     error
	)

	switch src.Kind() {
	case pkgdata.SourceKindFile:
		payload, err = loadFile(ctx, l.fs, src.Location())
	case pkgdata.SourceKindFS:
		payload, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgdata.SourceKindURL:
		if !l.allowHTTP {
			return pkgdata.Document{}, errors.New("data loader: http support disabled")
		}
		payload, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	case pkgdata.SourceKindReader:
		payload, err = loadReader(ctx, src)
	default:
		err = errors.New("data loader: unsupported source kind")
	}
	if err != nil {
		return pkgdata.Document{}, err
	}

	return pkgdata.NewDocument(src, payload)
}
