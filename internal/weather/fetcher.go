package weather

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// WithRequestID tags ctx with the id sent upstream as X-Request-Id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the id stored by WithRequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Fetcher picks one provider per call: the keyed provider when an API key is
// configured, the keyless one otherwise. It never retries across providers.
type Fetcher struct {
	keyed   KeyedProviderFactory
	keyless Provider
}

// NewFetcher creates a new Fetcher. keyed may be nil, in which case every
// fetch goes to keyless.
func NewFetcher(keyed KeyedProviderFactory, keyless Provider) *Fetcher {
	return &Fetcher{
		keyed:   keyed,
		keyless: keyless,
	}
}

// Select returns the provider Fetch would use for apiKey. Blank keys count as absent.
func (f *Fetcher) Select(apiKey string) Provider {
	key := strings.TrimSpace(apiKey)
	if key == "" || f.keyed == nil {
		return f.keyless
	}
	return f.keyed(key)
}

// Fetch returns a normalized snapshot for loc or a *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, loc Location, apiKey string) (Snapshot, error) {
	p := f.Select(apiKey)

	reqID := uuid.NewString()
	ctx = WithRequestID(ctx, reqID)
	log.Printf("DEBUG: [%s] fetching %s from %s", reqID, loc, p.Name())

	snap, err := p.Fetch(ctx, loc)
	if err != nil {
		var fe *FetchError
		if !errors.As(err, &fe) {
			err = &FetchError{Kind: KindNetwork, Provider: p.Name(), Location: loc, Err: err}
		}
		log.Printf("ERROR: [%s] %v", reqID, err)
		return Snapshot{}, err
	}

	log.Printf("DEBUG: [%s] %s returned %d forecast days, %d hourly points",
		reqID, p.Name(), len(snap.forecast), len(snap.hourly))
	return snap, nil
}
