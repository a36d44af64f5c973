package cardfolio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math/rand/v2"
	"time"
)

// DefaultKey is the storage key of the collection blob.
const DefaultKey = "pok_collection"

// Storage persists blobs under a key.
//
// Load must report a missing key with an error matching fs.ErrNotExist.
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
}

// Binder owns a collection and mirrors it to a Storage after every change.
//
// A Binder is not safe for concurrent use.
type Binder struct {
	coll    *Collection
	storage Storage
	key     string
	rand    Rand
	now     func() time.Time
}

// Option configures a Binder.
type Option func(*Binder)

// WithKey sets the storage key. Default: DefaultKey.
func WithKey(key string) Option { return func(b *Binder) { b.key = key } }

// WithRand sets the source of randomness for new histories.
func WithRand(r Rand) Option { return func(b *Binder) { b.rand = r } }

// WithClock sets the function giving the creation time of new entries.
func WithClock(now func() time.Time) Option { return func(b *Binder) { b.now = now } }

// globalRand draws from math/rand/v2 top-level source.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Open loads the collection persisted in s. A missing blob is an empty collection.
func Open(ctx context.Context, s Storage, opts ...Option) (*Binder, error) {
	b := &Binder{
		storage: s,
		key:     DefaultKey,
		rand:    globalRand{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}

	blob, err := s.Load(ctx, b.key)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, collection %q does not exist, starting with an empty one", b.key)
		b.coll = NewCollection()
		return b, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot load collection %q: %w", b.key, err)
	}
	b.coll, err = DecodeCollection(bytes.NewReader(blob))
	if err != nil {
		return nil, fmt.Errorf("cannot load collection %q: %w", b.key, err)
	}
	return b, nil
}

// Collection returns the collection owned by b.
func (b *Binder) Collection() *Collection { return b.coll }

// Add creates a new entry from c, puts it first and persists the collection.
//
// An invalid card leaves the collection untouched.
func (b *Binder) Add(ctx context.Context, c Card) (*Entry, error) {
	e, err := NewEntry(c, b.rand, b.now())
	if err != nil {
		return nil, err
	}
	b.coll.Add(e)
	return e, b.persist(ctx)
}

// Delete removes the entry with identifier id and persists the collection.
func (b *Binder) Delete(ctx context.Context, id string) error {
	if !b.coll.Remove(id) {
		return fmt.Errorf("cannot delete %q: %w", id, ErrNotFound)
	}
	return b.persist(ctx)
}

// Clear removes all entries and persists the empty collection.
func (b *Binder) Clear(ctx context.Context) error {
	b.coll.Clear()
	return b.persist(ctx)
}

// persist mirrors the whole collection to the storage.
func (b *Binder) persist(ctx context.Context) error {
	var buf bytes.Buffer
	if err := EncodeCollection(&buf, b.coll, false); err != nil {
		return err
	}
	if err := b.storage.Save(ctx, b.key, buf.Bytes()); err != nil {
		return fmt.Errorf("cannot save collection %q: %w", b.key, err)
	}
	return nil
}
