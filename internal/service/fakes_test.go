package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/srikarthikeya/caterers/internal/objectstore"
	"github.com/srikarthikeya/caterers/internal/pagination"
	"github.com/srikarthikeya/caterers/internal/store"
)

// fakeRepo is an in-memory repository. imageID extracts the unique field
// for resources that have one; nil disables the uniqueness behavior.
type fakeRepo[E any] struct {
	mu      sync.Mutex
	docs    map[string]*E
	order   []string
	imageID func(*E) string

	saveErr   error
	findErr   error
	deleteErr error
}

func newFakeRepo[E any](imageID func(*E) string) *fakeRepo[E] {
	return &fakeRepo[E]{docs: make(map[string]*E), imageID: imageID}
}

func (f *fakeRepo[E]) Save(_ context.Context, id string, doc *E) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.imageID != nil {
		want := f.imageID(doc)
		for otherID, other := range f.docs {
			if otherID != id && f.imageID(other) == want {
				return fmt.Errorf("save: %w", store.ErrDuplicateKey)
			}
		}
	}
	if _, ok := f.docs[id]; !ok {
		f.order = append(f.order, id)
	}
	cp := *doc
	f.docs[id] = &cp
	return nil
}

func (f *fakeRepo[E]) FindByID(_ context.Context, id string) (*E, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	doc, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *doc
	return &cp, nil
}

// FindAll pages over insertion order; sort fields are exercised against a
// real collection in the store tests.
func (f *fakeRepo[E]) FindAll(_ context.Context, req pagination.Request) ([]*E, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	start := int(req.Offset())
	if start > len(f.order) {
		start = len(f.order)
	}
	end := start + req.Size
	if end > len(f.order) {
		end = len(f.order)
	}
	out := make([]*E, 0, end-start)
	for _, id := range f.order[start:end] {
		cp := *f.docs[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeRepo[E]) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.docs)), nil
}

func (f *fakeRepo[E]) DeleteByID(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	if _, ok := f.docs[id]; !ok {
		return false, nil
	}
	delete(f.docs, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (f *fakeRepo[E]) ExistsByImageID(_ context.Context, imageID string) (bool, error) {
	return f.ExistsByImageIDExcluding(context.Background(), imageID, "")
}

func (f *fakeRepo[E]) ExistsByImageIDExcluding(_ context.Context, imageID, excludeID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, doc := range f.docs {
		if id != excludeID && f.imageID(doc) == imageID {
			return true, nil
		}
	}
	return false, nil
}

// fakeAssets is an in-memory objectstore.Store recording call order so
// tests can assert the asset-replacement sequencing.
type fakeAssets struct {
	mu      sync.Mutex
	objects map[string][]byte

	uploadErr error
	deleteErr error
	uploads   []string
	deletes   []string
}

func newFakeAssets() *fakeAssets {
	return &fakeAssets{objects: make(map[string][]byte)}
}

func (f *fakeAssets) Upload(_ context.Context, data []byte, _, filename, prefix string) (string, error) {
	if err := objectstore.ValidateImage(data, filename); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	key := objectstore.GenerateKey(prefix, filename)
	f.objects[key] = data
	f.uploads = append(f.uploads, key)
	return key, nil
}

func (f *fakeAssets) Replace(ctx context.Context, existingKey string, data []byte, contentType, filename string) (string, error) {
	key, err := f.Upload(ctx, data, contentType, filename, objectstore.KeyPrefix(existingKey))
	if err != nil {
		return "", err
	}
	return key, f.Delete(ctx, existingKey)
}

func (f *fakeAssets) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, key)
	f.deletes = append(f.deletes, key)
	return nil
}

func (f *fakeAssets) PresignedURL(_ context.Context, key string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("https://assets.test/%s?expires=%d", key, int(expiry.Seconds())), nil
}

func (f *fakeAssets) Exists(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]
	return ok, nil
}
