package service_test

import (
	"context"
	"sync"

	"github.com/chandhuDev/JobLens/internal/models"
)

type fakeSource struct {
	name string
	docs []models.Document
	err  error

	mu    sync.Mutex
	calls int
	// entered and release, when set, hold Fetch open until release closes.
	entered chan struct{}
	release chan struct{}
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Fetch(ctx context.Context) ([]models.Document, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.entered != nil {
		f.entered <- struct{}{}
		<-f.release
	}
	return f.docs, f.err
}

func (f *fakeSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeCache struct {
	cached  models.CachedDocuments
	loadErr error
	stored  []models.Document
}

func (f *fakeCache) Load(context.Context) (models.CachedDocuments, error) {
	if f.loadErr != nil {
		return models.CachedDocuments{}, f.loadErr
	}
	return f.cached, nil
}

func (f *fakeCache) Store(_ context.Context, docs []models.Document) error {
	f.stored = docs
	return nil
}

func docs(titles ...string) []models.Document {
	out := make([]models.Document, 0, len(titles))
	for i, t := range titles {
		out = append(out, models.Document{
			"job_id":   string(rune('a' + i)),
			"title":    t,
			"location": "Bengaluru, Karnataka, India",
			"ctc":      "12 LPA",
		})
	}
	return out
}
