package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandhuDev/JobLens/internal/service"
)

func TestRefreshService_InvalidSchedule(t *testing.T) {
	r := service.NewRefreshService(newDataset(&fakeSource{}, nil), "every tuesday")
	assert.ErrorContains(t, r.Start(context.Background()), "invalid refresh schedule")
}

func TestRefreshService_Disabled(t *testing.T) {
	r := service.NewRefreshService(newDataset(&fakeSource{}, nil), "")
	require.NoError(t, r.Start(context.Background()))
	r.Stop(context.Background())
}

func TestRefreshService_RunsOnSchedule(t *testing.T) {
	src := &fakeSource{name: "typesense", docs: docs("Recruiter")}
	ds := newDataset(src, nil)

	r := service.NewRefreshService(ds, "@every 1s")
	require.NoError(t, r.Start(context.Background()))
	defer r.Stop(context.Background())

	assert.Eventually(t, func() bool {
		_, err := ds.Store.Get()
		return err == nil
	}, 5*time.Second, 50*time.Millisecond)
	assert.GreaterOrEqual(t, src.Calls(), 1)
}
