package tests

import (
	"context"
	"sync"
	"testing"
	"time"

	"foods-backend/food-svc/internal/domain"
	"foods-backend/food-svc/internal/service"
	"foods-backend/food-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pausingRepo holds the first ListFoods after it has copied the table,
// so an insert can land between the snapshot and the cache write.
type pausingRepo struct {
	mu    sync.Mutex
	foods []domain.Food
	calls int

	snapshotTaken chan struct{}
	release       chan struct{}
}

func newPausingRepo() *pausingRepo {
	return &pausingRepo{
		snapshotTaken: make(chan struct{}),
		release:       make(chan struct{}),
	}
}

func (r *pausingRepo) ListFoods(ctx context.Context) ([]domain.Food, error) {
	r.mu.Lock()
	snapshot := append([]domain.Food{}, r.foods...)
	r.calls++
	first := r.calls == 1
	r.mu.Unlock()

	if first {
		close(r.snapshotTaken)
		<-r.release
	}
	return snapshot, nil
}

func (r *pausingRepo) InsertFood(ctx context.Context, name string, price float64) (*domain.Food, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	food := domain.Food{ID: len(r.foods) + 1, Name: name, Price: price}
	r.foods = append(r.foods, food)
	return &food, nil
}

func TestFoodService_ListDoesNotCacheSnapshotOlderThanCreate(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := newPausingRepo()
	svc := service.NewFoodService(repo,
		service.WithCache(storage.NewRedisCache(client, time.Minute)),
		service.WithLogger(quietLogger),
	)
	ctx := context.Background()

	type listResult struct {
		foods []domain.Food
		err   error
	}
	firstList := make(chan listResult, 1)
	go func() {
		foods, err := svc.List(ctx)
		firstList <- listResult{foods: foods, err: err}
	}()

	select {
	case <-repo.snapshotTaken:
	case <-time.After(5 * time.Second):
		t.Fatal("first list never reached the store")
	}

	created, err := svc.Create(ctx, "Apple", 1.5)
	require.NoError(t, err)
	close(repo.release)

	var first listResult
	select {
	case first = <-firstList:
	case <-time.After(5 * time.Second):
		t.Fatal("first list did not return")
	}
	require.NoError(t, first.err)
	assert.Empty(t, first.foods)

	foods, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, *created, foods[0])
}
