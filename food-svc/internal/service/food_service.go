package service

import (
	"context"
	"log/slog"
	"time"

	"foods-backend/food-svc/internal/domain"
)

const (
	opListFoods  = "list_foods"
	opInsertFood = "insert_food"
)

// FoodService fronts the storage gateway. Cache and publisher failures are
// logged and never change what the caller sees.
type FoodService struct {
	repo      FoodRepository
	cache     FoodCache
	publisher FoodPublisher
	observer  StorageObserver
	logger    *slog.Logger
	now       func() time.Time
}

func NewFoodService(repo FoodRepository, opts ...Option) *FoodService {
	s := &FoodService{
		repo:   repo,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FoodService) List(ctx context.Context) ([]domain.Food, error) {
	cacheable := false
	var version int64
	if s.cache != nil {
		foods, ok, err := s.cache.GetFoods(ctx)
		if err != nil {
			s.logger.WarnContext(ctx, "food cache read failed", "error", err)
		} else if ok {
			return foods, nil
		}

		// the version is taken before the snapshot so a concurrent insert
		// makes the write below a no-op
		if version, err = s.cache.FoodsVersion(ctx); err != nil {
			s.logger.WarnContext(ctx, "food cache version read failed", "error", err)
		} else {
			cacheable = true
		}
	}

	foods, err := s.repo.ListFoods(ctx)
	s.observe(opListFoods, err)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if _, err := s.cache.SetFoods(ctx, foods, version); err != nil {
			s.logger.WarnContext(ctx, "food cache write failed", "error", err)
		}
	}
	return foods, nil
}

func (s *FoodService) Create(ctx context.Context, name string, price float64) (*domain.Food, error) {
	food, err := s.repo.InsertFood(ctx, name, price)
	s.observe(opInsertFood, err)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateFoods(ctx); err != nil {
			s.logger.WarnContext(ctx, "food cache invalidation failed", "food_id", food.ID, "error", err)
		}
	}

	if s.publisher != nil {
		event := domain.FoodEvent{
			Type:      domain.FoodCreatedEvent,
			FoodID:    food.ID,
			Name:      food.Name,
			Price:     food.Price,
			Timestamp: s.now().UTC(),
		}
		if err := s.publisher.PublishFoodCreated(ctx, event); err != nil {
			s.logger.WarnContext(ctx, "food event publish failed", "food_id", food.ID, "error", err)
		}
	}
	return food, nil
}

func (s *FoodService) observe(op string, err error) {
	if s.observer != nil {
		s.observer.ObserveStorage(op, err)
	}
}
