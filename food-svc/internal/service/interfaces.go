package service

import (
	"context"

	"foods-backend/food-svc/internal/domain"
)

type FoodRepository interface {
	ListFoods(ctx context.Context) ([]domain.Food, error)
	InsertFood(ctx context.Context, name string, price float64) (*domain.Food, error)
}

// FoodCache stores the food list. SetFoods must refuse a list read under a
// version that InvalidateFoods has since moved past.
type FoodCache interface {
	GetFoods(ctx context.Context) ([]domain.Food, bool, error)
	FoodsVersion(ctx context.Context) (int64, error)
	SetFoods(ctx context.Context, foods []domain.Food, version int64) (bool, error)
	InvalidateFoods(ctx context.Context) error
}

type FoodPublisher interface {
	PublishFoodCreated(ctx context.Context, event domain.FoodEvent) error
}

type StorageObserver interface {
	ObserveStorage(op string, err error)
}

type FoodServiceInterface interface {
	List(ctx context.Context) ([]domain.Food, error)
	Create(ctx context.Context, name string, price float64) (*domain.Food, error)
}

var _ FoodServiceInterface = (*FoodService)(nil)
