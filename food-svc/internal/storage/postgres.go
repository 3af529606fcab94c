package storage

import (
	"context"

	"foods-backend/food-svc/internal/domain"

	"gorm.io/gorm"
)

type PostgresRepository struct {
	DB *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// ListFoods returns the whole food table ordered by id.
func (r *PostgresRepository) ListFoods(ctx context.Context) ([]domain.Food, error) {
	foods := make([]domain.Food, 0)
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&foods).Error; err != nil {
		return nil, &domain.StorageError{Op: "list foods", Err: err}
	}
	return foods, nil
}

func (r *PostgresRepository) InsertFood(ctx context.Context, name string, price float64) (*domain.Food, error) {
	food := domain.Food{Name: name, Price: price}
	if err := r.DB.WithContext(ctx).Create(&food).Error; err != nil {
		return nil, &domain.StorageError{Op: "insert food", Err: err}
	}
	return &food, nil
}
