package domain

import (
	"fmt"
	"time"
)

type Food struct {
	ID    int     `json:"id" gorm:"primaryKey"`
	Name  string  `json:"name" gorm:"not null"`
	Price float64 `json:"price" gorm:"not null"`
}

func (Food) TableName() string {
	return "food"
}

const FoodCreatedEvent = "food.created"

type FoodEvent struct {
	Type      string    `json:"type"`
	FoodID    int       `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// StorageError is returned for any failed list or insert against the store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
