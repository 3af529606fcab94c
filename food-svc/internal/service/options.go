package service

import "log/slog"

type Option func(*FoodService)

func WithCache(cache FoodCache) Option {
	return func(s *FoodService) {
		s.cache = cache
	}
}

func WithPublisher(publisher FoodPublisher) Option {
	return func(s *FoodService) {
		s.publisher = publisher
	}
}

func WithObserver(observer StorageObserver) Option {
	return func(s *FoodService) {
		s.observer = observer
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *FoodService) {
		if logger != nil {
			s.logger = logger
		}
	}
}
