package order

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/sync/singleflight"
)

// ListingCache holds the admin order listing between writes.
// Consumers define this interface, not the Redis implementation.
type ListingCache interface {
	Get(ctx context.Context) ([]Order, error)
	Set(ctx context.Context, orders []Order) error
	Delete(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")

// Service fronts the repository with a listing cache. Creation invalidates
// the cached listing so admins never read a stale list after a new order.
type Service struct {
	repo  Repository
	cache ListingCache
	sfg   singleflight.Group // Prevents cache stampede on the listing
}

func NewService(repo Repository, cache ListingCache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

func (s *Service) CreateOrder(ctx context.Context, o *Order) (*Order, error) {
	saved, err := s.repo.CreateOrder(ctx, o)
	if err != nil {
		log.Printf("repo create order error: %v \n", err)
		return nil, err
	}

	s.invalidateListing()
	return saved, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]Order, error) {
	// Use singleflight so concurrent cache misses hit Mongo once
	v, err, _ := s.sfg.Do(listingFlightKey, func() (interface{}, error) {
		orders, err := s.cache.Get(ctx)
		if err == nil {
			return orders, nil // listing is in cache
		}

		if !errors.Is(err, ErrCacheMiss) {
			log.Printf("cache get error: %v \n", err) // log cache error but continue
		}

		orders, errList := s.repo.ListOrders(ctx)
		if errList != nil {
			return nil, errList
		}

		// set cache
		go func() {
			errSet := s.cache.Set(context.Background(), orders)
			if errSet != nil {
				log.Printf("cache set error: %v \n", errSet)
			}
		}()

		return orders, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]Order), nil
}

const listingFlightKey = "orders-listing"

func (s *Service) invalidateListing() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx); err != nil {
		log.Printf("cache invalidate error: %v \n", err)
	}
}
