package service

import (
	"errors"
	"fmt"
	"math"

	"starbar/internal/logging"
	"starbar/internal/ratingbar"
	"starbar/internal/ratings"
)

// RatingStore abstracts the ratings DB for easier testing and decoupling.
type RatingStore interface {
	SetRating(item string, rating float32, max int) error
	GetRating(item string) (ratings.Record, bool, error)
	RemoveRating(item string) error
	ListRatings() ([]ratings.Record, error)
	Summary() (ratings.Summary, error)
	Close() error
}

// Service is the main entry point for business logic.
type Service struct {
	Store  RatingStore
	Logger logging.LoggerFunc
}

// NewService constructs a new Service.
func NewService(store RatingStore, logger logging.LoggerFunc) *Service {
	if logger == nil {
		logger = logging.Default("service")
	}
	return &Service{
		Store:  store,
		Logger: logger,
	}
}

// SetRating stores rating for item, clamped to [0, max]. max must be at least 1.
func (s *Service) SetRating(item string, rating float32, max int) (float32, error) {
	if item == "" {
		return 0, errors.New("item name required")
	}
	if max < 1 {
		return 0, fmt.Errorf("max stars must be at least 1, got %d", max)
	}
	if math.IsNaN(float64(rating)) || rating < 0 {
		rating = 0
	} else if rating > float32(max) {
		rating = float32(max)
	}
	if err := s.Store.SetRating(item, rating, max); err != nil {
		return 0, err
	}
	return rating, nil
}

// GetRating returns the stored rating of item and whether there is one.
func (s *Service) GetRating(item string) (ratings.Record, bool, error) {
	return s.Store.GetRating(item)
}

// ListRatings returns every stored rating.
func (s *Service) ListRatings() ([]ratings.Record, error) {
	return s.Store.ListRatings()
}

// RemoveRating deletes the rating of item.
func (s *Service) RemoveRating(item string) error {
	if item == "" {
		return errors.New("item name required")
	}
	return s.Store.RemoveRating(item)
}

// Summary describes every stored rating.
func (s *Service) Summary() (ratings.Summary, error) {
	return s.Store.Summary()
}

// Bind shows the stored rating of item on bar and stores every rating the
// user picks on it afterwards. Loading the stored rating is a programmatic
// change, so it is not written back. Bind replaces the bar's listener; next,
// if not nil, is called after each change is handled.
func (s *Service) Bind(item string, bar *ratingbar.RatingBar, next ratingbar.ChangeListener) error {
	rec, found, err := s.Store.GetRating(item)
	if err != nil {
		return fmt.Errorf("failed to load rating for '%s': %w", item, err)
	}

	bar.SetChangeListener(ratingbar.ChangeListenerFunc(func(b *ratingbar.RatingBar, rating float32, fromUser bool) {
		if fromUser {
			if err := s.Store.SetRating(item, rating, b.Max()); err != nil {
				s.Logger(fmt.Sprintf("Failed to save rating for '%s': %v", item, err))
			} else {
				s.Logger(fmt.Sprintf("Rated '%s' %g/%d", item, rating, b.Max()))
			}
		}
		if next != nil {
			next.OnRatingChanged(b, rating, fromUser)
		}
	}))

	if found {
		bar.SetRating(rec.Rating)
	}
	return nil
}
