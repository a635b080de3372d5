package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"moodyflicks/internal/models"
	"moodyflicks/internal/mood"
	"moodyflicks/internal/tmdb"
)

const (
	movieListCacheTTL   = 5 * time.Minute
	movieDetailCacheTTL = 30 * time.Minute
)

// CatalogService serves movie data from TMDB with a Redis cache in front.
type CatalogService struct {
	tmdbClient *tmdb.Client
	redis      *redis.Client
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(tmdbClient *tmdb.Client, rdb *redis.Client) *CatalogService {
	return &CatalogService{
		tmdbClient: tmdbClient,
		redis:      rdb,
	}
}

// Trending returns today's trending movies.
func (s *CatalogService) Trending() ([]models.Movie, error) {
	cacheKey := "movies:trending"

	if cached, err := s.getFromCache(cacheKey); err == nil {
		var result []models.Movie
		if json.Unmarshal([]byte(cached), &result) == nil {
			slog.Debug("cache hit", "key", cacheKey)
			return result, nil
		}
	}

	movies, err := s.tmdbClient.Trending()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trending movies: %w", err)
	}

	if data, err := json.Marshal(movies); err == nil {
		s.setCache(cacheKey, string(data), movieListCacheTTL)
	}
	return movies, nil
}

// MoviesForMood returns a page of movies matching a mood's genre mapping.
// Unknown moods fall back to the action/adventure mapping.
func (s *CatalogService) MoviesForMood(moodLabel string, page int) ([]models.Movie, error) {
	if page < 1 {
		page = 1
	}
	cacheKey := fmt.Sprintf("movies:mood:%s:%d", moodLabel, page)

	if cached, err := s.getFromCache(cacheKey); err == nil {
		var result []models.Movie
		if json.Unmarshal([]byte(cached), &result) == nil {
			slog.Debug("cache hit", "key", cacheKey)
			return result, nil
		}
	}

	mapping := mood.DiscoverMapping(moodLabel)
	movies, err := s.tmdbClient.DiscoverByGenres(mapping.GenreIDs, page)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movies for mood %q: %w", moodLabel, err)
	}

	if data, err := json.Marshal(movies); err == nil {
		s.setCache(cacheKey, string(data), movieListCacheTTL)
	}
	return movies, nil
}

// Popular returns a page of the most popular movies with no genre filter.
func (s *CatalogService) Popular(page int) ([]models.Movie, error) {
	if page < 1 {
		page = 1
	}
	cacheKey := fmt.Sprintf("movies:popular:%d", page)

	if cached, err := s.getFromCache(cacheKey); err == nil {
		var result []models.Movie
		if json.Unmarshal([]byte(cached), &result) == nil {
			slog.Debug("cache hit", "key", cacheKey)
			return result, nil
		}
	}

	movies, err := s.tmdbClient.DiscoverPopular(page)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch popular movies: %w", err)
	}

	if data, err := json.Marshal(movies); err == nil {
		s.setCache(cacheKey, string(data), movieListCacheTTL)
	}
	return movies, nil
}

// Detail returns a movie with its keywords, videos and credits attached.
func (s *CatalogService) Detail(movieID int) (*models.MovieDetail, error) {
	cacheKey := fmt.Sprintf("movie:detail:%d", movieID)

	if cached, err := s.getFromCache(cacheKey); err == nil {
		var result models.MovieDetail
		if json.Unmarshal([]byte(cached), &result) == nil {
			slog.Debug("cache hit", "key", cacheKey)
			return &result, nil
		}
	}

	detail, err := s.tmdbClient.GetMovieDetail(movieID, "keywords", "videos", "credits")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movie %d: %w", movieID, err)
	}

	if data, err := json.Marshal(detail); err == nil {
		s.setCache(cacheKey, string(data), movieDetailCacheTTL)
	}
	return detail, nil
}

// Credits returns the cast and crew of a movie.
func (s *CatalogService) Credits(movieID int) (*models.Credits, error) {
	cacheKey := fmt.Sprintf("movie:credits:%d", movieID)

	if cached, err := s.getFromCache(cacheKey); err == nil {
		var result models.Credits
		if json.Unmarshal([]byte(cached), &result) == nil {
			slog.Debug("cache hit", "key", cacheKey)
			return &result, nil
		}
	}

	credits, err := s.tmdbClient.GetCredits(movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch credits for movie %d: %w", movieID, err)
	}

	if data, err := json.Marshal(credits); err == nil {
		s.setCache(cacheKey, string(data), movieDetailCacheTTL)
	}
	return credits, nil
}

// Similar returns movies similar to the given one.
func (s *CatalogService) Similar(movieID int) ([]models.Movie, error) {
	cacheKey := fmt.Sprintf("movie:similar:%d", movieID)

	if cached, err := s.getFromCache(cacheKey); err == nil {
		var result []models.Movie
		if json.Unmarshal([]byte(cached), &result) == nil {
			slog.Debug("cache hit", "key", cacheKey)
			return result, nil
		}
	}

	movies, err := s.tmdbClient.GetSimilar(movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch similar movies for %d: %w", movieID, err)
	}

	if data, err := json.Marshal(movies); err == nil {
		s.setCache(cacheKey, string(data), movieListCacheTTL)
	}
	return movies, nil
}

// MoodMeter scores a movie against every mood and returns the top four
// affinity percentages.
func (s *CatalogService) MoodMeter(movieID int) ([]models.MoodScore, error) {
	detail, err := s.Detail(movieID)
	if err != nil {
		return nil, err
	}
	return mood.Score(detail.Genres, detail.Keywords), nil
}

// ---- Redis Helpers ----

func (s *CatalogService) getFromCache(key string) (string, error) {
	if s.redis == nil {
		return "", fmt.Errorf("redis not available")
	}
	return s.redis.Get(context.Background(), key).Result()
}

func (s *CatalogService) setCache(key, value string, ttl time.Duration) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Set(context.Background(), key, value, ttl).Err(); err != nil {
		slog.Error("failed to set cache", "key", key, "error", err)
	}
}
