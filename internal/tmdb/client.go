package tmdb

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"moodyflicks/internal/models"
)

// Client is the TMDB API client.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a new TMDB API client.
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ---- TMDB Response Types (internal, not exposed to consumers) ----

// listResponse is the shared shape of discover/trending/similar responses.
type listResponse struct {
	Page         int            `json:"page"`
	Results      []models.Movie `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// movieDetailResponse is the raw movie detail payload including the
// append_to_response sub-documents.
type movieDetailResponse struct {
	models.MovieDetail
	KeywordsWrapper struct {
		Keywords []models.Keyword `json:"keywords"`
	} `json:"keywords"`
	VideosWrapper struct {
		Results []models.Video `json:"results"`
	} `json:"videos"`
	CreditsWrapper *models.Credits `json:"credits"`
}

// ---- Client Methods ----

// Trending fetches today's trending movies.
func (c *Client) Trending() ([]models.Movie, error) {
	u := fmt.Sprintf("%s/trending/movie/day?api_key=%s", c.baseURL, c.apiKey)

	slog.Debug("fetching TMDB trending")
	return c.fetchList(u)
}

// DiscoverByGenres fetches popular movies matching the given genre IDs.
func (c *Client) DiscoverByGenres(genreIDs []int, page int) ([]models.Movie, error) {
	parts := make([]string, len(genreIDs))
	for i, id := range genreIDs {
		parts[i] = strconv.Itoa(id)
	}
	u := fmt.Sprintf(
		"%s/discover/movie?api_key=%s&with_genres=%s&sort_by=popularity.desc&page=%d",
		c.baseURL, c.apiKey, strings.Join(parts, ","), page,
	)

	slog.Debug("fetching TMDB discover", "genres", genreIDs, "page", page)
	return c.fetchList(u)
}

// DiscoverPopular fetches popular movies with no genre filter.
func (c *Client) DiscoverPopular(page int) ([]models.Movie, error) {
	u := fmt.Sprintf(
		"%s/discover/movie?api_key=%s&sort_by=popularity.desc&page=%d",
		c.baseURL, c.apiKey, page,
	)

	slog.Debug("fetching TMDB discover", "page", page)
	return c.fetchList(u)
}

// GetMovieDetail fetches detailed movie info. The extra sub-documents are
// requested through append_to_response so one call serves the mood meter,
// trivia and detail flows.
func (c *Client) GetMovieDetail(movieID int, appendTo ...string) (*models.MovieDetail, error) {
	u := fmt.Sprintf("%s/movie/%d?api_key=%s", c.baseURL, movieID, c.apiKey)
	if len(appendTo) > 0 {
		u += "&append_to_response=" + url.QueryEscape(strings.Join(appendTo, ","))
	}

	slog.Debug("fetching TMDB movie detail", "movie_id", movieID)
	resp, err := c.doGet(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var raw movieDetailResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode movie detail response: %w", err)
	}

	detail := raw.MovieDetail
	detail.Keywords = raw.KeywordsWrapper.Keywords
	detail.Videos = raw.VideosWrapper.Results
	detail.Credits = raw.CreditsWrapper
	return &detail, nil
}

// GetCredits fetches the cast and crew for a movie.
func (c *Client) GetCredits(movieID int) (*models.Credits, error) {
	u := fmt.Sprintf("%s/movie/%d/credits?api_key=%s", c.baseURL, movieID, c.apiKey)

	slog.Debug("fetching TMDB credits", "movie_id", movieID)
	resp, err := c.doGet(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var credits models.Credits
	if err := json.NewDecoder(resp.Body).Decode(&credits); err != nil {
		return nil, fmt.Errorf("failed to decode credits response: %w", err)
	}
	return &credits, nil
}

// GetSimilar fetches movies similar to the given movie.
func (c *Client) GetSimilar(movieID int) ([]models.Movie, error) {
	u := fmt.Sprintf("%s/movie/%d/similar?api_key=%s&page=1", c.baseURL, movieID, c.apiKey)

	slog.Debug("fetching TMDB similar", "movie_id", movieID)
	return c.fetchList(u)
}

func (c *Client) fetchList(url string) ([]models.Movie, error) {
	resp, err := c.doGet(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result listResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode list response: %w", err)
	}
	return result.Results, nil
}

func (c *Client) doGet(url string) (*http.Response, error) {
	resp, err := c.http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("TMDB API returned status %d: %s", resp.StatusCode, string(body))
	}
	return resp, nil
}
