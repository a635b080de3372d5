package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/go-pdf/fpdf"

	"moodyflicks/internal/models"
)

// ExportSort orders the movie list in an exported collection.
type ExportSort string

const (
	ExportSortTitle  ExportSort = "title"
	ExportSortRating ExportSort = "rating"
	ExportSortDate   ExportSort = "date"
)

// ExportOptions control the PDF layout.
type ExportOptions struct {
	SortBy       ExportSort
	IncludeStats bool
}

// ExportService renders a collection as a downloadable PDF document.
type ExportService struct {
	collections *CollectionService
	catalog     *CatalogService
}

// NewExportService creates a new ExportService.
func NewExportService(collections *CollectionService, catalog *CatalogService) *ExportService {
	return &ExportService{collections: collections, catalog: catalog}
}

// BuildPDF renders the collection to an A4 PDF and returns the document
// bytes together with a suggested filename.
func (s *ExportService) BuildPDF(ctx context.Context, userID, collectionID string, opts ExportOptions) ([]byte, string, error) {
	collection, err := s.collections.Get(ctx, userID, collectionID)
	if err != nil {
		return nil, "", err
	}

	movies := make([]*models.MovieDetail, 0, len(collection.MovieIDs))
	for _, id := range collection.MovieIDs {
		detail, err := s.catalog.Detail(id)
		if err != nil {
			slog.Warn("skipping movie in export", "movie_id", id, "error", err)
			continue
		}
		movies = append(movies, detail)
	}
	sortMovies(movies, opts.SortBy)

	pdf := fpdf.New("P", "mm", "A4", "")
	_, pageHeight := pdf.GetPageSize()
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(33, 33, 33)
	pdf.Text(14, 22, collection.Name)

	if collection.Description != "" {
		pdf.SetFont("Helvetica", "", 12)
		pdf.SetTextColor(100, 100, 100)
		pdf.Text(14, 32, collection.Description)
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(120, 120, 120)
	pdf.Text(14, 40, "Last updated: "+collection.UpdatedAt.Format("January 2, 2006"))

	y := 50.0

	if opts.IncludeStats && len(movies) > 0 {
		stats := collectionStats(movies)

		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(33, 33, 33)
		pdf.Text(14, y, "Collection Statistics")
		y += 8

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(80, 80, 80)
		pdf.Text(14, y, fmt.Sprintf("Total Movies: %d", stats.TotalMovies))
		pdf.Text(14, y+5, fmt.Sprintf("Average Rating: %.1f", stats.AverageRating))
		pdf.Text(14, y+10, fmt.Sprintf("Year Range: %d - %d", stats.OldestYear, stats.NewestYear))
		y += 20
	}

	if len(movies) > 0 {
		for i, movie := range movies {
			if y > pageHeight-20 {
				pdf.AddPage()
				y = 20
			}

			pdf.SetFont("Helvetica", "", 12)
			pdf.SetTextColor(33, 33, 33)
			pdf.Text(14, y, fmt.Sprintf("%d. %s", i+1, movie.Title))

			pdf.SetFont("Helvetica", "", 10)
			pdf.SetTextColor(100, 100, 100)
			pdf.Text(14, y+5, fmt.Sprintf("Rating: %.1f | Released: %d", movie.VoteAverage, movie.ReleaseYear()))

			y += 15
		}
	} else {
		pdf.SetFont("Helvetica", "", 14)
		pdf.SetTextColor(100, 100, 100)
		pdf.Text(14, y, "No movies in this collection yet.")
	}

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.Text(14, pageHeight-10, "Generated by MoodyFlicks on "+time.Now().Format("January 2, 2006"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render PDF: %w", err)
	}

	filename := fmt.Sprintf("MoodyFlicks-%s.pdf", collection.Name)
	slog.Info("collection exported", "user_id", userID, "collection_id", collectionID, "movies", len(movies))
	return buf.Bytes(), filename, nil
}

func sortMovies(movies []*models.MovieDetail, by ExportSort) {
	switch by {
	case ExportSortRating:
		sort.SliceStable(movies, func(i, j int) bool {
			return movies[i].VoteAverage > movies[j].VoteAverage
		})
	case ExportSortDate:
		sort.SliceStable(movies, func(i, j int) bool {
			return movies[i].ReleaseDate > movies[j].ReleaseDate
		})
	default:
		sort.SliceStable(movies, func(i, j int) bool {
			return movies[i].Title < movies[j].Title
		})
	}
}

func collectionStats(movies []*models.MovieDetail) models.CollectionStats {
	stats := models.CollectionStats{TotalMovies: len(movies)}

	sum := 0.0
	for _, m := range movies {
		sum += m.VoteAverage
		year := m.ReleaseYear()
		if year == 0 {
			continue
		}
		if stats.OldestYear == 0 || year < stats.OldestYear {
			stats.OldestYear = year
		}
		if year > stats.NewestYear {
			stats.NewestYear = year
		}
	}
	if len(movies) > 0 {
		stats.AverageRating = sum / float64(len(movies))
	}
	return stats
}
