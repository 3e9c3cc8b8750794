package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"movieclub-backend/internal/catalog"
	"movieclub-backend/internal/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	RefreshSuccess   = "success"
	RefreshPartial   = "partial"
	RefreshCancelled = "cancelled"
)

type RefreshOptions struct {
	// Limit caps the number of movies visited; <= 0 visits all of them.
	Limit int
	// Delay is the minimum spacing between TMDB call groups.
	Delay  time.Duration
	DryRun bool
}

type FieldChange struct {
	Field string `json:"field"`
	From  any    `json:"from"`
	To    any    `json:"to"`
}

type MovieChange struct {
	MovieID uint          `json:"movie_id"`
	TMDBID  int           `json:"tmdb_id"`
	Title   string        `json:"title"`
	Changes []FieldChange `json:"changes"`
}

type RefreshReport struct {
	Processed int                `json:"processed"`
	Failed    int                `json:"failed"`
	DryRun    bool               `json:"dry_run"`
	Changes   []MovieChange      `json:"changes"`
	Log       *models.RefreshLog `json:"log,omitempty"`
}

// RefreshFromTMDB overwrites the TMDB-sourced columns of every linked movie.
// Slug, id and reviews are kept. A failure on one movie is counted and the
// run moves on.
func (s *movieService) RefreshFromTMDB(ctx context.Context, opts RefreshOptions) (*RefreshReport, error) {
	movies, err := s.repo.ListWithTMDBID(ctx, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}

	limit := rate.Inf
	if opts.Delay > 0 {
		limit = rate.Every(opts.Delay)
	}
	limiter := rate.NewLimiter(limit, 1)

	report := &RefreshReport{DryRun: opts.DryRun, Changes: []MovieChange{}}
	started := time.Now().UTC()
	status := RefreshSuccess
	var lastErr error

	for i := range movies {
		movie := &movies[i]
		if err := limiter.Wait(ctx); err != nil {
			status = RefreshCancelled
			lastErr = err
			break
		}

		fields := s.logger.WithFields(logrus.Fields{"movie": movie.ID, "tmdb_id": *movie.TMDBID})

		meta, err := s.catalog.FetchMovie(ctx, *movie.TMDBID, true)
		if err != nil {
			if errors.Is(err, catalog.ErrNotConfigured) {
				return nil, err
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				status = RefreshCancelled
				lastErr = err
				break
			}
			fields.WithError(err).Warn("Refresh failed, skipping movie")
			report.Failed++
			lastErr = err
			continue
		}

		updated := movieFromMetadata(meta, movie.Title)
		changes, columns := diffMovie(movie, updated)
		report.Processed++
		if len(changes) == 0 {
			continue
		}
		report.Changes = append(report.Changes, MovieChange{
			MovieID: movie.ID,
			TMDBID:  *movie.TMDBID,
			Title:   movie.Title,
			Changes: changes,
		})

		if opts.DryRun {
			fields.WithField("changes", changes).Info("Dry run, movie would change")
			continue
		}

		oldPoster := movie.PosterURL
		applyRefresh(movie, updated)
		if err := s.repo.Update(ctx, movie, columns...); err != nil {
			fields.WithError(err).Warn("Refresh write failed, skipping movie")
			report.Processed--
			report.Failed++
			lastErr = err
			continue
		}
		if oldPoster != movie.PosterURL {
			s.removePoster(ctx, oldPoster)
		}
		fields.WithField("columns", columns).Info("Movie refreshed from TMDB")
	}

	if status == RefreshSuccess && report.Failed > 0 {
		status = RefreshPartial
	}

	if !opts.DryRun {
		entry := &models.RefreshLog{
			Status:     status,
			Processed:  report.Processed,
			Failed:     report.Failed,
			StartedAt:  started,
			FinishedAt: time.Now().UTC(),
		}
		if lastErr != nil {
			entry.ErrorMessage = lastErr.Error()
		}
		// The run may have been cancelled; the log row is still written.
		if err := s.repo.CreateRefreshLog(context.WithoutCancel(ctx), entry); err != nil {
			s.logger.WithError(err).Error("Failed to save refresh log")
		} else {
			report.Log = entry
		}
	}

	s.logger.WithFields(logrus.Fields{
		"processed": report.Processed,
		"failed":    report.Failed,
		"dry_run":   opts.DryRun,
		"status":    status,
	}).Info("TMDB refresh finished")

	if status == RefreshCancelled {
		return report, lastErr
	}
	return report, nil
}

// diffMovie lists the refreshable fields that differ between current and
// fetched, with the column names to write.
func diffMovie(current, fetched *models.Movie) ([]FieldChange, []string) {
	var changes []FieldChange
	var columns []string
	add := func(field, column string, from, to any) {
		changes = append(changes, FieldChange{Field: field, From: from, To: to})
		columns = append(columns, column)
	}

	if current.Title != fetched.Title {
		add("title", "title", current.Title, fetched.Title)
	}
	if !slices.Equal(current.Director, fetched.Director) {
		add("director", "director", []string(current.Director), []string(fetched.Director))
	}
	if !slices.Equal(current.Actors, fetched.Actors) {
		add("actors", "actors", []string(current.Actors), []string(fetched.Actors))
	}
	if !slices.Equal(current.Genres, fetched.Genres) {
		add("genres", "genres", []string(current.Genres), []string(fetched.Genres))
	}
	if !equalIntPtr(current.ReleaseYear, fetched.ReleaseYear) {
		add("release_yr", "release_yr", intValue(current.ReleaseYear), intValue(fetched.ReleaseYear))
	}
	if !equalIntPtr(current.Runtime, fetched.Runtime) {
		add("runtime", "runtime", intValue(current.Runtime), intValue(fetched.Runtime))
	}
	if current.PosterURL != fetched.PosterURL {
		add("poster_url", "poster_url", current.PosterURL, fetched.PosterURL)
	}
	return changes, columns
}

func applyRefresh(movie, fetched *models.Movie) {
	movie.Title = fetched.Title
	movie.Director = fetched.Director
	movie.Actors = fetched.Actors
	movie.Genres = fetched.Genres
	movie.ReleaseYear = fetched.ReleaseYear
	movie.Runtime = fetched.Runtime
	movie.PosterURL = fetched.PosterURL
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func intValue(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
