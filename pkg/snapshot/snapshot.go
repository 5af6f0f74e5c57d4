// Package snapshot ingests the combined JSON payload the scraper API serves
// (shows, writers, links) and hands the core already-validated value
// collections. Transport field naming and validation live here; the core
// packages assume well-typed input.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"writergraph/pkg/common"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type showRow struct {
	ID        int    `json:"id" validate:"required"`
	IMDBID    string `json:"imdb_id" validate:"required"`
	Title     string `json:"title" validate:"required"`
	YearStart *int   `json:"year_start"`
	YearEnd   *int   `json:"year_end"`
}

type writerRow struct {
	ID        int    `json:"id" validate:"required"`
	IMDBID    string `json:"imdb_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	ImageURL  string `json:"image_url"`
	Bio       string `json:"bio"`
	ShowCount int    `json:"show_count"`
}

type creditRow struct {
	ShowID       int    `json:"show_id" validate:"required"`
	WriterID     int    `json:"writer_id" validate:"required"`
	Role         string `json:"role"`
	EpisodeCount int    `json:"episode_count"`
}

type payload struct {
	Shows   []showRow   `json:"shows" validate:"unique=ID,dive"`
	Writers []writerRow `json:"writers" validate:"unique=ID,dive"`
	Links   []creditRow `json:"links" validate:"dive"`
}

// Snapshot is one immutable ingest of the three flat tables. Dangling links
// are legal here; the enrichment stage drops them.
type Snapshot struct {
	Shows   []common.Show
	Writers []common.Writer
	Credits []common.Credit
}

// Decode reads a snapshot payload, validates identity fields and id
// uniqueness, and returns the typed collections. This is the only
// error-returning boundary; downstream computations are total.
func Decode(r io.Reader) (*Snapshot, error) {
	var p payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if err := validate.Struct(&p); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	snap := &Snapshot{
		Shows:   make([]common.Show, 0, len(p.Shows)),
		Writers: make([]common.Writer, 0, len(p.Writers)),
		Credits: make([]common.Credit, 0, len(p.Links)),
	}
	for _, row := range p.Shows {
		snap.Shows = append(snap.Shows, common.Show{
			ID:        row.ID,
			IMDBID:    row.IMDBID,
			Title:     row.Title,
			YearStart: row.YearStart,
			YearEnd:   row.YearEnd,
		})
	}
	for _, row := range p.Writers {
		snap.Writers = append(snap.Writers, common.Writer{
			ID:        row.ID,
			IMDBID:    row.IMDBID,
			Name:      row.Name,
			ImageURL:  row.ImageURL,
			Bio:       row.Bio,
			ShowCount: row.ShowCount,
		})
	}
	for _, row := range p.Links {
		snap.Credits = append(snap.Credits, common.Credit{
			ShowID:       row.ShowID,
			WriterID:     row.WriterID,
			Role:         row.Role,
			EpisodeCount: row.EpisodeCount,
		})
	}
	return snap, nil
}
