// Package repo reads booth records from their backing store.
// The only store is a CSV file that is reopened on every call, so the
// repo holds no state beyond the path.
package repo

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/domain"
)

// Column names expected in the header row of the source table.
const (
	colBooth       = "booth"
	colFandoms     = "fandoms"
	colFacebookURL = "facebook_url"
	colZone        = "zone"
)

var requiredColumns = []string{colBooth, colFandoms, colFacebookURL, colZone}

// BoothRepo defines the read operations for booth records.
type BoothRepo interface {
	// List returns every booth in source order.
	// Returns domain.ErrSourceRead if the source cannot be read or parsed.
	List(ctx context.Context) ([]domain.Booth, error)
}

// csvBoothRepo is the CSV-file implementation of BoothRepo.
type csvBoothRepo struct {
	path string
}

// NewBoothRepo constructs a BoothRepo backed by the CSV file at path.
// The file is not opened until List is called.
func NewBoothRepo(path string) BoothRepo {
	return &csvBoothRepo{path: path}
}

// List opens the source file and parses it in full.
func (r *csvBoothRepo) List(ctx context.Context) ([]domain.Booth, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("repo.BoothRepo.List: %w: %w", domain.ErrSourceRead, err)
	}
	defer f.Close()

	booths, err := ReadBooths(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("repo.BoothRepo.List: %w", err)
	}
	return booths, nil
}

// ReadBooths parses a CSV stream with a header row into booths.
// Columns are matched by header name; extra columns are ignored.
// Cells other than fandoms are kept byte for byte, surrounding spaces included.
// Any parse failure discards everything read so far.
func ReadBooths(ctx context.Context, src io.Reader) ([]domain.Booth, error) {
	cr := csv.NewReader(src)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header row", domain.ErrSourceRead)
		}
		return nil, fmt.Errorf("%w: header: %w", domain.ErrSourceRead, err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	booths := []domain.Booth{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrSourceRead, err)
		}
		booths = append(booths, domain.Booth{
			Booth:       record[idx[colBooth]],
			Fandoms:     SplitFandoms(record[idx[colFandoms]]),
			FacebookURL: record[idx[colFacebookURL]],
			Zone:        record[idx[colZone]],
		})
	}
	return booths, nil
}

// SplitFandoms splits a comma-separated fandoms cell into trimmed entries.
// Empty entries (e.g. from a trailing comma or a blank cell) are dropped, so
// "A,,B" yields two fandoms rather than an empty tag between them. A plain
// split-and-trim of the source column would keep the "".
func SplitFandoms(cell string) []string {
	out := []string{}
	for _, part := range strings.Split(cell, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// columnIndex maps each required column name to its position in header.
func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns: %s", domain.ErrSourceRead, strings.Join(missing, ", "))
	}
	return idx, nil
}
