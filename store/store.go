// SPDX-License-Identifier: EPL-2.0

package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/stemstation/crossmix/analysis"
)

const schema = `
CREATE TABLE IF NOT EXISTS track_analysis (
	track_id          TEXT PRIMARY KEY,
	has_intro         BOOLEAN NOT NULL,
	has_outro         BOOLEAN NOT NULL,
	intro_end         REAL NOT NULL,
	outro_start       REAL NOT NULL,
	silence_start     REAL NOT NULL,
	silence_end       REAL NOT NULL,
	average_rms       REAL NOT NULL,
	peak_level        REAL NOT NULL,
	spectral_centroid REAL NOT NULL,
	tempo             REAL NOT NULL,
	key               TEXT NOT NULL,
	energy            REAL NOT NULL
);
`

// Store persists track analyses in a SQLite database.  All methods are
// safe for concurrent use; database/sql serializes access to the
// underlying connection pool.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the analysis database at path.
// Use ":memory:" for an in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening analysis database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating analysis table: %w", err)
	}

	return &Store{db: db}, nil
}

// Save stores the analysis for trackID, replacing any previous row.
func (s *Store) Save(trackID string, ta analysis.TrackAnalysis) error {
	if trackID == "" {
		return ErrEmptyTrackID
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO track_analysis (
			track_id, has_intro, has_outro, intro_end, outro_start,
			silence_start, silence_end, average_rms, peak_level,
			spectral_centroid, tempo, key, energy
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		trackID, ta.HasIntro, ta.HasOutro, ta.IntroEnd, ta.OutroStart,
		ta.SilenceStart, ta.SilenceEnd, ta.AverageRMS, ta.PeakLevel,
		ta.SpectralCentroid, ta.Tempo, ta.Key, ta.Energy)
	if err != nil {
		return fmt.Errorf("saving analysis for %q: %w", trackID, err)
	}

	return nil
}

// Load returns the stored analysis for trackID, or ErrNotFound.
func (s *Store) Load(trackID string) (analysis.TrackAnalysis, error) {
	var ta analysis.TrackAnalysis

	err := s.db.QueryRow(`
		SELECT has_intro, has_outro, intro_end, outro_start,
			silence_start, silence_end, average_rms, peak_level,
			spectral_centroid, tempo, key, energy
		FROM track_analysis WHERE track_id = ?`, trackID).
		Scan(&ta.HasIntro, &ta.HasOutro, &ta.IntroEnd, &ta.OutroStart,
			&ta.SilenceStart, &ta.SilenceEnd, &ta.AverageRMS, &ta.PeakLevel,
			&ta.SpectralCentroid, &ta.Tempo, &ta.Key, &ta.Energy)
	if err == sql.ErrNoRows {
		return analysis.TrackAnalysis{}, ErrNotFound
	}
	if err != nil {
		return analysis.TrackAnalysis{}, fmt.Errorf("loading analysis for %q: %w", trackID, err)
	}

	return ta, nil
}

// Delete removes the stored analysis for trackID.  Deleting a track
// that was never stored is not an error.
func (s *Store) Delete(trackID string) error {
	if _, err := s.db.Exec(`DELETE FROM track_analysis WHERE track_id = ?`, trackID); err != nil {
		return fmt.Errorf("deleting analysis for %q: %w", trackID, err)
	}
	return nil
}

// TrackIDs returns the IDs of all stored analyses, sorted.
func (s *Store) TrackIDs() ([]string, error) {
	rows, err := s.db.Query(`SELECT track_id FROM track_analysis ORDER BY track_id`)
	if err != nil {
		return nil, fmt.Errorf("listing analyses: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("listing analyses: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing analyses: %w", err)
	}

	return ids, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
