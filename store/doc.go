// SPDX-License-Identifier: EPL-2.0

// Package store persists track analyses in a SQLite database.
//
// Analyzing a track is expensive, so the engine caches results in
// memory for the lifetime of the process.  The store makes analyses
// survive restarts: save them after analysis, load them on startup.
//
//	st, err := store.Open("library.db")
//	if err != nil {
//	    // Handle error
//	}
//	defer st.Close()
//
//	st.Save("track-a", ta)
//	ta, err := st.Load("track-a")
//
// Load returns ErrNotFound for tracks that were never saved.  The
// database schema is created automatically on Open.
//
// The store uses modernc.org/sqlite, a pure-Go SQLite driver, so no
// cgo is required.
package store
