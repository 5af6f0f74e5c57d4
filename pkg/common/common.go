package common

// Show represents a TV show that writers are credited on. Shows are loaded
// once from an ingestion snapshot and treated as immutable values; IDs are
// unique within a snapshot.
type Show struct {
	ID        int    `json:"id"`
	IMDBID    string `json:"imdb_id"`
	Title     string `json:"title"`
	YearStart *int   `json:"year_start,omitempty"`
	YearEnd   *int   `json:"year_end,omitempty"`
}

// Writer represents a person credited on one or more shows. ImageURL, Bio
// and ShowCount are optional details supplied by ingestion; ShowCount is a
// precomputed value carried through unchanged, never recomputed here.
type Writer struct {
	ID        int    `json:"id"`
	IMDBID    string `json:"imdb_id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url,omitempty"`
	Bio       string `json:"bio,omitempty"`
	ShowCount int    `json:"show_count,omitempty"`
}

// Credit links one writer to one show, with an optional role label
// (e.g. "creator", "written by") and episode count.
//
// Duplicate credits for the same (show, writer) pair are legal. Each one
// counts as its own bipartite edge, but duplicates never inflate the
// unique-show or unique-writer counts used by overlap computations.
type Credit struct {
	ShowID       int    `json:"show_id"`
	WriterID     int    `json:"writer_id"`
	Role         string `json:"role,omitempty"`
	EpisodeCount int    `json:"episode_count,omitempty"`
}

// EnrichedShow is a show plus the writers its credits resolve to, in credit
// supply order. The embedded Show is the original value, unchanged.
type EnrichedShow struct {
	Show
	Writers []Writer `json:"writers"`
}

// EnrichedWriter is a writer plus the shows their credits resolve to, in
// credit supply order. The embedded Writer is the original value, unchanged.
type EnrichedWriter struct {
	Writer
	Shows []Show `json:"shows"`
}
