package curriculum

import (
	"path"
	"strings"
)

// extToLanguage maps a submitted file's extension to a language identifier.
// Only extensions listed here can ever resolve; adding a language means
// adding its extension and registering its track.
var extToLanguage = map[string]string{
	"rb": "ruby",
	"py": "python",
	"ml": "ocaml",
	"go": "go",
	"js": "javascript",
}

// Curriculum is the process-wide track registry. It is populated once at
// startup (tests register fixture tracks) and then only read.
type Curriculum struct {
	tracks map[string]Track
}

func New() *Curriculum {
	return &Curriculum{
		tracks: make(map[string]Track),
	}
}

func (c *Curriculum) Add(track Track) {
	c.tracks[track.Language()] = track
}

func (c *Curriculum) Tracks() []Track {
	tracks := make([]Track, 0, len(c.tracks))
	for _, t := range c.tracks {
		tracks = append(tracks, t)
	}
	return tracks
}

// Resolve maps a submitted file path like "two/two.rb" to an Exercise. The
// extension picks the language, the containing directory picks the slug.
// Unknown extensions, unregistered languages and slugs missing from the
// track all fail; a submission is never silently filed under a default.
func (c *Curriculum) Resolve(p string) (Exercise, error) {
	base := path.Base(p)
	ext := strings.TrimPrefix(path.Ext(base), ".")
	if ext == "" || ext == base {
		return Exercise{}, ErrMalformedPath(p)
	}

	language, ok := extToLanguage[ext]
	if !ok {
		return Exercise{}, ErrUnknownExtension(ext)
	}

	track, ok := c.tracks[language]
	if !ok {
		return Exercise{}, ErrLanguageNotRegistered(language)
	}

	slug := path.Base(path.Dir(p))
	if slug == "." || slug == "/" {
		// bare filename, fall back to the file stem
		slug = strings.TrimSuffix(base, "."+ext)
	}
	if slug == "" {
		return Exercise{}, ErrMalformedPath(p)
	}

	for _, s := range track.Slugs() {
		if s == slug {
			return Exercise{Language: language, Slug: slug}, nil
		}
	}

	return Exercise{}, ErrExerciseNotInCurriculum(language, slug)
}
