package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/praksis-io/backend/curriculum"
)

// loadTracksFromDir registers every .toml track file found in dir. Files for
// a language already registered replace the builtin track.
func loadTracksFromDir(curric *curriculum.Curriculum, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read tracks dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		track, err := curriculum.LoadTrackTOML(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		curric.Add(track)
	}
	return nil
}
