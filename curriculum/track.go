package curriculum

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Track is one language's ordered exercise list. The registry only ever
// reads from tracks; where the slugs come from (code, a TOML file, a test
// fixture) is the track's business.
type Track interface {
	Language() string
	Slugs() []string
}

type StaticTrack struct {
	language string
	slugs    []string
}

func NewStaticTrack(language string, slugs []string) *StaticTrack {
	return &StaticTrack{language: language, slugs: slugs}
}

func (t *StaticTrack) Language() string {
	return t.language
}

func (t *StaticTrack) Slugs() []string {
	return t.slugs
}

// LoadTrackTOML reads a track definition of the form:
//
//	language = "ruby"
//	slugs = ["one", "two"]
func LoadTrackTOML(path string) (*StaticTrack, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrTrackFileUnreadable().SetDebug(err)
	}

	tomlStruct := struct {
		Language string   `toml:"language"`
		Slugs    []string `toml:"slugs"`
	}{}

	err = toml.Unmarshal(content, &tomlStruct)
	if err != nil {
		return nil, ErrTrackFileUnreadable().SetDebug(err)
	}

	if tomlStruct.Language == "" {
		return nil, ErrTrackFileInvalid("missing language")
	}
	if len(tomlStruct.Slugs) == 0 {
		return nil, ErrTrackFileInvalid("empty slug list")
	}

	return NewStaticTrack(tomlStruct.Language, tomlStruct.Slugs), nil
}
