package curriculum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praksis-io/backend/curriculum"
	"github.com/praksis-io/backend/srvcerror"
)

func newFixtureCurriculum() *curriculum.Curriculum {
	c := curriculum.New()
	c.Add(curriculum.NewStaticTrack("ruby", []string{"one", "two"}))
	c.Add(curriculum.NewStaticTrack("python", []string{"one", "two"}))
	return c
}

func TestResolvePathToExercise(t *testing.T) {
	c := newFixtureCurriculum()

	ex, err := c.Resolve("two/two.rb")
	require.NoError(t, err)
	assert.Equal(t, "ruby", ex.Language)
	assert.Equal(t, "two", ex.Slug)

	ex, err = c.Resolve("one/one.py")
	require.NoError(t, err)
	assert.Equal(t, "python", ex.Language)
	assert.Equal(t, "one", ex.Slug)
}

func TestResolveBareFilenameUsesStem(t *testing.T) {
	c := newFixtureCurriculum()

	ex, err := c.Resolve("two.rb")
	require.NoError(t, err)
	assert.Equal(t, curriculum.Exercise{Language: "ruby", Slug: "two"}, ex)
}

func TestResolveFailsOnUnknownExtension(t *testing.T) {
	c := newFixtureCurriculum()

	_, err := c.Resolve("two/two.xyz")
	require.Error(t, err)
	assertErrCode(t, err, curriculum.ErrCodeUnknownExtension)
}

func TestResolveFailsOnUnregisteredLanguage(t *testing.T) {
	c := newFixtureCurriculum()

	// ml maps to ocaml but no ocaml track was added
	_, err := c.Resolve("two/two.ml")
	require.Error(t, err)
	assertErrCode(t, err, curriculum.ErrCodeLanguageNotRegistered)
}

func TestResolveFailsOnSlugOutsideCurriculum(t *testing.T) {
	c := newFixtureCurriculum()

	_, err := c.Resolve("three/three.rb")
	require.Error(t, err)
	assertErrCode(t, err, curriculum.ErrCodeExerciseNotInCurriculum)
}

func TestResolveFailsOnPathWithoutExtension(t *testing.T) {
	c := newFixtureCurriculum()

	_, err := c.Resolve("two/two")
	require.Error(t, err)
	assertErrCode(t, err, curriculum.ErrCodeMalformedPath)
}

func TestBuiltinTracksResolve(t *testing.T) {
	c := curriculum.New()
	c.Add(curriculum.RubyTrack())
	c.Add(curriculum.OcamlTrack())

	ex, err := c.Resolve("zipper/zipper.ml")
	require.NoError(t, err)
	assert.Equal(t, curriculum.Exercise{Language: "ocaml", Slug: "zipper"}, ex)

	ex, err = c.Resolve("bob/bob.rb")
	require.NoError(t, err)
	assert.Equal(t, curriculum.Exercise{Language: "ruby", Slug: "bob"}, ex)
}

func TestLoadTrackTOML(t *testing.T) {
	track, err := curriculum.LoadTrackTOML("testdata/ruby-track.toml")
	require.NoError(t, err)

	assert.Equal(t, "ruby", track.Language())
	assert.Equal(t, []string{"one", "two", "bob"}, track.Slugs())
}

func TestLoadTrackTOMLMissingFile(t *testing.T) {
	_, err := curriculum.LoadTrackTOML("testdata/does-not-exist.toml")
	require.Error(t, err)
	assertErrCode(t, err, curriculum.ErrCodeTrackFileUnreadable)
}

func assertErrCode(t *testing.T, err error, code string) {
	t.Helper()
	srvcErr, ok := err.(*srvcerror.Error)
	require.True(t, ok, "expected *srvcerror.Error, got %T", err)
	assert.Equal(t, code, srvcErr.ErrorCode())
}
