package curriculum

import (
	"fmt"
	"net/http"

	"github.com/praksis-io/backend/srvcerror"
)

const ErrCodeMalformedPath = "malformed_submission_path"

func ErrMalformedPath(path string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeMalformedPath,
		fmt.Sprintf("cannot parse submission path %q", path),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeUnknownExtension = "unknown_file_extension"

func ErrUnknownExtension(ext string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnknownExtension,
		fmt.Sprintf("no language is registered for the %q file extension", ext),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeLanguageNotRegistered = "language_not_registered"

func ErrLanguageNotRegistered(language string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeLanguageNotRegistered,
		fmt.Sprintf("the %s curriculum is not registered", language),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeExerciseNotInCurriculum = "exercise_not_in_curriculum"

func ErrExerciseNotInCurriculum(language, slug string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeExerciseNotInCurriculum,
		fmt.Sprintf("the %s curriculum has no %q exercise", language, slug),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeTrackFileUnreadable = "track_file_unreadable"

func ErrTrackFileUnreadable() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTrackFileUnreadable,
		"cannot read track definition file",
	)
}

const ErrCodeTrackFileInvalid = "track_file_invalid"

func ErrTrackFileInvalid(reason string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTrackFileInvalid,
		fmt.Sprintf("invalid track definition: %s", reason),
	)
}
