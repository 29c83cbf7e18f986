package subm

import (
	"fmt"
	"net/http"

	"github.com/praksis-io/backend/srvcerror"
)

const ErrCodeSubmissionTooLong = "submission_too_long"

func newErrSubmissionTooLong(maxKilobytes int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionTooLong,
		fmt.Sprintf("submission must be at most %d KB", maxKilobytes),
	).SetHttpStatusCode(http.StatusRequestEntityTooLarge)
}

const ErrCodeSubmissionNotFound = "submission_not_found"

func ErrSubmissionNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionNotFound,
		"submission not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeInvalidStateTransition = "invalid_state_transition"

func newErrInvalidStateTransition(from, to State) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidStateTransition,
		fmt.Sprintf("cannot transition a %s submission to %s", from, to),
	).SetHttpStatusCode(http.StatusConflict)
}
