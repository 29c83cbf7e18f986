package team

import (
	"fmt"
	"net/http"

	"github.com/praksis-io/backend/srvcerror"
)

const ErrCodeTeamSlugExists = "team_slug_exists"

func newErrTeamSlugExists() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTeamSlugExists,
		"A team with this slug already exists",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeTeamSlugInvalid = "team_slug_invalid"

func newErrTeamSlugInvalid() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTeamSlugInvalid,
		"Team slug must be between 2 and 64 characters",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeTeamNotFound = "team_not_found"

func ErrTeamNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTeamNotFound,
		"Team not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeAlreadyMember = "already_team_member"

func newErrAlreadyMember(slug string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAlreadyMember,
		fmt.Sprintf("User is already a member of team %s", slug),
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeInternalServer = "internal_server_error"

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInternalServer,
		"Internal server error",
	).SetHttpStatusCode(http.StatusInternalServerError)
}
