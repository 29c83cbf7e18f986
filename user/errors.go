package user

import (
	"fmt"
	"net/http"

	"github.com/praksis-io/backend/srvcerror"
)

const ErrCodeUsernameTooShort = "username_too_short"

func newErrUsernameTooShort(minLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUsernameTooShort,
		fmt.Sprintf("username must be at least %d characters long", minLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeUsernameTooLong = "username_too_long"

func newErrUsernameTooLong() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUsernameTooLong,
		"username is too long",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeUsernameAlreadyExists = "username_exists"

func newErrUsernameExists() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUsernameAlreadyExists,
		"username already exists",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeEmailAlreadyExists = "email_exists"

func newErrEmailExists() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailAlreadyExists,
		"email already exists",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeEmailTooLong = "email_too_long"

func newErrEmailTooLong() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailTooLong,
		"email is too long",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEmailEmpty = "email_empty"

func newErrEmailEmpty() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailEmpty,
		"email must not be empty",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEmailInvalid = "email_invalid"

func newErrEmailInvalid() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailInvalid,
		"email is invalid",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodePasswordTooShort = "password_too_short"

func newErrPasswordTooShort(minLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodePasswordTooShort,
		fmt.Sprintf("password must be at least %d characters long", minLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodePasswordTooLong = "password_too_long"

func newErrPasswordTooLong() *srvcerror.Error {
	return srvcerror.New(
		ErrCodePasswordTooLong,
		"password is too long",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeFirstnameTooLong = "firstname_too_long"

func newErrFirstnameTooLong(maxLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeFirstnameTooLong,
		fmt.Sprintf("first name must be at most %d characters long", maxLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeLastnameTooLong = "lastname_too_long"

func newErrLastnameTooLong(maxLength int) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeLastnameTooLong,
		fmt.Sprintf("last name must be at most %d characters long", maxLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeUserNotFound = "user_not_found"

func ErrUserNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUserNotFound,
		"user not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeInvalidCredentials = "invalid_credentials"

func newErrInvalidCredentials() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidCredentials,
		"username or password is incorrect",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

func newErrInternalSE() *srvcerror.Error {
	return srvcerror.ErrInternalSE()
}
