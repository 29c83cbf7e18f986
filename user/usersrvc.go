package user

import (
	"context"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/praksis-io/backend/curriculum"
	"github.com/praksis-io/backend/srvcerror"
)

type UserSrvc struct {
	repo UserRepo
}

func NewUserService(repo UserRepo) *UserSrvc {
	return &UserSrvc{repo: repo}
}

func (s *UserSrvc) CreateUser(ctx context.Context, p CreateUserParams) (*User, error) {
	// Validate all fields
	if err := validateUsername(p.Username); err != nil {
		return nil, err
	}
	if err := validateEmail(p.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(p.Password); err != nil {
		return nil, err
	}
	if p.Firstname != nil {
		if err := validateFirstname(*p.Firstname); err != nil {
			return nil, err
		}
	}
	if p.Lastname != nil {
		if err := validateLastname(*p.Lastname); err != nil {
			return nil, err
		}
	}

	all, err := s.repo.SelectAll(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	for _, row := range all {
		// username must be unique
		if row.Username == p.Username {
			return nil, newErrUsernameExists()
		}
		// email must be unique
		if row.Email == p.Email {
			return nil, newErrEmailExists()
		}
	}

	bcryptPwd, err := bcrypt.GenerateFromPassword(
		[]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	firstname := ""
	if p.Firstname != nil {
		firstname = *p.Firstname
	}

	lastname := ""
	if p.Lastname != nil {
		lastname = *p.Lastname
	}

	row := UserRow{
		UUID:      uuid.New(),
		Firstname: firstname,
		Lastname:  lastname,
		Username:  p.Username,
		Email:     p.Email,
		BcryptPwd: string(bcryptPwd),
		Completed: map[string][]string{},
		WorkingOn: map[string]string{},
		CreatedAt: time.Now(),
	}

	err = s.repo.Insert(ctx, row)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	res := rowToUser(row)
	return &res, nil
}

func (s *UserSrvc) Login(ctx context.Context, username, password string) (*User, error) {
	row, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if srvcerror.IsCode(err, ErrCodeUserNotFound) {
			return nil, newErrInvalidCredentials()
		}
		return nil, newErrInternalSE().SetDebug(err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(row.BcryptPwd), []byte(password))
	if err != nil {
		return nil, newErrInvalidCredentials()
	}

	res := rowToUser(row)
	return &res, nil
}

func (s *UserSrvc) GetByUsername(ctx context.Context, username string) (*User, error) {
	row, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	res := rowToUser(row)
	return &res, nil
}

func (s *UserSrvc) GetByUUID(ctx context.Context, id uuid.UUID) (*User, error) {
	row, err := s.repo.GetByUUID(ctx, id)
	if err != nil {
		return nil, err
	}
	res := rowToUser(row)
	return &res, nil
}

func (s *UserSrvc) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.repo.SelectAll(ctx)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}
	users := make([]User, 0, len(rows))
	for _, row := range rows {
		users = append(users, rowToUser(row))
	}
	return users, nil
}

// MarkWorkingOn records the exercise as the user's current one for its
// language. The legacy completed record is deliberately left alone: a user
// re-attempting a finished exercise stays "completed" there while also
// being "working on" it.
func (s *UserSrvc) MarkWorkingOn(ctx context.Context, id uuid.UUID, language, slug string) error {
	return s.repo.SetWorkingOn(ctx, id, language, slug)
}

func (s *UserSrvc) IsWorkingOn(ctx context.Context, id uuid.UUID, ex curriculum.Exercise) (bool, error) {
	row, err := s.repo.GetByUUID(ctx, id)
	if err != nil {
		return false, err
	}
	return row.WorkingOn[ex.Language] == ex.Slug, nil
}

// MarkCompleted appends the slug to the legacy completed record. No-op when
// the slug is already listed.
func (s *UserSrvc) MarkCompleted(ctx context.Context, id uuid.UUID, language, slug string) error {
	row, err := s.repo.GetByUUID(ctx, id)
	if err != nil {
		return err
	}

	for _, existing := range row.Completed[language] {
		if existing == slug {
			return nil
		}
	}

	if row.Completed == nil {
		row.Completed = map[string][]string{}
	}
	row.Completed[language] = append(row.Completed[language], slug)

	return s.repo.SetCompleted(ctx, id, row.Completed)
}

func rowToUser(row UserRow) User {
	u := User{
		UUID:      row.UUID,
		Username:  row.Username,
		Email:     row.Email,
		Completed: row.Completed,
		WorkingOn: row.WorkingOn,
		CreatedAt: row.CreatedAt,
	}
	if row.Firstname != "" {
		u.Firstname = &row.Firstname
	}
	if row.Lastname != "" {
		u.Lastname = &row.Lastname
	}
	if u.Completed == nil {
		u.Completed = map[string][]string{}
	}
	if u.WorkingOn == nil {
		u.WorkingOn = map[string]string{}
	}
	return u
}

// Validation functions
func validateUsername(username string) error {
	const minUsernameLength = 2
	const maxUsernameLength = 32
	if len(username) < minUsernameLength {
		return newErrUsernameTooShort(minUsernameLength)
	}
	if len(username) > maxUsernameLength {
		return newErrUsernameTooLong()
	}
	return nil
}

func validateEmail(email string) error {
	const maxEmailLength = 320
	if len(email) > maxEmailLength {
		return newErrEmailTooLong()
	}

	if len(email) == 0 {
		return newErrEmailEmpty()
	}

	_, err := mail.ParseAddress(email)
	if err != nil {
		return newErrEmailInvalid()
	}

	return nil
}

func validatePassword(password string) error {
	const minPasswordLength = 8
	if len(password) < minPasswordLength {
		return newErrPasswordTooShort(minPasswordLength)
	}
	if len(password) > 1024 {
		return newErrPasswordTooLong()
	}
	return nil
}

func validateFirstname(firstname string) error {
	const maxFirstnameLength = 35
	if len(firstname) > maxFirstnameLength {
		return newErrFirstnameTooLong(maxFirstnameLength)
	}
	return nil
}

func validateLastname(lastname string) error {
	const maxLastnameLength = 35
	if len(lastname) > maxLastnameLength {
		return newErrLastnameTooLong(maxLastnameLength)
	}
	return nil
}
