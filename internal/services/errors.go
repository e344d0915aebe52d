package services

import "errors"

// Validation failures during user creation. Checked in this order: taken
// username, short password, mismatched confirmation; the first failing check
// determines the reported error. All map to a 400 at the HTTP layer, as
// opposed to repositories.ErrNotFound which maps to a 404.
var (
	ErrUsernameTaken    = errors.New("username is already taken")
	ErrPasswordTooShort = errors.New("password must be at least 7 characters")
	ErrPasswordMismatch = errors.New("password and confirmation do not match")
)

// ErrInvalidCredentials is returned on login when the user does not exist or
// the password does not match. Deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")
