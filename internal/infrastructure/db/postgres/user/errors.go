package user

import "errors"

var ErrUsernameAlreadyExists = errors.New("username already exists")
