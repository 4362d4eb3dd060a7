package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden will throw if the acting user does not own the resource
	ErrForbidden = errors.New("you are not allowed to access this resource")
	// ErrTitleTooLong will throw if a thread title exceeds TitleMaxLen
	ErrTitleTooLong = errors.New("title must not exceed 150 characters")
	// ErrUnauthorized will throw if the request carries no valid credentials
	ErrUnauthorized = errors.New("missing or invalid credentials")
)
