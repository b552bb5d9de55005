package config

import "errors"

var (
	ErrTimeoutTooLow     = errors.New("timeout is too low")
	ErrDataPathNotValid  = errors.New("data path is not valid")
	ErrURLNotValid       = errors.New("URL is not valid")
	ErrThemeNotValid     = errors.New("theme is not valid")
	ErrSecretTooShort    = errors.New("secret is too short")
	ErrRootURLNotValid   = errors.New("root URL is not valid")
	ErrLogCallerNotValid = errors.New("log caller is not valid")
	ErrLogLevelUnknown   = errors.New("log level is unknown")
)
