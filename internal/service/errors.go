package service

import "errors"

var (
	ErrLibraryNotFound      = errors.New("library not found")
	ErrAmbiguousLibrary     = errors.New("more than one library with this name")
	ErrNoImportDir          = errors.New("no user import directory defined")
	ErrUserNotFound         = errors.New("user not found")
	ErrAmbiguousUser        = errors.New("more than one user with this name")
	ErrMalformedRequest     = errors.New("misformatted quota request")
	ErrNoCondaPrefix        = errors.New("need a conda prefix if no conda environment is in use")
	ErrMissingPanelSection  = errors.New("missing tool panel section")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrInvalidToolFilter    = errors.New("invalid tool filter")
	ErrMissingEncryptionKey = errors.New("vault config has no encryption_keys")
)
