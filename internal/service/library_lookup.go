package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/galaxy-admin/internal/adapter"
	"github.com/MKhiriev/galaxy-admin/models"
)

// UserLibraryName is the library holding one import folder per user.
const UserLibraryName = "user_data"

// findLibraries returns the non-deleted libraries called name.
func findLibraries(ctx context.Context, api adapter.LibraryAPI, name string) ([]models.Library, error) {
	libraries, err := api.GetLibraries(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list libraries: %w", err)
	}

	var out []models.Library
	for _, l := range libraries {
		if l.Name == name {
			out = append(out, l)
		}
	}
	return out, nil
}

// findSingleLibrary returns the library called name. It fails with
// [ErrLibraryNotFound] or [ErrAmbiguousLibrary] unless exactly one exists.
func findSingleLibrary(ctx context.Context, api adapter.LibraryAPI, name string) (models.Library, error) {
	libraries, err := findLibraries(ctx, api, name)
	if err != nil {
		return models.Library{}, err
	}

	switch len(libraries) {
	case 0:
		return models.Library{}, fmt.Errorf("%w: %s", ErrLibraryNotFound, name)
	case 1:
		return libraries[0], nil
	default:
		return models.Library{}, fmt.Errorf("%w: %s", ErrAmbiguousLibrary, name)
	}
}

// usernames returns the set of usernames of all users.
func usernames(users []models.User) map[string]struct{} {
	set := make(map[string]struct{}, len(users))
	for _, u := range users {
		set[u.Username] = struct{}{}
	}
	return set
}
