package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/galaxy-admin/internal/adapter"
	"github.com/MKhiriev/galaxy-admin/internal/logger"
	"github.com/MKhiriev/galaxy-admin/internal/store"
	"github.com/MKhiriev/galaxy-admin/models"
)

// UserFolderOptions controls [UserFolderService].
type UserFolderOptions struct {
	// Delete really deletes; otherwise candidates are only reported.
	Delete bool

	// AllUsers considers the folders of present users too.
	AllUsers bool
}

type userFolderService struct {
	libraries adapter.LibraryAPI
	users     adapter.UserAPI
	recorder  store.Recorder
	opts      UserFolderOptions
	logger    *logger.Logger
}

// NewUserFolderService constructs a [UserFolderService].
func NewUserFolderService(libraries adapter.LibraryAPI, users adapter.UserAPI, recorder store.Recorder,
	opts UserFolderOptions, log *logger.Logger) UserFolderService {
	return &userFolderService{libraries: libraries, users: users, recorder: recorder, opts: opts, logger: log}
}

// Prune implements [UserFolderService]. Only the direct sub-folders of the
// user library root are considered; a folder belongs to a departed user
// when its name is no current username.
func (s *userFolderService) Prune(ctx context.Context) (int, error) {
	users, err := s.users.GetUsers(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("list users: %w", err)
	}
	present := usernames(users)

	library, err := findSingleLibrary(ctx, s.libraries, UserLibraryName)
	if err != nil {
		return 0, err
	}

	contents, err := s.libraries.GetFolderContents(ctx, library.RootFolderID, false)
	if err != nil {
		return 0, fmt.Errorf("list %s root folder: %w", library.Name, err)
	}
	path := contents.Metadata.Path()

	trail := beginAudit(ctx, s.recorder, "libraries left-users", !s.opts.Delete, s.logger)
	defer trail.finish(ctx)

	var cnt int
	for _, entry := range contents.Entries {
		if !entry.IsFolder() {
			s.logger.Error().Str("path", path).Str("id", entry.ID).Msgf("Unknown content type: %s", entry.Type)
			continue
		}

		if _, ok := present[entry.Name]; ok && !s.opts.AllUsers {
			s.logger.Debug().Msgf("Skip %s", entry.Name)
			continue
		}
		s.logger.Info().Msgf("Consider %s", entry.Name)
		cnt++

		if s.opts.Delete {
			if err = s.libraries.DeleteFolder(ctx, entry.ID); err != nil {
				return cnt, fmt.Errorf("delete folder %s: %w", entry.Name, err)
			}
			s.logger.Info().Msgf("Deleted folder '%s' in %s", entry.Name, path)
		} else {
			s.logger.Info().Msgf("Could delete folder '%s' in %s", entry.Name, path)
		}

		trail.record(ctx, models.Action{
			Kind:     models.ActionUserFolder,
			TargetID: entry.ID,
			Name:     entry.Name,
			Detail:   path,
			Applied:  s.opts.Delete,
		})
	}

	if s.opts.Delete {
		if cnt > 0 {
			s.logger.Warn().Msgf("Deleted %d user folders", cnt)
		}
	} else {
		s.logger.Info().Msgf("Could delete %d user folders", cnt)
	}

	return cnt, nil
}
