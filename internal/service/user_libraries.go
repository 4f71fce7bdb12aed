package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/galaxy-admin/internal/adapter"
	"github.com/MKhiriev/galaxy-admin/internal/logger"
	"github.com/MKhiriev/galaxy-admin/internal/store"
	"github.com/MKhiriev/galaxy-admin/models"
)

// ProvisionOptions controls [ProvisionService].
type ProvisionOptions struct {
	// Apply performs the changes; otherwise they are only logged.
	Apply bool

	// ServiceAccount is the system account Galaxy runs as. It is granted
	// access to every import directory.
	ServiceAccount string

	// ServiceGroup is the group import directories are chowned to.
	ServiceGroup string

	// ChownScript is run through sudo on existing import directories.
	ChownScript string

	// MountPrefix is stripped from import directories, which are reachable
	// below a different mount point on the host running the command.
	MountPrefix string

	// SkipPrefixes and SkipUsers exclude accounts by username.
	SkipPrefixes []string
	SkipUsers    []string

	// RetentionDays is the age after which files are removed from
	// existing import directories.
	RetentionDays int
}

// Provisioning defaults.
const (
	DefaultServiceAccount = "songalax"
	DefaultServiceGroup   = "eve_galaxy"
	DefaultChownScript    = "/global/apps/galaxy/scripts/external_chown_script.py"
	DefaultMountPrefix    = "/gpfs"
	DefaultRetentionDays  = 60
)

type provisionService struct {
	libraries adapter.LibraryAPI
	users     adapter.UserAPI
	instance  adapter.InstanceAPI
	directory Directory
	runner    CommandRunner
	recorder  store.Recorder
	opts      ProvisionOptions
	logger    *logger.Logger
}

// NewProvisionService constructs a [ProvisionService].
func NewProvisionService(libraries adapter.LibraryAPI, users adapter.UserAPI, instance adapter.InstanceAPI,
	directory Directory, runner CommandRunner, recorder store.Recorder, opts ProvisionOptions, log *logger.Logger) ProvisionService {
	return &provisionService{
		libraries: libraries,
		users:     users,
		instance:  instance,
		directory: directory,
		runner:    runner,
		recorder:  recorder,
		opts:      opts,
		logger:    log,
	}
}

// Provision implements [ProvisionService].
func (s *provisionService) Provision(ctx context.Context) error {
	cfg, err := s.instance.GetConfig(ctx)
	if err != nil {
		return fmt.Errorf("get configuration: %w", err)
	}
	if cfg.UserLibraryImportDir == "" {
		return ErrNoImportDir
	}

	audit := beginAudit(ctx, s.recorder, "libraries provision", !s.opts.Apply, s.logger)
	defer audit.finish(ctx)

	library, err := s.ensureLibrary(ctx)
	if err != nil {
		return err
	}

	roles, err := s.users.GetRoles(ctx)
	if err != nil {
		return fmt.Errorf("list roles: %w", err)
	}
	roleByName := make(map[string]string, len(roles))
	for _, r := range roles {
		roleByName[r.Name] = r.ID
	}

	users, err := s.users.GetUsers(ctx, "")
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	for _, user := range users {
		if err = ctx.Err(); err != nil {
			return err
		}

		account, ok, err := s.directory.Lookup(ctx, user.Username)
		if err != nil {
			return fmt.Errorf("directory lookup of %s: %w", user.Username, err)
		}
		if !ok || account.CN == "" {
			s.logger.Error().Msgf("User %s absent in LDAP", user.Username)
			continue
		}
		if s.skipped(user.Username) {
			continue
		}

		if err = s.ensureImportDir(ctx, cfg.UserLibraryImportDir, user); err != nil {
			return err
		}

		folder, created, err := s.ensureFolder(ctx, library, user.Username, account.CN)
		if err != nil {
			return err
		}
		if created {
			audit.record(ctx, models.Action{
				Kind:     models.ActionImportFolder,
				TargetID: folder.ID,
				Name:     user.Username,
				Detail:   s.importDir(cfg.UserLibraryImportDir, user),
				Applied:  s.opts.Apply,
			})
		}

		roleID, ok := roleByName[user.Email]
		if !ok {
			s.logger.Error().Msgf("No private role for %s", user.Email)
			continue
		}
		if !s.opts.Apply || folder.ID == "" {
			s.logger.Info().Msgf("Would grant %s access to folder /%s", user.Email, user.Username)
			continue
		}
		perms := adapter.FolderPermissions{
			AddIDs:    []string{roleID},
			ManageIDs: []string{roleID},
			ModifyIDs: []string{roleID},
		}
		if err = s.libraries.SetFolderPermissions(ctx, folder.ID, perms); err != nil {
			return fmt.Errorf("set permissions of folder /%s: %w", user.Username, err)
		}
	}

	return nil
}

func (s *provisionService) skipped(username string) bool {
	for _, p := range s.opts.SkipPrefixes {
		if p != "" && strings.HasPrefix(username, p) {
			return true
		}
	}
	for _, u := range s.opts.SkipUsers {
		if username == u {
			return true
		}
	}
	return false
}

// ensureLibrary returns the user import library, creating it if missing.
func (s *provisionService) ensureLibrary(ctx context.Context) (models.Library, error) {
	libraries, err := findLibraries(ctx, s.libraries, UserLibraryName)
	if err != nil {
		return models.Library{}, err
	}

	switch len(libraries) {
	case 1:
		return libraries[0], nil
	case 0:
	default:
		return models.Library{}, fmt.Errorf("%w: %s", ErrAmbiguousLibrary, UserLibraryName)
	}

	if !s.opts.Apply {
		s.logger.Info().Msgf("Would create user import library %s", UserLibraryName)
		return models.Library{Name: UserLibraryName}, nil
	}

	library, err := s.libraries.CreateLibrary(ctx, models.Library{
		Name:        UserLibraryName,
		Description: "user libraries",
		Synopsis:    "User libraries for importing from User library import directory",
	})
	if err != nil {
		return models.Library{}, fmt.Errorf("create library %s: %w", UserLibraryName, err)
	}
	s.logger.Info().Msgf("Created user import library %s", UserLibraryName)
	return library, nil
}

// importDir returns the host path of the import directory of user.
func (s *provisionService) importDir(base string, user models.User) string {
	dir := filepath.Join(base, user.Email)
	if s.opts.MountPrefix != "" {
		if rest, ok := strings.CutPrefix(dir, s.opts.MountPrefix); ok && (rest == "" || rest[0] == '/') {
			dir = rest
		}
	}
	return dir
}

// ensureImportDir creates a missing import directory with ACLs for the
// service account and the user, or fixes ownership of an existing one and
// drops old files from it.
func (s *provisionService) ensureImportDir(ctx context.Context, base string, user models.User) error {
	dir := s.importDir(base, user)

	_, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if !s.opts.Apply {
			s.logger.Info().Msgf("Would create import directory %s", dir)
			return nil
		}
		if err = os.Mkdir(dir, 0o770); err != nil {
			return fmt.Errorf("create import directory: %w", err)
		}
		return s.run(ctx,
			[]string{"setfacl", "-R", "-m", "u:" + s.opts.ServiceAccount + ":rwX", "-m", "d:u:" + s.opts.ServiceAccount + ":rwX", dir},
			[]string{"setfacl", "-R", "-m", "u:" + user.Username + ":rwX", "-m", "d:u:" + user.Username + ":rwX", dir},
			[]string{"setfacl", "-R", "-m", "m::rwx", "-m", "d:m::rwx", dir},
		)
	case err != nil:
		return fmt.Errorf("stat import directory: %w", err)
	}

	if !s.opts.Apply {
		s.logger.Debug().Msgf("Would fix ownership and clean %s", dir)
		return nil
	}
	return s.run(ctx,
		[]string{"sudo", s.opts.ChownScript, dir, s.opts.ServiceAccount, s.opts.ServiceGroup},
		[]string{"find", dir, "-type", "f", "-mtime", "+" + strconv.Itoa(s.opts.RetentionDays), "-delete"},
	)
}

func (s *provisionService) run(ctx context.Context, commands ...[]string) error {
	for _, c := range commands {
		if err := s.runner.Run(ctx, c[0], c[1:]); err != nil {
			return fmt.Errorf("run %s: %w", strings.Join(c, " "), err)
		}
	}
	return nil
}

// ensureFolder returns the single library folder "/<username>", creating it
// if missing and deleting duplicates. created reports whether the folder was
// (or, in a dry run, would have been) created.
func (s *provisionService) ensureFolder(ctx context.Context, library models.Library, username, cn string) (folder models.FolderDetails, created bool, err error) {
	var folders []models.LibraryContent
	if library.ID != "" {
		contents, err := s.libraries.GetLibraryContents(ctx, library.ID)
		if err != nil {
			return models.FolderDetails{}, false, fmt.Errorf("list library %s: %w", library.Name, err)
		}
		for _, c := range contents {
			if c.Type == models.EntryTypeFolder && c.Name == "/"+username {
				folders = append(folders, c)
			}
		}
	}

	switch {
	case len(folders) == 0:
		if !s.opts.Apply {
			s.logger.Info().Msgf("Would create library folder for %s", username)
			return models.FolderDetails{}, true, nil
		}
		folder, err = s.libraries.CreateFolder(ctx, library.RootFolderID, username, cn)
		if err != nil {
			return models.FolderDetails{}, false, fmt.Errorf("create folder for %s: %w", username, err)
		}
		s.logger.Info().Msgf("Created new library folder for %s", username)
		return folder, true, nil

	case len(folders) > 1:
		s.logger.Error().Msgf("Found more than one library import folder for uname %s", username)
		if s.opts.Apply {
			for _, f := range folders[1:] {
				if err = s.libraries.DeleteFolder(ctx, f.ID); err != nil {
					return models.FolderDetails{}, false, fmt.Errorf("delete duplicate folder of %s: %w", username, err)
				}
			}
		}
	}

	return models.FolderDetails{ID: folders[0].ID, Name: username}, false, nil
}
