package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/galaxy-admin/internal/adapter"
	"github.com/MKhiriev/galaxy-admin/internal/logger"
	"github.com/MKhiriev/galaxy-admin/internal/store"
	"github.com/MKhiriev/galaxy-admin/models"
)

type userService struct {
	users    adapter.UserAPI
	recorder store.Recorder
	apply    bool
	logger   *logger.Logger
}

// NewUserService constructs a [UserService]. Without apply, Delete only
// resolves the user and logs what it would do.
func NewUserService(users adapter.UserAPI, recorder store.Recorder, apply bool, log *logger.Logger) UserService {
	return &userService{users: users, recorder: recorder, apply: apply, logger: log}
}

// Delete implements [UserService].
func (s *userService) Delete(ctx context.Context, username string, purge bool) error {
	candidates, err := s.users.GetUsers(ctx, username)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	// the server filters by substring
	var matches []models.User
	for _, u := range candidates {
		if u.Username == username {
			matches = append(matches, u)
		}
	}
	switch len(matches) {
	case 0:
		return fmt.Errorf("%w: %s", ErrUserNotFound, username)
	case 1:
	default:
		return fmt.Errorf("%w: found %d users with name %s", ErrAmbiguousUser, len(matches), username)
	}
	user := matches[0]

	audit := beginAudit(ctx, s.recorder, "users delete", !s.apply, s.logger)
	defer audit.finish(ctx)
	audit.record(ctx, models.Action{
		Kind:     models.ActionUserDelete,
		TargetID: user.ID,
		Name:     user.Username,
		Detail:   fmt.Sprintf("purge=%t", purge),
		Applied:  s.apply,
	})

	if !s.apply {
		s.logger.Warn().Msgf("Would delete user %s (%s)", user.Username, user.Email)
		return nil
	}

	if err = s.users.DeleteUser(ctx, user.ID, false); err != nil {
		return fmt.Errorf("delete user %s: %w", username, err)
	}
	if purge {
		if err = s.users.DeleteUser(ctx, user.ID, true); err != nil {
			return fmt.Errorf("purge user %s: %w", username, err)
		}
	}
	s.logger.Info().Msgf("Deleted user %s", user.Username)
	return nil
}
