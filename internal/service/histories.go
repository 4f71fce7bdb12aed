package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/galaxy-admin/internal/adapter"
	"github.com/MKhiriev/galaxy-admin/internal/logger"
	"github.com/MKhiriev/galaxy-admin/models"
)

// DefaultHistoryPageSize is the number of histories fetched per request.
const DefaultHistoryPageSize = 10000

// HistoryOptions controls [HistoryService].
type HistoryOptions struct {
	// OutDir receives one <username>.histories file per considered user.
	OutDir string

	// AllUsers considers every user, not only those missing from the
	// directory.
	AllUsers bool

	PageSize int
}

type historyService struct {
	users     adapter.UserAPI
	histories adapter.HistoryAPI
	directory Directory
	opts      HistoryOptions
	logger    *logger.Logger
}

// NewHistoryService constructs a [HistoryService].
func NewHistoryService(users adapter.UserAPI, histories adapter.HistoryAPI, directory Directory,
	opts HistoryOptions, log *logger.Logger) HistoryService {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultHistoryPageSize
	}
	return &historyService{
		users:     users,
		histories: histories,
		directory: directory,
		opts:      opts,
		logger:    log,
	}
}

// Report implements [HistoryService]. Users in the report are ordered by
// ascending total history size.
func (s *historyService) Report(ctx context.Context) (models.HistoryReport, error) {
	var report models.HistoryReport

	users, err := s.users.GetUsers(ctx, "")
	if err != nil {
		return report, fmt.Errorf("list users: %w", err)
	}

	considered := make(map[string]*models.UserHistories)
	var order []string
	for _, user := range users {
		if !s.opts.AllUsers {
			_, present, err := s.directory.Lookup(ctx, user.Username)
			if err != nil {
				return report, fmt.Errorf("directory lookup of %s: %w", user.Username, err)
			}
			if present {
				s.logger.Debug().Msgf("Still present %s %s %s", user.Username, user.Email, user.ID)
				continue
			}
		}
		s.logger.Info().Msgf("Consider %s %s %s", user.Username, user.Email, user.ID)
		considered[user.ID] = &models.UserHistories{User: user}
		order = append(order, user.ID)
	}
	s.logger.Info().Msgf("Total %d/%d Galaxy users to delete", len(considered), len(users))

	for offset := 0; ; offset += s.opts.PageSize {
		page, err := s.histories.GetHistories(ctx, s.opts.PageSize, offset)
		if err != nil {
			return report, fmt.Errorf("list histories: %w", err)
		}
		if len(page) == 0 {
			break
		}

		for _, h := range page {
			uh, ok := considered[h.UserID]
			if !ok {
				report.IgnoredBytes += h.Size
				report.IgnoredCount++
				continue
			}
			report.ConsideredBytes += h.Size
			report.ConsideredCount++
			uh.HistoryIDs = append(uh.HistoryIDs, h.ID)
			uh.Size += h.Size
		}
	}

	for _, id := range order {
		uh := considered[id]
		if err = s.writeList(*uh); err != nil {
			return report, err
		}
		report.Users = append(report.Users, *uh)
	}
	slices.SortStableFunc(report.Users, func(a, b models.UserHistories) int {
		switch {
		case a.Size < b.Size:
			return -1
		case a.Size > b.Size:
			return 1
		}
		return 0
	})

	return report, nil
}

// writeList appends the history ids of uh to <outdir>/<username>.histories.
func (s *historyService) writeList(uh models.UserHistories) error {
	path := filepath.Join(s.opts.OutDir, uh.User.Username+".histories")

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open history list: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for _, id := range uh.HistoryIDs {
		b.WriteString(id)
		b.WriteByte('\n')
	}
	if _, err = f.WriteString(b.String()); err != nil {
		return fmt.Errorf("write history list %s: %w", path, err)
	}
	return nil
}
