// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/galaxy-admin/internal/adapter"
	"github.com/MKhiriev/galaxy-admin/internal/logger"
	"github.com/MKhiriev/galaxy-admin/internal/store"
	"github.com/MKhiriev/galaxy-admin/models"
)

// danglingService is the concrete implementation of [DanglingService].
//
// A node is dangling when its own deleted flag is false while the effective
// deletion state of its parent folder is true. The effective state of a
// folder is its own flag OR the effective state of its parent, seeded with
// the library's flag at the root.
type danglingService struct {
	libraries adapter.LibraryAPI
	recorder  store.Recorder
	delete    bool
	logger    *logger.Logger
}

// NewDanglingService constructs a [DanglingService]. With del, every
// dangling folder is deleted and every dangling dataset purged as soon as
// it has been counted.
func NewDanglingService(libraries adapter.LibraryAPI, recorder store.Recorder, del bool, log *logger.Logger) DanglingService {
	return &danglingService{
		libraries: libraries,
		recorder:  recorder,
		delete:    del,
		logger:    log,
	}
}

// ScanAll implements [DanglingService]. Libraries are listed twice since
// the listing is filtered by the deleted flag.
func (s *danglingService) ScanAll(ctx context.Context) (models.ScanResult, error) {
	trail := beginAudit(ctx, s.recorder, "libraries dangling", !s.delete, s.logger)
	defer trail.finish(ctx)

	var total models.ScanResult
	for _, deleted := range []bool{false, true} {
		libraries, err := s.libraries.GetLibraries(ctx, deleted)
		if err != nil {
			return total, fmt.Errorf("list libraries (deleted=%t): %w", deleted, err)
		}

		for _, library := range libraries {
			s.logger.Info().Msgf("Processing library %s", library.Name)

			res, err := s.scan(ctx, library, trail)
			total = total.Add(res)
			if err != nil {
				return total, fmt.Errorf("scan library %s: %w", library.Name, err)
			}

			if !res.Empty() {
				s.logger.Warn().Msgf("%s Found %d folders %d files %s",
					library.Name, res.Folders, res.Files, humanize.Bytes(uint64(res.Bytes)))
			}
		}
	}

	return total, nil
}

// Scan implements [DanglingService].
func (s *danglingService) Scan(ctx context.Context, library models.Library) (models.ScanResult, error) {
	return s.scan(ctx, library, nil)
}

func (s *danglingService) scan(ctx context.Context, library models.Library, trail *auditTrail) (models.ScanResult, error) {
	w := &danglingWalk{service: s, library: library, trail: trail}
	return w.folder(ctx, library.RootFolderID, library.Deleted)
}

// danglingWalk carries the per-library state of one depth-first walk.
type danglingWalk struct {
	service *danglingService
	library models.Library
	trail   *auditTrail
}

// folder walks the folder folderID whose parent is effectively deleted when
// inherited is set, and returns what it found below it.
func (w *danglingWalk) folder(ctx context.Context, folderID string, inherited bool) (models.ScanResult, error) {
	var res models.ScanResult
	api := w.service.libraries

	// only the plain folder view carries the own deleted flag and item count
	details, err := api.ShowFolder(ctx, folderID)
	if err != nil {
		return res, err
	}
	deleted := details.Deleted || inherited
	if details.ItemCount == 0 {
		return res, nil
	}

	contents, err := api.GetFolderContents(ctx, folderID, true)
	if err != nil {
		return res, err
	}
	path := contents.Metadata.Path()

	for _, entry := range contents.Entries {
		if err = ctx.Err(); err != nil {
			return res, err
		}

		switch {
		case entry.IsFolder():
			sub, err := w.folder(ctx, entry.ID, deleted)
			res = res.Add(sub)
			if err != nil {
				return res, err
			}

			if entry.Deleted || !deleted {
				continue
			}
			res.Folders++
			if err = w.dangling(ctx, entry, path); err != nil {
				return res, err
			}

		case entry.IsFile():
			if entry.Deleted || !deleted {
				continue
			}
			res.Files++
			res.Bytes += entry.RawSize
			if err = w.dangling(ctx, entry, path); err != nil {
				return res, err
			}

		default:
			w.service.logger.Error().
				Str("library", w.library.Name).
				Str("path", path).
				Str("id", entry.ID).
				Msgf("Unknown content type: %s", entry.Type)
		}
	}

	return res, nil
}

// dangling reports a dangling entry of the folder at path and deletes it
// when deletion is enabled.
func (w *danglingWalk) dangling(ctx context.Context, entry models.FolderEntry, path string) error {
	s := w.service
	finding := models.Finding{
		LibraryID: w.library.ID,
		Kind:      entry.Type,
		ID:        entry.ID,
		Name:      entry.Name,
		Path:      path,
		Size:      entry.RawSize,
	}

	if s.delete {
		var err error
		if entry.IsFolder() {
			err = s.libraries.DeleteFolder(ctx, entry.ID)
		} else {
			err = s.libraries.DeleteLibraryDataset(ctx, w.library.ID, entry.ID, true)
		}
		if err != nil {
			return fmt.Errorf("delete dangling %s %q in %s: %w", entry.Type, entry.Name, path, err)
		}
		finding.Deleted = true
	}

	if entry.IsFolder() {
		s.logger.Debug().Msgf("Dangling folder '%s' in %s", entry.Name, path)
	} else {
		s.logger.Debug().Msgf("Dangling dataset '%s' (%s) in %s", entry.Name, humanize.Bytes(uint64(entry.RawSize)), path)
	}

	w.trail.record(ctx, findingAction(finding))
	return nil
}

func findingAction(f models.Finding) models.Action {
	kind := models.ActionDanglingFile
	if f.Kind == models.EntryTypeFolder {
		kind = models.ActionDanglingFolder
	}
	return models.Action{
		Kind:     kind,
		TargetID: f.ID,
		Name:     f.Name,
		Detail:   f.Path,
		Size:     f.Size,
		Applied:  f.Deleted,
	}
}
