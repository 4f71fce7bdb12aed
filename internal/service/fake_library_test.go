package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/galaxy-admin/internal/adapter"
	"github.com/MKhiriev/galaxy-admin/models"
)

// fakeLibraries: in-memory дерево библиотек; удаления меняют флаги deleted,
// так что повторный проход видит результат предыдущего
type fakeLibraries struct {
	libraries map[string]*models.Library
	order     []string
	folders   map[string]*fakeFolder
	files     map[string]*fakeFile

	deletedFolders  []string
	purgedDatasets  []string
	showFolderCalls int
}

type fakeFolder struct {
	id, name string
	deleted  bool
	parent   *fakeFolder
	children []fakeChild
}

type fakeFile struct {
	id, name string
	deleted  bool
	size     int64
}

// fakeChild is exactly one of folder, file or an entry of unknown type.
type fakeChild struct {
	folder  *fakeFolder
	file    *fakeFile
	unknown string
}

func newFakeLibraries() *fakeLibraries {
	return &fakeLibraries{
		libraries: map[string]*models.Library{},
		folders:   map[string]*fakeFolder{},
		files:     map[string]*fakeFile{},
	}
}

func (f *fakeLibraries) addLibrary(id, name string, deleted bool) (*models.Library, *fakeFolder) {
	root := &fakeFolder{id: "F" + id, name: name}
	f.folders[root.id] = root
	lib := &models.Library{ID: id, Name: name, Deleted: deleted, RootFolderID: root.id}
	f.libraries[id] = lib
	f.order = append(f.order, id)
	return lib, root
}

func (f *fakeLibraries) addFolder(parent *fakeFolder, id, name string, deleted bool) *fakeFolder {
	folder := &fakeFolder{id: id, name: name, deleted: deleted, parent: parent}
	f.folders[id] = folder
	parent.children = append(parent.children, fakeChild{folder: folder})
	return folder
}

func (f *fakeLibraries) addFile(parent *fakeFolder, id, name string, size int64, deleted bool) *fakeFile {
	file := &fakeFile{id: id, name: name, size: size, deleted: deleted}
	f.files[id] = file
	parent.children = append(parent.children, fakeChild{file: file})
	return file
}

func (f *fakeLibraries) addUnknown(parent *fakeFolder, typ string) {
	parent.children = append(parent.children, fakeChild{unknown: typ})
}

func (f *fakeLibraries) path(folder *fakeFolder) []models.PathSegment {
	if folder == nil {
		return nil
	}
	return append(f.path(folder.parent), models.PathSegment{ID: folder.id, Name: folder.name})
}

func (f *fakeLibraries) GetLibraries(_ context.Context, deleted bool) ([]models.Library, error) {
	var out []models.Library
	for _, id := range f.order {
		if lib := f.libraries[id]; lib.Deleted == deleted {
			out = append(out, *lib)
		}
	}
	return out, nil
}

func (f *fakeLibraries) CreateLibrary(_ context.Context, library models.Library) (models.Library, error) {
	lib, _ := f.addLibrary(fmt.Sprintf("L%d", len(f.order)+1), library.Name, false)
	return *lib, nil
}

func (f *fakeLibraries) GetLibraryContents(_ context.Context, libraryID string) ([]models.LibraryContent, error) {
	lib, ok := f.libraries[libraryID]
	if !ok {
		return nil, adapter.ErrNotFound
	}
	var out []models.LibraryContent
	var walk func(folder *fakeFolder, prefix string)
	walk = func(folder *fakeFolder, prefix string) {
		for _, c := range folder.children {
			if c.folder != nil && !c.folder.deleted {
				name := prefix + "/" + c.folder.name
				out = append(out, models.LibraryContent{ID: c.folder.id, Name: name, Type: models.EntryTypeFolder})
				walk(c.folder, name)
			}
			if c.file != nil && !c.file.deleted {
				out = append(out, models.LibraryContent{ID: c.file.id, Name: prefix + "/" + c.file.name, Type: models.EntryTypeFile})
			}
		}
	}
	walk(f.folders[lib.RootFolderID], "")
	return out, nil
}

func (f *fakeLibraries) ShowFolder(_ context.Context, folderID string) (models.FolderDetails, error) {
	f.showFolderCalls++
	folder, ok := f.folders[folderID]
	if !ok {
		return models.FolderDetails{}, adapter.ErrNotFound
	}
	return models.FolderDetails{ID: folder.id, Name: folder.name, Deleted: folder.deleted, ItemCount: len(folder.children)}, nil
}

func (f *fakeLibraries) GetFolderContents(_ context.Context, folderID string, includeDeleted bool) (models.FolderContents, error) {
	folder, ok := f.folders[folderID]
	if !ok {
		return models.FolderContents{}, adapter.ErrNotFound
	}

	out := models.FolderContents{Metadata: models.FolderMetadata{FullPath: f.path(folder)}}
	for _, c := range folder.children {
		var e models.FolderEntry
		switch {
		case c.folder != nil:
			e = models.FolderEntry{Type: models.EntryTypeFolder, ID: c.folder.id, Name: c.folder.name, Deleted: c.folder.deleted}
		case c.file != nil:
			e = models.FolderEntry{Type: models.EntryTypeFile, ID: c.file.id, Name: c.file.name, Deleted: c.file.deleted, RawSize: c.file.size}
		default:
			e = models.FolderEntry{Type: c.unknown, ID: "X", Name: "mystery"}
		}
		if e.Deleted && !includeDeleted {
			continue
		}
		out.Entries = append(out.Entries, e)
	}
	out.Metadata.TotalRows = len(out.Entries)
	return out, nil
}

func (f *fakeLibraries) CreateFolder(_ context.Context, parentID, name, _ string) (models.FolderDetails, error) {
	parent, ok := f.folders[parentID]
	if !ok {
		return models.FolderDetails{}, adapter.ErrNotFound
	}
	folder := f.addFolder(parent, fmt.Sprintf("F%d", len(f.folders)+1), name, false)
	return models.FolderDetails{ID: folder.id, Name: folder.name}, nil
}

func (f *fakeLibraries) DeleteFolder(_ context.Context, folderID string) error {
	folder, ok := f.folders[folderID]
	if !ok {
		return adapter.ErrNotFound
	}
	folder.deleted = true
	f.deletedFolders = append(f.deletedFolders, folderID)
	return nil
}

func (f *fakeLibraries) DeleteLibraryDataset(_ context.Context, libraryID, datasetID string, purge bool) error {
	file, ok := f.files[datasetID]
	if !ok || f.libraries[libraryID] == nil {
		return adapter.ErrNotFound
	}
	file.deleted = true
	if purge {
		f.purgedDatasets = append(f.purgedDatasets, datasetID)
	}
	return nil
}

func (f *fakeLibraries) SetFolderPermissions(context.Context, string, adapter.FolderPermissions) error {
	return nil
}
