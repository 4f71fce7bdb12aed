// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Entry types returned by the folder contents endpoint.
const (
	EntryTypeFolder = "folder"
	EntryTypeFile   = "file"
)

// Library is a top-level data library of a Galaxy instance.
type Library struct {
	// ID is the encoded library identifier.
	ID string `json:"id"`

	// Name is the display name of the library.
	Name string `json:"name"`

	// Description is the optional free-text description of the library.
	Description string `json:"description,omitempty"`

	// Synopsis is the optional short summary of the library.
	Synopsis string `json:"synopsis,omitempty"`

	// Deleted reports whether the library itself is marked deleted.
	Deleted bool `json:"deleted"`

	// RootFolderID references the folder holding the library contents.
	RootFolderID string `json:"root_folder_id"`
}

// FolderDetails is the folder representation returned without contents.
// ItemCount and Deleted are only reported by this variant.
type FolderDetails struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Deleted     bool   `json:"deleted"`
	ItemCount   int    `json:"item_count"`
}

// FolderEntry is a single child of a folder listing: either a sub-folder or
// a library dataset. Type is kept as a raw string so that unexpected values
// can be reported instead of rejected during decoding.
type FolderEntry struct {
	Type    string `json:"type"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Deleted bool   `json:"deleted"`
	RawSize int64  `json:"raw_size"`
}

// IsFolder reports whether the entry is a sub-folder.
func (e FolderEntry) IsFolder() bool { return e.Type == EntryTypeFolder }

// IsFile reports whether the entry is a library dataset.
func (e FolderEntry) IsFile() bool { return e.Type == EntryTypeFile }

// PathSegment is one element of a folder's full path. The remote API
// encodes it as a two element array: [id, name].
type PathSegment struct {
	ID   string
	Name string
}

// UnmarshalJSON decodes a segment from its [id, name] array form.
func (p *PathSegment) UnmarshalJSON(b []byte) error {
	var raw []string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode path segment: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("decode path segment: expected 2 elements, got %d", len(raw))
	}
	p.ID, p.Name = raw[0], raw[1]
	return nil
}

// MarshalJSON encodes the segment back into its [id, name] array form.
func (p PathSegment) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{p.ID, p.Name})
}

// FolderMetadata is the metadata block attached to a folder listing.
type FolderMetadata struct {
	FullPath  []PathSegment `json:"full_path"`
	TotalRows int           `json:"total_rows"`
}

// Path joins the names of all path segments with "/".
func (m FolderMetadata) Path() string {
	names := make([]string, 0, len(m.FullPath))
	for _, s := range m.FullPath {
		names = append(names, s.Name)
	}
	return strings.Join(names, "/")
}

// Depth returns the number of path segments, the library root being 1.
func (m FolderMetadata) Depth() int { return len(m.FullPath) }

// FolderContents is a page (or the concatenation of all pages) of a folder
// listing.
type FolderContents struct {
	Metadata FolderMetadata `json:"metadata"`
	Entries  []FolderEntry  `json:"folder_contents"`
}

// LibraryContent is a row of the flat library contents listing. Name holds
// the full path of the item inside the library (e.g. "/alice").
type LibraryContent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url,omitempty"`
}

// ScanResult accumulates the dangling content found below a folder.
type ScanResult struct {
	Folders int
	Files   int
	Bytes   int64
}

// Add returns the component-wise sum of r and o.
func (r ScanResult) Add(o ScanResult) ScanResult {
	return ScanResult{Folders: r.Folders + o.Folders, Files: r.Files + o.Files, Bytes: r.Bytes + o.Bytes}
}

// Empty reports whether nothing was found.
func (r ScanResult) Empty() bool {
	return r.Folders == 0 && r.Files == 0 && r.Bytes == 0
}
