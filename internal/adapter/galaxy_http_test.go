// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/galaxy-admin/internal/config"
	"github.com/MKhiriev/galaxy-admin/internal/logger"
	"github.com/MKhiriev/galaxy-admin/models"
)

// newTestGalaxy создаёт адаптер, направленный на тестовый сервер
func newTestGalaxy(t *testing.T, serverURL string) *GalaxyHTTPAdapter {
	t.Helper()
	a, err := NewGalaxyHTTPAdapter(config.Galaxy{URL: serverURL, Key: "secret"}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestNewGalaxyHTTPAdapter_EmptyURL(t *testing.T) {
	_, err := NewGalaxyHTTPAdapter(config.Galaxy{URL: "  "}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

// ── libraries ────────────────────────────────────────────────────────────────

func TestGetLibraries_SendsKeyAndDeletedFlag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/libraries", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("deleted"))
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))
		writeJSON(t, w, []map[string]any{
			{"id": "l1", "name": "user_data", "deleted": true, "root_folder_id": "Fl1"},
		})
	}))
	defer srv.Close()

	libs, err := newTestGalaxy(t, srv.URL).GetLibraries(context.Background(), true)

	require.NoError(t, err)
	require.Len(t, libs, 1)
	assert.Equal(t, models.Library{ID: "l1", Name: "user_data", Deleted: true, RootFolderID: "Fl1"}, libs[0])
}

func TestGetLibraries_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"err_msg":"invalid key"}`))
	}))
	defer srv.Close()

	_, err := newTestGalaxy(t, srv.URL).GetLibraries(context.Background(), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "get libraries")
}

func TestDeleteUser_ForbiddenGalaxyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"err_msg":"You must be an administrator to access this feature.","err_code":403006}`))
	}))
	defer srv.Close()

	err := newTestGalaxy(t, srv.URL).DeleteUser(context.Background(), "u1", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, err.Error(), "You must be an administrator to access this feature. (code 403006)")
	assert.NotContains(t, err.Error(), "err_msg")
}

func TestMapHTTPError_PlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("  upstream down\n"))
	}))
	defer srv.Close()

	_, err := newTestGalaxy(t, srv.URL).GetVersion(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 503: upstream down")
}

func TestGetLibraries_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	_, err := newTestGalaxy(t, srv.URL).GetLibraries(context.Background(), false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode get libraries response")
}

func TestDeleteLibraryDataset_PurgesWithBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/libraries/l1/contents/d1", r.URL.Path)
		assert.Equal(t, map[string]any{"purged": true}, decodeBody(t, r))
		writeJSON(t, w, map[string]any{"id": "d1", "deleted": true})
	}))
	defer srv.Close()

	err := newTestGalaxy(t, srv.URL).DeleteLibraryDataset(context.Background(), "l1", "d1", true)
	require.NoError(t, err)
}

// ── folders ──────────────────────────────────────────────────────────────────

func TestShowFolder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/folders/F1", r.URL.Path)
		writeJSON(t, w, map[string]any{"id": "F1", "name": "alice", "deleted": true, "item_count": 3})
	}))
	defer srv.Close()

	got, err := newTestGalaxy(t, srv.URL).ShowFolder(context.Background(), "F1")

	require.NoError(t, err)
	assert.Equal(t, models.FolderDetails{ID: "F1", Name: "alice", Deleted: true, ItemCount: 3}, got)
}

func TestShowFolder_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestGalaxy(t, srv.URL).ShowFolder(context.Background(), "F404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetFolderContents_Pages(t *testing.T) {
	const total = folderPageSize + 2
	var calls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/api/folders/F1/contents", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("include_deleted"))
		assert.Equal(t, strconv.Itoa(folderPageSize), r.URL.Query().Get("limit"))

		offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
		require.NoError(t, err)

		entries := make([]map[string]any, 0, folderPageSize)
		for i := offset; i < total && i < offset+folderPageSize; i++ {
			entries = append(entries, map[string]any{"type": "file", "id": fmt.Sprintf("d%d", i), "raw_size": 1})
		}
		writeJSON(t, w, map[string]any{
			"metadata": map[string]any{
				"total_rows": total,
				"full_path":  [][]string{{"F0", "user_data"}, {"F1", "alice"}},
			},
			"folder_contents": entries,
		})
	}))
	defer srv.Close()

	got, err := newTestGalaxy(t, srv.URL).GetFolderContents(context.Background(), "F1", true)

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Len(t, got.Entries, total)
	assert.Equal(t, "user_data/alice", got.Metadata.Path())
	assert.Equal(t, "d0", got.Entries[0].ID)
	assert.Equal(t, fmt.Sprintf("d%d", total-1), got.Entries[total-1].ID)
}

func TestGetFolderContents_StopsOnEmptyPage(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeJSON(t, w, map[string]any{
			"metadata":        map[string]any{"total_rows": 50},
			"folder_contents": []any{},
		})
	}))
	defer srv.Close()

	got, err := newTestGalaxy(t, srv.URL).GetFolderContents(context.Background(), "F1", false)

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, got.Entries)
}

func TestCreateFolder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/folders/F0", r.URL.Path)
		assert.Equal(t, map[string]any{"name": "alice@example.org", "description": "Folder for alice"}, decodeBody(t, r))
		writeJSON(t, w, map[string]any{"id": "F9", "name": "alice@example.org"})
	}))
	defer srv.Close()

	got, err := newTestGalaxy(t, srv.URL).CreateFolder(context.Background(), "F0", "alice@example.org", "Folder for alice")

	require.NoError(t, err)
	assert.Equal(t, "F9", got.ID)
}

func TestDeleteFolder_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := newTestGalaxy(t, srv.URL).DeleteFolder(context.Background(), "F1")
	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestSetFolderPermissions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/folders/F1/permissions", r.URL.Path)
		assert.Equal(t, "set_permissions", r.URL.Query().Get("action"))
		body := decodeBody(t, r)
		assert.Equal(t, []any{"r1"}, body["add_ids[]"])
		assert.Equal(t, []any{"r1"}, body["manage_ids[]"])
		assert.Equal(t, []any{}, body["modify_ids[]"])
		writeJSON(t, w, map[string]any{})
	}))
	defer srv.Close()

	err := newTestGalaxy(t, srv.URL).SetFolderPermissions(context.Background(), "F1",
		FolderPermissions{AddIDs: []string{"r1"}, ManageIDs: []string{"r1"}})
	require.NoError(t, err)
}

// ── users ────────────────────────────────────────────────────────────────────

func TestGetUsers_FiltersByName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "alice", r.URL.Query().Get("f_name"))
		writeJSON(t, w, []map[string]any{{"id": "u1", "username": "alice", "email": "alice@example.org"}})
	}))
	defer srv.Close()

	users, err := newTestGalaxy(t, srv.URL).GetUsers(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, []models.User{{ID: "u1", Username: "alice", Email: "alice@example.org"}}, users)
}

func TestDeleteUser_Purge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/users/u1", r.URL.Path)
		assert.Equal(t, map[string]any{"purge": true}, decodeBody(t, r))
		writeJSON(t, w, map[string]any{"id": "u1", "purged": true})
	}))
	defer srv.Close()

	require.NoError(t, newTestGalaxy(t, srv.URL).DeleteUser(context.Background(), "u1", true))
}

func TestGetHistories_Query(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "true", q.Get("all"))
		assert.Equal(t, "id,user_id,size", q.Get("keys"))
		assert.Equal(t, "500", q.Get("limit"))
		assert.Equal(t, "1000", q.Get("offset"))
		writeJSON(t, w, []map[string]any{{"id": "h1", "user_id": "u1", "size": 2048}})
	}))
	defer srv.Close()

	got, err := newTestGalaxy(t, srv.URL).GetHistories(context.Background(), 500, 1000)

	require.NoError(t, err)
	assert.Equal(t, []models.History{{ID: "h1", UserID: "u1", Size: 2048}}, got)
}

// ── quotas ───────────────────────────────────────────────────────────────────

func TestGetQuotas_MarksDeleted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/quotas/deleted", r.URL.Path)
		writeJSON(t, w, []map[string]any{{"id": "q1", "name": "alice@example.org"}})
	}))
	defer srv.Close()

	got, err := newTestGalaxy(t, srv.URL).GetQuotas(context.Background(), true)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Deleted)
}

func TestQuotaMutations_Paths(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		call   func(a *GalaxyHTTPAdapter) error
	}{
		{
			name: "create", method: http.MethodPost, path: "/api/quotas",
			call: func(a *GalaxyHTTPAdapter) error {
				return a.CreateQuota(context.Background(), models.QuotaPayload{Name: "q"})
			},
		},
		{
			name: "update", method: http.MethodPut, path: "/api/quotas/q1",
			call: func(a *GalaxyHTTPAdapter) error {
				return a.UpdateQuota(context.Background(), "q1", models.QuotaPayload{Name: "q"})
			},
		},
		{
			name: "delete", method: http.MethodDelete, path: "/api/quotas/q1",
			call: func(a *GalaxyHTTPAdapter) error { return a.DeleteQuota(context.Background(), "q1") },
		},
		{
			name: "undelete", method: http.MethodPost, path: "/api/quotas/deleted/q1/undelete",
			call: func(a *GalaxyHTTPAdapter) error { return a.UndeleteQuota(context.Background(), "q1") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.method, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
				_, _ = w.Write([]byte(`"ok"`))
			}))
			defer srv.Close()

			require.NoError(t, tt.call(newTestGalaxy(t, srv.URL)))
		})
	}
}

// ── instance / tools / dependencies ─────────────────────────────────────────

func TestGetVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		writeJSON(t, w, map[string]any{"version_major": "24.1", "version_minor": "2"})
	}))
	defer srv.Close()

	v, err := newTestGalaxy(t, srv.URL).GetVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "24.1.2", v.String())
}

func TestGetTools_NotInPanel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "false", r.URL.Query().Get("in_panel"))
		writeJSON(t, w, []map[string]any{{
			"id": "toolshed.g2.bx.psu.edu/repos/iuc/bwa/bwa/0.7.17", "version": "0.7.17",
			"tool_shed_repository": map[string]any{"name": "bwa", "owner": "iuc", "changeset_revision": "abc"},
		}})
	}))
	defer srv.Close()

	tools, err := newTestGalaxy(t, srv.URL).GetTools(context.Background())

	require.NoError(t, err)
	require.Len(t, tools, 1)
	require.NotNil(t, tools[0].ToolShedRepository)
	assert.Equal(t, "iuc", tools[0].ToolShedRepository.Owner)
}

func TestResolveToolbox(t *testing.T) {
	t.Run("lookup", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/container_resolvers/toolbox", r.URL.Path)
			assert.Equal(t, "a,b", r.URL.Query().Get("tool_ids"))
			writeJSON(t, w, []map[string]any{{"tool_id": "a", "status": map[string]any{"environment_path": "img"}}})
		}))
		defer srv.Close()

		got, err := newTestGalaxy(t, srv.URL).ResolveToolbox(context.Background(), []string{"a", "b"}, false)
		require.NoError(t, err)
		assert.Equal(t, "img", got[0].Status.EnvironmentPath)
	})

	t.Run("install", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/container_resolvers/toolbox/install", r.URL.Path)
			assert.Equal(t, []any{"a"}, decodeBody(t, r)["tool_ids"])
			writeJSON(t, w, []map[string]any{})
		}))
		defer srv.Close()

		_, err := newTestGalaxy(t, srv.URL).ResolveToolbox(context.Background(), []string{"a"}, true)
		require.NoError(t, err)
	})
}

func TestDeleteUnusedDependencyPaths(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/dependency_resolvers/unused_paths", r.URL.Path)
		assert.Equal(t, []any{"/deps/_conda/envs/x"}, decodeBody(t, r)["paths"])
	}))
	defer srv.Close()

	err := newTestGalaxy(t, srv.URL).DeleteUnusedDependencyPaths(context.Background(), []string{"/deps/_conda/envs/x"})
	require.NoError(t, err)
}

func TestRequest_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []any{})
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestGalaxy(t, srv.URL).GetRoles(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
