package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/galaxy-admin/internal/logger"
	"github.com/MKhiriev/galaxy-admin/internal/utils"
	"github.com/MKhiriev/galaxy-admin/models"
)

// ToolshedHTTPAdapter implements [ToolshedAPI] against the public tool shed
// API. No credentials are needed.
type ToolshedHTTPAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewToolshedHTTPAdapter constructs the tool shed adapter for baseURL.
func NewToolshedHTTPAdapter(baseURL string, timeout time.Duration, log *logger.Logger) (*ToolshedHTTPAdapter, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, ErrEmptyAddress
	}

	client, err := utils.NewAPIClient(baseURL, "", timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid toolshed url: %w", err)
	}

	return &ToolshedHTTPAdapter{client: client, logger: log}, nil
}

// GetCategories implements [ToolshedAPI]. GET /api/categories.
func (t *ToolshedHTTPAdapter) GetCategories(ctx context.Context) ([]models.ShedCategory, error) {
	var categories []models.ShedCategory
	err := doRequest(ctx, t.client, t.logger, "get categories", resty.MethodGet, "/api/categories", nil, nil, &categories)
	return categories, err
}

// GetCategoryRepositories implements [ToolshedAPI].
// GET /api/categories/{id}/repositories.
func (t *ToolshedHTTPAdapter) GetCategoryRepositories(ctx context.Context, categoryID string) (models.CategoryRepositories, error) {
	var repos models.CategoryRepositories
	path := "/api/categories/" + url.PathEscape(categoryID) + "/repositories"
	err := doRequest(ctx, t.client, t.logger, "get category repositories", resty.MethodGet, path, nil, nil, &repos)
	return repos, err
}
