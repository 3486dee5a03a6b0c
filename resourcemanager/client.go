package resourcemanager

import (
	"context"
	"fmt"

	cloudresourcemanager "google.golang.org/api/cloudresourcemanager/v1"

	"github.com/graphite-platforms/gcp-client-go/shared"
)

// Client is a convenience wrapper around the Cloud Resource Manager API.
type Client struct {
	api API
}

// NewClient creates a Client on top of the given API.
func NewClient(api API) *Client {
	return &Client{api: api}
}

// ListProjects returns the projects visible to the caller's credentials,
// sorted by project ID. The result is never nil.
func (c *Client) ListProjects(ctx context.Context) ([]*cloudresourcemanager.Project, error) {
	projects, err := c.api.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	return shared.SortResourceList(projects,
		func(a, b *cloudresourcemanager.Project) bool { return a.ProjectId < b.ProjectId },
	), nil
}
