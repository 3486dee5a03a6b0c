package compute

import (
	"context"
	"fmt"

	compute "google.golang.org/api/compute/v1"

	"github.com/graphite-platforms/gcp-client-go/shared"
)

// GetTemplate retrieves the instance template with the given name.
func (c *Client) GetTemplate(ctx context.Context, projectID, templateName string) (*compute.InstanceTemplate, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("templateName", templateName); err != nil {
		return nil, err
	}

	return c.api.GetInstanceTemplate(ctx, projectID, templateName)
}

// ListTemplates returns the instance templates available to the project,
// sorted by name.
func (c *Client) ListTemplates(ctx context.Context, projectID string) ([]*compute.InstanceTemplate, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}

	templates, err := c.api.ListInstanceTemplates(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing instance templates: %w", err)
	}

	return shared.SortResourceList(templates,
		func(a, b *compute.InstanceTemplate) bool { return a.Name < b.Name },
	), nil
}

// InsertTemplate creates the given instance template in the project. This
// call does not block on completion of the operation.
func (c *Client) InsertTemplate(ctx context.Context, projectID string, template *compute.InstanceTemplate) (*compute.Operation, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	if template == nil {
		return nil, fmt.Errorf("%w: template must not be nil", shared.ErrInvalidArgument)
	}

	return c.api.InsertInstanceTemplate(ctx, projectID, template)
}

// DeleteTemplate deletes the instance template with the given name. This call
// does not block on completion of the operation.
func (c *Client) DeleteTemplate(ctx context.Context, projectID, templateName string) (*compute.Operation, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("templateName", templateName); err != nil {
		return nil, err
	}

	return c.api.DeleteInstanceTemplate(ctx, projectID, templateName)
}
