package binaryauthorization

import (
	"context"
	"fmt"

	binaryauthorization "google.golang.org/api/binaryauthorization/v1beta1"

	"github.com/graphite-platforms/gcp-client-go/shared"
)

// Client is a convenience wrapper around the Binary Authorization API.
type Client struct {
	api API
}

// NewClient creates a Client on top of the given API.
func NewClient(api API) *Client {
	return &Client{api: api}
}

// ListAttestors returns the attestors of the project, sorted by name.
func (c *Client) ListAttestors(ctx context.Context, projectID string) ([]*binaryauthorization.Attestor, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}

	attestors, err := c.api.ListAttestors(ctx, fmt.Sprintf("projects/%s", projectID))
	if err != nil {
		return nil, fmt.Errorf("listing attestors: %w", err)
	}

	return shared.SortResourceList(attestors,
		func(a, b *binaryauthorization.Attestor) bool { return a.Name < b.Name },
	), nil
}

// GetAttestor retrieves the named attestor.
func (c *Client) GetAttestor(ctx context.Context, projectID, attestorName string) (*binaryauthorization.Attestor, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("attestorName", attestorName); err != nil {
		return nil, err
	}

	return c.api.GetAttestor(ctx, fmt.Sprintf("projects/%s/attestors/%s", projectID, attestorName))
}
