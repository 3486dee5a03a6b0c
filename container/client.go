package container

import (
	"context"
	"fmt"
	"strings"

	container "google.golang.org/api/container/v1"

	"github.com/graphite-platforms/gcp-client-go/shared"
)

// allLocations is the wildcard the GKE API accepts in place of a location.
const allLocations = "-"

// Client is a convenience wrapper around the GKE API and the container
// registry manifest endpoint.
type Client struct {
	api API
}

// NewClient creates a Client on top of the given API.
func NewClient(api API) *Client {
	return &Client{api: api}
}

// GetCluster retrieves the named cluster in the given location.
func (c *Client) GetCluster(ctx context.Context, projectID, location, clusterName string) (*container.Cluster, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("location", location); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("clusterName", clusterName); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("projects/%s/locations/%s/clusters/%s", projectID, location, clusterName)
	return c.api.GetCluster(ctx, name)
}

// ListAllClusters returns every cluster in the project across all locations,
// sorted by name.
func (c *Client) ListAllClusters(ctx context.Context, projectID string) ([]*container.Cluster, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}

	parent := fmt.Sprintf("projects/%s/locations/%s", projectID, allLocations)
	clusters, err := c.api.ListClusters(ctx, parent)
	if err != nil {
		return nil, fmt.Errorf("listing clusters: %w", err)
	}

	return shared.SortResourceList(clusters,
		func(a, b *container.Cluster) bool { return a.Name < b.Name },
	), nil
}

// GetDigest resolves an image name of the form host/project/image, plus a
// tag or digest reference, to the manifest digest the registry reports for
// it.
func (c *Client) GetDigest(ctx context.Context, imageName, reference string) (string, error) {
	if err := shared.RequireNonEmpty("imageName", imageName); err != nil {
		return "", err
	}
	if err := shared.RequireNonEmpty("reference", reference); err != nil {
		return "", err
	}

	parts := strings.Split(imageName, "/")
	if len(parts) < 3 {
		return "", fmt.Errorf("%w: image name %q must have the form host/project/image", shared.ErrInvalidArgument, imageName)
	}
	host := parts[0]
	image := strings.Join(parts[1:], "/")

	digest, err := c.api.GetManifestDigest(ctx, host, image, reference)
	if err != nil {
		return "", fmt.Errorf("resolving digest for %s:%s: %w", imageName, reference, err)
	}
	return digest, nil
}
