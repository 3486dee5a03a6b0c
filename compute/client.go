package compute

import (
	"context"
	"fmt"
	"strings"
	"time"

	compute "google.golang.org/api/compute/v1"

	"github.com/graphite-platforms/gcp-client-go/shared"
)

const defaultPollInterval = 5 * time.Second

// Client is a convenience wrapper around the Compute Engine API. It validates
// arguments, sorts and filters list results, resolves self links present in
// inputs, and can block on long-running operations.
type Client struct {
	api          API
	pollInterval time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithPollInterval overrides the interval between operation status fetches.
func WithPollInterval(interval time.Duration) Option {
	return func(c *Client) {
		c.pollInterval = interval
	}
}

// NewClient creates a Client on top of the given API.
func NewClient(api API, opts ...Option) *Client {
	c := &Client{
		api:          api,
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListRegions returns the regions available to the project, sorted by name.
// Deprecated regions are excluded.
func (c *Client) ListRegions(ctx context.Context, projectID string) ([]*compute.Region, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}

	regions, err := c.api.ListRegions(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing regions: %w", err)
	}

	return shared.ProcessResourceList(regions,
		func(r *compute.Region) bool { return !isDeprecated(r.Deprecated) },
		func(a, b *compute.Region) bool { return a.Name < b.Name },
	), nil
}

// ListZones returns the zones of the given region available to the project,
// sorted by name.
func (c *Client) ListZones(ctx context.Context, projectID, regionLink string) ([]*compute.Zone, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("regionLink", regionLink); err != nil {
		return nil, err
	}

	zones, err := c.api.ListZones(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing zones: %w", err)
	}

	return shared.ProcessResourceList(zones,
		func(z *compute.Zone) bool { return strings.EqualFold(z.Region, regionLink) },
		func(a, b *compute.Zone) bool { return a.Name < b.Name },
	), nil
}

// ListMachineTypes returns the machine types available in the given zone,
// sorted by name. Deprecated machine types are excluded.
func (c *Client) ListMachineTypes(ctx context.Context, projectID, zoneLink string) ([]*compute.MachineType, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	zone, err := zoneNameFromLink(zoneLink)
	if err != nil {
		return nil, err
	}

	machineTypes, err := c.api.ListMachineTypes(ctx, projectID, zone)
	if err != nil {
		return nil, fmt.Errorf("listing machine types: %w", err)
	}

	return shared.ProcessResourceList(machineTypes,
		func(m *compute.MachineType) bool { return !isDeprecated(m.Deprecated) },
		func(a, b *compute.MachineType) bool { return a.Name < b.Name },
	), nil
}

// ListCPUPlatforms returns the CPU platforms available in the given zone,
// sorted alphabetically.
func (c *Client) ListCPUPlatforms(ctx context.Context, projectID, zoneLink string) ([]string, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	zone, err := zoneNameFromLink(zoneLink)
	if err != nil {
		return nil, err
	}

	zoneResource, err := c.api.GetZone(ctx, projectID, zone)
	if err != nil {
		return nil, fmt.Errorf("getting zone %q: %w", zone, err)
	}

	return shared.SortResourceList(zoneResource.AvailableCpuPlatforms,
		func(a, b string) bool { return a < b },
	), nil
}

// ListDiskTypes returns the disk types available in the given zone, sorted by
// name. Deprecated disk types are excluded.
func (c *Client) ListDiskTypes(ctx context.Context, projectID, zoneLink string) ([]*compute.DiskType, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	zone, err := zoneNameFromLink(zoneLink)
	if err != nil {
		return nil, err
	}

	diskTypes, err := c.api.ListDiskTypes(ctx, projectID, zone)
	if err != nil {
		return nil, fmt.Errorf("listing disk types: %w", err)
	}

	return shared.ProcessResourceList(diskTypes,
		func(d *compute.DiskType) bool { return !isDeprecated(d.Deprecated) },
		func(a, b *compute.DiskType) bool { return a.Name < b.Name },
	), nil
}

// ListBootDiskTypes returns the disk types in the given zone that are usable
// as boot disks, sorted by name. Deprecated and local disk types are
// excluded.
func (c *Client) ListBootDiskTypes(ctx context.Context, projectID, zoneLink string) ([]*compute.DiskType, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	zone, err := zoneNameFromLink(zoneLink)
	if err != nil {
		return nil, err
	}

	diskTypes, err := c.api.ListDiskTypes(ctx, projectID, zone)
	if err != nil {
		return nil, fmt.Errorf("listing disk types: %w", err)
	}

	return shared.ProcessResourceList(diskTypes,
		func(d *compute.DiskType) bool {
			// Local disks cannot be boot disks.
			return !isDeprecated(d.Deprecated) && !strings.HasPrefix(d.Name, "local-")
		},
		func(a, b *compute.DiskType) bool { return a.Name < b.Name },
	), nil
}

// ListImages returns the images available to the project, sorted by name.
// Deprecated images are excluded.
func (c *Client) ListImages(ctx context.Context, projectID string) ([]*compute.Image, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}

	images, err := c.api.ListImages(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing images: %w", err)
	}

	return shared.ProcessResourceList(images,
		func(i *compute.Image) bool { return !isDeprecated(i.Deprecated) },
		func(a, b *compute.Image) bool { return a.Name < b.Name },
	), nil
}

// GetImage retrieves the image with the given name.
func (c *Client) GetImage(ctx context.Context, projectID, imageName string) (*compute.Image, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("imageName", imageName); err != nil {
		return nil, err
	}

	return c.api.GetImage(ctx, projectID, imageName)
}

// ListAcceleratorTypes returns the accelerator types available in the given
// zone, sorted by name. Deprecated accelerator types are excluded.
func (c *Client) ListAcceleratorTypes(ctx context.Context, projectID, zoneLink string) ([]*compute.AcceleratorType, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	zone, err := zoneNameFromLink(zoneLink)
	if err != nil {
		return nil, err
	}

	acceleratorTypes, err := c.api.ListAcceleratorTypes(ctx, projectID, zone)
	if err != nil {
		return nil, fmt.Errorf("listing accelerator types: %w", err)
	}

	return shared.ProcessResourceList(acceleratorTypes,
		func(a *compute.AcceleratorType) bool { return !isDeprecated(a.Deprecated) },
		func(a, b *compute.AcceleratorType) bool { return a.Name < b.Name },
	), nil
}

// ListNetworks returns the networks available to the project, sorted by name.
func (c *Client) ListNetworks(ctx context.Context, projectID string) ([]*compute.Network, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}

	networks, err := c.api.ListNetworks(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing networks: %w", err)
	}

	return shared.SortResourceList(networks,
		func(a, b *compute.Network) bool { return a.Name < b.Name },
	), nil
}

// ListSubnetworks returns the subnetworks of the given network in the given
// region, sorted by name.
func (c *Client) ListSubnetworks(ctx context.Context, projectID, networkLink, regionLink string) ([]*compute.Subnetwork, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("networkLink", networkLink); err != nil {
		return nil, err
	}
	region, err := regionNameFromLink(regionLink)
	if err != nil {
		return nil, err
	}

	subnetworks, err := c.api.ListSubnetworks(ctx, projectID, region)
	if err != nil {
		return nil, fmt.Errorf("listing subnetworks: %w", err)
	}

	return shared.ProcessResourceList(subnetworks,
		func(s *compute.Subnetwork) bool { return strings.EqualFold(s.Network, networkLink) },
		func(a, b *compute.Subnetwork) bool { return a.Name < b.Name },
	), nil
}

func isDeprecated(status *compute.DeprecationStatus) bool {
	return status != nil && strings.EqualFold(status.State, "DEPRECATED")
}

func zoneNameFromLink(zoneLink string) (string, error) {
	if err := shared.RequireNonEmpty("zoneLink", zoneLink); err != nil {
		return "", err
	}
	return shared.NameFromSelfLink(zoneLink)
}

func regionNameFromLink(regionLink string) (string, error) {
	if err := shared.RequireNonEmpty("regionLink", regionLink); err != nil {
		return "", err
	}
	return shared.NameFromSelfLink(regionLink)
}
