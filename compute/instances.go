package compute

import (
	"context"
	"fmt"

	compute "google.golang.org/api/compute/v1"

	"github.com/graphite-platforms/gcp-client-go/shared"
)

// InsertInstance creates the given instance in the project. The zone is taken
// from the instance's zone self link. A non-empty templateLink names an
// instance template whose configuration seeds the new instance. The returned
// operation can be passed to WaitForOperation; this call does not block on
// completion.
func (c *Client) InsertInstance(ctx context.Context, projectID, templateLink string, instance *compute.Instance) (*compute.Operation, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	if instance == nil {
		return nil, fmt.Errorf("%w: instance must not be nil", shared.ErrInvalidArgument)
	}
	zone, err := zoneNameFromLink(instance.Zone)
	if err != nil {
		return nil, err
	}

	return c.api.InsertInstance(ctx, projectID, zone, instance, templateLink)
}

// TerminateInstance deletes the instance with the given ID. This call does
// not block on completion of the deletion.
func (c *Client) TerminateInstance(ctx context.Context, projectID, zoneLink, instanceID string) (*compute.Operation, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	zone, err := zoneNameFromLink(zoneLink)
	if err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("instanceID", instanceID); err != nil {
		return nil, err
	}

	return c.api.DeleteInstance(ctx, projectID, zone, instanceID)
}

// TerminateInstanceWithStatus deletes the instance with the given ID only if
// it currently has the desired status. It returns a nil operation when the
// status did not match and nothing was deleted. This call does not block on
// completion of the deletion.
func (c *Client) TerminateInstanceWithStatus(ctx context.Context, projectID, zoneLink, instanceID, desiredStatus string) (*compute.Operation, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	zone, err := zoneNameFromLink(zoneLink)
	if err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("instanceID", instanceID); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("desiredStatus", desiredStatus); err != nil {
		return nil, err
	}

	instance, err := c.api.GetInstance(ctx, projectID, zone, instanceID)
	if err != nil {
		return nil, fmt.Errorf("getting instance %q: %w", instanceID, err)
	}
	if instance.Status != desiredStatus {
		return nil, nil
	}

	return c.api.DeleteInstance(ctx, projectID, zone, instanceID)
}

// GetInstance retrieves the instance with the given ID.
func (c *Client) GetInstance(ctx context.Context, projectID, zoneLink, instanceID string) (*compute.Instance, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	zone, err := zoneNameFromLink(zoneLink)
	if err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("instanceID", instanceID); err != nil {
		return nil, err
	}

	return c.api.GetInstance(ctx, projectID, zone, instanceID)
}

// ListInstancesWithLabel returns the instances in the project carrying every
// given label, across all zones. The result is never nil.
func (c *Client) ListInstancesWithLabel(ctx context.Context, projectID string, labels map[string]string) ([]*compute.Instance, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	if labels == nil {
		return nil, fmt.Errorf("%w: labels must not be nil", shared.ErrInvalidArgument)
	}

	scopedLists, err := c.api.AggregatedListInstances(ctx, projectID, shared.BuildLabelsFilterString(labels))
	if err != nil {
		return nil, fmt.Errorf("listing instances: %w", err)
	}

	instances := []*compute.Instance{}
	for _, scoped := range scopedLists {
		instances = append(instances, scoped.Instances...)
	}
	return instances, nil
}

// SimulateMaintenanceEvent triggers a simulated maintenance event on the
// instance, forcing a live migration or termination.
func (c *Client) SimulateMaintenanceEvent(ctx context.Context, projectID, zoneLink, instanceID string) (*compute.Operation, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	zone, err := zoneNameFromLink(zoneLink)
	if err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("instanceID", instanceID); err != nil {
		return nil, err
	}

	return c.api.SimulateMaintenanceEvent(ctx, projectID, zone, instanceID)
}

// GetGuestAttributes returns the guest attributes published by the instance,
// optionally restricted to a query path. The result is empty, never nil, when
// the instance published nothing.
func (c *Client) GetGuestAttributes(ctx context.Context, projectID, zoneLink, instanceID, queryPath string) ([]*compute.GuestAttributesEntry, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	zone, err := zoneNameFromLink(zoneLink)
	if err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("instanceID", instanceID); err != nil {
		return nil, err
	}

	attrs, err := c.api.GetGuestAttributes(ctx, projectID, zone, instanceID, queryPath)
	if err != nil {
		return nil, fmt.Errorf("getting guest attributes: %w", err)
	}

	if attrs == nil || attrs.QueryValue == nil || attrs.QueryValue.Items == nil {
		return []*compute.GuestAttributesEntry{}, nil
	}
	return attrs.QueryValue.Items, nil
}
