package compute

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	compute "google.golang.org/api/compute/v1"

	"github.com/graphite-platforms/gcp-client-go/shared"
)

// CreateSnapshot snapshots every disk attached to the instance, dispatching
// one snapshot per disk concurrently and blocking until all of them complete
// or the first failure. The timeout applies to each per-disk operation.
func (c *Client) CreateSnapshot(ctx context.Context, projectID, zoneLink, instanceID string, timeout time.Duration) error {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return err
	}
	zone, err := zoneNameFromLink(zoneLink)
	if err != nil {
		return err
	}
	if err := shared.RequireNonEmpty("instanceID", instanceID); err != nil {
		return err
	}
	if timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", shared.ErrInvalidArgument)
	}

	instance, err := c.api.GetInstance(ctx, projectID, zone, instanceID)
	if err != nil {
		return fmt.Errorf("getting instance %q: %w", instanceID, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, disk := range instance.Disks {
		g.Go(func() error {
			diskName, err := shared.NameFromSelfLink(disk.Source)
			if err != nil {
				return err
			}
			if _, err := c.CreateSnapshotForDisk(ctx, projectID, zone, diskName, timeout); err != nil {
				log.WithError(err).WithFields(log.Fields{
					"project": projectID,
					"zone":    zone,
					"disk":    diskName,
				}).Warn("Error creating disk snapshot")
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

// CreateSnapshotForDisk snapshots a single disk, blocking until the snapshot
// operation completes or the timeout elapses. The snapshot is named after the
// disk.
func (c *Client) CreateSnapshotForDisk(ctx context.Context, projectID, zoneName, diskName string, timeout time.Duration) (*compute.Operation, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("zoneName", zoneName); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("diskName", diskName); err != nil {
		return nil, err
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", shared.ErrInvalidArgument)
	}

	op, err := c.api.CreateDiskSnapshot(ctx, projectID, zoneName, diskName, &compute.Snapshot{Name: diskName})
	if err != nil {
		return nil, fmt.Errorf("creating snapshot for disk %q: %w", diskName, err)
	}

	return c.WaitForOperation(ctx, projectID, op, timeout)
}

// DeleteSnapshot deletes the named snapshot. This call does not block on
// completion of the operation.
func (c *Client) DeleteSnapshot(ctx context.Context, projectID, snapshotName string) (*compute.Operation, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("snapshotName", snapshotName); err != nil {
		return nil, err
	}

	return c.api.DeleteSnapshot(ctx, projectID, snapshotName)
}

// GetSnapshot retrieves the named snapshot.
func (c *Client) GetSnapshot(ctx context.Context, projectID, snapshotName string) (*compute.Snapshot, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("snapshotName", snapshotName); err != nil {
		return nil, err
	}

	return c.api.GetSnapshot(ctx, projectID, snapshotName)
}
