package compute

import (
	"context"
	"fmt"
	"time"

	compute "google.golang.org/api/compute/v1"

	"github.com/graphite-platforms/gcp-client-go/shared"
)

// MergeMetadataItems combines two lists of metadata items. Every item from
// winner is retained; items from loser are retained only when no item in
// winner has the same key. Neither input is mutated.
func MergeMetadataItems(winner, loser []*compute.MetadataItems) []*compute.MetadataItems {
	merged := make([]*compute.MetadataItems, 0, len(winner)+len(loser))
	merged = append(merged, winner...)

	keys := make(map[string]bool, len(winner))
	for _, item := range winner {
		keys[item.Key] = true
	}
	for _, item := range loser {
		if !keys[item.Key] {
			merged = append(merged, item)
		}
	}
	return merged
}

// AppendInstanceMetadata appends metadata items to an instance. Items whose
// keys already exist on the instance are overwritten; all other existing
// metadata is preserved. Blocks until the set-metadata operation completes or
// the timeout elapses.
func (c *Client) AppendInstanceMetadata(ctx context.Context, projectID, zoneLink, instanceID string, items []*compute.MetadataItems, timeout time.Duration) (*compute.Operation, error) {
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
	if items == nil {
		return nil, fmt.Errorf("%w: items must not be nil", shared.ErrInvalidArgument)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", shared.ErrInvalidArgument)
	}

	instance, err := c.api.GetInstance(ctx, projectID, zone, instanceID)
	if err != nil {
		return nil, fmt.Errorf("getting instance %q: %w", instanceID, err)
	}

	// The existing metadata fingerprint must be sent back for optimistic
	// concurrency control.
	metadata := instance.Metadata
	if metadata == nil {
		metadata = &compute.Metadata{}
	}
	metadata.Items = MergeMetadataItems(items, metadata.Items)

	op, err := c.api.SetInstanceMetadata(ctx, projectID, zone, instanceID, metadata)
	if err != nil {
		return nil, fmt.Errorf("setting instance metadata: %w", err)
	}

	return c.WaitForOperation(ctx, projectID, op, timeout)
}
