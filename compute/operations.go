package compute

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	compute "google.golang.org/api/compute/v1"

	"github.com/graphite-platforms/gcp-client-go/shared"
)

const operationStatusDone = "DONE"

// GetZoneOperation retrieves the operation with the given ID in the given
// zone.
func (c *Client) GetZoneOperation(ctx context.Context, projectID, zoneLink, operationID string) (*compute.Operation, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	zone, err := zoneNameFromLink(zoneLink)
	if err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("operationID", operationID); err != nil {
		return nil, err
	}

	return c.api.GetZoneOperation(ctx, projectID, zone, operationID)
}

// WaitForOperation blocks until the given operation completes or the timeout
// elapses. The operation's zone self link, when present, selects the zonal
// operation endpoint; otherwise the operation is polled as a global one.
func (c *Client) WaitForOperation(ctx context.Context, projectID string, op *compute.Operation, timeout time.Duration) (*compute.Operation, error) {
	if op == nil {
		return nil, fmt.Errorf("%w: operation must not be nil", shared.ErrInvalidArgument)
	}

	zone := ""
	if op.Zone != "" {
		var err error
		if zone, err = shared.NameFromSelfLink(op.Zone); err != nil {
			return nil, err
		}
	}
	return c.waitForOperation(ctx, projectID, zone, op.Name, timeout)
}

// WaitForZoneOperation blocks until the named zonal operation completes or
// the timeout elapses.
func (c *Client) WaitForZoneOperation(ctx context.Context, projectID, zoneLink, operationName string, timeout time.Duration) (*compute.Operation, error) {
	zone, err := zoneNameFromLink(zoneLink)
	if err != nil {
		return nil, err
	}
	return c.waitForOperation(ctx, projectID, zone, operationName, timeout)
}

// WaitForGlobalOperation blocks until the named global operation completes or
// the timeout elapses.
func (c *Client) WaitForGlobalOperation(ctx context.Context, projectID, operationName string, timeout time.Duration) (*compute.Operation, error) {
	return c.waitForOperation(ctx, projectID, "", operationName, timeout)
}

// waitForOperation polls the operation at a fixed interval until it reports
// DONE. Retryable fetch errors are logged and treated as "not yet done" so
// that a transient read failure does not abort the wait; non-retryable API
// errors do abort it. A completed operation carrying an error payload is
// reported as *shared.OperationError, distinct from shared.ErrWaitTimeout.
func (c *Client) waitForOperation(ctx context.Context, projectID, zone, operationName string, timeout time.Duration) (*compute.Operation, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("operationName", operationName); err != nil {
		return nil, err
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", shared.ErrInvalidArgument)
	}

	fields := log.Fields{
		"project":   projectID,
		"zone":      zone,
		"operation": operationName,
	}
	deadline := time.Now().Add(timeout)

	for {
		op, err := c.fetchOperation(ctx, projectID, zone, operationName)
		switch {
		case err != nil && !shared.IsRetryable(err):
			return nil, fmt.Errorf("fetching operation %q: %w", operationName, err)
		case err != nil:
			log.WithError(err).WithFields(fields).Warn("Transient error fetching operation, retrying")
		case op.Status == operationStatusDone:
			if op.Error != nil {
				return op, &shared.OperationError{OperationName: operationName, Err: op.Error}
			}
			return op, nil
		default:
			log.WithFields(fields).WithField("status", op.Status).Debug("Operation not done yet")
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, fmt.Errorf("%w: operation %q still not done after %s", shared.ErrWaitTimeout, operationName, timeout)
		}

		wait := c.pollInterval
		if wait > remaining {
			wait = remaining
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for operation %q: %w", operationName, ctx.Err())
		case <-time.After(wait):
		}
	}
}

func (c *Client) fetchOperation(ctx context.Context, projectID, zone, operationName string) (*compute.Operation, error) {
	if zone == "" {
		return c.api.GetGlobalOperation(ctx, projectID, operationName)
	}
	return c.api.GetZoneOperation(ctx, projectID, zone, operationName)
}
