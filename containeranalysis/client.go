package containeranalysis

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	containeranalysis "google.golang.org/api/containeranalysis/v1beta1"

	"github.com/graphite-platforms/gcp-client-go/shared"
)

const (
	defaultPollInterval = 5 * time.Second

	// The note Google's own analyzer attaches its discovery occurrences to.
	discoveryNoteName = "projects/goog-analysis/notes/PACKAGE_VULNERABILITY"

	attestationKind        = "ATTESTATION"
	attestationContentType = "SIMPLE_SIGNING_JSON"
)

// Terminal analysis statuses a vulnerability scan can end in.
const (
	AnalysisStatusFinishedSuccess     = "FINISHED_SUCCESS"
	AnalysisStatusFinishedFailed      = "FINISHED_FAILED"
	AnalysisStatusFinishedUnsupported = "FINISHED_UNSUPPORTED"
)

// Client is a convenience wrapper around the Container Analysis API.
type Client struct {
	api          API
	pollInterval time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithPollInterval overrides the interval between scan status fetches.
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

// ListVulnerabilityScanOccurrences returns the vulnerability occurrences
// recorded for the given resource URL, sorted by name. The result is never
// nil.
func (c *Client) ListVulnerabilityScanOccurrences(ctx context.Context, projectID, resourceURL string) ([]*containeranalysis.Occurrence, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("resourceURL", resourceURL); err != nil {
		return nil, err
	}

	filter := shared.BuildFilterString(map[string]string{
		"kind":        "VULNERABILITY",
		"resourceUrl": resourceURL,
	})
	occurrences, err := c.api.ListOccurrences(ctx, fmt.Sprintf("projects/%s", projectID), filter)
	if err != nil {
		return nil, fmt.Errorf("listing vulnerability occurrences: %w", err)
	}

	return shared.SortResourceList(occurrences,
		func(a, b *containeranalysis.Occurrence) bool { return a.Name < b.Name },
	), nil
}

// GetVulnerabilityScanStatus blocks until the vulnerability scan of the given
// resource URL reaches a terminal status or the timeout elapses. The scan's
// discovery occurrence may not exist yet when this is called right after an
// image push; its absence counts as "not done" rather than an error.
func (c *Client) GetVulnerabilityScanStatus(ctx context.Context, projectID, resourceURL string, timeout time.Duration) (string, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return "", err
	}
	if err := shared.RequireNonEmpty("resourceURL", resourceURL); err != nil {
		return "", err
	}
	if timeout <= 0 {
		return "", fmt.Errorf("%w: timeout must be positive", shared.ErrInvalidArgument)
	}

	fields := log.Fields{
		"project":  projectID,
		"resource": resourceURL,
	}
	deadline := time.Now().Add(timeout)

	// Once the discovery occurrence has been found it is polled by name
	// instead of re-running the list query.
	occurrenceName := ""

	for {
		status, err := c.fetchScanStatus(ctx, projectID, resourceURL, &occurrenceName)
		switch {
		case err != nil && !shared.IsRetryable(err):
			return "", fmt.Errorf("fetching scan status for %q: %w", resourceURL, err)
		case err != nil:
			log.WithError(err).WithFields(fields).Warn("Transient error fetching scan status, retrying")
		case isTerminalAnalysisStatus(status):
			return status, nil
		default:
			log.WithFields(fields).WithField("status", status).Debug("Vulnerability scan not done yet")
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return "", fmt.Errorf("%w: vulnerability scan of %q still not done after %s", shared.ErrWaitTimeout, resourceURL, timeout)
		}

		wait := c.pollInterval
		if wait > remaining {
			wait = remaining
		}
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("waiting for vulnerability scan of %q: %w", resourceURL, ctx.Err())
		case <-time.After(wait):
		}
	}
}

// fetchScanStatus returns the current analysis status of the resource's
// discovery occurrence, or "" when the occurrence has not appeared yet. The
// occurrence's name is written back through occurrenceName the first time it
// is found, and later calls fetch it directly.
func (c *Client) fetchScanStatus(ctx context.Context, projectID, resourceURL string, occurrenceName *string) (string, error) {
	if *occurrenceName != "" {
		occurrence, err := c.api.GetOccurrence(ctx, *occurrenceName)
		if err != nil {
			return "", err
		}
		return analysisStatus(occurrence), nil
	}

	filter := shared.BuildFilterString(map[string]string{
		"kind":        "DISCOVERY",
		"resourceUrl": resourceURL,
	})
	occurrences, err := c.api.ListOccurrences(ctx, fmt.Sprintf("projects/%s", projectID), filter)
	if err != nil {
		return "", err
	}

	for _, occurrence := range occurrences {
		if occurrence.NoteName != discoveryNoteName {
			continue
		}
		if status := analysisStatus(occurrence); status != "" {
			*occurrenceName = occurrence.Name
			return status, nil
		}
	}
	return "", nil
}

func analysisStatus(occurrence *containeranalysis.Occurrence) string {
	if occurrence == nil || occurrence.Discovered == nil || occurrence.Discovered.Discovered == nil {
		return ""
	}
	return occurrence.Discovered.Discovered.AnalysisStatus
}

func isTerminalAnalysisStatus(status string) bool {
	switch status {
	case AnalysisStatusFinishedSuccess, AnalysisStatusFinishedFailed, AnalysisStatusFinishedUnsupported:
		return true
	}
	return false
}

// CreateAttestation records a signed attestation occurrence for the given
// resource URL against the note identified by noteProjectID and noteID. The
// signature and payload are expected in the base64 form the API uses on the
// wire. The public key ID may be empty for keys that carry their own ID.
func (c *Client) CreateAttestation(ctx context.Context, projectID, resourceURL, noteProjectID, noteID, payload, signature, publicKeyID string) (*containeranalysis.Occurrence, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("resourceURL", resourceURL); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("noteProjectID", noteProjectID); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("noteID", noteID); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("payload", payload); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("signature", signature); err != nil {
		return nil, err
	}

	occurrence := &containeranalysis.Occurrence{
		Resource: &containeranalysis.Resource{Uri: resourceURL},
		NoteName: fmt.Sprintf("projects/%s/notes/%s", noteProjectID, noteID),
		Kind:     attestationKind,
		Attestation: &containeranalysis.Details{
			Attestation: &containeranalysis.Attestation{
				GenericSignedAttestation: &containeranalysis.GenericSignedAttestation{
					ContentType:       attestationContentType,
					SerializedPayload: payload,
					Signatures: []*containeranalysis.Signature{
						{Signature: signature, PublicKeyId: publicKeyID},
					},
				},
			},
		},
	}

	created, err := c.api.CreateOccurrence(ctx, fmt.Sprintf("projects/%s", projectID), occurrence)
	if err != nil {
		return nil, fmt.Errorf("creating attestation for %q: %w", resourceURL, err)
	}
	return created, nil
}
