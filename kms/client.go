package kms

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"strings"

	cloudkms "google.golang.org/api/cloudkms/v1"

	"github.com/graphite-platforms/gcp-client-go/shared"
)

const keyVersionStateEnabled = "ENABLED"

// Client is a convenience wrapper around the Cloud KMS API.
type Client struct {
	api API
}

// NewClient creates a Client on top of the given API.
func NewClient(api API) *Client {
	return &Client{api: api}
}

// ListLocations returns the KMS locations available to the project, sorted by
// display name.
func (c *Client) ListLocations(ctx context.Context, projectID string) ([]*cloudkms.Location, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}

	locations, err := c.api.ListLocations(ctx, fmt.Sprintf("projects/%s", projectID))
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}

	return shared.SortResourceList(locations,
		func(a, b *cloudkms.Location) bool { return a.DisplayName < b.DisplayName },
	), nil
}

// ListKeyRings returns the key rings in the given location, sorted by name.
func (c *Client) ListKeyRings(ctx context.Context, projectID, location string) ([]*cloudkms.KeyRing, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("location", location); err != nil {
		return nil, err
	}

	parent := fmt.Sprintf("projects/%s/locations/%s", projectID, location)
	keyRings, err := c.api.ListKeyRings(ctx, parent)
	if err != nil {
		return nil, fmt.Errorf("listing key rings: %w", err)
	}

	return shared.SortResourceList(keyRings,
		func(a, b *cloudkms.KeyRing) bool { return a.Name < b.Name },
	), nil
}

// ListCryptoKeys returns the crypto keys in the given key ring, sorted by
// name.
func (c *Client) ListCryptoKeys(ctx context.Context, projectID, location, keyRing string) ([]*cloudkms.CryptoKey, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("location", location); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("keyRing", keyRing); err != nil {
		return nil, err
	}

	parent := fmt.Sprintf("projects/%s/locations/%s/keyRings/%s", projectID, location, keyRing)
	keys, err := c.api.ListCryptoKeys(ctx, parent)
	if err != nil {
		return nil, fmt.Errorf("listing crypto keys: %w", err)
	}

	return shared.SortResourceList(keys,
		func(a, b *cloudkms.CryptoKey) bool { return a.Name < b.Name },
	), nil
}

// GetCryptoKey retrieves the named crypto key.
func (c *Client) GetCryptoKey(ctx context.Context, projectID, location, keyRing, keyName string) (*cloudkms.CryptoKey, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("location", location); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("keyRing", keyRing); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("keyName", keyName); err != nil {
		return nil, err
	}

	name := fmt.Sprintf("projects/%s/locations/%s/keyRings/%s/cryptoKeys/%s", projectID, location, keyRing, keyName)
	return c.api.GetCryptoKey(ctx, name)
}

// ListCryptoKeyVersions returns the enabled versions of the given crypto key,
// sorted by name. Disabled, destroyed and pending versions are excluded.
func (c *Client) ListCryptoKeyVersions(ctx context.Context, projectID, location, keyRing, keyName string) ([]*cloudkms.CryptoKeyVersion, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("location", location); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("keyRing", keyRing); err != nil {
		return nil, err
	}
	if err := shared.RequireNonEmpty("keyName", keyName); err != nil {
		return nil, err
	}

	parent := fmt.Sprintf("projects/%s/locations/%s/keyRings/%s/cryptoKeys/%s", projectID, location, keyRing, keyName)
	versions, err := c.api.ListCryptoKeyVersions(ctx, parent)
	if err != nil {
		return nil, fmt.Errorf("listing crypto key versions: %w", err)
	}

	return shared.ProcessResourceList(versions,
		func(v *cloudkms.CryptoKeyVersion) bool { return v.State == keyVersionStateEnabled },
		func(a, b *cloudkms.CryptoKeyVersion) bool { return a.Name < b.Name },
	), nil
}

// GetCryptoKeyVersion retrieves the crypto key version with the given
// resource name.
func (c *Client) GetCryptoKeyVersion(ctx context.Context, keyVersionName string) (*cloudkms.CryptoKeyVersion, error) {
	if err := shared.RequireNonEmpty("keyVersionName", keyVersionName); err != nil {
		return nil, err
	}
	return c.api.GetCryptoKeyVersion(ctx, keyVersionName)
}

// GetPublicKey retrieves the public half of the crypto key version with the
// given resource name.
func (c *Client) GetPublicKey(ctx context.Context, keyVersionName string) (*cloudkms.PublicKey, error) {
	if err := shared.RequireNonEmpty("keyVersionName", keyVersionName); err != nil {
		return nil, err
	}
	return c.api.GetPublicKey(ctx, keyVersionName)
}

// AsymmetricSign signs the payload with the named crypto key version. The
// version is fetched first so its algorithm can pick the digest function.
func (c *Client) AsymmetricSign(ctx context.Context, projectID, location, keyRing, keyName, version string, payload []byte) (string, error) {
	if err := shared.RequireNonEmpty("projectID", projectID); err != nil {
		return "", err
	}
	if err := shared.RequireNonEmpty("location", location); err != nil {
		return "", err
	}
	if err := shared.RequireNonEmpty("keyRing", keyRing); err != nil {
		return "", err
	}
	if err := shared.RequireNonEmpty("keyName", keyName); err != nil {
		return "", err
	}
	if err := shared.RequireNonEmpty("version", version); err != nil {
		return "", err
	}

	name := fmt.Sprintf("projects/%s/locations/%s/keyRings/%s/cryptoKeys/%s/cryptoKeyVersions/%s",
		projectID, location, keyRing, keyName, version)
	keyVersion, err := c.api.GetCryptoKeyVersion(ctx, name)
	if err != nil {
		return "", fmt.Errorf("getting crypto key version %q: %w", name, err)
	}
	return c.Sign(ctx, keyVersion, payload)
}

// Sign signs the payload with the given key version. The payload is hashed
// locally with the digest the key version's algorithm calls for; only the
// digest is sent to KMS. The returned signature is base64 encoded, as
// reported by the API.
func (c *Client) Sign(ctx context.Context, keyVersion *cloudkms.CryptoKeyVersion, payload []byte) (string, error) {
	if keyVersion == nil {
		return "", fmt.Errorf("%w: keyVersion must not be nil", shared.ErrInvalidArgument)
	}
	if err := shared.RequireNonEmpty("keyVersion.Name", keyVersion.Name); err != nil {
		return "", err
	}

	digest, err := digestForAlgorithm(keyVersion.Algorithm, payload)
	if err != nil {
		return "", err
	}

	resp, err := c.api.AsymmetricSign(ctx, keyVersion.Name, &cloudkms.AsymmetricSignRequest{Digest: digest})
	if err != nil {
		return "", fmt.Errorf("signing with %q: %w", keyVersion.Name, err)
	}
	return resp.Signature, nil
}

// digestForAlgorithm hashes the payload with the digest function named by the
// key algorithm, e.g. RSA_SIGN_PKCS1_2048_SHA256 or EC_SIGN_P384_SHA384.
func digestForAlgorithm(algorithm string, payload []byte) (*cloudkms.Digest, error) {
	tokens := strings.Split(algorithm, "_")
	if len(tokens) < 3 || len(tokens) > 5 {
		return nil, fmt.Errorf("%w: unrecognized key algorithm %q", shared.ErrInvalidArgument, algorithm)
	}
	if tokens[1] != "SIGN" {
		return nil, fmt.Errorf("%w: key algorithm %q cannot be used for signing", shared.ErrInvalidArgument, algorithm)
	}

	switch tokens[len(tokens)-1] {
	case "SHA256":
		sum := sha256.Sum256(payload)
		return &cloudkms.Digest{Sha256: base64.StdEncoding.EncodeToString(sum[:])}, nil
	case "SHA384":
		sum := sha512.Sum384(payload)
		return &cloudkms.Digest{Sha384: base64.StdEncoding.EncodeToString(sum[:])}, nil
	case "SHA512":
		sum := sha512.Sum512(payload)
		return &cloudkms.Digest{Sha512: base64.StdEncoding.EncodeToString(sum[:])}, nil
	default:
		return nil, fmt.Errorf("%w: key algorithm %q uses an unsupported digest", shared.ErrInvalidArgument, algorithm)
	}
}
