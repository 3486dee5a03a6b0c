package compute_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	computev1 "google.golang.org/api/compute/v1"

	"github.com/graphite-platforms/gcp-client-go/compute"
	"github.com/graphite-platforms/gcp-client-go/compute/mocks"
	"github.com/graphite-platforms/gcp-client-go/shared"
)

func metadataValue(v string) *string {
	return &v
}

func TestMergeMetadataItems(t *testing.T) {
	winner := []*computev1.MetadataItems{
		{Key: "ssh-keys", Value: metadataValue("new-key")},
		{Key: "startup-script", Value: metadataValue("echo hi")},
	}
	loser := []*computev1.MetadataItems{
		{Key: "ssh-keys", Value: metadataValue("old-key")},
		{Key: "enable-oslogin", Value: metadataValue("TRUE")},
	}

	merged := compute.MergeMetadataItems(winner, loser)

	if len(merged) != 3 {
		t.Fatalf("expected 3 merged items, got %d", len(merged))
	}
	byKey := map[string]string{}
	for _, item := range merged {
		byKey[item.Key] = *item.Value
	}
	if byKey["ssh-keys"] != "new-key" {
		t.Errorf("conflicting key must take the winner's value, got %q", byKey["ssh-keys"])
	}
	if byKey["startup-script"] != "echo hi" {
		t.Errorf("winner-only key missing, got %q", byKey["startup-script"])
	}
	if byKey["enable-oslogin"] != "TRUE" {
		t.Errorf("loser-only key missing, got %q", byKey["enable-oslogin"])
	}

	// Inputs must be left alone.
	if len(winner) != 2 || len(loser) != 2 {
		t.Errorf("inputs were mutated: winner=%d loser=%d", len(winner), len(loser))
	}
}

func TestMergeMetadataItemsEmptyInputs(t *testing.T) {
	tests := []struct {
		name   string
		winner []*computev1.MetadataItems
		loser  []*computev1.MetadataItems
		want   int
	}{
		{name: "both nil", winner: nil, loser: nil, want: 0},
		{name: "nil winner", winner: nil, loser: []*computev1.MetadataItems{{Key: "a"}}, want: 1},
		{name: "nil loser", winner: []*computev1.MetadataItems{{Key: "a"}}, loser: nil, want: 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			merged := compute.MergeMetadataItems(test.winner, test.loser)
			if merged == nil {
				t.Fatal("expected an empty slice, got nil")
			}
			if len(merged) != test.want {
				t.Errorf("expected %d items, got %d", test.want, len(merged))
			}
		})
	}
}

func TestAppendInstanceMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := compute.NewClient(api, compute.WithPollInterval(time.Millisecond))

	existing := &computev1.Metadata{
		Fingerprint: "fingerprint-1",
		Items: []*computev1.MetadataItems{
			{Key: "ssh-keys", Value: metadataValue("old-key")},
			{Key: "enable-oslogin", Value: metadataValue("TRUE")},
		},
	}
	api.EXPECT().GetInstance(gomock.Any(), testProject, "us-central1-a", testInstance).
		Return(&computev1.Instance{Name: testInstance, Metadata: existing}, nil)

	var sent *computev1.Metadata
	api.EXPECT().SetInstanceMetadata(gomock.Any(), testProject, "us-central1-a", testInstance, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, _ string, metadata *computev1.Metadata) (*computev1.Operation, error) {
			sent = metadata
			return &computev1.Operation{Name: testOperation, Zone: testZoneLink}, nil
		})
	api.EXPECT().GetZoneOperation(gomock.Any(), testProject, "us-central1-a", testOperation).
		Return(&computev1.Operation{Name: testOperation, Status: "DONE"}, nil)

	items := []*computev1.MetadataItems{{Key: "ssh-keys", Value: metadataValue("new-key")}}
	if _, err := client.AppendInstanceMetadata(context.Background(), testProject, testZoneLink, testInstance, items, time.Minute); err != nil {
		t.Fatalf("AppendInstanceMetadata returned unexpected error: %v", err)
	}

	if sent == nil {
		t.Fatal("SetInstanceMetadata was not called with metadata")
	}
	if sent.Fingerprint != "fingerprint-1" {
		t.Errorf("existing fingerprint must be sent back, got %q", sent.Fingerprint)
	}
	byKey := map[string]string{}
	for _, item := range sent.Items {
		byKey[item.Key] = *item.Value
	}
	if byKey["ssh-keys"] != "new-key" {
		t.Errorf("appended item must win a key conflict, got %q", byKey["ssh-keys"])
	}
	if byKey["enable-oslogin"] != "TRUE" {
		t.Error("unrelated existing metadata must be preserved")
	}
}

func TestAppendInstanceMetadataValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := compute.NewClient(api)

	tests := []struct {
		name    string
		items   []*computev1.MetadataItems
		timeout time.Duration
	}{
		{name: "nil items", items: nil, timeout: time.Minute},
		{name: "zero timeout", items: []*computev1.MetadataItems{}, timeout: 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := client.AppendInstanceMetadata(context.Background(), testProject, testZoneLink, testInstance, test.items, test.timeout)
			if !errors.Is(err, shared.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}
