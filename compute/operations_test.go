package compute_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	computev1 "google.golang.org/api/compute/v1"
	"google.golang.org/api/googleapi"

	"github.com/graphite-platforms/gcp-client-go/compute"
	"github.com/graphite-platforms/gcp-client-go/compute/mocks"
	"github.com/graphite-platforms/gcp-client-go/shared"
)

const testOperation = "operation-123"

func newPollingClient(api compute.API) *compute.Client {
	return compute.NewClient(api, compute.WithPollInterval(time.Millisecond))
}

func TestWaitForZoneOperationDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := newPollingClient(api)

	// A first fetch reporting DONE must return without ever sleeping.
	api.EXPECT().GetZoneOperation(gomock.Any(), testProject, "us-central1-a", testOperation).
		Return(&computev1.Operation{Name: testOperation, Status: "DONE"}, nil).
		Times(1)

	op, err := client.WaitForZoneOperation(context.Background(), testProject, testZoneLink, testOperation, time.Minute)
	if err != nil {
		t.Fatalf("WaitForZoneOperation returned unexpected error: %v", err)
	}
	if op.Status != "DONE" {
		t.Errorf("expected status DONE, got %q", op.Status)
	}
}

func TestWaitForZoneOperationEventuallyDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := newPollingClient(api)

	gomock.InOrder(
		api.EXPECT().GetZoneOperation(gomock.Any(), testProject, "us-central1-a", testOperation).
			Return(&computev1.Operation{Name: testOperation, Status: "PENDING"}, nil),
		api.EXPECT().GetZoneOperation(gomock.Any(), testProject, "us-central1-a", testOperation).
			Return(&computev1.Operation{Name: testOperation, Status: "RUNNING"}, nil),
		api.EXPECT().GetZoneOperation(gomock.Any(), testProject, "us-central1-a", testOperation).
			Return(&computev1.Operation{Name: testOperation, Status: "DONE"}, nil),
	)

	op, err := client.WaitForZoneOperation(context.Background(), testProject, testZoneLink, testOperation, time.Minute)
	if err != nil {
		t.Fatalf("WaitForZoneOperation returned unexpected error: %v", err)
	}
	if op.Status != "DONE" {
		t.Errorf("expected status DONE, got %q", op.Status)
	}
}

func TestWaitForZoneOperationTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := newPollingClient(api)

	api.EXPECT().GetZoneOperation(gomock.Any(), testProject, "us-central1-a", testOperation).
		Return(&computev1.Operation{Name: testOperation, Status: "RUNNING"}, nil).
		MinTimes(1)

	_, err := client.WaitForZoneOperation(context.Background(), testProject, testZoneLink, testOperation, 20*time.Millisecond)
	if !errors.Is(err, shared.ErrWaitTimeout) {
		t.Errorf("expected ErrWaitTimeout, got %v", err)
	}
}

func TestWaitForZoneOperationFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := newPollingClient(api)

	api.EXPECT().GetZoneOperation(gomock.Any(), testProject, "us-central1-a", testOperation).
		Return(&computev1.Operation{
			Name:   testOperation,
			Status: "DONE",
			Error: &computev1.OperationError{
				Errors: []*computev1.OperationErrorErrors{
					{Code: "QUOTA_EXCEEDED", Message: "Quota exceeded"},
				},
			},
		}, nil)

	_, err := client.WaitForZoneOperation(context.Background(), testProject, testZoneLink, testOperation, time.Minute)

	var opErr *shared.OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected *shared.OperationError, got %v", err)
	}
	if opErr.OperationName != testOperation {
		t.Errorf("expected operation name %q, got %q", testOperation, opErr.OperationName)
	}
	if errors.Is(err, shared.ErrWaitTimeout) {
		t.Error("an operation failure must not look like a timeout")
	}
}

func TestWaitForZoneOperationTransientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := newPollingClient(api)

	gomock.InOrder(
		api.EXPECT().GetZoneOperation(gomock.Any(), testProject, "us-central1-a", testOperation).
			Return(nil, &googleapi.Error{Code: 503, Message: "backend error"}),
		api.EXPECT().GetZoneOperation(gomock.Any(), testProject, "us-central1-a", testOperation).
			Return(&computev1.Operation{Name: testOperation, Status: "DONE"}, nil),
	)

	op, err := client.WaitForZoneOperation(context.Background(), testProject, testZoneLink, testOperation, time.Minute)
	if err != nil {
		t.Fatalf("WaitForZoneOperation returned unexpected error: %v", err)
	}
	if op.Status != "DONE" {
		t.Errorf("expected status DONE, got %q", op.Status)
	}
}

func TestWaitForZoneOperationNonRetryableError(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := newPollingClient(api)

	apiErr := &googleapi.Error{Code: 404, Message: "operation not found"}
	api.EXPECT().GetZoneOperation(gomock.Any(), testProject, "us-central1-a", testOperation).
		Return(nil, apiErr).
		Times(1)

	_, err := client.WaitForZoneOperation(context.Background(), testProject, testZoneLink, testOperation, time.Minute)
	if !errors.Is(err, apiErr) {
		t.Errorf("expected the API error to abort the wait, got %v", err)
	}
	if !shared.IsNotFound(err) {
		t.Errorf("expected a not-found error, got %v", err)
	}
}

func TestWaitForOperationGlobal(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := newPollingClient(api)

	// No zone self link on the operation means the global endpoint.
	api.EXPECT().GetGlobalOperation(gomock.Any(), testProject, testOperation).
		Return(&computev1.Operation{Name: testOperation, Status: "DONE"}, nil)

	op := &computev1.Operation{Name: testOperation, Status: "RUNNING"}
	got, err := client.WaitForOperation(context.Background(), testProject, op, time.Minute)
	if err != nil {
		t.Fatalf("WaitForOperation returned unexpected error: %v", err)
	}
	if got.Status != "DONE" {
		t.Errorf("expected status DONE, got %q", got.Status)
	}
}

func TestWaitForOperationZonal(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := newPollingClient(api)

	api.EXPECT().GetZoneOperation(gomock.Any(), testProject, "us-central1-a", testOperation).
		Return(&computev1.Operation{Name: testOperation, Status: "DONE"}, nil)

	op := &computev1.Operation{Name: testOperation, Status: "RUNNING", Zone: testZoneLink}
	if _, err := client.WaitForOperation(context.Background(), testProject, op, time.Minute); err != nil {
		t.Fatalf("WaitForOperation returned unexpected error: %v", err)
	}
}

func TestWaitForOperationValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := newPollingClient(api)

	tests := []struct {
		name      string
		projectID string
		op        *computev1.Operation
		timeout   time.Duration
	}{
		{name: "nil operation", projectID: testProject, op: nil, timeout: time.Minute},
		{name: "empty project", projectID: "", op: &computev1.Operation{Name: testOperation}, timeout: time.Minute},
		{name: "empty operation name", projectID: testProject, op: &computev1.Operation{}, timeout: time.Minute},
		{name: "zero timeout", projectID: testProject, op: &computev1.Operation{Name: testOperation}, timeout: 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := client.WaitForOperation(context.Background(), test.projectID, test.op, test.timeout)
			if !errors.Is(err, shared.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestWaitForZoneOperationContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := compute.NewClient(api, compute.WithPollInterval(time.Second))

	api.EXPECT().GetZoneOperation(gomock.Any(), testProject, "us-central1-a", testOperation).
		Return(&computev1.Operation{Name: testOperation, Status: "RUNNING"}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.WaitForZoneOperation(ctx, testProject, testZoneLink, testOperation, time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
