package shared_test

import (
	"strings"
	"testing"

	compute "google.golang.org/api/compute/v1"

	"github.com/graphite-platforms/gcp-client-go/shared"
)

func byName(a, b *compute.Zone) bool {
	return a.Name < b.Name
}

func TestProcessResourceListNilItems(t *testing.T) {
	result := shared.ProcessResourceList[*compute.Zone](nil, nil, byName)
	if result == nil {
		t.Fatal("expected non-nil result for nil input")
	}
	if len(result) != 0 {
		t.Fatalf("expected empty result, got %d items", len(result))
	}
}

func TestProcessResourceListEmptyItems(t *testing.T) {
	result := shared.ProcessResourceList([]*compute.Zone{}, nil, byName)
	if result == nil {
		t.Fatal("expected non-nil result for empty input")
	}
	if len(result) != 0 {
		t.Fatalf("expected empty result, got %d items", len(result))
	}
}

func TestProcessResourceListSortsWithoutFilter(t *testing.T) {
	input := []*compute.Zone{
		{Name: "us-west1-c"},
		{Name: "us-west1-a"},
		{Name: "us-west1-b"},
	}

	result := shared.SortResourceList(input, byName)

	expected := []string{"us-west1-a", "us-west1-b", "us-west1-c"}
	if len(result) != len(expected) {
		t.Fatalf("expected %d items, got %d", len(expected), len(result))
	}
	for i, name := range expected {
		if result[i].Name != name {
			t.Errorf("result[%d].Name = %q; want %q", i, result[i].Name, name)
		}
	}

	// The input order must be untouched.
	if input[0].Name != "us-west1-c" {
		t.Errorf("input was mutated: input[0].Name = %q", input[0].Name)
	}
}

func TestProcessResourceListFilters(t *testing.T) {
	input := []*compute.Zone{
		{Name: "us-west1-a", Status: "UP"},
		{Name: "us-west1-b", Status: "DOWN"},
		{Name: "us-west1-c", Status: "UP"},
	}

	result := shared.ProcessResourceList(input, func(z *compute.Zone) bool {
		return z.Status == "UP"
	}, byName)

	if len(result) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result))
	}
	if result[0].Name != "us-west1-a" || result[1].Name != "us-west1-c" {
		t.Errorf("unexpected result order: %q, %q", result[0].Name, result[1].Name)
	}
}

func TestProcessResourceListSortIsStable(t *testing.T) {
	input := []*compute.Zone{
		{Name: "dup", Description: "first"},
		{Name: "aaa"},
		{Name: "dup", Description: "second"},
	}

	result := shared.SortResourceList(input, byName)

	if result[1].Description != "first" || result[2].Description != "second" {
		t.Errorf("sort is not stable: got %q then %q", result[1].Description, result[2].Description)
	}
}

func TestNameFromSelfLink(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			input:    "projects/example-project/zones/us-west1-a/instances/example",
			expected: "example",
		},
		{
			input:    "https://www.googleapis.com/compute/v1/projects/p/zones/us-west1-a",
			expected: "us-west1-a",
		},
		{
			input:    "us-west1-a",
			expected: "us-west1-a",
		},
	}

	for _, tc := range tests {
		actual, err := shared.NameFromSelfLink(tc.input)
		if err != nil {
			t.Fatalf("NameFromSelfLink(%q) returned error: %v", tc.input, err)
		}
		if actual != tc.expected {
			t.Errorf("NameFromSelfLink(%q) = %q; want %q", tc.input, actual, tc.expected)
		}
	}
}

func TestNameFromSelfLinkIdempotent(t *testing.T) {
	first, err := shared.NameFromSelfLink("projects/p/zones/us-west1-a")
	if err != nil {
		t.Fatal(err)
	}
	second, err := shared.NameFromSelfLink(first)
	if err != nil {
		t.Fatal(err)
	}
	if second != first {
		t.Errorf("expected idempotent extraction, got %q then %q", first, second)
	}
}

func TestNameFromSelfLinkEmpty(t *testing.T) {
	_, err := shared.NameFromSelfLink("")
	if err == nil {
		t.Fatal("expected error for empty self link")
	}
}

func TestBuildLabelsFilterString(t *testing.T) {
	tests := []struct {
		name     string
		labels   map[string]string
		expected string
	}{
		{
			name:     "empty",
			labels:   map[string]string{},
			expected: "",
		},
		{
			name:     "single label",
			labels:   map[string]string{"env": "prod"},
			expected: "(labels.env eq prod)",
		},
		{
			name:     "multiple labels in key order",
			labels:   map[string]string{"team": "infra", "env": "prod"},
			expected: "(labels.env eq prod) (labels.team eq infra)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual := shared.BuildLabelsFilterString(tc.labels)
			if actual != tc.expected {
				t.Errorf("BuildLabelsFilterString(%v) = %q; want %q", tc.labels, actual, tc.expected)
			}
		})
	}
}

func TestBuildFilterString(t *testing.T) {
	tests := []struct {
		name     string
		filters  map[string]string
		expected string
	}{
		{
			name:     "empty",
			filters:  map[string]string{},
			expected: "",
		},
		{
			name:     "single filter",
			filters:  map[string]string{"kind": "VULNERABILITY"},
			expected: `kind="VULNERABILITY"`,
		},
		{
			name: "multiple filters joined with AND in key order",
			filters: map[string]string{
				"resourceUrl": "https://gcr.io/example/image@sha256:digest",
				"kind":        "VULNERABILITY",
			},
			expected: `kind="VULNERABILITY" AND resourceUrl="https://gcr.io/example/image@sha256:digest"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual := shared.BuildFilterString(tc.filters)
			if actual != tc.expected {
				t.Errorf("BuildFilterString(%v) = %q; want %q", tc.filters, actual, tc.expected)
			}
		})
	}
}

func TestParseInstanceSelfLink(t *testing.T) {
	link, err := shared.ParseInstanceSelfLink(
		"https://www.googleapis.com/compute/v1/projects/test-project-1/zones/test-zone-1/instances/test-name")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if link.ProjectID != "test-project-1" {
		t.Errorf("ProjectID = %q; want %q", link.ProjectID, "test-project-1")
	}
	if link.Zone != "test-zone-1" {
		t.Errorf("Zone = %q; want %q", link.Zone, "test-zone-1")
	}
	if link.Name != "test-name" {
		t.Errorf("Name = %q; want %q", link.Name, "test-name")
	}
}

func TestParseInstanceSelfLinkInvalid(t *testing.T) {
	for _, input := range []string{"", "fizz-buzz", "projects/p/zones/z/instances/i"} {
		_, err := shared.ParseInstanceSelfLink(input)
		if err == nil {
			t.Errorf("ParseInstanceSelfLink(%q): expected error", input)
			continue
		}
		if !strings.Contains(err.Error(), "invalid argument") {
			t.Errorf("ParseInstanceSelfLink(%q): expected invalid argument error, got %v", input, err)
		}
	}
}
