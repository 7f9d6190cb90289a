package models

import "testing"

func TestIsHighEnd(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"base", false},
		{"tiny", false},
		{"small", false},
		{"small.en", false},
		{"medium", true},
		{"medium.en", true},
		{"large-v1", true},
		{"large-v2", true},
		{"large-v3", true},
		{"large-v3-turbo", true},
		{"", false},
		{"unknown-model", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHighEnd(tt.name); got != tt.expected {
				t.Errorf("IsHighEnd(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestCatalogCoversHighEndEntries(t *testing.T) {
	known := map[string]struct{}{}
	for _, entry := range Catalog {
		known[entry.Name] = struct{}{}
	}
	for name := range highEnd {
		if _, ok := known[name]; !ok {
			t.Errorf("high-end model %q missing from catalog", name)
		}
	}
	for name := range highEndEnglish {
		if _, ok := known[name]; !ok {
			t.Errorf("high-end English model %q missing from catalog", name)
		}
	}
}
