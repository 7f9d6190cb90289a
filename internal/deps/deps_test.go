package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheck(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	if err := os.WriteFile(present, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	results := Check([]Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Blank", Command: "  "},
	})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected stub binary to be available: %#v", results[0])
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}

	if results[1].Available {
		t.Fatal("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatal("expected detail message for missing binary")
	}

	if results[2].Available || results[2].Detail != "command not configured" {
		t.Fatalf("unexpected status for blank command: %#v", results[2])
	}
}

func TestRequirementsNameCoreTools(t *testing.T) {
	byCommand := map[string]Requirement{}
	for _, req := range Requirements() {
		byCommand[req.Command] = req
	}
	for _, cmd := range []string{"uvx", "ffmpeg"} {
		req, ok := byCommand[cmd]
		if !ok {
			t.Fatalf("requirement %q missing", cmd)
		}
		if req.Optional {
			t.Fatalf("%q must be required", cmd)
		}
	}
	if req, ok := byCommand["nvidia-smi"]; !ok || !req.Optional {
		t.Fatal("nvidia-smi must be listed as optional")
	}
}
