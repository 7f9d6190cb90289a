package main

import (
	"path/filepath"
	"strings"
	"testing"

	"subcut/internal/console"
	"subcut/internal/gpu"
)

type fakeConfirmer struct {
	answer   bool
	prompted bool
}

func (f *fakeConfirmer) Confirm(prompt string) bool {
	f.prompted = true
	return f.answer
}

func TestResolveModel(t *testing.T) {
	cpu := gpu.Decision{Accelerator: gpu.AcceleratorCPU}
	cuda := gpu.Decision{Accelerator: gpu.AcceleratorCUDA}

	tests := []struct {
		name       string
		model      string
		decision   gpu.Decision
		answer     bool
		expected   string
		wantPrompt bool
	}{
		{"lightweight model on cpu passes through", "base", cpu, true, "base", false},
		{"high-end on cuda passes through", "large-v3", cuda, true, "large-v3", false},
		{"high-end on cpu accepted downgrade", "large-v3", cpu, true, "base", true},
		{"high-end on cpu declined keeps model", "large-v3", cpu, false, "large-v3", true},
		{"english high-end on cpu", "medium.en", cpu, true, "base", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			printer := console.NewPrinter(&out)
			confirmer := &fakeConfirmer{answer: tt.answer}

			got := resolveModel(tt.model, tt.decision, printer, confirmer)
			if got != tt.expected {
				t.Fatalf("resolveModel = %q, want %q", got, tt.expected)
			}
			if confirmer.prompted != tt.wantPrompt {
				t.Fatalf("prompted = %v, want %v", confirmer.prompted, tt.wantPrompt)
			}
			if tt.wantPrompt && !strings.Contains(out.String(), "WARNING:") {
				t.Fatalf("expected warning before prompt, got %q", out.String())
			}
		})
	}
}

func TestResolveOutputPath(t *testing.T) {
	dir := t.TempDir()

	path, err := resolveOutputPath(filepath.Join(dir, "out.vtt"))
	if err != nil {
		t.Fatalf("resolveOutputPath: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Fatalf("expected absolute path, got %q", path)
	}

	if _, err := resolveOutputPath(""); err == nil {
		t.Fatal("expected error for empty output path")
	}
	if _, err := resolveOutputPath(filepath.Join(dir, "missing", "out.vtt")); err == nil {
		t.Fatal("expected error for missing output directory")
	}
}

func TestGenCommandRequiresPositionalArg(t *testing.T) {
	cmd := newGenCommand(newCommandContext(nil))
	if err := cmd.Args(cmd, nil); err == nil {
		t.Fatal("expected arg validation error")
	}
	if err := cmd.Args(cmd, []string{"talk.mp4"}); err != nil {
		t.Fatalf("single arg must pass validation: %v", err)
	}
}
