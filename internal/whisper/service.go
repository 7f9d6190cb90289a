package whisper

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"subcut/internal/gpu"
)

// Segment is one timed span of transcribed speech. Segments arrive
// ordered by start time and are consumed exactly once.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

type payload struct {
	Segments []Segment `json:"segments"`
}

// Service invokes the Whisper tooling for one run.
type Service struct {
	cfg           Config
	commandRunner func(ctx context.Context, name string, args ...string) error
}

// NewService creates a transcription service with the given
// configuration.
func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	s.commandRunner = runner
}

// Transcribe runs the model over source and returns the materialized
// segment list. outputDir is where the tooling writes its JSON output;
// it must exist. The call blocks for the entire inference.
func (s *Service) Transcribe(ctx context.Context, source, outputDir string) ([]Segment, error) {
	if source == "" {
		return nil, fmt.Errorf("transcribe: source path required")
	}
	if outputDir == "" {
		outputDir = filepath.Dir(source)
	}

	if s.cfg.ModelCacheDir != "" {
		lock := flock.New(filepath.Join(s.cfg.ModelCacheDir, ".subcut.lock"))
		if err := lock.Lock(); err != nil {
			return nil, fmt.Errorf("lock model cache: %w", err)
		}
		defer lock.Unlock()
	}

	if err := s.run(ctx, UVXCommand, s.buildArgs(source, outputDir)...); err != nil {
		return nil, fmt.Errorf("whisper: %w", err)
	}

	baseName := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return LoadSegments(filepath.Join(outputDir, baseName+".json"))
}

func (s *Service) buildArgs(source, outputDir string) []string {
	args := []string{
		whisperPackage,
		source,
		"--model", s.cfg.Model,
		"--output_dir", outputDir,
		"--output_format", outputFormat,
	}
	if s.cfg.Language != "" {
		args = append(args, "--language", s.cfg.Language)
	}
	args = append(args, "--device", string(s.cfg.Accelerator))
	if s.cfg.Accelerator != gpu.AcceleratorCUDA {
		args = append(args, "--compute_type", CPUComputeType)
	}
	if s.cfg.HFToken != "" {
		args = append(args, "--hf_token", s.cfg.HFToken)
	}
	return args
}

func (s *Service) run(ctx context.Context, name string, args ...string) error {
	if s.commandRunner != nil {
		return s.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	if s.cfg.ModelCacheDir != "" {
		cmd.Env = append(os.Environ(), "HF_HOME="+s.cfg.ModelCacheDir)
	}
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// LoadSegments loads segments from the model's JSON output file.
func LoadSegments(jsonPath string) ([]Segment, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse whisper json: %w", err)
	}
	return p.Segments, nil
}
