// Package deps reports the availability of the external binaries
// subcut shells out to.
package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines one external tool dependency.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Requirements lists the tools the gen pipeline and the device probe
// rely on.
func Requirements() []Requirement {
	return []Requirement{
		{
			Name:        "uvx",
			Command:     "uvx",
			Description: "Runs the Whisper transcription model",
		},
		{
			Name:        "FFmpeg",
			Command:     "ffmpeg",
			Description: "Extracts audio from video inputs",
		},
		{
			Name:        "nvidia-smi",
			Command:     "nvidia-smi",
			Description: "GPU detection fallback; CPU works without it",
			Optional:    true,
		},
	}
}

// Check evaluates the provided requirements and reports availability.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
