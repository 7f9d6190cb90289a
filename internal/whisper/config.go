package whisper

import "subcut/internal/gpu"

// Config captures the per-run transcription settings.
type Config struct {
	// Model is the Whisper model name (e.g. "base", "large-v3").
	Model string
	// Language is the ISO 639-1 language code for transcription.
	Language string
	// Accelerator selects the inference device.
	Accelerator gpu.Accelerator
	// ModelCacheDir is locked for the duration of the run so that
	// concurrent subcut invocations don't race a model download.
	ModelCacheDir string
	// HFToken is passed through for gated model distributions.
	HFToken string
}

// Invocation constants.
const (
	UVXCommand    = "uvx"
	FFmpegCommand = "ffmpeg"

	whisperPackage = "whisperx"
	outputFormat   = "json"

	// CPUComputeType avoids the float16 kernels CPUs lack.
	CPUComputeType = "float32"
)
