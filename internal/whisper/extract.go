package whisper

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// NeedsExtraction reports whether source must go through ffmpeg before
// transcription. WAV input is passed to the model as is.
func NeedsExtraction(source string) bool {
	return !strings.EqualFold(filepath.Ext(source), ".wav")
}

// ExtractAudio extracts the first audio stream from source into a mono
// 16kHz WAV file at dest, the input format the Whisper tooling expects.
func (s *Service) ExtractAudio(ctx context.Context, source, dest string) error {
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", source,
		"-map", "0:a:0",
		"-vn",
		"-sn",
		"-dn",
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "pcm_s16le",
		dest,
	}
	if s.commandRunner != nil {
		return s.commandRunner(ctx, FFmpegCommand, args...)
	}
	cmd := exec.CommandContext(ctx, FFmpegCommand, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg extract: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
