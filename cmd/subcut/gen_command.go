package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"subcut/internal/console"
	"subcut/internal/gpu"
	"subcut/internal/language"
	"subcut/internal/logging"
	"subcut/internal/models"
	"subcut/internal/subtitles"
	"subcut/internal/whisper"
)

// exitProbeFailure is the status for a GPU that is present but broken.
// Distinct from the generic failure status so scripts can tell a
// driver problem from a transcription problem.
const exitProbeFailure = 2

func newGenCommand(ctx *commandContext) *cobra.Command {
	var modelFlag string
	var languageFlag string
	var outputFlag string
	var deviceFlag string

	cmd := &cobra.Command{
		Use:   "gen <audio-file>",
		Short: "Generate a subtitle file (vtt/srt) from an audio or video file",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("provide the audio or video file to transcribe. Example: subcut gen talk.mp4 -o talk.vtt")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, ctx, args[0], genOptions{
				model:    modelFlag,
				language: languageFlag,
				output:   outputFlag,
				device:   deviceFlag,
			})
		},
	}

	cmd.Flags().StringVarP(&modelFlag, "model", "m", "", `Model size (default "base", see subcut models)`)
	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", `Language code (default "en")`)
	cmd.Flags().StringVarP(&outputFlag, "output_file", "o", "", "Output file; format inferred from extension (vtt/srt)")
	cmd.Flags().StringVar(&deviceFlag, "device", "", `Device preference (default "cuda"; the GPU probe has the final say)`)
	_ = cmd.MarkFlagRequired("output_file")

	return cmd
}

type genOptions struct {
	model    string
	language string
	output   string
	device   string
}

func runGen(cmd *cobra.Command, ctx *commandContext, source string, opts genOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	printer := console.NewPrinter(cmd.OutOrStdout())

	source = strings.TrimSpace(source)
	if source == "" {
		return fmt.Errorf("source file path is required")
	}
	source, _ = filepath.Abs(source)
	info, err := os.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("source file %q not found", source)
		}
		return fmt.Errorf("stat source: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("source path %q is a directory", source)
	}

	outputPath, err := resolveOutputPath(opts.output)
	if err != nil {
		return err
	}

	model := strings.TrimSpace(opts.model)
	if model == "" {
		model = cfg.Whisper.Model
	}
	langInput := strings.TrimSpace(opts.language)
	if langInput == "" {
		langInput = cfg.Whisper.Language
	}
	langCode := language.Normalize(langInput)
	if langCode == "" {
		return fmt.Errorf("unrecognized language %q", langInput)
	}

	device := strings.TrimSpace(strings.ToLower(opts.device))
	if device == "" {
		device = cfg.Whisper.Device
	}
	if device != string(gpu.AcceleratorCUDA) && device != string(gpu.AcceleratorCPU) {
		return fmt.Errorf("unsupported device %q (expected cuda or cpu)", device)
	}

	// The probe has the final say over the requested device: CUDA is
	// only used when detection confirms it, and a broken GPU runtime
	// aborts the run even when cpu was requested.
	decision := gpu.Detect()
	if decision.Fatal() {
		printer.Error("%v", decision.Err)
		os.Exit(exitProbeFailure)
	}
	if device == string(gpu.AcceleratorCPU) {
		decision.Accelerator = gpu.AcceleratorCPU
	}
	logger.Info("device selected",
		logging.String("accelerator", string(decision.Accelerator)),
		logging.String("probe", decision.Probe),
	)

	model = resolveModel(model, decision, printer, genConfirmer(cmd))

	workDir := filepath.Join(cfg.Paths.WorkDir, "gen-"+uuid.NewString())
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return fmt.Errorf("create work directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	service := whisper.NewService(whisper.Config{
		Model:         model,
		Language:      langCode,
		Accelerator:   decision.Accelerator,
		ModelCacheDir: cfg.Paths.ModelCacheDir,
		HFToken:       cfg.Whisper.HFToken,
	})

	audioPath := source
	if whisper.NeedsExtraction(source) {
		audioPath = filepath.Join(workDir, "audio.wav")
		logger.Info("extracting audio", logging.String("source", source))
		if err := service.ExtractAudio(cmd.Context(), source, audioPath); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Transcribing %s...\n", source)
	segments, err := service.Transcribe(cmd.Context(), audioPath, workDir)
	if err != nil {
		return err
	}
	logger.Info("transcription complete", logging.Int("segments", len(segments)))

	cues := make([]subtitles.Cue, 0, len(segments))
	for _, segment := range segments {
		cues = append(cues, subtitles.Cue{Start: segment.Start, End: segment.End, Text: segment.Text})
	}

	// The output file is only opened once transcription has succeeded,
	// so a failed run never leaves a partial document behind.
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer file.Close()

	if err := subtitles.Write(file, subtitles.FormatForPath(outputPath), cues); err != nil {
		return err
	}

	printer.Done("file generated at path %s", outputPath)
	return nil
}

// resolveModel applies the CPU downgrade policy: a high-end model on
// CPU triggers a warning and a confirmation prompt, and only an
// explicit decline keeps the original selection.
func resolveModel(model string, decision gpu.Decision, printer *console.Printer, confirmer console.Confirmer) string {
	if decision.Accelerator != gpu.AcceleratorCPU {
		return model
	}
	if !models.IsHighEnd(model) {
		return model
	}
	printer.Warning("High-end models not recommended. May cause instability on lower-end hardware, use at your own risk")
	if confirmer.Confirm("Use base model for faster results? [y/n]: ") {
		return models.DefaultModel
	}
	return model
}

// resolveOutputPath validates the output flag and checks that the
// target directory is writable before any expensive work starts.
func resolveOutputPath(output string) (string, error) {
	output = strings.TrimSpace(output)
	if output == "" {
		return "", fmt.Errorf("output file path is required")
	}
	output, err := filepath.Abs(output)
	if err != nil {
		return "", fmt.Errorf("resolve output path: %w", err)
	}
	dir := filepath.Dir(output)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "", fmt.Errorf("output directory %q does not exist", dir)
	}
	if err := unix.Access(dir, unix.W_OK); err != nil {
		return "", fmt.Errorf("output directory %q is not writable: %w", dir, err)
	}
	return output, nil
}

func genConfirmer(cmd *cobra.Command) console.Confirmer {
	return console.NewConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
}
