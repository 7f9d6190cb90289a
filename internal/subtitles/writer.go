package subtitles

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format selects the subtitle document flavor.
type Format int

const (
	// FormatVTT is WebVTT: a document header followed by indexed cues.
	FormatVTT Format = iota
	// FormatSRT is SubRip: the same cue structure without a header.
	FormatSRT
)

func (f Format) String() string {
	if f == FormatSRT {
		return "srt"
	}
	return "vtt"
}

// FormatForPath infers the document format from the output file
// extension. Anything other than .srt renders as WebVTT.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".srt") {
		return FormatSRT
	}
	return FormatVTT
}

// Cue is a single timed subtitle entry. Callers must guarantee
// End >= Start >= 0; rendering does not validate timing.
type Cue struct {
	Start float64
	End   float64
	Text  string
}

const vttHeader = "WEBVTT\n\n" +
	"NOTE\n" +
	"This is created by subcut, you can modify as you want, but respect the structure\n" +
	"For more ref, use: https://developer.mozilla.org/en-US/docs/Web/API/WebVTT_API/Web_Video_Text_Tracks_Format#cue_payload_text_tags\n\n"

// Write renders cues to w in the given format. Cue indices are assigned
// in slice order starting at 1. Every adjacent cue pair is separated by
// exactly one blank line.
//
// One leading space, if present, is stripped from each cue's escaped
// text: Whisper models emit segment text with a leading space.
func Write(w io.Writer, format Format, cues []Cue) error {
	bw := bufio.NewWriter(w)

	if format == FormatVTT {
		if _, err := bw.WriteString(vttHeader); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, cue := range cues {
		if i > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return fmt.Errorf("write cue separator: %w", err)
			}
		}
		text := strings.TrimPrefix(EscapeText(cue.Text), " ")
		if _, err := fmt.Fprintf(bw, "%d\n%s --> %s\n%s\n",
			i+1, FormatTimestamp(cue.Start), FormatTimestamp(cue.End), text); err != nil {
			return fmt.Errorf("write cue %d: %w", i+1, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush subtitle document: %w", err)
	}
	return nil
}
