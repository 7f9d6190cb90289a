// Package subtitles renders transcription cues into WebVTT or SRT
// documents.
//
// Rendering is deterministic: cue indices start at 1 with no gaps,
// timestamps are truncated (never rounded) to millisecond precision,
// and cue text goes through a single-pass entity escape so that
// already-escaped output is never re-encoded.
package subtitles
