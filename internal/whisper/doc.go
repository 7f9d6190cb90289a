// Package whisper wraps the external Whisper transcription tooling.
//
// The model is an opaque external collaborator: subcut invokes it
// through uvx, waits for it to finish, and reads the JSON segment
// output it leaves behind. There is no retry, timeout, or partial
// result handling; any failure propagates to the caller untouched.
// The segment list is fully materialized before serialization starts.
package whisper
