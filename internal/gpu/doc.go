// Package gpu decides whether CUDA acceleration is usable before the
// transcription model loads.
//
// Detection runs an ordered cascade of probes, each returning a
// tri-state result: affirmative (available or unavailable),
// inconclusive, or a fatal error. The first conclusive probe wins.
// When every probe is inconclusive the decision falls back to CPU
// silently; a fatal error means the GPU is present but broken (for
// example a driver mismatch) and the run must abort rather than fall
// back.
package gpu
