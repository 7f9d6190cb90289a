// Package models catalogs the Whisper model variants subcut accepts
// and classifies which of them are too heavy for CPU-only inference.
package models

// DefaultModel is the lightweight model offered when a high-end
// selection has to run on CPU.
const DefaultModel = "base"

// Entry describes one model variant in the catalog.
type Entry struct {
	Name        string
	Description string
}

// Catalog lists the model variants in ascending resource order.
// English-only variants carry the ".en" suffix.
var Catalog = []Entry{
	{Name: "tiny", Description: "Fastest, lowest accuracy"},
	{Name: "tiny.en", Description: "English-only tiny"},
	{Name: "base", Description: "Default balance of speed and accuracy"},
	{Name: "base.en", Description: "English-only base"},
	{Name: "small", Description: "Better accuracy, slower"},
	{Name: "small.en", Description: "English-only small"},
	{Name: "medium", Description: "High accuracy, GPU recommended"},
	{Name: "medium.en", Description: "English-only medium, GPU recommended"},
	{Name: "large-v1", Description: "Legacy large"},
	{Name: "large-v2", Description: "Large, GPU strongly recommended"},
	{Name: "large-v3", Description: "Best accuracy, GPU strongly recommended"},
	{Name: "large-v3-turbo", Description: "Large with faster decoding, GPU strongly recommended"},
}

// highEnd flags multilingual variants unsuitable for CPU-only runs.
var highEnd = map[string]struct{}{
	"medium":         {},
	"large-v1":       {},
	"large-v2":       {},
	"large-v3":       {},
	"large-v3-turbo": {},
}

// highEndEnglish flags the English-only variants with the same problem.
var highEndEnglish = map[string]struct{}{
	"medium.en": {},
}

// IsHighEnd reports whether the named model is flagged as
// resource-intensive on either the multilingual or English-only list.
func IsHighEnd(name string) bool {
	if _, ok := highEnd[name]; ok {
		return true
	}
	_, ok := highEndEnglish[name]
	return ok
}
