package domain

import "strings"

// Canonical sector labels. The sector string is the key used to select
// the zone index at lookup time, so classification (from file names) and
// normalization (from record text) must agree on these spellings.
const (
	SectorRetail     = "Retail"
	SectorOffice     = "Office"
	SectorIndustrial = "Industrial & Logistics"
)

// SectorFromFilename infers the sector of a zone-definition file from its
// name. Files carrying freguesia data and unrecognized files report
// ok=false and are excluded from zone indexing. Keyword priority is
// fixed: retail before office before industrial.
func SectorFromFilename(filename string) (string, bool) {
	fn := strings.ToLower(filename)
	if strings.Contains(fn, "freguesia") {
		return "", false
	}
	if strings.Contains(fn, "hsr") || strings.Contains(fn, "retail") {
		return SectorRetail, true
	}
	if strings.Contains(fn, "office") {
		return SectorOffice, true
	}
	if strings.Contains(fn, "industrial") || strings.Contains(fn, "logistics") {
		return SectorIndustrial, true
	}
	return "", false
}

// NormalizeSector folds free-text sector values from input records onto
// the canonical labels, using the same keyword rules as
// SectorFromFilename. Unrecognized text passes through trimmed but
// otherwise unchanged; callers treat a sector without a built index as
// "no zone match", not as an error.
func NormalizeSector(raw string) string {
	trimmed := strings.TrimSpace(raw)
	s := strings.ToLower(trimmed)
	if strings.Contains(s, "hsr") || strings.Contains(s, "retail") {
		return SectorRetail
	}
	if strings.Contains(s, "office") {
		return SectorOffice
	}
	if strings.Contains(s, "industrial") || strings.Contains(s, "logistics") {
		return SectorIndustrial
	}
	return trimmed
}
