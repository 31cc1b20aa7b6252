// Package risk evaluates drug-specific safety classifications from resolved
// gene profiles.
package risk

import (
	"strings"

	"github.com/pgxguard/pgxguard/internal/catalog"
)

// Drug identifies a supported drug.
type Drug string

// Supported drugs.
const (
	Codeine        Drug = "codeine"
	Tramadol       Drug = "tramadol"
	Clopidogrel    Drug = "clopidogrel"
	Warfarin       Drug = "warfarin"
	Simvastatin    Drug = "simvastatin"
	Azathioprine   Drug = "azathioprine"
	Mercaptopurine Drug = "mercaptopurine"
	Fluorouracil   Drug = "fluorouracil"
	Capecitabine   Drug = "capecitabine"
)

// Drugs lists all supported drugs in a stable order.
func Drugs() []Drug {
	return []Drug{
		Codeine, Tramadol, Clopidogrel, Warfarin, Simvastatin,
		Azathioprine, Mercaptopurine, Fluorouracil, Capecitabine,
	}
}

// ParseDrug returns the Drug matching the given name (case-insensitive).
func ParseDrug(name string) (Drug, bool) {
	d := Drug(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := drugProfiles[d]; ok {
		return d, true
	}
	return "", false
}

// Gene returns the primary pharmacogene for the drug.
func (d Drug) Gene() catalog.Gene {
	return drugProfiles[d].gene
}

// Label is the risk classification for a (drug, phenotype) pair.
type Label string

// Risk labels.
const (
	Safe         Label = "Safe"
	AdjustDosage Label = "Adjust Dosage"
	Toxic        Label = "Toxic"
	Ineffective  Label = "Ineffective"
	Unknown      Label = "Unknown"
)

// Severity is the clinical severity tier of a risk classification.
type Severity string

// Severity tiers, lowest to highest.
const (
	SeverityNone     Severity = "none"
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityRank = map[Severity]int{
	SeverityNone:     0,
	SeverityLow:      1,
	SeverityModerate: 2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Escalate returns the next severity tier, or the same tier when already at
// the maximum.
func (s Severity) Escalate() Severity {
	switch s {
	case SeverityNone:
		return SeverityLow
	case SeverityLow:
		return SeverityModerate
	case SeverityModerate:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}

// AtLeast reports whether s is at or above the given tier.
func (s Severity) AtLeast(other Severity) bool {
	return severityRank[s] >= severityRank[other]
}
