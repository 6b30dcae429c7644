package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	"movequote/internal/domain/entities"
)

// Match weights, ordered by specificity. An exact name match ends the scan;
// an exact alias match is adopted and the scan continues (a later exact name
// can still win); a substring match is adopted only while nothing of equal or
// higher weight has been found.
const (
	matchWeightExactName  = 1.0
	matchWeightExactAlias = 0.9
	matchWeightSubstring  = 0.7
)

// categoryUnknown is used for detections with no catalog match.
const categoryUnknown = "Unknown"

// MatchResult is the outcome of matching one detected label against a
// tenant's catalog snapshot.
type MatchResult struct {
	Matched         bool
	CatalogItemID   string
	CatalogItemName string
	Weight          float64
	CubicFeet       *decimal.Decimal
	LaborMultiplier decimal.Decimal
	Category        string
}

// MatchCatalog maps a detected label to the best catalog entry, or reports no
// match. Pure function of (label, catalog); matching is case-insensitive only,
// not accent- or stem-aware. The catalog slice must be in a stable order
// (repositories return insertion order) so identical input always yields the
// identical match.
func MatchCatalog(label string, catalog []entities.CatalogItem) MatchResult {
	none := MatchResult{
		LaborMultiplier: decimal.NewFromInt(1),
		Category:        categoryUnknown,
	}

	detected := strings.ToLower(strings.TrimSpace(label))
	if detected == "" {
		return none
	}

	var matched *entities.CatalogItem
	bestWeight := 0.0

scan:
	for i := range catalog {
		item := &catalog[i]

		if strings.ToLower(item.Name) == detected {
			matched = item
			bestWeight = matchWeightExactName
			break scan
		}

		for _, alias := range item.Aliases {
			aliasLower := strings.ToLower(alias)
			if aliasLower == detected {
				matched = item
				bestWeight = matchWeightExactAlias
				break
			}
			if strings.Contains(detected, aliasLower) || strings.Contains(aliasLower, detected) {
				if bestWeight < matchWeightSubstring {
					matched = item
					bestWeight = matchWeightSubstring
				}
			}
		}
	}

	if matched == nil {
		return none
	}

	result := MatchResult{
		Matched:         true,
		CatalogItemID:   matched.ID,
		CatalogItemName: matched.Name,
		Weight:          bestWeight,
		LaborMultiplier: matched.LaborMultiplier,
		Category:        matched.Category,
	}
	if matched.BaseCubicFeet != nil {
		cf := *matched.BaseCubicFeet
		result.CubicFeet = &cf
	}
	if result.LaborMultiplier.IsZero() {
		result.LaborMultiplier = decimal.NewFromInt(1)
	}
	if result.Category == "" {
		result.Category = categoryUnknown
	}
	return result
}

// MapDetections runs the catalog matcher over every detection and returns the
// mapped items stored on a detection job.
func MapDetections(detections []entities.Detection, catalog []entities.CatalogItem) []entities.MappedItem {
	mapped := make([]entities.MappedItem, 0, len(detections))
	for _, d := range detections {
		match := MatchCatalog(d.Name, catalog)

		quantity := d.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		mapped = append(mapped, entities.MappedItem{
			DetectedName:    d.Name,
			Confidence:      d.Confidence,
			MatchWeight:     match.Weight,
			Quantity:        quantity,
			BoundingBox:     d.BoundingBox,
			CatalogItemID:   match.CatalogItemID,
			CatalogItemName: match.CatalogItemName,
			CubicFeet:       match.CubicFeet,
			LaborMultiplier: match.LaborMultiplier,
			Category:        match.Category,
		})
	}
	return mapped
}
