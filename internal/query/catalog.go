package query

import "github.com/tubesift/tubesift/internal/models"

// catalogOrder is the fixed operator order. It drives the scan order of
// ParseQueryFilters and the order operators appear in the filter panel.
var catalogOrder = []models.FilterID{
	models.FilterAfter,
	models.FilterBefore,
	models.FilterInTitle,
	models.FilterExact,
	models.FilterExclude,
	models.FilterChannel,
	models.FilterHashtag,
}

// catalog maps filter ids to their descriptors. Built once, never mutated,
// safe to read from any goroutine.
var catalog = map[models.FilterID]models.FilterDescriptor{
	models.FilterAfter:   {ID: models.FilterAfter, Kind: models.KindDate, Token: "after:", Label: "After"},
	models.FilterBefore:  {ID: models.FilterBefore, Kind: models.KindDate, Token: "before:", Label: "Before"},
	models.FilterInTitle: {ID: models.FilterInTitle, Kind: models.KindText, Token: "intitle:", Label: "Title contains"},
	models.FilterExact:   {ID: models.FilterExact, Kind: models.KindText, Token: `"`, Label: "Exact phrase"},
	models.FilterExclude: {ID: models.FilterExclude, Kind: models.KindText, Token: "-", Label: "Exclude"},
	models.FilterChannel: {ID: models.FilterChannel, Kind: models.KindText, Token: "channel:", Label: "Boost Channel"},
	models.FilterHashtag: {ID: models.FilterHashtag, Kind: models.KindText, Token: "#", Label: "Hashtag"},
}

// Catalog returns all filter descriptors in fixed catalog order
func Catalog() []models.FilterDescriptor {
	descriptors := make([]models.FilterDescriptor, 0, len(catalogOrder))
	for _, id := range catalogOrder {
		descriptors = append(descriptors, catalog[id])
	}
	return descriptors
}

// Lookup returns the descriptor for the given filter id
func Lookup(id models.FilterID) (models.FilterDescriptor, bool) {
	desc, ok := catalog[id]
	return desc, ok
}
