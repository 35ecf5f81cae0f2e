package models

// FilterKind describes what kind of input a filter expects. It only informs
// the UI input widget; parsing never looks at it.
type FilterKind string

const (
	KindDate FilterKind = "date"
	KindText FilterKind = "text"
)

// FilterID identifies one supported search operator
type FilterID string

const (
	FilterAfter   FilterID = "after"
	FilterBefore  FilterID = "before"
	FilterInTitle FilterID = "intitle"
	FilterExact   FilterID = "exact"
	FilterExclude FilterID = "exclude"
	FilterChannel FilterID = "channel"
	FilterHashtag FilterID = "hashtag"
)

// FilterDescriptor is one entry of the static operator catalog
type FilterDescriptor struct {
	ID    FilterID
	Kind  FilterKind
	Token string // literal prefix or wrapper rendered into the query ("after:", "-", "#", `"`)
	Label string // display name used in preview lines and the filter panel
}

// ActiveFilter is a single user-configured operator instance. An empty or
// whitespace-only Value makes the entry inert; the value is never trimmed in
// place, trimming happens at read time.
type ActiveFilter struct {
	ID    FilterID `yaml:"id"`
	Value string   `yaml:"value"`
}

// PreviewLine is a display-only row describing one applied filter.
// Connector is "", "AND" or "NOT" relative to the previous line.
type PreviewLine struct {
	Connector string
	Label     string
	Value     string
}
