package models

// Direction is the expected price impact of a news item on a symbol.
type Direction string

const (
	ImpactUp   Direction = "up"
	ImpactDown Direction = "down"
)

// -----------------------------------------------------------------------------

// MNewsItem is one market news entry with its per-symbol impact map.
type MNewsItem struct {
	Headline    string               `json:"headline"`
	Explanation string               `json:"explanation"`
	Impact      map[string]Direction `json:"impact"`
}
