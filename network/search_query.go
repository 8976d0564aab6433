package network

import (
	"encoding/json"

	"github.com/Cece94/articguessr/constants"
	"github.com/Cece94/articguessr/models/aic"
)

// SearchQuery is the JSON body for the AIC search endpoint: an
// elasticsearch-style boolean query plus the usual fields/page/limit.
type SearchQuery struct {
	Query  BoolWrapper `json:"query"`
	Fields []string    `json:"fields"`
	Page   int         `json:"page"`
	Limit  int         `json:"limit"`
}

type BoolWrapper struct {
	Bool MustClauses `json:"bool"`
}

type MustClauses struct {
	Must []Clause `json:"must"`
}

// Clause is either a term clause or a range clause, never both.
type Clause struct {
	Term  map[string]string    `json:"term,omitempty"`
	Range map[string]RangeTest `json:"range,omitempty"`
}

type RangeTest struct {
	GTE *int `json:"gte,omitempty"`
	LTE *int `json:"lte,omitempty"`
}

func TermClause(field, value string) Clause {
	return Clause{Term: map[string]string{field: value}}
}

func RangeGTE(field string, value int) Clause {
	v := value
	return Clause{Range: map[string]RangeTest{field: {GTE: &v}}}
}

func RangeLTE(field string, value int) Clause {
	v := value
	return Clause{Range: map[string]RangeTest{field: {LTE: &v}}}
}

// BuildSearchQuery translates advanced filters into a conjunction of
// term and range clauses. The year range matches works whose own span
// overlaps the requested range; it does not require containment.
func BuildSearchQuery(filters *aic.Filters) *SearchQuery {
	must := make([]Clause, 0, 4)
	if filters.ArtworkType != "" {
		must = append(must, TermClause(constants.FieldArtworkTypeKeyword, filters.ArtworkType))
	}
	if filters.CultureOrStyle != "" {
		must = append(must, TermClause(constants.FieldStyleKeyword, filters.CultureOrStyle))
	}
	if filters.YearRange != nil {
		must = append(must, RangeGTE(constants.FieldDateEnd, filters.YearRange.Start))
		must = append(must, RangeLTE(constants.FieldDateStart, filters.YearRange.End))
	}
	return &SearchQuery{
		Query:  BoolWrapper{Bool: MustClauses{Must: must}},
		Fields: constants.RequiredFields,
		Page:   filters.PageOrDefault(),
		Limit:  filters.LimitOrDefault(),
	}
}

func (q *SearchQuery) ToJSON() ([]byte, error) {
	return json.Marshal(q)
}
