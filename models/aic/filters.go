package aic

import (
	"net/url"
	"strconv"

	"github.com/Cece94/articguessr/constants"
	"github.com/Cece94/articguessr/util"
)

// YearRange is an inclusive year filter. Start may be negative for BCE.
type YearRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Filters holds the explore page's filter state. Nil pointer fields
// mean "not set, use the default". Filters are replaced wholesale on
// every change, never mutated in place.
type Filters struct {
	ArtworkType    string     `json:"artwork_type,omitempty"`
	CultureOrStyle string     `json:"culture_or_style,omitempty"`
	YearRange      *YearRange `json:"year_range,omitempty"`
	Page           int        `json:"page,omitempty"`
	Limit          int        `json:"limit,omitempty"`
}

// DefaultFilters returns the canonical default filter state:
// first page, twenty items, no constraints.
func DefaultFilters() *Filters {
	return &Filters{
		Page:  constants.DefaultPage,
		Limit: constants.DefaultLimit,
	}
}

// IsValidArtworkType reports whether value is a member of the closed
// artwork type set. Matching is exact, including case.
func IsValidArtworkType(value string) bool {
	return util.StringListContains(constants.ArtworkTypes, value)
}

// IsValidCultureOrStyle reports whether value is a member of the closed
// culture/style set.
func IsValidCultureOrStyle(value string) bool {
	return util.StringListContains(constants.CultureOrStyles, value)
}

// PageOrDefault returns the page to request, substituting the default
// when unset.
func (f *Filters) PageOrDefault() int {
	if f.Page > 0 {
		return f.Page
	}
	return constants.DefaultPage
}

// LimitOrDefault returns the page size to request, substituting the
// default when unset.
func (f *Filters) LimitOrDefault() int {
	if f.Limit > 0 {
		return f.Limit
	}
	return constants.DefaultLimit
}

// HasAdvanced reports whether any advanced filter is active. Advanced
// filters force the search endpoint, since the plain listing endpoint
// can't express them.
func (f *Filters) HasAdvanced() bool {
	return f.ArtworkType != "" || f.CultureOrStyle != "" || f.YearRange != nil
}

// IsDefault reports whether this filter state is indistinguishable
// from DefaultFilters.
func (f *Filters) IsDefault() bool {
	return !f.HasAdvanced() &&
		f.PageOrDefault() == constants.DefaultPage &&
		f.LimitOrDefault() == constants.DefaultLimit
}

// Encode converts filters to query params for a shareable explore URL.
// Only non-default fields are emitted: page is omitted when 1, limit
// when 20, and the year range serializes as two separate bounds.
func (f *Filters) Encode() url.Values {
	params := url.Values{}
	if f.ArtworkType != "" {
		params.Set(constants.ParamArtworkType, f.ArtworkType)
	}
	if f.CultureOrStyle != "" {
		params.Set(constants.ParamCultureOrStyle, f.CultureOrStyle)
	}
	if f.YearRange != nil {
		params.Set(constants.ParamYearStart, strconv.Itoa(f.YearRange.Start))
		params.Set(constants.ParamYearEnd, strconv.Itoa(f.YearRange.End))
	}
	if f.Page > constants.DefaultPage {
		params.Set(constants.ParamPage, strconv.Itoa(f.Page))
	}
	if f.Limit > 0 && f.Limit != constants.DefaultLimit {
		params.Set(constants.ParamLimit, strconv.Itoa(f.Limit))
	}
	return params
}

// DecodeFilters is the inverse of Encode. Bad input never errors:
// unknown enum values, malformed or non-positive integers, and
// half-open year ranges are silently dropped so that a mangled
// bookmark degrades to fewer filters instead of a broken page.
func DecodeFilters(params url.Values) *Filters {
	filters := &Filters{}

	if artworkType := params.Get(constants.ParamArtworkType); IsValidArtworkType(artworkType) {
		filters.ArtworkType = artworkType
	}
	if cultureOrStyle := params.Get(constants.ParamCultureOrStyle); IsValidCultureOrStyle(cultureOrStyle) {
		filters.CultureOrStyle = cultureOrStyle
	}

	// An incomplete range is dropped entirely, not half-applied.
	yearStart := params.Get(constants.ParamYearStart)
	yearEnd := params.Get(constants.ParamYearEnd)
	if yearStart != "" && yearEnd != "" {
		start, startErr := strconv.Atoi(yearStart)
		end, endErr := strconv.Atoi(yearEnd)
		if startErr == nil && endErr == nil {
			filters.YearRange = &YearRange{Start: start, End: end}
		}
	}

	if page, err := strconv.Atoi(params.Get(constants.ParamPage)); err == nil && page > 0 {
		filters.Page = page
	}
	if limit, err := strconv.Atoi(params.Get(constants.ParamLimit)); err == nil && limit > 0 {
		filters.Limit = limit
	}
	return filters
}

// BuildURL appends the encoded filter state to basePath. Default or
// empty filter state yields basePath unchanged.
func (f *Filters) BuildURL(basePath string) string {
	queryString := f.Encode().Encode()
	if queryString == "" {
		return basePath
	}
	return basePath + "?" + queryString
}
