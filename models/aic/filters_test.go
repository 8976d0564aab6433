package aic_test

import (
	"net/url"
	"testing"

	"github.com/Cece94/articguessr/models/aic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFilters(t *testing.T) {
	filters := aic.DefaultFilters()
	assert.Equal(t, 1, filters.Page)
	assert.Equal(t, 20, filters.Limit)
	assert.Empty(t, filters.ArtworkType)
	assert.Empty(t, filters.CultureOrStyle)
	assert.Nil(t, filters.YearRange)
	assert.True(t, filters.IsDefault())
	assert.False(t, filters.HasAdvanced())
}

func TestEnumValidation(t *testing.T) {
	assert.True(t, aic.IsValidArtworkType("Painting"))
	assert.True(t, aic.IsValidArtworkType("Drawing and Watercolor"))
	assert.False(t, aic.IsValidArtworkType("painting")) // case matters
	assert.False(t, aic.IsValidArtworkType("Fresco"))
	assert.False(t, aic.IsValidArtworkType(""))

	assert.True(t, aic.IsValidCultureOrStyle("Impressionism"))
	assert.True(t, aic.IsValidCultureOrStyle("edo (japanese period)"))
	assert.False(t, aic.IsValidCultureOrStyle("Brutalism"))
	assert.False(t, aic.IsValidCultureOrStyle(""))
}

func TestEncode(t *testing.T) {
	filters := &aic.Filters{
		ArtworkType:    "Painting",
		CultureOrStyle: "Impressionism",
		YearRange:      &aic.YearRange{Start: -500, End: 1900},
		Page:           3,
		Limit:          40,
	}
	params := filters.Encode()
	assert.Equal(t, "Painting", params.Get("artworkType"))
	assert.Equal(t, "Impressionism", params.Get("cultureOrStyle"))
	assert.Equal(t, "-500", params.Get("yearStart"))
	assert.Equal(t, "1900", params.Get("yearEnd"))
	assert.Equal(t, "3", params.Get("page"))
	assert.Equal(t, "40", params.Get("limit"))
}

func TestEncodeOmitsDefaults(t *testing.T) {
	params := aic.DefaultFilters().Encode()
	assert.Empty(t, params)

	// Page 1 and limit 20 are the defaults and stay out of the URL.
	params = (&aic.Filters{Page: 1, Limit: 20}).Encode()
	assert.Empty(t, params)

	params = (&aic.Filters{Page: 2}).Encode()
	assert.Equal(t, "2", params.Get("page"))
	assert.Empty(t, params.Get("limit"))
}

func TestDecodeFilters(t *testing.T) {
	params := url.Values{}
	params.Set("artworkType", "Sculpture")
	params.Set("cultureOrStyle", "Cubism")
	params.Set("yearStart", "1900")
	params.Set("yearEnd", "1950")
	params.Set("page", "4")
	params.Set("limit", "10")

	filters := aic.DecodeFilters(params)
	assert.Equal(t, "Sculpture", filters.ArtworkType)
	assert.Equal(t, "Cubism", filters.CultureOrStyle)
	require.NotNil(t, filters.YearRange)
	assert.Equal(t, 1900, filters.YearRange.Start)
	assert.Equal(t, 1950, filters.YearRange.End)
	assert.Equal(t, 4, filters.Page)
	assert.Equal(t, 10, filters.Limit)
}

func TestDecodeDropsInvalidEnums(t *testing.T) {
	params := url.Values{}
	params.Set("artworkType", "invalid")
	params.Set("cultureOrStyle", "also invalid")

	filters := aic.DecodeFilters(params)
	assert.Empty(t, filters.ArtworkType)
	assert.Empty(t, filters.CultureOrStyle)
}

func TestDecodeDropsMalformedNumbers(t *testing.T) {
	params := url.Values{}
	params.Set("page", "two")
	params.Set("limit", "-5")
	params.Set("yearStart", "MCMXII")
	params.Set("yearEnd", "1950")

	filters := aic.DecodeFilters(params)
	assert.Zero(t, filters.Page)
	assert.Zero(t, filters.Limit)
	assert.Nil(t, filters.YearRange)
}

func TestDecodeDropsHalfOpenYearRange(t *testing.T) {
	params := url.Values{}
	params.Set("yearStart", "1900")
	filters := aic.DecodeFilters(params)
	assert.Nil(t, filters.YearRange)

	params = url.Values{}
	params.Set("yearEnd", "1950")
	filters = aic.DecodeFilters(params)
	assert.Nil(t, filters.YearRange)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	originals := []*aic.Filters{
		{ArtworkType: "Painting"},
		{CultureOrStyle: "Pop Art", Page: 7},
		{YearRange: &aic.YearRange{Start: -55, End: 40}},
		{ArtworkType: "Textile", CultureOrStyle: "qing", YearRange: &aic.YearRange{Start: 1600, End: 1700}, Page: 2, Limit: 50},
	}
	for _, original := range originals {
		restored := aic.DecodeFilters(original.Encode())
		assert.Equal(t, original.ArtworkType, restored.ArtworkType)
		assert.Equal(t, original.CultureOrStyle, restored.CultureOrStyle)
		assert.Equal(t, original.YearRange, restored.YearRange)
		assert.Equal(t, original.PageOrDefault(), restored.PageOrDefault())
		assert.Equal(t, original.LimitOrDefault(), restored.LimitOrDefault())
	}
}

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "/explore", aic.DefaultFilters().BuildURL("/explore"))

	filters := &aic.Filters{ArtworkType: "Painting", Page: 2}
	assert.Equal(t, "/explore?artworkType=Painting&page=2", filters.BuildURL("/explore"))
}

func TestHasAdvanced(t *testing.T) {
	assert.False(t, (&aic.Filters{Page: 5, Limit: 100}).HasAdvanced())
	assert.True(t, (&aic.Filters{ArtworkType: "Painting"}).HasAdvanced())
	assert.True(t, (&aic.Filters{CultureOrStyle: "ming"}).HasAdvanced())
	assert.True(t, (&aic.Filters{YearRange: &aic.YearRange{Start: 1, End: 2}}).HasAdvanced())
}
