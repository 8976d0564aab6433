package network_test

import (
	"testing"

	"github.com/Cece94/articguessr/models/aic"
	"github.com/Cece94/articguessr/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSearchQuery(t *testing.T) {
	filters := &aic.Filters{
		ArtworkType:    "Painting",
		CultureOrStyle: "Impressionism",
		YearRange:      &aic.YearRange{Start: 1870, End: 1890},
		Page:           2,
		Limit:          12,
	}
	query := network.BuildSearchQuery(filters)
	assert.Equal(t, 2, query.Page)
	assert.Equal(t, 12, query.Limit)
	require.Len(t, query.Query.Bool.Must, 4)
	assert.Equal(t, "Painting", query.Query.Bool.Must[0].Term["artwork_type_title.keyword"])
	assert.Equal(t, "Impressionism", query.Query.Bool.Must[1].Term["style_title.keyword"])
	assert.Equal(t, 1870, *query.Query.Bool.Must[2].Range["date_end"].GTE)
	assert.Equal(t, 1890, *query.Query.Bool.Must[3].Range["date_start"].LTE)
}

func TestBuildSearchQueryPartial(t *testing.T) {
	query := network.BuildSearchQuery(&aic.Filters{ArtworkType: "Print"})
	require.Len(t, query.Query.Bool.Must, 1)
	assert.Equal(t, 1, query.Page)
	assert.Equal(t, 20, query.Limit)
}

func TestSearchQueryToJSON(t *testing.T) {
	query := network.BuildSearchQuery(&aic.Filters{
		YearRange: &aic.YearRange{Start: 1900, End: 1910},
	})
	data, err := query.ToJSON()
	require.Nil(t, err)
	str := string(data)
	assert.Contains(t, str, `"range":{"date_end":{"gte":1900}}`)
	assert.Contains(t, str, `"range":{"date_start":{"lte":1910}}`)
	assert.NotContains(t, str, `"term"`)
}
