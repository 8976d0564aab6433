package service_test

import (
	"testing"
	"time"

	"github.com/Cece94/articguessr/models/aic"
	"github.com/Cece94/articguessr/models/service"
	"github.com/Cece94/articguessr/util/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScrollSession(t *testing.T) {
	filters := &aic.Filters{ArtworkType: "Painting"}
	sess := service.NewScrollSession(filters)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, filters, sess.Filters)
	assert.NotNil(t, sess.Artworks)
	assert.Empty(t, sess.Artworks)

	// IDs must differ between sessions.
	other := service.NewScrollSession(filters)
	assert.NotEqual(t, sess.ID, other.ID)
}

func TestScrollSessionJson(t *testing.T) {
	sess := service.NewScrollSession(aic.DefaultFilters())
	sess.Artworks = []*aic.Artwork{
		testutil.GetArtwork(1),
		testutil.GetArtwork(2),
	}
	sess.Page = 3
	sess.TotalPages = 12
	sess.HasMore = true
	sess.SavedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	jsonData, err := sess.ToJson()
	require.Nil(t, err)

	restored, err := service.ScrollSessionFromJson(jsonData)
	require.Nil(t, err)
	assert.Equal(t, sess, restored)
}

func TestScrollSessionFromJsonBadInput(t *testing.T) {
	_, err := service.ScrollSessionFromJson("this is not json")
	assert.NotNil(t, err)
}
