package testutil

import (
	"encoding/json"
	"fmt"

	"github.com/Cece94/articguessr/models/aic"
	"github.com/Cece94/articguessr/network"
)

// StrPtr and IntPtr make building records with nullable fields bearable.
func StrPtr(s string) *string {
	return &s
}

func IntPtr(i int) *int {
	return &i
}

// GetRawArtwork returns a fully-populated raw record with predictable
// values derived from id.
func GetRawArtwork(id int) *aic.RawArtwork {
	return &aic.RawArtwork{
		ID:              id,
		ImageID:         StrPtr(fmt.Sprintf("image-%d", id)),
		Title:           fmt.Sprintf("Artwork %d", id),
		ArtistTitle:     StrPtr(fmt.Sprintf("Artist %d", id)),
		DateDisplay:     StrPtr("1889"),
		DateStart:       IntPtr(1885),
		DateEnd:         IntPtr(1889),
		StyleTitle:      StrPtr("Post-Impressionism"),
		DepartmentTitle: StrPtr("European Painting and Sculpture"),
		MediumDisplay:   StrPtr("Oil on canvas"),
		IsPublicDomain:  true,
		Thumbnail: &aic.Thumbnail{
			LQIP:    "data:image/gif;base64,R0lGOD",
			Width:   843,
			Height:  1000,
			AltText: "A painting.",
		},
	}
}

// GetRawArtworkNoImage returns a raw record whose image_id is null.
func GetRawArtworkNoImage(id int) *aic.RawArtwork {
	raw := GetRawArtwork(id)
	raw.ImageID = nil
	raw.Thumbnail = nil
	return raw
}

// GetArtwork returns a normalized artwork with predictable values.
func GetArtwork(id int) *aic.Artwork {
	return aic.MapArtwork(GetRawArtwork(id))
}

// ListResponseJSON builds the JSON body the AIC API would return for
// one page containing the given raw records.
func ListResponseJSON(artworks []*aic.RawArtwork, pagination network.Pagination) string {
	body := struct {
		Data       []*aic.RawArtwork  `json:"data"`
		Pagination network.Pagination `json:"pagination"`
		Info       network.Info       `json:"info"`
	}{
		Data:       artworks,
		Pagination: pagination,
		Info: network.Info{
			LicenseText:  "The data in this response is licensed under a Creative Commons Zero (CC0) 1.0 designation.",
			LicenseLinks: []string{"https://creativecommons.org/publicdomain/zero/1.0/"},
			Version:      "1.13",
		},
	}
	data, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// OnePagePagination describes a result set that fits on a single page.
func OnePagePagination(count int) network.Pagination {
	return network.Pagination{
		Total:       count,
		Limit:       count,
		Offset:      0,
		TotalPages:  1,
		CurrentPage: 1,
	}
}
