package aic

import (
	"encoding/json"
	"fmt"

	"github.com/Cece94/articguessr/constants"
)

// Thumbnail is the low-quality preview descriptor AIC attaches to
// artworks that have one.
type Thumbnail struct {
	LQIP    string `json:"lqip"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	AltText string `json:"alt_text"`
}

// RawArtwork is an artwork record exactly as the AIC API returns it.
// Optional fields are pointers because the API serializes them as null.
type RawArtwork struct {
	ID              int        `json:"id"`
	ImageID         *string    `json:"image_id"`
	Title           string     `json:"title"`
	ArtistTitle     *string    `json:"artist_title"`
	DateDisplay     *string    `json:"date_display"`
	DateStart       *int       `json:"date_start"`
	DateEnd         *int       `json:"date_end"`
	StyleTitle      *string    `json:"style_title"`
	DepartmentTitle *string    `json:"department_title"`
	MediumDisplay   *string    `json:"medium_display"`
	IsPublicDomain  bool       `json:"is_public_domain"`
	Thumbnail       *Thumbnail `json:"thumbnail"`
}

func RawArtworkFromJSON(jsonData []byte) (*RawArtwork, error) {
	raw := &RawArtwork{}
	err := json.Unmarshal(jsonData, raw)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (raw *RawArtwork) ToJSON() ([]byte, error) {
	return json.Marshal(raw)
}

// Artwork is the normalized model the rest of the app works with.
// ImageID and ImageURL use an empty string, not nil, when the source
// record has no image. Other optional fields stay pointers.
type Artwork struct {
	ID          int     `json:"id"`
	ImageID     string  `json:"image_id"`
	Title       string  `json:"title"`
	Artist      *string `json:"artist"`
	DateDisplay *string `json:"date_display"`
	DateStart   *int    `json:"date_start"`
	DateEnd     *int    `json:"date_end"`
	Movement    *string `json:"movement"`
	Department  *string `json:"department"`
	Medium      *string `json:"medium"`

	// Derived fields. ImageURL is non-empty iff ImageID is non-empty.
	// Decade is non-nil iff PrimaryYear is non-nil.
	ImageURL    string `json:"image_url"`
	PrimaryYear *int   `json:"primary_year"`
	Decade      *int   `json:"decade"`
}

func ArtworkFromJSON(jsonData []byte) (*Artwork, error) {
	artwork := &Artwork{}
	err := json.Unmarshal(jsonData, artwork)
	if err != nil {
		return nil, err
	}
	return artwork, nil
}

func (artwork *Artwork) ToJSON() ([]byte, error) {
	return json.Marshal(artwork)
}

// HasImage returns true if this artwork can actually be displayed.
// The explore feed drops records for which this is false.
func (artwork *Artwork) HasImage() bool {
	return artwork.ImageID != "" || artwork.ImageURL != ""
}

// ComputeDecade floors year to the next lower multiple of ten.
// Floor semantics hold for BCE years too: -55 -> -60, not -50.
func ComputeDecade(year int) int {
	d := year / 10
	if year < 0 && year%10 != 0 {
		d--
	}
	return d * 10
}

// ImageURL builds the IIIF display URL for an AIC image_id.
// Callers must not pass an empty id.
func ImageURL(imageID string) string {
	return fmt.Sprintf(constants.IIIFURLFormat, imageID)
}

// PrimaryYear picks the single representative year for an artwork:
// date_end if present, else date_start, else nil.
func PrimaryYear(raw *RawArtwork) *int {
	if raw.DateEnd != nil {
		return raw.DateEnd
	}
	return raw.DateStart
}

// MapArtwork normalizes a raw AIC record. Pure function: same input,
// same output, no network and no side effects.
func MapArtwork(raw *RawArtwork) *Artwork {
	artwork := &Artwork{
		ID:          raw.ID,
		Title:       raw.Title,
		Artist:      raw.ArtistTitle,
		DateDisplay: raw.DateDisplay,
		DateStart:   raw.DateStart,
		DateEnd:     raw.DateEnd,
		Movement:    raw.StyleTitle,
		Department:  raw.DepartmentTitle,
		Medium:      raw.MediumDisplay,
	}
	if raw.ImageID != nil && *raw.ImageID != "" {
		artwork.ImageID = *raw.ImageID
		artwork.ImageURL = ImageURL(*raw.ImageID)
	}
	if year := PrimaryYear(raw); year != nil {
		y := *year
		d := ComputeDecade(y)
		artwork.PrimaryYear = &y
		artwork.Decade = &d
	}
	return artwork
}
