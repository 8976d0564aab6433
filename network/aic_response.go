package network

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/Cece94/articguessr/models/aic"
)

// Pagination describes where a page sits within the full result set,
// exactly as the AIC API reports it.
type Pagination struct {
	Total       int     `json:"total"`
	Limit       int     `json:"limit"`
	Offset      int     `json:"offset"`
	TotalPages  int     `json:"total_pages"`
	CurrentPage int     `json:"current_page"`
	NextURL     *string `json:"next_url"`
	PrevURL     *string `json:"prev_url"`
}

// Info is the license and version attribution block AIC attaches to
// every response. We pass it through untouched so consumers can credit
// the source.
type Info struct {
	LicenseText  string   `json:"license_text"`
	LicenseLinks []string `json:"license_links"`
	Version      string   `json:"version"`
}

// AICResponse wraps one HTTP exchange with the AIC API. Errors from the
// transport, the server, or JSON parsing all land in Error; callers
// check it once instead of unwinding multi-value returns at every step.
type AICResponse struct {
	// Pagination metadata for the page this response contains.
	// Zero-valued until the list has been parsed.
	Pagination Pagination

	// Info carries AIC's license/attribution metadata.
	Info Info

	// The HTTP request that was (or would have been) sent. Useful
	// for logging and debugging.
	Request *http.Request

	// The HTTP response from the server. Do not read Response.Body;
	// it has already been read and closed. Use RawResponseData().
	Response *http.Response

	// The error, if any, that occurred while processing this request.
	Error error

	artworks []*aic.Artwork
	raw      []*aic.RawArtwork

	hasBeenRead       bool
	listHasBeenParsed bool
	data              []byte
}

func NewAICResponse() *AICResponse {
	return &AICResponse{
		hasBeenRead:       false,
		listHasBeenParsed: false,
	}
}

// RawResponseData returns the raw body of the HTTP response.
// The return value may be nil.
func (resp *AICResponse) RawResponseData() ([]byte, error) {
	if !resp.hasBeenRead {
		resp.readResponse()
	}
	return resp.data, resp.Error
}

// Reads the body of the HTTP response and closes the stream. The body
// MUST be closed, or we leak connections to the AIC servers.
func (resp *AICResponse) readResponse() {
	if !resp.hasBeenRead && resp.Response != nil && resp.Response.Body != nil {
		resp.data, resp.Error = ioutil.ReadAll(resp.Response.Body)
		resp.Response.Body.Close()
		resp.hasBeenRead = true
	}
}

// SetRawData hands the response a body directly, bypassing the HTTP
// exchange. Tests use this to parse canned API payloads.
func (resp *AICResponse) SetRawData(data []byte) {
	resp.data = data
	resp.hasBeenRead = true
}

// Artwork returns the first normalized artwork in the response, or nil
// if the page came back empty.
func (resp *AICResponse) Artwork() *aic.Artwork {
	if len(resp.artworks) > 0 {
		return resp.artworks[0]
	}
	return nil
}

// Artworks returns the normalized artworks for this page. Never nil.
func (resp *AICResponse) Artworks() []*aic.Artwork {
	if resp.artworks == nil {
		return make([]*aic.Artwork, 0)
	}
	return resp.artworks
}

// RawArtworks returns the page's records as received, before
// normalization. Never nil.
func (resp *AICResponse) RawArtworks() []*aic.RawArtwork {
	if resp.raw == nil {
		return make([]*aic.RawArtwork, 0)
	}
	return resp.raw
}

// HasNextPage returns true if the AIC API reported a further page.
func (resp *AICResponse) HasNextPage() bool {
	return resp.Pagination.NextURL != nil && *resp.Pagination.NextURL != ""
}

// HasPreviousPage returns true if the AIC API reported a prior page.
func (resp *AICResponse) HasPreviousPage() bool {
	return resp.Pagination.PrevURL != nil && *resp.Pagination.PrevURL != ""
}

// ParamsForNextPage returns the query params that request the next
// page, or nil if there is no next page.
func (resp *AICResponse) ParamsForNextPage() url.Values {
	if resp.HasNextPage() {
		nextURL, _ := url.Parse(*resp.Pagination.NextURL)
		if nextURL != nil {
			return nextURL.Query()
		}
	}
	return nil
}

// UnmarshalJSONList parses the standard AIC list body:
//
//	{
//	  "data": [ ...raw artwork records... ],
//	  "pagination": { "total": ..., "total_pages": ..., "current_page": ... },
//	  "info": { "license_text": ..., "version": ... }
//	}
//
// Every raw record is normalized through aic.MapArtwork.
func (resp *AICResponse) UnmarshalJSONList() error {
	if resp.listHasBeenParsed {
		return nil
	}
	temp := struct {
		Data       []*aic.RawArtwork `json:"data"`
		Pagination Pagination        `json:"pagination"`
		Info       Info              `json:"info"`
	}{}
	data, err := resp.RawResponseData()
	if err != nil {
		resp.Error = err
		return err
	}
	resp.Error = json.Unmarshal(data, &temp)
	if resp.Error != nil {
		return resp.Error
	}
	resp.Pagination = temp.Pagination
	resp.Info = temp.Info
	resp.raw = temp.Data
	resp.artworks = make([]*aic.Artwork, len(temp.Data))
	for i, raw := range temp.Data {
		resp.artworks[i] = aic.MapArtwork(raw)
	}
	resp.listHasBeenParsed = true
	return resp.Error
}
