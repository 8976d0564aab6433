package network

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Cece94/articguessr/constants"
	"github.com/Cece94/articguessr/models/aic"
	"github.com/op/go-logging"
)

// ErrNoArtwork means the random sampler exhausted every attempt,
// including the unconstrained fallback, without finding a displayable
// artwork. There is no point retrying immediately.
var ErrNoArtwork = errors.New("no artwork available")

// SamplerSettings tunes the random sampler. Tests shrink these;
// production uses DefaultSamplerSettings.
type SamplerSettings struct {
	// MaxPages holds the top of the random page range per attempt.
	// Its length is the number of attempts.
	MaxPages []int

	// ArtworkTypes to sample from, one chosen per attempt.
	ArtworkTypes []string

	// MinYear constrains attempts to works with date_start >= MinYear.
	MinYear int

	// FallbackMaxPage is the top of the page range for the
	// unconstrained fallback request.
	FallbackMaxPage int
}

func DefaultSamplerSettings() SamplerSettings {
	return SamplerSettings{
		MaxPages:        constants.SamplerMaxPages,
		ArtworkTypes:    constants.SamplerArtworkTypes,
		MinYear:         constants.SamplerMinYear,
		FallbackMaxPage: constants.SamplerFallbackMaxPage,
	}
}

// AICClient talks to the Art Institute of Chicago public API. It is
// read-only: the API offers no writes and we want none. Methods return
// an *AICResponse whose Error field carries any failure; no retries
// happen at this level.
type AICClient struct {
	BaseURL    string
	SearchURL  string
	Sampler    SamplerSettings
	httpClient *http.Client
	logger     *logging.Logger
	rng        *rand.Rand
}

// NewAICClient creates a new AIC API client. Params BaseURL and
// SearchURL normally come from the config file.
func NewAICClient(baseURL, searchURL string, logger *logging.Logger) *AICClient {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}
	return &AICClient{
		BaseURL:    baseURL,
		SearchURL:  searchURL,
		Sampler:    DefaultSamplerSettings(),
		httpClient: httpClient,
		logger:     logger,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetRand replaces the sampler's randomness source. Tests use this to
// make page and category choices deterministic.
func (client *AICClient) SetRand(rng *rand.Rand) {
	client.rng = rng
}

// FetchArtworks returns one page of artworks matching filters. Advanced
// filters (type, culture/style, year range) go through the search
// endpoint because the listing endpoint can't express them; everything
// else takes the cheaper listing path.
func (client *AICClient) FetchArtworks(filters *aic.Filters) *AICResponse {
	if filters == nil {
		filters = aic.DefaultFilters()
	}
	if filters.HasAdvanced() {
		return client.SearchArtworks(filters)
	}
	return client.ListArtworks(filters)
}

// ListArtworks fetches one page from the plain listing endpoint.
// Records without images are excluded server-side via has_image.
func (client *AICClient) ListArtworks(filters *aic.Filters) *AICResponse {
	resp := NewAICResponse()

	params := url.Values{}
	params.Set("has_image", "1")
	params.Set("fields", strings.Join(constants.RequiredFields, ","))
	params.Set("page", strconv.Itoa(filters.PageOrDefault()))
	params.Set("limit", strconv.Itoa(filters.LimitOrDefault()))
	absoluteURL := client.BaseURL + "?" + params.Encode()

	client.DoRequest(resp, "GET", absoluteURL, nil)
	if resp.Error != nil {
		return resp
	}

	// Parse the JSON from the response body.
	// If there's an error, it will be recorded in resp.Error
	resp.UnmarshalJSONList()
	return resp
}

// SearchArtworks fetches one page from the search endpoint using a
// boolean query built from the advanced filters.
func (client *AICClient) SearchArtworks(filters *aic.Filters) *AICResponse {
	return client.doSearch(BuildSearchQuery(filters))
}

func (client *AICClient) doSearch(query *SearchQuery) *AICResponse {
	resp := NewAICResponse()

	postData, err := query.ToJSON()
	if err != nil {
		resp.Error = err
		return resp
	}

	client.DoRequest(resp, "POST", client.SearchURL, bytes.NewBuffer(postData))
	if resp.Error != nil {
		return resp
	}

	resp.UnmarshalJSONList()
	return resp
}

// RandomArtwork picks one artwork for the guessing game. Up to three
// attempts search a random page of a random painting-like category
// with date_start >= MinYear. A failed request and an empty page cost
// the same: one attempt. If all attempts miss, an unconstrained
// fallback against the listing endpoint guarantees a result whenever
// the API has anything at all; otherwise ErrNoArtwork.
func (client *AICClient) RandomArtwork() (*aic.Artwork, error) {
	for attempt, maxPage := range client.Sampler.MaxPages {
		page := client.rng.Intn(maxPage) + 1
		artworkType := client.Sampler.ArtworkTypes[client.rng.Intn(len(client.Sampler.ArtworkTypes))]

		query := &SearchQuery{
			Query: BoolWrapper{Bool: MustClauses{Must: []Clause{
				TermClause(constants.FieldArtworkTypeKeyword, artworkType),
				RangeGTE(constants.FieldDateStart, client.Sampler.MinYear),
			}}},
			Fields: constants.RequiredFields,
			Page:   page,
			Limit:  1,
		}

		resp := client.doSearch(query)
		if resp.Error != nil {
			client.logger.Warningf("Random artwork attempt %d failed: %v", attempt+1, resp.Error)
			continue
		}
		artwork := resp.Artwork()
		if artwork == nil || !artwork.HasImage() {
			client.logger.Infof("Random artwork attempt %d: nothing usable for type %s on page %d",
				attempt+1, artworkType, page)
			continue
		}
		return artwork, nil
	}
	return client.randomArtworkFallback()
}

// randomArtworkFallback asks the listing endpoint for one item on a
// random page, with no category or date constraint beyond has_image.
func (client *AICClient) randomArtworkFallback() (*aic.Artwork, error) {
	page := client.rng.Intn(client.Sampler.FallbackMaxPage) + 1
	resp := client.ListArtworks(&aic.Filters{Page: page, Limit: 1})
	if resp.Error != nil {
		return nil, resp.Error
	}
	artwork := resp.Artwork()
	if artwork == nil || !artwork.HasImage() {
		return nil, ErrNoArtwork
	}
	return artwork, nil
}

// NewJSONRequest returns a new request with headers indicating JSON
// request and response formats. Param requestData is nil for GET and a
// bytes.Buffer with the search body for POST.
func (client *AICClient) NewJSONRequest(method, absoluteURL string, requestData io.Reader) (*http.Request, error) {
	req, err := http.NewRequest(method, absoluteURL, requestData)
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req, nil
}

// DoRequest issues an HTTP request, reads the response, and closes the
// connection to the remote server. If an error occurs, it will be
// recorded in resp.Error.
func (client *AICClient) DoRequest(resp *AICResponse, method, absoluteURL string, requestData io.Reader) {
	request, err := client.NewJSONRequest(method, absoluteURL, requestData)
	resp.Request = request
	if err != nil {
		resp.Error = fmt.Errorf("%s %s: %s", method, absoluteURL, err.Error())
		return
	}

	reqTime := time.Now()
	resp.Response, resp.Error = client.httpClient.Do(request)
	client.logger.Infof("%s %s completed in %s", method, absoluteURL, time.Since(reqTime))
	if resp.Error != nil {
		resp.Error = fmt.Errorf("%s %s: %s", method, absoluteURL, resp.Error.Error())
		return
	}

	// Read the response data and close the response body. That's the
	// only way to close the remote HTTP connection, which will
	// otherwise stay open indefinitely.
	resp.readResponse()

	if resp.Error == nil && resp.Response.StatusCode >= 400 {
		body, _ := resp.RawResponseData()
		resp.Error = fmt.Errorf("AIC API returned status code %d. %s %s - Body: %s",
			resp.Response.StatusCode, method, absoluteURL, string(body))
	}
}
