package constants

const (
	// Art Institute of Chicago public API endpoints.
	AICBaseURL   = "https://api.artic.edu/api/v1/artworks"
	AICSearchURL = "https://api.artic.edu/api/v1/artworks/search"

	// IIIF image service template. The %s is the AIC image_id.
	IIIFURLFormat = "https://www.artic.edu/iiif/2/%s/full/600,/0/default.jpg"

	DefaultPage  = 1
	DefaultLimit = 20

	// Random sampler tuning. The sampler makes up to SamplerAttempts
	// constrained search requests before falling back to the plain
	// listing endpoint with pages 1..SamplerFallbackMaxPage.
	SamplerAttempts        = 3
	SamplerFallbackMaxPage = 100

	// Works before this year are rarely guessable from a photo,
	// so the sampler constrains date_start to this lower bound.
	SamplerMinYear = 1860

	// Query param names for shareable explore URLs.
	ParamArtworkType    = "artworkType"
	ParamCultureOrStyle = "cultureOrStyle"
	ParamYearStart      = "yearStart"
	ParamYearEnd        = "yearEnd"
	ParamPage           = "page"
	ParamLimit          = "limit"

	// Search field names understood by the AIC search endpoint.
	FieldArtworkTypeKeyword = "artwork_type_title.keyword"
	FieldStyleKeyword       = "style_title.keyword"
	FieldDateStart          = "date_start"
	FieldDateEnd            = "date_end"
)

// SamplerMaxPages holds the top of the random page range for each
// sampler attempt. Later attempts search smaller (denser) page ranges.
var SamplerMaxPages = []int{50, 20, 10}

// SamplerArtworkTypes are the production types the guessing game samples
// from. Limited to painting-like and drawing-like categories because
// those are the ones a player can reasonably date by eye.
var SamplerArtworkTypes = []string{
	"Painting",
	"Drawing and Watercolor",
	"Miniature Painting",
}

// RequiredFields is the field allow-list sent with every AIC request
// to keep response payloads small.
var RequiredFields = []string{
	"id",
	"image_id",
	"title",
	"artist_title",
	"date_display",
	"date_start",
	"date_end",
	"style_title",
	"department_title",
	"medium_display",
	"is_public_domain",
	"thumbnail",
}

// ArtworkTypes is the closed set of artwork_type_title values the
// explore filters accept. Values are AIC's literal labels.
var ArtworkTypes = []string{
	"Print",
	"Photograph",
	"Drawing and Watercolor",
	"Textile",
	"Painting",
	"Architectural Drawing",
	"Book",
	"Ceramics",
	"Vessel",
	"Costume and Accessories",
	"Sculpture",
	"Glass",
	"Metalwork",
	"Coin",
	"Graphic Design",
	"Decorative Arts",
	"Design",
	"Medals",
	"Furniture",
	"Arms",
	"Religious/Ritual Object",
	"Armor",
	"Architectural fragment",
	"Archives (groupings)",
	"Mixed Media",
	"Miniature Painting",
	"Model",
	"Coverings and Hangings",
	"Film, Video, New Media",
	"non-art",
	"Mask",
	"Miniature room",
	"Installation",
	"Funerary Object",
	"Furnishings",
	"Time Based Media",
	"Basketry",
	"Audio-Video",
	"Equipment",
	"Digital Arts",
	"Materials",
	"Prototypes",
}

// CultureOrStyles is the curated closed set of style_title values the
// explore filters accept. Casing is AIC's, not ours.
var CultureOrStyles = []string{
	"Japanese (culture or style)",
	"21st Century",
	"19th century",
	"20th Century",
	"Chinese (culture or style)",
	"Modernism",
	"roman (ancient, style or period)",
	"Pop Art",
	"nineteenth century",
	"greek",
	"18th Century",
	"nazca",
	"avant-garde",
	"moche",
	"Cubism",
	"contemporary",
	"Arts and Crafts Movement",
	"Pictorialism",
	"egyptian",
	"bauhaus",
	"qing",
	"South Asian",
	"17th Century",
	"Himalayan",
	"Impressionism",
	"medieval",
	"Folk Art",
	"Photo League",
	"new kingdom",
	"roman period (egyptian)",
	"syrian",
	"Surrealism",
	"Art Deco",
	"New Bauhaus (Institute of Design)",
	"third intermediate period",
	"imperial (roman)",
	"Realism",
	"Japanism",
	"edo (japanese period)",
	"chimú",
	"indonesian",
	"Korean (culture or style)",
	"ming",
	"15th century",
}
