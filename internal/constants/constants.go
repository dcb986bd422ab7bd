package constants

// DefaultMetadataBaseURL is the standard base URL for the IMDb metadata API.
const DefaultMetadataBaseURL = "https://imdb8.p.rapidapi.com"

// Metadata API endpoint paths.
const (
	TitleSearchPath     = "/title/find"
	TitleCreditsPath    = "/title/get-credits"
	AlternateTitlesPath = "/title/get-versions"
)

// DefaultDetectURL is the language-detection endpoint of the translate API.
const DefaultDetectURL = "https://google-translate1.p.rapidapi.com/language/translate/v2/detect"

// DisplayCount is the number of title-search hits shown for selection.
const DisplayCount = 3
