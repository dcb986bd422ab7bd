package imdb

// --- Structs mirroring the metadata API JSON ---

// searchResponse mirrors the top-level structure of /title/find.
type searchResponse struct {
	Results []TitleSearchHit `json:"results"`
}

// TitleSearchHit is one candidate match from a title search.
// Note: Field names and existence can be inconsistent; name-only
// entries (people, AKAs) carry Name instead of Title.
type TitleSearchHit struct {
	TitleType string `json:"titleType,omitempty"`
	Title     string `json:"title,omitempty"`
	Name      string `json:"name,omitempty"`
	// ID is a slash-delimited resource path, e.g. "/title/tt0133093/".
	ID string `json:"id,omitempty"`
}

// TitleBase holds the core metadata of a production.
type TitleBase struct {
	Title     string `json:"title,omitempty"`
	Name      string `json:"name,omitempty"`
	TitleType string `json:"titleType,omitempty"`
	Year      int    `json:"year,omitempty"`
}

// Person is one credited cast or crew member.
type Person struct {
	Category       string `json:"category,omitempty"`
	LegacyNameText string `json:"legacyNameText,omitempty"`
	Name           string `json:"name,omitempty"`
}

// Crew groups crew members by role. Only directors are used here.
type Crew struct {
	Director []Person `json:"director,omitempty"`
}

// TitleDetail is the /title/get-credits response.
type TitleDetail struct {
	Base TitleBase `json:"base"`
	Cast []Person  `json:"cast,omitempty"`
	Crew Crew      `json:"crew,omitempty"`
}

// AlternateTitle is one localized or regional variant name.
type AlternateTitle struct {
	Title string `json:"title,omitempty"`
}

// AlternateTitlesResponse is the /title/get-versions response.
type AlternateTitlesResponse struct {
	AlternateTitles []AlternateTitle `json:"alternateTitles,omitempty"`
}

// DisplayName returns the best available label for a search hit.
func (h TitleSearchHit) DisplayName() string {
	if h.Title != "" {
		return h.Title
	}
	if h.Name != "" {
		return h.Name
	}
	return ""
}

// DisplayName returns the best available name for a person, preferring
// the legacy name text the credits endpoint usually fills in.
func (p Person) DisplayName() string {
	if p.LegacyNameText != "" {
		return p.LegacyNameText
	}
	return p.Name
}
