package imdb

// Query carries the single request parameter the metadata API expects:
// free text (q) for a title search, or a catalogue ID (tconst) for the
// credits and alternate-titles endpoints. Exactly one field is ever set.
type Query struct {
	Title   string `url:"q,omitempty"`
	TitleID string `url:"tconst,omitempty"`
}

// BuildQuery converts user-supplied search data into the API query shape.
// No validation of value happens here; callers validate upstream.
func BuildQuery(value string, isTitle bool) Query {
	if isTitle {
		return Query{Title: value}
	}
	return Query{TitleID: value}
}
