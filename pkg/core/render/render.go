// Package render builds the human-readable text blocks shown to the
// operator. All functions are pure string building; missing fields
// substitute fixed placeholders and never fail the render.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"titlelookup/pkg/core/imdb"
)

// Placeholders for absent optional fields.
const (
	placeholderTitle = "Not Found"
	placeholderType  = "AKA"
	placeholderField = "NA"
	placeholderYear  = "Unavailable"
)

var titleCaser = cases.Title(language.Und)

// DetectFunc resolves a title string to an upper-cased language code.
type DetectFunc func(title string) (string, error)

// SearchResults renders exactly displayCount numbered lines from the
// hit list. Indexes past the end of hits render as placeholder lines so
// short result lists never fault.
func SearchResults(hits []imdb.TitleSearchHit, displayCount int) string {
	var b strings.Builder
	for i := 0; i < displayCount; i++ {
		var hit imdb.TitleSearchHit
		if i < len(hits) {
			hit = hits[i]
		}
		titleType := hit.TitleType
		if titleType == "" {
			titleType = placeholderType
		}
		label := hit.DisplayName()
		if label == "" {
			label = placeholderTitle
		}
		fmt.Fprintf(&b, "%d= Type: %-15sTitle: %-25s\n", i+1, titleType, label)
	}
	return b.String()
}

// Credits renders the production details block: base metadata, the
// first three cast entries and the first director. formattedID is the
// PREF-formatted catalogue ID, shown for reference only.
func Credits(detail *imdb.TitleDetail, formattedID string) string {
	base := detail.Base

	title := base.Title
	if title == "" {
		title = base.Name
	}
	if title == "" {
		title = placeholderField
	}
	titleType := base.TitleType
	if titleType == "" {
		titleType = placeholderField
	}
	year := placeholderYear
	if base.Year != 0 {
		year = fmt.Sprintf("%d", base.Year)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s Production Details %s\n", strings.Repeat("*", 15), strings.Repeat("*", 15))
	fmt.Fprintf(&b, "Title: %s\n", title)
	fmt.Fprintf(&b, "Type: %s\n", titleType)
	fmt.Fprintf(&b, "Year: %s\n", year)
	fmt.Fprintf(&b, "IMDb: %s \t(formatted for PREF)\n\n", formattedID)

	for i := 0; i < 3; i++ {
		var member imdb.Person
		if i < len(detail.Cast) {
			member = detail.Cast[i]
		}
		fmt.Fprintf(&b, "%s: %s\n", personCategory(member), personName(member))
	}

	var director imdb.Person
	if len(detail.Crew.Director) > 0 {
		director = detail.Crew.Director[0]
	}
	fmt.Fprintf(&b, "Director: %s\n", personName(director))

	return b.String()
}

// AlternateTitles renders one line per distinct alternate title, in
// discovery order, each annotated with its detected language. detect is
// called exactly once per distinct title string; repeats are tracked
// and skipped. A detection failure aborts the render.
func AlternateTitles(resp *imdb.AlternateTitlesResponse, detect DetectFunc) (string, error) {
	repeats := make(map[string]struct{})

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s Alternate Titles %s\n", strings.Repeat("*", 16), strings.Repeat("*", 16))

	for _, entry := range resp.AlternateTitles {
		title := entry.Title
		if title == "" {
			title = placeholderField
		}
		if _, seen := repeats[title]; !seen {
			lang, err := detect(title)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "Language: %-5s\tTitle: %-30s\n", lang, title)
		}
		repeats[title] = struct{}{}
	}

	return b.String(), nil
}

func personCategory(p imdb.Person) string {
	if p.Category == "" {
		return placeholderField
	}
	return titleCaser.String(p.Category)
}

func personName(p imdb.Person) string {
	if name := p.DisplayName(); name != "" {
		return name
	}
	return placeholderField
}
