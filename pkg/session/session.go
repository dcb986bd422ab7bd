// Package session drives one interactive lookup: mode selection,
// title search with disambiguation (or direct ID entry), then credits
// and language-annotated alternate titles.
package session

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	ptn "github.com/razsteinmetz/go-ptn"
	log "github.com/sirupsen/logrus"

	"titlelookup/internal/constants"
	"titlelookup/pkg/core/imdb"
	"titlelookup/pkg/core/prompt"
	"titlelookup/pkg/core/render"
)

// Search mode menu entries.
const (
	modeTitle = 1
	modeID    = 2
)

// MetadataAPI is the surface of the metadata client the session needs.
type MetadataAPI interface {
	SearchTitles(ctx context.Context, q imdb.Query) ([]imdb.TitleSearchHit, error)
	GetCredits(ctx context.Context, q imdb.Query) (*imdb.TitleDetail, error)
	GetAlternateTitles(ctx context.Context, q imdb.Query) (*imdb.AlternateTitlesResponse, error)
}

// LanguageDetector resolves text to an upper-cased language code.
type LanguageDetector interface {
	Detect(ctx context.Context, text string) (string, error)
}

// Session sequences one interactive lookup run. All collaborators are
// injected; the session itself holds no configuration state.
type Session struct {
	metadata MetadataAPI
	detector LanguageDetector
	prompter *prompt.Prompter
	out      io.Writer
	logger   *log.Logger
}

// New creates a Session. Passing nil for logger installs a default
// text logger on stdout.
func New(metadata MetadataAPI, detector LanguageDetector, prompter *prompt.Prompter, out io.Writer, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New()
		logger.SetFormatter(&log.TextFormatter{})
		logger.SetOutput(os.Stdout)
		logger.SetLevel(log.InfoLevel)
	}
	return &Session{
		metadata: metadata,
		detector: detector,
		prompter: prompter,
		out:      out,
		logger:   logger,
	}
}

// Run executes one full lookup. Invalid mode selection or a malformed
// catalogue ID print their message and end the run cleanly; remote
// failures abort with an error. There is no looping back to the mode
// prompt within one run.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintf(s.out, "\nSEARCH TYPE:\n\n%d=Search by Title\n%d=Search by IMDb ID\n\n", modeTitle, modeID)

	entry, err := s.prompter.ReadLine("Enter Search Type: ")
	if err != nil {
		return err
	}
	mode, err := strconv.Atoi(entry)
	if err != nil || (mode != modeTitle && mode != modeID) {
		fmt.Fprintln(s.out, "Invalid Selection.")
		return nil
	}

	var imdbID string
	switch mode {
	case modeTitle:
		imdbID, err = s.searchByTitle(ctx)
	case modeID:
		imdbID, err = s.searchByID()
	}
	if err != nil {
		return err
	}
	if imdbID == "" {
		// Validation message already printed.
		return nil
	}

	return s.showTitle(ctx, imdbID)
}

// searchByTitle runs the title-search flow and returns the catalogue ID
// of the hit the operator picked.
func (s *Session) searchByTitle(ctx context.Context) (string, error) {
	searchText, err := s.prompter.ReadLine("\nEnter production title: ")
	if err != nil {
		return "", err
	}
	searchText = s.cleanSearchText(searchText)

	q := imdb.BuildQuery(searchText, true)
	s.logger.WithField("query", searchText).Info("Searching production titles")

	hits, err := s.metadata.SearchTitles(ctx, q)
	if err != nil {
		return "", err
	}
	fmt.Fprintln(s.out, render.SearchResults(hits, constants.DisplayCount))

	selection, err := s.prompter.ChooseResult(constants.DisplayCount)
	if err != nil {
		return "", err
	}
	if selection >= len(hits) {
		return "", fmt.Errorf("selection %d has no search result", selection+1)
	}

	imdbID := imdb.IDFromPath(hits[selection].ID)
	if imdbID == "" {
		return "", fmt.Errorf("search result %d carries no catalogue ID", selection+1)
	}
	return imdbID, nil
}

// searchByID reads and validates a raw catalogue ID. An invalid ID
// prints "Invalid ID." and returns "" with no error.
func (s *Session) searchByID() (string, error) {
	imdbID, err := s.prompter.ReadLine("\nEnter IMDb ID: ")
	if err != nil {
		return "", err
	}
	if !imdb.ValidID(imdbID) {
		fmt.Fprintln(s.out, "Invalid ID.")
		return "", nil
	}
	return imdbID, nil
}

// showTitle fetches and prints credits and alternate titles for one
// catalogue ID. The request uses the raw ID; only the displayed ID is
// PREF-formatted.
func (s *Session) showTitle(ctx context.Context, imdbID string) error {
	q := imdb.BuildQuery(imdbID, false)

	s.logger.WithField("tconst", imdbID).Info("Fetching title credits")
	detail, err := s.metadata.GetCredits(ctx, q)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, render.Credits(detail, imdb.ToPrefID(imdbID)))

	s.logger.WithField("tconst", imdbID).Info("Fetching alternate titles")
	altTitles, err := s.metadata.GetAlternateTitles(ctx, q)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "\n Detecting Title Languages ...")
	detections := 0
	rendered, err := render.AlternateTitles(altTitles, func(title string) (string, error) {
		detections++
		return s.detector.Detect(ctx, title)
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, rendered)

	s.logger.WithFields(log.Fields{
		"titles":     len(altTitles.AlternateTitles),
		"detections": detections,
	}).Info("Alternate title languages resolved")
	return nil
}

// cleanSearchText turns a scene-release-style entry (dot separated, no
// spaces) into a plain title before searching, so a pasted filename
// still finds its production.
func (s *Session) cleanSearchText(searchText string) string {
	if strings.Contains(searchText, " ") || !strings.Contains(searchText, ".") {
		return searchText
	}
	parsed, err := ptn.Parse(searchText)
	if err != nil || parsed.Title == "" {
		return searchText
	}
	s.logger.WithFields(log.Fields{
		"input": searchText,
		"title": parsed.Title,
	}).Info("Parsed release name into title")
	return parsed.Title
}
