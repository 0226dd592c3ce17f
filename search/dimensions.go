package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/poiesic/landscape/core"
)

const (
	dimensionsBaseURL   = "https://dtic.dimensions.ai"
	dimensionsSearchURL = dimensionsBaseURL + "/discover/publication/results.json"
	dimensionsDetailURL = dimensionsBaseURL + "/details/publication"

	searchMode  = "content"
	searchType  = "kws"
	searchField = "full_search"

	defaultMaxPages        = 5
	defaultRequestInterval = 2 * time.Second

	userAgent = "landscape-analyzer/0.1 (research landscape assessment; respectful automated access)"
)

// DimensionsSource queries the DTIC Dimensions results.json endpoint.
// Requests are rate limited so paginated multi-query runs stay polite.
type DimensionsSource struct {
	client   *http.Client
	baseURL  string
	maxPages int
	limiter  *rate.Limiter
	logger   *slog.Logger
}

// DimensionsOption configures a DimensionsSource.
type DimensionsOption func(*DimensionsSource) error

// WithBaseURL overrides the endpoint base URL. Used by tests.
func WithBaseURL(baseURL string) DimensionsOption {
	return func(d *DimensionsSource) error {
		d.baseURL = strings.TrimSuffix(baseURL, "/")
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) DimensionsOption {
	return func(d *DimensionsSource) error {
		if client != nil {
			d.client = client
		}
		return nil
	}
}

// WithMaxPages caps how many result pages a single query follows.
// Default is 5.
func WithMaxPages(pages int) DimensionsOption {
	return func(d *DimensionsSource) error {
		if pages > 0 {
			d.maxPages = pages
		}
		return nil
	}
}

// WithRequestInterval sets the minimum delay between requests.
// Default is 2 seconds.
func WithRequestInterval(interval time.Duration) DimensionsOption {
	return func(d *DimensionsSource) error {
		if interval > 0 {
			d.limiter = rate.NewLimiter(rate.Every(interval), 1)
		}
		return nil
	}
}

// WithSearchLogger sets a custom logger.
// Default is slog.Default().
func WithSearchLogger(logger *slog.Logger) DimensionsOption {
	return func(d *DimensionsSource) error {
		if logger == nil {
			logger = slog.Default()
		}
		d.logger = logger
		return nil
	}
}

// NewDimensionsSource creates a source backed by the DTIC Dimensions endpoint.
func NewDimensionsSource(opts ...DimensionsOption) (*DimensionsSource, error) {
	d := &DimensionsSource{
		client:   &http.Client{Timeout: 30 * time.Second},
		baseURL:  dimensionsBaseURL,
		maxPages: defaultMaxPages,
		limiter:  rate.NewLimiter(rate.Every(defaultRequestInterval), 1),
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	d.logger = d.logger.With("component", "dimensions_source")
	return d, nil
}

// resultsPage is the wire shape of one results.json response.
type resultsPage struct {
	Docs       []resultDoc `json:"docs"`
	Navigation struct {
		ResultsJSON string `json:"results_json"`
	} `json:"navigation"`
}

// resultDoc is one publication document. The live API is loose about types:
// id and pub_year arrive as strings or numbers depending on the record.
type resultDoc struct {
	ID               looseString `json:"id"`
	Title            string      `json:"title"`
	ShortAbstract    string      `json:"short_abstract"`
	PubYear          looseInt    `json:"pub_year"`
	Acknowledgements string      `json:"acknowledgements"`
	FundingSection   string      `json:"funding_section"`
}

// looseString decodes a JSON string or number into a string.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = looseString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = looseString(n.String())
	return nil
}

// looseInt decodes a JSON number or numeric string into an int.
// Unparseable values decode to zero.
type looseInt int

func (i *looseInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		*i = 0
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*i = 0
		return nil
	}
	*i = looseInt(v)
	return nil
}

func (d *DimensionsSource) searchURL(text string) string {
	params := url.Values{}
	params.Set("search_mode", searchMode)
	params.Set("search_text", text)
	params.Set("search_type", searchType)
	params.Set("search_field", searchField)
	return d.baseURL + "/discover/publication/results.json?" + params.Encode()
}

func (d *DimensionsSource) fetchPage(ctx context.Context, pageURL string) (*resultsPage, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrSearchFailed, resp.StatusCode)
	}

	var page resultsPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}
	return &page, nil
}

func (d *DimensionsSource) parseDoc(doc *resultDoc) *core.Candidate {
	sourceID := string(doc.ID)

	// Acknowledgements and funding section are combined for branch detection
	branchText := strings.TrimSpace(doc.Acknowledgements + " " + doc.FundingSection)

	candidateURL := ""
	if sourceID != "" {
		candidateURL = dimensionsDetailURL + "/" + sourceID
	}

	return &core.Candidate{
		Id:       core.IDFromContent(sourceID),
		SourceID: sourceID,
		Title:    doc.Title,
		Abstract: doc.ShortAbstract,
		Year:     int(doc.PubYear),
		URL:      candidateURL,
		Branch:   DetectBranch(branchText),
	}
}

// Search runs one query, following pagination up to the page cap.
// A failed page ends pagination but keeps the candidates gathered so far;
// a failure on the first page is returned as an error.
func (d *DimensionsSource) Search(ctx context.Context, query Query) ([]*core.Candidate, error) {
	if strings.TrimSpace(query.Text) == "" {
		return nil, ErrEmptyQuery
	}

	candidates := make([]*core.Candidate, 0)
	pageURL := d.searchURL(query.Text)

	for pageNum := 0; pageNum < d.maxPages; pageNum++ {
		d.logger.Debug("fetching results page", "page", pageNum+1, "strategy", query.Strategy)

		page, err := d.fetchPage(ctx, pageURL)
		if err != nil {
			if pageNum == 0 {
				return nil, err
			}
			d.logger.Warn("page fetch failed, keeping partial results",
				"page", pageNum+1, "strategy", query.Strategy, "err", err)
			break
		}

		if len(page.Docs) == 0 {
			break
		}
		for i := range page.Docs {
			candidates = append(candidates, d.parseDoc(&page.Docs[i]))
		}

		next := page.Navigation.ResultsJSON
		if next == "" {
			break
		}
		if strings.HasPrefix(next, "/") {
			pageURL = d.baseURL + next
		} else {
			pageURL = next
		}
	}

	d.logger.Info("query complete", "strategy", query.Strategy, "candidates", len(candidates))
	return candidates, nil
}

// SearchAll runs every query and merges the results, deduplicating by
// source ID with first occurrence winning.
func (d *DimensionsSource) SearchAll(ctx context.Context, queries []Query) ([]*core.Candidate, error) {
	batches := make([][]*core.Candidate, 0, len(queries))
	for _, query := range queries {
		batch, err := d.Search(ctx, query)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}

	merged := Aggregate(batches...)
	d.logger.Info("search complete", "queries", len(queries), "unique_candidates", len(merged))
	return merged, nil
}
