package customsearch

// Search is the response to a custom search request.
type Search struct {
	// Kind is always "customsearch#search".
	Kind string `json:"kind,omitempty"`

	// URL describes the OpenSearch URL template of this engine.
	URL *SearchURL `json:"url,omitempty"`

	// Queries holds the current, next and previous page request metadata.
	Queries *SearchQueries `json:"queries,omitempty"`

	// Promotions the engine surfaced for the query.
	Promotions []*Promotion `json:"promotions,omitempty"`

	// Context carries the engine's name and facet metadata.
	Context map[string]any `json:"context,omitempty"`

	SearchInformation *SearchInformation `json:"searchInformation,omitempty"`

	// Spelling suggests a corrected query, when available.
	Spelling *Spelling `json:"spelling,omitempty"`

	// Items are the search results.
	Items []*Result `json:"items,omitempty"`
}

// SearchURL is the OpenSearch URL template of the engine.
type SearchURL struct {
	// Type is the MIME type of the template, "application/json".
	Type string `json:"type,omitempty"`

	// Template is the parameterized OpenSearch URL of this API.
	Template string `json:"template,omitempty"`
}

// SearchQueries groups the query metadata of the current page and its
// neighbors. Each list holds exactly one entry when present.
type SearchQueries struct {
	// Request describes the query issued for this page.
	Request []*SearchQuery `json:"request,omitempty"`

	// NextPage describes the query fetching the next page, absent on the
	// last page.
	NextPage []*SearchQuery `json:"nextPage,omitempty"`

	// PreviousPage describes the query fetching the previous page, absent
	// on the first page.
	PreviousPage []*SearchQuery `json:"previousPage,omitempty"`
}

// SearchQuery echoes the parameters of one page request.
type SearchQuery struct {
	Title string `json:"title,omitempty"`

	// TotalResults is the estimated total number of results for the query.
	TotalResults int64 `json:"totalResults,string,omitempty"`

	SearchTerms string `json:"searchTerms,omitempty"`

	// Count is the number of results returned on this page.
	Count int32 `json:"count,omitempty"`

	// StartIndex of this page's first result in the full result set.
	StartIndex int32 `json:"startIndex,omitempty"`

	StartPage int32 `json:"startPage,omitempty"`

	Language string `json:"language,omitempty"`

	InputEncoding  string `json:"inputEncoding,omitempty"`
	OutputEncoding string `json:"outputEncoding,omitempty"`

	Safe string `json:"safe,omitempty"`

	// Cx identifies the engine the query ran against.
	Cx string `json:"cx,omitempty"`

	Sort   string `json:"sort,omitempty"`
	Filter string `json:"filter,omitempty"`

	Gl         string `json:"gl,omitempty"`
	Cr         string `json:"cr,omitempty"`
	GoogleHost string `json:"googleHost,omitempty"`

	DisableCnTwTranslation string `json:"disableCnTwTranslation,omitempty"`

	Hq string `json:"hq,omitempty"`
	Hl string `json:"hl,omitempty"`

	SiteSearch       string `json:"siteSearch,omitempty"`
	SiteSearchFilter string `json:"siteSearchFilter,omitempty"`

	ExactTerms   string `json:"exactTerms,omitempty"`
	ExcludeTerms string `json:"excludeTerms,omitempty"`

	LinkSite    string `json:"linkSite,omitempty"`
	OrTerms     string `json:"orTerms,omitempty"`
	RelatedSite string `json:"relatedSite,omitempty"`

	DateRestrict string `json:"dateRestrict,omitempty"`

	LowRange  string `json:"lowRange,omitempty"`
	HighRange string `json:"highRange,omitempty"`

	FileType string `json:"fileType,omitempty"`
	Rights   string `json:"rights,omitempty"`

	SearchType string `json:"searchType,omitempty"`

	ImgSize          string `json:"imgSize,omitempty"`
	ImgType          string `json:"imgType,omitempty"`
	ImgColorType     string `json:"imgColorType,omitempty"`
	ImgDominantColor string `json:"imgDominantColor,omitempty"`
}

// SearchInformation summarizes the search.
type SearchInformation struct {
	// SearchTime is the server-side elapsed time in seconds.
	SearchTime float64 `json:"searchTime,omitempty"`

	FormattedSearchTime string `json:"formattedSearchTime,omitempty"`

	// TotalResults is the estimated total number of results.
	TotalResults string `json:"totalResults,omitempty"`

	FormattedTotalResults string `json:"formattedTotalResults,omitempty"`
}

// Spelling is a query correction suggestion.
type Spelling struct {
	CorrectedQuery string `json:"correctedQuery,omitempty"`

	// HTMLCorrectedQuery is the corrected query with HTML highlighting.
	HTMLCorrectedQuery string `json:"htmlCorrectedQuery,omitempty"`
}

// Result is one custom search result.
type Result struct {
	// Kind is always "customsearch#result".
	Kind string `json:"kind,omitempty"`

	Title string `json:"title,omitempty"`

	// HTMLTitle is the title with HTML highlighting.
	HTMLTitle string `json:"htmlTitle,omitempty"`

	// Link is the full URL of the result.
	Link string `json:"link,omitempty"`

	// DisplayLink is an abridged form of the result URL, e.g.
	// "www.example.com".
	DisplayLink string `json:"displayLink,omitempty"`

	Snippet string `json:"snippet,omitempty"`

	// HTMLSnippet is the snippet with HTML highlighting.
	HTMLSnippet string `json:"htmlSnippet,omitempty"`

	// CacheID identifies Google's cached version of the result.
	CacheID string `json:"cacheId,omitempty"`

	FormattedURL string `json:"formattedUrl,omitempty"`

	HTMLFormattedURL string `json:"htmlFormattedUrl,omitempty"`

	// Pagemap holds the structured data the page exposed, keyed by type.
	Pagemap map[string][]map[string]any `json:"pagemap,omitempty"`

	// Mime type of the result, for results that are files.
	Mime string `json:"mime,omitempty"`

	// FileFormat of the result, for results that are files.
	FileFormat string `json:"fileFormat,omitempty"`

	// Image metadata, populated for image search results.
	Image *ResultImage `json:"image,omitempty"`

	// Labels the engine attached to the result, for refinement links.
	Labels []*ResultLabel `json:"labels,omitempty"`
}

// ResultImage is the image metadata of an image search result.
type ResultImage struct {
	// ContextLink is the URL of the page hosting the image.
	ContextLink string `json:"contextLink,omitempty"`

	Height int32 `json:"height,omitempty"`
	Width  int32 `json:"width,omitempty"`

	// ByteSize of the image file.
	ByteSize int32 `json:"byteSize,omitempty"`

	ThumbnailLink   string `json:"thumbnailLink,omitempty"`
	ThumbnailHeight int32  `json:"thumbnailHeight,omitempty"`
	ThumbnailWidth  int32  `json:"thumbnailWidth,omitempty"`
}

// ResultLabel is a refinement label attached to a result.
type ResultLabel struct {
	// Name to use in a label: query refinement.
	Name string `json:"name,omitempty"`

	// DisplayName shown to the user.
	DisplayName string `json:"displayName,omitempty"`

	LabelWithOp string `json:"label_with_op,omitempty"`
}

// Promotion is a subscribed-link promotion surfaced for the query.
type Promotion struct {
	Title string `json:"title,omitempty"`

	// HTMLTitle is the title with HTML highlighting.
	HTMLTitle string `json:"htmlTitle,omitempty"`

	// Link is the URL the promotion points at.
	Link string `json:"link,omitempty"`

	// DisplayLink is an abridged form of the promotion URL.
	DisplayLink string `json:"displayLink,omitempty"`

	// BodyLines are the block objects of the promotion body.
	BodyLines []*PromotionBodyLine `json:"bodyLines,omitempty"`

	Image *PromotionImage `json:"image,omitempty"`
}

// PromotionBodyLine is one block of a promotion body: either a text/HTML
// fragment or a link.
type PromotionBodyLine struct {
	Title string `json:"title,omitempty"`

	// HTMLTitle is the block's text with HTML highlighting.
	HTMLTitle string `json:"htmlTitle,omitempty"`

	// URL the block links to, when it is an anchor.
	URL string `json:"url,omitempty"`

	// Link is the anchor text, when the block is an anchor.
	Link string `json:"link,omitempty"`
}

// PromotionImage is the image attached to a promotion.
type PromotionImage struct {
	// Source URL of the image.
	Source string `json:"source,omitempty"`

	Height int32 `json:"height,omitempty"`
	Width  int32 `json:"width,omitempty"`
}
