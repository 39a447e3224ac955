// Package customsearch provides access to the Custom Search API, which
// searches over a website or a collection of websites defined by a
// Programmable Search Engine.
//
// The API is authorized by API key rather than OAuth; its operations
// declare no scopes, so the key configured on the client runtime is sent as
// the "key" query parameter:
//
//	c, err := client.New(client.WithAPIKey(os.Getenv("GOOGLE_API_KEY")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svc := customsearch.New(c)
//
//	results, err := svc.Cse.List().Cx("017576662512468239146:omuauf_lfve").
//	    Q("lectures").
//	    Do(ctx)
package customsearch

import (
	"net/http"
	"strconv"

	"github.com/MOZGIII/google-apis-go/client"
)

// BasePath is the production endpoint of the Custom Search API.
const BasePath = "https://customsearch.googleapis.com/"

// Service is the Custom Search API surface.
type Service struct {
	// BasePath is the endpoint calls are issued against. Override it to
	// point the service at a test server.
	BasePath string

	Cse *CseService

	client *client.Client
}

// New builds a Service that issues calls through c.
func New(c *client.Client) *Service {
	s := &Service{BasePath: BasePath, client: c}
	s.Cse = &CseService{
		Siterestrict: &CseSiterestrictService{s: s},
		s:            s,
	}
	return s
}

// CseService runs searches over a Programmable Search Engine.
type CseService struct {
	Siterestrict *CseSiterestrictService

	s *Service
}

// CseSiterestrictService runs searches restricted to no more than ten
// sites. It has no daily query quota.
type CseSiterestrictService struct {
	s *Service
}

// CseListCall is a search request. All parameters are optional query
// parameters; at minimum Cx and Q select the engine and the query.
type CseListCall struct {
	*client.Call[*Search]
}

// List returns search results from a Programmable Search Engine.
func (r *CseService) List() *CseListCall {
	c := client.NewCall[*Search](r.s.client, r.s.BasePath, client.Operation{
		ID:     "search.cse.list",
		Method: http.MethodGet,
		Path:   "customsearch/v1",
	})
	return &CseListCall{c}
}

// CseSiterestrictListCall is a search request against the siterestrict
// endpoint.
type CseSiterestrictListCall struct {
	*client.Call[*Search]
}

// List returns search results from a Programmable Search Engine created
// with the SiteRestrictedApi option. Both request and response are
// identical to the ordinary search endpoint.
func (r *CseSiterestrictService) List() *CseSiterestrictListCall {
	c := client.NewCall[*Search](r.s.client, r.s.BasePath, client.Operation{
		ID:     "search.cse.siterestrict.list",
		Method: http.MethodGet,
		Path:   "customsearch/v1/siterestrict",
	})
	return &CseSiterestrictListCall{c}
}

// Q sets the search query.
func (c *CseListCall) Q(q string) *CseListCall { c.Param("q", q); return c }

// Cx selects the Programmable Search Engine to use.
func (c *CseListCall) Cx(cx string) *CseListCall { c.Param("cx", cx); return c }

// C2coff enables ("0") or disables ("1") Simplified and Traditional Chinese
// search. Default is "0", enabled.
func (c *CseListCall) C2coff(v string) *CseListCall { c.Param("c2coff", v); return c }

// Cr restricts results to documents originating in a country, using a
// boolean expression of cr... values.
func (c *CseListCall) Cr(cr string) *CseListCall { c.Param("cr", cr); return c }

// DateRestrict restricts results by date: d[number], w[number], m[number]
// or y[number] for days, weeks, months, years.
func (c *CseListCall) DateRestrict(v string) *CseListCall { c.Param("dateRestrict", v); return c }

// ExactTerms identifies a phrase every result must contain.
func (c *CseListCall) ExactTerms(v string) *CseListCall { c.Param("exactTerms", v); return c }

// ExcludeTerms identifies a word or phrase no result may contain.
func (c *CseListCall) ExcludeTerms(v string) *CseListCall { c.Param("excludeTerms", v); return c }

// FileType restricts results to files of the given extension.
func (c *CseListCall) FileType(v string) *CseListCall { c.Param("fileType", v); return c }

// Filter enables ("1", default) or disables ("0") the duplicate content
// filter.
func (c *CseListCall) Filter(v string) *CseListCall { c.Param("filter", v); return c }

// Gl boosts results whose country of origin matches the given two-letter
// country code.
func (c *CseListCall) Gl(gl string) *CseListCall { c.Param("gl", gl); return c }

// Googlehost is deprecated; use Gl instead. Selects the local Google domain
// to perform the search on, e.g. google.de.
func (c *CseListCall) Googlehost(v string) *CseListCall { c.Param("googlehost", v); return c }

// HighRange appends an upper bound to a search range established with
// LowRange.
func (c *CseListCall) HighRange(v string) *CseListCall { c.Param("highRange", v); return c }

// Hl sets the interface language of the search.
func (c *CseListCall) Hl(hl string) *CseListCall { c.Param("hl", hl); return c }

// Hq appends query terms AND-ed with the main query.
func (c *CseListCall) Hq(hq string) *CseListCall { c.Param("hq", hq); return c }

// ImgColorType restricts image results to "color", "gray", "mono" or
// "trans".
func (c *CseListCall) ImgColorType(v string) *CseListCall { c.Param("imgColorType", v); return c }

// ImgDominantColor restricts image results to a dominant color.
func (c *CseListCall) ImgDominantColor(v string) *CseListCall { c.Param("imgDominantColor", v); return c }

// ImgSize restricts image results to a size class, from "icon" to "huge".
func (c *CseListCall) ImgSize(v string) *CseListCall { c.Param("imgSize", v); return c }

// ImgType restricts image results to "clipart", "face", "lineart", "stock",
// "photo" or "animated".
func (c *CseListCall) ImgType(v string) *CseListCall { c.Param("imgType", v); return c }

// LinkSite requires every result to link to the given URL.
func (c *CseListCall) LinkSite(v string) *CseListCall { c.Param("linkSite", v); return c }

// LowRange prepends a lower bound to a search range; combine with
// HighRange.
func (c *CseListCall) LowRange(v string) *CseListCall { c.Param("lowRange", v); return c }

// Lr restricts results to documents in the given language, e.g. "lang_de".
func (c *CseListCall) Lr(lr string) *CseListCall { c.Param("lr", lr); return c }

// Num sets the number of results to return, between 1 and 10.
func (c *CseListCall) Num(num int64) *CseListCall {
	c.Param("num", strconv.FormatInt(num, 10))
	return c
}

// OrTerms identifies words of which every result must contain at least one.
func (c *CseListCall) OrTerms(v string) *CseListCall { c.Param("orTerms", v); return c }

// RelatedSite is deprecated.
func (c *CseListCall) RelatedSite(v string) *CseListCall { c.Param("relatedSite", v); return c }

// Rights filters by license, e.g. "cc_publicdomain", "cc_attribute"; both
// combined license filters and single values are accepted.
func (c *CseListCall) Rights(v string) *CseListCall { c.Param("rights", v); return c }

// Safe sets SafeSearch: "active" or "off" (default).
func (c *CseListCall) Safe(v string) *CseListCall { c.Param("safe", v); return c }

// SearchType set to "image" switches to the image search endpoint.
func (c *CseListCall) SearchType(v string) *CseListCall { c.Param("searchType", v); return c }

// SiteSearch names a site every result must come from, or be excluded from,
// depending on SiteSearchFilter.
func (c *CseListCall) SiteSearch(v string) *CseListCall { c.Param("siteSearch", v); return c }

// SiteSearchFilter selects whether SiteSearch includes ("i") or excludes
// ("e") the site.
func (c *CseListCall) SiteSearchFilter(v string) *CseListCall { c.Param("siteSearchFilter", v); return c }

// Sort applies a sort expression to the results, e.g. "date".
func (c *CseListCall) Sort(v string) *CseListCall { c.Param("sort", v); return c }

// Start sets the 1-based index of the first result to return. The API
// never returns results past index 100: start + num must not exceed 101.
func (c *CseListCall) Start(start int64) *CseListCall {
	c.Param("start", strconv.FormatInt(start, 10))
	return c
}

// The siterestrict wrapper exposes the commonly used subset of the search
// surface; the remaining parameters are reachable through the embedded
// call's Param setter, which both endpoints accept identically.

// Q sets the search query.
func (c *CseSiterestrictListCall) Q(q string) *CseSiterestrictListCall { c.Param("q", q); return c }

// Cx selects the Programmable Search Engine to use.
func (c *CseSiterestrictListCall) Cx(cx string) *CseSiterestrictListCall { c.Param("cx", cx); return c }

// Num sets the number of results to return, between 1 and 10.
func (c *CseSiterestrictListCall) Num(num int64) *CseSiterestrictListCall {
	c.Param("num", strconv.FormatInt(num, 10))
	return c
}

// Start sets the 1-based index of the first result to return.
func (c *CseSiterestrictListCall) Start(start int64) *CseSiterestrictListCall {
	c.Param("start", strconv.FormatInt(start, 10))
	return c
}

// Safe sets SafeSearch: "active" or "off" (default).
func (c *CseSiterestrictListCall) Safe(v string) *CseSiterestrictListCall { c.Param("safe", v); return c }

// Lr restricts results to documents in the given language, e.g. "lang_de".
func (c *CseSiterestrictListCall) Lr(lr string) *CseSiterestrictListCall { c.Param("lr", lr); return c }

// Sort applies a sort expression to the results, e.g. "date".
func (c *CseSiterestrictListCall) Sort(v string) *CseSiterestrictListCall { c.Param("sort", v); return c }

// SiteSearch names a site every result must come from, or be excluded from,
// depending on SiteSearchFilter.
func (c *CseSiterestrictListCall) SiteSearch(v string) *CseSiterestrictListCall {
	c.Param("siteSearch", v)
	return c
}

// SiteSearchFilter selects whether SiteSearch includes ("i") or excludes
// ("e") the site.
func (c *CseSiterestrictListCall) SiteSearchFilter(v string) *CseSiterestrictListCall {
	c.Param("siteSearchFilter", v)
	return c
}
