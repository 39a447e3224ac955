// Command customsearch is the CLI front-end of the Custom Search API:
//
//	customsearch cse list --cx 017576662512468239146:omuauf_lfve --q lectures
//	customsearch cse siterestrict-list --cx ... --q docs --site-search example.com
//
// The API authorizes by key: pass --key or set $GOOGLE_API_KEY. Responses
// print as pretty JSON on stdout or into --out.
package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MOZGIII/google-apis-go/client"
	"github.com/MOZGIII/google-apis-go/customsearch"
	"github.com/MOZGIII/google-apis-go/internal/cli"
)

// searchFlags is the typed query surface shared by both search endpoints.
// Only flags the user actually set become query parameters.
type searchFlags struct {
	q                string
	cx               string
	c2coff           string
	cr               string
	dateRestrict     string
	exactTerms       string
	excludeTerms     string
	fileType         string
	filter           string
	gl               string
	googlehost       string
	highRange        string
	hl               string
	hq               string
	imgColorType     string
	imgDominantColor string
	imgSize          string
	imgType          string
	linkSite         string
	lowRange         string
	lr               string
	num              int64
	orTerms          string
	relatedSite      string
	rights           string
	safe             string
	searchType       string
	siteSearch       string
	siteSearchFilter string
	sort             string
	start            int64
}

func (f *searchFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.q, "q", "", "the search query")
	fs.StringVar(&f.cx, "cx", "", "the Programmable Search Engine to use")
	fs.StringVar(&f.c2coff, "c2coff", "", "disable Simplified/Traditional Chinese search (1) or enable it (0)")
	fs.StringVar(&f.cr, "cr", "", "restrict results by country of origin, e.g. countryDE")
	fs.StringVar(&f.dateRestrict, "date-restrict", "", "restrict results by recency: d/w/m/y followed by a number")
	fs.StringVar(&f.exactTerms, "exact-terms", "", "a phrase every result must contain")
	fs.StringVar(&f.excludeTerms, "exclude-terms", "", "a word or phrase no result may contain")
	fs.StringVar(&f.fileType, "file-type", "", "restrict results to files of this extension")
	fs.StringVar(&f.filter, "filter", "", "duplicate content filter: 1 (on, default) or 0")
	fs.StringVar(&f.gl, "gl", "", "boost results from this two-letter country code")
	fs.StringVar(&f.googlehost, "googlehost", "", "deprecated: local Google domain to search on")
	fs.StringVar(&f.highRange, "high-range", "", "upper bound of a search range, with --low-range")
	fs.StringVar(&f.hl, "hl", "", "interface language of the search")
	fs.StringVar(&f.hq, "hq", "", "extra query terms AND-ed with the query")
	fs.StringVar(&f.imgColorType, "img-color-type", "", "image results: color, gray, mono or trans")
	fs.StringVar(&f.imgDominantColor, "img-dominant-color", "", "image results: dominant color")
	fs.StringVar(&f.imgSize, "img-size", "", "image results: size class, icon..huge")
	fs.StringVar(&f.imgType, "img-type", "", "image results: clipart, face, lineart, stock, photo or animated")
	fs.StringVar(&f.linkSite, "link-site", "", "require every result to link to this URL")
	fs.StringVar(&f.lowRange, "low-range", "", "lower bound of a search range, with --high-range")
	fs.StringVar(&f.lr, "lr", "", "restrict results to documents in this language, e.g. lang_de")
	fs.Int64Var(&f.num, "num", 0, "number of results to return, 1-10")
	fs.StringVar(&f.orTerms, "or-terms", "", "words of which every result must contain at least one")
	fs.StringVar(&f.relatedSite, "related-site", "", "deprecated")
	fs.StringVar(&f.rights, "rights", "", "license filter, e.g. cc_publicdomain")
	fs.StringVar(&f.safe, "safe", "", "SafeSearch: active or off")
	fs.StringVar(&f.searchType, "search-type", "", "set to image for image search")
	fs.StringVar(&f.siteSearch, "site-search", "", "site every result must come from or be excluded from")
	fs.StringVar(&f.siteSearchFilter, "site-search-filter", "", "include (i) or exclude (e) the --site-search site")
	fs.StringVar(&f.sort, "sort", "", "sort expression, e.g. date")
	fs.Int64Var(&f.start, "start", 0, "1-based index of the first result")
}

// apply copies every changed flag onto the call as its query parameter.
func (f *searchFlags) apply(fs *pflag.FlagSet, set func(name, value string)) {
	text := map[string]string{
		"q": f.q, "cx": f.cx, "c2coff": f.c2coff, "cr": f.cr,
		"dateRestrict": f.dateRestrict, "exactTerms": f.exactTerms,
		"excludeTerms": f.excludeTerms, "fileType": f.fileType,
		"filter": f.filter, "gl": f.gl, "googlehost": f.googlehost,
		"highRange": f.highRange, "hl": f.hl, "hq": f.hq,
		"imgColorType": f.imgColorType, "imgDominantColor": f.imgDominantColor,
		"imgSize": f.imgSize, "imgType": f.imgType, "linkSite": f.linkSite,
		"lowRange": f.lowRange, "lr": f.lr, "orTerms": f.orTerms,
		"relatedSite": f.relatedSite, "rights": f.rights, "safe": f.safe,
		"searchType": f.searchType, "siteSearch": f.siteSearch,
		"siteSearchFilter": f.siteSearchFilter, "sort": f.sort,
	}
	fs.Visit(func(flag *pflag.Flag) {
		wire := cli.WirePath(flag.Name)
		if v, ok := text[wire]; ok {
			set(wire, v)
			return
		}
		switch flag.Name {
		case "num":
			set("num", flag.Value.String())
		case "start":
			set("start", flag.Value.String())
		}
	})
}

func main() {
	eng := cli.New("customsearch", client.Version,
		"Searches over a website or collection of websites defined by a Programmable Search Engine.")

	cse := &cobra.Command{
		Use:   "cse",
		Short: "methods: list and siterestrict-list",
	}
	cse.AddCommand(listCmd(eng), siterestrictListCmd(eng))
	eng.AddCommand(cse)
	eng.Execute()
}

func service(eng *cli.Engine) *customsearch.Service {
	svc := customsearch.New(eng.Client())
	if u := eng.BaseURL(); u != "" {
		svc.BasePath = u
	}
	return svc
}

func finish[T any](eng *cli.Engine, cmd *cobra.Command, call *client.Call[T]) error {
	params, err := eng.ExtraParams()
	if err != nil {
		return err
	}
	for _, kv := range params {
		call.Extra(kv[0], kv[1])
	}
	for _, scope := range eng.Scopes() {
		call.AddScope(scope)
	}
	out, err := call.Do(cmd.Context())
	if err != nil {
		return err
	}
	return eng.WriteOutput(out)
}

func listCmd(eng *cli.Engine) *cobra.Command {
	var flags searchFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Returns search results from a Programmable Search Engine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			call := service(eng).Cse.List()
			flags.apply(cmd.Flags(), func(name, value string) { call.Param(name, value) })
			return finish(eng, cmd, call.Call)
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func siterestrictListCmd(eng *cli.Engine) *cobra.Command {
	var flags searchFlags
	cmd := &cobra.Command{
		Use:   "siterestrict-list",
		Short: "Returns search results from a site-restricted Programmable Search Engine",
		Long: "Returns search results from a Programmable Search Engine created with the " +
			"SiteRestrictedApi option. Request and response are identical to list; this endpoint " +
			"has no daily query quota.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			call := service(eng).Cse.Siterestrict.List()
			flags.apply(cmd.Flags(), func(name, value string) { call.Param(name, value) })
			return finish(eng, cmd, call.Call)
		},
	}
	flags.register(cmd.Flags())
	return cmd
}
