package storefront

import (
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"titlesmith/internal/core/extract"
	perr "titlesmith/internal/platform/errors"
)

const productsPath = "/products/"

// catalog SKUs: two or three letters then three to five digits, eg TK3180 or CM12345
var skuPattern = regexp.MustCompile(`^[A-Za-z]{2,3}\d{3,5}$`)

// BuildProductURL accepts either a product URL on base or a bare SKU
func BuildProductURL(base, input string) (string, error) {
	base = trimSlash(base)
	in := strings.TrimSpace(input)
	// scheme and host are case-insensitive
	prefix := strings.ToLower(base + productsPath)
	switch {
	case in == "":
		return "", perr.WithField(perr.New(perr.ErrorCodeInvalidArgument, "product URL or SKU is required"), "product")
	case strings.HasPrefix(strings.ToLower(in), prefix) && len(in) > len(prefix):
		return in, nil
	case skuPattern.MatchString(in):
		return base + productsPath + strings.ToLower(in), nil
	default:
		return "", perr.WithField(
			perr.Newf(perr.ErrorCodeInvalidArgument, "expected a %s%s URL or a SKU like TK3180, got %q", base, productsPath, in),
			"product")
	}
}

// Parse scrapes the og:title meta and the product tag links from a product page.
// The document <title> stands in when og:title is missing
func Parse(r io.Reader) (extract.RawInput, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return extract.RawInput{}, perr.Wrapf(err, perr.ErrorCodeUpstream, "storefront page parse failed")
	}

	title := strings.TrimSpace(doc.Find(`meta[property="og:title"]`).AttrOr("content", ""))
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	var tags []string
	doc.Find("div.product-single__tags a").Each(func(_ int, s *goquery.Selection) {
		t := strings.ToLower(strings.TrimSpace(s.Text()))
		t = strings.TrimSpace(strings.TrimSuffix(t, ","))
		if t != "" {
			tags = append(tags, t)
		}
	})

	return extract.RawInput{Title: title, Tags: tags}, nil
}

func trimSlash(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), "/")
}
