package ingestion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// markupSelectors never carry readable text
var markupSelectors = []string{"script", "style", "noscript", "template", "svg"}

// postingNoiseSelectors are job board chrome removed from postings
var postingNoiseSelectors = []string{
	"nav", "footer", "header",
	"form", ".application-form", "#application-form", ".apply-button-container",
	".eeo-statement", ".eeo-section", ".voluntary-disclosure",
	".cookie-banner", ".cookie-consent", ".social-share", ".share-buttons",
}

// contentSelectors locate the posting body; the first match wins
var contentSelectors = []string{
	".job-description",
	"#job-description",
	".job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
}

const blockElements = "p, div, section, article, main, header, footer, nav, address, ul, ol, li, tr, table, h1, h2, h3, h4, h5, h6, dt, dd, blockquote, pre"

var htmlTag = regexp.MustCompile(`(?i)<\s*(html|body|div|p|ul|ol|li|br|h[1-6]|span|table|strong|em|b|a)\b[^>]*>`)

// LooksLikeHTML reports whether content carries enough markup to be parsed as HTML
func LooksLikeHTML(content string) bool {
	return len(htmlTag.FindAllStringIndex(content, 3)) >= 2
}

// HTMLToText extracts the readable text of a job posting.
// Page chrome is dropped and the posting body is located by contentSelectors.
func HTMLToText(html string) (string, error) {
	return htmlToText(html, append(append([]string{}, markupSelectors...), postingNoiseSelectors...), true)
}

// ResumeHTMLToText extracts the text of an HTML resume. Header and footer
// blocks are kept since they usually hold the contact details.
func ResumeHTMLToText(html string) (string, error) {
	return htmlToText(html, markupSelectors, false)
}

// htmlToText removes noise, optionally narrows to the posting body, then renders
// block elements as lines and list items as "- " bullets
func htmlToText(html string, noise []string, narrow bool) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(strings.Join(noise, ", ")).Remove()

	var content *goquery.Selection
	if narrow {
		for _, selector := range contentSelectors {
			if sel := doc.Find(selector); sel.Length() > 0 {
				content = sel.First()
				break
			}
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	content.Find("br").ReplaceWithHtml("\n")
	content.Find("li").PrependHtml("- ")
	content.Find(blockElements).AppendHtml("\n")
	content.Find("td, th").AppendHtml(" ")

	return CleanText(content.Text()), nil
}
