package job_source

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const blockElements = "p, li, div, br, h1, h2, h3, h4, h5, h6, ul, ol, tr"

// htmlToText сводит html-описание вакансии к одной строке текста.
// script и style выбрасываются, блочные элементы разделяются пробелом
func htmlToText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}

	body := doc.Find("body")
	body.Find("script, style").Remove()
	body.Find(blockElements).Each(func(_ int, sel *goquery.Selection) {
		sel.AfterHtml(" ")
	})

	return strings.Join(strings.Fields(body.Text()), " ")
}
