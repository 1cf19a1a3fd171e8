package utils

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// GenerateSitemaps writes <dir>/sitemap.xml.
func GenerateSitemaps(dir, baseURL string, routes []string, lastMod time.Time) error {
	xmlOutput, err := GenerateSitemapContent(baseURL, routes, lastMod)
	if err != nil {
		return err
	}

	err = os.WriteFile(filepath.Join(dir, "sitemap.xml"), []byte(xml.Header+xmlOutput), 0644)
	return errors.WithStack(err)
}

// GenerateSitemapContent renders one <url> per route, in order.
func GenerateSitemapContent(baseURL string, routes []string, lastMod time.Time) (string, error) {
	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	for _, route := range routes {
		u := Url{Loc: baseURL + route}
		if !lastMod.IsZero() {
			u.LastMod = lastMod.Format("2006-01-02")
		}
		if route == "/" {
			u.Priority = "1.0"
		}
		sitemap.Urls = append(sitemap.Urls, u)
	}

	xmlOutput, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(xmlOutput), nil
}
