// Package feed renders the public RSS 2.0 feed of the latest articles.
package feed

import (
	"encoding/xml"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cahaya-digital/internal/domain/entity"
	"cahaya-digital/internal/handler/http/respond"
	"cahaya-digital/internal/repository"
	artUC "cahaya-digital/internal/usecase/article"
	settingsUC "cahaya-digital/internal/usecase/settings"
	"cahaya-digital/internal/utils/text"
)

// Defaults for the feed.
const (
	DefaultItemLimit       = 20
	DescriptionMaxRunes    = 300
	defaultSiteDescription = "Berita terbaru"
)

type rss struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel channel  `xml:"channel"`
}

type channel struct {
	Title         string `xml:"title"`
	Link          string `xml:"link"`
	Description   string `xml:"description"`
	Language      string `xml:"language"`
	LastBuildDate string `xml:"lastBuildDate,omitempty"`
	Items         []item `xml:"item"`
}

type item struct {
	Title       string     `xml:"title"`
	Link        string     `xml:"link"`
	GUID        guid       `xml:"guid"`
	Description string     `xml:"description"`
	Category    string     `xml:"category"`
	Author      string     `xml:"author,omitempty"`
	PubDate     string     `xml:"pubDate"`
	Enclosure   *enclosure `xml:"enclosure,omitempty"`
}

type guid struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type enclosure struct {
	URL    string `xml:"url,attr"`
	Type   string `xml:"type,attr"`
	Length int    `xml:"length,attr"`
}

// Handler serves GET /rss.xml.
type Handler struct {
	Articles *artUC.Service
	Settings *settingsUC.Service
	// BaseURL is the public site address used for item links. When empty it
	// is derived from the request.
	BaseURL string
	Limit   int
}

// ServeHTTP godoc
// @Summary      RSS feed
// @Description  RSS 2.0 feed of the latest articles
// @Tags         feed
// @Produce      xml
// @Success      200 {string} string "RSS document"
// @Router       /rss.xml [get]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit := h.Limit
	if limit <= 0 {
		limit = DefaultItemLimit
	}
	base := h.baseURL(r)

	siteName := entity.DefaultSiteName
	if s, err := h.Settings.Get(r.Context()); err == nil {
		siteName = s.SiteName
	}

	articles := h.Articles.List(r.Context(), repository.Page{Limit: limit})
	doc := rss{
		Version: "2.0",
		Channel: channel{
			Title:       siteName,
			Link:        base,
			Description: defaultSiteDescription + " dari " + siteName,
			Language:    "id",
		},
	}
	if len(articles) > 0 {
		doc.Channel.LastBuildDate = articles[0].PublishedAt.Format(time.RFC1123Z)
	}
	for _, a := range articles {
		doc.Channel.Items = append(doc.Channel.Items, toItem(a, base))
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(out)
}

func (h Handler) baseURL(r *http.Request) string {
	if h.BaseURL != "" {
		return strings.TrimRight(h.BaseURL, "/")
	}
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func toItem(a *entity.Article, base string) item {
	link := base + "/article/" + strconv.FormatInt(a.ID, 10)
	it := item{
		Title:       a.Title,
		Link:        link,
		GUID:        guid{IsPermaLink: true, Value: link},
		Description: text.Excerpt(a.Summary, a.Content, DescriptionMaxRunes),
		Category:    a.Category.Label(),
		Author:      a.Author,
		PubDate:     a.PublishedAt.Format(time.RFC1123Z),
	}
	if img := absolute(a.ImageURL, base); img != "" {
		it.Enclosure = &enclosure{URL: img, Type: imageType(img)}
	}
	return it
}

func absolute(ref, base string) string {
	switch {
	case ref == "":
		return ""
	case strings.HasPrefix(ref, "/"):
		return base + ref
	default:
		return ref
	}
}

func imageType(url string) string {
	lower := strings.ToLower(url)
	switch {
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".webp"):
		return "image/webp"
	case strings.HasSuffix(lower, ".gif"):
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
