// Package feed renders flights as an RSS 2.0 document.
package feed

import (
	"cmp"
	"encoding/xml"
	"fmt"
	"slices"
	"strconv"
	"time"

	"xcfeed/internal/domain"
)

const (
	ChannelTitle       = "XContest Flight Feed"
	ChannelDescription = "Recent flights"
)

type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	PubDate     string    `xml:"pubDate"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description multiline `xml:"description"`
	PubDate     string    `xml:"pubDate"`
	GUID        string    `xml:"guid"`
}

// multiline is character data whose line feeds are written as-is instead of as &#xA;.
type multiline string

func (m multiline) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.CharData(m)); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

// Renderer builds the RSS channel. Now is used for the channel pubDate.
type Renderer struct {
	Now func() time.Time
}

func NewRenderer() *Renderer {
	return &Renderer{Now: time.Now}
}

// Render returns the feed for flights, newest first, linked to channelLink.
func (r *Renderer) Render(flights []domain.Flight, channelLink string) (string, error) {
	sorted := slices.Clone(flights)
	slices.SortStableFunc(sorted, func(a, b domain.Flight) int {
		return cmp.Compare(a.StartTime, b.StartTime)
	})
	slices.Reverse(sorted)

	items := make([]rssItem, 0, len(sorted))
	for _, f := range sorted {
		items = append(items, rssItem{
			Title:       Title(f),
			Link:        f.URL,
			Description: multiline(Description(f)),
			PubDate:     f.Date(),
			GUID:        strconv.FormatUint(f.ID, 10),
		})
	}

	doc := rssDocument{
		Version: "2.0",
		Channel: rssChannel{
			Title:       ChannelTitle,
			Link:        channelLink,
			Description: ChannelDescription,
			PubDate:     r.Now().UTC().Format(time.RFC1123Z),
			Items:       items,
		},
	}

	out, err := xml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal rss: %w", err)
	}

	return xml.Header + string(out), nil
}

// Title formats the item title, e.g. "Alice: 2025-03-14 - FAI 45.7km (61.2 pts)".
func Title(f domain.Flight) string {
	return fmt.Sprintf("%s: %s - %s %.1fkm (%.1f pts)",
		f.By, f.Date(), f.Route.Type, f.Route.Distance, f.Route.Points)
}

func Description(f domain.Flight) string {
	return fmt.Sprintf("%s flew a %s of %.1fkm scoring %.1f points.\nFlight duration: %s\nURL: %s",
		f.By, f.Route.Type, f.Route.Distance, f.Route.Points, PrettyDuration(f.Duration), f.URL)
}

// Summary is a plain-text digest of a flight.
func Summary(f domain.Flight) string {
	return fmt.Sprintf("%s's Flight on %s\nlasting %s\n%s with a distance of %.1fkm\nScoring %.1f points\nURL: %s",
		f.By, f.Date(), PrettyDuration(f.Duration), f.Route.Type, f.Route.Distance, f.Route.Points, f.URL)
}
