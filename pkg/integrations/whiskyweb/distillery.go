package whiskyweb

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/MyWhiskies/pkg/model"
)

type DistilleryJSON struct {
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Address     struct {
		AddressLocality string `json:"addressLocality"`
		AddressRegion   string `json:"addressRegion"`
		AddressCountry  string `json:"addressCountry"`
	} `json:"address"`
}

// FindDistillery searches the directory and reads each hit's detail page.
func (w *WhiskyWebIntegration) FindDistillery(name string) ([]model.Distillery, error) {
	collector := colly.NewCollector(colly.AllowedDomains(w.domain))

	var (
		errs    error
		results []model.Distillery
	)

	collector.OnHTML(".distillery-item", func(element *colly.HTMLElement) {
		link := element.ChildAttr(".name > a", "href")
		if link == "" {
			return
		}

		distillery, err := w.getDistilleryFromURI(element.Request.AbsoluteURL(link), collector)
		if multierr.AppendInto(&errs, err) {
			return
		}

		if distillery.Name != "" {
			results = append(results, distillery)
		}
	})

	multierr.AppendInto(&errs, collector.Visit(w.baseURL+"/search?q="+url.QueryEscape(name)+"&type=distillery"))

	return results, errs
}

func (w *WhiskyWebIntegration) getDistilleryFromURI(uri string, collector *colly.Collector) (model.Distillery, error) {
	var distillery model.Distillery

	detail := collector.Clone()

	detail.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		var distilleryJSON DistilleryJSON
		if err := json.Unmarshal([]byte(element.Text), &distilleryJSON); err != nil {
			w.logger.Warn("failed to parse distillery json", zap.String("url", uri), zap.Error(err))

			return
		}

		distillery = model.Distillery{
			Name:        strings.TrimSpace(distilleryJSON.Name),
			Description: strings.TrimSpace(distilleryJSON.Description),
			Region1:     firstNonEmpty(distilleryJSON.Address.AddressRegion, distilleryJSON.Address.AddressLocality),
			Region2:     strings.TrimSpace(distilleryJSON.Address.AddressCountry),
			URL:         stringPointer(firstNonEmpty(distilleryJSON.URL, uri)),
		}
	})

	err := detail.Visit(uri)

	return distillery, err
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}

	return ""
}

func stringPointer(value string) *string {
	if len(value) > 0 {
		return pointy.String(value)
	}

	return nil
}
