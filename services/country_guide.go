package services

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
)

// guideLabels holds the static strings of the guide per locale.
type guideLabels struct {
	Title       string
	TripLength  string
	Days        string
	Flight      string
	Stay        string
	Food        string
	Wonders     string
	Hikes       string
	Attractions string
	Specialists string
}

var guideLabelsByLocale = map[Locale]guideLabels{
	LocaleCS: {
		Title:       "Průvodce zemí",
		TripLength:  "Délka cesty",
		Days:        "dní",
		Flight:      "Letenka",
		Stay:        "Ubytování",
		Food:        "Jídlo / den",
		Wonders:     "Přírodní divy",
		Hikes:       "Treky",
		Attractions: "Zajímavá místa",
		Specialists: "Místní průvodci",
	},
	LocaleEN: {
		Title:       "Country guide",
		TripLength:  "Trip length",
		Days:        "days",
		Flight:      "Flight",
		Stay:        "Accommodation",
		Food:        "Food / day",
		Wonders:     "Natural wonders",
		Hikes:       "Hikes",
		Attractions: "Places to see",
		Specialists: "Local specialists",
	},
}

// Flattened template data. Pointers get dereferenced here so the
// template only deals with plain strings.
type guideItem struct {
	Name string
	Meta string
}

type guideFact struct {
	Label string
	Value string
}

type guideData struct {
	Labels      guideLabels
	Name        string
	Description string
	Facts       []guideFact
	Wonders     []guideItem
	Hikes       []guideItem
	Attractions []guideItem
	Specialists []guideItem
}

var countryGuideTemplate = template.Must(template.New("country_guide").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body {
            font-family: Georgia, "Times New Roman", serif;
            font-size: 11pt;
            line-height: 1.5;
            color: #1a1a1a;
        }
        h1 {
            font-size: 20pt;
            margin-bottom: 4pt;
        }
        h2 {
            font-size: 14pt;
            margin-top: 18pt;
            margin-bottom: 8pt;
            border-bottom: 1px solid #ccc;
            padding-bottom: 2pt;
        }
        .subtitle {
            color: #666;
            margin-bottom: 18pt;
        }
        .facts {
            margin-bottom: 12pt;
        }
        .facts td {
            padding: 2pt 12pt 2pt 0;
        }
        ul {
            margin-left: 0.3in;
            margin-bottom: 12pt;
        }
        li {
            margin-bottom: 4pt;
        }
        .meta {
            color: #666;
            font-size: 9pt;
        }
    </style>
</head>
<body>
    <h1>{{.Name}}</h1>
    <div class="subtitle">{{.Labels.Title}}</div>
    {{if .Description}}<div>{{.Description}}</div>{{end}}

    {{if .Facts}}
    <table class="facts">
        {{range .Facts}}<tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>
        {{end}}
    </table>
    {{end}}

    {{if .Wonders}}
    <h2>{{.Labels.Wonders}}</h2>
    <ul>
        {{range .Wonders}}<li><strong>{{.Name}}</strong>{{if .Meta}} <span class="meta">{{.Meta}}</span>{{end}}</li>
        {{end}}
    </ul>
    {{end}}

    {{if .Hikes}}
    <h2>{{.Labels.Hikes}}</h2>
    <ul>
        {{range .Hikes}}<li><strong>{{.Name}}</strong>{{if .Meta}} <span class="meta">{{.Meta}}</span>{{end}}</li>
        {{end}}
    </ul>
    {{end}}

    {{if .Attractions}}
    <h2>{{.Labels.Attractions}}</h2>
    <ul>
        {{range .Attractions}}<li><strong>{{.Name}}</strong>{{if .Meta}} <span class="meta">{{.Meta}}</span>{{end}}</li>
        {{end}}
    </ul>
    {{end}}

    {{if .Specialists}}
    <h2>{{.Labels.Specialists}}</h2>
    <ul>
        {{range .Specialists}}<li><strong>{{.Name}}</strong>{{if .Meta}} <span class="meta">{{.Meta}}</span>{{end}}</li>
        {{end}}
    </ul>
    {{end}}
</body>
</html>`))

func formatPrice(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func buildGuideData(country *CountryDetail, labels guideLabels) guideData {
	data := guideData{
		Labels: labels,
		Name:   country.Name,
	}
	if country.Description != nil {
		data.Description = *country.Description
	}

	if country.OptimalDays != nil {
		length := strconv.Itoa(*country.OptimalDays)
		if country.MinDays != nil {
			length = fmt.Sprintf("%d-%d", *country.MinDays, *country.OptimalDays)
		}
		data.Facts = append(data.Facts, guideFact{labels.TripLength, length + " " + labels.Days})
	}
	if v := formatPrice(country.AvgFlightPrice); v != "" {
		data.Facts = append(data.Facts, guideFact{labels.Flight, v})
	}
	if v := formatPrice(country.AvgAccommodation); v != "" {
		data.Facts = append(data.Facts, guideFact{labels.Stay, v})
	}
	if v := formatPrice(country.AvgFoodPerDay); v != "" {
		data.Facts = append(data.Facts, guideFact{labels.Food, v})
	}

	for _, w := range country.DetailWonders {
		item := guideItem{Name: w.Name}
		if w.ShortDescription != nil {
			item.Meta = *w.ShortDescription
		}
		data.Wonders = append(data.Wonders, item)
	}
	for _, h := range country.Hikes {
		item := guideItem{Name: h.Name}
		if h.DistanceKM != nil {
			item.Meta = formatPrice(h.DistanceKM) + " km"
		}
		data.Hikes = append(data.Hikes, item)
	}
	for _, a := range country.Attractions {
		data.Attractions = append(data.Attractions, guideItem{Name: a.Name, Meta: a.Type})
	}
	for _, s := range country.Specialists {
		item := guideItem{Name: s.Name}
		if s.Rating != nil {
			item.Meta = "★ " + formatPrice(s.Rating)
		}
		data.Specialists = append(data.Specialists, item)
	}

	return data
}

// RenderCountryGuideHTML renders the printable guide markup for a
// resolved country in the given locale.
func RenderCountryGuideHTML(country *CountryDetail, loc Locale) (string, error) {
	labels, ok := guideLabelsByLocale[loc]
	if !ok {
		labels = guideLabelsByLocale[DefaultLocale]
	}

	var buf bytes.Buffer
	err := countryGuideTemplate.Execute(&buf, buildGuideData(country, labels))
	if err != nil {
		return "", fmt.Errorf("failed to render country guide: %w", err)
	}

	return buf.String(), nil
}

// GenerateCountryGuidePDF renders a country guide and prints it to PDF
func GenerateCountryGuidePDF(country *CountryDetail, loc Locale) ([]byte, error) {
	html, err := RenderCountryGuideHTML(country, loc)
	if err != nil {
		return nil, err
	}

	return GeneratePDF(html, DefaultPDFOptions())
}
