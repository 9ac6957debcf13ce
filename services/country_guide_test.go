package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func guideTestCountry() *CountryDetail {
	desc := "Land of fire and ice"
	minDays := 7
	optimalDays := 10
	flight := 6500.0
	food := 900.5
	distance := 54.0
	rating := 4.9
	shortDesc := "Hot spring highlands"

	return &CountryDetail{
		CountrySummary: CountrySummary{
			ID:             "c1",
			Slug:           "iceland",
			Name:           "Iceland",
			Description:    &desc,
			MinDays:        &minDays,
			OptimalDays:    &optimalDays,
			AvgFlightPrice: &flight,
			AvgFoodPerDay:  &food,
		},
		DetailWonders: []WonderSummary{
			{ID: "w1", Slug: "landmannalaugar", Name: "Landmannalaugar", ShortDescription: &shortDesc},
		},
		Hikes: []HikeView{
			{ID: "h1", Name: "Laugavegur", DistanceKM: &distance},
		},
		Attractions: []AttractionView{
			{ID: "a1", Type: "waterfall", Name: "Seljalandsfoss"},
		},
		Specialists: []SpecialistSummary{
			{ID: "s1", Slug: "bjorn", Type: "local_advisor", Name: "Bjorn", Rating: &rating},
		},
	}
}

func TestRenderCountryGuideHTML(t *testing.T) {
	html, err := RenderCountryGuideHTML(guideTestCountry(), LocaleEN)
	assert.NoError(t, err)

	assert.Contains(t, html, "<h1>Iceland</h1>")
	assert.Contains(t, html, "Country guide")
	assert.Contains(t, html, "Land of fire and ice")
	assert.Contains(t, html, "7-10 days")
	assert.Contains(t, html, "6500")
	assert.Contains(t, html, "900.5")
	assert.Contains(t, html, "Natural wonders")
	assert.Contains(t, html, "Landmannalaugar")
	assert.Contains(t, html, "Hot spring highlands")
	assert.Contains(t, html, "Laugavegur")
	assert.Contains(t, html, "54 km")
	assert.Contains(t, html, "Seljalandsfoss")
	assert.Contains(t, html, "Bjorn")
	assert.Contains(t, html, "★ 4.9")
}

func TestRenderCountryGuideHTMLCzechLabels(t *testing.T) {
	html, err := RenderCountryGuideHTML(guideTestCountry(), LocaleCS)
	assert.NoError(t, err)

	assert.Contains(t, html, "Průvodce zemí")
	assert.Contains(t, html, "Přírodní divy")
	assert.Contains(t, html, "Treky")
	assert.Contains(t, html, "7-10 dní")
	assert.NotContains(t, html, "Country guide")
}

func TestRenderCountryGuideHTMLSparseCountry(t *testing.T) {
	country := &CountryDetail{
		CountrySummary: CountrySummary{ID: "c2", Slug: "peru", Name: "Peru"},
	}

	html, err := RenderCountryGuideHTML(country, LocaleEN)
	assert.NoError(t, err)
	assert.Contains(t, html, "<h1>Peru</h1>")
	assert.NotContains(t, html, "Natural wonders")
	assert.NotContains(t, html, "Trip length")
}

func TestRenderCountryGuideHTMLUnknownLocaleFallsBack(t *testing.T) {
	html, err := RenderCountryGuideHTML(guideTestCountry(), Locale("de"))
	assert.NoError(t, err)
	assert.Contains(t, html, "Průvodce zemí")
}
