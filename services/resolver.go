package services

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// ContentResolver assembles detail view models from generic item queries.
// Each detail resolution fetches the root row first; if the root is absent
// the whole resolution short-circuits with ErrNotFound and no side queries
// run. Sibling fetches are issued concurrently and joined all-or-fail, so
// partial results are never exposed.
type ContentResolver struct {
	Items     ItemQuerier
	AssetBase string
}

// NewContentResolver creates a resolver over the given item source
func NewContentResolver(items ItemQuerier, assetBase string) *ContentResolver {
	return &ContentResolver{Items: items, AssetBase: assetBase}
}

func (r *ContentResolver) fetch(ctx context.Context, query ItemQuery) ([]map[string]interface{}, error) {
	return r.Items.FetchItems(ctx, query)
}

func (r *ContentResolver) fetchOne(ctx context.Context, query ItemQuery) (map[string]interface{}, error) {
	query.Limit = 1
	rows, err := r.fetch(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

// CountryDetail resolves an enabled country by slug with its parent,
// regions, wonders, hikes, attractions, featured specialists and
// best-combination countries.
func (r *ContentResolver) CountryDetail(ctx context.Context, slug string, loc Locale) (*CountryDetail, error) {
	row, err := r.fetchOne(ctx, ItemQuery{Collection: "countries"}.
		Where("slug", OpEq, slug).
		Where("enabled", OpEq, true))
	if err != nil {
		return nil, err
	}
	root := MapCountry(row, loc, r.AssetBase)
	if root == nil {
		return nil, ErrNotFound
	}

	detail := &CountryDetail{
		CountrySummary:   *root,
		Regions:          []CountrySummary{},
		DetailWonders:    []WonderSummary{},
		Hikes:            []HikeView{},
		Attractions:      []AttractionView{},
		Specialists:      []SpecialistSummary{},
		BestCombinations: []CountrySummary{},
	}

	var (
		parentRows      []map[string]interface{}
		regionRows      []map[string]interface{}
		wonderRows      []map[string]interface{}
		hikeRows        []map[string]interface{}
		attractionRows  []map[string]interface{}
		specialistLinks []map[string]interface{}
		comboLinks      []map[string]interface{}
	)

	g, gctx := errgroup.WithContext(ctx)
	if root.ParentCountryID != nil {
		parentID := *root.ParentCountryID
		g.Go(func() error {
			var err error
			parentRows, err = r.fetch(gctx, ItemQuery{Collection: "countries", Limit: 1}.
				Where("id", OpEq, parentID).
				Where("enabled", OpEq, true))
			return err
		})
	}
	g.Go(func() error {
		var err error
		regionRows, err = r.fetch(gctx, ItemQuery{Collection: "countries"}.
			Where("parent_country_id", OpEq, root.ID).
			Where("enabled", OpEq, true))
		return err
	})
	g.Go(func() error {
		var err error
		wonderRows, err = r.fetch(gctx, ItemQuery{Collection: "wonders"}.
			Where("country_id", OpEq, root.ID))
		return err
	})
	g.Go(func() error {
		var err error
		hikeRows, err = r.fetch(gctx, ItemQuery{Collection: "hikes"}.
			Where("country_id", OpEq, root.ID))
		return err
	})
	g.Go(func() error {
		var err error
		attractionRows, err = r.fetch(gctx, ItemQuery{Collection: "attractions"}.
			Where("country_id", OpEq, root.ID))
		return err
	})
	g.Go(func() error {
		var err error
		specialistLinks, err = r.fetch(gctx, ItemQuery{Collection: "specialist_countries"}.
			Where("country_id", OpEq, root.ID).
			OrderBy("sort_order"))
		return err
	})
	g.Go(func() error {
		var err error
		comboLinks, err = r.fetch(gctx, ItemQuery{Collection: "best_combinations"}.
			Where("country_id", OpEq, root.ID).
			OrderBy("sort_order"))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(parentRows) > 0 {
		detail.Parent = MapCountry(parentRows[0], loc, r.AssetBase)
	}
	detail.Regions = r.mapCountries(regionRows, loc)
	sortCountriesByName(detail.Regions)
	detail.DetailWonders = r.mapWonders(wonderRows, loc)
	sortWondersByName(detail.DetailWonders)
	detail.Hikes = mapHikes(hikeRows, loc)
	sortHikesByName(detail.Hikes)
	detail.Attractions = mapAttractions(attractionRows, loc)
	sortAttractionsByName(detail.Attractions)

	specialists, err := r.resolveFeaturedSpecialists(ctx, specialistLinks, loc)
	if err != nil {
		return nil, err
	}
	detail.Specialists = specialists

	related, err := r.resolveLinkedCountries(ctx, comboLinks, "related_country_id", loc)
	if err != nil {
		return nil, err
	}
	detail.BestCombinations = related

	return detail, nil
}

// WonderDetail resolves a wonder by slug with its parent country, linked
// hikes and ordered tags. Wonders themselves carry no enabled flag; only
// the parent country lookup filters on it.
func (r *ContentResolver) WonderDetail(ctx context.Context, slug string, loc Locale) (*WonderDetail, error) {
	row, err := r.fetchOne(ctx, ItemQuery{Collection: "wonders"}.
		Where("slug", OpEq, slug))
	if err != nil {
		return nil, err
	}
	root := MapWonder(row, loc, r.AssetBase)
	if root == nil {
		return nil, ErrNotFound
	}

	detail := &WonderDetail{
		WonderSummary: *root,
		Description:   localizedHTMLPtr(row, "description", loc),
		Hikes:         []HikeView{},
		Tags:          []TagView{},
	}

	var (
		countryRows []map[string]interface{}
		hikeRows    []map[string]interface{}
		tagRows     []map[string]interface{}
	)

	g, gctx := errgroup.WithContext(ctx)
	if root.CountryID != "" {
		g.Go(func() error {
			var err error
			countryRows, err = r.fetch(gctx, ItemQuery{Collection: "countries", Limit: 1}.
				Where("id", OpEq, root.CountryID).
				Where("enabled", OpEq, true))
			return err
		})
	}
	g.Go(func() error {
		var err error
		hikeRows, err = r.fetch(gctx, ItemQuery{Collection: "hikes"}.
			Where("wonder_id", OpEq, root.ID))
		return err
	})
	g.Go(func() error {
		var err error
		tagRows, err = r.fetch(gctx, ItemQuery{Collection: "wonder_tags"}.
			Where("wonder_id", OpEq, root.ID).
			OrderBy("sort_order"))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(countryRows) > 0 {
		detail.Country = MapCountry(countryRows[0], loc, r.AssetBase)
	}
	detail.Hikes = mapHikes(hikeRows, loc)
	sortHikesByName(detail.Hikes)
	for _, tagRow := range tagRows {
		if tag := MapTag(tagRow, loc); tag != nil {
			detail.Tags = append(detail.Tags, *tag)
		}
	}

	return detail, nil
}

// SpecialistDetail resolves an enabled specialist by slug with their home
// country and trips, each trip carrying its ascending start dates fetched
// in one batched query.
func (r *ContentResolver) SpecialistDetail(ctx context.Context, slug string, loc Locale) (*SpecialistDetail, error) {
	row, err := r.fetchOne(ctx, ItemQuery{Collection: "specialists"}.
		Where("slug", OpEq, slug).
		Where("enabled", OpEq, true))
	if err != nil {
		return nil, err
	}
	root := MapSpecialist(row, loc, r.AssetBase)
	if root == nil {
		return nil, ErrNotFound
	}

	detail := &SpecialistDetail{
		SpecialistSummary: *root,
		Bio:               localizedHTMLPtr(row, "bio", loc),
		Trips:             []TripView{},
	}

	var (
		countryRows []map[string]interface{}
		tripRows    []map[string]interface{}
	)

	g, gctx := errgroup.WithContext(ctx)
	if root.HomeCountryID != nil {
		homeID := *root.HomeCountryID
		g.Go(func() error {
			var err error
			countryRows, err = r.fetch(gctx, ItemQuery{Collection: "countries", Limit: 1}.
				Where("id", OpEq, homeID).
				Where("enabled", OpEq, true))
			return err
		})
	}
	g.Go(func() error {
		var err error
		tripRows, err = r.fetch(gctx, ItemQuery{Collection: "trips"}.
			Where("specialist_id", OpEq, root.ID))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(countryRows) > 0 {
		detail.HomeCountry = MapCountry(countryRows[0], loc, r.AssetBase)
	}

	trips := make([]TripView, 0, len(tripRows))
	tripIDs := make([]string, 0, len(tripRows))
	for _, tripRow := range tripRows {
		if trip := MapTrip(tripRow, loc); trip != nil {
			trips = append(trips, *trip)
			tripIDs = append(tripIDs, trip.ID)
		}
	}
	sort.SliceStable(trips, func(i, j int) bool { return trips[i].Title < trips[j].Title })

	if len(tripIDs) > 0 {
		dateRows, err := r.fetch(ctx, ItemQuery{Collection: "trip_dates"}.
			Where("trip_id", OpIn, tripIDs).
			OrderBy("start_date"))
		if err != nil {
			return nil, err
		}
		datesByTrip := make(map[string][]string)
		for _, dateRow := range dateRows {
			tripID, ok := idField(dateRow, "trip_id")
			if !ok {
				continue
			}
			if date, ok := idField(dateRow, "start_date"); ok {
				datesByTrip[tripID] = append(datesByTrip[tripID], date)
			}
		}
		for i := range trips {
			if dates, ok := datesByTrip[trips[i].ID]; ok {
				sort.Strings(dates)
				trips[i].StartDates = dates
			}
		}
	}
	detail.Trips = trips

	return detail, nil
}

// CombinationDetail resolves a country combination by slug, its member
// countries kept in join-table order.
func (r *ContentResolver) CombinationDetail(ctx context.Context, slug string, loc Locale) (*CombinationDetail, error) {
	row, err := r.fetchOne(ctx, ItemQuery{Collection: "country_combinations"}.
		Where("slug", OpEq, slug))
	if err != nil {
		return nil, err
	}
	detail := MapCombination(row, loc)
	if detail == nil {
		return nil, ErrNotFound
	}

	links, err := r.fetch(ctx, ItemQuery{Collection: "combination_countries"}.
		Where("combination_id", OpEq, detail.ID).
		OrderBy("sort_order"))
	if err != nil {
		return nil, err
	}
	countries, err := r.resolveLinkedCountries(ctx, links, "country_id", loc)
	if err != nil {
		return nil, err
	}
	detail.Countries = countries

	return detail, nil
}

// ListCountries resolves the filtered country list, each country carrying
// its wonders, sorted by localized name ascending.
func (r *ContentResolver) ListCountries(ctx context.Context, filters CountryFilters, loc Locale) ([]CountrySummary, error) {
	rows, err := r.fetch(ctx, filters.Apply(ItemQuery{Collection: "countries"}))
	if err != nil {
		return nil, err
	}

	countries := r.mapCountries(rows, loc)
	sortCountriesByName(countries)

	countryIDs := make([]string, 0, len(countries))
	for _, country := range countries {
		countryIDs = append(countryIDs, country.ID)
	}
	if len(countryIDs) == 0 {
		return countries, nil
	}

	wonderRows, err := r.fetch(ctx, ItemQuery{Collection: "wonders"}.
		Where("country_id", OpIn, countryIDs))
	if err != nil {
		return nil, err
	}
	wondersByCountry := make(map[string][]WonderSummary)
	for _, wonderRow := range wonderRows {
		wonder := MapWonder(wonderRow, loc, r.AssetBase)
		if wonder == nil {
			continue
		}
		wondersByCountry[wonder.CountryID] = append(wondersByCountry[wonder.CountryID], *wonder)
	}
	for i := range countries {
		wonders := wondersByCountry[countries[i].ID]
		sortWondersByName(wonders)
		countries[i].Wonders = wonders
	}

	return countries, nil
}

// ListSpecialists resolves all enabled specialists, rating descending then
// name ascending.
func (r *ContentResolver) ListSpecialists(ctx context.Context, loc Locale) ([]SpecialistSummary, error) {
	rows, err := r.fetch(ctx, ItemQuery{Collection: "specialists"}.
		Where("enabled", OpEq, true))
	if err != nil {
		return nil, err
	}
	specialists := make([]SpecialistSummary, 0, len(rows))
	for _, row := range rows {
		if s := MapSpecialist(row, loc, r.AssetBase); s != nil {
			specialists = append(specialists, *s)
		}
	}
	sort.SliceStable(specialists, func(i, j int) bool {
		ri, rj := ratingOf(specialists[i]), ratingOf(specialists[j])
		if ri != rj {
			return ri > rj
		}
		return specialists[i].Name < specialists[j].Name
	})
	return specialists, nil
}

// resolveFeaturedSpecialists turns ordered join rows into full enabled
// specialists. The join table's sort_order is authoritative; rating
// descending then name ascending break ties only among rows sharing the
// same sort_order.
func (r *ContentResolver) resolveFeaturedSpecialists(ctx context.Context, links []map[string]interface{}, loc Locale) ([]SpecialistSummary, error) {
	type rankedSpecialist struct {
		sortOrder int
		view      SpecialistSummary
	}

	ids := make([]string, 0, len(links))
	orderByID := make(map[string]int, len(links))
	seen := make(map[string]bool, len(links))
	for _, link := range links {
		id, ok := idField(link, "specialist_id")
		if !ok || seen[id] {
			// Duplicate rows for one specialist keep the first row's sort_order.
			continue
		}
		seen[id] = true
		ids = append(ids, id)
		if order, ok := AsInt(valueOrNil(link, "sort_order")); ok {
			orderByID[id] = order
		}
	}
	if len(ids) == 0 {
		return []SpecialistSummary{}, nil
	}

	rows, err := r.fetch(ctx, ItemQuery{Collection: "specialists"}.
		Where("id", OpIn, ids).
		Where("enabled", OpEq, true))
	if err != nil {
		return nil, err
	}
	byID := make(map[string]SpecialistSummary, len(rows))
	for _, row := range rows {
		if s := MapSpecialist(row, loc, r.AssetBase); s != nil {
			byID[s.ID] = *s
		}
	}

	ranked := make([]rankedSpecialist, 0, len(ids))
	for _, id := range ids {
		view, ok := byID[id]
		if !ok {
			continue
		}
		ranked = append(ranked, rankedSpecialist{sortOrder: orderByID[id], view: view})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].sortOrder != ranked[j].sortOrder {
			return ranked[i].sortOrder < ranked[j].sortOrder
		}
		ri, rj := ratingOf(ranked[i].view), ratingOf(ranked[j].view)
		if ri != rj {
			return ri > rj
		}
		return ranked[i].view.Name < ranked[j].view.Name
	})

	out := make([]SpecialistSummary, 0, len(ranked))
	for _, rs := range ranked {
		out = append(out, rs.view)
	}
	return out, nil
}

// resolveLinkedCountries turns ordered join rows into full enabled country
// summaries, preserving join order; name ascending is the final tiebreak
// among rows sharing a sort_order.
func (r *ContentResolver) resolveLinkedCountries(ctx context.Context, links []map[string]interface{}, idKey string, loc Locale) ([]CountrySummary, error) {
	type rankedCountry struct {
		sortOrder int
		position  int
		view      CountrySummary
	}

	ids := make([]string, 0, len(links))
	orderByID := make(map[string]int, len(links))
	positionByID := make(map[string]int, len(links))
	for i, link := range links {
		id, ok := idField(link, idKey)
		if !ok {
			continue
		}
		if _, dup := positionByID[id]; dup {
			// Duplicate rows for one country keep the first row's rank.
			continue
		}
		ids = append(ids, id)
		positionByID[id] = i
		if order, ok := AsInt(valueOrNil(link, "sort_order")); ok {
			orderByID[id] = order
		}
	}
	if len(ids) == 0 {
		return []CountrySummary{}, nil
	}

	rows, err := r.fetch(ctx, ItemQuery{Collection: "countries"}.
		Where("id", OpIn, ids).
		Where("enabled", OpEq, true))
	if err != nil {
		return nil, err
	}
	byID := make(map[string]CountrySummary, len(rows))
	for _, row := range rows {
		if c := MapCountry(row, loc, r.AssetBase); c != nil {
			byID[c.ID] = *c
		}
	}

	ranked := make([]rankedCountry, 0, len(ids))
	for _, id := range ids {
		view, ok := byID[id]
		if !ok {
			continue
		}
		ranked = append(ranked, rankedCountry{
			sortOrder: orderByID[id],
			position:  positionByID[id],
			view:      view,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].sortOrder != ranked[j].sortOrder {
			return ranked[i].sortOrder < ranked[j].sortOrder
		}
		if ranked[i].position != ranked[j].position {
			return ranked[i].position < ranked[j].position
		}
		return ranked[i].view.Name < ranked[j].view.Name
	})

	out := make([]CountrySummary, 0, len(ranked))
	for _, rc := range ranked {
		out = append(out, rc.view)
	}
	return out, nil
}

func (r *ContentResolver) mapCountries(rows []map[string]interface{}, loc Locale) []CountrySummary {
	out := make([]CountrySummary, 0, len(rows))
	for _, row := range rows {
		if c := MapCountry(row, loc, r.AssetBase); c != nil {
			out = append(out, *c)
		}
	}
	return out
}

func (r *ContentResolver) mapWonders(rows []map[string]interface{}, loc Locale) []WonderSummary {
	out := make([]WonderSummary, 0, len(rows))
	for _, row := range rows {
		if w := MapWonder(row, loc, r.AssetBase); w != nil {
			out = append(out, *w)
		}
	}
	return out
}

func mapHikes(rows []map[string]interface{}, loc Locale) []HikeView {
	out := make([]HikeView, 0, len(rows))
	for _, row := range rows {
		if h := MapHike(row, loc); h != nil {
			out = append(out, *h)
		}
	}
	return out
}

func mapAttractions(rows []map[string]interface{}, loc Locale) []AttractionView {
	out := make([]AttractionView, 0, len(rows))
	for _, row := range rows {
		if a := MapAttraction(row, loc); a != nil {
			out = append(out, *a)
		}
	}
	return out
}

func sortCountriesByName(list []CountrySummary) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
}

func sortWondersByName(list []WonderSummary) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
}

func sortHikesByName(list []HikeView) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
}

func sortAttractionsByName(list []AttractionView) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
}

func ratingOf(s SpecialistSummary) float64 {
	if s.Rating == nil {
		return 0
	}
	return *s.Rating
}
