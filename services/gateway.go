package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"travel_wonders_go/config"

	"gorm.io/gorm"
)

// ErrNotFound signals that the requested entity is absent or disabled. It
// is the only failure class that advances a source chain; everything else
// propagates unmodified.
var ErrNotFound = errors.New("content not found")

// ContentSource is one way of answering the read operations of the content
// API. Implementations either call a purpose-built curated endpoint or
// reconstruct the same shapes from generic item-collection queries.
type ContentSource interface {
	ListCountries(ctx context.Context, filters CountryFilters, loc Locale) ([]CountrySummary, error)
	CountryDetail(ctx context.Context, slug string, loc Locale) (*CountryDetail, error)
	WonderDetail(ctx context.Context, slug string, loc Locale) (*WonderDetail, error)
	ListSpecialists(ctx context.Context, loc Locale) ([]SpecialistSummary, error)
	SpecialistDetail(ctx context.Context, slug string, loc Locale) (*SpecialistDetail, error)
	CombinationDetail(ctx context.Context, slug string, loc Locale) (*CombinationDetail, error)
}

// RestSource reads from a remote curated REST deployment exposing the
// {data: ...} envelope. A 404 status or a null detail payload maps to
// ErrNotFound; malformed responses and other status codes propagate.
type RestSource struct {
	BaseURL string
	client  *http.Client
}

// NewRestSource creates a source for the given curated API base URL
func NewRestSource(baseURL string) *RestSource {
	return &RestSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s *RestSource) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	reqURL := s.BaseURL + path
	if encoded := params.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build content request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("content request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("content API returned status: %d", resp.StatusCode)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode content response: %w", err)
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return ErrNotFound
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode content payload: %w", err)
	}
	return nil
}

func localeParams(loc Locale) url.Values {
	return url.Values{"locale": []string{string(loc)}}
}

func (s *RestSource) ListCountries(ctx context.Context, filters CountryFilters, loc Locale) ([]CountrySummary, error) {
	params := filters.Encode()
	params.Set("locale", string(loc))
	var countries []CountrySummary
	if err := s.getJSON(ctx, "/countries", params, &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

func (s *RestSource) CountryDetail(ctx context.Context, slug string, loc Locale) (*CountryDetail, error) {
	var detail CountryDetail
	if err := s.getJSON(ctx, "/countries/"+url.PathEscape(slug), localeParams(loc), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *RestSource) WonderDetail(ctx context.Context, slug string, loc Locale) (*WonderDetail, error) {
	var detail WonderDetail
	if err := s.getJSON(ctx, "/wonders/"+url.PathEscape(slug), localeParams(loc), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *RestSource) ListSpecialists(ctx context.Context, loc Locale) ([]SpecialistSummary, error) {
	var specialists []SpecialistSummary
	if err := s.getJSON(ctx, "/specialists", localeParams(loc), &specialists); err != nil {
		return nil, err
	}
	return specialists, nil
}

func (s *RestSource) SpecialistDetail(ctx context.Context, slug string, loc Locale) (*SpecialistDetail, error) {
	var detail SpecialistDetail
	if err := s.getJSON(ctx, "/specialists/"+url.PathEscape(slug), localeParams(loc), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *RestSource) CombinationDetail(ctx context.Context, slug string, loc Locale) (*CombinationDetail, error) {
	var detail CombinationDetail
	if err := s.getJSON(ctx, "/country-combinations/"+url.PathEscape(slug), localeParams(loc), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// ChainSource tries sources in order, advancing only past ErrNotFound. The
// last source's result stands, including its own ErrNotFound.
type ChainSource struct {
	Sources []ContentSource
}

// NewChainSource builds a chain from the given sources
func NewChainSource(sources ...ContentSource) *ChainSource {
	return &ChainSource{Sources: sources}
}

func (c *ChainSource) each(fn func(ContentSource) error) error {
	err := ErrNotFound
	for _, source := range c.Sources {
		err = fn(source)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	return err
}

func (c *ChainSource) ListCountries(ctx context.Context, filters CountryFilters, loc Locale) ([]CountrySummary, error) {
	var out []CountrySummary
	err := c.each(func(s ContentSource) error {
		list, err := s.ListCountries(ctx, filters, loc)
		if err != nil {
			return err
		}
		out = list
		return nil
	})
	return out, err
}

func (c *ChainSource) CountryDetail(ctx context.Context, slug string, loc Locale) (*CountryDetail, error) {
	var out *CountryDetail
	err := c.each(func(s ContentSource) error {
		detail, err := s.CountryDetail(ctx, slug, loc)
		if err != nil {
			return err
		}
		out = detail
		return nil
	})
	return out, err
}

func (c *ChainSource) WonderDetail(ctx context.Context, slug string, loc Locale) (*WonderDetail, error) {
	var out *WonderDetail
	err := c.each(func(s ContentSource) error {
		detail, err := s.WonderDetail(ctx, slug, loc)
		if err != nil {
			return err
		}
		out = detail
		return nil
	})
	return out, err
}

func (c *ChainSource) ListSpecialists(ctx context.Context, loc Locale) ([]SpecialistSummary, error) {
	var out []SpecialistSummary
	err := c.each(func(s ContentSource) error {
		list, err := s.ListSpecialists(ctx, loc)
		if err != nil {
			return err
		}
		out = list
		return nil
	})
	return out, err
}

func (c *ChainSource) SpecialistDetail(ctx context.Context, slug string, loc Locale) (*SpecialistDetail, error) {
	var out *SpecialistDetail
	err := c.each(func(s ContentSource) error {
		detail, err := s.SpecialistDetail(ctx, slug, loc)
		if err != nil {
			return err
		}
		out = detail
		return nil
	})
	return out, err
}

func (c *ChainSource) CombinationDetail(ctx context.Context, slug string, loc Locale) (*CombinationDetail, error) {
	var out *CombinationDetail
	err := c.each(func(s ContentSource) error {
		detail, err := s.CombinationDetail(ctx, slug, loc)
		if err != nil {
			return err
		}
		out = detail
		return nil
	})
	return out, err
}

// BuildContentSource wires the deployment's source chain. Local-only
// deployments resolve directly against the database; when CONTENT_API_URL
// is set the curated endpoint is tried first, falling back to generic item
// queries (remote when ITEMS_API_URL is set, local otherwise).
func BuildContentSource(cfg *config.Config, database *gorm.DB) ContentSource {
	var items ItemQuerier
	if cfg.ItemsAPIURL != "" {
		items = NewItemsClient(cfg.ItemsAPIURL)
	} else {
		items = NewDBItemStore(database)
	}
	resolver := NewContentResolver(items, cfg.AssetBaseURL)

	if cfg.ContentAPIURL != "" {
		return NewChainSource(NewRestSource(cfg.ContentAPIURL), resolver)
	}
	return resolver
}
