package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Filter operators of the generic item-collection surface
const (
	OpEq      = "_eq"
	OpNeq     = "_neq"
	OpGte     = "_gte"
	OpLte     = "_lte"
	OpIn      = "_in"
	OpNull    = "_null"
	OpNonNull = "_nnull"
)

// ItemFilter is one field constraint of an item query
type ItemFilter struct {
	Field string
	Op    string
	Value interface{}
}

// ItemQuery describes a read against one collection. The same query shape
// is served by the local store and encoded onto the remote items API.
type ItemQuery struct {
	Collection string
	Filters    []ItemFilter
	Sort       []string // field name, "-" prefix for descending
	Limit      int
}

// Where returns a copy of the query with one more filter
func (q ItemQuery) Where(field, op string, value interface{}) ItemQuery {
	filters := make([]ItemFilter, len(q.Filters), len(q.Filters)+1)
	copy(filters, q.Filters)
	q.Filters = append(filters, ItemFilter{Field: field, Op: op, Value: value})
	return q
}

// OrderBy returns a copy of the query with one more sort key
func (q ItemQuery) OrderBy(field string) ItemQuery {
	sort := make([]string, len(q.Sort), len(q.Sort)+1)
	copy(sort, q.Sort)
	q.Sort = append(sort, field)
	return q
}

// ItemQuerier reads raw rows from one of the schema's collections
type ItemQuerier interface {
	FetchItems(ctx context.Context, query ItemQuery) ([]map[string]interface{}, error)
}

var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// DBItemStore serves item queries from the local relational store
type DBItemStore struct {
	DB *gorm.DB
}

// NewDBItemStore creates a store over the given connection
func NewDBItemStore(db *gorm.DB) *DBItemStore {
	return &DBItemStore{DB: db}
}

// FetchItems implements ItemQuerier against gorm
func (s *DBItemStore) FetchItems(ctx context.Context, query ItemQuery) ([]map[string]interface{}, error) {
	if !identifierPattern.MatchString(query.Collection) {
		return nil, fmt.Errorf("invalid collection name %q", query.Collection)
	}

	tx := s.DB.WithContext(ctx).Table(query.Collection)
	for _, f := range query.Filters {
		if !identifierPattern.MatchString(f.Field) {
			return nil, fmt.Errorf("invalid filter field %q", f.Field)
		}
		switch f.Op {
		case OpEq:
			tx = tx.Where(f.Field+" = ?", f.Value)
		case OpNeq:
			tx = tx.Where(f.Field+" <> ?", f.Value)
		case OpGte:
			tx = tx.Where(f.Field+" >= ?", f.Value)
		case OpLte:
			tx = tx.Where(f.Field+" <= ?", f.Value)
		case OpIn:
			tx = tx.Where(f.Field+" IN ?", inValues(f.Value))
		case OpNull:
			tx = tx.Where(f.Field + " IS NULL")
		case OpNonNull:
			tx = tx.Where(f.Field + " IS NOT NULL")
		default:
			return nil, fmt.Errorf("unsupported filter operator %q", f.Op)
		}
	}

	for _, key := range query.Sort {
		desc := strings.HasPrefix(key, "-")
		field := strings.TrimPrefix(key, "-")
		if !identifierPattern.MatchString(field) {
			return nil, fmt.Errorf("invalid sort field %q", field)
		}
		if desc {
			tx = tx.Order(field + " DESC")
		} else {
			tx = tx.Order(field + " ASC")
		}
	}
	if query.Limit > 0 {
		tx = tx.Limit(query.Limit)
	}

	var rows []map[string]interface{}
	if err := tx.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", query.Collection, err)
	}
	return rows, nil
}

// ItemsClient serves item queries from a remote item-collection API using
// the filter[field][_op] query syntax
type ItemsClient struct {
	BaseURL string
	client  *http.Client
}

// NewItemsClient creates a client for the given base URL
func NewItemsClient(baseURL string) *ItemsClient {
	return &ItemsClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchItems implements ItemQuerier over HTTP. A 404 maps to ErrNotFound;
// any other failure class propagates unchanged.
func (c *ItemsClient) FetchItems(ctx context.Context, query ItemQuery) ([]map[string]interface{}, error) {
	params := url.Values{}
	for _, f := range query.Filters {
		key := fmt.Sprintf("filter[%s][%s]", f.Field, f.Op)
		params.Add(key, encodeFilterValue(f))
	}
	if len(query.Sort) > 0 {
		params.Set("sort", strings.Join(query.Sort, ","))
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}

	reqURL := fmt.Sprintf("%s/items/%s", c.BaseURL, query.Collection)
	if encoded := params.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build items request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("items request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("items API returned status: %d", resp.StatusCode)
	}

	var envelope struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode items response: %w", err)
	}
	return envelope.Data, nil
}

// ParseItemQuery decodes the filter[field][_op]=value syntax plus sort and
// limit parameters into an ItemQuery. Malformed filter keys are skipped.
func ParseItemQuery(collection string, values url.Values) ItemQuery {
	query := ItemQuery{Collection: collection}

	for key, vals := range values {
		field, op, ok := parseFilterKey(key)
		if !ok || len(vals) == 0 {
			continue
		}
		switch op {
		case OpIn:
			query = query.Where(field, op, AsStringArray(vals[0]))
		case OpNull, OpNonNull:
			query = query.Where(field, op, nil)
		case OpEq, OpNeq, OpGte, OpLte:
			query = query.Where(field, op, vals[0])
		}
	}

	if sort := values.Get("sort"); sort != "" {
		query.Sort = AsStringArray(sort)
	}
	if limit := values.Get("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			query.Limit = n
		}
	}
	return query
}

// parseFilterKey splits "filter[field][_op]" into its parts
func parseFilterKey(key string) (field, op string, ok bool) {
	if !strings.HasPrefix(key, "filter[") || !strings.HasSuffix(key, "]") {
		return "", "", false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(key, "filter["), "]")
	parts := strings.SplitN(inner, "][", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func encodeFilterValue(f ItemFilter) string {
	switch v := f.Value.(type) {
	case []string:
		return strings.Join(v, ",")
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprintf("%v", item))
		}
		return strings.Join(parts, ",")
	case nil:
		return "true"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func inValues(v interface{}) []interface{} {
	switch list := v.(type) {
	case []interface{}:
		return list
	case []string:
		out := make([]interface{}, len(list))
		for i, s := range list {
			out[i] = s
		}
		return out
	default:
		return []interface{}{v}
	}
}
