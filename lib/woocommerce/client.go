package woocommerce

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"stocksync/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("woocommerce")

const DefaultPageSize = 100

// StatusError is returned when the store answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("woocommerce: unexpected status %d: %s", e.StatusCode, e.Body)
}

type Meta struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// Text returns the metadata value when it is a JSON string,
// otherwise "". Non-string meta values never hold supplier urls.
func (m Meta) Text() string {
	var s string
	if json.Unmarshal(m.Value, &s) != nil {
		return ""
	}
	return s
}

type Product struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
	Meta []Meta `json:"meta_data"`
}

// MetaValue returns the first non-empty string value stored under the
// given metadata key. Keys are not unique across a product record.
func (p Product) MetaValue(key string) string {
	for _, m := range p.Meta {
		if m.Key != key {
			continue
		}
		if v := m.Text(); v != "" {
			return v
		}
	}
	return ""
}

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

type ClientOptions struct {
	BaseUrl        string
	ConsumerKey    string
	ConsumerSecret string
}

func NewClient(opts ClientOptions) (*Client, error) {
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetBasicAuth(opts.ConsumerKey, opts.ConsumerSecret)
	client.SetHeader("accept", "application/json")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "woocommerce/http")

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}, nil
}

type ListOptions struct {
	// restricts the listing to one category id, "" lists everything
	Category string
	// items per page, defaults to DefaultPageSize
	PerPage int
}

// ListProducts pages through GET /products until a partial or empty page
// signals the end of the result set, returning records in platform order.
func (c *Client) ListProducts(ctx context.Context, opts ListOptions) ([]Product, error) {
	ctx, span := tracer.Start(ctx, "client:ListProducts")
	defer span.End()

	perPage := opts.PerPage
	if perPage <= 0 {
		perPage = DefaultPageSize
	}

	var all []Product
	for page := 1; ; page++ {
		req := c.Http.R().
			SetContext(ctx).
			SetQueryParam("per_page", strconv.Itoa(perPage)).
			SetQueryParam("page", strconv.Itoa(page))
		if opts.Category != "" {
			req.SetQueryParam("category", opts.Category)
		}

		res, err := req.Get("/products")
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch product page")
			return nil, err
		}
		if !res.IsSuccess() {
			err := &StatusError{StatusCode: res.StatusCode(), Body: string(res.Body())}
			span.RecordError(err)
			span.SetStatus(codes.Error, "product page returned non-success status")
			return nil, err
		}

		var batch []Product
		err = json.Unmarshal(res.Body(), &batch)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to decode product page")
			return nil, err
		}

		all = append(all, batch...)
		if len(batch) < perPage {
			break
		}
	}

	span.SetAttributes(attribute.Int("product_count", len(all)))
	return all, nil
}

type StockStatus string

const (
	StockStatusInStock    StockStatus = "instock"
	StockStatusOutOfStock StockStatus = "outofstock"
)

// StatusForQuantity derives the stock status flag from a quantity.
func StatusForQuantity(quantity int) StockStatus {
	if quantity > 0 {
		return StockStatusInStock
	}
	return StockStatusOutOfStock
}

type stockUpdate struct {
	StockQuantity *int        `json:"stock_quantity,omitempty"`
	StockStatus   StockStatus `json:"stock_status,omitempty"`
	ManageStock   bool        `json:"manage_stock"`
}

// UpdateStock issues PUT /products/{id} setting manage_stock and, when a
// quantity is given, the quantity along with its derived status.
func (c *Client) UpdateStock(ctx context.Context, id int64, quantity *int) error {
	ctx, span := tracer.Start(ctx, "client:UpdateStock")
	defer span.End()

	body := stockUpdate{ManageStock: true}
	if quantity != nil {
		body.StockQuantity = quantity
		body.StockStatus = StatusForQuantity(*quantity)
	}

	res, err := c.Http.R().
		SetContext(ctx).
		SetHeader("content-type", "application/json").
		SetBody(body).
		Put(fmt.Sprintf("/products/%d", id))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to send stock update")
		return err
	}
	if !res.IsSuccess() {
		err := &StatusError{StatusCode: res.StatusCode(), Body: string(res.Body())}
		span.RecordError(err)
		span.SetStatus(codes.Error, "stock update returned non-success status")
		return err
	}

	return nil
}
