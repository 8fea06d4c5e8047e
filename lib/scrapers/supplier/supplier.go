package supplier

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"time"

	"stocksync/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/supplier")

// Client fetches supplier product pages and extracts stock quantities
// from their markup. One client is reused sequentially across a run.
type Client struct {
	Http      *resty.Client
	Extractor Extractor
}

type ClientOptions struct {
	// defaults to a LabelExtractor for DefaultLabel
	Extractor Extractor
	// defaults to 30 seconds
	Timeout time.Duration
}

func NewClient(opts ClientOptions) (*Client, error) {
	extractor := opts.Extractor
	if extractor == nil {
		extractor = NewLabelExtractor(DefaultLabel)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = time.Second * 30
	}

	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(timeout)

	telemetry.InstrumentResty(client, "scrapers/supplier/http")

	return &Client{
		Http:      client,
		Extractor: extractor,
	}, nil
}

// FetchQuantity loads a supplier page and returns the stock quantity on
// it. ErrStockNotFound and ErrStockUnparsable report extraction
// outcomes; any other error is a navigation failure.
func (c *Client) FetchQuantity(ctx context.Context, pageUrl string) (int, error) {
	ctx, span := tracer.Start(ctx, "client:FetchQuantity")
	defer span.End()
	span.SetAttributes(attribute.String("url", pageUrl))

	res, err := c.Http.R().
		SetContext(ctx).
		Get(pageUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch supplier page")
		return 0, err
	}
	if !res.IsSuccess() {
		err := fmt.Errorf("supplier page returned status %d", res.StatusCode())
		span.RecordError(err)
		span.SetStatus(codes.Error, "supplier page returned non-success status")
		return 0, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse supplier page html")
		return 0, err
	}

	quantity, err := c.Extractor.ExtractQuantity(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract quantity")
		return 0, err
	}

	span.SetAttributes(attribute.Int("quantity", quantity))
	return quantity, nil
}
