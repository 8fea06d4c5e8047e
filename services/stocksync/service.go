package stocksync

import (
	"context"
	"errors"
	"log/slog"

	"stocksync/lib/scrapers/supplier"
	"stocksync/lib/woocommerce"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/stocksync")
var meter = otel.Meter("services/stocksync")
var updatedCounter, _ = meter.Int64Counter("products_updated")
var skippedCounter, _ = meter.Int64Counter("products_skipped")
var failedCounter, _ = meter.Int64Counter("products_failed")

// Target is one product to synchronize: the store product id and the
// supplier page its stock figure comes from. Targets live for one run.
type Target struct {
	Id        int64
	Name      string
	SourceUrl string
}

type ItemOutcome int

const (
	// a stock update was written for the product
	OutcomeUpdated ItemOutcome = iota
	// the product was left untouched
	OutcomeSkipped
	// the scrape or the update failed
	OutcomeFailed
)

type ItemResult struct {
	Product Target
	Outcome ItemOutcome
	// quantity written, nil for skips, failures and flag-only writes
	Quantity *int
	Reason   string
}

type Report struct {
	RunId   string
	Results []ItemResult
}

func (r Report) Count(outcome ItemOutcome) int {
	count := 0
	for _, res := range r.Results {
		if res.Outcome == outcome {
			count++
		}
	}
	return count
}

type Service struct {
	config  Config
	store   *woocommerce.Client
	scraper *supplier.Client
}

func NewService(config Config, store *woocommerce.Client, scraper *supplier.Client) Service {
	return Service{
		config:  config,
		store:   store,
		scraper: scraper,
	}
}

// Targets lists the store products carrying a supplier url under the
// configured metadata key, in catalog order. Read-only against the store.
func (s Service) Targets(ctx context.Context) ([]Target, error) {
	ctx, span := tracer.Start(ctx, "service:Targets")
	defer span.End()

	products, err := s.store.ListProducts(ctx, woocommerce.ListOptions{
		Category: s.config.Category,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list products")
		return nil, err
	}

	var targets []Target
	for _, p := range products {
		link := p.MetaValue(s.config.MetaKey)
		if link == "" {
			continue
		}
		targets = append(targets, Target{
			Id:        p.Id,
			Name:      p.Name,
			SourceUrl: link,
		})
	}

	span.SetAttributes(attribute.Int("target_count", len(targets)))
	return targets, nil
}

// Run executes one full synchronization pass. A catalog listing failure
// is fatal and returned; per-product failures are recorded in the report
// and the loop continues. Products are processed strictly one at a time.
func (s Service) Run(ctx context.Context) (Report, error) {
	ctx, span := tracer.Start(ctx, "service:Run")
	defer span.End()

	report := Report{RunId: uuid.NewString()}
	span.SetAttributes(attribute.String("run_id", report.RunId))

	slog.InfoContext(ctx, "starting stock sync", "run_id", report.RunId, "meta_key", s.config.MetaKey)

	targets, err := s.Targets(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to load sync targets")
		return report, err
	}
	if len(targets) == 0 {
		slog.InfoContext(ctx, "no products carry a supplier url", "meta_key", s.config.MetaKey)
		return report, nil
	}
	slog.InfoContext(ctx, "loaded sync targets", "count", len(targets))

	for _, target := range targets {
		result := s.syncProduct(ctx, target)
		report.Results = append(report.Results, result)

		switch result.Outcome {
		case OutcomeUpdated:
			updatedCounter.Add(ctx, 1)
		case OutcomeSkipped:
			skippedCounter.Add(ctx, 1)
		case OutcomeFailed:
			failedCounter.Add(ctx, 1)
		}
	}

	slog.InfoContext(
		ctx, "stock sync finished",
		"run_id", report.RunId,
		"updated", report.Count(OutcomeUpdated),
		"skipped", report.Count(OutcomeSkipped),
		"failed", report.Count(OutcomeFailed),
	)
	return report, nil
}

func (s Service) syncProduct(ctx context.Context, target Target) ItemResult {
	ctx, span := tracer.Start(ctx, "service:syncProduct")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("product_id", target.Id),
		attribute.String("url", target.SourceUrl),
	)

	slog.InfoContext(ctx, "visiting supplier page", "product_id", target.Id, "url", target.SourceUrl)

	var quantity *int
	scraped, err := s.scraper.FetchQuantity(ctx, target.SourceUrl)
	switch {
	case err == nil:
		slog.InfoContext(ctx, "scraped stock quantity", "product_id", target.Id, "quantity", scraped)
		quantity = &scraped
	case errors.Is(err, supplier.ErrStockNotFound):
		slog.WarnContext(ctx, "stock not found on supplier page", "product_id", target.Id, "url", target.SourceUrl)
		switch s.config.OnNotFound {
		case NotFoundFlag:
			// write manage_stock only
		case NotFoundZero:
			zero := 0
			quantity = &zero
		default:
			return ItemResult{
				Product: target,
				Outcome: OutcomeSkipped,
				Reason:  "stock not found",
			}
		}
	default:
		slog.WarnContext(ctx, "failed to scrape supplier page", "product_id", target.Id, "err", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "scrape failed")
		return ItemResult{
			Product: target,
			Outcome: OutcomeFailed,
			Reason:  err.Error(),
		}
	}

	err = s.store.UpdateStock(ctx, target.Id, quantity)
	if err != nil {
		slog.WarnContext(ctx, "failed to update stock", "product_id", target.Id, "err", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "stock update failed")
		return ItemResult{
			Product: target,
			Outcome: OutcomeFailed,
			Reason:  err.Error(),
		}
	}

	result := ItemResult{
		Product:  target,
		Outcome:  OutcomeUpdated,
		Quantity: quantity,
	}
	if quantity == nil {
		result.Reason = "stock not found, flagged manage_stock"
		slog.InfoContext(ctx, "flagged product without quantity", "product_id", target.Id)
	} else {
		slog.InfoContext(ctx, "updated stock", "product_id", target.Id, "quantity", *quantity)
	}
	return result
}
