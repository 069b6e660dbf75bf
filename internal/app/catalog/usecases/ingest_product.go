// Package usecases contains the write-side interactors of the catalog. Each
// usecase validates through the pure domain, collects repository mutations
// into a commit plan, and applies the plan atomically; no usecase leaves a
// product half written.
package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/registry"
	"github.com/light-bringer/catalog-engine/internal/pkg/clock"
	"github.com/light-bringer/catalog-engine/internal/pkg/committer"
	"github.com/light-bringer/catalog-engine/internal/pkg/logger"
)

// PriceInput is the raw price payload of an ingestion. Amounts are decimal
// strings; List is required, the rest optional.
type PriceInput struct {
	EffectiveDate civil.Date
	Currency      string
	List          string
	Retail        *string
	Discount      *string
	Cost          *string
}

// MediaInput is one raw media row of an ingestion.
type MediaInput struct {
	Type     string
	URL      string
	Position *int64
}

// IngestProductInput is a complete raw product payload. Values maps attribute
// code to the raw string value.
type IngestProductInput struct {
	PartNumber       string
	BrandID          string
	CategoryID       *string
	DimensionID      *string
	WarrantyID       *string
	VendorID         *string
	ShortDescription string
	LongDescription  string
	MarketingText    string
	Values           map[string]string
	Price            *PriceInput
	Media            []MediaInput
}

// IngestProductResult reports the outcome. A non-empty Violations slice means
// nothing was committed; the slice is the complete diagnostic list for the
// product, never just the first problem.
type IngestProductResult struct {
	PartNumber string
	Committed  bool
	Violations []domain.Violation
}

// IngestProduct validates and commits one product with its values, initial
// price and media.
type IngestProduct struct {
	registry *registry.Registry
	products contracts.ProductRepository
	prices   contracts.PriceRepository
	media    contracts.MediaRepository
	variants contracts.VariantRepository
	applier  contracts.PlanApplier
	clock    clock.Clock
	log      *logger.Logger
}

// NewIngestProduct creates the usecase.
func NewIngestProduct(
	reg *registry.Registry,
	products contracts.ProductRepository,
	prices contracts.PriceRepository,
	media contracts.MediaRepository,
	variants contracts.VariantRepository,
	applier contracts.PlanApplier,
	clk clock.Clock,
	log *logger.Logger,
) *IngestProduct {
	return &IngestProduct{
		registry: reg,
		products: products,
		prices:   prices,
		media:    media,
		variants: variants,
		applier:  applier,
		clock:    clk,
		log:      log,
	}
}

// Execute validates the payload and commits it atomically. Violations are
// data, not errors: a product that fails validation returns a result carrying
// the full violation batch and a nil error. Errors are reserved for schema and
// store failures.
func (uc *IngestProduct) Execute(ctx context.Context, in *IngestProductInput) (*IngestProductResult, error) {
	now := uc.clock.Now()

	product, err := domain.NewProduct(in.PartNumber, in.BrandID, now)
	if err != nil {
		return nil, err
	}
	product.CategoryID = in.CategoryID
	product.DimensionID = in.DimensionID
	product.WarrantyID = in.WarrantyID
	product.VendorID = in.VendorID
	product.ShortDescription = in.ShortDescription
	product.LongDescription = in.LongDescription
	product.MarketingText = in.MarketingText

	var requirements []domain.ResolvedRequirement
	if in.CategoryID != nil {
		requirements, err = uc.registry.RequirementsFor(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
	}

	result := &IngestProductResult{PartNumber: in.PartNumber}
	values, violations, err := uc.validateValues(ctx, requirements, in.Values)
	if err != nil {
		return nil, err
	}
	result.Violations = violations

	_, isVariantChild, err := uc.variants.ParentOf(ctx, in.PartNumber)
	if err != nil {
		return nil, err
	}
	result.Violations = append(result.Violations,
		domain.CheckProduct(product, requirements, values, isVariantChild)...)

	if len(result.Violations) > 0 {
		uc.log.Info("product rejected",
			"part_number", in.PartNumber, "violations", len(result.Violations))
		return result, nil
	}

	plan := committer.NewPlan()
	plan.Add(uc.products.InsertMut(product))
	for attrID, value := range values {
		mut, err := uc.products.ValueMut(&domain.AttributeValue{
			PartNumber:  in.PartNumber,
			AttributeID: attrID,
			Value:       *value,
		}, now)
		if err != nil {
			return nil, err
		}
		plan.Add(mut)
	}

	if in.Price != nil {
		price, err := buildPrice(in.PartNumber, in.Price, now)
		if err != nil {
			return nil, err
		}
		mut, err := uc.prices.InsertMut(price)
		if err != nil {
			return nil, err
		}
		plan.Add(mut)
	}

	for i := range in.Media {
		m, err := buildMedia(in.PartNumber, &in.Media[i], now)
		if err != nil {
			return nil, err
		}
		plan.Add(uc.media.InsertMut(m))
	}

	if err := uc.applier.Apply(ctx, plan); err != nil {
		return nil, err
	}
	result.Committed = true
	uc.log.Info("product ingested",
		"part_number", in.PartNumber, "values", len(values), "mutations", plan.Count())
	return result, nil
}

// validateValues resolves each raw value's attribute and runs the typed
// validator. Values for codes that resolve to no attribute become
// UnknownAttribute violations; every other failure is the validator's own
// violation. The returned map is keyed by attribute ID.
func (uc *IngestProduct) validateValues(
	ctx context.Context,
	requirements []domain.ResolvedRequirement,
	raw map[string]string,
) (map[string]*domain.TypedValue, []domain.Violation, error) {
	byCode := make(map[string]*domain.Attribute, len(requirements))
	for i := range requirements {
		byCode[requirements[i].Attribute.Code] = &requirements[i].Attribute
	}

	values := make(map[string]*domain.TypedValue, len(raw))
	var violations []domain.Violation

	for code, rawValue := range raw {
		attr, ok := byCode[code]
		if !ok {
			found, err := uc.registry.GetAttribute(ctx, code)
			if errors.Is(err, domain.ErrAttributeNotFound) {
				violations = append(violations, domain.Violation{
					Code:          domain.ViolationUnknownAttribute,
					AttributeCode: code,
					Message:       "no such attribute is defined",
				})
				continue
			}
			if err != nil {
				return nil, nil, err
			}
			attr = found
		}

		var options []domain.AttributeOption
		if attr.Type == domain.TypeEnum {
			var err error
			options, err = uc.registry.ListOptions(ctx, attr.AttributeID)
			if err != nil {
				return nil, nil, err
			}
		}

		value, violation := domain.ValidateValue(attr, options, rawValue)
		if violation != nil {
			violations = append(violations, *violation)
			continue
		}
		values[attr.AttributeID] = value
	}
	return values, violations, nil
}

func buildPrice(partNumber string, in *PriceInput, now time.Time) (*domain.Price, error) {
	price := &domain.Price{
		PartNumber:    partNumber,
		EffectiveDate: in.EffectiveDate,
		Currency:      in.Currency,
		CreatedAt:     now,
	}

	list, err := domain.ParseMoney(in.List)
	if err != nil {
		return nil, fmt.Errorf("list price: %w", err)
	}
	price.List = list

	optional := []struct {
		raw  *string
		dest **domain.Money
		name string
	}{
		{in.Retail, &price.Retail, "retail price"},
		{in.Discount, &price.Discount, "discount price"},
		{in.Cost, &price.Cost, "cost"},
	}
	for _, field := range optional {
		if field.raw == nil {
			continue
		}
		m, err := domain.ParseMoney(*field.raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field.name, err)
		}
		*field.dest = m
	}
	return price, nil
}

func buildMedia(partNumber string, in *MediaInput, now time.Time) (*domain.Media, error) {
	mediaType, err := domain.ParseMediaType(in.Type)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.URL) == "" {
		return nil, domain.ErrEmptyMediaURL
	}
	return &domain.Media{
		MediaID:    uuid.NewString(),
		PartNumber: partNumber,
		Type:       mediaType,
		URL:        in.URL,
		Position:   in.Position,
		CreatedAt:  now,
	}, nil
}
