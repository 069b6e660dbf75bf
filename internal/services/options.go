package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/redis/go-redis/v9"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/queries"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/registry"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/repo"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/usecases"
	"github.com/light-bringer/catalog-engine/internal/config"
	"github.com/light-bringer/catalog-engine/internal/pkg/clock"
	"github.com/light-bringer/catalog-engine/internal/pkg/committer"
	"github.com/light-bringer/catalog-engine/internal/pkg/logger"
	transport "github.com/light-bringer/catalog-engine/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	RedisClient   *redis.Client
	Handler       *transport.Handler
	IngestProduct *usecases.IngestProduct
	AttachVariant *usecases.AttachVariant
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, log *logger.Logger) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, cfg.Store.SpannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewSystemClock()
	comm := committer.NewCommitter(spannerClient)

	// 3. Create repositories
	attributeRepo := repo.NewAttributeRepo(spannerClient)
	categoryRepo := repo.NewCategoryRepo(spannerClient)
	productRepo := repo.NewProductRepo(spannerClient)
	priceRepo := repo.NewPriceRepo(spannerClient)
	mediaRepo := repo.NewMediaRepo(spannerClient)
	variantRepo := repo.NewVariantRepo(spannerClient, comm)

	// 4. Optionally decorate the reference-data repositories with Redis
	var redisClient *redis.Client
	var invalidator usecases.CacheInvalidator
	attrs := attributeRepo
	cats := categoryRepo
	if cfg.Store.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Store.RedisAddr,
			Password: cfg.Store.RedisPassword,
			DB:       cfg.Store.RedisDB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			spannerClient.Close()
			return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.Store.RedisAddr, err)
		}
		cachedAttrs := repo.NewCachedAttributeRepo(attributeRepo, redisClient, cfg.Store.CacheTTL, log)
		attrs = cachedAttrs
		cats = repo.NewCachedCategoryRepo(categoryRepo, redisClient, cfg.Store.CacheTTL, log)
		invalidator = cachedAttrs
		log.Info("reference-data cache enabled", "addr", cfg.Store.RedisAddr, "ttl", cfg.Store.CacheTTL)
	}

	// 5. Create the schema registry
	reg := registry.New(attrs, cats)

	// 6. Create write use cases
	ingestProduct := usecases.NewIngestProduct(reg, productRepo, priceRepo, mediaRepo, variantRepo, comm, clk, log)
	attachVariant := usecases.NewAttachVariant(productRepo, variantRepo, clk, log)
	appendPrice := usecases.NewAppendPrice(productRepo, priceRepo, comm, clk, log)
	addMedia := usecases.NewAddMedia(productRepo, mediaRepo, comm, clk, log)
	defineAttribute := usecases.NewDefineAttribute(attrs, comm, log)
	defineCategory := usecases.NewDefineCategory(cats, attrs, comm, log)
	updateAttribute := usecases.NewUpdateAttribute(attrs, comm, invalidator, log)

	// 7. Create read queries
	effectivePrice := queries.NewEffectivePrice(productRepo, priceRepo)
	primaryMedia := queries.NewPrimaryMedia(productRepo, mediaRepo)
	checkProduct := queries.NewCheckProduct(reg, productRepo, variantRepo)
	variantChildren := queries.NewVariantChildren(productRepo, variantRepo)

	// 8. Create the HTTP handler
	handler := transport.NewHandler(transport.HandlerDeps{
		Registry:        reg,
		IngestProduct:   ingestProduct,
		AttachVariant:   attachVariant,
		AppendPrice:     appendPrice,
		AddMedia:        addMedia,
		DefineAttribute: defineAttribute,
		DefineCategory:  defineCategory,
		UpdateAttribute: updateAttribute,
		EffectivePrice:  effectivePrice,
		PrimaryMedia:    primaryMedia,
		CheckProduct:    checkProduct,
		VariantChildren: variantChildren,
		Log:             log,
	})

	return &ServiceOptions{
		SpannerClient: spannerClient,
		RedisClient:   redisClient,
		Handler:       handler,
		IngestProduct: ingestProduct,
		AttachVariant: attachVariant,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.RedisClient != nil {
		_ = s.RedisClient.Close()
	}
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}

var _ contracts.PlanApplier = (*committer.Committer)(nil)
