package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/redis/go-redis/v9"

	"github.com/light-bringer/catalog-engine/internal/app/catalog/contracts"
	"github.com/light-bringer/catalog-engine/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-engine/internal/pkg/logger"
)

// Reference data (attribute definitions, option sets, category chains) is read
// on every ingestion and validation but changes rarely, so it sits behind a
// read-through Redis cache with a short TTL. Cache failures degrade to the
// underlying store and are logged, never surfaced.

const (
	keyAttrByCode  = "catalog:attr:code:%s"
	keyAttrOptions = "catalog:attr:opts:%s"
	keyCategory    = "catalog:cat:%s"
	keyChain       = "catalog:chain:%s"
)

// CachedAttributeRepo decorates an AttributeRepository with Redis caching.
type CachedAttributeRepo struct {
	inner contracts.AttributeRepository
	cache *redis.Client
	ttl   time.Duration
	log   *logger.Logger
}

// NewCachedAttributeRepo wraps inner with a Redis read-through cache.
func NewCachedAttributeRepo(inner contracts.AttributeRepository, cache *redis.Client, ttl time.Duration, log *logger.Logger) *CachedAttributeRepo {
	return &CachedAttributeRepo{inner: inner, cache: cache, ttl: ttl, log: log}
}

// GetByCode retrieves an attribute definition, preferring the cache.
func (r *CachedAttributeRepo) GetByCode(ctx context.Context, code string) (*domain.Attribute, error) {
	key := fmt.Sprintf(keyAttrByCode, code)
	var cached domain.Attribute
	if r.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}
	attr, err := r.inner.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	r.cacheSet(ctx, key, attr)
	return attr, nil
}

// GetByIDs bypasses the cache; bulk lookups by ID happen once per ingestion
// batch and are already a single query.
func (r *CachedAttributeRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Attribute, error) {
	return r.inner.GetByIDs(ctx, ids)
}

// ListOptions retrieves an enum attribute's option set, preferring the cache.
func (r *CachedAttributeRepo) ListOptions(ctx context.Context, attributeID string) ([]domain.AttributeOption, error) {
	key := fmt.Sprintf(keyAttrOptions, attributeID)
	var cached []domain.AttributeOption
	if r.cacheGet(ctx, key, &cached) {
		return cached, nil
	}
	options, err := r.inner.ListOptions(ctx, attributeID)
	if err != nil {
		return nil, err
	}
	r.cacheSet(ctx, key, options)
	return options, nil
}

// InsertMut delegates to the underlying repository.
func (r *CachedAttributeRepo) InsertMut(a *domain.Attribute) *spanner.Mutation {
	return r.inner.InsertMut(a)
}

// InsertOptionMut delegates to the underlying repository.
func (r *CachedAttributeRepo) InsertOptionMut(o *domain.AttributeOption) *spanner.Mutation {
	return r.inner.InsertOptionMut(o)
}

// UpdateMut delegates to the underlying repository.
func (r *CachedAttributeRepo) UpdateMut(edit *domain.AttributeEdit) *spanner.Mutation {
	return r.inner.UpdateMut(edit)
}

// Invalidate drops the cached entries of an attribute after an edit commits.
func (r *CachedAttributeRepo) Invalidate(ctx context.Context, code, attributeID string) {
	keys := []string{
		fmt.Sprintf(keyAttrByCode, code),
		fmt.Sprintf(keyAttrOptions, attributeID),
	}
	if err := r.cache.Del(ctx, keys...).Err(); err != nil {
		r.log.Warn("failed to invalidate attribute cache", "code", code, "error", err)
	}
}

func (r *CachedAttributeRepo) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	return cacheGet(ctx, r.cache, r.log, key, dest)
}

func (r *CachedAttributeRepo) cacheSet(ctx context.Context, key string, value interface{}) {
	cacheSet(ctx, r.cache, r.log, key, value, r.ttl)
}

// CachedCategoryRepo decorates a CategoryRepository with Redis caching.
type CachedCategoryRepo struct {
	inner contracts.CategoryRepository
	cache *redis.Client
	ttl   time.Duration
	log   *logger.Logger
}

// NewCachedCategoryRepo wraps inner with a Redis read-through cache.
func NewCachedCategoryRepo(inner contracts.CategoryRepository, cache *redis.Client, ttl time.Duration, log *logger.Logger) *CachedCategoryRepo {
	return &CachedCategoryRepo{inner: inner, cache: cache, ttl: ttl, log: log}
}

// GetByID retrieves a category, preferring the cache.
func (r *CachedCategoryRepo) GetByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	key := fmt.Sprintf(keyCategory, categoryID)
	var cached domain.Category
	if cacheGet(ctx, r.cache, r.log, key, &cached) {
		return &cached, nil
	}
	c, err := r.inner.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, r.cache, r.log, key, c, r.ttl)
	return c, nil
}

// FetchChain resolves a category's ancestor chain, preferring a cached chain
// keyed by the leaf category.
func (r *CachedCategoryRepo) FetchChain(ctx context.Context, categoryID string) ([]domain.Category, error) {
	key := fmt.Sprintf(keyChain, categoryID)
	var cached []domain.Category
	if cacheGet(ctx, r.cache, r.log, key, &cached) {
		return cached, nil
	}
	chain, err := r.inner.FetchChain(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, r.cache, r.log, key, chain, r.ttl)
	return chain, nil
}

// FetchRequirements bypasses the cache; requirement links are fetched in one
// query per chain and the chain itself is already cached.
func (r *CachedCategoryRepo) FetchRequirements(ctx context.Context, categoryIDs []string) (map[string][]domain.RequirementLink, error) {
	return r.inner.FetchRequirements(ctx, categoryIDs)
}

// InsertMut delegates to the underlying repository.
func (r *CachedCategoryRepo) InsertMut(c *domain.Category) *spanner.Mutation {
	return r.inner.InsertMut(c)
}

// InsertRequirementMut delegates to the underlying repository.
func (r *CachedCategoryRepo) InsertRequirementMut(link *domain.RequirementLink) *spanner.Mutation {
	return r.inner.InsertRequirementMut(link)
}

func cacheGet(ctx context.Context, cache *redis.Client, log *logger.Logger, key string, dest interface{}) bool {
	raw, err := cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn("cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Warn("cache entry corrupt, dropping", "key", key, "error", err)
		cache.Del(ctx, key)
		return false
	}
	return true
}

func cacheSet(ctx context.Context, cache *redis.Client, log *logger.Logger, key string, value interface{}, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	if err := cache.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Warn("cache write failed", "key", key, "error", err)
	}
}
