package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gym-booking/internal/data/entity"
	"gym-booking/internal/data/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	allPackagesKey = "packages:all"
	packageTTL     = 5 * time.Minute
)

// CachedPackageRepository decorates the package repository with a redis
// cache-aside layer for the read-heavy public catalog listing.
// Redis failures fall through to the database.
type CachedPackageRepository struct {
	repo  repository.PackageRepository
	redis *redis.Client
	log   *zap.Logger
}

func NewCachedPackageRepository(repo repository.PackageRepository, rdb *redis.Client, log *zap.Logger) repository.PackageRepository {
	return &CachedPackageRepository{
		repo:  repo,
		redis: rdb,
		log:   log.With(zap.String("cache", "package")),
	}
}

func (c *CachedPackageRepository) FindAll(ctx context.Context) ([]*entity.Package, error) {
	data, err := c.redis.Get(ctx, allPackagesKey).Bytes()

	switch {
	case err == nil:
		var packages []*entity.Package
		if unmarshalErr := json.Unmarshal(data, &packages); unmarshalErr != nil {
			c.log.Warn("Failed to unmarshal cached packages, falling back to DB", zap.Error(unmarshalErr))
			break
		}
		return packages, nil

	case errors.Is(err, redis.Nil):
		// cache miss

	default:
		c.log.Warn("Redis error, falling back to DB", zap.Error(err))
	}

	packages, err := c.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	jsonData, err := json.Marshal(packages)
	if err != nil {
		c.log.Warn("Failed to marshal packages for cache", zap.Error(err))
		return packages, nil
	}

	if err := c.redis.Set(ctx, allPackagesKey, jsonData, packageTTL).Err(); err != nil {
		c.log.Warn("Failed to cache packages", zap.Error(err))
	}

	return packages, nil
}

func (c *CachedPackageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	c.invalidate(ctx)
	return c.repo.Create(ctx, pkg)
}

func (c *CachedPackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	c.invalidate(ctx)
	return c.repo.Delete(ctx, id)
}

func (c *CachedPackageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	return c.repo.FindByID(ctx, id)
}

func (c *CachedPackageRepository) FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*entity.Package, error) {
	return c.repo.FindByCategoryID(ctx, categoryID)
}

func (c *CachedPackageRepository) CountActive(ctx context.Context) (int64, error) {
	return c.repo.CountActive(ctx)
}

// invalidate drops the cached listing so the next read repopulates it.
func (c *CachedPackageRepository) invalidate(ctx context.Context) {
	if err := c.redis.Del(ctx, allPackagesKey).Err(); err != nil {
		c.log.Warn("Failed to invalidate package cache", zap.Error(err))
	}
}
