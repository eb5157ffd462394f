package product

import (
	"context"
	"encoding/json"

	"github.com/andrifals/gasstore/cmd/config"
	"github.com/andrifals/gasstore/constant"
	"github.com/andrifals/gasstore/model"
	productRepo "github.com/andrifals/gasstore/repository/product"
	redisrepo "github.com/andrifals/gasstore/repository/redis"
	"github.com/andrifals/gasstore/utils/errors"
	"github.com/andrifals/gasstore/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	ListProducts(ctx context.Context) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, id string) (*model.ProductEntity, error)
}

type productAppImpl struct {
	config      *config.Config
	productRepo productRepo.ProductRepository
	redisRepo   redisrepo.Repository
}

func NewProductApp(config *config.Config, productRepo productRepo.ProductRepository, redisRepo redisrepo.Repository) ProductApp {
	return &productAppImpl{config: config, productRepo: productRepo, redisRepo: redisRepo}
}

const productCacheKeyPrefix = "product:"

func (s *productAppImpl) ListProducts(ctx context.Context) (*model.ProductListResponse, error) {
	items, err := s.productRepo.List(ctx)
	if err != nil {
		logger.Error("[ListProducts] error productRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductListResponse{Items: items}, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id string) (*model.ProductEntity, error) {
	cacheKey := productCacheKeyPrefix + id
	if cached, err := s.redisRepo.Get(ctx, cacheKey); err == nil && cached != "" {
		var product model.ProductEntity
		if err := json.Unmarshal([]byte(cached), &product); err == nil {
			return &product, nil
		}
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrProductNotFound)
	}

	if raw, err := json.Marshal(product); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, cacheKey, string(raw), s.config.Catalog.ProductCacheTTL); err != nil {
			logger.Warn("[GetProduct] cache write failed", zap.String("error", err.Error()))
		}
	}
	return product, nil
}
