package order

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/andrifals/gasstore/cmd/config"
	"github.com/andrifals/gasstore/constant"
	"github.com/andrifals/gasstore/model"
	customerrepo "github.com/andrifals/gasstore/repository/customer"
	orderrepo "github.com/andrifals/gasstore/repository/order"
	productrepo "github.com/andrifals/gasstore/repository/product"
	redisrepo "github.com/andrifals/gasstore/repository/redis"
	"github.com/andrifals/gasstore/utils/errors"
	"github.com/andrifals/gasstore/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	SubmitOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error)
	ListOrders(ctx context.Context, filter model.OrderListFilter) (*model.OrderListResult, error)
	GetOrder(ctx context.Context, orderID string) (*model.OrderDetail, error)
	UpdateStatus(ctx context.Context, orderID, status string) (*model.OrderView, error)
}

type orderAppImpl struct {
	config       *config.Config
	orderRepo    orderrepo.OrderRepository
	customerRepo customerrepo.CustomerRepository
	productRepo  productrepo.ProductRepository
	redisRepo    redisrepo.Repository
}

func NewOrderApp(config *config.Config, orderRepo orderrepo.OrderRepository, customerRepo customerrepo.CustomerRepository, productRepo productrepo.ProductRepository, redisRepo redisrepo.Repository) OrderApp {
	return &orderAppImpl{
		config:       config,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		redisRepo:    redisRepo,
	}
}

const (
	// confirmDwellSeconds is how long the storefront holds the
	// confirmation view before resetting the order form.
	confirmDwellSeconds = 3

	// enrichParallelism bounds concurrent product lookups during list
	// enrichment. Lookups are independent of each other.
	enrichParallelism = 4

	productCacheKeyPrefix = "product_ref:"
)

func (s *orderAppImpl) SubmitOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	// Unit price comes from the products table, never from the client.
	product, err := s.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		logger.Error("[SubmitOrder] get product", zap.String("product_id", req.ProductID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrProductNotFound)
	}

	customerID := "CUST-" + uuid.NewString()
	orderID := "ORD-" + uuid.NewString()
	total := product.Price * float64(req.Quantity)

	// Two independent writes; there is no transaction spanning them.
	created, err := s.customerRepo.Insert(ctx, &model.CustomerEntity{
		ID:      customerID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		logger.Error("[SubmitOrder] insert customer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	err = s.orderRepo.Insert(ctx, &model.OrderEntity{
		ID:            orderID,
		CustomerID:    created.ID,
		ProductID:     product.ID,
		Quantity:      req.Quantity,
		TotalPrice:    total,
		PaymentMethod: constant.PaymentMethodCash,
		Status:        constant.OrderStatusDefault,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		// The customer row stays behind; the customers table offers no
		// delete. Logged so the orphan can be reconciled by hand.
		logger.Error("[SubmitOrder] insert order", zap.String("error", err.Error()))
		logger.Warn("[SubmitOrder] orphaned customer row", zap.String("customer_id", created.ID))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.OrderResponse{
		OrderID:             orderID,
		CustomerID:          created.ID,
		Total:               total,
		Status:              constant.OrderStatusDefault,
		ConfirmDwellSeconds: confirmDwellSeconds,
	}, nil
}

// listStrategy is one rung of the retrieval ladder: tried in order,
// first non-empty success wins.
type listStrategy struct {
	name    string
	ordered bool
	fetch   func(ctx context.Context) ([]model.OrderEntity, error)
}

func (s *orderAppImpl) ListOrders(ctx context.Context, filter model.OrderListFilter) (*model.OrderListResult, error) {
	count, err := s.orderRepo.Count(ctx)
	if err != nil {
		logger.Error("[ListOrders] count probe", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrOrdersUnavailable)
	}
	if count == 0 {
		// Confirmed empty is a neutral state, not an error.
		return &model.OrderListResult{Orders: []model.OrderView{}, Source: "empty"}, nil
	}

	strategies := []listStrategy{
		{name: "projected", ordered: true, fetch: s.orderRepo.ListProjected},
		{name: "all_columns", fetch: s.orderRepo.ListAll},
		{name: "raw", fetch: s.orderRepo.ListRaw},
	}

	var (
		rows   []model.OrderEntity
		source string
		sorted bool
	)
	for _, strat := range strategies {
		got, err := strat.fetch(ctx)
		if err != nil {
			logger.Warn("[ListOrders] strategy failed", zap.String("strategy", strat.name), zap.String("error", err.Error()))
			continue
		}
		if len(got) == 0 {
			// The probe said the table is non-empty, so an empty answer
			// here means this read path is lying; try the next one.
			logger.Warn("[ListOrders] strategy returned no rows", zap.String("strategy", strat.name), zap.Int64("expected", count))
			continue
		}
		rows, source, sorted = got, strat.name, strat.ordered
		break
	}
	if rows == nil {
		logger.Error("[ListOrders] all retrieval strategies exhausted", zap.Int64("expected", count))
		return nil, errors.SetCustomError(constant.ErrOrdersUnavailable)
	}

	views := s.enrichProducts(ctx, rows)
	views = applyFilter(views, filter)

	return &model.OrderListResult{
		Orders:  views,
		Source:  source,
		Ordered: sorted,
	}, nil
}

func (s *orderAppImpl) GetOrder(ctx context.Context, orderID string) (*model.OrderDetail, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] get order", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrOrderNotFound)
	}

	detail := &model.OrderDetail{
		OrderView: model.OrderView{
			OrderEntity: *order,
			Product:     s.resolveProduct(ctx, order.ProductID),
		},
	}

	if order.CustomerID != "" {
		customer, err := s.customerRepo.GetByID(ctx, order.CustomerID)
		if err != nil {
			logger.Warn("[GetOrder] get customer", zap.String("customer_id", order.CustomerID), zap.String("error", err.Error()))
		} else {
			detail.Customer = customer
		}
	}
	return detail, nil
}

func (s *orderAppImpl) UpdateStatus(ctx context.Context, orderID, status string) (*model.OrderView, error) {
	if !constant.IsValidOrderStatus(status) {
		return nil, errors.SetCustomError(constant.ErrInvalidStatus)
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		logger.Error("[UpdateStatus] get order", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrOrderNotFound)
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		logger.Error("[UpdateStatus] update status", zap.String("order_id", orderID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Mutate the already-fetched copy rather than re-reading through
	// the unreliable read path.
	order.Status = status
	return &model.OrderView{
		OrderEntity: *order,
		Product:     s.resolveProduct(ctx, order.ProductID),
	}, nil
}

// enrichProducts joins each order to its product display name. Lookups
// run in parallel with bounded concurrency; a missing reference or a
// failed lookup leaves the product nil and is never fatal.
func (s *orderAppImpl) enrichProducts(ctx context.Context, rows []model.OrderEntity) []model.OrderView {
	views := make([]model.OrderView, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichParallelism)
	for i := range rows {
		i := i
		g.Go(func() error {
			views[i] = model.OrderView{
				OrderEntity: rows[i],
				Product:     s.resolveProduct(gctx, rows[i].ProductID),
			}
			return nil
		})
	}
	_ = g.Wait()
	return views
}

// resolveProduct looks up a product ref, cache-aside through redis.
func (s *orderAppImpl) resolveProduct(ctx context.Context, productID string) *model.ProductRef {
	if productID == "" {
		return nil
	}

	cacheKey := productCacheKeyPrefix + productID
	if cached, err := s.redisRepo.Get(ctx, cacheKey); err == nil && cached != "" {
		var ref model.ProductRef
		if err := json.Unmarshal([]byte(cached), &ref); err == nil {
			return &ref
		}
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		logger.Warn("[resolveProduct] lookup failed", zap.String("product_id", productID), zap.String("error", err.Error()))
		return nil
	}
	if product == nil {
		return nil
	}

	ref := &model.ProductRef{ID: product.ID, Name: product.Name}
	if raw, err := json.Marshal(ref); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, cacheKey, string(raw), s.config.Catalog.ProductCacheTTL); err != nil {
			logger.Warn("[resolveProduct] cache write failed", zap.String("error", err.Error()))
		}
	}
	return ref
}

func applyFilter(views []model.OrderView, filter model.OrderListFilter) []model.OrderView {
	if filter.Status == "" && filter.Search == "" {
		return views
	}

	needle := strings.ToLower(filter.Search)
	out := make([]model.OrderView, 0, len(views))
	for _, v := range views {
		if filter.Status != "" && v.Status != filter.Status {
			continue
		}
		if needle != "" && !matchesSearch(v, needle) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchesSearch(v model.OrderView, needle string) bool {
	if strings.Contains(strings.ToLower(v.ID), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(v.CustomerID), needle) {
		return true
	}
	return v.Product != nil && strings.Contains(strings.ToLower(v.Product.Name), needle)
}
