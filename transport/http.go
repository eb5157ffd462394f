package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	adminapp "github.com/andrifals/gasstore/application/admin"
	orderapp "github.com/andrifals/gasstore/application/order"
	productapp "github.com/andrifals/gasstore/application/product"
	"github.com/andrifals/gasstore/constant"
	"github.com/andrifals/gasstore/model"
	utilsContext "github.com/andrifals/gasstore/utils/context"
	"github.com/andrifals/gasstore/utils/errors"
	"github.com/andrifals/gasstore/utils/logger"
	validatorx "github.com/andrifals/gasstore/utils/validator"
)

type RestHandler struct {
	OrderApp   orderapp.OrderApp
	ProductApp productapp.ProductApp
	AdminApp   adminapp.AdminApp
}

func NewTransport(OrderApp orderapp.OrderApp, ProductApp productapp.ProductApp, AdminApp adminapp.AdminApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		OrderApp:   OrderApp,
		ProductApp: ProductApp,
		AdminApp:   AdminApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Storefront routes
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	mux.HandleFunc("/orders", rh.SubmitOrder).Methods(http.MethodPost)

	// Admin routes (gated by AdminGateMiddleware except login)
	mux.HandleFunc("/admin/login", rh.AdminLogin).Methods(http.MethodPost)
	mux.HandleFunc("/admin/logout", rh.AdminLogout).Methods(http.MethodPost)
	mux.HandleFunc("/admin/orders", rh.ListOrders).Methods(http.MethodGet)
	mux.HandleFunc("/admin/orders/{id}", rh.GetOrder).Methods(http.MethodGet)
	mux.HandleFunc("/admin/orders/{id}/status", rh.UpdateOrderStatus).Methods(http.MethodPatch)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AdminGateMiddleware(AdminApp))

	return mux
}

// ListProducts handler
// @Summary List products
// @Description List the gas product catalog
// @Tags Storefront
// @Produce json
// @Success 200 {object} model.ProductListResponse
// @Failure 500 {object} transport.Response
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.ListProducts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Get product
// @Description Fetch one product by id
// @Tags Storefront
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.ProductEntity
// @Failure 400 {object} transport.Response
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	res, err := s.ProductApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// SubmitOrder handler
// @Summary Submit order
// @Description Create a customer and an order for one product
// @Tags Storefront
// @Accept json
// @Produce json
// @Param request body model.OrderRequest true "Order Request"
// @Success 200 {object} model.OrderResponse
// @Failure 400 {object} transport.Response
// @Router /orders [post]
func (s *RestHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.SubmitOrder(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminLogin handler
// @Summary Admin login
// @Description Check the admin credential pair and issue a session token
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} transport.Response
// @Router /admin/login [post]
func (s *RestHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AdminApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AdminLogout handler
// @Summary Admin logout
// @Description Drop the admin session
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} transport.Response
// @Failure 401 {object} transport.Response
// @Router /admin/logout [post]
func (s *RestHandler) AdminLogout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	if err := s.AdminApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// ListOrders handler
// @Summary List orders
// @Description List orders for the dashboard, newest first when the primary read path holds
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param q query string false "Search order id, customer id or product name"
// @Success 200 {object} model.OrderListResult
// @Failure 502 {object} transport.Response
// @Router /admin/orders [get]
func (s *RestHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	filter := model.OrderListFilter{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("q"),
	}
	if filter.Status != "" && !constant.IsValidOrderStatus(filter.Status) {
		writeError(w, errors.SetCustomError(constant.ErrInvalidStatus))
		return
	}

	res, err := s.OrderApp.ListOrders(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetOrder handler
// @Summary Get order
// @Description Fetch one order with its product and customer
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} model.OrderDetail
// @Failure 404 {object} transport.Response
// @Router /admin/orders/{id} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	res, err := s.OrderApp.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateOrderStatus handler
// @Summary Update order status
// @Description Move an order to a new status from the fixed status set
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body model.UpdateStatusRequest true "New status"
// @Success 200 {object} model.OrderView
// @Failure 400 {object} transport.Response
// @Router /admin/orders/{id}/status [patch]
func (s *RestHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req model.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	if username, ok := utilsContext.GetAdminUser(r.Context()); ok {
		logger.Info("order status updated",
			zap.String("order_id", id),
			zap.String("status", req.Status),
			zap.String("admin", username))
	}

	writeSuccess(w, res)
}
