package http

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bilaLBOOS8/foodieMeknes/internal/domain"
	"github.com/bilaLBOOS8/foodieMeknes/internal/services"
)

type Handler struct {
	catalog    *services.CatalogService
	orders     *services.OrderService
	auth       *services.AuthService
	uploadsDir string
}

func NewHandler(catalog *services.CatalogService, orders *services.OrderService, auth *services.AuthService, uploadsDir string) *Handler {
	return &Handler{catalog: catalog, orders: orders, auth: auth, uploadsDir: uploadsDir}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.Use(cors())

	r.Static("/uploads", h.uploadsDir)

	r.GET("/categories", h.ListCategories)
	r.GET("/products", h.ListProducts)
	r.GET("/products/category/:categoryId", h.ListProductsByCategory)

	r.POST("/orders", h.CreateOrder)
	r.GET("/orders", h.ListOrders)
	r.PUT("/orders/:orderId/status", h.UpdateOrderStatus)

	r.POST("/categories", h.CreateCategory)
	r.PUT("/categories/:categoryId", h.UpdateCategory)
	r.DELETE("/categories/:categoryId", h.DeleteCategory)

	r.POST("/products", h.CreateProduct)
	r.PUT("/products/:productId", h.UpdateProduct)
	r.DELETE("/products/:productId", h.DeleteProduct)

	r.POST("/uploads", h.Upload)
	r.POST("/auth/admin/login", h.AdminLogin)
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "*")
		c.Header("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (h *Handler) ListCategories(c *gin.Context) {
	ok(c, h.catalog.Categories(c.Request.Context()))
}

func (h *Handler) ListProducts(c *gin.Context) {
	ok(c, h.catalog.Products(c.Request.Context(), nil))
}

func (h *Handler) ListProductsByCategory(c *gin.Context) {
	id, err := pathID(c, "categoryId")
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid category id")
		return
	}
	ok(c, h.catalog.Products(c.Request.Context(), &id))
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	order, err := h.orders.Create(c.Request.Context(), req.CustomerInfo, req.toSubmittedItems(), req.TotalPrice)
	if err != nil {
		respondError(c, err)
		return
	}
	created(c, order)
}

func (h *Handler) ListOrders(c *gin.Context) {
	ok(c, h.orders.List(c.Request.Context()))
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, err := pathID(c, "orderId")
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid order id")
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.orders.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	order, err := h.orders.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, order)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var cat domain.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	createdCat, err := h.catalog.CreateCategory(c.Request.Context(), &cat)
	if err != nil {
		respondError(c, err)
		return
	}
	created(c, createdCat)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, err := pathID(c, "categoryId")
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid category id")
		return
	}
	var cat domain.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := h.catalog.UpdateCategory(c.Request.Context(), id, &cat)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, updated)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := pathID(c, "categoryId")
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid category id")
		return
	}
	if err := h.catalog.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	ok(c, nil)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var p domain.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := p.Validate(); err != nil {
		respondError(c, err)
		return
	}
	createdProd, err := h.catalog.CreateProduct(c.Request.Context(), &p)
	if err != nil {
		respondError(c, err)
		return
	}
	created(c, createdProd)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := pathID(c, "productId")
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid product id")
		return
	}
	var p domain.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := p.Validate(); err != nil {
		respondError(c, err)
		return
	}
	updated, err := h.catalog.UpdateProduct(c.Request.Context(), id, &p)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, updated)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := pathID(c, "productId")
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid product id")
		return
	}
	if err := h.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	ok(c, nil)
}

func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "field 'file' required")
		return
	}
	name := uuid.NewString() + "_" + sanitizeFilename(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadsDir, name)); err != nil {
		fail(c, http.StatusInternalServerError, "failed to store file")
		return
	}
	ok(c, gin.H{"path": "/uploads/" + name})
}

func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	token, user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		fail(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	ok(c, LoginResponse{Token: token, User: user})
}

func pathID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

var filenameSanitizer = strings.NewReplacer("/", "_", "\\", "_", " ", "_", "..", "_")

func sanitizeFilename(name string) string {
	return filenameSanitizer.Replace(filepath.Base(name))
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		fail(c, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrOrderNotFound), errors.Is(err, domain.ErrNotFound):
		fail(c, http.StatusNotFound, err.Error())
	default:
		fail(c, http.StatusInternalServerError, err.Error())
	}
}
