package products

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ressit/ressit-pos-api/app/respond"
	"github.com/ressit/ressit-pos-api/models"
)

type ProductProvider interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int, product *models.Product) error
	DeleteProduct(ctx context.Context, id int) error
}

type ProductHandler struct {
	repo ProductProvider
	log  *zap.Logger
}

func NewProductHandler(r ProductProvider, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		repo: r,
		log:  log,
	}
}

func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Post("/createProduct", h.HandleCreate)
	r.Get("/getAllProducts", h.HandleGetAll)
	r.Get("/getProduct/{id}", h.HandleGet)
	r.Put("/updateProduct/{id}", h.HandleUpdate)
	r.Delete("/deleteProduct/{id}", h.HandleDelete)
}

func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := respond.Decode(r, &product); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.repo.CreateProduct(r.Context(), &product); err != nil {
		h.log.Error("create product", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	w.Header().Set("Location", "/getProduct/"+strconv.Itoa(product.ID))
	respond.JSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.GetAllProducts(r.Context())
	if err != nil {
		h.log.Error("list products", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to fetch products")
		return
	}
	respond.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := h.repo.GetProduct(r.Context(), id)
	if err != nil {
		h.fail(w, "get product", err)
		return
	}
	respond.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var product models.Product
	if err := respond.Decode(r, &product); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.repo.UpdateProduct(r.Context(), id, &product); err != nil {
		h.fail(w, "update product", err)
		return
	}
	respond.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := h.repo.DeleteProduct(r.Context(), id); err != nil {
		h.fail(w, "delete product", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *ProductHandler) fail(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, models.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, "Product not found")
		return
	}
	h.log.Error(op, zap.Error(err))
	respond.Error(w, http.StatusInternalServerError, "failed to "+op)
}
