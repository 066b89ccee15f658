package categories

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

type CategoryProvider interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id int) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int, category *models.Category) error
	DeleteCategory(ctx context.Context, id int) error
}

type CategoryHandler struct {
	repo CategoryProvider
	log  *zap.Logger
}

func NewCategoryHandler(r CategoryProvider, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{repo: r, log: log}
}

func (h *CategoryHandler) RegisterRoutes(r chi.Router) {
	r.Post("/createCategory", h.HandleCreate)
	r.Get("/getAllCategories", h.HandleGetAll)
	r.Get("/getCategory/{id}", h.HandleGet)
	r.Put("/updateCategory/{id}", h.HandleUpdate)
	r.Delete("/deleteCategory/{id}", h.HandleDelete)
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAllCategories(r.Context())
	if err != nil {
		h.log.Error("list categories", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}
	respond.JSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if err := respond.Decode(r, &category); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.repo.CreateCategory(r.Context(), &category); err != nil {
		h.log.Error("create category", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	w.Header().Set("Location", "/getCategory/"+strconv.Itoa(category.ID))
	respond.JSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	category, err := h.repo.GetCategory(r.Context(), id)
	if err != nil {
		h.fail(w, "get category", err)
		return
	}
	respond.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	var category models.Category
	if err := respond.Decode(r, &category); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.repo.UpdateCategory(r.Context(), id, &category); err != nil {
		h.fail(w, "update category", err)
		return
	}
	respond.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid category id")
		return
	}

	if err := h.repo.DeleteCategory(r.Context(), id); err != nil {
		h.fail(w, "delete category", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *CategoryHandler) fail(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, models.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, "Category not found")
		return
	}
	h.log.Error(op, zap.Error(err))
	respond.Error(w, http.StatusInternalServerError, "failed to "+op)
}
