package admins

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

// LoginRequest carries a password hash computed by the client.
type LoginRequest struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

type AdminProvider interface {
	CreateAdmin(ctx context.Context, admin *models.Admin) error
	GetAllAdmins(ctx context.Context) ([]models.Admin, error)
	GetAdmin(ctx context.Context, id int) (*models.Admin, error)
	UpdateAdmin(ctx context.Context, id int, admin *models.Admin) error
	DeleteAdmin(ctx context.Context, id int) error
	Login(ctx context.Context, username, passwordHash string) (*models.AdminProfile, error)
}

type AdminHandler struct {
	repo AdminProvider
	log  *zap.Logger
}

func NewAdminHandler(r AdminProvider, log *zap.Logger) *AdminHandler {
	return &AdminHandler{repo: r, log: log}
}

func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Post("/login", h.HandleLogin)
	r.Post("/createAdmin", h.HandleCreate)
	r.Get("/getAllAdmins", h.HandleGetAll)
	r.Get("/getAdmin/{id}", h.HandleGet)
	r.Put("/updateAdmin/{id}", h.HandleUpdate)
	r.Delete("/deleteAdmin/{id}", h.HandleDelete)
}

func (h *AdminHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var input LoginRequest
	if err := respond.Decode(r, &input); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	profile, err := h.repo.Login(r.Context(), input.Username, input.PasswordHash)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			respond.Error(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		h.log.Error("login", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	h.log.Info("admin logged in", zap.Int("admin_id", profile.ID))
	respond.JSON(w, http.StatusOK, profile)
}

func (h *AdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var admin models.Admin
	if err := respond.Decode(r, &admin); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.repo.CreateAdmin(r.Context(), &admin); err != nil {
		h.log.Error("create admin", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to create admin")
		return
	}

	w.Header().Set("Location", "/getAdmin/"+strconv.Itoa(admin.ID))
	respond.JSON(w, http.StatusCreated, admin)
}

func (h *AdminHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	admins, err := h.repo.GetAllAdmins(r.Context())
	if err != nil {
		h.log.Error("list admins", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to fetch admins")
		return
	}
	respond.JSON(w, http.StatusOK, admins)
}

func (h *AdminHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid admin id")
		return
	}

	admin, err := h.repo.GetAdmin(r.Context(), id)
	if err != nil {
		h.fail(w, "get admin", err)
		return
	}
	respond.JSON(w, http.StatusOK, admin)
}

func (h *AdminHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid admin id")
		return
	}

	var admin models.Admin
	if err := respond.Decode(r, &admin); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.repo.UpdateAdmin(r.Context(), id, &admin); err != nil {
		h.fail(w, "update admin", err)
		return
	}
	respond.JSON(w, http.StatusOK, admin)
}

func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid admin id")
		return
	}

	if err := h.repo.DeleteAdmin(r.Context(), id); err != nil {
		h.fail(w, "delete admin", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *AdminHandler) fail(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, models.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, "Admin not found")
		return
	}
	h.log.Error(op, zap.Error(err))
	respond.Error(w, http.StatusInternalServerError, "failed to "+op)
}
