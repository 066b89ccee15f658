package settings

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ressit/ressit-pos-api/app/respond"
	"github.com/ressit/ressit-pos-api/models"
)

type SettingsProvider interface {
	CreateSettings(ctx context.Context, settings *models.Settings) error
	GetSettings(ctx context.Context) (*models.Settings, error)
	GetAllSettings(ctx context.Context) ([]models.Settings, error)
	UpdateSettings(ctx context.Context, id int, settings *models.Settings) error
	DeleteSettings(ctx context.Context, id int) error
}

type SettingsHandler struct {
	repo SettingsProvider
	log  *zap.Logger
}

func NewSettingsHandler(r SettingsProvider, log *zap.Logger) *SettingsHandler {
	return &SettingsHandler{repo: r, log: log}
}

func (h *SettingsHandler) RegisterRoutes(r chi.Router) {
	r.Post("/createSettings", h.HandleCreate)
	r.Get("/getSettings", h.HandleGet)
	r.Get("/getAllSettings", h.HandleGetAll)
	r.Put("/updateSettings/{id}", h.HandleUpdate)
	r.Delete("/deleteSettings/{id}", h.HandleDelete)
}

func (h *SettingsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := respond.Decode(r, &settings); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.repo.CreateSettings(r.Context(), &settings); err != nil {
		h.log.Error("create settings", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "Failed to create settings")
		return
	}

	w.Header().Set("Location", "/getSettings")
	respond.JSON(w, http.StatusCreated, settings)
}

// HandleGet answers 200 with null when no settings were created yet.
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	settings, err := h.repo.GetSettings(r.Context())
	if err != nil {
		h.log.Error("get settings", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to fetch settings")
		return
	}
	if settings == nil {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("null\n"))
		return
	}
	respond.JSON(w, http.StatusOK, settings)
}

func (h *SettingsHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	all, err := h.repo.GetAllSettings(r.Context())
	if err != nil {
		h.log.Error("list settings", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to fetch settings")
		return
	}
	respond.JSON(w, http.StatusOK, all)
}

func (h *SettingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid settings id")
		return
	}

	var settings models.Settings
	if err := respond.Decode(r, &settings); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.repo.UpdateSettings(r.Context(), id, &settings); err != nil {
		h.fail(w, "update settings", err)
		return
	}
	respond.JSON(w, http.StatusOK, settings)
}

func (h *SettingsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid settings id")
		return
	}

	if err := h.repo.DeleteSettings(r.Context(), id); err != nil {
		h.fail(w, "delete settings", err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *SettingsHandler) fail(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, models.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, "Settings not found")
		return
	}
	h.log.Error(op, zap.Error(err))
	respond.Error(w, http.StatusInternalServerError, "failed to "+op)
}
