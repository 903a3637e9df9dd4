package controllers

import (
	"net/http"

	"github.com/seba-moreno/real-estate-tracker/internal/dtos"
	"github.com/seba-moreno/real-estate-tracker/internal/services"
	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

type PropertyController struct {
	svc *services.PropertyService
}

func NewPropertyController(svc *services.PropertyService) *PropertyController {
	return &PropertyController{svc: svc}
}

// -----------------------------------------------------------------------------
// GET /api/v1/property
// -----------------------------------------------------------------------------
func (c *PropertyController) ListHandler(w http.ResponseWriter, r *http.Request) {
	out, err := c.svc.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// -----------------------------------------------------------------------------
// GET /api/v1/property/{id}
// -----------------------------------------------------------------------------
func (c *PropertyController) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	out, err := c.svc.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// -----------------------------------------------------------------------------
// POST /api/v1/property
// -----------------------------------------------------------------------------
func (c *PropertyController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.PropertyRequest
	if err := dtos.BindRequest(r.Body, &req); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	out, err := c.svc.Create(r.Context(), &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, out)
}

// -----------------------------------------------------------------------------
// PUT /api/v1/property/{id}
// -----------------------------------------------------------------------------
func (c *PropertyController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	var req dtos.PropertyRequest
	if err := dtos.BindRequest(r.Body, &req); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	out, err := c.svc.Update(r.Context(), id, &req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// -----------------------------------------------------------------------------
// DELETE /api/v1/property/{id}
// -----------------------------------------------------------------------------
func (c *PropertyController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if err := c.svc.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondNoContent(w)
}
