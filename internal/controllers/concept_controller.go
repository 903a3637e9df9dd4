package controllers

import (
	"net/http"

	"github.com/seba-moreno/real-estate-tracker/internal/dtos"
	"github.com/seba-moreno/real-estate-tracker/internal/services"
	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

type ConceptController struct {
	svc *services.ConceptService
}

func NewConceptController(svc *services.ConceptService) *ConceptController {
	return &ConceptController{svc: svc}
}

// -----------------------------------------------------------------------------
// GET /api/v1/concept
// -----------------------------------------------------------------------------
func (c *ConceptController) ListHandler(w http.ResponseWriter, r *http.Request) {
	out, err := c.svc.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// -----------------------------------------------------------------------------
// GET /api/v1/concept/{id}
// -----------------------------------------------------------------------------
func (c *ConceptController) GetHandler(w http.ResponseWriter, r *http.Request) {
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
// POST /api/v1/concept
// -----------------------------------------------------------------------------
func (c *ConceptController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.ConceptRequest
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
// PUT /api/v1/concept/{id}
// -----------------------------------------------------------------------------
func (c *ConceptController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	var req dtos.ConceptRequest
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
// DELETE /api/v1/concept/{id}
// -----------------------------------------------------------------------------
func (c *ConceptController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
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
