package controllers

import (
	"net/http"

	"github.com/seba-moreno/real-estate-tracker/internal/dtos"
	"github.com/seba-moreno/real-estate-tracker/internal/services"
	"github.com/seba-moreno/real-estate-tracker/internal/utils"
)

type ContractController struct {
	svc *services.ContractService
}

func NewContractController(svc *services.ContractService) *ContractController {
	return &ContractController{svc: svc}
}

// -----------------------------------------------------------------------------
// GET /api/v1/contract
// -----------------------------------------------------------------------------
func (c *ContractController) ListHandler(w http.ResponseWriter, r *http.Request) {
	out, err := c.svc.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// -----------------------------------------------------------------------------
// GET /api/v1/contract/{id}
// -----------------------------------------------------------------------------
func (c *ContractController) GetHandler(w http.ResponseWriter, r *http.Request) {
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
// POST /api/v1/contract
// -----------------------------------------------------------------------------
func (c *ContractController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.ContractRequest
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
// PUT /api/v1/contract/{id}
// -----------------------------------------------------------------------------
func (c *ContractController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	var req dtos.ContractRequest
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
// DELETE /api/v1/contract/{id}
// -----------------------------------------------------------------------------
func (c *ContractController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
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

// -----------------------------------------------------------------------------
// GET /api/v1/contract/ending-in/{months}
// -----------------------------------------------------------------------------
func (c *ContractController) EndingInHandler(w http.ResponseWriter, r *http.Request) {
	months, err := pathInt(r, "months")
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	out, err := c.svc.EndingWithin(r.Context(), int(months))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}
