package http

import (
	"encoding/json"
	"net/http"

	"github.com/blazecore/payroll-backend-go/internal/domain/advance"
	"github.com/blazecore/payroll-backend-go/internal/handler/http/response"
)

type AdvanceHandler interface {
	Give(w http.ResponseWriter, r *http.Request)
}

type advanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &advanceHandlerImpl{advanceService: advanceService}
}

func (h *advanceHandlerImpl) Give(w http.ResponseWriter, r *http.Request) {
	var req advance.GiveAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.advanceService.Give(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance recorded successfully", result)
}
