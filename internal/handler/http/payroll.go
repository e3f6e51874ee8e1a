package http

import (
	"encoding/json"
	"net/http"

	"github.com/tals012/agriculture-hrms-sub002/internal/domain/payroll"
	"github.com/tals012/agriculture-hrms-sub002/internal/handler/http/response"
)

type PayrollHandler interface {
	AggregateMonth(w http.ResponseWriter, r *http.Request)
	SendToSalary(w http.ResponseWriter, r *http.Request)
	DispatchPending(w http.ResponseWriter, r *http.Request)
	RegisterWorker(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) AggregateMonth(w http.ResponseWriter, r *http.Request) {
	var req payroll.AggregateMonthRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	results, err := h.payrollService.AggregateMonth(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Monthly submissions aggregated", results)
}

func (h *payrollHandlerImpl) SendToSalary(w http.ResponseWriter, r *http.Request) {
	var req payroll.SendToSalaryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	queued, err := h.payrollService.QueueSend(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Submissions queued for dispatch", map[string]int64{"queued": queued})
}

// DispatchPending lets an admin re-trigger the dispatch job immediately
// instead of waiting for the next scheduled run.
func (h *payrollHandlerImpl) DispatchPending(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.DispatchPending(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pending submissions dispatched", nil)
}

func (h *payrollHandlerImpl) RegisterWorker(w http.ResponseWriter, r *http.Request) {
	var req payroll.RegisterWorkerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.payrollService.RegisterWorker(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker registered in the salary system", nil)
}
