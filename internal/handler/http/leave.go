package http

import (
	"context"
	"net/http"

	"github.com/edudesk/attendance-engine-go/internal/domain/leave"
	"github.com/edudesk/attendance-engine-go/internal/handler/http/response"
)

// LeaveBalanceGetter is the slice of the leave service this handler needs.
type LeaveBalanceGetter interface {
	GetBalance(ctx context.Context, employeeID string) (leave.Balance, error)
}

type LeaveHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService LeaveBalanceGetter
}

func NewLeaveHandler(leaveService LeaveBalanceGetter) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// GetBalance implements LeaveHandler.
func (h *leaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.leaveService.GetBalance(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
