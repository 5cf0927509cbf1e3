package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Beka01247/menu-order/internal/domain"
	"github.com/go-chi/chi"
)

const defaultAuditLimit = 50

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ready_for_pickup out_for_delivery delivered completed"`
	Reason string `json:"reason" validate:"max=500"`
	UserID string `json:"user_id,omitempty"`
}

// listOrdersHandler godoc
//
//	@Summary		List placed orders
//	@Description	Lists the session's placed orders with their current status
//	@Tags			orders
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Success		200			{array}		OrderResponse
//	@Failure		404			{object}	map[string]string
//	@Router			/sessions/{session_id}/orders [get]
func (app *application) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := app.orderService.ListOrders(r.Context(), chi.URLParam(r, "session_id"))
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, newOrderResponse(order))
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateOrderStatusHandler godoc
//
//	@Summary		Update order status
//	@Description	Queues a forward status change for a placed order
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			session_id		path		string						true	"Session ID"
//	@Param			order_number	path		string						true	"Order number, with or without the leading #"
//	@Param			request			body		UpdateOrderStatusRequest	true	"Status update request"
//	@Success		202				{object}	map[string]interface{}
//	@Failure		400				{object}	map[string]string
//	@Failure		404				{object}	map[string]string
//	@Failure		409				{object}	map[string]string
//	@Failure		500				{object}	map[string]string
//	@Router			/sessions/{session_id}/orders/{order_number}/status [patch]
func (app *application) updateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	orderNumber, err := orderNumberParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req UpdateOrderStatusRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = "operator"
	}

	event, err := app.orderService.RequestStatusChange(
		r.Context(),
		chi.URLParam(r, "session_id"),
		orderNumber,
		domain.OrderStatus(req.Status),
		req.Reason,
		userID,
	)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	response := map[string]interface{}{
		"success":      true,
		"message":      "Status update queued",
		"order_number": event.OrderNumber,
		"old_status":   event.OldStatus,
		"new_status":   event.NewStatus,
	}

	if err := app.jsonRespone(w, http.StatusAccepted, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOrderAuditHandler godoc
//
//	@Summary		Get order status audit
//	@Description	Lists applied status changes, newest first
//	@Tags			orders
//	@Produce		json
//	@Param			session_id		path		string	true	"Session ID"
//	@Param			order_number	path		string	true	"Order number, with or without the leading #"
//	@Param			limit			query		int		false	"Maximum number of entries"
//	@Success		200				{array}		domain.OrderStatusAudit
//	@Failure		400				{object}	map[string]string
//	@Failure		404				{object}	map[string]string
//	@Router			/sessions/{session_id}/orders/{order_number}/audit [get]
func (app *application) getOrderAuditHandler(w http.ResponseWriter, r *http.Request) {
	orderNumber, err := orderNumberParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	limit := defaultAuditLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			app.badRequestResponse(w, r, fmt.Errorf("invalid limit %q", raw))
			return
		}
	}

	audits, err := app.orderService.GetOrderAudit(r.Context(), chi.URLParam(r, "session_id"), orderNumber, limit)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, audits); err != nil {
		app.internalServerError(w, r, err)
	}
}

// orderNumberParam accepts the number percent-encoded ("%23...") or without
// the leading "#".
func orderNumberParam(r *http.Request) (string, error) {
	raw, err := url.PathUnescape(chi.URLParam(r, "order_number"))
	if err != nil || raw == "" {
		return "", ErrInvalidID
	}
	if !strings.HasPrefix(raw, "#") {
		raw = "#" + raw
	}
	return raw, nil
}
