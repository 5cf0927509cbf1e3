package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Beka01247/menu-order/internal/domain"
	"github.com/Beka01247/menu-order/internal/service"
	"github.com/go-chi/chi"
)

type CreateSessionResponse struct {
	SessionID string          `json:"session_id"`
	Cart      OrderResponse   `json:"cart"`
	Profile   ProfileResponse `json:"profile"`
}

type AddItemRequest struct {
	ItemID              string `json:"item_id" validate:"required"`
	Quantity            *int   `json:"quantity" validate:"omitempty,min=1,max=99"`
	SpecialInstructions string `json:"special_instructions" validate:"max=500"`
}

type UpdateLineRequest struct {
	Quantity            *int    `json:"quantity"`
	SpecialInstructions *string `json:"special_instructions" validate:"omitempty,max=500"`
}

type AddressRequest struct {
	Street    string `json:"street" validate:"required,max=200"`
	Apartment string `json:"apartment" validate:"max=50"`
	City      string `json:"city" validate:"required,max=100"`
	State     string `json:"state" validate:"required,max=50"`
	ZipCode   string `json:"zip_code" validate:"required,max=20"`
	Label     string `json:"label" validate:"max=50"`
	Save      bool   `json:"save"`
}

func (req AddressRequest) address() domain.Address {
	return domain.Address{
		Street:    req.Street,
		Apartment: req.Apartment,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Label:     req.Label,
	}
}

type PaymentRequest struct {
	Method string `json:"method" validate:"required"`
}

type CartDetailsRequest struct {
	SpecialInstructions   *string    `json:"special_instructions" validate:"omitempty,max=500"`
	RequestedDeliveryTime *time.Time `json:"requested_delivery_time"`
	ClearDeliveryTime     bool       `json:"clear_delivery_time"`
}

type CheckoutResponse struct {
	Order        OrderResponse `json:"order"`
	PointsEarned int           `json:"points_earned"`
	Cart         OrderResponse `json:"cart"`
}

// createSessionHandler godoc
//
//	@Summary		Start a session
//	@Description	Creates a session with an empty cart and a guest profile
//	@Tags			sessions
//	@Produce		json
//	@Success		201	{object}	CreateSessionResponse
//	@Failure		500	{object}	map[string]string
//	@Router			/sessions [post]
func (app *application) createSessionHandler(w http.ResponseWriter, r *http.Request) {
	session, err := app.sessionService.CreateSession(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := CreateSessionResponse{
		SessionID: session.ID,
		Cart:      newOrderResponse(session.Cart),
		Profile:   newProfileResponse(session.Profile),
	}

	if err := app.jsonRespone(w, http.StatusCreated, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCartHandler godoc
//
//	@Summary		Get cart
//	@Description	Returns the cart with subtotal, tax, delivery fee and total
//	@Tags			cart
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Success		200			{object}	OrderResponse
//	@Failure		404			{object}	map[string]string
//	@Router			/sessions/{session_id}/cart [get]
func (app *application) getCartHandler(w http.ResponseWriter, r *http.Request) {
	cart, err := app.cartService.GetCart(r.Context(), chi.URLParam(r, "session_id"))
	app.cartResponse(w, r, cart, err)
}

// addCartItemHandler godoc
//
//	@Summary		Add item to cart
//	@Description	Adds a menu item; adding an item already in the cart increases its quantity
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string			true	"Session ID"
//	@Param			request		body		AddItemRequest	true	"Item to add"
//	@Success		200			{object}	OrderResponse
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Failure		503			{object}	map[string]string
//	@Router			/sessions/{session_id}/cart/items [post]
func (app *application) addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	cart, err := app.cartService.AddItem(r.Context(), chi.URLParam(r, "session_id"), req.ItemID, quantity, req.SpecialInstructions)
	app.cartResponse(w, r, cart, err)
}

// updateCartItemHandler godoc
//
//	@Summary		Update cart line
//	@Description	Changes a line's quantity (values below one become one) or special instructions
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string				true	"Session ID"
//	@Param			line_id		path		string				true	"Line ID"
//	@Param			request		body		UpdateLineRequest	true	"Line changes"
//	@Success		200			{object}	OrderResponse
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/sessions/{session_id}/cart/items/{line_id} [patch]
func (app *application) updateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateLineRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if req.Quantity == nil && req.SpecialInstructions == nil {
		app.badRequestResponse(w, r, errors.New("quantity or special_instructions is required"))
		return
	}

	update := service.LineUpdate{
		Quantity:            req.Quantity,
		SpecialInstructions: req.SpecialInstructions,
	}

	cart, err := app.cartService.UpdateLine(r.Context(), chi.URLParam(r, "session_id"), chi.URLParam(r, "line_id"), update)
	app.cartResponse(w, r, cart, err)
}

// removeCartItemHandler godoc
//
//	@Summary		Remove cart line
//	@Tags			cart
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Param			line_id		path		string	true	"Line ID"
//	@Success		200			{object}	OrderResponse
//	@Failure		404			{object}	map[string]string
//	@Router			/sessions/{session_id}/cart/items/{line_id} [delete]
func (app *application) removeCartItemHandler(w http.ResponseWriter, r *http.Request) {
	cart, err := app.cartService.RemoveItem(r.Context(), chi.URLParam(r, "session_id"), chi.URLParam(r, "line_id"))
	app.cartResponse(w, r, cart, err)
}

// clearCartHandler godoc
//
//	@Summary		Clear cart
//	@Description	Removes all lines; the delivery address and payment method are kept
//	@Tags			cart
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Success		200			{object}	OrderResponse
//	@Failure		404			{object}	map[string]string
//	@Router			/sessions/{session_id}/cart [delete]
func (app *application) clearCartHandler(w http.ResponseWriter, r *http.Request) {
	cart, err := app.cartService.Clear(r.Context(), chi.URLParam(r, "session_id"))
	app.cartResponse(w, r, cart, err)
}

// setDeliveryAddressHandler godoc
//
//	@Summary		Set delivery address
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string			true	"Session ID"
//	@Param			request		body		AddressRequest	true	"Delivery address"
//	@Success		200			{object}	OrderResponse
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/sessions/{session_id}/cart/address [put]
func (app *application) setDeliveryAddressHandler(w http.ResponseWriter, r *http.Request) {
	var req AddressRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	cart, err := app.cartService.SetDeliveryAddress(r.Context(), chi.URLParam(r, "session_id"), req.address(), req.Save)
	app.cartResponse(w, r, cart, err)
}

// setPaymentMethodHandler godoc
//
//	@Summary		Set payment method
//	@Description	One of Apple Pay, Credit Card, Debit Card, PayPal
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string			true	"Session ID"
//	@Param			request		body		PaymentRequest	true	"Payment method"
//	@Success		200			{object}	OrderResponse
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/sessions/{session_id}/cart/payment [put]
func (app *application) setPaymentMethodHandler(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	method := domain.PaymentMethod(req.Method)
	if !method.Valid() {
		app.badRequestResponse(w, r, fmt.Errorf("unknown payment method %q", req.Method))
		return
	}

	cart, err := app.cartService.SetPaymentMethod(r.Context(), chi.URLParam(r, "session_id"), method)
	app.cartResponse(w, r, cart, err)
}

// setCartDetailsHandler godoc
//
//	@Summary		Set order details
//	@Description	Sets order-level special instructions and the requested delivery time
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string				true	"Session ID"
//	@Param			request		body		CartDetailsRequest	true	"Order details"
//	@Success		200			{object}	OrderResponse
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/sessions/{session_id}/cart/details [put]
func (app *application) setCartDetailsHandler(w http.ResponseWriter, r *http.Request) {
	var req CartDetailsRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	details := service.CartDetails{
		SpecialInstructions:   req.SpecialInstructions,
		RequestedDeliveryTime: req.RequestedDeliveryTime,
		ClearDeliveryTime:     req.ClearDeliveryTime,
	}

	cart, err := app.cartService.SetDetails(r.Context(), chi.URLParam(r, "session_id"), details)
	app.cartResponse(w, r, cart, err)
}

// checkoutHandler godoc
//
//	@Summary		Checkout
//	@Description	Places the cart, archives it into the profile history and starts a new cart
//	@Tags			cart
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Success		201			{object}	CheckoutResponse
//	@Failure		404			{object}	map[string]string
//	@Failure		422			{object}	map[string]interface{}
//	@Router			/sessions/{session_id}/cart/checkout [post]
func (app *application) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")

	result, err := app.orderService.Checkout(r.Context(), sessionID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	cart, err := app.cartService.GetCart(r.Context(), sessionID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	response := CheckoutResponse{
		Order:        newOrderResponse(result.Order),
		PointsEarned: result.PointsEarned,
		Cart:         newOrderResponse(cart),
	}

	if err := app.jsonRespone(w, http.StatusCreated, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) cartResponse(w http.ResponseWriter, r *http.Request, cart *domain.Order, err error) {
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, newOrderResponse(cart)); err != nil {
		app.internalServerError(w, r, err)
	}
}
