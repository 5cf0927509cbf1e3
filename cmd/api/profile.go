package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Beka01247/menu-order/internal/domain"
	"github.com/Beka01247/menu-order/internal/service"
	"github.com/go-chi/chi"
)

type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"max=100"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"max=30"`
}

type PreferencesRequest struct {
	Notifications          *bool   `json:"notifications"`
	SpecialOffers          *bool   `json:"special_offers"`
	DarkMode               *bool   `json:"dark_mode"`
	PreferredPaymentMethod *string `json:"preferred_payment_method"`
}

// getProfileHandler godoc
//
//	@Summary		Get profile
//	@Tags			profile
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Success		200			{object}	ProfileResponse
//	@Failure		404			{object}	map[string]string
//	@Router			/sessions/{session_id}/profile [get]
func (app *application) getProfileHandler(w http.ResponseWriter, r *http.Request) {
	profile, err := app.profileService.GetProfile(r.Context(), chi.URLParam(r, "session_id"))
	app.profileResponse(w, r, profile, err)
}

// updateProfileHandler godoc
//
//	@Summary		Edit profile
//	@Description	Sets name, email and phone; a profile with name and email counts as logged in
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string					true	"Session ID"
//	@Param			request		body		UpdateProfileRequest	true	"Identity"
//	@Success		200			{object}	ProfileResponse
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/sessions/{session_id}/profile [put]
func (app *application) updateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	identity := service.Identity{Name: req.Name, Email: req.Email, Phone: req.Phone}
	profile, err := app.profileService.UpdateIdentity(r.Context(), chi.URLParam(r, "session_id"), identity)
	app.profileResponse(w, r, profile, err)
}

// updatePreferencesHandler godoc
//
//	@Summary		Update preferences
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string				true	"Session ID"
//	@Param			request		body		PreferencesRequest	true	"Preferences"
//	@Success		200			{object}	ProfileResponse
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/sessions/{session_id}/profile/preferences [patch]
func (app *application) updatePreferencesHandler(w http.ResponseWriter, r *http.Request) {
	var req PreferencesRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	prefs := service.Preferences{
		Notifications: req.Notifications,
		SpecialOffers: req.SpecialOffers,
		DarkMode:      req.DarkMode,
	}
	if req.PreferredPaymentMethod != nil {
		method := domain.PaymentMethod(*req.PreferredPaymentMethod)
		if !method.Valid() {
			app.badRequestResponse(w, r, fmt.Errorf("unknown payment method %q", *req.PreferredPaymentMethod))
			return
		}
		prefs.PreferredPaymentMethod = &method
	}

	profile, err := app.profileService.UpdatePreferences(r.Context(), chi.URLParam(r, "session_id"), prefs)
	app.profileResponse(w, r, profile, err)
}

// addFavoriteHandler godoc
//
//	@Summary		Add favorite
//	@Tags			profile
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Param			item_id		path		string	true	"Item ID"
//	@Success		200			{object}	ProfileResponse
//	@Failure		404			{object}	map[string]string
//	@Failure		503			{object}	map[string]string
//	@Router			/sessions/{session_id}/profile/favorites/{item_id} [post]
func (app *application) addFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	profile, err := app.profileService.AddFavorite(r.Context(), chi.URLParam(r, "session_id"), chi.URLParam(r, "item_id"))
	app.profileResponse(w, r, profile, err)
}

// removeFavoriteHandler godoc
//
//	@Summary		Remove favorite
//	@Tags			profile
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Param			item_id		path		string	true	"Item ID"
//	@Success		200			{object}	ProfileResponse
//	@Failure		404			{object}	map[string]string
//	@Router			/sessions/{session_id}/profile/favorites/{item_id} [delete]
func (app *application) removeFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	profile, err := app.profileService.RemoveFavorite(r.Context(), chi.URLParam(r, "session_id"), chi.URLParam(r, "item_id"))
	app.profileResponse(w, r, profile, err)
}

// saveAddressHandler godoc
//
//	@Summary		Save address
//	@Description	Saves an address; an address with the same formatted text is not added twice
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string			true	"Session ID"
//	@Param			request		body		AddressRequest	true	"Address"
//	@Success		200			{object}	ProfileResponse
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/sessions/{session_id}/profile/addresses [post]
func (app *application) saveAddressHandler(w http.ResponseWriter, r *http.Request) {
	app.addressHandler(w, r, app.profileService.SaveAddress)
}

// removeAddressHandler godoc
//
//	@Summary		Remove saved address
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Param			session_id	path		string			true	"Session ID"
//	@Param			request		body		AddressRequest	true	"Address"
//	@Success		200			{object}	ProfileResponse
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/sessions/{session_id}/profile/addresses [delete]
func (app *application) removeAddressHandler(w http.ResponseWriter, r *http.Request) {
	app.addressHandler(w, r, app.profileService.RemoveAddress)
}

// getHistoryHandler godoc
//
//	@Summary		Order history
//	@Tags			profile
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Success		200			{array}		HistoricalOrderResponse
//	@Failure		404			{object}	map[string]string
//	@Router			/sessions/{session_id}/profile/history [get]
func (app *application) getHistoryHandler(w http.ResponseWriter, r *http.Request) {
	history, err := app.profileService.History(r.Context(), chi.URLParam(r, "session_id"))
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, newHistoryResponse(history)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// logoutHandler godoc
//
//	@Summary		Logout
//	@Description	Clears identity, favorites, history and loyalty points; keeps saved addresses and dark mode
//	@Tags			profile
//	@Produce		json
//	@Param			session_id	path		string	true	"Session ID"
//	@Success		200			{object}	ProfileResponse
//	@Failure		404			{object}	map[string]string
//	@Router			/sessions/{session_id}/profile/logout [post]
func (app *application) logoutHandler(w http.ResponseWriter, r *http.Request) {
	profile, err := app.profileService.Logout(r.Context(), chi.URLParam(r, "session_id"))
	app.profileResponse(w, r, profile, err)
}

func (app *application) addressHandler(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, sessionID string, address domain.Address) (*domain.Profile, error),
) {
	var req AddressRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	profile, err := apply(r.Context(), chi.URLParam(r, "session_id"), req.address())
	app.profileResponse(w, r, profile, err)
}

func (app *application) profileResponse(w http.ResponseWriter, r *http.Request, profile *domain.Profile, err error) {
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, newProfileResponse(profile)); err != nil {
		app.internalServerError(w, r, err)
	}
}
