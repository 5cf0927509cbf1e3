package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Beka01247/menu-order/internal/domain"
	"github.com/Beka01247/menu-order/internal/repo"
	"github.com/Beka01247/menu-order/internal/service"
)

var (
	ErrInvalidID = errors.New("invalid ID format")
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusNotFound, "not found")
}

func (app *application) conflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("conflict response", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusConflict, err.Error())
}

// unprocessableEntityResponse lists every unmet checkout precondition.
func (app *application) unprocessableEntityResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Infow("unprocessable entity", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	type envelope struct {
		Error   string   `json:"error"`
		Reasons []string `json:"reasons"`
	}

	writeJson(w, http.StatusUnprocessableEntity, &envelope{
		Error:   "checkout is not possible",
		Reasons: checkoutIssues(err),
	})
}

func (app *application) serviceUnavailableResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("service unavailable", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusServiceUnavailable, err.Error())
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter time.Duration) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	seconds := int(retryAfter.Round(time.Second) / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(seconds))

	writeJsonError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+strconv.Itoa(seconds)+"s")
}

// serviceError maps errors returned by the services to responses.
func (app *application) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		app.notFoundError(w, r, err)
	case errors.Is(err, service.ErrCatalogUnavailable), errors.Is(err, service.ErrImportUnavailable):
		app.serviceUnavailableResponse(w, r, err)
	case errors.Is(err, domain.ErrInvalidTransition):
		app.conflictResponse(w, r, err)
	case len(checkoutIssues(err)) > 0:
		app.unprocessableEntityResponse(w, r, err)
	default:
		app.internalServerError(w, r, err)
	}
}

func checkoutIssues(err error) []string {
	issues := []string{}
	for _, sentinel := range []error{domain.ErrEmptyCart, domain.ErrMissingAddress, domain.ErrMissingPayment} {
		if errors.Is(err, sentinel) {
			issues = append(issues, sentinel.Error())
		}
	}
	return issues
}
