package httpx

import (
	"context"
	"errors"
	"net/http"

	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
)

const errMsgFixBelow = "Please fix the errors below."

// ErrorRenderer is a function that renders an error template with the given data.
type ErrorRenderer func(w http.ResponseWriter, r *http.Request, data any)

// ErrorOpts contains all options needed to render an error response.
type ErrorOpts struct {
	W   http.ResponseWriter
	R   *http.Request
	Err error
	// FieldErrors maps form field name to message.
	FieldErrors map[string]string
	// Renderer is typically h.renderDashboardPage.
	Renderer ErrorRenderer
	PageMeta PageMeta
	// Data is merged into the template data, e.g. form values and dropdown options.
	Data map[string]any
	// StatusCode defaults to 200 so htmx swaps the response.
	StatusCode int
	// ShowToast also sends the message as a showToast trigger.
	ShowToast bool
}

// DetermineErrorStatus maps an error to the status a full page render should carry.
// It returns 0 when the default (200 for htmx swaps) applies.
func DetermineErrorStatus(err error) int {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeConflict:
		return http.StatusConflict
	case apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apperrors.ErrCodeUpstream:
		return http.StatusBadGateway
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return 0
	}
}

// RenderError renders a page carrying a general message and any field errors.
func RenderError(opts ErrorOpts) {
	if opts.Renderer == nil {
		http.Error(opts.W, "misconfigured error renderer", http.StatusInternalServerError)
		return
	}

	builder := NewTemplateData(opts.R, opts.PageMeta)
	generalError := processError(opts.Err, &opts.FieldErrors)

	if len(opts.FieldErrors) > 0 {
		builder.WithFieldErrors(opts.FieldErrors)
	}
	if generalError != "" {
		builder.WithError(generalError)
	} else if len(opts.FieldErrors) > 0 {
		builder.WithError(errMsgFixBelow)
	}
	for k, v := range opts.Data {
		builder.With(k, v)
	}

	if opts.ShowToast && generalError != "" {
		triggerToast(opts.W, generalError, toastError)
	}
	if opts.StatusCode != 0 {
		opts.W.WriteHeader(opts.StatusCode)
	}
	opts.Renderer(opts.W, opts.R, builder.Build())
}

// processError returns the message to display for err. A validation error naming
// a form field is moved into fieldErrors and answered with errMsgFixBelow.
func processError(err error, fieldErrors *map[string]string) string {
	if err == nil {
		return ""
	}
	if field := apperrors.GetField(err); field != "" && fieldErrors != nil {
		if *fieldErrors == nil {
			*fieldErrors = make(map[string]string)
		}
		(*fieldErrors)[field] = apperrors.Message(err, "This field has an invalid value.")
		return errMsgFixBelow
	}
	return userMessage(err)
}

// userMessage extracts the display text of err, falling back to a generic message.
func userMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.MsgTimeout
	case errors.Is(err, context.Canceled):
		return apperrors.MsgCanceled
	}
	return apperrors.Message(err, apperrors.MsgGeneric)
}
