package httpx

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	apperrors "github.com/dojoworks/dojo-admin/internal/errors"
)

// FormParser parses form data from an HTTP request and returns the parsed data
// along with any field-level validation errors.
type FormParser[T any] func(r *http.Request) (T, map[string]string)

// FormActions are the service calls behind a create/edit form.
type FormActions[T any] struct {
	Create func(ctx context.Context, req T) error
	Update func(ctx context.Context, id int64, req T) error
}

// FormRenderer renders the form template with the given data.
type FormRenderer func(w http.ResponseWriter, r *http.Request, data map[string]any)

// FormHandlerOpts contains all options needed to handle a form submission.
type FormHandlerOpts[T any] struct {
	W        http.ResponseWriter
	R        *http.Request
	Mode     FormMode
	Parser   FormParser[T]
	Actions  FormActions[T]
	Renderer FormRenderer
	// SuccessURL is where the browser goes after saving.
	SuccessURL string
	// SuccessMessage is shown as a toast after saving.
	SuccessMessage string
	PageMeta       PageMeta
	// ExtraData is added to the template data when the form is re-rendered.
	ExtraData map[string]any
	// ErrorStatus is set on re-renders with field errors; htmx needs the default 200 to swap.
	ErrorStatus int
}

// HandleForm runs a create or edit submission: parse, validate, save, then navigate.
// Failures re-render the form with the submitted values and the API's message.
func HandleForm[T any](opts FormHandlerOpts[T]) {
	if opts.Parser == nil || opts.Renderer == nil {
		http.Error(opts.W, "misconfigured form handler", http.StatusInternalServerError)
		return
	}

	var id int64
	switch opts.Mode {
	case FormModeCreate:
		if opts.Actions.Create == nil {
			http.Error(opts.W, "misconfigured form handler", http.StatusInternalServerError)
			return
		}
	case FormModeEdit:
		parsed, ok := pathID(opts.R, "id")
		if !ok || opts.Actions.Update == nil {
			http.NotFound(opts.W, opts.R)
			return
		}
		id = parsed
	default:
		http.Error(opts.W, "invalid form mode", http.StatusBadRequest)
		return
	}

	data, fieldErrors := opts.Parser(opts.R)
	if len(fieldErrors) > 0 {
		opts.renderFormError(fieldErrors, "", data)
		return
	}

	var err error
	if opts.Mode == FormModeEdit {
		err = opts.Actions.Update(opts.R.Context(), id, data)
	} else {
		err = opts.Actions.Create(opts.R.Context(), data)
	}
	if err != nil {
		handleFormServiceError(opts, err, data)
		return
	}

	navigateAfterSave(opts.W, opts.R, opts.SuccessURL, opts.SuccessMessage)
}

// navigateAfterSave sends htmx to url with a success toast, or redirects a plain form post.
func navigateAfterSave(w http.ResponseWriter, r *http.Request, url, message string) {
	if !IsHTMX(r) {
		http.Redirect(w, r, url, http.StatusSeeOther)
		return
	}
	if message != "" {
		triggerToast(w, message, toastSuccess)
	}
	HTMX(w).Location(url, mainContentTarget)
}

func handleFormServiceError[T any](opts FormHandlerOpts[T], err error, data T) {
	if errors.Is(err, context.Canceled) {
		// The browser left; nobody will see a re-render.
		return
	}
	if apperrors.IsNotFound(err) && opts.Mode == FormModeEdit {
		triggerToast(opts.W, userMessage(err), toastError)
		http.NotFound(opts.W, opts.R)
		return
	}

	var fieldErrors map[string]string
	general := processError(err, &fieldErrors)
	opts.renderFormError(fieldErrors, general, data)
}

// renderFormError re-renders the form with errors and the submitted data.
func (fh FormHandlerOpts[T]) renderFormError(fieldErrors map[string]string, generalError string, data T) {
	td := NewTemplateData(fh.R, fh.PageMeta)
	td.With("Errors", map[string]string{})
	if len(fieldErrors) > 0 {
		td.WithFieldErrors(fieldErrors)
	}
	switch {
	case generalError != "":
		td.WithError(generalError)
		if len(fieldErrors) == 0 {
			triggerToast(fh.W, generalError, toastError)
		}
	case len(fieldErrors) > 0:
		td.WithError(errMsgFixBelow)
	}
	td.With("Mode", string(fh.Mode))
	if fh.Mode == FormModeEdit {
		if id, ok := pathID(fh.R, "id"); ok {
			td.With("ID", id)
		}
	}
	for k, v := range fh.ExtraData {
		td.With(k, v)
	}
	td.With("FormData", data)

	if fh.ErrorStatus != 0 && len(fieldErrors) > 0 {
		fh.W.WriteHeader(fh.ErrorStatus)
	}
	fh.Renderer(fh.W, fh.R, td.Build())
}

// pathID parses a positive int64 path value.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
