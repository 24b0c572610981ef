package academyapi

import (
	"context"
	"net/http"

	"github.com/dojoworks/dojo-admin/internal/domain/academy"
)

// resource implements the list/read/create/replace/delete calls every entity shares.
// T is the record, R the create/replace body.
type resource[T any, R any] struct {
	cl   *Client
	base string
}

// List fetches one page.
func (r resource[T, R]) List(ctx context.Context, req academy.PageRequest) (*academy.Page[T], error) {
	return listPage[T](ctx, r.cl, r.base, req)
}

// GetByID fetches one record.
func (r resource[T, R]) GetByID(ctx context.Context, id int64) (*T, error) {
	var out T
	if err := r.cl.get(ctx, idPath(r.base, id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create posts a new record.
func (r resource[T, R]) Create(ctx context.Context, req R) (*T, error) {
	var out T
	if err := r.cl.send(ctx, http.MethodPost, r.base, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a record.
func (r resource[T, R]) Update(ctx context.Context, id int64, req R) (*T, error) {
	var out T
	if err := r.cl.send(ctx, http.MethodPut, idPath(r.base, id), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a record.
func (r resource[T, R]) Delete(ctx context.Context, id int64) error {
	return r.cl.send(ctx, http.MethodDelete, idPath(r.base, id), nil, nil)
}

// patch issues a PATCH on base/id/suffix... and decodes the updated record.
func (r resource[T, R]) patch(ctx context.Context, body any, parts ...any) (*T, error) {
	var out T
	path := idPath(append([]any{r.base}, parts...)...)
	if err := r.cl.send(ctx, http.MethodPatch, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
