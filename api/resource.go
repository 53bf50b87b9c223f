package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Envelope is the uniform response body returned by collection endpoints.
type Envelope[T any] struct {
	Success    bool   `json:"success"`
	StatusCode string `json:"statusCode"`
	Msg        string `json:"msg"`
	Data       []T    `json:"data"`
}

func (e *Envelope[T]) ok() bool        { return e.Success }
func (e *Envelope[T]) message() string { return e.Msg }

// duplicateEnvelope is the response of the -isduplicate probe endpoints.
type duplicateEnvelope struct {
	Success     bool   `json:"success"`
	Msg         string `json:"msg"`
	IsDuplicate bool   `json:"is_duplicate"`
}

func (e *duplicateEnvelope) ok() bool        { return e.Success }
func (e *duplicateEnvelope) message() string { return e.Msg }

// Resource is the uniform read/write contract over one entity tag. Reads
// are cached per (tag, filter) key; successful mutations invalidate every
// cached read for the tag.
type Resource[T any] struct {
	client    *Client
	tag       string
	nameParam string
}

// Get returns the collection matching filter, serving a fresh cached copy
// when one exists. Concurrent reads under the same key share a single
// in-flight request; all callers receive the same settling result. A nil
// filter keys the collection under the tag alone.
func (r *Resource[T]) Get(ctx context.Context, filter Filter) ([]T, error) {
	key := encodeFilter(filter)
	if cached, ok := r.client.cache.get(r.tag, key); ok {
		return cached.([]T), nil
	}

	result, err, _ := r.client.flight.Do(r.tag+"\x00"+key, func() (any, error) {
		var query url.Values
		if filter != nil {
			query = filter.Values()
		}
		var env Envelope[T]
		if err := r.client.do(ctx, http.MethodGet, "/"+r.tag, query, nil, &env, true); err != nil {
			return nil, err
		}
		r.client.cache.set(r.tag, key, env.Data)
		return env.Data, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]T), nil
}

// Create sends the record and invalidates every cached read for the tag.
// The returned collection carries the created record with its
// remote-assigned identifier when the server echoes it back.
func (r *Resource[T]) Create(ctx context.Context, record T) ([]T, error) {
	var env Envelope[T]
	if err := r.client.do(ctx, http.MethodPost, "/"+r.tag, nil, record, &env, true); err != nil {
		return nil, err
	}
	r.client.cache.invalidate(r.tag)
	return env.Data, nil
}

// Update sends the full record and invalidates every cached read for the tag.
func (r *Resource[T]) Update(ctx context.Context, record T) ([]T, error) {
	var env Envelope[T]
	if err := r.client.do(ctx, http.MethodPut, "/"+r.tag, nil, record, &env, true); err != nil {
		return nil, err
	}
	r.client.cache.invalidate(r.tag)
	return env.Data, nil
}

// Delete removes the record with the given identifier and invalidates every
// cached read for the tag.
func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	var env Envelope[T]
	if err := r.client.do(ctx, http.MethodDelete, fmt.Sprintf("/%s/%d", r.tag, id), nil, nil, &env, true); err != nil {
		return err
	}
	r.client.cache.invalidate(r.tag)
	return nil
}

// IsDuplicate asks the remote system whether name is already in use. The
// probe is always issued fresh; it has no cache entry of its own.
func (r *Resource[T]) IsDuplicate(ctx context.Context, name string) (bool, error) {
	query := url.Values{}
	query.Set(r.nameParam, name)
	var env duplicateEnvelope
	if err := r.client.do(ctx, http.MethodGet, "/"+r.tag+"-isduplicate", query, nil, &env, true); err != nil {
		return false, err
	}
	return env.IsDuplicate, nil
}

// MapResource relates two entity types through an association table. Create
// accepts one foreign key plus a batch of counterpart foreign keys, so a
// whole association set is written in a single call.
type MapResource[T any, C any] struct {
	res *Resource[T]
}

// Get returns the association rows matching filter, with the same caching
// and de-duplication behavior as Resource.Get.
func (r *MapResource[T, C]) Get(ctx context.Context, filter Filter) ([]T, error) {
	return r.res.Get(ctx, filter)
}

// Create writes a batch association and invalidates every cached read for
// the mapping tag.
func (r *MapResource[T, C]) Create(ctx context.Context, link C) error {
	var env Envelope[T]
	if err := r.res.client.do(ctx, http.MethodPost, "/"+r.res.tag, nil, link, &env, true); err != nil {
		return err
	}
	r.res.client.cache.invalidate(r.res.tag)
	return nil
}

// Delete removes one association row by its identifier and invalidates every
// cached read for the mapping tag.
func (r *MapResource[T, C]) Delete(ctx context.Context, id int64) error {
	return r.res.Delete(ctx, id)
}
