package villageapi

import (
	"net/url"
	"strconv"
	"strings"
)

// Ptr returns a pointer to v. It keeps optional filter literals short:
//
//	params := repository.ArticleListParams{Active: villageapi.Ptr(true)}
func Ptr[T any](v T) *T {
	return &v
}

// query builds a query string that keeps parameters in insertion order.
// url.Values sorts its keys, which would reorder the upstream parameters.
type query struct {
	parts []string
}

// addString appends key when v is set and non-empty.
func (q *query) addString(key string, v *string) {
	if v == nil || *v == "" {
		return
	}
	q.add(key, *v)
}

// addBool appends key whenever v is set, including false.
func (q *query) addBool(key string, v *bool) {
	if v == nil {
		return
	}
	q.add(key, strconv.FormatBool(*v))
}

// addInt appends key whenever v is set, including zero.
func (q *query) addInt(key string, v *int) {
	if v == nil {
		return
	}
	q.add(key, strconv.Itoa(*v))
}

func (q *query) add(key, value string) {
	q.parts = append(q.parts, url.QueryEscape(key)+"="+url.QueryEscape(value))
}

// encode returns the query string without the leading '?'.
func (q *query) encode() string {
	return strings.Join(q.parts, "&")
}

// withQuery appends q to path, adding '?' only when q is non-empty.
func withQuery(path string, q *query) string {
	if s := q.encode(); s != "" {
		return path + "?" + s
	}
	return path
}
