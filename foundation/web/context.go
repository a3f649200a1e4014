package web

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context carries the request scoped values through the call chain.
type Context struct {
	*gin.Context
	Ctx context.Context

	paramErrs []error
	queryErrs []error
}

func NewContext(c *gin.Context) *Context {
	return &Context{
		Context: c,
		Ctx:     c.Request.Context(),
	}
}

// BindFunc binds the request body (json or form) into obj and checks that
// the listed struct fields were provided.
func (c *Context) BindFunc(obj interface{}, required ...string) error {
	if err := c.Context.ShouldBind(obj); err != nil {
		return NewRequestError(errors.Wrap(err, "binding request"), http.StatusBadRequest)
	}

	v := reflect.ValueOf(obj).Elem()
	for _, name := range required {
		field := v.FieldByName(name)
		if !field.IsValid() {
			continue
		}
		if field.Kind() == reflect.Ptr && field.IsNil() {
			return NewRequestError(fmt.Errorf("field %q is required", name), http.StatusBadRequest)
		}
		if field.Kind() != reflect.Ptr && field.IsZero() {
			return NewRequestError(fmt.Errorf("field %q is required", name), http.StatusBadRequest)
		}
	}

	return nil
}

// GetParam reads a typed path parameter. Conversion problems are collected
// and surfaced by ValidParam so controllers can read first and check once.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.Context.Param(name)

	switch kind {
	case reflect.Int:
		i, err := strconv.Atoi(value)
		if err != nil {
			c.paramErrs = append(c.paramErrs, fmt.Errorf("param %q must be an integer", name))
			return 0
		}
		return i
	case reflect.String:
		return value
	default:
		c.paramErrs = append(c.paramErrs, fmt.Errorf("param %q: unsupported kind %s", name, kind))
		return nil
	}
}

func (c *Context) ValidParam() error {
	if len(c.paramErrs) > 0 {
		return NewRequestError(c.paramErrs[0], http.StatusBadRequest)
	}
	return nil
}

// GetQueryFunc reads an optional typed query parameter. A missing parameter
// yields a nil interface so the `value, ok :=` pattern skips the filter.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	value, exists := c.Context.GetQuery(name)
	if !exists {
		return nil
	}

	switch kind {
	case reflect.Int:
		i, err := strconv.Atoi(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, fmt.Errorf("query %q must be an integer", name))
			return nil
		}
		return &i
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, fmt.Errorf("query %q must be a boolean", name))
			return nil
		}
		return &b
	case reflect.Float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			c.queryErrs = append(c.queryErrs, fmt.Errorf("query %q must be a number", name))
			return nil
		}
		return &f
	case reflect.String:
		return &value
	default:
		c.queryErrs = append(c.queryErrs, fmt.Errorf("query %q: unsupported kind %s", name, kind))
		return nil
	}
}

func (c *Context) ValidQuery() error {
	if len(c.queryErrs) > 0 {
		return NewRequestError(c.queryErrs[0], http.StatusBadRequest)
	}
	return nil
}

// Respond converts a Go value to JSON and sends it to the client.
func (c *Context) Respond(data interface{}, status int) error {
	c.Context.JSON(status, data)
	return nil
}

// RespondError sends an error response to the client. A *web.Error carries
// its own status; anything else is treated as an internal problem.
func (c *Context) RespondError(err error) error {
	var webErr *Error
	if errors.As(err, &webErr) {
		return c.Respond(map[string]interface{}{
			"error":  webErr.Error(),
			"fields": webErr.Fields,
			"status": false,
		}, webErr.Status)
	}

	return c.Respond(map[string]interface{}{
		"error":  err.Error(),
		"status": false,
	}, http.StatusInternalServerError)
}
