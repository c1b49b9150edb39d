package router

import (
	"context"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/catalyst/pkg/session"
)

// MethodOverrideField is the form field that replaces the method of a POST request.
const MethodOverrideField = "_METHOD"

// Context carries everything a middleware or a controller needs about the
// current request: the request and response writer, the matched path
// parameters, the session and the request-scoped data shared with views.
// It implements context.Context by delegating to the request context.
//
// A Context belongs to a single request and must not be shared between goroutines.
type Context struct {
	w       *responseWriter
	r       *http.Request
	params  Params
	route   string
	session *session.Session
	shared  map[string]any
}

// NewContext creates a Context for a request.
func NewContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{
		w:      &responseWriter{ResponseWriter: w},
		r:      r,
		params: Params{},
		shared: make(map[string]any),
	}
}

func (c *Context) Request() *http.Request {
	return c.r
}

func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// StatusCode returns the status written so far, 0 when nothing was written.
func (c *Context) StatusCode() int {
	return c.w.status
}

// Written reports whether the response header has been sent.
func (c *Context) Written() bool {
	return c.w.status != 0
}

// Deadline returns the time when work done on behalf of this context
// should be canceled.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done returns a channel that's closed when work done on behalf of this
// context should be canceled.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err returns a non-nil error value after Done is closed.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns the value associated with this context for key.
func (c *Context) Value(key any) any {
	return c.r.Context().Value(key)
}

// WithValue stores a value in the request context, making it visible to the
// rest of the chain through Value.
func (c *Context) WithValue(key, value any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, value))
}

// SetContext replaces the request context, as when a middleware derives a
// context carrying request scoped values.
func (c *Context) SetContext(ctx context.Context) {
	c.r = c.r.WithContext(ctx)
}

// Method returns the request method. A POST carrying a _METHOD form field is
// treated as the method named by that field.
func (c *Context) Method() string {
	if c.r.Method == http.MethodPost {
		if override := strings.TrimSpace(c.r.PostFormValue(MethodOverrideField)); override != "" {
			return strings.ToUpper(override)
		}
	}
	return c.r.Method
}

// Path returns the raw request path.
func (c *Context) Path() string {
	return c.r.URL.Path
}

// Route returns the normalized template of the matched route, such as
// "/users/{id}/". It is empty before dispatch and on the not-found path.
func (c *Context) Route() string {
	return c.route
}

// Param returns a path parameter of the matched route.
func (c *Context) Param(name string) string {
	return c.params[name]
}

// Params returns a copy of the path parameters of the matched route.
func (c *Context) Params() Params {
	return maps.Clone(c.params)
}

// FormValue returns the first value of a submitted form field.
func (c *Context) FormValue(key string) string {
	return c.r.PostFormValue(key)
}

// Input returns the submitted form as a flat map holding the first value of
// every field. Parse errors yield an empty map.
func (c *Context) Input() map[string]string {
	if err := c.r.ParseForm(); err != nil {
		return map[string]string{}
	}

	input := make(map[string]string, len(c.r.PostForm))
	for key, values := range c.r.PostForm {
		if len(values) > 0 {
			input[key] = values[0]
		}
	}
	return input
}

// Query returns the first value of a query string parameter.
func (c *Context) Query(key string) string {
	return c.r.URL.Query().Get(key)
}

// Referer returns the Referer header of the request.
func (c *Context) Referer() string {
	return c.r.Referer()
}

// Session returns the session attached by the session middleware, or nil.
func (c *Context) Session() *session.Session {
	return c.session
}

// SetSession attaches a session to the request.
func (c *Context) SetSession(s *session.Session) {
	c.session = s
}

// Share makes a value available to every view rendered for this request.
func (c *Context) Share(key string, value any) {
	c.shared[key] = value
}

// Shared returns a copy of the values shared with views.
func (c *Context) Shared() map[string]any {
	return maps.Clone(c.shared)
}

// HTML writes an HTML body with the given status.
func (c *Context) HTML(status int, body string) error {
	c.w.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.w.WriteHeader(status)
	_, err := c.w.Write([]byte(body))
	return err
}

// Status writes a response with no body.
func (c *Context) Status(code int) error {
	c.w.WriteHeader(code)
	return nil
}

// Redirect answers with a 303 See Other to target.
func (c *Context) Redirect(target string) error {
	http.Redirect(c.w, c.r, target, http.StatusSeeOther)
	return nil
}

// RedirectBack redirects to the referring page when it belongs to the same
// host, to fallback otherwise.
func (c *Context) RedirectBack(fallback string) error {
	target := fallback
	if referer := c.Referer(); referer != "" && isSameHost(referer, c.r) {
		target = referer
	}
	return c.Redirect(target)
}

// isSameHost reports whether urlStr is relative or points at the request host.
func isSameHost(urlStr string, r *http.Request) bool {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	return parsed.Host == "" || parsed.Host == r.Host
}

// responseWriter records the status sent through it.
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (w *responseWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
