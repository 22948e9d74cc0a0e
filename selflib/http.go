package selflib

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type httpHandler struct {
	resolver *Resolver
}

func (h httpHandler) handleGetIP(w http.ResponseWriter, req *http.Request) {
	resolved := h.resolver.Resolve(req.Context())
	if !resolved.OK() {
		h.sendError(w, ErrAllProvidersFailed, "Cannot resolve public IP address", http.StatusServiceUnavailable)

		return
	}

	response := struct {
		Result ResolveResult `json:"result"`
	}{
		Result: resolved,
	}

	h.encodeJSON(w, response)
}

func (h httpHandler) handleGetHeaders(w http.ResponseWriter, req *http.Request) {
	response := struct {
		Result Headers `json:"result"`
	}{
		Result: h.resolver.GetHeadersWithIP(req.Context()),
	}

	h.encodeJSON(w, response)
}

func (h httpHandler) handleGetStats(w http.ResponseWriter, req *http.Request) {
	response := struct {
		Results []*UsageStats `json:"results"`
	}{
		Results: h.resolver.UsageStats(),
	}

	h.encodeJSON(w, response)
}

func (h httpHandler) handleNotFound(w http.ResponseWriter, req *http.Request) {
	h.sendError(w, fmt.Errorf("path %s", req.URL.Path), "Unknown path", http.StatusNotFound)
}

func (h httpHandler) handleMethodNotAllowed(w http.ResponseWriter, req *http.Request) {
	h.sendError(w, fmt.Errorf("method %s", req.Method), "This HTTP method is not allowed", http.StatusMethodNotAllowed)
}

func (h httpHandler) encodeJSON(w http.ResponseWriter, data interface{}) {
	encoder := json.NewEncoder(w)

	w.Header().Set(HeaderContentType, ContentTypeJSON)
	encoder.SetEscapeHTML(false)
	encoder.Encode(data) // nolint: errcheck
}

func (h httpHandler) sendError(w http.ResponseWriter, err error, message string, statusCode int) {
	e := &httpError{
		message:    message,
		statusCode: statusCode,
		err:        err,
	}

	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(e.StatusCode())

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.Encode(e) // nolint: errcheck
}

// NewHTTPHandler returns http.Handler which serves results of the
// given resolver.
//
//	GET /         - resolved IP address, 503 if it is unknown
//	GET /headers  - headers with X-Real-IP
//	GET /stats    - usage stats of providers
func NewHTTPHandler(resolver *Resolver) http.Handler {
	handler := httpHandler{
		resolver: resolver,
	}
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)

	router.NotFound(handler.handleNotFound)
	router.MethodNotAllowed(handler.handleMethodNotAllowed)

	router.Get("/", handler.handleGetIP)
	router.Get("/headers", handler.handleGetHeaders)
	router.Get("/stats", handler.handleGetStats)

	return router
}
