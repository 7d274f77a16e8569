package handlers

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"rolsa.tech/web/internal/cms"
	"rolsa.tech/web/internal/layout"
	"rolsa.tech/web/internal/markup"
	"rolsa.tech/web/internal/middleware"
)

// Handlers renders content pages inside the page shell.
type Handlers struct {
	pages  *cms.Library
	logger *zap.Logger
}

// New wires the page handlers.
func New(pages *cms.Library, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{pages: pages, logger: logger}
}

// Page returns a handler rendering the page stored under slug.
func (h *Handlers) Page(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.pages.Page(slug)
		if errors.Is(err, cms.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		if err != nil {
			h.log(r).Error("load page failed", zap.String("slug", slug), zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		h.render(w, r, http.StatusOK, page.Slot())
	}
}

// NotFound renders the shell around a not-found notice.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, notFoundSlot())
}

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, slot markup.Node) {
	templ.Handler(layout.Shell(slot),
		templ.WithStatus(status),
		templ.WithErrorHandler(func(_ *http.Request, err error) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				h.log(r).Error("render page failed", zap.Error(err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}

func (h *Handlers) log(r *http.Request) *zap.Logger {
	if l := middleware.LoggerFromContext(r.Context()); l.Core().Enabled(zap.ErrorLevel) {
		return l
	}
	return h.logger
}

func notFoundSlot() markup.Node {
	return markup.El("main", []markup.Attr{markup.A("data-page", "not-found")},
		markup.El("h1", nil, markup.TextNode("Page not found")),
		markup.El("p", nil, markup.TextNode("The page you were looking for does not exist.")),
	)
}
