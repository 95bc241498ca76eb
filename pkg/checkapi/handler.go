package checkapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/is"
	"github.com/dmitrymomot/is/pkg/card"
	"github.com/dmitrymomot/is/pkg/clientip"
	"github.com/dmitrymomot/is/pkg/httpserver"
	"github.com/dmitrymomot/is/pkg/logger"
	"github.com/dmitrymomot/is/pkg/ratelimiter"
)

// Handler serves predicate and card checks over HTTP.
type Handler struct {
	log      *slog.Logger
	clientIP *clientip.Resolver
	limiter  *ratelimiter.Limiter

	readiness []func(context.Context) error
}

// New constructs a Handler. A nil logger discards output.
func New(log *slog.Logger, opts ...Option) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	h := &Handler{
		log:      log.With(logger.Component("checkapi")),
		clientIP: clientip.New(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router returns a chi router with request ids, client addresses, panic
// recovery and access logging, and every endpoint mounted. When a rate
// limiter is configured it guards the /v1 routes only.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(h.clientIP.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(h.accessLog)

	r.Get("/healthz", httpserver.HealthCheckHandler(h.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(h.log, h.readiness...))
	r.Route("/v1", func(r chi.Router) {
		if h.limiter != nil {
			r.Use(ratelimiter.Middleware(h.limiter, clientKey, h.writeError))
		}
		h.Register(r)
	})
	return r
}

func clientKey(r *http.Request) string {
	return clientip.FromContext(r.Context())
}

// Register mounts the versioned endpoints on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/predicates", h.HandleListPredicates)
	r.Post("/predicates/{name}", h.HandleCheckPredicate)
	r.Post("/cards", h.HandleCheckCard)
}

// HandleListPredicates handles GET /v1/predicates.
func (h *Handler) HandleListPredicates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, PredicatesResponse{Predicates: is.Names()})
}

// HandleCheckPredicate handles POST /v1/predicates/{name}.
func (h *Handler) HandleCheckPredicate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	p, ok := is.Lookup(name)
	if !ok {
		h.writeError(w, r, unknownPredicate(name))
		return
	}

	req, err := decode[PredicateRequest](w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result := p(req.value)
	h.log.DebugContext(ctx, "predicate checked", logger.Predicate(name), logger.Result(result))
	writeJSON(w, http.StatusOK, PredicateResponse{Predicate: name, Result: result})
}

// HandleCheckCard handles POST /v1/cards.
func (h *Handler) HandleCheckCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := decode[CardRequest](w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := CardResponse{
		Valid:   card.Valid(req.Number),
		Issuers: card.Matches(req.Number),
	}
	if issuer, ok := card.Classify(req.Number); ok {
		resp.Issuer = issuer
	}

	h.log.DebugContext(ctx, "card checked",
		logger.Card(req.Number),
		logger.Issuer(resp.Issuer),
		logger.Result(resp.Valid),
	)
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		h.log.InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.ClientIP(clientip.FromContext(r.Context())),
			logger.Duration(time.Since(start)),
		)
	})
}

// RequestIDExtractor adds chi's request id to log records emitted with a
// request context.
func RequestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id := middleware.GetReqID(ctx)
	if id == "" {
		return slog.Attr{}, false
	}
	return logger.RequestID(id), true
}
