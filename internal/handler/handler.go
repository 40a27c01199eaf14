// Package handler is the HTTP edge: JSON in, JSON out, no business
// logic beyond routing requests to the session, engine, document,
// dispatch and payment packages.
package handler

import (
	"errors"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"quoting-engine/internal/catalog"
	"quoting-engine/internal/config"
	"quoting-engine/internal/dispatch"
	"quoting-engine/internal/document"
	"quoting-engine/internal/engine"
	"quoting-engine/internal/model"
	"quoting-engine/internal/payment"
	"quoting-engine/internal/selection"
	"quoting-engine/internal/session"
)

type Server struct {
	cfg      config.Config
	sessions *session.Manager
	composer *document.Composer
	payments *payment.Client
	logger   *zap.Logger
}

func New(cfg config.Config, sessions *session.Manager, composer *document.Composer, payments *payment.Client, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		cfg:      cfg,
		sessions: sessions,
		composer: composer,
		payments: payments,
		logger:   logger,
	}
}

// Handle routes every request. The surface is small enough that a
// manual switch beats pulling in a router.
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	switch {
	case path == "/healthz":
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case path == "/api/sessions" && ctx.IsPost():
		s.createSession(ctx)
	case strings.HasPrefix(path, "/api/sessions/"):
		s.routeSession(ctx, strings.TrimPrefix(path, "/api/sessions/"))
	case path == "/api/checkout" && ctx.IsPost():
		s.checkout(ctx)
	case strings.HasPrefix(path, "/api/catalog/"):
		s.catalog(ctx, strings.TrimPrefix(path, "/api/catalog/"))
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (s *Server) routeSession(ctx *fasthttp.RequestCtx, rest string) {
	id, sub, _ := strings.Cut(rest, "/")
	sess, ok := s.sessions.Get(id)
	if !ok {
		writeError(ctx, fasthttp.StatusNotFound, "Unknown session: "+id)
		return
	}

	switch {
	case sub == "" && ctx.IsGet():
		s.getSession(ctx, sess)
	case sub == "" && ctx.IsDelete():
		s.sessions.Delete(id)
		ctx.SetStatusCode(fasthttp.StatusNoContent)
	case sub == "actions" && ctx.IsPost():
		s.postActions(ctx, sess)
	case sub == "policies" && ctx.IsGet():
		s.listPolicies(ctx, sess)
	case sub == "document" && ctx.IsPost():
		s.generateDocument(ctx, sess)
	case sub == "document" && ctx.IsGet():
		s.downloadDocument(ctx, sess)
	case sub == "dispatch" && ctx.IsPost():
		s.dispatch(ctx, sess)
	case sub == "payment-confirmed" && ctx.IsPost():
		sess.SchedulePostPaymentReset(s.cfg.RedirectDelay.Std())
		ctx.SetStatusCode(fasthttp.StatusAccepted)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

type createSessionRequest struct {
	Line         model.ProductLine `json:"line,omitempty"`
	AdvisorName  string            `json:"advisor_name,omitempty"`
	AdvisorEmail string            `json:"advisor_email,omitempty"`
}

type sessionView struct {
	SessionID string             `json:"session_id"`
	State     *model.WizardState `json:"state"`
	Selection selection.View     `json:"selection"`
	StepLabel string             `json:"step_label"`
	Artifact  *document.Artifact `json:"artifact,omitempty"`
}

func (s *Server) createSession(ctx *fasthttp.RequestCtx) {
	var req createSessionRequest
	if body := ctx.PostBody(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
	}
	line := req.Line
	if line == "" {
		line = s.cfg.DefaultLine
	}
	if !line.Valid() {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid product line: "+string(line))
		return
	}
	name := req.AdvisorName
	if name == "" {
		name = s.cfg.AdvisorName
	}
	email := req.AdvisorEmail
	if email == "" {
		email = s.cfg.AdvisorEmail
	}

	sess := s.sessions.Create(line, name, email)
	s.writeSessionView(ctx, fasthttp.StatusCreated, sess)
}

func (s *Server) getSession(ctx *fasthttp.RequestCtx, sess *session.Session) {
	s.writeSessionView(ctx, fasthttp.StatusOK, sess)
}

func (s *Server) writeSessionView(ctx *fasthttp.RequestCtx, status int, sess *session.Session) {
	var view sessionView
	err := sess.Do(func(st *model.WizardState, artifact *document.Artifact) error {
		view = sessionView{
			SessionID: sess.ID,
			State:     st,
			Selection: selection.Build(st),
			StepLabel: model.StepLabel(st.Step),
		}
		if artifact.Live() {
			view.Artifact = artifact
		}
		b, err := json.Marshal(view)
		if err != nil {
			return err
		}
		writeRaw(ctx, status, b)
		return nil
	})
	if err != nil {
		writeError(ctx, fasthttp.StatusGone, err.Error())
	}
}

func (s *Server) postActions(ctx *fasthttp.RequestCtx, sess *session.Session) {
	var req model.ActionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Actions) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one action is required")
		return
	}

	err := sess.Do(func(st *model.WizardState, _ *document.Artifact) error {
		resp := engine.Process(sess.ID, st, req.Actions)
		b, err := json.Marshal(resp)
		if err != nil {
			return err
		}
		writeRaw(ctx, fasthttp.StatusOK, b)
		return nil
	})
	if err != nil {
		writeError(ctx, fasthttp.StatusGone, err.Error())
	}
}

func (s *Server) listPolicies(ctx *fasthttp.RequestCtx, sess *session.Session) {
	query := string(ctx.QueryArgs().Peek("q"))
	err := sess.Do(func(st *model.WizardState, _ *document.Artifact) error {
		b, err := json.Marshal(map[string]interface{}{
			"line":     st.Line,
			"policies": selection.Filter(st.Line, query),
		})
		if err != nil {
			return err
		}
		writeRaw(ctx, fasthttp.StatusOK, b)
		return nil
	})
	if err != nil {
		writeError(ctx, fasthttp.StatusGone, err.Error())
	}
}

func (s *Server) generateDocument(ctx *fasthttp.RequestCtx, sess *session.Session) {
	artifact, err := sess.ReplaceArtifact(func(st *model.WizardState) (*document.Artifact, error) {
		return s.composer.Generate(st, selection.Build(st))
	})
	if err != nil {
		s.logger.Error("document generation failed",
			zap.String("session_id", sess.ID), zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "Document generation failed: "+err.Error())
		return
	}
	s.logger.Info("document generated",
		zap.String("session_id", sess.ID),
		zap.String("artifact_id", artifact.ID),
		zap.Int("pages", artifact.Pages))
	writeJSON(ctx, fasthttp.StatusCreated, artifact)
}

func (s *Server) downloadDocument(ctx *fasthttp.RequestCtx, sess *session.Session) {
	artifact, data, ok := sess.ArtifactData()
	if !ok {
		writeError(ctx, fasthttp.StatusNotFound, "No generated document")
		return
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType("application/pdf")
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="propuesta-`+artifact.ID+`.pdf"`)
	ctx.SetBody(data)
}

func (s *Server) dispatch(ctx *fasthttp.RequestCtx, sess *session.Session) {
	var folio string
	err := sess.Do(func(st *model.WizardState, artifact *document.Artifact) error {
		if !artifact.Live() {
			return errNoArtifact
		}
		chosen, ok := selection.ResolveChosen(st.Line, st.ChosenID)
		if !ok {
			return dispatch.ErrNoPolicy
		}
		ref, err := dispatch.Dispatch(&chosen)
		if err != nil {
			return err
		}
		st.DispatchRef = ref
		folio = ref
		return nil
	})
	switch {
	case err == nil:
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"dispatch_ref": folio})
	case errors.Is(err, errNoArtifact):
		writeError(ctx, fasthttp.StatusConflict, "Generate the document before dispatching")
	case errors.Is(err, dispatch.ErrNoPolicy):
		writeError(ctx, fasthttp.StatusConflict, "No chosen policy to dispatch")
	default:
		writeError(ctx, fasthttp.StatusGone, err.Error())
	}
}

var errNoArtifact = errors.New("no generated document")

func (s *Server) checkout(ctx *fasthttp.RequestCtx) {
	var req payment.CheckoutRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := s.payments.CreateCheckout(ctx, req)
	switch {
	case errors.Is(err, payment.ErrInvalidAmount):
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid amount")
	case err != nil:
		s.logger.Error("checkout failed", zap.Error(err))
		writeError(ctx, fasthttp.StatusBadGateway, "Could not create checkout session")
	default:
		writeJSON(ctx, fasthttp.StatusOK, resp)
	}
}

func (s *Server) catalog(ctx *fasthttp.RequestCtx, lineParam string) {
	line := model.ProductLine(lineParam)
	if !line.Valid() {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid product line: "+lineParam)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, map[string]interface{}{
		"line":              line,
		"label":             line.Label(),
		"policies":          catalog.PoliciesFor(line),
		"criteria":          catalog.CriteriaFor(line),
		"default_checklist": catalog.DefaultChecklist(line),
	})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, err.Error())
		return
	}
	writeRaw(ctx, status, b)
}

func writeRaw(ctx *fasthttp.RequestCtx, status int, body []byte) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	b, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	writeRaw(ctx, status, b)
}
