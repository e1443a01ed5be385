package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/internal/render"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/playback"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/session"
	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/step"
)

// State is the playback snapshot returned by most endpoints.
type State struct {
	ID        string `json:"id"`
	Algorithm string `json:"algorithm,omitempty"`
	Start     string `json:"start,omitempty"`
	Length    int    `json:"length"`
	Cursor    int    `json:"cursor"`
	Playing   bool   `json:"playing"`
	// Moved is set by forward and backward; false means a boundary no-op.
	Moved *bool `json:"moved,omitempty"`
}

// DroppedEdge is one authored edge the build discarded.
type DroppedEdge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int64  `json:"weight"`
	Error  string `json:"error"`
}

// BuildResponse is returned by a successful build.
type BuildResponse struct {
	State
	Summary step.Summary  `json:"summary"`
	Result  string        `json:"result"`
	Dropped []DroppedEdge `json:"dropped"`
}

// StepResponse is one record plus what to highlight at that index.
type StepResponse struct {
	Index     int              `json:"index"`
	Record    step.Record      `json:"record"`
	Highlight render.Highlight `json:"highlight"`
}

func errorJSON(c fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func stateOf(id string, sess *session.Session) State {
	ctrl := sess.Controller()
	st := State{
		ID:      id,
		Length:  ctrl.Len(),
		Cursor:  ctrl.CurrentIndex(),
		Playing: ctrl.IsPlaying(),
		Start:   sess.Start(),
	}
	if l := ctrl.Log(); l != nil {
		st.Algorithm = l.Algorithm()
	}

	return st
}

type sessionHandler func(c fiber.Ctx, id string, sess *session.Session) error

// withSession resolves :id or answers 404.
func (s *Server) withSession(fn sessionHandler) fiber.Handler {
	return func(c fiber.Ctx) error {
		id := c.Params("id")
		sess, ok := s.lookup(id)
		if !ok {
			return errorJSON(c, fiber.StatusNotFound, "session not found")
		}
		return fn(c, id, sess)
	}
}

func (s *Server) createSession(c fiber.Ctx) error {
	id, sess := s.open()
	s.logger.Debug("session opened", "id", id)

	return c.Status(fiber.StatusCreated).JSON(stateOf(id, sess))
}

func (s *Server) getSession(c fiber.Ctx, id string, sess *session.Session) error {
	return c.JSON(stateOf(id, sess))
}

func (s *Server) deleteSession(c fiber.Ctx) error {
	if !s.close(c.Params("id")) {
		return errorJSON(c, fiber.StatusNotFound, "session not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) build(c fiber.Ctx, id string, sess *session.Session) error {
	var in session.Input
	if err := c.Bind().JSON(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid body")
	}
	log, err := sess.Build(s.base, in)
	var ve *session.ValidationError
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error(), "field": ve.Field})
	}
	if err != nil {
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := BuildResponse{
		State:   stateOf(id, sess),
		Summary: log.Summary(),
		Result:  log.Summary().String(),
		Dropped: []DroppedEdge{},
	}
	for _, r := range sess.Dropped() {
		resp.Dropped = append(resp.Dropped, DroppedEdge{
			From: r.Input.From, To: r.Input.To, Weight: r.Input.Weight, Error: r.Err.Error(),
		})
	}

	return c.JSON(resp)
}

func (s *Server) getStep(c fiber.Ctx, _ string, sess *session.Session) error {
	i, err := strconv.Atoi(c.Params("i"))
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "step index must be an integer")
	}
	log := sess.Controller().Log()
	rec, ok := log.At(i)
	if !ok {
		return errorJSON(c, fiber.StatusNotFound, "step out of range")
	}

	return c.JSON(StepResponse{Index: i, Record: rec, Highlight: render.Highlights(log, i)})
}

func (s *Server) forward(c fiber.Ctx, id string, sess *session.Session) error {
	return moved(c, id, sess, sess.Controller().StepForward())
}

func (s *Server) backward(c fiber.Ctx, id string, sess *session.Session) error {
	return moved(c, id, sess, sess.Controller().StepBackward())
}

func moved(c fiber.Ctx, id string, sess *session.Session, ok bool) error {
	st := stateOf(id, sess)
	st.Moved = &ok

	return c.JSON(st)
}

func (s *Server) reset(c fiber.Ctx, id string, sess *session.Session) error {
	sess.Controller().Reset()
	return c.JSON(stateOf(id, sess))
}

// play starts timer autoplay; ?interval=250ms overrides the server default
// for this and later runs of the session.
func (s *Server) play(c fiber.Ctx, id string, sess *session.Session) error {
	if v := c.Query("interval"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return errorJSON(c, fiber.StatusBadRequest, "interval must be a positive duration")
		}
		sess.Controller().SetInterval(d)
	}
	err := sess.Controller().Play(s.base)
	switch {
	case errors.Is(err, playback.ErrNoLog), errors.Is(err, playback.ErrAlreadyPlaying):
		return errorJSON(c, fiber.StatusConflict, err.Error())
	case err != nil:
		return errorJSON(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(stateOf(id, sess))
}

func (s *Server) pause(c fiber.Ctx, id string, sess *session.Session) error {
	sess.Controller().Pause()
	return c.JSON(stateOf(id, sess))
}
