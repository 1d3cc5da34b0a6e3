// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/walkview/builder"
	"github.com/katalvlaran/walkview/core"
	"github.com/katalvlaran/walkview/session"
	"github.com/katalvlaran/walkview/traverse"
)

// Messages shown to the user verbatim.
const (
	msgBothNodesMustExist = "Both nodes must exist"
	msgNoOutput           = "No output yet"
	msgBadBody            = "invalid request body"
)

// edgeRequest accepts endpoint IDs as JSON numbers or strings. An omitted
// weight becomes core.DefaultWeight.
type edgeRequest struct {
	U      any `json:"u"`
	V      any `json:"v"`
	Weight any `json:"weight"`
}

type traversalRequest struct {
	Kind  string `json:"kind" binding:"required"`
	Start any    `json:"start"`
}

type traversalResponse struct {
	Kind  traverse.Kind `json:"kind"`
	Start string        `json:"start"`
	Order []string      `json:"order"`
	Log   string        `json:"log"`
	RunID string        `json:"run"`
}

type presetRequest struct {
	Preset string `json:"preset" binding:"required"`
	Seed   *int64 `json:"seed"`
}

type graphResponse struct {
	Nodes []core.Node `json:"nodes"`
	Edges []core.Edge `json:"edges"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "session": s.sess.ID()})
}

func (s *Server) handleGraph(c *gin.Context) {
	nodes, edges := s.sess.Snapshot()
	c.JSON(http.StatusOK, graphResponse{Nodes: nodes, Edges: edges})
}

func (s *Server) handleAddNode(c *gin.Context) {
	n, err := s.sess.AddNode(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

func (s *Server) handleAddEdge(c *gin.Context) {
	var req edgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBadBody})
		return
	}
	weight := core.DefaultWeight
	if req.Weight != nil {
		weight = traverse.CoerceStart(req.Weight)
	}
	e, err := s.sess.AddEdge(c.Request.Context(),
		traverse.CoerceStart(req.U),
		traverse.CoerceStart(req.V),
		weight,
	)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (s *Server) handlePreset(c *gin.Context) {
	var req presetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBadBody})
		return
	}
	ctor, err := builder.Parse(req.Preset)
	if err != nil {
		s.fail(c, err)
		return
	}
	var bopts []builder.BuilderOption
	if req.Seed != nil {
		bopts = append(bopts, builder.WithSeed(*req.Seed))
	}
	if err := s.sess.ApplyPreset(c.Request.Context(), bopts, ctor); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, s.sess.Stats())
}

func (s *Server) handleTraversal(c *gin.Context) {
	var req traversalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBadBody})
		return
	}
	kind, err := traverse.ParseKind(req.Kind)
	if err != nil {
		s.fail(c, err)
		return
	}
	tr, err := s.sess.RunTraversal(c.Request.Context(), kind, traverse.CoerceStart(req.Start))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, traversalResponse{
		Kind:  tr.Kind,
		Start: tr.Start,
		Order: tr.Order,
		Log:   tr.Log(),
		RunID: tr.Run.ID(),
	})
}

func (s *Server) handleLog(c *gin.Context) {
	line := s.sess.Log()
	if line == "" {
		line = msgNoOutput
	}
	c.JSON(http.StatusOK, gin.H{"log": line})
}

// fail maps domain errors onto HTTP status codes.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrNodeNotFound), errors.Is(err, core.ErrEmptyNodeID):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBothNodesMustExist})
	case errors.Is(err, traverse.ErrUnknownKind),
		errors.Is(err, builder.ErrUnknownPreset),
		errors.Is(err, builder.ErrTooFewVertices),
		errors.Is(err, builder.ErrInvalidProbability),
		errors.Is(err, builder.ErrNeedRandSource):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrNotOpen):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		s.logger.Error("request failed", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
