package matching

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// FindMatches handles GET /matches
//
//	@Summary		Ranked skill-exchange matches for the caller
//	@Tags			matching
//	@Produce		json
//	@Param			page				query		int		false	"Page number (1-based)"
//	@Param			limit				query		int		false	"Page size (1-100)"
//	@Param			sortBy				query		string	false	"compatibility | rating | recent"
//	@Param			includeMatchScore	query		bool	false	"Include score breakdown"
//	@Param			minCompatibility	query		number	false	"Minimum total score (0-1)"
//	@Param			minProficiency		query		int		false	"Minimum offered proficiency (1-5)"
//	@Param			maxProficiency		query		int		false	"Maximum offered proficiency (1-5)"
//	@Param			weekday				query		int		false	"Weekday 0-6, 0 is Sunday"
//	@Param			startTime			query		string	false	"Window start HH:MM"
//	@Param			endTime				query		string	false	"Window end HH:MM"
//	@Success		200					{object}	MatchingResult
//	@Failure		400					{object}	map[string]string
//	@Failure		401					{object}	map[string]string
//	@Security		BearerAuth
//	@Router			/matches [get]
func (h *Handler) FindMatches(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req FindMatchesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filters, err := FiltersFromRequest(req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	opts := Options{
		Page:              req.Page,
		Limit:             req.Limit,
		SortBy:            req.SortBy,
		IncludeMatchScore: req.IncludeMatchScore == nil || *req.IncludeMatchScore,
	}
	if opts.SortBy == "" {
		opts.SortBy = SortByCompatibility
	}

	result, err := h.service.FindMatches(c.Request.Context(), userID.(string), opts, filters)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if !opts.IncludeMatchScore {
		result = withoutScores(result)
	}

	c.JSON(http.StatusOK, result)
}

// GetMatch handles GET /matches/:id
//
//	@Summary	Score breakdown against a single candidate
//	@Tags		matching
//	@Produce	json
//	@Param		id	path		string	true	"Candidate user id"
//	@Success	200	{object}	UserMatch
//	@Failure	404	{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/matches/{id} [get]
func (h *Handler) GetMatch(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	candidateID := c.Param("id")
	if _, err := uuid.Parse(candidateID); err != nil {
		h.handleError(c, ErrCandidateNotFound)
		return
	}

	match, err := h.service.GetMatch(c.Request.Context(), userID.(string), candidateID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

// RecommendSkills handles GET /skills/recommendations
//
//	@Summary	Popular skills the caller could learn
//	@Tags		matching
//	@Produce	json
//	@Success	200	{object}	SkillRecommendationsResponse
//	@Security	BearerAuth
//	@Router		/skills/recommendations [get]
func (h *Handler) RecommendSkills(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	recs, err := h.service.RecommendSkills(c.Request.Context(), userID.(string))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SkillRecommendationsResponse{
		Recommendations: recs,
		Total:           len(recs),
	})
}

// withoutScores copies result with every score removed.
func withoutScores(result *MatchingResult) *MatchingResult {
	out := *result
	out.Matches = make([]UserMatch, len(result.Matches))
	for i, m := range result.Matches {
		m.Score = nil
		out.Matches[i] = m
	}
	return &out
}

// handleError maps domain errors to HTTP status codes
func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrCandidateNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidFilter):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "matching timed out"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
