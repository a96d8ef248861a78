package profile

import (
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

// GetUser handles GET /users/:id
//
//	@Summary	Public profile of a user
//	@Tags		profile
//	@Produce	json
//	@Param		id	path		string	true	"User id (UUID)"
//	@Success	200	{object}	PublicProfileResponse
//	@Failure	400	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Router		/users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		h.handleError(c, ErrInvalidProfileID)
		return
	}

	p, err := h.service.GetPublicProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, PublicProfileResponse{Profile: p})
}

// GetProfile handles GET /profile
//
//	@Summary	Profile of the caller
//	@Tags		profile
//	@Produce	json
//	@Success	200	{object}	PublicProfileResponse
//	@Security	BearerAuth
//	@Router		/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	p, err := h.service.GetProfile(c.Request.Context(), userID.(string))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdateProfile handles PUT /profile
//
//	@Summary	Update the caller's profile and weekly availability
//	@Tags		profile
//	@Accept		json
//	@Produce	json
//	@Param		body	body		UpdateProfileRequest	true	"Fields to change"
//	@Success	200		{object}	PublicProfileResponse
//	@Failure	400		{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.service.UpdateProfile(c.Request.Context(), userID.(string), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// handleError maps domain errors to HTTP status codes
func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidProfileID), errors.Is(err, ErrInvalidAvailability):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
