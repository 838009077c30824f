package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/foundergrid/perkmarket/internal/common"
	"github.com/foundergrid/perkmarket/internal/server/models"
	"github.com/foundergrid/perkmarket/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// userService and catalogService let handler tests substitute fakes for the
// concrete services.
type userService interface {
	Register(ctx context.Context, name, contact, secret string) (*models.User, error)
	Login(ctx context.Context, contact, secret string) (string, *services.Profile, error)
}

type catalogService interface {
	ListPerks(ctx context.Context) ([]models.Perk, error)
	GetPerk(ctx context.Context, id string) (*models.Perk, error)
	Claim(ctx context.Context, userID, perkID string) (string, error)
	ListClaims(ctx context.Context, userID string) ([]models.ClaimWithPerk, error)
}

type initiateRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	EmailAddress string `json:"email_address" binding:"required"`
	SecretCode   string `json:"secret_code" binding:"required"`
}

type identifyRequest struct {
	EmailAddress string `json:"email_address" binding:"required"`
	SecretCode   string `json:"secret_code" binding:"required"`
}

func (s *HTTPServer) initiate(c *gin.Context) {
	var req initiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		statusNote(c, http.StatusBadRequest, statusRejected, "incomplete dossier")
		return
	}

	_, err := s.users.Register(c.Request.Context(), req.FullName, req.EmailAddress, req.SecretCode)
	if err != nil {
		if errors.Is(err, common.ErrorContactTaken) {
			statusNote(c, http.StatusConflict, statusConflict, "identity already registered")
			return
		}
		s.logger.Error(c.Request.Context(), "registration failed", "error", err)
		systemMalfunction(c, http.StatusInternalServerError)
		return
	}

	statusNote(c, http.StatusCreated, statusCreated, "identity established")
}

func (s *HTTPServer) identify(c *gin.Context) {
	var req identifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		statusNote(c, http.StatusBadRequest, statusRejected, "incomplete dossier")
		return
	}

	token, profile, err := s.users.Login(c.Request.Context(), req.EmailAddress, req.SecretCode)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			statusNote(c, http.StatusNotFound, statusMissing, "identity not found")
		case errors.Is(err, common.ErrorUnauthorized):
			statusNote(c, http.StatusUnauthorized, statusDenied, "credentials invalid")
		default:
			s.logger.Error(c.Request.Context(), "login failed", "error", err)
			systemMalfunction(c, http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  statusGranted,
		"token":   token,
		"profile": profile,
	})
}

func (s *HTTPServer) listOpportunities(c *gin.Context) {
	result, err := s.catalog.ListPerks(c.Request.Context())
	if err != nil {
		s.logger.Error(c.Request.Context(), "perk listing failed", "error", err)
		systemMalfunction(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": statusOK, "payload": result})
}

func (s *HTTPServer) getOpportunity(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		statusNote(c, http.StatusNotFound, statusMissing, "asset not found")
		return
	}

	perk, err := s.catalog.GetPerk(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			statusNote(c, http.StatusNotFound, statusMissing, "asset not found")
			return
		}
		s.logger.Error(c.Request.Context(), "perk lookup failed", "error", err)
		systemMalfunction(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": statusOK, "payload": perk})
}

func (s *HTTPServer) claim(c *gin.Context) {
	claims := sessionClaims(c)
	if claims == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"signal": statusDenied, "reason": "identification required",
		})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		statusNote(c, http.StatusNotFound, statusMissing, "asset not found")
		return
	}

	details, err := s.catalog.Claim(c.Request.Context(), claims.UserID, id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			statusNote(c, http.StatusNotFound, statusMissing, "asset not found")
		case errors.Is(err, common.ErrorAlreadyClaimed):
			statusNote(c, http.StatusBadRequest, statusDuplicate, "asset already claimed")
		default:
			s.logger.Error(c.Request.Context(), "claim failed", "error", err,
				"user_id", claims.UserID, "perk_id", id)
			systemMalfunction(c, http.StatusInternalServerError)
		}
		return
	}

	s.logger.Info(c.Request.Context(), "perk claimed", "user_id", claims.UserID, "perk_id", id)
	c.JSON(http.StatusOK, gin.H{
		"status":  statusSuccess,
		"note":    "asset secured",
		"details": details,
	})
}

func (s *HTTPServer) accountStatus(c *gin.Context) {
	claims := sessionClaims(c)
	if claims == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"signal": statusDenied, "reason": "identification required",
		})
		return
	}

	history, err := s.catalog.ListClaims(c.Request.Context(), claims.UserID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "claim listing failed", "error", err, "user_id", claims.UserID)
		systemMalfunction(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": statusOK, "claims": history})
}
