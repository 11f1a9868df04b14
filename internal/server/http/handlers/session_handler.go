package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/tareffa/internal/domain/model"
	"github.com/polkiloo/tareffa/internal/server/http/dto"
	"github.com/polkiloo/tareffa/internal/server/http/middleware"
)

// SessionHandler processes sign-in, sign-up and sign-out.
type SessionHandler struct {
	facade SessionFacade
}

// NewSessionHandler creates SessionHandler instance.
func NewSessionHandler(facade SessionFacade) *SessionHandler {
	return &SessionHandler{facade: facade}
}

// Login handles POST /api/session/login.
func (h *SessionHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	identity, token, err := h.facade.SignIn(c.Request.Context(), req.Email, req.Password)
	h.respond(c, identity, token, err)
}

// Provider handles POST /api/session/provider.
func (h *SessionHandler) Provider(c *gin.Context) {
	identity, token, err := h.facade.SignInWithProvider(c.Request.Context())
	h.respond(c, identity, token, err)
}

// Register handles POST /api/session/register.
func (h *SessionHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	identity, token, err := h.facade.SignUp(c.Request.Context(), req.Name, req.Email, req.Password)
	h.respond(c, identity, token, err)
}

// Logout handles POST /api/session/logout.
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.facade.SignOut(c.Request.Context(), middleware.ExtractToken(c)); err != nil {
		abortWithError(c, err)
		return
	}
	middleware.ClearAuthCookie(c)
	c.Status(http.StatusNoContent)
}

// Current handles GET /api/session.
func (h *SessionHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, toIdentityResponse(CurrentIdentity(c)))
}

func (h *SessionHandler) respond(c *gin.Context, identity *model.Identity, token string, err error) {
	if err != nil {
		abortWithError(c, err)
		return
	}
	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.SessionResponse{Identity: toIdentityResponse(*identity), Token: token})
}
