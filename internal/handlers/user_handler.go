package handlers

import (
	"cardquest-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counter for registration attempts
var registrationAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "quest_registration_attempts_total",
		Help: "Total number of registration attempts",
	},
	[]string{"status"}, // status: started/exists/invalid/error
)

type UserHandler struct {
	Service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{Service: s}
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	user, err := h.Service.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, 200, user)
}

func (h *UserHandler) GetUserByCardHash(c *gin.Context) {
	user, err := h.Service.GetUserByCardHash(c.Request.Context(), c.Param("sha"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, 200, user)
}

// BeginRegistration starts the card registration flow and replies
// with the pairing token and the bot to complete it with.
func (h *UserHandler) BeginRegistration(c *gin.Context) {
	resp, err := h.Service.BeginRegistration(c.Request.Context(), c.Param("sha"))
	if err != nil {
		registrationAttempts.WithLabelValues(registrationStatus(err)).Inc()
		respondError(c, err)
		return
	}

	registrationAttempts.WithLabelValues("started").Inc()
	respondSuccess(c, 201, resp)
}

func registrationStatus(err error) string {
	switch err {
	case service.ErrUserExists:
		return "exists"
	case service.ErrInvalidCardHash:
		return "invalid"
	}
	return "error"
}
