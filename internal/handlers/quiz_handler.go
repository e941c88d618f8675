package handlers

import (
	"errors"
	"strconv"

	"cardquest-service/internal/quiz"
	"cardquest-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Counter for question assignments
	questionAssignments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quest_question_assignments_total",
			Help: "Total number of question assignment requests",
		},
		[]string{"status"}, // status: success/exhausted/unknown_category/error
	)

	// Counter for answer judgments
	answerJudgments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quest_answer_judgments_total",
			Help: "Total number of answer judgment requests",
		},
		[]string{"status"}, // status: correct/incorrect/not_found/replay/error
	)
)

type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

// GetQuestion assigns an unseen question in the category to the user
// and returns the sanitized instance.
func (h *QuizHandler) GetQuestion(c *gin.Context) {
	userID := c.Param("user")
	category := c.Param("category")
	if userID == "" || category == "" {
		respondBadRequest(c, "user id and category are required")
		return
	}

	instance, err := h.Service.AssignQuestion(userID, category)
	if err != nil {
		questionAssignments.WithLabelValues(assignmentStatus(err)).Inc()
		respondError(c, err)
		return
	}

	questionAssignments.WithLabelValues("success").Inc()
	respondSuccess(c, 200, instance)
}

// AnswerQuestion judges a proposed option against an issued instance.
func (h *QuizHandler) AnswerQuestion(c *gin.Context) {
	instanceID := c.Param("id")
	proposed, err := strconv.Atoi(c.Param("answer"))
	if err != nil || proposed < 0 || proposed > 255 {
		respondBadRequest(c, "answer must be a small non-negative option index")
		return
	}

	result, err := h.Service.JudgeAnswer(instanceID, proposed)
	if err != nil {
		answerJudgments.WithLabelValues(judgmentStatus(err, false)).Inc()
		respondError(c, err)
		return
	}

	answerJudgments.WithLabelValues(judgmentStatus(nil, result.Correct)).Inc()
	respondSuccess(c, 200, result)
}

func assignmentStatus(err error) string {
	switch {
	case errors.Is(err, quiz.ErrExhausted):
		return "exhausted"
	case errors.Is(err, quiz.ErrUnknownCategory):
		return "unknown_category"
	}
	return "error"
}

func judgmentStatus(err error, correct bool) string {
	switch {
	case err == nil && correct:
		return "correct"
	case err == nil:
		return "incorrect"
	case errors.Is(err, quiz.ErrInstanceNotFound):
		return "not_found"
	case errors.Is(err, quiz.ErrAlreadyAnswered):
		return "replay"
	}
	return "error"
}
