package service

import (
	"context"
	"fmt"
	"log"

	"cardquest-service/internal/models"
	"cardquest-service/internal/quiz"
	"cardquest-service/internal/repository"
)

// QuizService owns the quiz engine. The bank is loaded from the
// question collection once at construction and never refreshed;
// restarting the service picks up new questions.
type QuizService struct {
	engine *quiz.Engine
}

func NewQuizService(ctx context.Context, questionRepo *repository.QuestionRepository) (*QuizService, error) {
	questions, err := questionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load question bank: %w", err)
	}

	bank := quiz.NewBank(questions)
	log.Printf("Question bank loaded: %d questions in %d categories", bank.Size(), len(bank.Categories()))

	return &QuizService{engine: quiz.NewEngine(bank)}, nil
}

// NewQuizServiceFromBank builds a service over an already-built bank.
func NewQuizServiceFromBank(bank *quiz.Bank) *QuizService {
	return &QuizService{engine: quiz.NewEngine(bank)}
}

func (s *QuizService) AssignQuestion(userID, category string) (*models.QuestionInstance, error) {
	return s.engine.AssignQuestion(userID, category)
}

func (s *QuizService) JudgeAnswer(instanceID string, proposed int) (*models.AnswerResult, error) {
	return s.engine.JudgeAnswer(instanceID, proposed)
}

func (s *QuizService) PendingAnswers() int {
	return s.engine.PendingAnswers()
}
