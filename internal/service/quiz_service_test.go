package service

import (
	"testing"

	"cardquest-service/internal/models"
	"cardquest-service/internal/quiz"
)

func TestQuizServiceAssignAndJudge(t *testing.T) {
	bank := quiz.NewBank([]models.Question{
		{ID: "q1", Category: "geography", Prompt: "Capital of France?", Options: []string{"Paris", "Lyon"}, CorrectOption: 0},
	})
	s := NewQuizServiceFromBank(bank)

	instance, err := s.AssignQuestion("u1", "geography")
	if err != nil {
		t.Fatalf("Assignment failed: %v", err)
	}
	if s.PendingAnswers() != 1 {
		t.Errorf("Expected 1 pending answer, got %d", s.PendingAnswers())
	}

	result, err := s.JudgeAnswer(instance.InstanceID, 1)
	if err != nil {
		t.Fatalf("Judgment failed: %v", err)
	}
	if result.Correct {
		t.Error("Expected an incorrect verdict for option 1")
	}
	if result.CorrectOption != 0 {
		t.Errorf("Expected correct option 0, got %d", result.CorrectOption)
	}
	if s.PendingAnswers() != 0 {
		t.Errorf("Expected no pending answers after judgment, got %d", s.PendingAnswers())
	}
}

func TestQuizServiceErrorsPassThrough(t *testing.T) {
	s := NewQuizServiceFromBank(quiz.NewBank(nil))

	if _, err := s.AssignQuestion("u1", "geography"); err != quiz.ErrUnknownCategory {
		t.Errorf("Expected ErrUnknownCategory, got %v", err)
	}
	if _, err := s.JudgeAnswer("never-issued", 0); err != quiz.ErrInstanceNotFound {
		t.Errorf("Expected ErrInstanceNotFound, got %v", err)
	}
}
