package quiz

import (
	"testing"

	"cardquest-service/internal/models"
)

func testQuestions() []models.Question {
	return []models.Question{
		{ID: "q1", Category: "geography", Prompt: "Capital of France?", Options: []string{"Paris", "Lyon", "Nice"}, CorrectOption: 0},
		{ID: "q2", Category: "geography", Prompt: "Longest river?", Options: []string{"Amazon", "Danube", "Nile"}, CorrectOption: 2},
		{ID: "q3", Category: "history", Prompt: "Year of the moon landing?", Options: []string{"1969", "1972"}, CorrectOption: 0},
	}
}

func TestBankQuestionsByCategory(t *testing.T) {
	bank := NewBank(testQuestions())

	questions, err := bank.QuestionsByCategory("geography")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(questions) != 2 {
		t.Errorf("Expected 2 geography questions, got %d", len(questions))
	}

	if _, err := bank.QuestionsByCategory("chemistry"); err != ErrUnknownCategory {
		t.Errorf("Expected ErrUnknownCategory, got %v", err)
	}
}

func TestBankQuestionByID(t *testing.T) {
	bank := NewBank(testQuestions())

	q, err := bank.QuestionByID("q3")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if q.Category != "history" {
		t.Errorf("Expected history question, got %q", q.Category)
	}

	if _, err := bank.QuestionByID("missing"); err != ErrQuestionNotFound {
		t.Errorf("Expected ErrQuestionNotFound, got %v", err)
	}
}

func TestBankCategoriesAndSize(t *testing.T) {
	bank := NewBank(testQuestions())

	if bank.Size() != 3 {
		t.Errorf("Expected size 3, got %d", bank.Size())
	}

	categories := bank.Categories()
	if len(categories) != 2 {
		t.Errorf("Expected 2 categories, got %d", len(categories))
	}
}

func TestEmptyBank(t *testing.T) {
	bank := NewBank(nil)

	if bank.Size() != 0 {
		t.Errorf("Expected empty bank, got size %d", bank.Size())
	}
	if _, err := bank.QuestionsByCategory("geography"); err != ErrUnknownCategory {
		t.Errorf("Expected ErrUnknownCategory, got %v", err)
	}
}
