package quiz

import "cardquest-service/internal/models"

// Bank is the read-only question bank, built once at startup and safe
// for unsynchronized concurrent reads afterwards.
type Bank struct {
	byCategory map[string][]models.Question
	byID       map[string]models.Question
}

// NewBank indexes the given questions by category and id. Question
// order within a category follows the input order.
func NewBank(questions []models.Question) *Bank {
	b := &Bank{
		byCategory: make(map[string][]models.Question),
		byID:       make(map[string]models.Question, len(questions)),
	}
	for _, q := range questions {
		b.byCategory[q.Category] = append(b.byCategory[q.Category], q)
		b.byID[q.ID] = q
	}
	return b
}

// QuestionsByCategory returns the category's questions in load order.
// The returned slice is shared and must not be modified.
func (b *Bank) QuestionsByCategory(category string) ([]models.Question, error) {
	questions, ok := b.byCategory[category]
	if !ok || len(questions) == 0 {
		return nil, ErrUnknownCategory
	}
	return questions, nil
}

// QuestionByID looks up a single question by its stable id.
func (b *Bank) QuestionByID(id string) (models.Question, error) {
	q, ok := b.byID[id]
	if !ok {
		return models.Question{}, ErrQuestionNotFound
	}
	return q, nil
}

// Categories lists every category with at least one question.
func (b *Bank) Categories() []string {
	categories := make([]string, 0, len(b.byCategory))
	for c := range b.byCategory {
		categories = append(categories, c)
	}
	return categories
}

// Size returns the total number of questions in the bank.
func (b *Bank) Size() int {
	return len(b.byID)
}
