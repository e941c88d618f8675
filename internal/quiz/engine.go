package quiz

import (
	"math/rand"
	"sync"
	"time"

	"cardquest-service/internal/models"

	"github.com/google/uuid"
)

// Engine hands out unseen questions and judges submitted answers. One
// engine is shared by every request for the process lifetime; a single
// mutex covers both operations because both mutate the assignment and
// ledger maps. The critical sections are short and perform no I/O.
type Engine struct {
	mu      sync.Mutex
	tracker *assignmentTracker
	ledger  *pendingLedger
}

// NewEngine builds an engine over an immutable question bank.
func NewEngine(bank *Bank) *Engine {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Engine{
		tracker: newAssignmentTracker(bank, rng),
		ledger:  newPendingLedger(),
	}
}

// AssignQuestion issues a question the user has not seen in the
// category. The instance id is a fresh UUID, registered in the ledger
// before the instance is returned, so every returned instance is
// judge-able exactly once. The returned instance never carries the
// correct option.
func (e *Engine) AssignQuestion(userID, category string) (*models.QuestionInstance, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	question, err := e.tracker.pickUnseen(userID, category)
	if err != nil {
		return nil, err
	}

	instanceID := uuid.New().String()
	e.ledger.register(instanceID, question.CorrectOption)

	return &models.QuestionInstance{
		InstanceID: instanceID,
		Category:   question.Category,
		Prompt:     question.Prompt,
		Options:    question.Options,
	}, nil
}

// JudgeAnswer judges the proposed option against the instance's
// registered answer and consumes the instance. Unknown instance ids
// return ErrInstanceNotFound; a repeat submission returns
// ErrAlreadyAnswered.
func (e *Engine) JudgeAnswer(instanceID string, proposed int) (*models.AnswerResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	correct, correctOption, err := e.ledger.judge(instanceID, proposed)
	if err != nil {
		return nil, err
	}

	return &models.AnswerResult{
		Correct:       correct,
		CorrectOption: correctOption,
	}, nil
}

// PendingAnswers reports how many issued instances are still waiting
// for a judgment.
func (e *Engine) PendingAnswers() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.pendingCount()
}
