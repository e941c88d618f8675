package quiz

import (
	"math/rand"

	"cardquest-service/internal/models"
)

type assignmentKey struct {
	userID   string
	category string
}

// assignmentTracker records which bank questions have already been
// issued to each user per category. Seen sets only ever grow; there is
// no reset. The tracker is not safe for concurrent use on its own,
// the engine serializes all access.
type assignmentTracker struct {
	bank *Bank
	rand *rand.Rand
	seen map[assignmentKey]map[string]struct{}
}

func newAssignmentTracker(bank *Bank, rng *rand.Rand) *assignmentTracker {
	return &assignmentTracker{
		bank: bank,
		rand: rng,
		seen: make(map[assignmentKey]map[string]struct{}),
	}
}

// pickUnseen selects a uniformly random question the user has not been
// issued in this category and records it as seen before returning.
// Returns ErrUnknownCategory for an empty category and ErrExhausted
// once every question has been issued.
func (t *assignmentTracker) pickUnseen(userID, category string) (models.Question, error) {
	questions, err := t.bank.QuestionsByCategory(category)
	if err != nil {
		return models.Question{}, err
	}

	key := assignmentKey{userID: userID, category: category}
	issued := t.seen[key]

	unseen := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		if _, ok := issued[q.ID]; !ok {
			unseen = append(unseen, q)
		}
	}
	if len(unseen) == 0 {
		return models.Question{}, ErrExhausted
	}

	picked := unseen[t.rand.Intn(len(unseen))]

	if issued == nil {
		issued = make(map[string]struct{})
		t.seen[key] = issued
	}
	issued[picked.ID] = struct{}{}

	return picked, nil
}

// seenCount reports how many questions the user has been issued in the
// category.
func (t *assignmentTracker) seenCount(userID, category string) int {
	return len(t.seen[assignmentKey{userID: userID, category: category}])
}
