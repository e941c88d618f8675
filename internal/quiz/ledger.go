package quiz

type pendingAnswer struct {
	correctOption int
	consumed      bool
}

// pendingLedger maps issued instance ids to their correct answer and
// consumption state. Entries are registered before the instance id is
// disclosed to any caller and are never removed; a consumed entry
// stays behind so a replayed submission fails loudly instead of being
// silently re-judged. Not safe for concurrent use on its own, the
// engine serializes all access.
type pendingLedger struct {
	entries map[string]*pendingAnswer
}

func newPendingLedger() *pendingLedger {
	return &pendingLedger{entries: make(map[string]*pendingAnswer)}
}

// register files the correct option for a freshly minted instance id.
func (l *pendingLedger) register(instanceID string, correctOption int) {
	l.entries[instanceID] = &pendingAnswer{correctOption: correctOption}
}

// judge compares the proposed option against the registered one,
// consumes the entry and returns the verdict together with the
// correct option. A second judgment of the same instance returns
// ErrAlreadyAnswered.
func (l *pendingLedger) judge(instanceID string, proposed int) (bool, int, error) {
	entry, ok := l.entries[instanceID]
	if !ok {
		return false, 0, ErrInstanceNotFound
	}
	if entry.consumed {
		return false, 0, ErrAlreadyAnswered
	}
	entry.consumed = true
	return proposed == entry.correctOption, entry.correctOption, nil
}

// pendingCount reports how many issued instances have not been judged
// yet.
func (l *pendingLedger) pendingCount() int {
	n := 0
	for _, e := range l.entries {
		if !e.consumed {
			n++
		}
	}
	return n
}
