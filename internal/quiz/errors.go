package quiz

import "errors"

// The four caller-recoverable conditions of the quiz engine. Handlers
// match these with errors.Is and translate them into envelope codes;
// nothing in this package is fatal to the process.
var (
	// ErrUnknownCategory means the bank holds no questions for the
	// requested category.
	ErrUnknownCategory = errors.New("unknown question category")

	// ErrExhausted means the user has already been issued every
	// question in the category.
	ErrExhausted = errors.New("category exhausted for user")

	// ErrInstanceNotFound means the instance id was never issued.
	ErrInstanceNotFound = errors.New("question instance not found")

	// ErrAlreadyAnswered means the instance has been judged before.
	ErrAlreadyAnswered = errors.New("question instance already answered")

	// ErrQuestionNotFound means a question id is absent from the bank.
	ErrQuestionNotFound = errors.New("question not found")
)
