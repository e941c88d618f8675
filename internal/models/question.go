package models

// Question is a bank entry as stored in Mongo. The correct option
// index never leaves the server.
type Question struct {
	ID            string   `bson:"_id,omitempty" json:"id"`
	Category      string   `bson:"category" json:"category"`
	Prompt        string   `bson:"prompt" json:"prompt"`
	Options       []string `bson:"options" json:"options"`
	CorrectOption int      `bson:"correct_option" json:"-"`
}

// QuestionInstance is the sanitized projection handed to a caller for
// one issuance. InstanceID is minted fresh per issuance and is the
// only handle the answer endpoint accepts.
type QuestionInstance struct {
	InstanceID string   `json:"instance_id"`
	Category   string   `json:"category"`
	Prompt     string   `json:"prompt"`
	Options    []string `json:"options"`
}

// AnswerResult is the verdict for one judged instance. CorrectOption
// is disclosed whatever the outcome so the client can show the right
// answer.
type AnswerResult struct {
	Correct       bool `json:"correct"`
	CorrectOption int  `json:"correct_option"`
}
