package nlp

type Command string

const (
	CommandNone Command = "none"
	CommandRead Command = "read"
	CommandStop Command = "stop"
)

type IntentResult struct {
	Command     Command `json:"command"`
	Keyword     string  `json:"keyword,omitempty"`
	CleanedText string  `json:"cleaned_text"`
}

type INLPProcessor interface {
	ProcessCommand(transcript string) IntentResult
}

type commandMapping struct {
	Command  Command
	Keywords []string
}
