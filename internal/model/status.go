package model

// Severity classifies a status bar message.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityAbort   Severity = "abort"
	SeverityInfo    Severity = "info"
	SeverityNone    Severity = ""
)

// ParseSeverity decodes the single-character message type reported by the
// status bar: S=Success, W=Warning, E=Error, A=Abort, I=Info. An empty code
// means no message is displayed.
func ParseSeverity(code string) Severity {
	switch code {
	case "S":
		return SeveritySuccess
	case "W":
		return SeverityWarning
	case "E":
		return SeverityError
	case "A":
		return SeverityAbort
	case "I":
		return SeverityInfo
	default:
		return SeverityNone
	}
}

// StatusMessage is the feedback the remote application reports after any
// navigation or execute action.
type StatusMessage struct {
	Text     string   `yaml:"text"     json:"text"`
	Severity Severity `yaml:"severity" json:"severity"`
}

// Failed reports whether the message terminates the current workflow.
// Only Error and Abort do; warnings and infos let processing continue.
func (m StatusMessage) Failed() bool {
	return m.Severity == SeverityError || m.Severity == SeverityAbort
}
