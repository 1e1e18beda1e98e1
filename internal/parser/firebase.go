// Package parser reads the output of the Firebase connectivity script.
package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// Reason classifies why the connectivity script failed
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonPermissionDenied Reason = "permission-denied"
	ReasonTimeout          Reason = "timeout"
	ReasonInvalidAPIKey    Reason = "invalid-api-key"
	ReasonOther            Reason = "other"
)

var documentsPattern = regexp.MustCompile(`Found\s+(\d+)\s+documents`)

// FirebaseOutput wraps the captured output of one script run
type FirebaseOutput struct {
	Stdout string
	Stderr string

	emptyMarker string
}

// NewFirebaseOutput creates a FirebaseOutput. emptyMarker is the stdout text
// the script prints for an empty components collection.
func NewFirebaseOutput(stdout, stderr, emptyMarker string) *FirebaseOutput {
	return &FirebaseOutput{Stdout: stdout, Stderr: stderr, emptyMarker: emptyMarker}
}

// Combined returns stderr, or stdout when stderr is empty
func (o *FirebaseOutput) Combined() string {
	if o.Stderr != "" {
		return o.Stderr
	}
	return o.Stdout
}

// Empty reports whether the script found an empty components collection
func (o *FirebaseOutput) Empty() bool {
	return o.emptyMarker != "" && strings.Contains(o.Stdout, o.emptyMarker)
}

// DocumentCount returns the document count the script printed, if any
func (o *FirebaseOutput) DocumentCount() (int, bool) {
	m := documentsPattern.FindStringSubmatch(o.Stdout)
	if len(m) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Reason classifies a failed run. Security rule denials win over timeouts,
// which win over key errors.
func (o *FirebaseOutput) Reason() Reason {
	out := o.Combined()
	switch {
	case out == "":
		return ReasonOther
	case strings.Contains(out, string(ReasonPermissionDenied)):
		return ReasonPermissionDenied
	case strings.Contains(out, string(ReasonTimeout)):
		return ReasonTimeout
	case strings.Contains(out, string(ReasonInvalidAPIKey)):
		return ReasonInvalidAPIKey
	}
	return ReasonOther
}

// Explain returns the human-readable explanation for a failure reason
func (o *FirebaseOutput) Explain() string {
	switch o.Reason() {
	case ReasonPermissionDenied:
		return "Firebase security rules blocking access - expected issue"
	case ReasonTimeout:
		return "Firebase connection timeout - network issue"
	case ReasonInvalidAPIKey:
		return "Firebase rejected the API key: " + strings.TrimSpace(o.Combined())
	}
	return "Firebase test failed: " + strings.TrimSpace(o.Combined())
}
