package quiz

import (
	sess "github.com/abhisek/skillquest/internal/quiz"
)

// sessionLoadedMsg is sent when the gate check and question fetch finish.
// Session is nil when the gate denied the attempt or loading failed.
type sessionLoadedMsg struct {
	Session  *sess.Session
	Decision sess.GateDecision
	Err      error
	Seq      int
}

// scoreSubmittedMsg is sent when the one-shot score submission resolves.
type scoreSubmittedMsg struct {
	Err error
	Seq int
}
