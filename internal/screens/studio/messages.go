package studio

import "github.com/abhisek/eduvision/internal/wizard"

// Every async result carries the studio token captured when the request
// was issued. Results whose token no longer matches are dropped.

// Suggestions also carry their own sequence number so that an old reply
// never releases the busy flag of a newer request.
type suggestionMsg struct {
	Token int
	Seq   int
	Text  string
}

type planReadyMsg struct {
	Token   int
	Outcome wizard.Outcome
}

type imageDoneMsg struct {
	Token int
	ID    string
	URL   string
	Err   error
	Redo  bool
}

// PDF and file saves are not token guarded: the busy flag and the notice
// must settle even after a reset.

type pdfExportedMsg struct {
	Path string
	Err  error
}

type imageSavedMsg struct {
	Path string
	Err  error
}
