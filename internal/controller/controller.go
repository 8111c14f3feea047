// Package controller holds the page controllers: one per entity plus
// the browse-and-purchase flow. A controller owns the transient state a
// page works on — the fetched lists, the form being edited, field
// errors, a failure notice — and drives it through one cycle: load,
// edit, validate, submit, reload. Lists are never mutated locally; they
// are only considered current after a successful reload.
//
// Controllers are single-threaded by design, mirroring an event-driven
// UI: one user action, one operation sequence. They are not safe for
// concurrent use.
package controller

// Phase is where a CRUD controller stands in its cycle.
type Phase int

const (
	// PhaseIdle shows the list; the form is empty.
	PhaseIdle Phase = iota
	// PhaseEditing has a form open, fresh or seeded from a record.
	PhaseEditing
	// PhaseSubmitting has a write in flight.
	PhaseSubmitting
)

func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "editing"
	case PhaseSubmitting:
		return "submitting"
	default:
		return "idle"
	}
}

// ConfirmFunc is the delete confirmation gate. The UI supplies one
// backed by a dialog; tests supply canned answers.
type ConfirmFunc func(prompt string) bool

// AlwaysConfirm approves every prompt.
func AlwaysConfirm(string) bool { return true }

const noticeLoadFailed = "Erro ao carregar dados"
