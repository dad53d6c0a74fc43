// Package form drives the guided lead-collection conversation: step
// sequencing, OCR prefill and confirmation, per-field validation, progress
// summaries, the multi-select directions sub-flow, back navigation and final
// submission.
package form

import (
	"context"

	"github.com/izzat1998/exhibition-bot/core/telegram/state"
	"github.com/izzat1998/exhibition-bot/internal/api"
	"github.com/izzat1998/exhibition-bot/internal/lead"

	tele "gopkg.in/telebot.v4"
)

// Backend is the slice of the exhibition API the conversation needs.
type Backend interface {
	Login(ctx context.Context, telegramID int64) (bool, error)
	Register(ctx context.Context, telegramID, companyID int64, firstName, lastName string) (bool, error)
	Companies(ctx context.Context) ([]api.Company, error)
	Exhibitions(ctx context.Context) ([]api.Exhibition, error)
	ShipmentDirections(ctx context.Context) ([]lead.Direction, error)
	BusinessCardOCR(ctx context.Context, photo []byte) (lead.ExtractedData, error)
	CreateLead(ctx context.Context, payload api.LeadPayload, photo []byte) (api.SubmitResult, error)
}

// Files downloads platform file content by its file reference.
type Files interface {
	Download(ctx context.Context, fileID string) ([]byte, error)
}

// Recorder persists an audit record of a submission attempt. It is optional;
// a nil Recorder disables journaling.
type Recorder interface {
	Record(ctx context.Context, telegramID int64, payload api.LeadPayload, status int, detail string) error
}

// Flow owns the conversation state machine. One Flow serves all
// conversations; per-conversation data lives in the session manager.
type Flow struct {
	mgr     state.Manager
	backend Backend
	files   Files
	journal Recorder
}

// New wires a Flow from its collaborators. journal may be nil.
func New(mgr state.Manager, backend Backend, files Files, journal Recorder) *Flow {
	return &Flow{
		mgr:     mgr,
		backend: backend,
		files:   files,
		journal: journal,
	}
}

const draftKey = "lead_draft"

// Conversation states outside the lead form's fixed step order.
const (
	stateConfirm      state.State = "lead_confirmation"
	stateRegFirstName state.State = "reg_first_name"
	stateRegLastName  state.State = "reg_last_name"
)

func stateFor(step lead.Step) state.State {
	return state.State(step)
}

// draft returns the conversation's draft, creating one on first use.
func (f *Flow) draft(key state.Key) *lead.Draft {
	if v, ok := f.mgr.GetTemp(key, draftKey); ok {
		if d, ok := v.(*lead.Draft); ok {
			return d
		}
	}
	d := lead.NewDraft()
	f.mgr.SetTemp(key, draftKey, d)
	return d
}

// currentStep reports which form step the conversation is at, if any.
func (f *Flow) currentStep(key state.Key) (lead.Step, bool) {
	st := f.mgr.GetState(key)
	if st == state.StateIdle {
		return "", false
	}
	return lead.Step(st), true
}

func (f *Flow) setStep(key state.Key, step lead.Step) {
	f.mgr.SetState(key, stateFor(step))
}

// endConversation drops the draft and all conversation state.
func (f *Flow) endConversation(key state.Key) {
	f.mgr.Clear(key)
}

// resetDraft replaces the draft with a fresh one, keeping nothing.
func (f *Flow) resetDraft(key state.Key) *lead.Draft {
	d := lead.NewDraft()
	f.mgr.SetTemp(key, draftKey, d)
	return d
}

func keyOf(c tele.Context) state.Key {
	return state.KeyOf(c)
}
