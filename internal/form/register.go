package form

import (
	tg "github.com/izzat1998/exhibition-bot/core/telegram"
	"github.com/izzat1998/exhibition-bot/core/telegram/commands"
	"github.com/izzat1998/exhibition-bot/internal/lead"

	tele "gopkg.in/telebot.v4"
)

// Register wires the conversation into the command registry, the callback
// registry and the session manager's handler table.
func (f *Flow) Register(reg *tg.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     f.StartCommand,
		Description: "Begin your session",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     f.HelpCommand,
		Description: "Show the help message",
	})
	reg.RegisterCommand("/lead", commands.Command{
		Handler:     f.StartLead,
		Description: "Start a new lead collection",
	})

	cbHandlers := map[string]tele.HandlerFunc{
		cbBack:        f.onBack,
		cbSuggest:     f.onSuggestion,
		cbCompanyType: f.onCompanyType(),
		cbTransport:   f.onTransport(),
		cbMeeting:     f.onMeetingPlace(),
		cbDirection:   f.onDirectionToggle,
		cbDirDone:     f.onDirectionsDone,
		cbDirRetry:    f.onDirectionsRetry,
		cbCardSkip:    f.onCardSkip,
		cbOCRUse:      f.onOCRUse,
		cbOCREdit:     f.onOCREdit,
		cbConfirm:     f.onConfirm,
		cbCancel:      f.onCancel,
		cbRestart:     f.onRestart,
		cbTryAgain:    f.onTryAgain,
		cbExhibition:  f.onExhibition,
		cbRegCompany:  f.onRegCompany,
		cbRegRetry:    f.onRegRetry,
	}
	for key, handler := range cbHandlers {
		_ = reg.RegisterCallback(key, handler)
	}

	reg.SetTextFallback(f.MenuButtons)

	f.mgr.RegisterHandler(stateFor(lead.StepBusinessCard), f.businessCardStep())
	f.mgr.RegisterHandler(stateFor(lead.StepOCRConfirm), f.ocrConfirmStep())
	f.mgr.RegisterHandler(stateFor(lead.StepExhibition), f.exhibitionStep())

	for step := range textFields {
		f.mgr.RegisterHandler(stateFor(step), f.textStep(step))
	}
	f.mgr.RegisterHandler(stateFor(lead.StepComments), f.commentsStep())

	for _, step := range []lead.Step{lead.StepCompanyType, lead.StepTransport, lead.StepMeetingPlace, lead.StepDirections} {
		f.mgr.RegisterHandler(stateFor(step), f.buttonsOnly(step))
	}

	f.mgr.RegisterHandler(stateConfirm, f.confirmStep())
	f.mgr.RegisterHandler(stateRegFirstName, f.regFirstNameStep())
	f.mgr.RegisterHandler(stateRegLastName, f.regLastNameStep())
}
