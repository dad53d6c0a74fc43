package form

import (
	"strconv"
	"strings"

	"github.com/izzat1998/exhibition-bot/core/logger"
	"github.com/izzat1998/exhibition-bot/core/telegram/callbacks"
	"github.com/izzat1998/exhibition-bot/core/telegram/format"
	"github.com/izzat1998/exhibition-bot/core/telegram/helpers"
	"github.com/izzat1998/exhibition-bot/core/telegram/keyboard"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

const (
	regCompanyKey   = "reg_company_id"
	regFirstNameKey = "reg_first_name"
)

// Reply-keyboard shortcuts accepted next to the slash commands.
var (
	startButtonTexts = []string{"🔄 Start", "Start"}
	helpButtonTexts  = []string{"❓ Help", "Help"}
	leadButtonTexts  = []string{"📝 New Lead", "Lead"}
)

func mainKeyboard() *tele.ReplyMarkup {
	return keyboard.ReplyButtons(
		[]string{"📝 New Lead"},
		[]string{"❓ Help", "🔄 Start"},
	)
}

// StartCommand greets registered agents and walks everyone else into
// company registration.
func (f *Flow) StartCommand(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	user := c.Sender()
	if user == nil {
		return nil
	}

	ok, err := f.backend.Login(ctx, user.ID)
	if err != nil {
		logger.Error(ctx, "form", "login.failed", slog.String("err", err.Error()))
		return helpers.SendText(c, "An error occurred. Please try again later.")
	}

	if ok {
		text := "👋 Welcome back, " + format.EscapeHTML(user.FirstName) + "!\n\n" +
			"📝 <b>How to use this bot:</b>\n" +
			"1️⃣ Type /lead to start collecting information about a potential lead\n" +
			"2️⃣ Send a photo of the business card when prompted\n" +
			"3️⃣ Follow the guided process to complete the lead form\n\n" +
			"Need help? Type /help to see all available commands."
		return helpers.SendHTML(c, text, mainKeyboard())
	}

	intro := "👋 Hello " + format.EscapeHTML(user.FirstName) + "!\n\n" +
		"Welcome to the Exhibition Lead Collection Bot.\n" +
		"Before you can start collecting leads, you need to register with your company.\n\n" +
		"<b>After registration, you'll be able to:</b>\n" +
		"• 📸 Send business card photos\n" +
		"• 📋 Fill out lead forms\n" +
		"• 📊 Track your exhibition leads"
	_ = helpers.SendHTML(c, intro, keyboard.RemoveKeyboard())
	return f.showCompanySelection(c)
}

// HelpCommand prints the command overview.
func (f *Flow) HelpCommand(c tele.Context) error {
	text := "🌟 <b>Exhibition Lead Collection Bot</b> - Help Center\n\n" +
		"🚀 <b>Getting Started</b>\n" +
		"• <code>/start</code> - Begin your session\n" +
		"• <code>/help</code> - Show this help message anytime\n\n" +
		"📊 <b>Collecting Leads</b>\n" +
		"• <code>/lead</code> - Start a new lead collection\n" +
		"  - Take a photo of a business card\n" +
		"  - Or manually enter details\n" +
		"  - Follow the simple form\n\n" +
		"✨ <b>Pro Tips</b>\n" +
		"• Use natural light when photographing business cards\n" +
		"• Ensure all text is clear and visible in photos\n" +
		"• You can edit any information after scanning\n\n" +
		"📞 <b>Need Help?</b>\n" +
		"Contact our support team:\n" +
		"📧 izzatbek.khamraev@interrail.ag"
	return helpers.SendHTML(c, text, mainKeyboard())
}

func (f *Flow) showCompanySelection(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	companies, err := f.backend.Companies(ctx)
	if err != nil || len(companies) == 0 {
		if err != nil {
			logger.Warn(ctx, "form", "companies.fetch_failed", slog.String("err", err.Error()))
		}
		return helpers.SendText(c, "Unable to fetch companies. Please try again later.")
	}

	rows := make([][]keyboard.InlineBtn, 0, len(companies))
	for _, company := range companies {
		rows = append(rows, []keyboard.InlineBtn{{
			Text:   company.Name,
			Unique: cbRegCompany,
			Data:   strconv.FormatInt(company.ID, 10),
		}})
	}
	return helpers.SendText(c, "Please select a company to register with:", &tele.SendOptions{
		ReplyMarkup: keyboard.InlineButtonsRows(rows...),
	})
}

// onRegCompany records the company choice. Names already present on the
// Telegram profile are taken as-is; missing ones are asked for.
func (f *Flow) onRegCompany(c tele.Context) error {
	companyID, err := callbacks.PayloadInt64(c)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown company.", ShowAlert: true})
	}
	_ = c.Respond()

	key := keyOf(c)
	f.mgr.SetTemp(key, regCompanyKey, companyID)

	user := c.Sender()
	if user.FirstName == "" {
		f.mgr.SetState(key, stateRegFirstName)
		return helpers.SendText(c, "Please enter your first name:")
	}
	f.mgr.SetTemp(key, regFirstNameKey, user.FirstName)
	if user.LastName == "" {
		f.mgr.SetState(key, stateRegLastName)
		return helpers.SendText(c, "Please enter your last name:")
	}
	return f.completeRegistration(c, companyID, user.FirstName, user.LastName)
}

// regFirstNameStep collects a first name missing from the profile.
func (f *Flow) regFirstNameStep() tele.HandlerFunc {
	return func(c tele.Context) error {
		name := strings.TrimSpace(c.Text())
		if name == "" {
			return helpers.SendText(c, "Please enter a valid first name:")
		}
		key := keyOf(c)
		f.mgr.SetTemp(key, regFirstNameKey, name)
		f.mgr.SetState(key, stateRegLastName)
		return helpers.SendText(c, "Please enter your last name:")
	}
}

// regLastNameStep collects the last name and completes the registration.
func (f *Flow) regLastNameStep() tele.HandlerFunc {
	return func(c tele.Context) error {
		lastName := strings.TrimSpace(c.Text())
		if lastName == "" {
			return helpers.SendText(c, "Please enter a valid last name:")
		}

		key := keyOf(c)
		companyID, _ := f.mgr.GetTempInt64(key, regCompanyKey)
		firstName := ""
		if v, ok := f.mgr.GetTemp(key, regFirstNameKey); ok {
			firstName, _ = v.(string)
		}
		f.mgr.Clear(key)
		return f.completeRegistration(c, companyID, firstName, lastName)
	}
}

func (f *Flow) completeRegistration(c tele.Context, companyID int64, firstName, lastName string) error {
	ctx := helpers.BuildContext(c)
	ok, err := f.backend.Register(ctx, c.Sender().ID, companyID, firstName, lastName)
	if err != nil || !ok {
		if err != nil {
			logger.Error(ctx, "form", "register.failed", slog.String("err", err.Error()))
		}
		markup := keyboard.InlineButtonsRows(
			[]keyboard.InlineBtn{{Text: "🔄 Try Again", Unique: cbRegRetry}},
		)
		return helpers.SendText(c, "❌ Registration failed. Please try again.", &tele.SendOptions{
			ReplyMarkup: markup,
		})
	}

	logger.Info(ctx, "form", "register.completed", slog.Int64("company_id", companyID))
	_ = helpers.SendText(c, "✅ Registration successful! Welcome to the system.\n\nYou can now use the /lead command to start the lead form.")
	return helpers.SendText(c, "Use the buttons below for quick access to commands:", &tele.SendOptions{
		ReplyMarkup: mainKeyboard(),
	})
}

// onRegRetry re-opens the company picker after a failed registration.
func (f *Flow) onRegRetry(c tele.Context) error {
	_ = c.Respond()
	return f.showCompanySelection(c)
}

// MenuButtons routes reply-keyboard shortcuts to their commands. It serves
// as the text fallback outside active conversations.
func (f *Flow) MenuButtons(c tele.Context) error {
	text := strings.TrimSpace(c.Text())
	switch {
	case matchesAny(text, startButtonTexts):
		return f.StartCommand(c)
	case matchesAny(text, helpButtonTexts):
		return f.HelpCommand(c)
	case matchesAny(text, leadButtonTexts):
		return f.StartLead(c)
	}
	return helpers.SendText(c, "I did not understand that. Type /help to see what I can do.")
}

func matchesAny(text string, patterns []string) bool {
	for _, p := range patterns {
		if text == p {
			return true
		}
	}
	return false
}
