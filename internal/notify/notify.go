package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/pwalczyk/jobtrack/internal/i18n"
)

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

func Done(message string) error {
	return beeep.Alert("jobtrack", message, "")
}

// FormatFollowUpPrompt builds the follow-up reminder notification.
func FormatFollowUpPrompt(lang string, waiting int) (string, string) {
	title := i18n.T(lang, "remind.title")
	msg := fmt.Sprintf(i18n.T(lang, "remind.body"), waiting)
	return title, msg
}
