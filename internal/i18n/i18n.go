// Package i18n holds the string tables for the three supported languages,
// trimmed to what the CLI actually prints.
package i18n

// T looks up a dotted key in the given language. Unknown keys fall back to
// the key itself; unknown languages fall back to English.
func T(lang, key string) string {
	table, ok := translations[lang]
	if !ok {
		table = translations["en"]
	}
	if s, ok := table[key]; ok {
		return s
	}
	if s, ok := translations["en"][key]; ok {
		return s
	}
	return key
}

// Translator binds T to one language.
func Translator(lang string) func(string) string {
	return func(key string) string { return T(lang, key) }
}

var translations = map[string]map[string]string{
	"en": {
		"list.undoApplicationStatus": "Are you sure you want to undo the application status? The application date will be removed.",
		"list.markAsApplied":         "Do you want to mark the application as sent? Today's date will be set.",
		"list.markAsRejected":        "Do you want to mark the application as rejected? Provide a reason and today's date will be set. If no reason, enter '.'",
		"list.undoRejectionStatus":   "Are you sure you want to undo the rejection status? The rejection date will be removed.",
		"list.restoreFromArchive":    "Do you want to restore this application from the archive?",
		"list.moveToArchive":         "Do you want to move this application to the archive?",
		"list.confirmDelete":         "Are you sure you want to permanently delete this application? This action cannot be undone.",

		"applications.title":    "Job Applications List",
		"applications.archived": "Archived Applications",
		"applications.created":  "Created",
		"applications.applied":  "Applied",
		"applications.rejected": "Rejected",

		"calendar.created":  "Created",
		"calendar.pending":  "Pending",
		"calendar.applied":  "Applied",
		"calendar.rejected": "Rejected",
		"calendar.week":     "Week",
		"calendar.weekdays": "Mon Tue Wed Thu Fri Sat Sun",

		"import.summary": "Imported %d applications, skipped %d applications.",
		"remind.title":   "Follow-up reminder",
		"remind.body":    "You have %d applications still waiting for a reply. Time to follow up?",
	},
	"de": {
		"list.undoApplicationStatus": "Möchten Sie den Bewerbungsstatus wirklich rückgängig machen? Das Bewerbungsdatum wird entfernt.",
		"list.markAsApplied":         "Möchten Sie die Bewerbung als gesendet markieren? Das heutige Datum wird festgelegt.",
		"list.markAsRejected":        "Möchten Sie die Bewerbung als abgelehnt markieren? Geben Sie einen Grund an und das heutige Datum wird festgelegt. Wenn kein Grund, geben Sie '.' ein",
		"list.undoRejectionStatus":   "Möchten Sie den Ablehnungsstatus wirklich rückgängig machen? Das Ablehnungsdatum wird entfernt.",
		"list.restoreFromArchive":    "Möchten Sie diese Bewerbung aus dem Archiv wiederherstellen?",
		"list.moveToArchive":         "Möchten Sie diese Bewerbung ins Archiv verschieben?",
		"list.confirmDelete":         "Möchten Sie diese Bewerbung wirklich dauerhaft löschen? Diese Aktion kann nicht rückgängig gemacht werden.",

		"applications.title":    "Bewerbungsliste",
		"applications.archived": "Archivierte Bewerbungen",
		"applications.created":  "Erstellt",
		"applications.applied":  "Beworben",
		"applications.rejected": "Abgelehnt",

		"calendar.created":  "Erstellt",
		"calendar.pending":  "Ausstehend",
		"calendar.applied":  "Beworben",
		"calendar.rejected": "Abgelehnt",
		"calendar.week":     "Woche",
		"calendar.weekdays": "Mo Di Mi Do Fr Sa So",

		"import.summary": "%d Bewerbungen importiert, %d Bewerbungen übersprungen.",
		"remind.title":   "Nachfass-Erinnerung",
		"remind.body":    "%d Bewerbungen warten noch auf eine Antwort. Zeit nachzuhaken?",
	},
	"pl": {
		"list.undoApplicationStatus": "Czy na pewno chcesz cofnąć status aplikacji? Data aplikacji zostanie usunięta.",
		"list.markAsApplied":         "Czy chcesz oznaczyć aplikację jako wysłaną? Zostanie ustawiona dzisiejsza data.",
		"list.markAsRejected":        "Czy chcesz oznaczyć aplikację jako odrzuconą? Podaj powód i zostanie ustawiona dzisiejsza data. Bez powodu to wpisz '.'",
		"list.undoRejectionStatus":   "Czy na pewno chcesz cofnąć status odrzucenia? Data odrzucenia zostanie usunięta.",
		"list.restoreFromArchive":    "Czy chcesz przywrócić tę aplikację z archiwum?",
		"list.moveToArchive":         "Czy chcesz przenieść tę aplikację do archiwum?",
		"list.confirmDelete":         "Czy na pewno chcesz trwale usunąć tę aplikację? Tej operacji nie można cofnąć.",

		"applications.title":    "Lista Aplikacji o Pracę",
		"applications.archived": "Zarchiwizowane Aplikacje",
		"applications.created":  "Utworzono",
		"applications.applied":  "Aplikowano",
		"applications.rejected": "Odrzucono",

		"calendar.created":  "Utworzone",
		"calendar.pending":  "Niewysłane",
		"calendar.applied":  "Aplikowane",
		"calendar.rejected": "Odrzucone",
		"calendar.week":     "Tydzień",
		"calendar.weekdays": "Pon Wt Śr Czw Pt Sob Niedz",

		"import.summary": "Zaimportowano %d aplikacji, pominięto %d aplikacji.",
		"remind.title":   "Przypomnienie o follow-upie",
		"remind.body":    "Masz %d aplikacji wciąż czekających na odpowiedź. Czas się przypomnieć?",
	},
}
