package constants

import "strings"

const (
	LanguageEnglish = "en"
	LanguageHindi   = "hi"
)

var translations = map[string]map[string]string{
	LanguageEnglish: {
		"crypto":             "Cryptocurrency",
		"gold":               "Gold Market",
		"category":           "Category",
		"source":             "Source",
		"read_more":          "Read More",
		"news_alert_header":  "Latest Market News Alert",
		"error_notification": "Bot Error Notification",
		"status_update":      "Bot Status Update",
		"bot_started":        ExternalName + " has started successfully! 🚀",
		"daily_status":       "Daily Status Report",
		"fetch_interval":     "Fetch Interval",
		"minutes":            "minutes",
		"max_articles":       "Max Articles per Fetch",
		"language":           "Language",
		"cleanup_completed":  "Weekly data cleanup completed successfully",
	},
	LanguageHindi: {
		"crypto":             "क्रिप्टोकरेंसी",
		"gold":               "सोना बाजार",
		"category":           "श्रेणी",
		"source":             "स्रोत",
		"read_more":          "और पढ़ें",
		"news_alert_header":  "नवीनतम बाजार समाचार अलर्ट",
		"error_notification": "बॉट त्रुटि सूचना",
		"status_update":      "बॉट स्थिति अपडेट",
		"bot_started":        ExternalName + " सफलतापूर्वक शुरू हो गया है! 🚀",
		"daily_status":       "दैनिक स्थिति रिपोर्ट",
		"fetch_interval":     "फेच अंतराल",
		"minutes":            "मिनट",
		"max_articles":       "प्रति फेच अधिकतम लेख",
		"language":           "भाषा",
		"cleanup_completed":  "साप्ताहिक डेटा सफाई सफलतापूर्वक पूर्ण",
	},
}

// GetTranslation resolves a message key for the given language, falling
// back to English and finally to a title-cased rendering of the key.
func GetTranslation(key string, language string) string {
	if messages, ok := translations[language]; ok {
		if message, found := messages[key]; found {
			return message
		}
	}

	if message, found := translations[LanguageEnglish][key]; found {
		return message
	}

	return titleCaseKey(key)
}

// IsSupportedLanguage reports whether alerts can be rendered in the given
// language.
func IsSupportedLanguage(language string) bool {
	_, ok := translations[language]
	return ok
}

func titleCaseKey(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
