package telegram

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"cryptogold-alerts/models/constants"
	"cryptogold-alerts/models/entities"
	"cryptogold-alerts/utils/dates"
	"cryptogold-alerts/utils/text"
)

const (
	summaryMaxRunes = 500
	messageMaxRunes = 4000
	headerSeparator = "──────────────────────────────"
)

// Characters outside this set trip Telegram's HTML parser on some titles.
var titleSanitizeRegex = regexp.MustCompile(`[^\w\s\-.,!?:;]`)

func categoryEmoji(category string) string {
	switch category {
	case constants.CategoryCrypto:
		return "🪙"
	case constants.CategoryGold:
		return "🥇"
	default:
		return "📰"
	}
}

// formatArticleMessage renders a single alert: emoji and bold title, the
// localized timestamp, a truncated summary, the source and a link.
func formatArticleMessage(article entities.Article, language string) string {
	title := text.Collapse(titleSanitizeRegex.ReplaceAllString(article.Title, ""))
	if title == "" {
		title = "News Update"
	}

	message := fmt.Sprintf("%s <b>%s</b>\n\n", categoryEmoji(article.Category), title)

	if !article.Published.IsZero() {
		message += fmt.Sprintf("🕐 %s\n", dates.FormatDateTime(article.Published, language))
	}

	if article.Summary != "" {
		summary := text.Truncate(article.Summary, summaryMaxRunes)
		message += fmt.Sprintf("📰 %s\n\n", html.EscapeString(summary))
	}

	message += fmt.Sprintf("📰 %s", html.EscapeString(article.Source))
	if article.Link != "" {
		message += fmt.Sprintf(" | <a href='%s'>%s</a>",
			article.Link, constants.GetTranslation("read_more", language))
	}

	return text.Truncate(message, messageMaxRunes)
}

// buildHeaderMessage summarizes a batch: alert header plus per-category
// counts.
func buildHeaderMessage(articles []entities.Article, language string) string {
	counts := map[string]int{}
	var order []string
	for _, article := range articles {
		if _, seen := counts[article.Category]; !seen {
			order = append(order, article.Category)
		}
		counts[article.Category]++
	}

	var parts []string
	for _, category := range order {
		parts = append(parts, fmt.Sprintf("%s: %d", constants.GetTranslation(category, language), counts[category]))
	}

	header := constants.GetTranslation("news_alert_header", language)
	return fmt.Sprintf("🚨 %s\n📊 %s\n%s", header, strings.Join(parts, " | "), headerSeparator)
}

func getGenericErrorMessage() string {
	msg := "😔 <b>Oops! Something Went Wrong</b>\n\n"
	msg += "It looks like I couldn't complete your request. Here's what you can try:\n"
	msg += "1️⃣ Double-check the command you typed.\n"
	msg += "2️⃣ Wait a moment and try again.\n\n"
	msg += "Thanks for your patience! 🤖✨"

	return msg
}

func getMessageFromMessageType(messageType MessageType) string {
	switch messageType {
	case MessageTypeHelp:
		msg := "🤖 <b>" + constants.ExternalName + "</b> – Help Guide 📢\n\n"
		msg += "This bot sends real-time cryptocurrency and gold market news alerts 📈.\n\n"
		msg += "📝 <b>Commands available:</b>\n"
		msg += "📊 /status – Show bot uptime and last news cycle.\n"
		msg += "📰 /latest – Resend the latest batch of alerts.\n"
		msg += "💡 /help – Show this help message.\n\n"
		msg += "🚀 Stay ahead of the market!\n"

		return msg

	default:
		msg := "👋 Hi! I'm <b>" + constants.ExternalName + "</b> 🤖\n\n"
		msg += "I watch cryptocurrency and gold market news feeds 🪙🥇 and push the relevant headlines here as they break.\n\n"
		msg += "No need to do anything! Alerts arrive automatically 📨. Just sit back and stay informed.\n\n"
		msg += "💬 <b>Need help?</b> Type /help for a list of commands."

		return msg
	}
}
