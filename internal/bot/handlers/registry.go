package handlers

import (
	tgbot "github.com/go-telegram/bot"
)

// RegisteredHandler binds a handler and its middleware to an update pattern.
type RegisteredHandler struct {
	HandlerType tgbot.HandlerType
	Pattern     string
	Handler     tgbot.HandlerFunc
	Middleware  []tgbot.Middleware
	MatchType   tgbot.MatchType
}

// RegisterAllHandlers returns the handlers the bot serves, keyed by name.
// Every text message not claimed by a command entry reaches the dialogue
// engine through the catch-all "text" entry.
func RegisterAllHandlers(deps HandlerDeps) map[string]RegisteredHandler {
	handlers := make(map[string]RegisteredHandler)

	handlers["text"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "",
		Handler:     NewMessageHandler(deps),
		MatchType:   tgbot.MatchTypePrefix,
	}

	if deps.Config.Telegram.AdminUserID != 0 {
		handlers["/stats"] = RegisteredHandler{
			HandlerType: tgbot.HandlerTypeMessageText,
			Pattern:     "stats",
			Handler:     NewStatsHandler(deps),
			MatchType:   tgbot.MatchTypeCommandStartOnly,
			Middleware:  []tgbot.Middleware{AdminOnly(deps)},
		}
	}

	return handlers
}
