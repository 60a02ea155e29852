// Package notify posts account-lifecycle announcements to a staff chat.
package notify

import (
	"fmt"

	"github.com/ai-academy/academyhub/internal/models"
	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v4"
)

// Announcer sends registration and deletion notices. A nil Announcer is
// valid and does nothing, so callers don't need to special-case a missing
// bot configuration.
type Announcer struct {
	bot  telebot.API
	chat telebot.ChatID
}

func NewAnnouncer(bot telebot.API, chatID int64) *Announcer {
	return &Announcer{bot: bot, chat: telebot.ChatID(chatID)}
}

func (a *Announcer) ParticipantRegistered(participant *models.Participant) {
	if a == nil {
		return
	}
	a.send(fmt.Sprintf(
		"New participant: %s (@%s), role %s, team %s, stream %s",
		participant.Name,
		participant.Nickname,
		participant.Role,
		participant.Team,
		participant.Stream,
	))
}

func (a *Announcer) AccountDeleted(email string) {
	if a == nil {
		return
	}
	a.send(fmt.Sprintf("Account deleted: %s", email))
}

func (a *Announcer) send(text string) {
	if _, err := a.bot.Send(a.chat, text); err != nil {
		logrus.Errorf("failed to send staff notification: %v", err)
	}
}
