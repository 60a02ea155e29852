package notify

import (
	"strings"
	"testing"

	"github.com/ai-academy/academyhub/internal/models"
	"gopkg.in/telebot.v4"
)

type fakeBot struct {
	telebot.API
	sent []string
}

func (f *fakeBot) Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error) {
	if text, ok := what.(string); ok {
		f.sent = append(f.sent, text)
	}
	return &telebot.Message{}, nil
}

func TestParticipantRegistered(t *testing.T) {
	bot := &fakeBot{}
	announcer := NewAnnouncer(bot, 42)

	announcer.ParticipantRegistered(&models.Participant{
		Name:     "Ada Lovelace",
		Nickname: "ada_l",
		Role:     models.RoleAISE,
		Team:     models.TeamAlpha,
		Stream:   models.StreamTech,
	})

	if len(bot.sent) != 1 {
		t.Fatalf("expected one message, got %d", len(bot.sent))
	}
	if !strings.Contains(bot.sent[0], "@ada_l") {
		t.Fatalf("unexpected message %q", bot.sent[0])
	}
}

func TestAccountDeleted(t *testing.T) {
	bot := &fakeBot{}
	announcer := NewAnnouncer(bot, 42)

	announcer.AccountDeleted("ada@example.com")
	if len(bot.sent) != 1 || !strings.Contains(bot.sent[0], "ada@example.com") {
		t.Fatalf("unexpected messages %v", bot.sent)
	}
}

func TestNilAnnouncerIsSafe(t *testing.T) {
	var announcer *Announcer
	announcer.ParticipantRegistered(&models.Participant{Name: "Ada"})
	announcer.AccountDeleted("ada@example.com")
}
