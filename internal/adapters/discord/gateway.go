// Package discord connects the dispatcher to the Discord gateway.
package discord

import (
	"context"
	"fmt"

	"github.com/bnema/dmbot/internal/domain"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// MessageHandler produces at most one reply for an inbound message. ok=false
// means no reply is sent.
type MessageHandler func(ctx context.Context, userID domain.UserID, content string) (reply string, ok bool)

type Gateway struct {
	session *discordgo.Session
	handle  MessageHandler
	log     *zap.Logger
}

func NewGateway(token string, handle MessageHandler, log *zap.Logger) (*Gateway, error) {
	if token == "" {
		return nil, fmt.Errorf("discord token is empty")
	}
	if handle == nil {
		return nil, fmt.Errorf("message handler is nil")
	}
	if log == nil {
		log = zap.NewNop()
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	// Reading command text requires the privileged message-content intent.
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	gateway := &Gateway{
		session: session,
		handle:  handle,
		log:     log,
	}
	session.AddHandler(gateway.onReady)
	session.AddHandler(gateway.onMessageCreate)

	return gateway, nil
}

// Open connects to the gateway and starts receiving events. discordgo runs
// each event handler on its own goroutine; the services behind the handler
// serialize their own state.
func (g *Gateway) Open() error {
	if err := g.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}

	return nil
}

func (g *Gateway) Close() error {
	return g.session.Close()
}

func (g *Gateway) onReady(_ *discordgo.Session, event *discordgo.Ready) {
	g.log.Info("logged in", zap.String("user", event.User.Username))
}

func (g *Gateway) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	reply, ok := g.handle(context.Background(), domain.UserID(m.Author.ID), m.Content)
	if !ok {
		return
	}

	if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
		g.log.Error("send reply",
			zap.String("channel_id", m.ChannelID),
			zap.Error(err))
	}
}
