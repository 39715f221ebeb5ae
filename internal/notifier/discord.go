package notifier

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/camp-buscape/registration-api/internal/models"
)

type Notifier interface {
	NotifyRegistration(registration models.Registration) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(botToken, channelID string) (*DiscordNotifier, error) {
	if botToken == "" {
		return nil, fmt.Errorf("discord bot token is empty")
	}
	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, err
	}
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}, nil
}

func (n *DiscordNotifier) NotifyRegistration(registration models.Registration) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	period := "-"
	if registration.Period != nil {
		period = *registration.Period
	}

	optionsStr := ""
	if len(registration.Options) > 0 {
		optionsStr = fmt.Sprintf("\n**Opções:** %s", strings.Join(registration.Options, ", "))
	}

	message := fmt.Sprintf("🏕️ **Nova Inscrição**\n**Campista:** %s\n**Temporada:** %s\n**Período:** %s\n**Valor:** R$ %.2f%s",
		registration.ChildName,
		registration.Season,
		period,
		registration.PaymentAmount,
		optionsStr,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
