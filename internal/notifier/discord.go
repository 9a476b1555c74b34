package notifier

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/enroute-travel/itinerary-api/internal/models"
	"github.com/enroute-travel/itinerary-api/internal/render"
)

type Notifier interface {
	NotifyItinerary(record models.Itinerary) error
}

// MessageSender is the part of a discordgo session the notifier needs.
type MessageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type DiscordNotifier struct {
	session   MessageSender
	channelID string
}

func NewDiscordNotifier(session MessageSender, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

func (n *DiscordNotifier) NotifyItinerary(record models.Itinerary) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	data := record.Data.Data()
	dates := data.Days.DateRange()

	message := fmt.Sprintf("🧳 **Itinerary Generated**\n**Booking:** %s\n**Client:** %s\n**Trip:** %s - %s\n**Dates:** %s\n**Total:** ₹%s\n**By:** %s",
		record.BookingCode,
		record.ClientName,
		data.Location,
		data.PackageType,
		dates,
		render.FormatINRDecimal(data.TotalAmount),
		record.Username,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
