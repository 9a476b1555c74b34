package notifier

import (
	"errors"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/enroute-travel/itinerary-api/internal/itinerary"
	"github.com/enroute-travel/itinerary-api/internal/models"
	"gorm.io/datatypes"
)

type fakeSender struct {
	channel string
	content string
	err     error
}

func (f *fakeSender) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.channel = channelID
	f.content = content
	return &discordgo.Message{}, f.err
}

func TestNotifyItinerary(t *testing.T) {
	st := itinerary.NewState(nil)
	st.ClientName = "Anita Rao"
	st.Location = "Kerala"
	st.PackageType = "Honeymoon"
	st.Days.Update(0, itinerary.DayDate, "2024-01-10")
	st.Pricing.SetTierField(itinerary.Adults, itinerary.FieldCount, "2")
	st.Pricing.SetTierField(itinerary.Adults, itinerary.FieldCostPerHead, "50000")

	record := models.Itinerary{
		BookingCode: "ENR2401101530ABCD",
		Username:    "Staff1",
		ClientName:  "Anita Rao",
		Data:        datatypes.NewJSONType(st.RecordSnapshot()),
	}

	t.Run("Sends", func(t *testing.T) {
		sender := &fakeSender{}
		if err := NewDiscordNotifier(sender, "chan-1").NotifyItinerary(record); err != nil {
			t.Fatalf("NotifyItinerary returned error: %v", err)
		}
		if sender.channel != "chan-1" {
			t.Errorf("unexpected channel %q", sender.channel)
		}
		for _, want := range []string{"ENR2401101530ABCD", "Anita Rao", "Kerala - Honeymoon", "Jan 10 - Jan 10, 2024", "₹1,00,000.00", "Staff1"} {
			if !strings.Contains(sender.content, want) {
				t.Errorf("message missing %q:\n%s", want, sender.content)
			}
		}
	})

	t.Run("SendFailure", func(t *testing.T) {
		sender := &fakeSender{err: errors.New("rate limited")}
		if err := NewDiscordNotifier(sender, "chan-1").NotifyItinerary(record); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("NotConfigured", func(t *testing.T) {
		if err := NewDiscordNotifier(nil, "chan-1").NotifyItinerary(record); err == nil {
			t.Error("expected error for nil session")
		}
		if err := NewDiscordNotifier(&fakeSender{}, "").NotifyItinerary(record); err == nil {
			t.Error("expected error for empty channel")
		}
	})
}
