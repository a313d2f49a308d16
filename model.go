package mention

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// User formats a user as <@ID>. The authorized user from session state is
// the same struct and formats the same way. A nil user yields "".
func User(user *discordgo.User) string {
	if user == nil {
		return ""
	}
	return fmt.Sprintf("<@%s>", user.ID)
}

// Member formats the member's user as <@ID>. A nil member, or a member
// without a resolved user, yields "".
func Member(member *discordgo.Member) string {
	if member == nil || member.User == nil {
		return ""
	}
	return fmt.Sprintf("<@%s>", member.User.ID)
}

// Role formats a role as <@&ID>. A nil role yields "".
func Role(role *discordgo.Role) string {
	if role == nil {
		return ""
	}
	return fmt.Sprintf("<@&%s>", role.ID)
}

// Channel formats a channel as <#ID>. Text, voice, category, thread and DM
// channels all mention identically. A nil channel yields "".
func Channel(channel *discordgo.Channel) string {
	if channel == nil {
		return ""
	}
	return fmt.Sprintf("<#%s>", channel.ID)
}

// Emoji formats a custom emoji as <:name:ID>, or <a:name:ID> when animated.
// Unicode emoji carry no ID and pass through as the bare name. A nil emoji
// yields "".
func Emoji(emoji *discordgo.Emoji) string {
	if emoji == nil {
		return ""
	}
	if emoji.ID == "" {
		return emoji.Name
	}
	if emoji.Animated {
		return fmt.Sprintf("<a:%s:%s>", emoji.Name, emoji.ID)
	}
	return fmt.Sprintf("<:%s:%s>", emoji.Name, emoji.ID)
}
