package mention

import (
	"fmt"
	"strconv"
)

// Mentionable is the capability of rendering a value as Discord mention
// syntax. Every ID type in this package implements it.
type Mentionable interface {
	// Mention returns the value in platform mention syntax.
	Mention() string
}

var (
	_ Mentionable = UserID(0)
	_ Mentionable = RoleID(0)
	_ Mentionable = ChannelID(0)
	_ Mentionable = EmojiID(0)
	_ Mentionable = MemberID{}
)

// UserID identifies a user account.
type UserID uint64

// Mention formats the user ID as <@ID>.
func (id UserID) Mention() string {
	return fmt.Sprintf("<@%d>", uint64(id))
}

func (id UserID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// RoleID identifies a permission role.
type RoleID uint64

// Mention formats the role ID as <@&ID>.
func (id RoleID) Mention() string {
	return fmt.Sprintf("<@&%d>", uint64(id))
}

func (id RoleID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ChannelID identifies a channel of any type.
type ChannelID uint64

// Mention formats the channel ID as <#ID>.
func (id ChannelID) Mention() string {
	return fmt.Sprintf("<#%d>", uint64(id))
}

func (id ChannelID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// EmojiID identifies a custom emoji.
type EmojiID uint64

// Mention formats the emoji ID as <:emoji:ID>. The bare ID carries no
// display name, so the literal name "emoji" stands in; clients resolve the
// tag by ID alone. Use Emoji to format a named (and possibly animated)
// emoji.
func (id EmojiID) Mention() string {
	return fmt.Sprintf("<:emoji:%d>", uint64(id))
}

func (id EmojiID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// GuildID identifies a guild. Guilds have no mention syntax of their own;
// the type exists to scope a MemberID.
type GuildID uint64

func (id GuildID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// MemberID identifies a user's presence within one guild.
type MemberID struct {
	GuildID GuildID
	UserID  UserID
}

// Mention formats the member's user as <@ID>. The guild half disambiguates
// which presence is meant but does not change the emitted pattern.
func (id MemberID) Mention() string {
	return id.UserID.Mention()
}
