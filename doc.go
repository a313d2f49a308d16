// Package mention renders Discord mention syntax for typed identifiers and
// for the discordgo model types.
//
// Every identifier kind has its own sigil inside the <...> delimiters: users
// are <@ID>, roles are <@&ID>, channels are <#ID> and custom emoji are
// <:name:ID>. The Discord client turns these byte patterns into clickable
// references, so the delimiters must be reproduced exactly; this package is
// the one place those patterns are spelled out.
//
// Formatting is pure string construction. It never checks that the referenced
// entity exists, performs no I/O and cannot fail, so any value is safe to
// format from any goroutine.
//
// Typed IDs carry the numeric snowflake directly:
//
//	msg := fmt.Sprintf("Hey there, %s!", mention.UserID(123).Mention())
//
// The helpers in model.go accept the structs a discordgo session hands out:
//
//	msg := fmt.Sprintf("%s created %s", mention.User(m.Author), mention.Channel(ch))
package mention
