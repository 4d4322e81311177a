package internal

import (
	"fmt"
	"time"
)

// DiscordTimestamp renders an instant as a Discord timestamp token that every
// client displays in its own timezone.
// Styles: F=full, f=short, t=time, T=long time, d=date, D=long date, R=relative.
func DiscordTimestamp(date time.Time, style string) string {
	return fmt.Sprintf("<t:%d:%s>", date.Unix(), style)
}
