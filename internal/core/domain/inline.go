package domain

import "strings"

// User identifies the Telegram user who issued an inline query.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// FullName returns the user's first and last name joined, skipping
// whichever is empty. Used for logging only.
func (u User) FullName() string {
	parts := make([]string, 0, 2)
	for _, p := range []string{u.FirstName, u.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// InlineQuery is an inbound inline query event from the Telegram
// webhook. Offset is the pagination token Telegram echoes back from the
// previous answer; empty means the first page.
type InlineQuery struct {
	ID     string `json:"id"`
	From   User   `json:"from"`
	Query  string `json:"query"`
	Offset string `json:"offset"`
}

// InlineKeyboardButton is a single button attached to a result.
type InlineKeyboardButton struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// InlineKeyboardMarkup is the button grid attached to a result.
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

// InlinePhoto is one photo result in an inline answer
// (InlineQueryResultPhoto in the Bot API).
type InlinePhoto struct {
	Type        string                `json:"type"`
	ID          string                `json:"id"`
	PhotoURL    string                `json:"photo_url"`
	ThumbURL    string                `json:"thumb_url"`
	PhotoWidth  int                   `json:"photo_width"`
	PhotoHeight int                   `json:"photo_height"`
	ReplyMarkup *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// InlineAnswer is the outbound payload for answerInlineQuery. An empty
// NextOffset tells Telegram that pagination has ended.
type InlineAnswer struct {
	InlineQueryID string        `json:"inline_query_id"`
	CacheTime     int           `json:"cache_time"`
	Results       []InlinePhoto `json:"results"`
	NextOffset    string        `json:"next_offset,omitempty"`
}
