package apify

import (
	"bytes"
	"encoding/json"
	"time"
)

// FlexTime parses timestamps that arrive either as ISO-8601 strings or as
// unix epoch numbers. Unparseable values decode to the zero time.
type FlexTime time.Time

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*t = FlexTime{}
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*t = FlexTime{}
			return nil
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
			if parsed, err := time.Parse(layout, s); err == nil {
				*t = FlexTime(parsed.UTC())
				return nil
			}
		}
		*t = FlexTime{}
		return nil
	}

	var epoch float64
	if err := json.Unmarshal(data, &epoch); err != nil {
		*t = FlexTime{}
		return nil
	}
	*t = FlexTime(time.Unix(int64(epoch), 0).UTC())
	return nil
}

// Ptr returns the parsed time, or nil when the value was absent or invalid.
func (t FlexTime) Ptr() *time.Time {
	if time.Time(t).IsZero() {
		return nil
	}
	v := time.Time(t)
	return &v
}

// FlexCount parses counters that arrive either as a number or as an array,
// in which case the array length is used.
type FlexCount int

func (c *FlexCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*c = 0
		return nil
	}

	if data[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*c = FlexCount(len(items))
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		*c = 0
		return nil
	}
	*c = FlexCount(int(n))
	return nil
}

// PostRecord is one dataset item returned by the post scraping actor. Raw
// keeps the untouched item for storage.
type PostRecord struct {
	ID             string   `json:"id"`
	URL            string   `json:"url"`
	PostURL        string   `json:"postUrl"`
	ShortCode      string   `json:"shortCode"`
	Caption        string   `json:"caption"`
	LikesCount     int      `json:"likesCount"`
	CommentsCount  int      `json:"commentsCount"`
	Type           string   `json:"type"`
	IsSponsored    bool     `json:"isSponsored"`
	VideoViewCount *int64   `json:"videoViewCount"`
	Timestamp      FlexTime `json:"timestamp"`

	Raw json.RawMessage `json:"-"`
}

func (p *PostRecord) UnmarshalJSON(data []byte) error {
	type alias PostRecord
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*p = PostRecord(a)
	p.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// CommentRecord is one dataset item returned by the comment scraping actor.
type CommentRecord struct {
	ID            string    `json:"id"`
	Text          string    `json:"text"`
	OwnerUsername string    `json:"ownerUsername"`
	LikesCount    int       `json:"likesCount"`
	Replies       FlexCount `json:"replies"`
	Timestamp     FlexTime  `json:"timestamp"`

	Raw json.RawMessage `json:"-"`
}

func (c *CommentRecord) UnmarshalJSON(data []byte) error {
	type alias CommentRecord
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = CommentRecord(a)
	c.Raw = append(json.RawMessage(nil), data...)
	return nil
}
