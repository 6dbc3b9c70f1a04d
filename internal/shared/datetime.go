package shared

import (
	"fmt"
	"strconv"
	"time"
)

// DateTimeLayout - format "yyyy-MM-dd HH:mm:ss" cho mọi field ngày giờ trong API
const DateTimeLayout = "2006-01-02 15:04:05"

// DateTime serialize/deserialize theo DateTimeLayout, luôn ở UTC
type DateTime struct {
	time.Time
}

// NewDateTime trả về nil khi t là zero value để field bị omit khỏi JSON
func NewDateTime(t time.Time) *DateTime {
	if t.IsZero() {
		return nil
	}
	return &DateTime{Time: t.UTC().Truncate(time.Second)}
}

func (d DateTime) String() string {
	return d.UTC().Format(DateTimeLayout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.String())), nil
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		d.Time = time.Time{}
		return nil
	}

	unquoted, err := strconv.Unquote(s)
	if err != nil {
		return fmt.Errorf("datetime must be a string in format %q", "yyyy-MM-dd HH:mm:ss")
	}

	t, err := time.ParseInLocation(DateTimeLayout, unquoted, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid datetime %q, expected format %q", unquoted, "yyyy-MM-dd HH:mm:ss")
	}

	d.Time = t
	return nil
}

// TimePtr trả về *time.Time cho repository filter (nil nếu d nil/zero)
func (d *DateTime) TimePtr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
