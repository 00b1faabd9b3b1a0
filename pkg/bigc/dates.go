package bigc

import (
	"fmt"
	"net/mail"
	"time"
)

// ParseRFC2822Date parses the RFC-2822 timestamps used by the v2 API, such as
// "Tue, 05 Mar 2019 21:40:11 +0000", and returns the instant in UTC.
func ParseRFC2822Date(value string) (time.Time, error) {
	parsed, err := mail.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing RFC-2822 date %q: %w", value, err)
	}

	return parsed.UTC(), nil
}
