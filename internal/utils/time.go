package util

import (
	"database/sql/driver"
	"fmt"
	"os"
	"strings"
	"time"
)

// LocalDateTime serializa datas sem offset, no fuso configurado em APP_TIMEZONE.
type LocalDateTime struct {
	time.Time
}

const layout = "2006-01-02T15:04:05"

var location *time.Location

func init() {
	tz := os.Getenv("APP_TIMEZONE")
	if tz == "" {
		tz = "America/Sao_Paulo"
	}
	var err error
	location, err = time.LoadLocation(tz)
	if err != nil {
		location = time.FixedZone("BRT", -3*60*60)
	}
}

func (ldt *LocalDateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.ParseInLocation(layout, s, location)
	if err != nil {
		return err
	}
	ldt.Time = t
	return nil
}

func (ldt LocalDateTime) MarshalJSON() ([]byte, error) {
	if ldt.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + ldt.In(location).Format(layout) + `"`), nil
}

func (ldt LocalDateTime) Value() (driver.Value, error) {
	if ldt.IsZero() {
		return nil, nil
	}
	return ldt.Time, nil
}

func (ldt *LocalDateTime) Scan(value interface{}) error {
	if value == nil {
		ldt.Time = time.Time{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		ldt.Time = v
		return nil
	case []byte:
		return ldt.scanString(string(v))
	case string:
		return ldt.scanString(v)
	default:
		return fmt.Errorf("cannot scan type %T into LocalDateTime", value)
	}
}

func (ldt *LocalDateTime) scanString(s string) error {
	parsed, err := time.ParseInLocation(layout, s, location)
	if err != nil {
		return err
	}
	ldt.Time = parsed
	return nil
}
