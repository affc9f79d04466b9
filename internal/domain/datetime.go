package domain

import (
	"fmt"
	"time"
)

// DateTimeLayout — единственный формат дат заказа (yyyy-MM-dd HH:mm:ss).
const DateTimeLayout = "2006-01-02 15:04:05"

// DateLayout — укороченный формат, допустимый в путях HTTP API.
const DateLayout = "2006-01-02"

// ParseDateTime строго разбирает строку в формате DateTimeLayout.
func ParseDateTime(value string) (time.Time, error) {
	return ParseDateTimeField("value", value)
}

// ParseDateTimeField разбирает дату и добавляет имя поля в ошибку.
func ParseDateTimeField(field, value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateTimeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s=%q", ErrInvalidDateTime, field, value)
	}
	return t, nil
}

// FormatDateTime форматирует момент в DateTimeLayout.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(DateTimeLayout)
}

// SameDay сравнивает календарные дни двух моментов в локальной зоне.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(time.Local).Date()
	by, bm, bd := b.In(time.Local).Date()
	return ay == by && am == bm && ad == bd
}
