package types

import (
	"fmt"
	"time"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

// TimeString строковое представление времени в формате "HH:MM"
// Все арифметические операции выполняются в минутах от полуночи
type TimeString string

// NewTimeString создает TimeString из time.Time (часы и минуты, секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromMinutes создает TimeString из количества минут от полуночи
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > MinutesPerDay {
		return "", fmt.Errorf("minutes out of range [0, %d]: %d", MinutesPerDay, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// NewTimeStringFromString парсит строку в форматах "HH:MM" или "HH:MM:SS"
// Секунды допускаются на входе (legacy-записи), но отбрасываются.
// Любые лишние символы - ошибка, частично распознанный ввод не принимается
func NewTimeStringFromString(s string) (TimeString, error) {
	switch len(s) {
	case 5: // HH:MM
	case 8: // HH:MM:SS
		seconds, ok := twoDigits(s[6:8])
		if s[5] != ':' || !ok || seconds > 59 {
			return "", fmt.Errorf("invalid time format %q: expected HH:MM:SS", s)
		}
	default:
		return "", fmt.Errorf("invalid time format %q: expected HH:MM or HH:MM:SS", s)
	}

	hours, minutes, err := parseHHMM(s[:5])
	if err != nil {
		return "", err
	}

	return TimeString(fmt.Sprintf("%02d:%02d", hours, minutes)), nil
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() (int, error) {
	s := string(t)
	if len(s) != 5 {
		return 0, fmt.Errorf("invalid time string %q: expected HH:MM", s)
	}
	hours, minutes, err := parseHHMM(s)
	if err != nil {
		return 0, err
	}
	return hours*60 + minutes, nil
}

// parseHHMM парсит ровно пять символов "HH:MM" с проверкой диапазона
func parseHHMM(s string) (int, int, error) {
	hours, okH := twoDigits(s[:2])
	minutes, okM := twoDigits(s[3:5])
	if s[2] != ':' || !okH || !okM {
		return 0, 0, fmt.Errorf("invalid time format %q: expected HH:MM", s)
	}
	if hours > 24 || minutes > 59 || (hours == 24 && minutes != 0) {
		return 0, 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return hours, minutes, nil
}

// twoDigits парсит ровно два десятичных разряда
func twoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

// AddMinutes возвращает новое время, сдвинутое на delta минут вперед
// Результат не может выходить за пределы суток
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(current + delta)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	a, err1 := t.Minutes()
	b, err2 := other.Minutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, err1 := t.Minutes()
	b, err2 := other.Minutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return a > b
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}
