package store

import (
	"fmt"
	"strings"
)

// Setting keys stored in the settings table.
const (
	SettingTimeFormat = "time_format"
	SettingMarkMissed = "mark_missed"
	SettingStartView  = "start_view"
)

// settingValues lists the accepted values of each known setting.
var settingValues = map[string][]string{
	SettingTimeFormat: {"24h", "12h"},
	SettingMarkMissed: {"true", "false"},
	SettingStartView:  {"tracker", "calendar"},
}

type Setting struct {
	Key   string
	Value string
}

// ValidateSetting checks that key is known and value is one it accepts.
func ValidateSetting(key, value string) error {
	allowed, ok := settingValues[key]
	if !ok {
		return fmt.Errorf("unknown setting %q", key)
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid value %q for %s: want one of %s", value, key, strings.Join(allowed, ", "))
}

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	if err := ValidateSetting(key, value); err != nil {
		return err
	}
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *Store) GetAllSettings() ([]Setting, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// Preferences is the typed view of the settings table.
type Preferences struct {
	TwelveHour bool
	MarkMissed bool
	StartView  string
}

// GetPreferences reads the settings, falling back to defaults for missing keys.
func (s *Store) GetPreferences() (Preferences, error) {
	p := Preferences{MarkMissed: true, StartView: "tracker"}
	settings, err := s.GetAllSettings()
	if err != nil {
		return p, err
	}
	for _, st := range settings {
		switch st.Key {
		case SettingTimeFormat:
			p.TwelveHour = st.Value == "12h"
		case SettingMarkMissed:
			p.MarkMissed = st.Value != "false"
		case SettingStartView:
			p.StartView = st.Value
		}
	}
	return p, nil
}
