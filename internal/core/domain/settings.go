package domain

type Settings struct {
	NotificationsEnabled bool `json:"notifications_enabled"`
	SoundEnabled         bool `json:"sound_enabled"`
	HapticsEnabled       bool `json:"haptics_enabled"`
}

func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled: true,
		SoundEnabled:         true,
		HapticsEnabled:       true,
	}
}
