package services

import (
	"tempo/internal/logging"
	"tempo/internal/ports"
)

// NotificationService delivers completion notifications and sounds
type NotificationService struct {
	enabled     bool
	notifier    ports.Notifier
	soundPlayer ports.SoundPlayer
}

// NewNotificationService creates a new NotificationService.
// Desktop notifications are skipped when enabled is false or notifier is nil.
func NewNotificationService(
	notifier ports.Notifier,
	soundPlayer ports.SoundPlayer,
	enabled bool,
) *NotificationService {
	return &NotificationService{
		enabled:     enabled,
		notifier:    notifier,
		soundPlayer: soundPlayer,
	}
}

// Notify shows a desktop notification
func (s *NotificationService) Notify(title, body string) error {
	if !s.enabled || s.notifier == nil {
		logging.Logger.Debug("Notifications disabled, skipping", "title", title)
		return nil
	}

	if err := s.notifier.Notify(title, body); err != nil {
		logging.Logger.Warn("Failed to show notification", "error", err, "title", title)
		return err
	}

	logging.Logger.Debug("Notification shown", "title", title)
	return nil
}

// PlaySound plays the default notification sound
func (s *NotificationService) PlaySound() error {
	logging.Logger.Debug("Playing notification sound")
	if s.soundPlayer == nil {
		return nil
	}
	return s.soundPlayer.PlaySound()
}

// PlaySoundForEvent plays a sound for a specific event type
func (s *NotificationService) PlaySoundForEvent(eventType string) error {
	logging.Logger.Debug("Playing sound for event", "event", eventType)
	if s.soundPlayer == nil {
		return nil
	}
	if err := s.soundPlayer.PlaySoundForEvent(eventType); err != nil {
		logging.Logger.Warn("Failed to play sound", "error", err, "event", eventType)
		return err
	}
	return nil
}
