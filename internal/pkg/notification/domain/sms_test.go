package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSMS(t *testing.T) {
	sms, err := NewSMS("  Rappel  ", "  Votre trajet part à 8h  ", []string{"+221770000001"})
	require.NoError(t, err)
	assert.Equal(t, "Rappel", sms.Title)
	assert.Equal(t, "Votre trajet part à 8h", sms.Content)
	assert.False(t, sms.Date.IsZero())
}

func TestNewSMSDefaultsTitle(t *testing.T) {
	sms, err := NewSMS("", "contenu", []string{"+221770000001"})
	require.NoError(t, err)
	assert.Equal(t, "notification", sms.Title)
}

func TestNewSMSValidation(t *testing.T) {
	_, err := NewSMS("Rappel", "   ", []string{"+221770000001"})
	assert.Error(t, err)

	_, err = NewSMS("Rappel", "contenu", nil)
	assert.Error(t, err)
}
