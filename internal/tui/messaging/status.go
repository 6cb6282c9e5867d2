package messaging

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/HaiFongPan/colsplit/internal/tui/theme"
)

// MessageType represents different message types for status display
type MessageType int

// Message type constants
const (
	MessageInfo    MessageType = theme.MessageInfo
	MessageSuccess MessageType = theme.MessageSuccess
	MessageWarning MessageType = theme.MessageWarning
	MessageError   MessageType = theme.MessageError
)

// StatusManager manages the widget's status line
type StatusManager interface {
	SetMessage(message string, msgType MessageType) uint64
	ClearMessage()
	ClearIfCurrent(id uint64)
	GetMessage() (string, MessageType, bool)
	RenderMessage() string
	HasMessage() bool
}

// StatusManagerImpl implements the StatusManager interface
type StatusManagerImpl struct {
	statusMessage string
	messageType   MessageType
	messageID     uint64
}

// NewStatusManager creates a new status manager instance
func NewStatusManager() StatusManager {
	return &StatusManagerImpl{
		messageType: MessageInfo,
	}
}

// SetMessage sets a status message and returns an id that ClearIfCurrent accepts
func (sm *StatusManagerImpl) SetMessage(message string, msgType MessageType) uint64 {
	sm.statusMessage = message
	sm.messageType = msgType
	sm.messageID++

	logrus.Debugf("StatusManager: setMessage called with message='%s', type=%d", message, msgType)
	return sm.messageID
}

// ClearMessage clears the status message
func (sm *StatusManagerImpl) ClearMessage() {
	sm.statusMessage = ""
	logrus.Debugf("StatusManager: message cleared")
}

// ClearIfCurrent clears the message only if no newer message replaced it
func (sm *StatusManagerImpl) ClearIfCurrent(id uint64) {
	if id == sm.messageID {
		sm.ClearMessage()
	}
}

// GetMessage returns the current message, type, and whether a message exists
func (sm *StatusManagerImpl) GetMessage() (string, MessageType, bool) {
	return sm.statusMessage, sm.messageType, sm.statusMessage != ""
}

// HasMessage returns whether there is currently a status message
func (sm *StatusManagerImpl) HasMessage() bool {
	return sm.statusMessage != ""
}

// RenderMessage renders the current status message with appropriate styling
func (sm *StatusManagerImpl) RenderMessage() string {
	if !sm.HasMessage() {
		return ""
	}

	messageColor := theme.GetMessageColor(int(sm.messageType))
	messageIcon := theme.GetMessageIcon(int(sm.messageType))

	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(messageColor)).
		Bold(true)

	return messageStyle.Render(fmt.Sprintf("%s %s", messageIcon, sm.statusMessage))
}
