package host

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// ActionResize is the action reported after a completed gesture
const ActionResize = "resize"

// DefaultFrameHeight is the frame height requested once at first render
const DefaultFrameHeight = 60

// Event is the value pushed back to the host after a gesture ends
type Event struct {
	Sizes  []float64 `json:"sizes"`
	Action string    `json:"action"`
}

// NewResizeEvent builds the event for a finished gesture
func NewResizeEvent(sizes []float64) Event {
	return Event{
		Sizes:  append([]float64(nil), sizes...),
		Action: ActionResize,
	}
}

// Emitter is the host's messaging channel
type Emitter interface {
	SetComponentValue(ev Event) error
	SetFrameHeight(height int) error
}

// Message types written by JSONEmitter
const (
	MessageComponentValue = "component_value"
	MessageFrameHeight    = "frame_height"
)

// Message is one line of the JSON host protocol
type Message struct {
	Type   string `json:"type"`
	Value  *Event `json:"value,omitempty"`
	Height int    `json:"height,omitempty"`
}

// JSONEmitter writes one JSON message per line
type JSONEmitter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewJSONEmitter creates an emitter writing to w
func NewJSONEmitter(w io.Writer) *JSONEmitter {
	return &JSONEmitter{enc: json.NewEncoder(w)}
}

// SetComponentValue writes a component_value message
func (e *JSONEmitter) SetComponentValue(ev Event) error {
	logrus.WithFields(logrus.Fields{
		"action": ev.Action,
		"sizes":  ev.Sizes,
	}).Debug("Emitting component value")
	return e.write(Message{Type: MessageComponentValue, Value: &ev})
}

// SetFrameHeight writes a frame_height message
func (e *JSONEmitter) SetFrameHeight(height int) error {
	if height <= 0 {
		return fmt.Errorf("frame height must be positive, got: %d", height)
	}
	logrus.Debugf("Requesting frame height %d", height)
	return e.write(Message{Type: MessageFrameHeight, Height: height})
}

func (e *JSONEmitter) write(msg Message) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.enc.Encode(msg); err != nil {
		return fmt.Errorf("failed to write %s message: %w", msg.Type, err)
	}
	return nil
}

// Recorder keeps emitted messages in memory
type Recorder struct {
	mu           sync.Mutex
	Events       []Event
	FrameHeights []int
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// SetComponentValue records the event
func (r *Recorder) SetComponentValue(ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, ev)
	return nil
}

// SetFrameHeight records the height
func (r *Recorder) SetFrameHeight(height int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.FrameHeights = append(r.FrameHeights, height)
	return nil
}

// Last returns the latest event and whether there was one
func (r *Recorder) Last() (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Events) == 0 {
		return Event{}, false
	}
	return r.Events[len(r.Events)-1], true
}
