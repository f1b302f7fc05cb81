// Package flash holds one-shot status messages shown to a user once.
package flash

import (
	"strings"
	"sync"
)

type Level int

const (
	Debug   Level = 10
	Info    Level = 20
	Success Level = 25
	Warning Level = 30
	Error   Level = 40
)

var levelTags = map[Level]string{
	Debug:   "debug",
	Info:    "info",
	Success: "success",
	Warning: "warning",
	Error:   "error",
}

// Tag returns the tag name of l, empty for levels without one.
func (l Level) Tag() string {
	return levelTags[l]
}

type Message struct {
	Level     Level
	Text      string
	ExtraTags string
}

func New(level Level, text string, extraTags ...string) Message {
	return Message{
		Level:     level,
		Text:      text,
		ExtraTags: strings.Join(extraTags, " "),
	}
}

// Tags returns the extra tags followed by the level tag, separated by spaces.
func (m Message) Tags() string {
	tags := make([]string, 0, 2)
	for _, t := range []string{strings.TrimSpace(m.ExtraTags), m.Level.Tag()} {
		if t != "" {
			tags = append(tags, t)
		}
	}
	return strings.Join(tags, " ")
}

// Body returns the message text.
func (m Message) Body() string {
	return m.Text
}

func (m Message) String() string {
	return m.Text
}

// Store collects messages until they are read. Messages below the minimum
// level are dropped.
type Store struct {
	lock     sync.Mutex
	minLevel Level
	messages []Message
}

func NewStore(minLevel Level) *Store {
	return &Store{minLevel: minLevel}
}

// Add records a message and reports whether it was kept.
func (s *Store) Add(level Level, text string, extraTags ...string) bool {
	if level < s.minLevel {
		return false
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.messages = append(s.messages, New(level, text, extraTags...))
	return true
}

// Messages returns the pending messages and empties the store.
func (s *Store) Messages() []Message {
	s.lock.Lock()
	defer s.lock.Unlock()
	rst := s.messages
	s.messages = nil
	return rst
}

func (s *Store) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.messages)
}
