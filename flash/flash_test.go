package flash

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageTags(t *testing.T) {
	cases := []struct {
		message  Message
		expected string
	}{
		{New(Error, "Failed"), "error"},
		{New(Info, "Hi", "sticky"), "sticky info"},
		{New(Warning, "Careful", "a", "b"), "a b warning"},
		{Message{Level: 99, Text: "custom", ExtraTags: "only"}, "only"},
		{Message{Level: 99, Text: "custom"}, ""},
		{Message{Level: Success, ExtraTags: "  "}, "success"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, c.message.Tags())
	}
}

func TestLevelTag(t *testing.T) {
	assert.Equal(t, "debug", Debug.Tag())
	assert.Equal(t, "success", Success.Tag())
	assert.Equal(t, "", Level(1).Tag())
}

func TestStore(t *testing.T) {
	s := NewStore(Info)
	assert.False(t, s.Add(Debug, "noise"))
	assert.True(t, s.Add(Info, "one"))
	assert.True(t, s.Add(Error, "two", "urgent"))
	assert.Equal(t, 2, s.Len())

	messages := s.Messages()
	assert.Equal(t, []Message{
		{Level: Info, Text: "one"},
		{Level: Error, Text: "two", ExtraTags: "urgent"},
	}, messages)

	assert.Empty(t, s.Messages())
	assert.Equal(t, 0, s.Len())
}

func TestStoreConcurrentAdd(t *testing.T) {
	s := NewStore(Debug)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add(Info, "hi")
		}()
	}
	wg.Wait()
	assert.Len(t, s.Messages(), 50)
}
