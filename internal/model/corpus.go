package model

import "fmt"

// Corpus is the structured result of ingesting one transcript file. It is
// built in a single pass and read-only afterward; message order is the
// insertion order of the source text, never re-sorted.
type Corpus struct {
	Path     string
	Filename string

	Messages       []*Message
	SystemMessages []*SystemMessage

	actors     map[string]*Actor
	actorOrder []string
}

// NewCorpus creates an empty corpus for the given transcript path.
func NewCorpus(path, filename string) *Corpus {
	return &Corpus{
		Path:     path,
		Filename: filename,
		actors:   make(map[string]*Actor),
	}
}

// Actor returns the actor for a raw contact key, if already registered.
func (c *Corpus) Actor(contactKey string) (*Actor, bool) {
	a, ok := c.actors[contactKey]
	return a, ok
}

// AddActor registers an actor under its raw contact key.
func (c *Corpus) AddActor(a *Actor) {
	if _, ok := c.actors[a.ContactKey()]; ok {
		return
	}
	c.actors[a.ContactKey()] = a
	c.actorOrder = append(c.actorOrder, a.ContactKey())
}

// Actors lists all actors in first-seen order.
func (c *Corpus) Actors() []*Actor {
	out := make([]*Actor, 0, len(c.actorOrder))
	for _, key := range c.actorOrder {
		out = append(out, c.actors[key])
	}
	return out
}

// Append adds a user message to the chronological list and to its actor's
// message list.
func (c *Corpus) Append(m *Message) {
	c.Messages = append(c.Messages, m)
	m.Actor.Messages = append(m.Actor.Messages, m)
}

// AppendSystem adds a system notice to the system-message list.
func (c *Corpus) AppendSystem(m *SystemMessage) {
	c.SystemMessages = append(c.SystemMessages, m)
}

func (c *Corpus) String() string {
	return fmt.Sprintf("<Corpus %s actors=%d messages=%d system=%d>",
		c.Filename, len(c.actors), len(c.Messages), len(c.SystemMessages))
}
