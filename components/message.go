package components

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	cohere "github.com/cohere-ai/cohere-go/v2"
	"github.com/gabriel-vasile/mimetype"
	anthropic "github.com/liushuangls/go-anthropic/v2"
	"github.com/rs/xid"
	openai "github.com/sashabaranov/go-openai"

	"github.com/bububa/graph-agents/schema"
)

// NewTurnID returns a new turn ID.
func NewTurnID() string {
	return xid.New().String()
}

// MessageRole is the role of the message sender (e.g., 'user', 'system', 'assistant')
type MessageRole = string

const (
	SystemRole    MessageRole = "system"
	UserRole      MessageRole = "user"
	AssistantRole MessageRole = "assistant"
	ToolRole      MessageRole = "tool"
)

// Message represents one entry in a conversation history.
// A message is immutable once created: the sender role, the content schema
// and the author name never change after construction.
type Message struct {
	content schema.Schema
	// role is the role of the message sender (e.g., 'user', 'system', 'assistant')
	role MessageRole
	// sender is the name of the agent which produced the message, empty for user input
	sender string
	// turnID is the unique identifier for the turn this message belongs to.
	turnID string
}

// NewMessage returns a new Message
func NewMessage(role MessageRole, content schema.Schema) *Message {
	return &Message{
		role:    role,
		content: content,
	}
}

// SetTurnID set message turnID
func (m *Message) SetTurnID(turnID string) *Message {
	m.turnID = turnID
	return m
}

// SetSender set the name of the agent which produced the message
func (m *Message) SetSender(name string) *Message {
	m.sender = name
	return m
}

// Role returns message role
func (m Message) Role() MessageRole {
	return m.role
}

// Content returns message content
func (m Message) Content() schema.Schema {
	return m.content
}

// Sender returns the producing agent name, empty for user input
func (m Message) Sender() string {
	return m.sender
}

// Attachement returns message attachement
func (m Message) Attachement() *schema.Attachement {
	return m.content.Attachement()
}

// TurnID returns message turnID
func (m Message) TurnID() string {
	return m.turnID
}

// ToOpenAI convert message to openai ChatCompletionMessage
func (m Message) ToOpenAI(dist *openai.ChatCompletionMessage) {
	dist.Role = m.role
	dist.Name = m.sender
	if attachement := m.Attachement(); attachement != nil && len(attachement.ImageURLs) > 0 {
		dist.MultiContent = make([]openai.ChatMessagePart, 0, len(attachement.ImageURLs)+1)
		dist.MultiContent = append(dist.MultiContent, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeText,
			Text: schema.Stringify(m.content),
		})
		for _, imageURL := range attachement.ImageURLs {
			dist.MultiContent = append(dist.MultiContent, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL: imageURL,
				},
			})
		}
	} else {
		dist.Content = schema.Stringify(m.content)
	}
}

// ToAnthropic convert message to anthropic Message
func (m Message) ToAnthropic(dist *anthropic.Message) {
	dist.Role = anthropic.ChatRole(m.role)
	attachement := m.Attachement()
	if attachement == nil || len(attachement.Files) == 0 {
		dist.Content = []anthropic.MessageContent{anthropic.NewTextMessageContent(schema.Stringify(m.content))}
		return
	}
	dist.Content = make([]anthropic.MessageContent, 0, len(attachement.Files)+1)
	dist.Content = append(dist.Content, anthropic.NewTextMessageContent(schema.Stringify(m.content)))
	buf := new(bytes.Buffer)
	for _, f := range attachement.Files {
		buf.Reset()
		tee := io.TeeReader(f, buf)
		mimeType, _ := mimetype.DetectReader(tee)
		encodedString := base64.StdEncoding.EncodeToString(buf.Bytes())
		docSource := anthropic.MessageContentSource{
			Type:      "base64",
			MediaType: mimeType.String(),
			Data:      fmt.Sprintf("data:%s;base64,%s", mimeType.String(), encodedString),
		}
		dist.Content = append(dist.Content, anthropic.NewDocumentMessageContent(docSource))
	}
}

// ToCohere convert message to cohere Message
func (m Message) ToCohere(dist *cohere.Message) {
	switch m.role {
	case SystemRole:
		dist.Role = "SYSTEM"
		dist.System = &cohere.ChatMessage{
			Message: schema.Stringify(m.content),
		}
	case AssistantRole:
		dist.Role = "CHATBOT"
		dist.Chatbot = &cohere.ChatMessage{
			Message: schema.Stringify(m.content),
		}
	default:
		dist.Role = "USER"
		dist.User = &cohere.ChatMessage{
			Message: schema.Stringify(m.content),
		}
	}
}
