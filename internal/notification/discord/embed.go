package discord

import (
	"time"
)

// WebhookMessage는 Discord 웹훅 메시지를 정의합니다
type WebhookMessage struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds,omitempty"`
}

// Embed는 Discord 메시지 임베드를 정의합니다
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Footer      *EmbedFooter `json:"footer,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
}

// EmbedField는 임베드 필드를 정의합니다
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// EmbedFooter는 임베드 푸터를 정의합니다
type EmbedFooter struct {
	Text string `json:"text"`
}

// NewEmbed는 푸터와 현재 시각이 채워진 임베드를 생성합니다
func NewEmbed(title string, color int) *Embed {
	return &Embed{
		Title:     title,
		Color:     color,
		Footer:    &EmbedFooter{Text: footerText},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// SetDescription은 임베드 설명을 설정합니다
func (e *Embed) SetDescription(desc string) *Embed {
	e.Description = desc
	return e
}

// AddField는 인라인 필드를 추가합니다
func (e *Embed) AddField(name, value string) *Embed {
	e.Fields = append(e.Fields, EmbedField{Name: name, Value: value, Inline: true})
	return e
}

// Message는 임베드 하나로 구성된 웹훅 메시지를 만듭니다
func (e *Embed) Message() WebhookMessage {
	return WebhookMessage{Embeds: []Embed{*e}}
}
