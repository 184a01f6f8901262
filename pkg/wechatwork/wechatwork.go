// Package wechatwork posts messages to a WeChat Work group robot webhook.
package wechatwork

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const webhookURL = "https://qyapi.weixin.qq.com/cgi-bin/webhook/send?key="

// markdown content is limited to 4096 bytes by the robot API
const maxMarkdown = 4096

// Message of the webhook API
type Message struct {
	MsgType  string           `json:"msgtype"`
	Text     *TextContent     `json:"text,omitempty"`
	Markdown *MarkdownContent `json:"markdown,omitempty"`
}

type TextContent struct {
	Content       string   `json:"content"`
	MentionedList []string `json:"mentioned_list,omitempty"`
}

type MarkdownContent struct {
	Content string `json:"content"`
}

type response struct {
	ErrCode int    `json:"errcode"`
	ErrMsg  string `json:"errmsg"`
}

// Sender posts to one webhook; a Sender without URL sends nothing.
type Sender struct {
	URL    string
	Client *http.Client
}

// NewSender for the robot with webhook key, disabled if key is empty.
func NewSender(key string) *Sender {
	var sender = &Sender{Client: &http.Client{Timeout: 10 * time.Second}}
	if key != "" {
		sender.URL = webhookURL + key
	}
	return sender
}

func (s *Sender) Enabled() bool {
	return s.URL != ""
}

func (s *Sender) SendText(content string, mentionedList ...string) error {
	return s.send(Message{
		MsgType: "text",
		Text:    &TextContent{Content: content, MentionedList: mentionedList},
	})
}

// SendMarkdown truncates content to the size the robot accepts.
func (s *Sender) SendMarkdown(content string) error {
	if len(content) > maxMarkdown {
		content = content[:maxMarkdown]
	}
	return s.send(Message{
		MsgType:  "markdown",
		Markdown: &MarkdownContent{Content: content},
	})
}

func (s *Sender) send(message Message) error {
	if !s.Enabled() {
		return nil
	}
	var data, err = json.Marshal(message)
	if err != nil {
		return fmt.Errorf("wechatwork: %w", err)
	}

	resp, err := s.Client.Post(s.URL, "application/json", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("wechatwork: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wechatwork: status %d", resp.StatusCode)
	}

	var result response
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("wechatwork: %w", err)
	}
	if result.ErrCode != 0 {
		return fmt.Errorf("wechatwork: errcode %d: %s", result.ErrCode, result.ErrMsg)
	}
	slog.Info("wechatwork sent", "msgtype", message.MsgType)
	return nil
}
