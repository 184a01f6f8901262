package wechatwork

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, reply string, got *Message) *httptest.Server {
	t.Helper()
	var server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		w.Write([]byte(reply))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSendMarkdown(t *testing.T) {
	var got Message
	var server = newServer(t, `{"errcode":0,"errmsg":"ok"}`, &got)
	var sender = &Sender{URL: server.URL, Client: server.Client()}

	require.NoError(t, sender.SendMarkdown("# report\n"+strings.Repeat("x", 5000)))
	assert.Equal(t, "markdown", got.MsgType)
	assert.Nil(t, got.Text)
	assert.Len(t, got.Markdown.Content, maxMarkdown)
}

func TestSendText(t *testing.T) {
	var got Message
	var server = newServer(t, `{"errcode":93000,"errmsg":"invalid webhook url"}`, &got)
	var sender = &Sender{URL: server.URL, Client: server.Client()}

	var err = sender.SendText("failed", "@all")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "93000")
	assert.Equal(t, "failed", got.Text.Content)
	assert.Equal(t, []string{"@all"}, got.Text.MentionedList)
}

func TestDisabled(t *testing.T) {
	var sender = NewSender("")
	assert.False(t, sender.Enabled())
	assert.NoError(t, sender.SendText("x"))

	sender = NewSender("abc")
	assert.True(t, sender.Enabled())
	assert.Equal(t, webhookURL+"abc", sender.URL)
}
