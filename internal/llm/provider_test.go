package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kbc981/oracle-ai-migrate-gcp/model/common"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/config"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiServer(t *testing.T, status int, body string, capture *geminiRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))
		assert.Empty(t, r.URL.RawQuery)
		if capture != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func newTestGemini(url string) *Gemini {
	return NewGemini(config.Llm{Url: url + "/", Model: "gemini-test", Auth: "secret", Timeout: 5}, testLogger())
}

func TestGeminiChat(t *testing.T) {
	var got geminiRequest
	srv := geminiServer(t, http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"Use DBMS_OUTPUT."}]}}]}`, &got)
	defer srv.Close()

	answer, err := newTestGemini(srv.URL).Chat(context.Background(), []common.LlmMessage{
		{Role: "system", Content: "SYS"},
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
		{Role: "user", Content: "print?"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Use DBMS_OUTPUT.", answer)
	require.Len(t, got.Contents, 1)
	require.Len(t, got.Contents[0].Parts, 1)
	assert.Equal(t, "SYS\n\nUser: hi\n\nAssistant: hello\n\nUser: print?", got.Contents[0].Parts[0].Text)
}

func TestGeminiStripsThinking(t *testing.T) {
	srv := geminiServer(t, http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"<think>plan</think>\n Use MERGE. "}]}}]}`, nil)
	defer srv.Close()

	answer, err := newTestGemini(srv.URL).Chat(context.Background(), conv)

	require.NoError(t, err)
	assert.Equal(t, "Use MERGE.", answer)
}

func TestGeminiFlattenDefaultSystem(t *testing.T) {
	got := flatten([]common.LlmMessage{{Role: "user", Content: "q"}})
	assert.Equal(t, string(enum.SystemPromptMigration)+"\n\nUser: q", got)
}

func TestGeminiMalformedResponse(t *testing.T) {
	srv := geminiServer(t, http.StatusOK, `{"candidates":[]}`, nil)
	defer srv.Close()

	answer, err := newTestGemini(srv.URL).Chat(context.Background(), conv)

	require.NoError(t, err)
	assert.Equal(t, string(enum.MsgNoAnswer), answer)
}

func TestGeminiErrors(t *testing.T) {
	t.Run("rate limited", func(t *testing.T) {
		srv := geminiServer(t, http.StatusTooManyRequests, `quota`, nil)
		defer srv.Close()

		_, err := newTestGemini(srv.URL).Chat(context.Background(), conv)

		require.Error(t, err)
		assert.True(t, OriginatedFrom(err, enum.ProviderGemini))
		assert.True(t, IsRateLimited(err))
	})

	t.Run("upstream", func(t *testing.T) {
		srv := geminiServer(t, http.StatusInternalServerError, `internal`, nil)
		defer srv.Close()

		_, err := newTestGemini(srv.URL).Chat(context.Background(), conv)

		require.Error(t, err)
		assert.Equal(t, "Gemini API error: 500 - internal", err.Error())
		assert.False(t, IsRateLimited(err))
	})

	t.Run("invalid json", func(t *testing.T) {
		srv := geminiServer(t, http.StatusOK, `<html>`, nil)
		defer srv.Close()

		_, err := newTestGemini(srv.URL).Chat(context.Background(), conv)

		assert.True(t, OriginatedFrom(err, enum.ProviderGemini))
	})

	t.Run("transport", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		url := srv.URL
		srv.Close()

		_, err := newTestGemini(url).Chat(context.Background(), conv)

		var pe *ProviderError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, KindTransport, pe.Kind)
		assert.NotContains(t, err.Error(), "secret")
		assert.NotContains(t, err.Error(), url)
	})

	t.Run("canceled", func(t *testing.T) {
		srv := geminiServer(t, http.StatusOK, `{}`, nil)
		defer srv.Close()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newTestGemini(srv.URL).Chat(ctx, conv)

		require.Error(t, err)
		assert.False(t, OriginatedFrom(err, enum.ProviderGemini))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func openRouterServer(t *testing.T, status int, body string, capture *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer or-key", r.Header.Get("Authorization"))
		if capture != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func newTestOpenRouter(url string) *OpenRouter {
	return NewOpenRouter(config.Llm{
		Url:         url,
		Model:       "qwen/qwen3-coder:free",
		Auth:        "or-key",
		Timeout:     5,
		Temperature: 0.7,
		MaxTokens:   500,
	}, testLogger())
}

func TestOpenRouterChat(t *testing.T) {
	var got map[string]any
	srv := openRouterServer(t, http.StatusOK,
		`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"<think>hmm</think> Use MERGE."},"finish_reason":"stop"}]}`, &got)
	defer srv.Close()

	o := newTestOpenRouter(srv.URL)
	answer, err := o.Chat(context.Background(), conv)

	require.NoError(t, err)
	assert.Equal(t, "Use MERGE.", answer)
	assert.True(t, o.Configured())
	assert.Equal(t, "qwen/qwen3-coder:free", got["model"])
	assert.InDelta(t, 0.7, got["temperature"], 0.001)
	assert.EqualValues(t, 500, got["max_tokens"])
	msgs, ok := got["messages"].([]any)
	require.True(t, ok)
	assert.Len(t, msgs, 2)
}

func TestOpenRouterEmptyChoices(t *testing.T) {
	srv := openRouterServer(t, http.StatusOK, `{"choices":[]}`, nil)
	defer srv.Close()

	answer, err := newTestOpenRouter(srv.URL).Chat(context.Background(), conv)

	require.NoError(t, err)
	assert.Equal(t, string(enum.MsgNoAnswer), answer)
}

func TestOpenRouterErrors(t *testing.T) {
	t.Run("rate limited", func(t *testing.T) {
		srv := openRouterServer(t, http.StatusTooManyRequests, `{"error":{"message":"slow down","code":429}}`, nil)
		defer srv.Close()

		_, err := newTestOpenRouter(srv.URL).Chat(context.Background(), conv)

		require.Error(t, err)
		assert.True(t, OriginatedFrom(err, enum.ProviderOpenRouter))
		assert.True(t, IsRateLimited(err))
		assert.Equal(t, "OpenRouter API rate limited (429). Please try again in a few minutes or upgrade your plan.", err.Error())
	})

	t.Run("upstream without error body", func(t *testing.T) {
		srv := openRouterServer(t, http.StatusBadGateway, `bad gateway`, nil)
		defer srv.Close()

		_, err := newTestOpenRouter(srv.URL).Chat(context.Background(), conv)

		require.Error(t, err)
		assert.Equal(t, "OpenRouter API error: 502", err.Error())
	})
}
