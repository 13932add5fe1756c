package user

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/knowledge"
	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/llm"
	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/retriever"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/common"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/db"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/enum"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type stubRetriever struct {
	rc      *retriever.Context
	queries []string
}

func (s *stubRetriever) Fetch(_ context.Context, query string) *retriever.Context {
	s.queries = append(s.queries, query)
	return s.rc
}

type stubProvider struct {
	name       enum.Provider
	configured bool
	answer     string
	err        error
	got        []common.LlmMessage
}

func (p *stubProvider) Name() enum.Provider { return p.name }
func (p *stubProvider) Configured() bool    { return p.configured }
func (p *stubProvider) Chat(_ context.Context, messages []common.LlmMessage) (string, error) {
	p.got = messages
	return p.answer, p.err
}

type memChatLogs struct {
	mu   sync.Mutex
	logs []db.ChatLog
}

func (m *memChatLogs) Insert(l *db.ChatLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, *l)
	return nil
}

func (m *memChatLogs) CountBySource(int64, *[]common.SourceCount) error { return nil }

func (m *memChatLogs) snapshot() []db.ChatLog {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]db.ChatLog(nil), m.logs...)
}

type fixture struct {
	svc       *ChatService
	retriever *stubRetriever
	primary   *stubProvider
	secondary *stubProvider
	logs      *memChatLogs
}

func newFixture() *fixture {
	f := &fixture{
		retriever: &stubRetriever{},
		primary:   &stubProvider{name: enum.ProviderGemini, configured: true, answer: "primary answer"},
		secondary: &stubProvider{name: enum.ProviderOpenRouter, configured: true, answer: "secondary answer"},
		logs:      &memChatLogs{},
	}
	f.svc = NewChatService(Deps{
		Log:       testLogger(),
		Knowledge: knowledge.Default(),
		Retriever: f.retriever,
		Gateway:   llm.NewGateway(testLogger(), f.primary, f.secondary),
		ChatLogs:  f.logs,
	}, &Validator{})
	f.svc.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return f
}

func TestReplyValidation(t *testing.T) {
	f := newFixture()

	for _, req := range []*common.ChatRequest{nil, {}, {Message: "   "}} {
		_, err := f.svc.Reply(context.Background(), "r", req)
		assert.ErrorIs(t, err, ErrValidation)
	}
	assert.Empty(t, f.retriever.queries)
}

func TestReplyNotConfigured(t *testing.T) {
	f := newFixture()
	f.primary.configured = false
	f.secondary.configured = false

	// 即使能命中FAQ, 没有凭证也直接失败
	_, err := f.svc.Reply(context.Background(), "r", &common.ChatRequest{Message: "admin panel"})
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Equal(t, 500, StatusOf(err))
}

func TestReplyFaq(t *testing.T) {
	f := newFixture()

	res, err := f.svc.Reply(context.Background(), "r1", &common.ChatRequest{Message: "How does the admin panel work?"})

	require.NoError(t, err)
	assert.Equal(t, enum.SourceFaq, res.Source)
	assert.Equal(t, enum.ConfidenceHigh, res.Confidence)
	assert.True(t, strings.HasPrefix(res.Message, "The admin panel provides"))
	assert.Equal(t, enum.IntentGeneralQuestion, res.Intent)
	assert.Len(t, res.Suggestions, 3)
	assert.Equal(t, "2025-01-02T03:04:05.000Z", res.Timestamp)
	assert.Nil(t, res.DocsContext)
	assert.Empty(t, f.retriever.queries)
	assert.Nil(t, f.primary.got)

	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "docsContext")

	assert.Eventually(t, func() bool {
		logs := f.logs.snapshot()
		return len(logs) == 1 && logs[0].Source == string(enum.SourceFaq) && logs[0].RequestId == "r1" && logs[0].Status == 200
	}, time.Second, 10*time.Millisecond)
}

func TestReplyDocs(t *testing.T) {
	f := newFixture()

	res, err := f.svc.Reply(context.Background(), "r", &common.ChatRequest{Message: "show me the docs"})

	require.NoError(t, err)
	assert.Equal(t, enum.SourceDocs, res.Source)
	assert.True(t, strings.HasPrefix(res.Message, "Here are the available documentation links:\n- admin: /docs/admin-panel.md"))
	assert.Nil(t, res.DocsContext)
	assert.Empty(t, f.retriever.queries)
}

func TestReplyAiWithContext(t *testing.T) {
	f := newFixture()
	f.retriever.rc = &retriever.Context{Text: strings.Repeat("x", 600)}
	history := []common.LlmMessage{{Role: "user", Content: "earlier"}, {Role: "assistant", Content: "reply"}}

	res, err := f.svc.Reply(context.Background(), "r", &common.ChatRequest{Message: "What's the weather", ConversationHistory: history})

	require.NoError(t, err)
	assert.Equal(t, enum.SourceAiRag, res.Source)
	assert.Equal(t, "primary answer", res.Message)
	assert.Equal(t, []string{"What's the weather"}, f.retriever.queries)

	require.Len(t, f.primary.got, 4)
	assert.Contains(t, f.primary.got[0].Content, "RELEVANT PROJECT DOCUMENTATION:")
	assert.Equal(t, "earlier", f.primary.got[1].Content)
	assert.Equal(t, common.LlmMessage{Role: "user", Content: "What's the weather"}, f.primary.got[3])

	require.NotNil(t, res.DocsContext)
	files := *res.DocsContext
	require.Len(t, files, 1)
	assert.Equal(t, "Project Documentation", files[0].File)
	require.Len(t, files[0].Sections, 1)
	assert.Equal(t, strings.Repeat("x", 500)+"...", files[0].Sections[0].Content)
	assert.Equal(t, 1, files[0].Sections[0].LineNumber)
}

func TestReplyAiWithoutContext(t *testing.T) {
	f := newFixture()

	res, err := f.svc.Reply(context.Background(), "r", &common.ChatRequest{Message: "What's the weather"})

	require.NoError(t, err)
	assert.Equal(t, enum.SourceAiRag, res.Source)
	assert.Equal(t, string(enum.SystemPromptMigration), f.primary.got[0].Content)

	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"docsContext":null`)
}

func TestReplyFallback(t *testing.T) {
	f := newFixture()
	f.primary.err = &llm.ProviderError{Provider: enum.ProviderGemini, Kind: llm.KindUpstream, Status: 503}

	res, err := f.svc.Reply(context.Background(), "r", &common.ChatRequest{Message: "What's the weather", Model: "gemini"})

	require.NoError(t, err)
	assert.Equal(t, "secondary answer", res.Message)
	assert.Equal(t, enum.SourceAiRag, res.Source)

	assert.Eventually(t, func() bool {
		logs := f.logs.snapshot()
		return len(logs) == 1 && logs[0].Provider == string(enum.ProviderOpenRouter) && logs[0].FellBack
	}, time.Second, 10*time.Millisecond)
}

func TestReplyProviderFailure(t *testing.T) {
	f := newFixture()
	f.primary.err = errors.New("unrecognized failure")

	_, err := f.svc.Reply(context.Background(), "r", &common.ChatRequest{Message: "What's the weather"})

	require.Error(t, err)
	assert.Equal(t, "unrecognized failure", err.Error())
	assert.Nil(t, f.secondary.got)
	assert.Equal(t, 500, StatusOf(err))
}

func TestReplyRateLimitedLogsWarning(t *testing.T) {
	f := newFixture()
	f.primary.err = &llm.ProviderError{Provider: enum.ProviderGemini, Kind: llm.KindRateLimited, Status: 429}
	f.secondary.err = &llm.ProviderError{Provider: enum.ProviderOpenRouter, Kind: llm.KindRateLimited, Status: 429}
	log, hook := logtest.NewNullLogger()
	f.svc.log = log

	_, err := f.svc.Reply(context.Background(), "r", &common.ChatRequest{Message: "What's the weather"})

	require.Error(t, err)
	assert.Equal(t, 500, StatusOf(err))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, false, hook.LastEntry().Data["fell_back"])
}

func TestReplyIdempotent(t *testing.T) {
	f := newFixture()

	for _, msg := range []string{"admin panel", "docs please", "What's the weather"} {
		a, err := f.svc.Reply(context.Background(), "r", &common.ChatRequest{Message: msg})
		require.NoError(t, err)
		b, err := f.svc.Reply(context.Background(), "r", &common.ChatRequest{Message: msg})
		require.NoError(t, err)
		assert.Equal(t, a.Message, b.Message)
		assert.Equal(t, a.Source, b.Source)
	}
}

func TestHealth(t *testing.T) {
	f := newFixture()
	f.secondary.configured = false

	h := f.svc.Health()

	assert.Equal(t, enum.MsgHealthy, h.Message)
	assert.Equal(t, "ok", h.Status)
	assert.True(t, h.HasPrimaryKey)
	assert.False(t, h.HasSecondaryKey)
}

type countStore struct {
	memChatLogs
	since int64
	list  []common.SourceCount
}

func (c *countStore) CountBySource(since int64, list *[]common.SourceCount) error {
	c.since = since
	*list = append(*list, c.list...)
	return nil
}

func TestStatsSourceCounts(t *testing.T) {
	store := &countStore{list: []common.SourceCount{{Source: "hardcoded_faq", Total: 4}, {Source: "ai_with_rag", Total: 2}}}
	svc := NewStatsService(store)
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	res, err := svc.SourceCounts(0)

	require.NoError(t, err)
	assert.Equal(t, 7, res.Days)
	assert.Equal(t, int64(6), res.Total)
	assert.Equal(t, now.AddDate(0, 0, -7).Unix(), store.since)

	_, err = NewStatsService(nil).SourceCounts(1)
	assert.ErrorIs(t, err, ErrStatsDisabled)
}
