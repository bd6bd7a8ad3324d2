package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coder-chat/internal/chat"
	"coder-chat/internal/chat/orchestrator"
	"coder-chat/internal/model"
	"coder-chat/pkg/llmprovider"
)

var testScope = model.Scope{SessionID: "session-1", RequestID: "req-1"}

func TestReply_RecordsExchange(t *testing.T) {
	repo := newMemoryRepo()
	gen := &stubGenerator{texts: []string{"Hello there!"}}
	uc := newTestUseCase(gen, repo, Config{})

	out, err := uc.Reply(context.Background(), testScope, chat.ReplyInput{Prompt: "  Hi  "})
	require.NoError(t, err)

	assert.Equal(t, "Hello there!", out.Message)
	assert.Equal(t, string(orchestrator.StateDone), out.State)
	assert.Equal(t, 1, out.Iterations)

	turns, err := repo.Get(context.Background(), testScope.SessionID)
	require.NoError(t, err)
	assert.Equal(t, []chat.Turn{
		{Role: chat.RoleUser, Content: "Hi"},
		{Role: chat.RoleAssistant, Content: "Hello there!"},
	}, turns)
}

func TestReply_EmptyInputMakesNoCall(t *testing.T) {
	gen := &stubGenerator{texts: []string{"unused."}}
	uc := newTestUseCase(gen, newMemoryRepo(), Config{})

	for _, p := range []string{"", "   ", "\n\t"} {
		_, err := uc.Reply(context.Background(), testScope, chat.ReplyInput{Prompt: p})
		assert.ErrorIs(t, err, chat.ErrEmptyInput)
	}
	assert.Equal(t, 0, gen.calls())
}

func TestReply_MissingSession(t *testing.T) {
	uc := newTestUseCase(&stubGenerator{texts: []string{"x."}}, newMemoryRepo(), Config{})

	_, err := uc.Reply(context.Background(), model.Scope{}, chat.ReplyInput{Prompt: "Hi"})
	assert.ErrorIs(t, err, chat.ErrMissingSession)
}

func TestReply_WindowsHistory(t *testing.T) {
	repo := newMemoryRepo()
	ctx := context.Background()
	for i := 0; i < 6; i++ {
		require.NoError(t, repo.Append(ctx, testScope.SessionID, chat.Turn{Role: chat.RoleUser, Content: fmt.Sprintf("old %d", i)}))
	}

	gen := &stubGenerator{texts: []string{"Sure."}}
	uc := newTestUseCase(gen, repo, Config{WindowSize: 2})

	_, err := uc.Reply(ctx, testScope, chat.ReplyInput{Prompt: "new"})
	require.NoError(t, err)

	require.Len(t, gen.prompts, 1)
	assert.Equal(t, "System.\nUser: old 4\nUser: old 5\nUser: new\nAssistant:", gen.prompts[0])
}

func TestReply_AbortedStillRecorded(t *testing.T) {
	repo := newMemoryRepo()
	gen := &stubGenerator{err: fmt.Errorf("%w after 5 attempts: down", llmprovider.ErrRetriesExhausted)}
	uc := newTestUseCase(gen, repo, Config{})

	out, err := uc.Reply(context.Background(), testScope, chat.ReplyInput{Prompt: "Hi"})
	require.NoError(t, err)

	assert.Equal(t, orchestrator.NoteRetriesExhausted, out.Message)
	assert.Equal(t, string(orchestrator.StateAborted), out.State)

	turns, err := repo.Get(context.Background(), testScope.SessionID)
	require.NoError(t, err)
	assert.Len(t, turns, 2)
}

func TestReply_StoreErrors(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		gen := &stubGenerator{texts: []string{"ok."}}
		uc := newTestUseCase(gen, &failingRepo{HistoryRepository: newMemoryRepo(), getErr: errStore}, Config{})

		_, err := uc.Reply(context.Background(), testScope, chat.ReplyInput{Prompt: "Hi"})
		assert.ErrorIs(t, err, errStore)
		assert.Equal(t, 0, gen.calls())
	})

	t.Run("append", func(t *testing.T) {
		gen := &stubGenerator{texts: []string{"ok."}}
		uc := newTestUseCase(gen, &failingRepo{HistoryRepository: newMemoryRepo(), appendErr: errStore}, Config{})

		out, err := uc.Reply(context.Background(), testScope, chat.ReplyInput{Prompt: "Hi"})
		assert.ErrorIs(t, err, errStore)
		assert.Equal(t, "ok.", out.Message)
	})
}

func TestStream_EmitsAndRecords(t *testing.T) {
	repo := newMemoryRepo()
	gen := &stubGenerator{texts: []string{"One...", "two."}}
	uc := newTestUseCase(gen, repo, Config{})

	var events []chat.StreamEvent
	out, err := uc.Stream(context.Background(), testScope, chat.StreamInput{Prompt: "count"}, func(ev chat.StreamEvent) error {
		events = append(events, ev)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []chat.StreamEvent{{Text: "One"}, {Text: " two.", IsFinal: true}}, events)
	assert.Equal(t, "One two.", out.Message)

	turns, err := repo.Get(context.Background(), testScope.SessionID)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "One two.", turns[1].Content)
}

func TestStream_CancelledNotRecorded(t *testing.T) {
	repo := newMemoryRepo()
	gen := &stubGenerator{texts: []string{"One...", "two."}}
	uc := newTestUseCase(gen, repo, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := uc.Stream(ctx, testScope, chat.StreamInput{Prompt: "count"}, func(chat.StreamEvent) error {
		cancel()
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)

	turns, err := repo.Get(context.Background(), testScope.SessionID)
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestHistoryAndClear(t *testing.T) {
	repo := newMemoryRepo()
	gen := &stubGenerator{texts: []string{"Answer."}}
	uc := newTestUseCase(gen, repo, Config{})
	ctx := context.Background()

	_, err := uc.Reply(ctx, testScope, chat.ReplyInput{Prompt: "Question"})
	require.NoError(t, err)

	out, err := uc.History(ctx, testScope)
	require.NoError(t, err)
	require.Len(t, out.Turns, 2)
	assert.Equal(t, "Question", out.Turns[0].Content)

	require.NoError(t, uc.Clear(ctx, testScope))

	out, err = uc.History(ctx, testScope)
	require.NoError(t, err)
	assert.Empty(t, out.Turns)

	_, err = uc.History(ctx, model.Scope{})
	assert.ErrorIs(t, err, chat.ErrMissingSession)
	assert.ErrorIs(t, uc.Clear(ctx, model.Scope{}), chat.ErrMissingSession)
}

func TestClear_StoreError(t *testing.T) {
	uc := newTestUseCase(&stubGenerator{texts: []string{"x."}}, &failingRepo{HistoryRepository: newMemoryRepo(), clearErr: errStore}, Config{})

	err := uc.Clear(context.Background(), testScope)
	assert.ErrorIs(t, err, errStore)
	assert.True(t, strings.HasPrefix(err.Error(), "clear history"))
}
