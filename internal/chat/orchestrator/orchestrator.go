package orchestrator

import (
	"context"
	"errors"
	"strings"

	"coder-chat/internal/chat"
	"coder-chat/internal/chat/prompt"
	"coder-chat/pkg/llmprovider"
)

// Run drives the Generating -> {Continuing, Done, Aborted} loop for one answer.
// Each iteration makes exactly one provider call with the accumulated text as continuation.
// The last event passed to emit has IsFinal set, except when ctx is cancelled; then Run
// returns ctx.Err() and emits nothing further.
func (o *Orchestrator) Run(ctx context.Context, in Input, emit Emitter) (Result, error) {
	maxLoops := in.MaxLoops
	if maxLoops <= 0 {
		maxLoops = DefaultMaxLoops
	}

	var acc strings.Builder
	res := Result{State: StateGenerating}

	for step := 0; step < maxLoops; step++ {
		if err := ctx.Err(); err != nil {
			return cancelled(res, acc.String(), err), err
		}
		o.l.Debugf(ctx, LogMsgStep, step+1, maxLoops)

		promptText := o.builder.Build(in.Window, in.UserInput, acc.String())
		chunk, err := o.gen.Generate(ctx, o.request(promptText, in.Params))
		res.Iterations = step + 1

		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return cancelled(res, acc.String(), ctxErr), ctxErr
			}
			o.l.Warnf(ctx, "%s: step %d failed (%s): %v", LogPrefixRun, step+1, llmprovider.KindOf(err), err)
			return o.abort(ctx, res, &acc, abortNote(err, acc.Len() == 0), err, emit)
		}

		text, state := classify(chunk)
		if state == StateDone && strings.TrimSpace(text) == "" && acc.Len() == 0 {
			return o.abort(ctx, res, &acc, NoResponse, ErrEmptyChunk, emit)
		}

		if filtered := prompt.FilterEcho(in.UserInput, text); filtered != text {
			text, state = filtered, StateDone
		}

		piece := joinPiece(acc.String(), text)
		acc.WriteString(piece)
		res.State = state

		if state == StateDone {
			res.Text = acc.String()
			o.l.Infof(ctx, LogMsgDone, step+1)
			return res, emit(chat.StreamEvent{Text: piece, IsFinal: true})
		}
		if err := emit(chat.StreamEvent{Text: piece}); err != nil {
			res.Text = acc.String()
			return res, err
		}
	}

	o.l.Warnf(ctx, "%s: "+LogMsgLoopBound, LogPrefixRun, maxLoops)
	return o.abort(ctx, res, &acc, NoteLoopBound, ErrLoopBoundExceeded, emit)
}

func (o *Orchestrator) request(promptText string, p Params) llmprovider.Request {
	return llmprovider.Request{
		Prompt:      promptText,
		MaxTokens:   prompt.ResponseBudget(promptText, p.ContextWindow, p.MinResponseTokens, p.MaxTokens),
		Temperature: p.Temperature,
		TopP:        p.TopP,
		Stop:        p.Stop,
	}
}

func (o *Orchestrator) abort(ctx context.Context, res Result, acc *strings.Builder, note string, reason error, emit Emitter) (Result, error) {
	piece := note
	if acc.Len() > 0 {
		piece = "\n\n" + note
	}
	acc.WriteString(piece)

	res.Text = acc.String()
	res.State = StateAborted
	res.Reason = reason
	o.l.Infof(ctx, LogMsgAborted, res.Iterations)

	return res, emit(chat.StreamEvent{Text: piece, IsFinal: true})
}

func cancelled(res Result, text string, err error) Result {
	res.Text = text
	res.State = StateAborted
	res.Reason = err
	return res
}

// classify maps a chunk to the state it moves the loop into and the text to keep.
// Chunks that are neither truncated nor terminal keep the loop going.
func classify(chunk llmprovider.Chunk) (string, State) {
	if chunk.Truncated {
		return llmprovider.StripTruncation(chunk.Text), StateContinuing
	}

	text := chunk.Text
	if cut, ok := cutEndPhrase(text); ok {
		return cut, StateDone
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" || endsSentence(trimmed) {
		return trimmed, StateDone
	}
	return text, StateContinuing
}

func cutEndPhrase(text string) (string, bool) {
	idx := -1
	for _, phrase := range endPhrases {
		if i := strings.Index(text, phrase); i >= 0 && (idx < 0 || i < idx) {
			idx = i
		}
	}
	if idx < 0 {
		return text, false
	}
	return strings.TrimSpace(text[:idx]), true
}

func endsSentence(text string) bool {
	switch text[len(text)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}

// joinPiece returns text prefixed with a separating space when it would otherwise
// run into the previous chunk's last word.
func joinPiece(prev, text string) string {
	if prev == "" || text == "" {
		return text
	}
	last := prev[len(prev)-1]
	if last == ' ' || last == '\n' || last == '\t' || strings.HasPrefix(text, " ") || strings.HasPrefix(text, "\n") {
		return text
	}
	return " " + text
}

func abortNote(err error, nothingYet bool) string {
	switch {
	case errors.Is(err, llmprovider.ErrRetriesExhausted):
		return NoteRetriesExhausted
	case llmprovider.KindOf(err) == llmprovider.KindMalformed && nothingYet:
		return NoResponse
	default:
		return NoteGenerationFailed
	}
}
