package http

import (
	"strings"

	"coder-chat/internal/chat"
)

// --- Request DTOs ---

// promptReq accepts the prompt as a form field or a JSON body.
type promptReq struct {
	Prompt string `json:"prompt" form:"prompt"`
}

func (r promptReq) validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return chat.ErrEmptyInput
	}
	return nil
}

func (r promptReq) toReplyInput() chat.ReplyInput {
	return chat.ReplyInput{Prompt: r.Prompt}
}

func (r promptReq) toStreamInput() chat.StreamInput {
	return chat.StreamInput{Prompt: r.Prompt}
}

// --- Response DTOs ---

type replyResp struct {
	Message    string `json:"message"`
	State      string `json:"state"`
	Iterations int    `json:"iterations"`
}

func (h *handler) newReplyResp(o chat.ReplyOutput) replyResp {
	return replyResp{
		Message:    o.Message,
		State:      o.State,
		Iterations: o.Iterations,
	}
}

type turnResp struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type historyResp struct {
	Turns []turnResp `json:"turns"`
}

func (h *handler) newHistoryResp(o chat.HistoryOutput) historyResp {
	turns := make([]turnResp, 0, len(o.Turns))
	for _, t := range o.Turns {
		turns = append(turns, turnResp{
			Role:    string(t.Role),
			Content: t.Content,
		})
	}
	return historyResp{Turns: turns}
}
