package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"

	"github.com/Sanyamodi/arogya-sakhi-bot/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func geminiResponse(text string, finish genai.FinishReason) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content:      &genai.Content{Parts: []*genai.Part{{Text: text}}},
			FinishReason: finish,
		}},
	}
}

func TestInterpretGemini(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		want    string
		wantErr error
	}{
		{name: "text", resp: geminiResponse("  advice  ", genai.FinishReasonStop), want: "advice"},
		{name: "safety with partial text", resp: geminiResponse("partial", genai.FinishReasonSafety), wantErr: ErrBlocked},
		{name: "prohibited content", resp: geminiResponse("partial", "PROHIBITED_CONTENT"), wantErr: ErrBlocked},
		{name: "max tokens keeps text", resp: geminiResponse("cut short", "MAX_TOKENS"), want: "cut short"},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, wantErr: ErrEmptyResponse},
		{name: "nil content", resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonStop}}}, wantErr: ErrEmptyResponse},
		{name: "blank text", resp: geminiResponse(" \n ", genai.FinishReasonStop), wantErr: ErrEmptyResponse},
		{name: "nil response", resp: nil, wantErr: ErrEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := interpretGemini(tt.resp)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("interpretGemini() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("interpretGemini() error = %v", err)
			}
			if got.Text != tt.want {
				t.Errorf("interpretGemini() text = %q, want %q", got.Text, tt.want)
			}
		})
	}
}

func TestInterpretOpenAI(t *testing.T) {
	t.Parallel()

	choice := func(content, finish string) openai.ChatCompletionResponse {
		var resp openai.ChatCompletionResponse
		body := fmt.Sprintf(`{"choices":[{"index":0,"message":{"role":"assistant","content":%q},"finish_reason":%q}]}`, content, finish)
		if err := json.Unmarshal([]byte(body), &resp); err != nil {
			t.Fatalf("failed to build response: %v", err)
		}
		return resp
	}

	tests := []struct {
		name    string
		resp    openai.ChatCompletionResponse
		want    string
		wantErr error
	}{
		{name: "text", resp: choice("advice", "stop"), want: "advice"},
		{name: "content filter", resp: choice("partial", "content_filter"), wantErr: ErrBlocked},
		{name: "no choices", resp: openai.ChatCompletionResponse{}, wantErr: ErrEmptyResponse},
		{name: "empty content", resp: choice("", "stop"), wantErr: ErrEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := interpretOpenAI(tt.resp)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("interpretOpenAI() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("interpretOpenAI() error = %v", err)
			}
			if got.Text != tt.want {
				t.Errorf("interpretOpenAI() text = %q, want %q", got.Text, tt.want)
			}
		})
	}
}

func TestOpenAIClient_Complete(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"1","object":"chat.completion","model":"test",
			"choices":[{"index":0,"message":{"role":"assistant","content":"Drink water."},"finish_reason":"stop"}],
			"usage":{"prompt_tokens":3,"completion_tokens":2,"total_tokens":5}}`)
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(config.AIConfig{APIKey: "k", Model: "test", BaseURL: srv.URL}, discardLogger())
	if err != nil {
		t.Fatalf("NewOpenAIClient() error = %v", err)
	}

	resp, err := client.Complete(context.Background(), Request{Prompt: "hi", Params: GenerationParams{Temperature: 0.3, MaxOutputTokens: 500}})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if resp.Text != "Drink water." || resp.FinishReason != "stop" {
		t.Errorf("Complete() = %+v", resp)
	}
}

func TestNewClient_NoKeyReturnsNil(t *testing.T) {
	t.Parallel()

	client, err := NewClient(context.Background(), config.AIConfig{Provider: "gemini"}, discardLogger())
	if err != nil || client != nil {
		t.Errorf("NewClient() = %v, %v; want nil, nil", client, err)
	}
}

func TestNewClient_UnknownProvider(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(context.Background(), config.AIConfig{Provider: "other", APIKey: "k"}, discardLogger()); err == nil {
		t.Errorf("NewClient() error = nil, want error for unknown provider")
	}
}
