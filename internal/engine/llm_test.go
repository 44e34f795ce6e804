package engine

import (
	"context"
	"errors"
	"testing"
)

func TestStripFences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n[1,2]\n```", "[1,2]"},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tc := range cases {
		if got := stripFences(tc.in); got != tc.want {
			t.Errorf("stripFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

type stubLLM struct {
	out string
	err error
}

func (s stubLLM) Complete(context.Context, string, string) (string, error) {
	return s.out, s.err
}

func TestCallLLM_NoClient(t *testing.T) {
	Init(Config{})
	t.Cleanup(func() { Init(Config{}) })

	_, err := CallLLM(context.Background(), "prompt")
	if !errors.Is(err, ErrLLM) {
		t.Errorf("expected ErrLLM, got %v", err)
	}
}

func TestCallLLM_WrapsClientError(t *testing.T) {
	Init(Config{LLMClient: stubLLM{err: errors.New("timeout")}})
	t.Cleanup(func() { Init(Config{}) })

	_, err := CallLLM(context.Background(), "prompt")
	if !errors.Is(err, ErrLLM) {
		t.Errorf("expected ErrLLM, got %v", err)
	}
}

func TestCallLLM_StripsFences(t *testing.T) {
	Init(Config{LLMClient: stubLLM{out: "```json\n{\"ok\":true}\n```"}})
	t.Cleanup(func() { Init(Config{}) })

	got, err := CallLLM(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("CallLLM error: %v", err)
	}
	if got != `{"ok":true}` {
		t.Errorf("expected fences stripped, got %q", got)
	}
}
