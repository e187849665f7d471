// cmd/drishti/summarizer_test.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"unicode/utf8"
)

func TestExtractiveSummarizer(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: NoSummaryText,
		},
		{
			name:     "only terminators",
			input:    "...!?",
			expected: NoSummaryText,
		},
		{
			name:     "single sentence",
			input:    "The frigate docked at Porbandar.",
			expected: "The frigate docked at Porbandar.",
		},
		{
			name:     "no terminator at all",
			input:    "Headline without punctuation",
			expected: "Headline without punctuation.",
		},
		{
			name:     "caps at three sentences",
			input:    "One. Two. Three. Four. Five.",
			expected: "One. Two. Three.",
		},
		{
			name:     "mixed terminators and whitespace",
			input:    "  Alert issued!  Ships recalled?   Ports closed.  ",
			expected: "Alert issued. Ships recalled. Ports closed.",
		},
	}

	s := ExtractiveSummarizer{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Summarize(context.Background(), tt.input)
			if got != tt.expected {
				t.Errorf("Summarize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("First. Second! Third? ")
	want := []string{"First", "Second", "Third"}
	if len(got) != len(want) {
		t.Fatalf("splitSentences returned %d fragments, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("fragment %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractiveSummarizerBoundsTerminatorFreeInput(t *testing.T) {
	s := ExtractiveSummarizer{}
	input := strings.Repeat("word ", 20000)

	got := s.Summarize(context.Background(), input)
	if len(got) > MaxAISummaryInput+1 {
		t.Errorf("Summarize() returned %d chars for terminator-free input, want at most %d", len(got), MaxAISummaryInput+1)
	}
	if !strings.HasPrefix(got, "word word") {
		t.Errorf("Summarize() = %q..., want the leading text kept", got[:20])
	}
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"short stays whole", "abc", 10, "abc"},
		{"exact length", "abc", 3, "abc"},
		{"ascii cut", "abcdef", 4, "abcd"},
		{"rune boundary respected", "aગુજરાત", 2, "a"},
		{"multi-byte aligned", "ગુજ", 6, "ગુ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateText(tt.input, tt.max)
			if got != tt.want {
				t.Errorf("truncateText(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncateText(%q, %d) produced invalid UTF-8", tt.input, tt.max)
			}
		})
	}
}

// chatCompletionReply builds a minimal OpenAI-compatible response body
func chatCompletionReply(content string) string {
	return fmt.Sprintf(`{"choices":[{"message":{"role":"assistant","content":%q}}]}`, content)
}

func TestAISummarizerReturnsModelOutput(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chatCompletionReply("  A two sentence summary. It covers the drill.  "))
	}))
	defer ts.Close()

	s := NewAISummarizer(testConfig(ts.URL))
	got := s.Summarize(context.Background(), strings.Repeat("The fleet sailed west. ", 10))
	want := "A two sentence summary. It covers the drill."
	if got != want {
		t.Errorf("Summarize() = %q, want %q", got, want)
	}
}

func TestAISummarizerSkipsShortInput(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		fmt.Fprint(w, chatCompletionReply("unexpected"))
	}))
	defer ts.Close()

	s := NewAISummarizer(testConfig(ts.URL))
	if got := s.Summarize(context.Background(), "too short"); got != "" {
		t.Errorf("Summarize(short) = %q, want empty", got)
	}
	if got := s.Summarize(context.Background(), ""); got != "" {
		t.Errorf("Summarize(empty) = %q, want empty", got)
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("endpoint called %d times for too-short input, want 0", n)
	}
}

func TestAISummarizerCapsInputLength(t *testing.T) {
	var sentLen int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			for _, m := range req.Messages {
				if m.Role == "user" {
					atomic.StoreInt32(&sentLen, int32(len(m.Content)))
				}
			}
		}
		fmt.Fprint(w, chatCompletionReply("capped"))
	}))
	defer ts.Close()

	s := NewAISummarizer(testConfig(ts.URL))
	input := strings.Repeat("x", MaxAISummaryInput*2)
	if got := s.Summarize(context.Background(), input); got != "capped" {
		t.Fatalf("Summarize() = %q, want %q", got, "capped")
	}
	if n := atomic.LoadInt32(&sentLen); n != MaxAISummaryInput {
		t.Errorf("user message length = %d, want %d", n, MaxAISummaryInput)
	}
}

func TestAISummarizerTruncatesOnRuneBoundary(t *testing.T) {
	var sent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			for _, m := range req.Messages {
				if m.Role == "user" {
					sent = m.Content
				}
			}
		}
		fmt.Fprint(w, chatCompletionReply("ok"))
	}))
	defer ts.Close()

	s := NewAISummarizer(testConfig(ts.URL))
	// one leading ASCII byte pushes the cap boundary into the middle
	// of a three-byte Gujarati rune
	input := "a" + strings.Repeat("ગ", MaxAISummaryInput)
	if got := s.Summarize(context.Background(), input); got != "ok" {
		t.Fatalf("Summarize() = %q, want %q", got, "ok")
	}
	if len(sent) > MaxAISummaryInput {
		t.Errorf("user message length = %d, want at most %d", len(sent), MaxAISummaryInput)
	}
	// a mid-rune cut surfaces as the replacement character once the
	// request body goes through JSON encoding
	if strings.ContainsRune(sent, utf8.RuneError) {
		t.Error("user message contains a mangled rune after truncation")
	}
}

func TestAISummarizerErrorFallsThrough(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusInternalServerError)
	}))
	defer ts.Close()

	s := NewAISummarizer(testConfig(ts.URL))
	if got := s.Summarize(context.Background(), strings.Repeat("news ", 50)); got != "" {
		t.Errorf("Summarize() after endpoint failure = %q, want empty", got)
	}
}
