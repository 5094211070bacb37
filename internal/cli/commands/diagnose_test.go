package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chatlens/chatlens/pkg/config"
)

func TestCheckTranscriptExists(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		result := checkTranscriptExists("/nonexistent/chat.txt")
		if result.Status != "error" {
			t.Errorf("Status = %q, want error", result.Status)
		}
	})

	t.Run("directory", func(t *testing.T) {
		result := checkTranscriptExists(t.TempDir())
		if result.Status != "error" {
			t.Errorf("Status = %q, want error", result.Status)
		}
	})

	t.Run("empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatal(err)
		}
		result := checkTranscriptExists(path)
		if result.Status != "error" {
			t.Errorf("Status = %q, want error", result.Status)
		}
	})

	t.Run("ok", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "chat.txt")
		if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
			t.Fatal(err)
		}
		result := checkTranscriptExists(path)
		if result.Status != "ok" {
			t.Errorf("Status = %q, want ok", result.Status)
		}
	})
}

func TestCheckLineFormat(t *testing.T) {
	t.Run("no match", func(t *testing.T) {
		results := checkLineFormat("just prose\nno timestamps\n", &DiagnoseOptions{})
		if results[0].Status != "error" {
			t.Errorf("Status = %q, want error", results[0].Status)
		}
	})

	t.Run("full match", func(t *testing.T) {
		text := "12/01/23, 9:00 AM - Alice: Hello\n12/01/23, 9:01 AM - Bob: Hi\n"
		results := checkLineFormat(text, &DiagnoseOptions{})
		if results[0].Status != "ok" {
			t.Errorf("Status = %q, want ok", results[0].Status)
		}
	})

	t.Run("low match rate", func(t *testing.T) {
		lines := []string{"12/01/23, 9:00 AM - Alice: Hello"}
		for i := 0; i < 4; i++ {
			lines = append(lines, "continuation line")
		}
		results := checkLineFormat(strings.Join(lines, "\n"), &DiagnoseOptions{})
		if results[0].Status != "warning" {
			t.Errorf("Status = %q, want warning", results[0].Status)
		}
	})
}

func TestCheckParse(t *testing.T) {
	t.Run("empty corpus", func(t *testing.T) {
		results := checkParse("nothing here\n")
		if results[0].Status != "error" {
			t.Errorf("Status = %q, want error", results[0].Status)
		}
	})

	t.Run("parsed", func(t *testing.T) {
		text := "12/01/23, 9:00 AM - Alice: Hello\nmore of the same message\n"
		results := checkParse(text)
		if results[0].Status != "ok" {
			t.Errorf("Status = %q, want ok", results[0].Status)
		}
		if !strings.Contains(results[0].Message, "1 messages from 1 senders") {
			t.Errorf("Message = %q", results[0].Message)
		}
	})
}

func TestCheckWebhooks_Diagnostics(t *testing.T) {
	cfg := &config.Config{
		Webhooks: []config.WebhookConfig{
			{Name: "good", URL: "https://example.com/hook", Trigger: config.WebhookTriggerAlways},
			{Name: "bad-scheme", URL: "ftp://example.com"},
			{Name: "unresolved", URL: "https://example.com", Token: "${UNSET_VAR}"},
		},
	}

	results := checkWebhooks(cfg, &DiagnoseOptions{})
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].Status != "ok" {
		t.Errorf("good webhook Status = %q, want ok", results[0].Status)
	}
	if results[1].Status != "error" {
		t.Errorf("bad-scheme webhook Status = %q, want error", results[1].Status)
	}
	if results[2].Status != "warning" {
		t.Errorf("unresolved-token webhook Status = %q, want warning", results[2].Status)
	}
}

func TestRunDiagnose_EndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.txt")
	content := "12/01/23, 9:00 AM - Alice: Hello\n12/01/23, 9:01 AM - Bob: Hi\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := NewDiagnoseCommand()
	cmd.SetArgs([]string{path})

	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("diagnose failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "ChatLens Diagnostics") {
		t.Error("missing header")
	}
	if !strings.Contains(out, "0 errors") {
		t.Errorf("expected no errors:\n%s", out)
	}
}

func TestRunDiagnose_MissingTranscript(t *testing.T) {
	cmd := NewDiagnoseCommand()
	cmd.SetArgs([]string{"/nonexistent/chat.txt"})

	var buf bytes.Buffer
	cmd.SetOut(&buf)

	// Diagnose reports problems, it doesn't fail
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("diagnose returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "FAIL") {
		t.Error("expected a FAIL result for the missing transcript")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	long := strings.Repeat("x", 100)
	got := truncate(long, 20)
	if len(got) != 20 {
		t.Errorf("len = %d, want 20", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("want ellipsis suffix, got %q", got)
	}
}
