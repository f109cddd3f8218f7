package prompt

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		prompt Prompt
		input  string
		want   string
	}{
		{
			name:   "system and user",
			prompt: Prompt{System: "You are a translator.", User: "Translate: {{input}}"},
			input:  "hello",
			want:   "You are a translator.\n\nTranslate: hello",
		},
		{
			name:   "user only",
			prompt: Prompt{User: "Summarize {{input}}"},
			input:  "this",
			want:   "Summarize this",
		},
		{
			name:   "system only",
			prompt: Prompt{System: "Be brief about {{input}}"},
			input:  "go",
			want:   "Be brief about go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.prompt.Format(tt.input); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFindLaterDirectoriesWin(t *testing.T) {
	low := t.TempDir()
	high := t.TempDir()
	writeTemplate(t, low, "translate.toml", `user = "low"`)
	writeTemplate(t, high, "translate.toml", `user = "high"`)

	path, err := Find("translate", []string{low, high})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if path != filepath.Join(high, "translate.toml") {
		t.Errorf("path = %s, want the later directory's file", path)
	}

	if _, err := Find("missing", []string{low, high}); err == nil {
		t.Error("expected error for missing template")
	}
}

func TestLoadAndList(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "translate.toml", "system = \"You translate.\"\nuser = \"{{input}}\"\nmodel = \"gemini-2.0-pro\"\n")
	writeTemplate(t, dir, "summarize.toml", `user = "Summarize: {{input}}"`)
	writeTemplate(t, dir, "notes.txt", "ignored")

	p, err := Load(filepath.Join(dir, "translate.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Model == nil || *p.Model != "gemini-2.0-pro" {
		t.Errorf("Model = %v, want gemini-2.0-pro", p.Model)
	}

	names, err := List([]string{dir, filepath.Join(dir, "does-not-exist")})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 2 || names[0] != "summarize" || names[1] != "translate" {
		t.Errorf("names = %v", names)
	}
}
