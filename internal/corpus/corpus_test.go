package corpus_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/trknhr/pursuit/internal/corpus"
	"github.com/trknhr/pursuit/internal/eval"
	"github.com/trknhr/pursuit/internal/pursuit"
)

func writeFiles(t *testing.T, contents map[string]string) corpus.Files {
	t.Helper()
	dir := t.TempDir()
	for name, body := range contents {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	files := corpus.Files{
		Words:    filepath.Join(dir, "words.txt"),
		Meanings: filepath.Join(dir, "meanings.txt"),
		Uttered:  filepath.Join(dir, "uttered.txt"),
		Visible:  filepath.Join(dir, "visible.txt"),
	}
	if _, ok := contents["gold.yaml"]; ok {
		files.Gold = filepath.Join(dir, "gold.yaml")
	}
	return files
}

func TestLoad(t *testing.T) {
	files := writeFiles(t, map[string]string{
		"words.txt":    "duck\ncow\nlook\n",
		"meanings.txt": "DUCK\nCOW\n",
		"uttered.txt":  "1:['look', 'duck']\n2:['cow']\n",
		"visible.txt":  "1:['DUCK']\n2:['COW', 'DUCK']\n",
		"gold.yaml":    "duck: DUCK\ncow: COW\n",
	})

	c, err := corpus.Load(files)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []pursuit.Utterance{
		{Words: []string{"look", "duck"}, Meanings: []string{"DUCK"}},
		{Words: []string{"cow"}, Meanings: []string{"COW", "DUCK"}},
	}
	if diff := cmp.Diff(want, c.Utterances); diff != "" {
		t.Errorf("utterances mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(eval.Gold{"duck": "DUCK", "cow": "COW"}, c.Gold); diff != "" {
		t.Errorf("gold mismatch (-want +got):\n%s", diff)
	}
	if len(c.Fingerprint) != 64 {
		t.Errorf("unexpected fingerprint %q", c.Fingerprint)
	}
}

func TestLoad_DefaultGold(t *testing.T) {
	files := writeFiles(t, map[string]string{
		"words.txt":    "duck\n",
		"meanings.txt": "DUCK\n",
		"uttered.txt":  "1:['duck']\n",
		"visible.txt":  "1:['DUCK']\n",
	})
	c, err := corpus.Load(files)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Gold.Size() != eval.FrankGold().Size() {
		t.Errorf("expected built-in gold standard, got %d entries", c.Gold.Size())
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		uttered string
		visible string
		want    error
	}{
		{"line count", "1:['duck']\n2:['duck']\n", "1:['DUCK']\n", corpus.ErrLineCountMismatch},
		{"unknown word", "1:['goose']\n", "1:['DUCK']\n", corpus.ErrUnknownWord},
		{"unknown meaning", "1:['duck']\n", "1:['GOOSE']\n", corpus.ErrUnknownMeaning},
		{"malformed", "1:duck\n", "1:['DUCK']\n", corpus.ErrMalformedRecord},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := writeFiles(t, map[string]string{
				"words.txt":    "duck\n",
				"meanings.txt": "DUCK\n",
				"uttered.txt":  tt.uttered,
				"visible.txt":  tt.visible,
			})
			if _, err := corpus.Load(files); !errors.Is(err, tt.want) {
				t.Errorf("Load error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := corpus.Load(corpus.Files{Words: filepath.Join(t.TempDir(), "nope.txt")})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestPair_BlankLineShiftsRecords(t *testing.T) {
	uttered, err := corpus.ReadRecords(strings.NewReader("1:['duck']\n\n3:['cow']\n4:['pig']\n"), "uttered.txt")
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}
	visible, err := corpus.ReadRecords(strings.NewReader("1:['DUCK']\n2:['HAT']\n3:['COW']\n"), "visible.txt")
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}

	if _, err := corpus.Pair(uttered, visible); !errors.Is(err, corpus.ErrLineCountMismatch) {
		t.Errorf("Pair error = %v, want ErrLineCountMismatch", err)
	}
}

func TestPair_AlignedBlankLines(t *testing.T) {
	uttered, _ := corpus.ReadRecords(strings.NewReader(corpus.DelimitedHeader+"\n1: duck\n\n3: cow\n"), "uttered.txt")
	visible, _ := corpus.ReadRecords(strings.NewReader(corpus.DelimitedHeader+"\n1: DUCK\n\n3: COW HAT\n"), "visible.txt")

	got, err := corpus.Pair(uttered, visible)
	if err != nil {
		t.Fatalf("Pair failed: %v", err)
	}
	want := []pursuit.Utterance{
		{Words: []string{"duck"}, Meanings: []string{"DUCK"}},
		{Words: []string{"cow"}, Meanings: []string{"COW", "HAT"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Pair mismatch (-want +got):\n%s", diff)
	}
}
