package corpus_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/trknhr/pursuit/internal/corpus"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		input   string
		want    []string
		wantErr bool
	}{
		{input: "['you', 'see', 'the', 'duckie']", want: []string{"you", "see", "the", "duckie"}},
		{input: ` ["COW","PIG"] `, want: []string{"COW", "PIG"}},
		{input: "[]", want: []string{}},
		{input: `['it\'s']`, want: []string{"it's"}},
		{input: "['a',]", want: []string{"a"}},
		{input: "['a' 'b']", wantErr: true},
		{input: "[a]", wantErr: true},
		{input: "['a'", wantErr: true},
		{input: "['a]", wantErr: true},
		{input: "[,'a']", wantErr: true},
	}

	for _, tt := range tests {
		got, err := corpus.ParseList(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseList(%q) expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseList(%q) returned unexpected error: %v", tt.input, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseList(%q) mismatch (-want +got):\n%s", tt.input, diff)
		}
	}
}

func TestReadRecords_List(t *testing.T) {
	input := "utt1:['look', 'a', 'duck']\n\nutt2:[]\nutt3: ['moocow']\n"
	got, err := corpus.ReadRecords(strings.NewReader(input), "uttered.txt")
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}
	want := []corpus.Record{
		{Label: "utt1", Tokens: []string{"look", "a", "duck"}, Line: 1},
		{Label: "utt2", Tokens: []string{}, Line: 3},
		{Label: "utt3", Tokens: []string{"moocow"}, Line: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadRecords mismatch (-want +got):\n%s", diff)
	}
}

func TestReadRecords_Delimited(t *testing.T) {
	input := corpus.DelimitedHeader + "\nutt1: look a duck\nutt2:\n"
	got, err := corpus.ReadRecords(strings.NewReader(input), "uttered.txt")
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}
	want := []corpus.Record{
		{Label: "utt1", Tokens: []string{"look", "a", "duck"}, Line: 2},
		{Label: "utt2", Tokens: nil, Line: 3},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("ReadRecords mismatch (-want +got):\n%s", diff)
	}
}

func TestReadRecords_Malformed(t *testing.T) {
	tests := []string{
		"utt1 ['duck']\n",
		"utt1:['duck'\n",
	}
	for _, input := range tests {
		_, err := corpus.ReadRecords(strings.NewReader(input), "bad.txt")
		if !errors.Is(err, corpus.ErrMalformedRecord) {
			t.Errorf("ReadRecords(%q) = %v, want ErrMalformedRecord", input, err)
			continue
		}
		var perr *corpus.ParseError
		if !errors.As(err, &perr) || perr.Line != 1 || perr.Path != "bad.txt" {
			t.Errorf("unexpected parse error location: %v", err)
		}
	}
}

func TestReadVocabulary(t *testing.T) {
	got, err := corpus.ReadVocabulary(strings.NewReader("duck\n cow \n\nduck\nhat"))
	if err != nil {
		t.Fatalf("ReadVocabulary failed: %v", err)
	}
	if diff := cmp.Diff([]string{"duck", "cow", "hat"}, got); diff != "" {
		t.Errorf("ReadVocabulary mismatch (-want +got):\n%s", diff)
	}
}
