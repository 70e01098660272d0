package pipeline

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestWriteText(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := WriteText(buf, sampleReport(), true); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"old file count: 5",
		"new file count: 6",
		"added: 2",
		"removed: 1",
		"",
		"[removed]",
		"500100732259",
		"",
		"[added]",
		"0012345678\tbad checksum",
		"7707083893",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteJSON(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := WriteJSON(buf, sampleReport(), true); err != nil {
		t.Fatal(err)
	}
	var out struct {
		RunID  string `json:"runId"`
		Result struct {
			Added    []string `json:"added"`
			OldCount int      `json:"oldCount"`
		} `json:"result"`
		InvalidChecksums []string `json:"invalidChecksums"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.RunID != "run-1" || out.Result.OldCount != 5 || len(out.Result.Added) != 2 {
		t.Fatalf("out=%+v", out)
	}
	if len(out.InvalidChecksums) != 1 || out.InvalidChecksums[0] != "0012345678" {
		t.Fatalf("invalid=%v", out.InvalidChecksums)
	}
}

func TestClipboard(t *testing.T) {
	if got := Clipboard([]string{"1", "2"}); got != "1\n2" {
		t.Fatalf("got %q", got)
	}
	if got := Clipboard(nil); got != "" {
		t.Fatalf("got %q", got)
	}
}
