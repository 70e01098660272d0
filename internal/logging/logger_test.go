package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewWithWriterJSON(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	log := NewWithWriter(buf, "debug", true)
	log.WithField("run_id", "abc").Debug("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("not json: %v %q", err, buf.String())
	}
	if entry["run_id"] != "abc" || entry["msg"] != "hello" {
		t.Fatalf("entry=%v", entry)
	}
}

func TestNewWithWriterBadLevel(t *testing.T) {
	log := NewWithWriter(bytes.NewBuffer(nil), "loud", false)
	if log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level=%v", log.GetLevel())
	}
}
