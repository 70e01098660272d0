package pipeline

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"inndiff/internal/pdftable"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = bytes.NewBuffer(nil)
	return log
}

func TestCompareEndToEnd(t *testing.T) {
	oldPath := rosterPDF(t, "old.pdf", "1234567890", "9876543210")
	newPath := rosterPDF(t, "new.pdf", "1234567890", "1111111111")

	report, err := NewComparer(testConfig(t), quietLogger()).Compare(oldPath, newPath)
	if err != nil {
		t.Fatal(err)
	}
	res := report.Result
	if !reflect.DeepEqual(res.Added, []string{"1111111111"}) || !reflect.DeepEqual(res.Removed, []string{"9876543210"}) {
		t.Fatalf("res=%+v", res)
	}
	if res.OldCount != 2 || res.NewCount != 2 {
		t.Fatalf("counts=%d/%d", res.OldCount, res.NewCount)
	}
	if report.RunID == "" || report.OldPath != oldPath || report.NewPath != newPath {
		t.Fatalf("report=%+v", report)
	}
}

func TestCompareReportsFailingSide(t *testing.T) {
	oldPath := rosterPDF(t, "old.pdf", "1234567890")
	missing := filepath.Join(t.TempDir(), "new.pdf")

	_, err := NewComparer(testConfig(t), quietLogger()).Compare(oldPath, missing)
	if err == nil || !strings.HasPrefix(err.Error(), "new document:") {
		t.Fatalf("err=%v", err)
	}
	var docErr *pdftable.DocumentReadError
	if !errors.As(err, &docErr) || docErr.Path != missing {
		t.Fatalf("err=%v", err)
	}
}
