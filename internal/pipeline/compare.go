package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"inndiff/internal"
	"inndiff/internal/config"
)

type Comparer struct {
	collector *Collector
	log       logrus.FieldLogger
}

func NewComparer(cfg config.Config, log logrus.FieldLogger) *Comparer {
	return &Comparer{collector: NewCollector(cfg), log: log}
}

// Compare collects both documents, old first, and reconciles them.
func (c *Comparer) Compare(oldPath, newPath string) (internal.CompareReport, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := c.log.WithField("run_id", runID)

	oldIDs, err := c.collect(log, internal.SideOld, oldPath)
	if err != nil {
		return internal.CompareReport{}, err
	}
	newIDs, err := c.collect(log, internal.SideNew, newPath)
	if err != nil {
		return internal.CompareReport{}, err
	}

	result := Reconcile(oldIDs, newIDs)
	report := internal.CompareReport{
		RunID:     runID,
		OldPath:   oldPath,
		NewPath:   newPath,
		StartedAt: start,
		Duration:  time.Since(start),
		Result:    result,
	}

	log.WithFields(logrus.Fields{
		"added":    len(result.Added),
		"removed":  len(result.Removed),
		"duration": report.Duration.String(),
	}).Info("compare done")
	return report, nil
}

func (c *Comparer) collect(log logrus.FieldLogger, side internal.Side, path string) ([]string, error) {
	ids, err := c.collector.CollectSide(side, path)
	if err != nil {
		return nil, fmt.Errorf("%s document: %w", side, err)
	}
	log.WithFields(logrus.Fields{"side": side, "path": path, "ids": len(ids)}).Debug("collected identifiers")
	return ids, nil
}
