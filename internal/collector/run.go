package collector

import (
	"fmt"
	"log/slog"
	"os"
)

// Emitter is the metric sink for a collection pass.
type Emitter interface {
	Gauge(name string, value int, tags []string) error
}

// Run performs one full pass over the status file at path: parse each
// section, validate it, and hand one temperature gauge per valid device to
// em, in file order. It returns how many gauges were emitted.
//
// A missing or unreadable status file is the only fatal condition. Invalid
// sections are logged and skipped; emitter write failures are logged and
// the pass continues, since UDP delivery is best-effort anyway and the
// next scheduled run supersedes this sample.
func Run(path, prefix string, em Emitter, log *slog.Logger) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open status file: %w", err)
	}
	defer f.Close()

	metric := prefix + ".temperature"
	sent := 0

	err = ParseSections(f, func(raw RawRecord) {
		dev, err := Validate(raw)
		if err != nil {
			log.Debug("skipping section", "name", raw[keyName], "reason", err)
			return
		}
		if err := em.Gauge(metric, dev.Temp, dev.Tags()); err != nil {
			log.Debug("gauge write failed", "disk", dev.Name, "error", err)
		}
		sent++
		log.Debug("reported", "disk", dev.Name, "temp", dev.Temp)
	})
	if err != nil {
		return sent, fmt.Errorf("read status file: %w", err)
	}

	return sent, nil
}

// Collect parses and validates the status file without emitting anything.
// Used by the check command to show what a pass would report.
func Collect(path string, log *slog.Logger) ([]DeviceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open status file: %w", err)
	}
	defer f.Close()

	var devices []DeviceRecord
	err = ParseSections(f, func(raw RawRecord) {
		dev, err := Validate(raw)
		if err != nil {
			log.Debug("skipping section", "name", raw[keyName], "reason", err)
			return
		}
		devices = append(devices, *dev)
	})
	if err != nil {
		return nil, fmt.Errorf("read status file: %w", err)
	}

	return devices, nil
}
