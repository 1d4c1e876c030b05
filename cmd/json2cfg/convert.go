package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	mtp "github.com/rmera/gomtp"
	"github.com/rmera/gomtp/mtpjson"
	"github.com/rmera/gomtp/mtpplot"
)

// convert reads the training set, writes the cfg file and, if asked, the energy plot.
// It returns the summary of the pool.
func convert(cfg *Config, l *logger) (*mtp.Summary, error) {
	opts, err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	start := time.Now()
	//the loader reports disordered sites through the standard logger.
	log.SetOutput(l.Writer())
	log.SetPrefix(l.Prefix())

	l.Debugf("reading %s", cfg.Input)
	data, err := mtpjson.ReadFile(cfg.Input)
	if err != nil {
		return nil, err
	}
	records, err := data.Pool()
	if err != nil {
		return nil, err
	}
	elements, err := mtp.ElementTable(data.Structures)
	if err != nil {
		return nil, err
	}
	l.Debugf("%d records, elements %s", len(records), strings.Join(elements, " "))
	l.Debugf("writing %s (%s, %d workers)", cfg.Output, opts.Version, opts.Workers)
	name, err := mtp.WritePool(elements, records, cfg.Output, opts)
	if err != nil {
		return nil, err
	}
	s := mtp.Summarize(records)
	for _, line := range strings.Split(s.String(), "\n") {
		l.Println(line)
	}
	if h := s.Histogram(cfg.Bins); h != nil {
		l.Debugf("energy per atom histogram:\n%s", h)
	}
	if cfg.Plot != "" {
		if err := mtpplot.EnergyHistogram(s, cfg.Bins, cfg.Plot); err != nil {
			return s, fmt.Errorf("failed to plot the energies: %w", err)
		}
		l.Debugf("energy histogram saved to %s", cfg.Plot)
	}
	l.Printf("wrote %d configurations to %s in %s", s.Structures, name, time.Since(start).Round(time.Millisecond))
	return s, nil
}
