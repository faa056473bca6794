// Package pricebook keeps the current unit price table and refreshes it
// on a schedule from a file or the price database.
package pricebook

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"Takeoff/internal/calc/pricing"
	"Takeoff/internal/logger"
)

// Source loads a full price table.
type Source interface {
	Prices(ctx context.Context) (pricing.Table, error)
}

// FileSource reads a YAML file of the form
//
//	prices:
//	  cement: 520
//	  steel: 92.5
type FileSource struct {
	Path string
}

type priceFile struct {
	Prices pricing.Table `yaml:"prices"`
}

func (s FileSource) Prices(ctx context.Context) (pricing.Table, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read price file: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML decodes and validates a price file.
func ParseYAML(data []byte) (pricing.Table, error) {
	var f priceFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse price file: %w", err)
	}
	if f.Prices == nil {
		f.Prices = pricing.Table{}
	}
	if err := f.Prices.Validate(); err != nil {
		return nil, fmt.Errorf("price file: %w", err)
	}
	return f.Prices, nil
}

// Static always returns the same table.
type Static pricing.Table

func (s Static) Prices(context.Context) (pricing.Table, error) {
	return pricing.Table(s), nil
}

// Book caches the latest table from its source.
type Book struct {
	src Source
	log *logger.Logger

	mu      sync.RWMutex
	table   pricing.Table
	updated time.Time

	cron *cron.Cron
}

func New(src Source, log *logger.Logger) *Book {
	return &Book{src: src, log: log, table: pricing.Table{}}
}

// Table returns a copy of the current table.
func (b *Book) Table() pricing.Table {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(pricing.Table, len(b.table))
	for k, v := range b.table {
		out[k] = v
	}
	return out
}

// Updated is the time of the last successful refresh.
func (b *Book) Updated() time.Time {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.updated
}

// Refresh reloads the table. On failure the previous table stays in place.
func (b *Book) Refresh(ctx context.Context) error {
	t, err := b.src.Prices(ctx)
	if err == nil {
		err = t.Validate()
	}
	if err != nil {
		b.log.Warn("price book refresh failed, keeping %d prices: %v", len(b.Table()), err)
		return err
	}
	b.mu.Lock()
	b.table = t
	b.updated = time.Now()
	b.mu.Unlock()
	b.log.Debug("price book refreshed: %d prices", len(t))
	return nil
}

// Start schedules Refresh with a cron spec such as "@every 15m". A run
// still in progress makes the next one skip.
func (b *Book) Start(spec string) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		b.Refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule price refresh %q: %w", spec, err)
	}
	b.cron = c
	c.Start()
	return nil
}

// Stop halts the schedule and waits for a running refresh.
func (b *Book) Stop() {
	if b.cron == nil {
		return
	}
	<-b.cron.Stop().Done()
}
