package lstore

import "github.com/VictoriaMetrics/metrics"

// storeMetrics holds the counters of one store instance
type storeMetrics struct {
	added             *metrics.Counter
	removed           *metrics.Counter
	readStatusUpdates *metrics.Counter
	validationErrors  *metrics.Counter
	saves             *metrics.Counter
	saveErrors        *metrics.Counter
	loadCorrupt       *metrics.Counter
	loadIO            *metrics.Counter
	saveDuration      *metrics.Histogram
}

func newStoreMetrics(set *metrics.Set, size func() int) *storeMetrics {
	set.GetOrCreateGauge("lsm_store_books", func() float64 {
		return float64(size())
	})

	return &storeMetrics{
		added:             set.GetOrCreateCounter("lsm_store_books_added_total"),
		removed:           set.GetOrCreateCounter("lsm_store_books_removed_total"),
		readStatusUpdates: set.GetOrCreateCounter("lsm_store_read_status_updates_total"),
		validationErrors:  set.GetOrCreateCounter("lsm_store_validation_errors_total"),
		saves:             set.GetOrCreateCounter("lsm_store_saves_total"),
		saveErrors:        set.GetOrCreateCounter("lsm_store_save_errors_total"),
		loadCorrupt:       set.GetOrCreateCounter(`lsm_store_load_errors_total{kind="corrupt"}`),
		loadIO:            set.GetOrCreateCounter(`lsm_store_load_errors_total{kind="io"}`),
		saveDuration:      set.GetOrCreateHistogram("lsm_store_save_duration_seconds"),
	}
}
