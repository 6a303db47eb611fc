package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricFrames = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "filepane",
		Subsystem: "engine",
		Name:      "frames_total",
		Help:      "Number of frames laid out, painted and flushed.",
	})

	metricBodies = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "filepane",
		Subsystem: "engine",
		Name:      "bodies_total",
		Help:      "Event bodies received from the mailbox, by delivery mode.",
	}, []string{"mode"})

	metricEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "filepane",
		Subsystem: "engine",
		Name:      "events_total",
		Help:      "UI events applied to the screen tree, by event type.",
	}, []string{"event"})

	metricCells = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "filepane",
		Subsystem: "engine",
		Name:      "cells_flushed_total",
		Help:      "Cells written to the terminal.",
	})

	metricFrameDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "filepane",
		Subsystem: "engine",
		Name:      "frame_duration_seconds",
		Help:      "Time to lay out, paint and flush one frame.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12), // 100µs to ~200ms
	})

	metricMailboxDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "filepane",
		Subsystem: "engine",
		Name:      "mailbox_depth",
		Help:      "Bodies waiting in the mailbox after the last receive.",
	})
)
