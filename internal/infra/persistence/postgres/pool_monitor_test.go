package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Report(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur sql.DBStats
		want      string
	}{
		{
			name: "no waits",
			prev: sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			cur:  sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
		},
		{
			name: "short waits",
			prev: sql.DBStats{WaitCount: 1},
			cur:  sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond},
			want: "level=DEBUG",
		},
		{
			name: "long waits",
			cur:  sql.DBStats{WaitCount: 2, WaitDuration: 120 * time.Millisecond},
			want: "level=WARN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			m := &poolMonitor{logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

			m.report(context.Background(), tt.prev, tt.cur)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "Postgres pool wait")
		})
	}
}

func TestPoolMonitor_StopWithoutStart(t *testing.T) {
	m := &poolMonitor{}
	assert.NotPanics(t, m.stop)
}

func TestPoolMonitor_StartStop(t *testing.T) {
	m := &poolMonitor{
		logger: slog.New(slog.DiscardHandler),
		stats:  func() sql.DBStats { return sql.DBStats{} },
	}
	m.start()
	m.stop()
}
