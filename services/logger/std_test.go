package logsvc

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdLogger(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		log     func(l *StdLogger)
		want    []string
		notWant []string
	}{
		{
			name: "info with args",
			log:  func(l *StdLogger) { l.Info("student added", map[string]interface{}{"student_id": "S001"}) },
			want: []string{"INFO: student added", "student_id:S001"},
		},
		{
			name: "warn with error",
			log:  func(l *StdLogger) { l.Warn("final grade rejected", errors.New("No evaluations provided")) },
			want: []string{"WARN: final grade rejected", "No evaluations provided"},
		},
		{
			name:    "debug disabled",
			log:     func(l *StdLogger) { l.Debug("evaluation added") },
			notWant: []string{"evaluation added"},
		},
		{
			name:  "debug enabled",
			debug: true,
			log:   func(l *StdLogger) { l.Debug("evaluation added") },
			want:  []string{"DEBUG: evaluation added"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buff bytes.Buffer
			tt.log(NewStdLogger(&buff, "TEST : ", tt.debug))
			for _, s := range tt.want {
				assert.Contains(t, buff.String(), s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, buff.String(), s)
			}
		})
	}
}
