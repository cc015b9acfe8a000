package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rollsgame/casino/internal/config"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name    string
		lvl     string
		wantErr bool
	}{
		{name: "info level", lvl: "info"},
		{name: "debug level", lvl: "debug"},
		{name: "error level", lvl: "error"},
		{name: "unsupported level", lvl: "trace", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.lvl})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
