package log

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Thierrix/ml-project-2-armageddon/pkg/errors"
)

func TestTestLoggerCapturesFields(t *testing.T) {
	logger, _ := NewTestLogger(LevelDebug)

	logger.Info("calibrating scalers",
		OperationKey, OperationSetScalers,
		RowsKey, 120,
	)
	logger.Debug("split sizes",
		SplitKey, SplitTrain,
	)

	entries, err := logger.GetLogEntries()
	if err != nil {
		t.Fatalf("GetLogEntries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("captured %d entries, want 2", len(entries))
	}
	if !logger.ContainsField(OperationKey, OperationSetScalers) {
		t.Error("expected set_scalers operation field")
	}
	if !logger.ContainsMessage("split sizes") {
		t.Error("expected split sizes message")
	}
}

func TestTestLoggerLevelFiltering(t *testing.T) {
	logger, buffer := NewTestLogger(LevelWarn)

	logger.Info("suppressed")
	logger.Warn("emitted")

	if strings.Contains(buffer.String(), "suppressed") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(buffer.String(), "emitted") {
		t.Error("warn record should be captured")
	}
	if logger.Enabled(context.Background(), LevelDebug) {
		t.Error("debug should not be enabled at warn level")
	}
}

func TestTestLoggerWith(t *testing.T) {
	logger, _ := NewTestLogger(LevelInfo)
	tagged := logger.With(FormatterKey, "VolatilityFormatter")

	tagged.Info("transforming inputs")

	if !logger.ContainsField(FormatterKey, "VolatilityFormatter") {
		t.Error("With fields should appear on subsequent records")
	}
}

func TestZerologProviderEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	provider := NewZerologProvider(&buf)

	logger := provider.GetLoggerWithName("formatters.volatility")
	logger.Info("splits formatted", SplitKey, SplitTest, RowsKey, 7)

	out := buf.String()
	for _, want := range []string{"formatters.volatility", "splits formatted", SplitKey, `"data.rows":7`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestZerologProviderWarningHook(t *testing.T) {
	var buf bytes.Buffer
	provider := NewZerologProvider(&buf)
	provider.InstallWarningHook()
	defer errors.SetZerologWarnFunc(nil)

	errors.Warn(errors.NewUnseenLabelError("STOCK", "TSLA"))

	out := buf.String()
	if !strings.Contains(out, "UnseenLabelError") {
		t.Errorf("structured warning fields missing from %q", out)
	}
	if !strings.Contains(out, "TSLA") {
		t.Errorf("label missing from %q", out)
	}
}

func TestToLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
	}
	for _, tt := range tests {
		if got := ToLogLevel(tt.in); got != tt.want {
			t.Errorf("ToLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("invalid level should panic")
		}
	}()
	ToLogLevel("verbose")
}
