package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(999), "UNKNOWN"},
	}

	for _, test := range tests {
		result := test.level.String()
		if result != test.expected {
			t.Errorf("LogLevel(%d).String() = %s, expected %s", test.level, result, test.expected)
		}
	}
}

func TestLogLevel_SlogLevel(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected slog.Level
	}{
		{LevelDebug, slog.LevelDebug},
		{LevelInfo, slog.LevelInfo},
		{LevelWarn, slog.LevelWarn},
		{LevelError, slog.LevelError},
		{LogLevel(999), slog.LevelInfo}, // Default for unknown
	}

	for _, test := range tests {
		result := test.level.SlogLevel()
		if result != test.expected {
			t.Errorf("LogLevel(%d).SlogLevel() = %v, expected %v", test.level, result, test.expected)
		}
	}
}

func TestInitForCLI(t *testing.T) {
	var buf bytes.Buffer

	InitForCLI(LevelInfo, &buf)

	Info("TestSubsystem", "hello %s", "world")

	output := buf.String()
	if !strings.Contains(output, "hello world") {
		t.Errorf("Expected output to contain message, got: %s", output)
	}
	if !strings.Contains(output, "TestSubsystem") {
		t.Errorf("Expected output to contain subsystem, got: %s", output)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	InitForCLI(LevelWarn, &buf)

	Debug("Filter", "debug message")
	Info("Filter", "info message")
	Warn("Filter", "warn message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Errorf("Debug message should be filtered at Warn level, got: %s", output)
	}
	if strings.Contains(output, "info message") {
		t.Errorf("Info message should be filtered at Warn level, got: %s", output)
	}
	if !strings.Contains(output, "warn message") {
		t.Errorf("Warn message should pass the filter, got: %s", output)
	}
}

func TestErrorIncludesErrAttribute(t *testing.T) {
	var buf bytes.Buffer

	InitForCLI(LevelDebug, &buf)

	Error("Pool", errors.New("dispose failed"), "cleanup of server %s failed", "srv-1")

	output := buf.String()
	if !strings.Contains(output, "dispose failed") {
		t.Errorf("Expected error attribute in output, got: %s", output)
	}
	if !strings.Contains(output, "cleanup of server srv-1 failed") {
		t.Errorf("Expected formatted message in output, got: %s", output)
	}
}
