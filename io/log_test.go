package io


import (
	"bytes"
	"io"
	"strings"
	"testing"
)


// ----------------------------------------------------------------------------


func TestWriterLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	var log Logger = NewWriterLogger(&buf, LOG_INFO, false)

	log.Info("some message %d", 42)
	log.Debug("suppressed message")

	if !strings.Contains(buf.String(), "some message 42") {
		t.Errorf("log should contain message: %q", buf.String())
	}

	if !strings.Contains(buf.String(), "INFO") {
		t.Errorf("log should contain level tag: %q", buf.String())
	}

	if strings.Contains(buf.String(), "suppressed message") {
		t.Errorf("log should suppress message: %q", buf.String())
	}
}

func TestWriterLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	var log Logger = NewWriterLogger(&buf, LOG_TRACE, false)

	log.WithContext("outer").WithContext("inner %d", 0).
		Trace("some message")

	if !strings.Contains(buf.String(), "outer:inner 0 some message") {
		t.Errorf("log should contain contexts: %q", buf.String())
	}
}

func TestWriterLoggerEmph(t *testing.T) {
	var buf bytes.Buffer
	var plain Logger = NewWriterLogger(&buf, LOG_TRACE, false)
	var color Logger = NewWriterLogger(&buf, LOG_TRACE, true)

	if plain.Emph(0, 42) != 42 {
		t.Errorf("plain emphasis should be transparent")
	}

	color.Trace("some message %v", color.Emph(0, 42))

	if !strings.Contains(buf.String(), "42") {
		t.Errorf("log should contain value: %q", buf.String())
	}
}

func TestNopLogger(t *testing.T) {
	var log Logger = NewNopLogger()

	log.Error("some message")
	log.WithContext("ctx").Trace("some message %v", log.Emph(0, 42))
}


// ----------------------------------------------------------------------------


type nopWriter struct {
}

func newNopWriter() *nopWriter {
	return &nopWriter{}
}

func (this *nopWriter) Write(b []byte) (int, error) {
	return len(b), nil
}


func BenchmarkNopLog(b *testing.B) {
	var log Logger = NewNopLogger()
	var i int

	for i = 0; i < b.N; i++ {
		log.Trace("Formatting string %s %d %v", "foo", 42, struct{}{})
	}
}

func BenchmarkWriterLogSuppressed(b *testing.B) {
	var writer io.Writer = newNopWriter()
	var log Logger = NewWriterLogger(writer, LOG_INFO, false)
	var i int

	for i = 0; i < b.N; i++ {
		log.Trace("Formatting string %s %d %v", "foo", 42, struct{}{})
	}
}

func BenchmarkWriterLog(b *testing.B) {
	var writer io.Writer = newNopWriter()
	var log Logger = NewWriterLogger(writer, LOG_TRACE, false)
	var i int

	for i = 0; i < b.N; i++ {
		log.Trace("Formatting string %s %d %v", "foo", 42, struct{}{})
	}
}
