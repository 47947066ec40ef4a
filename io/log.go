package io


import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)


// ----------------------------------------------------------------------------


const (
	LOG_ERROR int = 1
	LOG_WARN  int = 2
	LOG_INFO  int = 3
	LOG_DEBUG int = 4
	LOG_TRACE int = 5
)

// A Logger object to selectively log information.
//
type Logger interface {
	// Log information likely to cause a fatal error.
	//
	Error(fstr string, args ...interface{})

	// Log information which is concerning but not (yet) causing a fatal
	// error.
	//
	Warn(fstr string, args ...interface{})

	// Log information which is not threatening the process stability but
	// is nevertheless noticeable.
	//
	Info(fstr string, args ...interface{})

	// Log information which is normally not important but can be useful
	// for debugging purpose.
	//
	Debug(fstr string, args ...interface{})

	// Log information which is only useful during development phase.
	//
	Trace(fstr string, args ...interface{})


	// Return a new `Logger` with the given `name` appended to its
	// context.
	// If additional `args` are supplied then `name` is a printf format
	// for these `args`.
	//
	WithContext(name string, args ...interface{}) Logger


	// Return an emphasized version of the `arg` value.
	// Emphasis is useful to spot values related to each others in the
	// log.
	// Because there can be several groups of related values, each group
	// can be identified with a `group` index.
	//
	// The returned value is only suitable for `%s` and `%v` verbs.
	//
	Emph(group int, arg interface{}) interface{}
}


func NewNopLogger() Logger {
	return newNopLogger()
}


func NewStderrLogger(level int) Logger {
	return newFileLogger(os.Stderr, level)
}

func NewFileLogger(file *os.File, level int) Logger {
	return newFileLogger(file, level)
}

func NewWriterLogger(writer io.Writer, level int, color bool) Logger {
	return newWriterLogger(writer, level, color)
}


// ----------------------------------------------------------------------------


type nopLogger struct {
}

func newNopLogger() *nopLogger {
	return &nopLogger{}
}

func (this *nopLogger) Error(fstr string, args ...interface{}) {
}

func (this *nopLogger) Warn(fstr string, args ...interface{}) {
}

func (this *nopLogger) Info(fstr string, args ...interface{}) {
}

func (this *nopLogger) Debug(fstr string, args ...interface{}) {
}

func (this *nopLogger) Trace(fstr string, args ...interface{}) {
}

func (this *nopLogger) WithContext(string, ...interface{}) Logger {
	return this
}

func (this *nopLogger) Emph(group int, arg interface{}) interface{} {
	return nil
}


//  - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -


const (
	log_color_none string    = "\033[0m"

	log_color_red string     = "\033[31m"
	log_color_green string   = "\033[32m"
	log_color_yellow string  = "\033[33m"
	log_color_blue string    = "\033[34m"
	log_color_magenta string = "\033[35m"
	log_color_teal string    = "\033[36m"
)

var writerLoggerPlainTags = []string{
	"", "ERROR", "WARN ", "INFO ", "DEBUG", "TRACE",
}

var writerLoggerColorTags = []string{
	"",
	log_color_red + "ERROR" + log_color_none,
	log_color_yellow + "WARN " + log_color_none,
	log_color_green + "INFO " + log_color_none,
	log_color_blue + "DEBUG" + log_color_none,
	log_color_magenta + "TRACE" + log_color_none,
}

var writerLoggerEmphColors = []string{
	log_color_teal,
	log_color_green,
	log_color_yellow,
}


type writerLogger struct {
	lock *sync.Mutex
	writer io.Writer
	level int
	color bool
	tags []string
	context string
}

func newWriterLogger(writer io.Writer, level int, color bool) *writerLogger {
	var this writerLogger

	this.lock = &sync.Mutex{}
	this.writer = writer
	this.level = level
	this.color = color
	this.context = ""

	if color {
		this.tags = writerLoggerColorTags
	} else {
		this.tags = writerLoggerPlainTags
	}

	return &this
}

func newFileLogger(file *os.File, level int) *writerLogger {
	var fi os.FileInfo
	var color bool
	var err error

	fi, err = file.Stat()

	if (err == nil) && ((fi.Mode() & os.ModeCharDevice) != 0) {
		color = true
	} else {
		color = false
	}

	return newWriterLogger(file, level, color)
}

func (this *writerLogger) WithContext(name string, args ...interface{}) Logger {
	var clogger writerLogger = *this

	if len(args) > 0 {
		name = fmt.Sprintf(name, args...)
	}

	if this.color {
		name = log_color_magenta + name + log_color_none
	}

	if len(this.context) == 0 {
		clogger.context = name + " "
	} else {
		clogger.context = this.context[:len(this.context)-1] +
			":" + name + " "
	}

	return &clogger
}

func (this *writerLogger) Emph(group int, arg interface{}) interface{} {
	var col string

	if !this.color {
		return arg
	}

	col = writerLoggerEmphColors[group % len(writerLoggerEmphColors)]

	return col + fmt.Sprint(arg) + log_color_none
}

func (this *writerLogger) log(level int, fstr string, args ...interface{}) {
	var now time.Time
	var buf bytes.Buffer

	if level > this.level {
		return
	}

	now = time.Now().UTC()

	fmt.Fprintf(&buf, "%d-%02d-%02d %02d:%02d:%02d.%09d %s %s",
		now.Year(), now.Month(), now.Day(),
		now.Hour(), now.Minute(), now.Second(), now.Nanosecond(),
		this.tags[level], this.context)

	fmt.Fprintf(&buf, fstr, args...)

	fmt.Fprintf(&buf, "\n")

	this.lock.Lock()
	this.writer.Write(buf.Bytes())
	this.lock.Unlock()
}

func (this *writerLogger) Error(fstr string, args ...interface{}) {
	this.log(LOG_ERROR, fstr, args...)
}

func (this *writerLogger) Warn(fstr string, args ...interface{}) {
	this.log(LOG_WARN, fstr, args...)
}

func (this *writerLogger) Info(fstr string, args ...interface{}) {
	this.log(LOG_INFO, fstr, args...)
}

func (this *writerLogger) Debug(fstr string, args ...interface{}) {
	this.log(LOG_DEBUG, fstr, args...)
}

func (this *writerLogger) Trace(fstr string, args ...interface{}) {
	this.log(LOG_TRACE, fstr, args...)
}
