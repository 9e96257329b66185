package log

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mgutz/ansi"
	"github.com/sirupsen/logrus"
)

const defaultTimestampFormat = "15:04:05.000"

// Formatter is used to implement a custom Formatter.
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// Entry is the final logging entry.
type Entry struct {
	*logrus.Entry
	Level  Level
	Fields Fields
}

// fromLogrusFormatter converts call from logrus.Formatter interface to our Formatter interface.
type fromLogrusFormatter struct {
	Formatter
}

func (f *fromLogrusFormatter) Format(parent *logrus.Entry) ([]byte, error) {
	entry := &Entry{
		Entry:  parent,
		Level:  FromLogrusLevel(parent.Level),
		Fields: Fields(parent.Data),
	}

	return f.Formatter.Format(entry)
}

var levelColors = map[Level]string{
	StderrLevel: "red",
	StdoutLevel: "white",
	ErrorLevel:  "red",
	WarnLevel:   "yellow",
	InfoLevel:   "green",
	DebugLevel:  "blue+h",
	TraceLevel:  "white",
}

// PrettyFormatter writes `time level [prefix] message key=value` lines.
type PrettyFormatter struct {
	TimestampFormat  string
	DisableColors    bool
	DisableTimestamp bool
}

// NewPrettyFormatter returns a new PrettyFormatter instance with default values.
func NewPrettyFormatter() *PrettyFormatter {
	return &PrettyFormatter{
		TimestampFormat: defaultTimestampFormat,
	}
}

// Format implements Formatter.
func (formatter *PrettyFormatter) Format(entry *Entry) ([]byte, error) {
	buf := entry.Buffer
	if buf == nil {
		buf = new(bytes.Buffer)
	}

	if entry.Level == StdoutLevel || entry.Level == StderrLevel {
		buf.WriteString(entry.Message)
		buf.WriteByte('\n')

		return buf.Bytes(), nil
	}

	if !formatter.DisableTimestamp {
		buf.WriteString(formatter.colorize("black+h", entry.Time.Format(formatter.TimestampFormat)))
		buf.WriteByte(' ')
	}

	buf.WriteString(formatter.colorize(levelColors[entry.Level], strings.ToUpper(fmt.Sprintf("%-5s", entry.Level))))
	buf.WriteByte(' ')

	if prefix, ok := entry.Fields[FieldKeyPrefix]; ok {
		fmt.Fprintf(buf, "[%v] ", prefix)
	}

	buf.WriteString(entry.Message)

	for _, key := range entry.Fields.Keys(FieldKeyPrefix) {
		fmt.Fprintf(buf, " %s=%v", formatter.colorize("cyan", key), entry.Fields[key])
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

func (formatter *PrettyFormatter) colorize(style, str string) string {
	if formatter.DisableColors || style == "" {
		return str
	}

	return ansi.Color(str, style)
}
