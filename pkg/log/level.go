package log

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tytanic-dev/tytanic/internal/errors"
)

// Our levels sit two positions above logrus so that logrus panic and fatal are never used.
const shiftLogrusLevel = 2

// These are the different logging levels.
const (
	// StderrLevel is used for output that must always reach stderr.
	StderrLevel Level = iota
	// StdoutLevel is used for output that must always reach stdout.
	StdoutLevel
	// ErrorLevel is used for errors that should definitely be noted.
	ErrorLevel
	// WarnLevel is used for non-critical entries that deserve eyes.
	WarnLevel
	// InfoLevel is used for general operational entries.
	InfoLevel
	// DebugLevel is usually only enabled when debugging.
	DebugLevel
	// TraceLevel designates finer-grained events than Debug, such as per test filter decisions.
	TraceLevel
)

// AllLevels exposes all logging levels.
var AllLevels = Levels{
	StderrLevel,
	StdoutLevel,
	ErrorLevel,
	WarnLevel,
	InfoLevel,
	DebugLevel,
	TraceLevel,
}

var levelNames = map[Level]string{
	StderrLevel: "stderr",
	StdoutLevel: "stdout",
	ErrorLevel:  "error",
	WarnLevel:   "warn",
	InfoLevel:   "info",
	DebugLevel:  "debug",
	TraceLevel:  "trace",
}

var levelShortNames = map[Level]string{
	StderrLevel: "std",
	StdoutLevel: "std",
	ErrorLevel:  "err",
	WarnLevel:   "wrn",
	InfoLevel:   "inf",
	DebugLevel:  "deb",
	TraceLevel:  "trc",
}

// Level type
type Level uint32

// ParseLevel takes a string and returns the Level constant.
func ParseLevel(str string) (Level, error) {
	for _, level := range AllLevels {
		if strings.EqualFold(levelNames[level], str) {
			return level, nil
		}
	}

	return Level(0), errors.Errorf("invalid level %q, supported levels: %s", str, AllLevels)
}

// String implements fmt.Stringer.
func (level Level) String() string {
	return levelNames[level]
}

// ShortName returns the three letter form used by the pretty formatter.
func (level Level) ShortName() string {
	return levelShortNames[level]
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (level *Level) UnmarshalText(text []byte) error {
	lvl, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*level = lvl

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (level Level) MarshalText() ([]byte, error) {
	if name := level.String(); name != "" {
		return []byte(name), nil
	}

	return nil, errors.Errorf("invalid level: %d", level)
}

// ToLogrusLevel converts our level to the logrus one.
func (level Level) ToLogrusLevel() logrus.Level {
	return logrus.Level(level + shiftLogrusLevel)
}

// FromLogrusLevel converts a logrus level back to ours.
func FromLogrusLevel(lvl logrus.Level) Level {
	if lvl < shiftLogrusLevel {
		return StderrLevel
	}

	return Level(lvl - shiftLogrusLevel)
}

type Levels []Level

// Names returns the level names in order.
func (levels Levels) Names() []string {
	strs := make([]string, len(levels))

	for i, level := range levels {
		strs[i] = level.String()
	}

	return strs
}

func (levels Levels) String() string {
	return strings.Join(levels.Names(), ", ")
}
