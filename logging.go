// FILE: hydrogen-config/logging.go
package config

import (
	"sort"
	"strings"
)

const loggingKey = "Logging"

// Level indexes into LoggingConfig.Levels.
const (
	LevelAll = iota
	LevelInfo
	LevelWarn
	LevelDebug
	LevelError
	LevelCritical
	LevelNone
	levelCount
)

// DefaultLevelNames are the level names used when the document gives none.
var DefaultLevelNames = []string{"ALL", "INFO", "WARN", "DEBUG", "ERROR", "CRITICAL", "NONE"}

// seededSubsystems are present in every destination, in sorted order.
var seededSubsystems = []string{"Shutdown", "Startup"}

// LoggingConfig holds the level names and the four log destinations.
type LoggingConfig struct {
	Levels   []string
	Console  LogDestination
	File     LogDestination
	Database LogDestination
	Notify   LogDestination

	levelPaths []string
}

// LogDestination is one log sink with its default and per-subsystem levels.
type LogDestination struct {
	Enabled      bool
	DefaultLevel int
	Subsystems   SubsystemLevels
}

// SubsystemLevels is kept sorted case-insensitively. It encodes as a JSON object.
type SubsystemLevels []SubsystemLevel

// SubsystemLevel overrides the level of one subsystem.
type SubsystemLevel struct {
	Name  string
	Level int
}

// MarshalJSON encodes the levels as an object in list order.
func (s SubsystemLevels) MarshalJSON() ([]byte, error) {
	entries := make([]orderedEntry, len(s))
	for i, sub := range s {
		entries[i] = orderedEntry{key: sub.Name, value: sub.Level}
	}
	return marshalOrdered(entries)
}

func newDestination(enabled bool, level int) LogDestination {
	d := LogDestination{Enabled: enabled, DefaultLevel: level}
	for _, name := range seededSubsystems {
		d.Subsystems = append(d.Subsystems, SubsystemLevel{Name: name, Level: level})
	}
	return d
}

func (c *LoggingConfig) reset() {
	*c = LoggingConfig{
		Levels:   append([]string(nil), DefaultLevelNames...),
		Console:  newDestination(true, LevelAll),
		File:     newDestination(true, LevelInfo),
		Database: newDestination(false, LevelError),
		Notify:   newDestination(false, LevelError),
	}
	c.levelPaths = make([]string, levelCount)
	for i := range c.levelPaths {
		c.levelPaths[i] = indexPath(loggingKey+".Levels", i)
	}
}

// destinations pairs each destination with its document key.
func (c *LoggingConfig) destinations() []struct {
	key  string
	dest *LogDestination
} {
	return []struct {
		key  string
		dest *LogDestination
	}{
		{"Console", &c.Console},
		{"File", &c.File},
		{"Database", &c.Database},
		{"Notify", &c.Notify},
	}
}

func (c *LoggingConfig) levelFields() []Field {
	fields := []Field{
		SectionField(loggingKey),
	}
	for i := range c.Levels {
		path := indexPath(loggingKey+".Levels", i)
		if i < len(c.levelPaths) {
			path = c.levelPaths[i]
		}
		fields = append(fields, StringField(path, &c.Levels[i]))
	}
	return fields
}

func destinationHead(base string, d *LogDestination, names []string) []Field {
	return []Field{
		SectionField(base),
		BoolField(base+".Enabled", &d.Enabled),
		LevelField(base+".DefaultLevel", &d.DefaultLevel, names),
	}
}

func subsystemFields(base string, d *LogDestination, names []string) []Field {
	fields := []Field{SectionField(base + ".Subsystems")}
	for i := range d.Subsystems {
		sub := &d.Subsystems[i]
		fields = append(fields, LevelField(base+".Subsystems."+sub.Name, &sub.Level, names))
	}
	return fields
}

func (c *LoggingConfig) fields() []Field {
	fields := c.levelFields()
	for _, d := range c.destinations() {
		base := loggingKey + "." + d.key
		fields = append(fields, destinationHead(base, d.dest, c.Levels)...)
		fields = append(fields, subsystemFields(base, d.dest, c.Levels)...)
	}
	return fields
}

func (c *LoggingConfig) load(p *Processor) error {
	c.reset()
	doc := p.Document()
	log := p.Logger("Logging")

	// Level entries are either "NAME" or [value, "NAME"]
	if levels, ok := doc.Array(loggingKey + ".Levels"); ok {
		p.mark(loggingKey + ".Levels")
		if len(levels) > levelCount {
			log.Warn().Int("count", len(levels)).Msg("ignoring level names beyond the first 7")
		}
		for i := 0; i < len(levels) && i < levelCount; i++ {
			if pair, isPair := levels[i].([]any); isPair && len(pair) == 2 {
				c.levelPaths[i] = indexPath(c.levelPaths[i], 1)
				p.mark(indexPath(indexPath(loggingKey+".Levels", i), 0))
			}
		}
	}
	if err := p.Process("Logging", c.levelFields()...); err != nil {
		return err
	}

	for _, d := range c.destinations() {
		base := loggingKey + "." + d.key
		if err := p.Process("Logging", destinationHead(base, d.dest, c.Levels)...); err != nil {
			return err
		}

		// Seed at the resolved default, then add document subsystems
		for i := range d.dest.Subsystems {
			d.dest.Subsystems[i].Level = d.dest.DefaultLevel
		}
		subsPath := base + ".Subsystems"
		if obj, ok := doc.Object(subsPath); ok {
			for _, name := range doc.Keys(subsPath) {
				if !isSubsystemValue(obj[name]) || !isValidKeySegment(name) {
					log.Warn().Str("path", joinPath(subsPath, name)).Msg("skipping subsystem without an integer level")
					continue
				}
				d.dest.addSubsystem(name)
			}
		}
		if err := p.Process("Logging", subsystemFields(base, d.dest, c.Levels)...); err != nil {
			return err
		}
	}
	return nil
}

func isSubsystemValue(val any) bool {
	if _, ok := asInt64(val); ok {
		return true
	}
	s, ok := val.(string)
	return ok && IsEnvRef(s)
}

// addSubsystem inserts name at the destination default level, keeping order.
func (d *LogDestination) addSubsystem(name string) {
	for _, sub := range d.Subsystems {
		if sub.Name == name {
			return
		}
	}
	d.Subsystems = append(d.Subsystems, SubsystemLevel{Name: name, Level: d.DefaultLevel})
	sort.SliceStable(d.Subsystems, func(i, j int) bool {
		return strings.ToLower(d.Subsystems[i].Name) < strings.ToLower(d.Subsystems[j].Name)
	})
}

func (c *LoggingConfig) validate() error {
	if len(c.Levels) != levelCount {
		return invalid("Logging", "Levels", "expected %d level names, got %d", levelCount, len(c.Levels))
	}
	for i, name := range c.Levels {
		if strings.TrimSpace(name) == "" {
			return invalid("Logging", indexPath("Levels", i), "level name must not be empty")
		}
	}
	return nil
}

// SubsystemLevel returns the level for a subsystem, falling back to the
// destination default. Names compare case-insensitively.
func (d LogDestination) SubsystemLevel(name string) int {
	for _, sub := range d.Subsystems {
		if strings.EqualFold(sub.Name, name) {
			return sub.Level
		}
	}
	return d.DefaultLevel
}

// LevelName returns the configured name for a level index.
func (c *LoggingConfig) LevelName(level int) string {
	if level < 0 || level >= len(c.Levels) {
		return ""
	}
	return c.Levels[level]
}
