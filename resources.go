// FILE: hydrogen-config/resources.go
package config

const resourcesKey = "Resources"

// ResourcesConfig limits what the server may consume.
type ResourcesConfig struct {
	Memory                  MemoryLimits
	Queues                  QueueLimits
	PostProcessorBufferSize int
	Threads                 ThreadLimits
	Files                   FileLimits
	Monitoring              MonitoringConfig
}

// MemoryLimits bound memory use. Buffer sizes are in bytes.
type MemoryLimits struct {
	MaxMemoryMB   int
	MaxBufferSize int
	MinBufferSize int
}

// QueueLimits cap queue sizes.
type QueueLimits struct {
	MaxQueueSize     int
	MaxQueueMemoryMB int
	MaxQueueBlocks   int
	QueueTimeoutMS   int
}

// ThreadLimits cap worker threads.
type ThreadLimits struct {
	MinThreads      int
	MaxThreads      int
	ThreadStackSize int
}

// FileLimits cap open files and file sizes.
type FileLimits struct {
	MaxOpenFiles  int
	MaxFileSizeMB int
	MaxLogSizeMB  int
}

// MonitoringConfig controls resource sampling.
type MonitoringConfig struct {
	EnforceLimits   bool
	LogUsage        bool
	CheckIntervalMS int
}

func (c *ResourcesConfig) reset() {
	*c = ResourcesConfig{
		Memory: MemoryLimits{
			MaxMemoryMB:   1024,
			MaxBufferSize: 1048576,
			MinBufferSize: 1024,
		},
		Queues: QueueLimits{
			MaxQueueSize:     10000,
			MaxQueueMemoryMB: 100,
			MaxQueueBlocks:   1000,
			QueueTimeoutMS:   5000,
		},
		PostProcessorBufferSize: 65536,
		Threads: ThreadLimits{
			MinThreads:      4,
			MaxThreads:      32,
			ThreadStackSize: 1048576,
		},
		Files: FileLimits{
			MaxOpenFiles:  1024,
			MaxFileSizeMB: 100,
			MaxLogSizeMB:  50,
		},
		Monitoring: MonitoringConfig{
			EnforceLimits:   true,
			LogUsage:        false,
			CheckIntervalMS: 60000,
		},
	}
}

func (c *ResourcesConfig) fields() []Field {
	k := resourcesKey + "."
	return []Field{
		SectionField(resourcesKey),
		SectionField(k + "Memory"),
		IntField(k+"Memory.MaxMemoryMB", &c.Memory.MaxMemoryMB),
		SizeField(k+"Memory.MaxBufferSize", &c.Memory.MaxBufferSize),
		SizeField(k+"Memory.MinBufferSize", &c.Memory.MinBufferSize),
		SectionField(k + "Queues"),
		IntField(k+"Queues.MaxQueueSize", &c.Queues.MaxQueueSize),
		IntField(k+"Queues.MaxQueueMemoryMB", &c.Queues.MaxQueueMemoryMB),
		IntField(k+"Queues.MaxQueueBlocks", &c.Queues.MaxQueueBlocks),
		IntField(k+"Queues.QueueTimeoutMS", &c.Queues.QueueTimeoutMS),
		SizeField(k+"PostProcessorBufferSize", &c.PostProcessorBufferSize),
		SectionField(k + "Threads"),
		IntField(k+"Threads.MinThreads", &c.Threads.MinThreads),
		IntField(k+"Threads.MaxThreads", &c.Threads.MaxThreads),
		SizeField(k+"Threads.ThreadStackSize", &c.Threads.ThreadStackSize),
		SectionField(k + "Files"),
		IntField(k+"Files.MaxOpenFiles", &c.Files.MaxOpenFiles),
		IntField(k+"Files.MaxFileSizeMB", &c.Files.MaxFileSizeMB),
		IntField(k+"Files.MaxLogSizeMB", &c.Files.MaxLogSizeMB),
		SectionField(k + "Monitoring"),
		BoolField(k+"Monitoring.EnforceLimits", &c.Monitoring.EnforceLimits),
		BoolField(k+"Monitoring.LogUsage", &c.Monitoring.LogUsage),
		IntField(k+"Monitoring.CheckIntervalMS", &c.Monitoring.CheckIntervalMS),
	}
}

func (c *ResourcesConfig) load(p *Processor) error {
	c.reset()
	return p.Process("Resources", c.fields()...)
}

func (c *ResourcesConfig) validate() error {
	const s = "Resources"
	if err := firstError(
		checkMin(s, "Memory.MaxMemoryMB", c.Memory.MaxMemoryMB, 1),
		checkMin(s, "Memory.MaxBufferSize", c.Memory.MaxBufferSize, 1),
		checkMin(s, "Memory.MinBufferSize", c.Memory.MinBufferSize, 1),
		checkMin(s, "Queues.MaxQueueSize", c.Queues.MaxQueueSize, 1),
		checkMin(s, "Queues.MaxQueueMemoryMB", c.Queues.MaxQueueMemoryMB, 1),
		checkMin(s, "Queues.MaxQueueBlocks", c.Queues.MaxQueueBlocks, 1),
		checkMin(s, "Queues.QueueTimeoutMS", c.Queues.QueueTimeoutMS, 1),
		checkMin(s, "PostProcessorBufferSize", c.PostProcessorBufferSize, 1),
		checkMin(s, "Threads.MinThreads", c.Threads.MinThreads, 1),
		checkMin(s, "Threads.MaxThreads", c.Threads.MaxThreads, 1),
		checkMin(s, "Threads.ThreadStackSize", c.Threads.ThreadStackSize, 1),
		checkMin(s, "Files.MaxOpenFiles", c.Files.MaxOpenFiles, 1),
		checkMin(s, "Files.MaxFileSizeMB", c.Files.MaxFileSizeMB, 1),
		checkMin(s, "Files.MaxLogSizeMB", c.Files.MaxLogSizeMB, 1),
		checkMin(s, "Monitoring.CheckIntervalMS", c.Monitoring.CheckIntervalMS, 1),
	); err != nil {
		return err
	}
	if c.Memory.MinBufferSize > c.Memory.MaxBufferSize {
		return invalid(s, "Memory.MinBufferSize", "%d exceeds MaxBufferSize %d", c.Memory.MinBufferSize, c.Memory.MaxBufferSize)
	}
	if c.Threads.MinThreads > c.Threads.MaxThreads {
		return invalid(s, "Threads.MinThreads", "%d exceeds MaxThreads %d", c.Threads.MinThreads, c.Threads.MaxThreads)
	}
	if c.Files.MaxLogSizeMB > c.Files.MaxFileSizeMB {
		return invalid(s, "Files.MaxLogSizeMB", "%d exceeds MaxFileSizeMB %d", c.Files.MaxLogSizeMB, c.Files.MaxFileSizeMB)
	}
	return nil
}
