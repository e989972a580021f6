package driver

// Stage is the step a file is in.
type Stage uint8

const (
	StageQueued Stage = iota
	StageParse
	StageWrite
	StageVerify
	StageCache
)

func (s Stage) String() string {
	switch s {
	case StageQueued:
		return "queued"
	case StageParse:
		return "parsing"
	case StageWrite:
		return "writing"
	case StageVerify:
		return "verifying"
	case StageCache:
		return "cache"
	}
	return "?"
}

// Status reports how a file is doing.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	// StatusUnchanged: файл уже отформатирован.
	StatusUnchanged
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusWorking:
		return "working"
	case StatusDone:
		return "done"
	case StatusUnchanged:
		return "unchanged"
	case StatusError:
		return "error"
	}
	return "?"
}

// Event is sent to Options.Events as files move through the pipeline.
// An empty File marks a batch-level event.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// emit feeds ev to the progress counters and to the Events channel.
func (o Options) emit(ev Event) {
	o.Progress.observe(ev)
	if o.Events != nil {
		o.Events <- ev
	}
}
