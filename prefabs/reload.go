package prefabs

import (
	"time"

	"github.com/milk9111/padrunner/ecs/component"
)

// TuningReloader re-reads a player spec from DiskDir after the watcher
// reports it. A missing disk copy is ignored rather than falling back to
// the embedded defaults, and an unchanged modification time is skipped.
type TuningReloader struct {
	name string
	last time.Time
}

// NewTuningReloader remembers the current disk copy, if any, so the first
// event for an untouched file does not reload it.
func NewTuningReloader(name string) *TuningReloader {
	r := &TuningReloader{name: cleanPrefabPath(name)}
	if mod, ok := ModTime(r.name); ok {
		r.last = mod
	}
	return r
}

// Name is the base file name the reloader answers for.
func (r *TuningReloader) Name() string {
	return r.name
}

// Reload returns the new tuning and true when the disk copy changed.
// Errors leave the remembered modification time alone so a fixed file is
// picked up on its next save.
func (r *TuningReloader) Reload() (component.Tuning, bool, error) {
	mod, ok := ModTime(r.name)
	if !ok || mod.Equal(r.last) {
		return component.Tuning{}, false, nil
	}
	// Read the disk copy directly; Load would fall back to the embedded
	// spec if the file vanished since the stat.
	t, err := LoadTuningFile(diskPrefabPath(r.name))
	if err != nil {
		return component.Tuning{}, false, err
	}
	r.last = mod
	return t, true, nil
}
