package metrics

import (
	"runtime"
	"sync"
)

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by live word vectors and everything else
	HeapSys      uint64 // bytes obtained from OS for heap
	TotalAlloc   uint64 // cumulative bytes allocated
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// MemoryCollector reads runtime memory statistics and remembers the largest
// heap it has seen, so the peak of a run can be reported after it ends.
type MemoryCollector struct {
	mu       sync.Mutex
	peakHeap uint64
	baseline MemorySnapshot
}

// NewMemoryCollector creates a collector whose baseline is the current state.
func NewMemoryCollector() *MemoryCollector {
	mc := &MemoryCollector{}
	mc.baseline = mc.Snapshot()
	return mc
}

// Snapshot reads current memory statistics and updates the peak.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	s := MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		TotalAlloc:   m.TotalAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
	mc.mu.Lock()
	mc.peakHeap = max(mc.peakHeap, s.HeapAlloc)
	mc.mu.Unlock()
	return s
}

// PeakHeap returns the largest HeapAlloc observed by Snapshot.
func (mc *MemoryCollector) PeakHeap() uint64 {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	return mc.peakHeap
}

// SinceBaseline returns the allocation and GC activity since the collector
// was created.
func (mc *MemoryCollector) SinceBaseline() (allocated uint64, gcCycles uint32, pauseNs uint64) {
	now := mc.Snapshot()
	return now.TotalAlloc - mc.baseline.TotalAlloc,
		now.NumGC - mc.baseline.NumGC,
		now.PauseTotalNs - mc.baseline.PauseTotalNs
}
