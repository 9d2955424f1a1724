package memory

// GarbageUpdateFlags selects which actions a single Update call performs.
// Multiple flags may be combined; they apply in the order listed on
// GarbageUpdateFlags itself: Clear, SetFrameIndex, Resize, IncrementFrameIndex.
type GarbageUpdateFlags uint32

const (
	// GarbageUpdateSetFrameIndex sets the current frame index to Update.FrameIndex
	// without releasing anything.
	GarbageUpdateSetFrameIndex GarbageUpdateFlags = 1 << iota

	// GarbageUpdateIncrementFrameIndex advances the frame index by one and
	// releases every block retired into the slot the advance now reuses.
	GarbageUpdateIncrementFrameIndex

	// GarbageUpdateResize changes the number of buffered garbage slots to
	// Update.SlotCount, releasing any blocks held by slots that no longer exist.
	GarbageUpdateResize

	// GarbageUpdateClear releases every block pending in every slot immediately,
	// without changing the frame index or slot count.
	GarbageUpdateClear
)

// GarbageUpdate describes one call to GpuAllocator.Update.
type GarbageUpdate struct {
	Flags GarbageUpdateFlags

	// FrameIndex is applied when Flags has GarbageUpdateSetFrameIndex.
	FrameIndex uint64

	// SlotCount is applied when Flags has GarbageUpdateResize. A count of 0
	// disables deferred freeing: Free() releases blocks immediately again.
	SlotCount int
}

// Update drives the deferred-free garbage ring. Call once per frame with
// GarbageUpdateIncrementFrameIndex after a frame's work is known to have
// completed on the GPU (i.e. after waiting on that frame's fence), so that
// blocks freed during the frame N-SlotCount ago are safe to actually release.
func (a *GpuAllocator) Update(u GarbageUpdate) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if u.Flags&GarbageUpdateClear != 0 {
		for i := range a.garbage {
			a.releaseSlotLocked(i)
		}
	}

	if u.Flags&GarbageUpdateSetFrameIndex != 0 {
		a.frameIndex = u.FrameIndex
	}

	if u.Flags&GarbageUpdateResize != 0 {
		a.resizeGarbageLocked(u.SlotCount)
	}

	if u.Flags&GarbageUpdateIncrementFrameIndex != 0 {
		a.frameIndex++
		if len(a.garbage) > 0 {
			a.releaseSlotLocked(int(a.frameIndex % uint64(len(a.garbage))))
		}
	}
}

// resizeGarbageLocked changes the slot count, flushing slots being dropped.
// Caller must hold a.mu.
func (a *GpuAllocator) resizeGarbageLocked(slotCount int) {
	for i := range a.garbage {
		a.releaseSlotLocked(i)
	}
	if slotCount <= 0 {
		a.garbage = nil
		return
	}
	a.garbage = make([][]*MemoryBlock, slotCount)
}

// releaseSlotLocked frees every block pending in garbage slot i and empties it.
// Caller must hold a.mu.
func (a *GpuAllocator) releaseSlotLocked(i int) {
	if i < 0 || i >= len(a.garbage) {
		return
	}
	for _, block := range a.garbage[i] {
		_ = a.releaseBlockLocked(block)
	}
	a.garbage[i] = a.garbage[i][:0]
}

// PendingGarbage returns the number of blocks awaiting release across all slots.
func (a *GpuAllocator) PendingGarbage() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	count := 0
	for _, slot := range a.garbage {
		count += len(slot)
	}
	return count
}
