package core

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/rhi/core/track"
	"github.com/gogpu/rhi/hal"
)

// TrackerIndex identifies a buffer's slot in a device-wide usage tracker.
// Re-exported from core/track so callers never need to import it directly.
type TrackerIndex = track.TrackerIndex

// InvalidTrackerIndex marks a buffer that has not been assigned a tracker slot.
const InvalidTrackerIndex = track.InvalidTrackerIndex

// BufferMapState describes a buffer's position in the map/unmap lifecycle.
type BufferMapState int

const (
	// BufferMapStateIdle means the buffer is not mapped and no map is pending.
	BufferMapStateIdle BufferMapState = iota
	// BufferMapStatePending means MapAsync was called but has not resolved.
	BufferMapStatePending
	// BufferMapStateMapped means the buffer's contents are mapped for CPU access.
	BufferMapStateMapped
)

// bufferInitChunkSize is the granularity at which lazy buffer clears track
// which regions have been written. 4KiB matches wgpu's BufferInitTracker.
const bufferInitChunkSize = 4096

// BufferInitTracker tracks, at chunk granularity, which byte ranges of a
// buffer have been written. Uninitialized regions read back as zero and must
// be cleared before they are exposed to a shader.
type BufferInitTracker struct {
	chunks []bool
}

// NewBufferInitTracker creates a tracker for a buffer of the given size, with
// no regions marked initialized.
func NewBufferInitTracker(size uint64) *BufferInitTracker {
	if size == 0 {
		return &BufferInitTracker{}
	}
	numChunks := (size + bufferInitChunkSize - 1) / bufferInitChunkSize
	return &BufferInitTracker{chunks: make([]bool, numChunks)}
}

// IsInitialized reports whether every chunk touching [offset, offset+size)
// has been marked initialized. A nil tracker (no tracking in effect) and a
// zero-length range are always considered initialized.
func (t *BufferInitTracker) IsInitialized(offset, size uint64) bool {
	if t == nil || size == 0 {
		return true
	}
	start := offset / bufferInitChunkSize
	end := (offset + size - 1) / bufferInitChunkSize
	for i := start; i <= end; i++ {
		if i >= uint64(len(t.chunks)) || !t.chunks[i] {
			return false
		}
	}
	return true
}

// MarkInitialized marks every chunk touching [offset, offset+size) as
// initialized. Safe to call on a nil tracker or with a zero-length range.
func (t *BufferInitTracker) MarkInitialized(offset, size uint64) {
	if t == nil || size == 0 {
		return
	}
	start := offset / bufferInitChunkSize
	end := (offset + size - 1) / bufferInitChunkSize
	for i := start; i <= end && i < uint64(len(t.chunks)); i++ {
		t.chunks[i] = true
	}
}

// BufferTrackingData is the per-buffer record held by the device's resource
// usage tracker, re-exported from core/track. A buffer created without a
// shared index allocator carries InvalidTrackerIndex until it is inserted
// into a tracker.
type BufferTrackingData = track.TrackingData

// validBufferUsageMask is the union of every usage flag gputypes defines.
const validBufferUsageMask = gputypes.BufferUsageMapRead |
	gputypes.BufferUsageMapWrite |
	gputypes.BufferUsageCopySrc |
	gputypes.BufferUsageCopyDst |
	gputypes.BufferUsageIndex |
	gputypes.BufferUsageVertex |
	gputypes.BufferUsageUniform |
	gputypes.BufferUsageStorage |
	gputypes.BufferUsageIndirect |
	gputypes.BufferUsageQueryResolve

// bufferSizeAlignment is the alignment HAL backends require for buffer
// allocations. Requested sizes are rounded up before reaching the HAL; the
// buffer continues to report the size the caller asked for.
const bufferSizeAlignment = 4

func alignBufferSize(size uint64) uint64 {
	return (size + bufferSizeAlignment - 1) &^ (bufferSizeAlignment - 1)
}

// CreateBufferErrorKind identifies why Device.CreateBuffer rejected a
// descriptor.
type CreateBufferErrorKind int

const (
	// CreateBufferErrorZeroSize means the descriptor requested a zero-byte buffer.
	CreateBufferErrorZeroSize CreateBufferErrorKind = iota
	// CreateBufferErrorMaxBufferSize means the requested size exceeds the device's limit.
	CreateBufferErrorMaxBufferSize
	// CreateBufferErrorEmptyUsage means the descriptor set no usage flags.
	CreateBufferErrorEmptyUsage
	// CreateBufferErrorInvalidUsage means the descriptor set an unrecognized usage flag.
	CreateBufferErrorInvalidUsage
	// CreateBufferErrorMapReadWriteExclusive means MapRead and MapWrite were both set.
	CreateBufferErrorMapReadWriteExclusive
	// CreateBufferErrorHAL means the HAL backend rejected the allocation.
	CreateBufferErrorHAL
)

// CreateBufferError reports why Device.CreateBuffer failed.
type CreateBufferError struct {
	Kind          CreateBufferErrorKind
	Label         string
	RequestedSize uint64
	MaxSize       uint64
	HALError      error
}

// Error implements the error interface.
func (e *CreateBufferError) Error() string {
	switch e.Kind {
	case CreateBufferErrorZeroSize:
		return fmt.Sprintf("core: buffer %q: size must be greater than 0", e.Label)
	case CreateBufferErrorMaxBufferSize:
		return fmt.Sprintf("core: buffer %q: size %d exceeds maximum buffer size %d", e.Label, e.RequestedSize, e.MaxSize)
	case CreateBufferErrorEmptyUsage:
		return fmt.Sprintf("core: buffer %q: usage must not be empty", e.Label)
	case CreateBufferErrorInvalidUsage:
		return fmt.Sprintf("core: buffer %q: invalid usage flags", e.Label)
	case CreateBufferErrorMapReadWriteExclusive:
		return fmt.Sprintf("core: buffer %q: MapRead and MapWrite are mutually exclusive", e.Label)
	case CreateBufferErrorHAL:
		return fmt.Sprintf("core: buffer %q: HAL error: %v", e.Label, e.HALError)
	default:
		return fmt.Sprintf("core: buffer %q: failed to create buffer", e.Label)
	}
}

// Unwrap exposes the underlying HAL error, if any, to errors.Is/As.
func (e *CreateBufferError) Unwrap() error { return e.HALError }

// CreateBuffer creates a GPU buffer on this device.
func (d *Device) CreateBuffer(desc *gputypes.BufferDescriptor) (*Buffer, error) {
	if err := d.checkValid(); err != nil {
		return nil, err
	}
	if desc == nil {
		return nil, fmt.Errorf("core: buffer descriptor is nil")
	}

	if desc.Size == 0 {
		return nil, &CreateBufferError{Kind: CreateBufferErrorZeroSize, Label: desc.Label}
	}
	if desc.Size > d.Limits.MaxBufferSize {
		return nil, &CreateBufferError{
			Kind:          CreateBufferErrorMaxBufferSize,
			Label:         desc.Label,
			RequestedSize: desc.Size,
			MaxSize:       d.Limits.MaxBufferSize,
		}
	}
	if desc.Usage == 0 {
		return nil, &CreateBufferError{Kind: CreateBufferErrorEmptyUsage, Label: desc.Label}
	}
	if desc.Usage&^validBufferUsageMask != 0 {
		return nil, &CreateBufferError{Kind: CreateBufferErrorInvalidUsage, Label: desc.Label}
	}
	if desc.Usage&gputypes.BufferUsageMapRead != 0 && desc.Usage&gputypes.BufferUsageMapWrite != 0 {
		return nil, &CreateBufferError{Kind: CreateBufferErrorMapReadWriteExclusive, Label: desc.Label}
	}

	guard := d.snatchLock.Read()
	defer guard.Release()

	halDevice := d.raw.Get(guard)
	if halDevice == nil {
		return nil, ErrDeviceDestroyed
	}

	halDesc := &hal.BufferDescriptor{
		Label:            desc.Label,
		Size:             alignBufferSize(desc.Size),
		Usage:            desc.Usage,
		MappedAtCreation: desc.MappedAtCreation,
	}

	halBuffer, err := (*halDevice).CreateBuffer(halDesc)
	if err != nil {
		return nil, &CreateBufferError{Kind: CreateBufferErrorHAL, Label: desc.Label, HALError: err}
	}

	buf := NewBuffer(halBuffer, d, desc.Usage, desc.Size, desc.Label)
	if desc.MappedAtCreation {
		buf.mapState = BufferMapStateMapped
		buf.initTracker.MarkInitialized(0, desc.Size)
	}

	return buf, nil
}

// Buffer is a HAL-integrated GPU buffer.
type Buffer struct {
	raw    *Snatchable[hal.Buffer]
	device *Device
	size   uint64
	usage  gputypes.BufferUsage
	label  string

	mapState     BufferMapState
	initTracker  *BufferInitTracker
	trackingData *BufferTrackingData
}

// NewBuffer wraps an already-created HAL buffer for use outside
// Device.CreateBuffer, e.g. by tests or the ID-based Hub registry.
func NewBuffer(halBuffer hal.Buffer, device *Device, usage gputypes.BufferUsage, size uint64, label string) *Buffer {
	return &Buffer{
		raw:          NewSnatchable(halBuffer),
		device:       device,
		size:         size,
		usage:        usage,
		label:        label,
		initTracker:  NewBufferInitTracker(size),
		trackingData: track.NewTrackingData(nil),
	}
}

// Size returns the buffer size in bytes, as originally requested.
func (b *Buffer) Size() uint64 { return b.size }

// Usage returns the buffer's usage flags.
func (b *Buffer) Usage() gputypes.BufferUsage { return b.usage }

// Label returns the buffer's debug label.
func (b *Buffer) Label() string { return b.label }

// Device returns the device that owns this buffer.
func (b *Buffer) Device() *Device { return b.device }

// HasHAL returns true if the buffer wraps a real HAL resource.
func (b *Buffer) HasHAL() bool { return b.raw != nil }

// IsDestroyed reports whether the buffer has been destroyed, or was never
// backed by a HAL resource in the first place.
func (b *Buffer) IsDestroyed() bool {
	if b.raw == nil {
		return true
	}
	return b.raw.IsSnatched()
}

// MapState returns the buffer's current position in the map/unmap lifecycle.
func (b *Buffer) MapState() BufferMapState { return b.mapState }

// SetMapState updates the buffer's map/unmap lifecycle state.
func (b *Buffer) SetMapState(s BufferMapState) { b.mapState = s }

// IsInitialized reports whether [offset, offset+size) has been written.
func (b *Buffer) IsInitialized(offset, size uint64) bool {
	return b.initTracker.IsInitialized(offset, size)
}

// MarkInitialized records [offset, offset+size) as written.
func (b *Buffer) MarkInitialized(offset, size uint64) {
	b.initTracker.MarkInitialized(offset, size)
}

// TrackingData returns the buffer's resource-tracker record.
func (b *Buffer) TrackingData() *BufferTrackingData {
	if b.trackingData == nil {
		b.trackingData = track.NewTrackingData(nil)
	}
	return b.trackingData
}

// Raw returns the underlying HAL buffer. The caller must hold a SnatchGuard
// from the owning device's SnatchLock(). Returns nil once destroyed.
func (b *Buffer) Raw(guard *SnatchGuard) hal.Buffer {
	if b.raw == nil {
		return nil
	}
	v := b.raw.Get(guard)
	if v == nil {
		return nil
	}
	return *v
}

// Destroy releases the underlying HAL buffer. Safe to call multiple times.
func (b *Buffer) Destroy() {
	if b.raw == nil || b.device == nil || b.device.snatchLock == nil {
		return
	}
	guard := b.device.snatchLock.Write()
	defer guard.Release()
	rawPtr := b.raw.Snatch(guard)
	if rawPtr == nil {
		return
	}
	if b.device.raw == nil {
		return
	}
	if halDevicePtr := b.device.raw.peek(); halDevicePtr != nil {
		(*halDevicePtr).DestroyBuffer(*rawPtr)
	}
}
