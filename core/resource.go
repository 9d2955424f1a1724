package core

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/rhi/hal"
)

// Adapter represents a physical GPU adapter.
type Adapter struct {
	// Info contains information about the adapter.
	Info gputypes.AdapterInfo
	// Features contains the features supported by the adapter.
	Features gputypes.Features
	// Limits contains the resource limits of the adapter.
	Limits gputypes.Limits
	// Backend identifies which graphics backend this adapter uses.
	Backend gputypes.Backend

	// halAdapter is the underlying HAL adapter, nil for mock adapters.
	halAdapter hal.Adapter
	// halCapabilities holds the detailed HAL capability query results.
	halCapabilities *hal.Capabilities
}

// HasHAL returns true if this adapter wraps a real HAL backend.
func (a *Adapter) HasHAL() bool { return a.halAdapter != nil }

// HALAdapter returns the underlying HAL adapter, or nil for mock adapters.
func (a *Adapter) HALAdapter() hal.Adapter { return a.halAdapter }

// Queue represents the ID-based legacy command queue record.
// The HAL-integrated queue lives at the root rhi.Queue.
type Queue struct {
	// Device is the device this queue belongs to.
	Device DeviceID
	// Label is a debug label for the queue.
	Label string
}

// Device represents a logical GPU device.
//
// A zero-value Device (as used by the legacy ID-based Hub registry) carries
// only the descriptive fields below and has no HAL backing: HasHAL reports
// false and SnatchLock returns nil. NewDevice constructs the HAL-integrated
// variant used by the root rhi package.
type Device struct {
	// Adapter is the adapter this device was created from (legacy ID-based API).
	Adapter AdapterID
	// Label is a debug label for the device.
	Label string
	// Features contains the features enabled on this device.
	Features gputypes.Features
	// Limits contains the resource limits of this device.
	Limits gputypes.Limits
	// Queue is the device's default queue (legacy ID-based API).
	Queue QueueID

	// raw is the HAL device wrapped for safe, single-shot destruction.
	// nil for devices created through the legacy ID-based Hub registry.
	raw *Snatchable[hal.Device]

	// snatchLock coordinates access to raw and every HAL resource created
	// from this device (buffers, command encoders, ...). nil when raw is nil.
	snatchLock *SnatchLock

	// adapter is the HAL-integrated adapter this device was opened from.
	adapter *Adapter

	// associatedQueue is the HAL-integrated queue for this device.
	associatedQueue *Queue

	// errorScopeManager is created lazily by PushErrorScope/PopErrorScope.
	errorScopeManager *ErrorScopeManager
}

// NewDevice wraps an already-opened HAL device, ready for resource creation.
func NewDevice(halDevice hal.Device, adapter *Adapter, features gputypes.Features, limits gputypes.Limits, label string) *Device {
	return &Device{
		Label:      label,
		Features:   features,
		Limits:     limits,
		raw:        NewSnatchable(halDevice),
		snatchLock: NewSnatchLock(),
		adapter:    adapter,
	}
}

// HasHAL returns true if the device was created through NewDevice.
func (d *Device) HasHAL() bool { return d.raw != nil }

// IsValid returns true if the device has a HAL backing that hasn't been destroyed.
func (d *Device) IsValid() bool {
	if d.raw == nil {
		return false
	}
	return !d.raw.IsSnatched()
}

// SnatchLock returns the device-global lock coordinating destruction of this
// device and every resource created from it. Returns nil for devices without
// a HAL backing.
func (d *Device) SnatchLock() *SnatchLock { return d.snatchLock }

// Raw returns the underlying HAL device. The caller must hold a SnatchGuard
// from SnatchLock(). Returns nil once the device has been destroyed.
func (d *Device) Raw(guard *SnatchGuard) hal.Device {
	if d.raw == nil {
		return nil
	}
	v := d.raw.Get(guard)
	if v == nil {
		return nil
	}
	return *v
}

// checkValid returns ErrDeviceDestroyed if the device is not usable.
func (d *Device) checkValid() error {
	if !d.IsValid() {
		return ErrDeviceDestroyed
	}
	return nil
}

// Destroy releases the HAL device. Safe to call multiple times; only the
// first call has an effect.
func (d *Device) Destroy() {
	if d.raw == nil {
		return
	}
	guard := d.snatchLock.Write()
	defer guard.Release()
	halDevicePtr := d.raw.Snatch(guard)
	if halDevicePtr != nil {
		(*halDevicePtr).Destroy()
	}
}

// AssociatedQueue returns the device's HAL-integrated queue, or nil if one
// has not been set yet.
func (d *Device) AssociatedQueue() *Queue { return d.associatedQueue }

// SetAssociatedQueue records the device's HAL-integrated queue.
func (d *Device) SetAssociatedQueue(q *Queue) { d.associatedQueue = q }

// AdapterRef returns the HAL-integrated adapter this device was opened from.
func (d *Device) AdapterRef() *Adapter { return d.adapter }

// Texture is a HAL-integrated GPU texture.
type Texture struct {
	raw    *Snatchable[hal.Texture]
	device *Device
	format gputypes.TextureFormat
	label  string
}

// HasHAL returns true if the texture wraps a real HAL resource.
func (t *Texture) HasHAL() bool { return t.raw != nil }

// Raw returns the underlying HAL texture for the held snatch guard.
func (t *Texture) Raw(guard *SnatchGuard) hal.Texture {
	if t.raw == nil {
		return nil
	}
	v := t.raw.Get(guard)
	if v == nil {
		return nil
	}
	return *v
}

// Format returns the texture's pixel format.
func (t *Texture) Format() gputypes.TextureFormat { return t.format }

// TextureView is a HAL-integrated view into a texture.
//
// Unlike Buffer and Device, views are not individually snatchable: a view's
// lifetime is bound to its parent Texture, which is what participates in the
// device's snatch lock.
type TextureView struct {
	raw    hal.TextureView
	device *Device
}

// NewTextureView wraps an existing HAL texture view for use by the
// HAL-integrated render pass encoder (see CoreCommandEncoder.BeginRenderPass).
func NewTextureView(raw hal.TextureView, device *Device) *TextureView {
	return &TextureView{raw: raw, device: device}
}

// Raw returns the underlying HAL texture view, or nil if none was set.
func (v *TextureView) Raw() hal.TextureView {
	if v == nil {
		return nil
	}
	return v.raw
}

// Sampler represents a texture sampler.
type Sampler struct {
	raw hal.Sampler
}

// BindGroupLayout represents the layout of a bind group.
type BindGroupLayout struct {
	raw hal.BindGroupLayout
}

// PipelineLayout represents the layout of a pipeline.
type PipelineLayout struct {
	raw hal.PipelineLayout
}

// BindGroup is a HAL-integrated collection of bound resources.
type BindGroup struct {
	raw hal.BindGroup
}

// NewBindGroup wraps an existing HAL bind group for use by the
// HAL-integrated render/compute pass encoders.
func NewBindGroup(raw hal.BindGroup) *BindGroup {
	return &BindGroup{raw: raw}
}

// Raw returns the underlying HAL bind group, or nil if none was set.
func (g *BindGroup) Raw() hal.BindGroup {
	if g == nil {
		return nil
	}
	return g.raw
}

// ShaderModule represents a compiled shader module.
type ShaderModule struct {
	raw hal.ShaderModule
}

// RenderPipeline is a HAL-integrated render pipeline.
type RenderPipeline struct {
	raw hal.RenderPipeline
}

// NewRenderPipeline wraps an existing HAL render pipeline for use by the
// HAL-integrated render pass encoder.
func NewRenderPipeline(raw hal.RenderPipeline) *RenderPipeline {
	return &RenderPipeline{raw: raw}
}

// Raw returns the underlying HAL render pipeline, or nil if none was set.
func (p *RenderPipeline) Raw() hal.RenderPipeline {
	if p == nil {
		return nil
	}
	return p.raw
}

// ComputePipeline is a HAL-integrated compute pipeline.
type ComputePipeline struct {
	raw hal.ComputePipeline
}

// NewComputePipeline wraps an existing HAL compute pipeline for use by the
// HAL-integrated compute pass encoder.
func NewComputePipeline(raw hal.ComputePipeline) *ComputePipeline {
	return &ComputePipeline{raw: raw}
}

// Raw returns the underlying HAL compute pipeline, or nil if none was set.
func (p *ComputePipeline) Raw() hal.ComputePipeline {
	if p == nil {
		return nil
	}
	return p.raw
}

// CommandEncoder is the legacy ID-based command encoder placeholder.
// The HAL-integrated encoder is CoreCommandEncoder (see command.go).
type CommandEncoder struct{}

// CommandBuffer is the legacy ID-based command buffer placeholder.
// The HAL-integrated buffer is CoreCommandBuffer (see command.go).
type CommandBuffer struct{}

// QuerySet represents a set of queries.
type QuerySet struct{}

// Surface represents a rendering surface.
type Surface struct{}
