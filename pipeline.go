package rhi

import (
	"github.com/gogpu/rhi/core"
	"github.com/gogpu/rhi/hal"
)

// RenderPipeline represents a configured render pipeline.
type RenderPipeline struct {
	hal      hal.RenderPipeline
	device   *Device
	released bool
}

// Release destroys the render pipeline.
func (p *RenderPipeline) Release() {
	if p.released {
		return
	}
	p.released = true
	halDevice := p.device.halDevice()
	if halDevice != nil {
		halDevice.DestroyRenderPipeline(p.hal)
	}
}

// corePipeline wraps the HAL render pipeline for use by the core command
// recording layer (CoreRenderPassEncoder.SetPipeline).
func (p *RenderPipeline) corePipeline() *core.RenderPipeline {
	if p == nil {
		return nil
	}
	return core.NewRenderPipeline(p.hal)
}

// ComputePipeline represents a configured compute pipeline.
type ComputePipeline struct {
	hal      hal.ComputePipeline
	device   *Device
	released bool
}

// Release destroys the compute pipeline.
func (p *ComputePipeline) Release() {
	if p.released {
		return
	}
	p.released = true
	halDevice := p.device.halDevice()
	if halDevice != nil {
		halDevice.DestroyComputePipeline(p.hal)
	}
}

// corePipeline wraps the HAL compute pipeline for use by the core command
// recording layer (CoreComputePassEncoder.SetPipeline).
func (p *ComputePipeline) corePipeline() *core.ComputePipeline {
	if p == nil {
		return nil
	}
	return core.NewComputePipeline(p.hal)
}
