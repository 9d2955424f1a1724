// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"hash"
	"hash/fnv"
	"sync"

	"github.com/gogpu/rhi/hal"
)

// PipelineCache memoizes render and compute pipelines by the content of the
// descriptor that produced them, so that repeated requests for the same
// pipeline state (the common case: most draw calls reuse one of a handful
// of pipelines) return an existing VkPipeline instead of compiling a new one.
//
// Thread-safe. Uses a read-mostly double-checked lock: the common case of a
// cache hit only takes the read lock.
type PipelineCache struct {
	device *Device

	mu       sync.RWMutex
	render   map[uint64]*RenderPipeline
	compute  map[uint64]*ComputePipeline
	hits     uint64
	misses   uint64
}

// NewPipelineCache creates a pipeline cache that creates pipelines on device.
func NewPipelineCache(device *Device) *PipelineCache {
	return &PipelineCache{
		device:  device,
		render:  make(map[uint64]*RenderPipeline),
		compute: make(map[uint64]*ComputePipeline),
	}
}

// GetOrCreateRenderPipeline returns a cached pipeline matching desc's content,
// creating and caching one if this is the first time this configuration is seen.
func (c *PipelineCache) GetOrCreateRenderPipeline(desc *hal.RenderPipelineDescriptor) (*RenderPipeline, error) {
	key := hashRenderPipelineDescriptor(desc)

	c.mu.RLock()
	if p, ok := c.render[key]; ok {
		c.mu.RUnlock()
		c.hits++
		return p, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.render[key]; ok {
		c.hits++
		return p, nil
	}

	halPipeline, err := c.device.CreateRenderPipeline(desc)
	if err != nil {
		return nil, err
	}
	pipeline := halPipeline.(*RenderPipeline)

	c.render[key] = pipeline
	c.misses++
	return pipeline, nil
}

// GetOrCreateComputePipeline returns a cached pipeline matching desc's content,
// creating and caching one if this is the first time this configuration is seen.
func (c *PipelineCache) GetOrCreateComputePipeline(desc *hal.ComputePipelineDescriptor) (*ComputePipeline, error) {
	key := hashComputePipelineDescriptor(desc)

	c.mu.RLock()
	if p, ok := c.compute[key]; ok {
		c.mu.RUnlock()
		c.hits++
		return p, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.compute[key]; ok {
		c.hits++
		return p, nil
	}

	halPipeline, err := c.device.CreateComputePipeline(desc)
	if err != nil {
		return nil, err
	}
	pipeline := halPipeline.(*ComputePipeline)

	c.compute[key] = pipeline
	c.misses++
	return pipeline, nil
}

// Stats returns the number of cache hits and misses observed so far.
func (c *PipelineCache) Stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// Destroy releases every pipeline owned by the cache.
func (c *PipelineCache) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range c.render {
		c.device.DestroyRenderPipeline(p)
	}
	for _, p := range c.compute {
		c.device.DestroyComputePipeline(p)
	}
	c.render = make(map[uint64]*RenderPipeline)
	c.compute = make(map[uint64]*ComputePipeline)
}

// hashRenderPipelineDescriptor computes an FNV-1a hash over every field that
// affects the compiled VkPipeline: shader modules, vertex layout, primitive
// and rasterization state, depth/stencil state, color target formats and
// blend state, and sample count.
func hashRenderPipelineDescriptor(desc *hal.RenderPipelineDescriptor) uint64 {
	h := fnv.New64a()

	hashWriteShaderModule(h, desc.Vertex.Module)
	hashWriteString(h, desc.Vertex.EntryPoint)
	hashWriteUint32(h, uint32(len(desc.Vertex.Buffers)))
	for _, buf := range desc.Vertex.Buffers {
		hashWriteUint64(h, buf.ArrayStride)
		hashWriteUint32(h, uint32(buf.StepMode))
		hashWriteUint32(h, uint32(len(buf.Attributes)))
		for _, attr := range buf.Attributes {
			hashWriteUint32(h, attr.ShaderLocation)
			hashWriteUint32(h, uint32(attr.Format))
			hashWriteUint64(h, attr.Offset)
		}
	}

	hashWriteUint32(h, uint32(desc.Primitive.Topology))
	hashWriteUint32(h, uint32(desc.Primitive.FrontFace))
	hashWriteUint32(h, uint32(desc.Primitive.CullMode))
	hashWriteBool(h, desc.Primitive.UnclippedDepth)
	if desc.Primitive.StripIndexFormat != nil {
		hashWriteUint32(h, uint32(*desc.Primitive.StripIndexFormat)+1)
	} else {
		hashWriteUint32(h, 0)
	}

	if desc.DepthStencil != nil {
		ds := desc.DepthStencil
		hashWriteBool(h, true)
		hashWriteUint32(h, uint32(ds.Format))
		hashWriteBool(h, ds.DepthWriteEnabled)
		hashWriteUint32(h, uint32(ds.DepthCompare))
		hashWriteUint32(h, uint32(ds.StencilFront.Compare))
		hashWriteUint32(h, uint32(ds.StencilFront.FailOp))
		hashWriteUint32(h, uint32(ds.StencilFront.DepthFailOp))
		hashWriteUint32(h, uint32(ds.StencilFront.PassOp))
		hashWriteUint32(h, uint32(ds.StencilBack.Compare))
		hashWriteUint32(h, uint32(ds.StencilBack.FailOp))
		hashWriteUint32(h, uint32(ds.StencilBack.DepthFailOp))
		hashWriteUint32(h, uint32(ds.StencilBack.PassOp))
		hashWriteUint32(h, ds.StencilReadMask)
		hashWriteUint32(h, ds.StencilWriteMask)
		hashWriteUint32(h, uint32(ds.DepthBias))
		hashWriteUint32(h, uint32(ds.DepthBiasSlopeScale))
		hashWriteUint32(h, uint32(ds.DepthBiasClamp))
	} else {
		hashWriteBool(h, false)
	}

	hashWriteUint32(h, desc.Multisample.Count)
	hashWriteUint32(h, desc.Multisample.Mask)
	hashWriteBool(h, desc.Multisample.AlphaToCoverageEnabled)

	if desc.Fragment != nil {
		hashWriteBool(h, true)
		hashWriteShaderModule(h, desc.Fragment.Module)
		hashWriteString(h, desc.Fragment.EntryPoint)
		hashWriteUint32(h, uint32(len(desc.Fragment.Targets)))
		for _, t := range desc.Fragment.Targets {
			hashWriteUint32(h, uint32(t.Format))
			hashWriteUint32(h, uint32(t.WriteMask))
			if t.Blend != nil {
				hashWriteBool(h, true)
				hashWriteUint32(h, uint32(t.Blend.Color.SrcFactor))
				hashWriteUint32(h, uint32(t.Blend.Color.DstFactor))
				hashWriteUint32(h, uint32(t.Blend.Color.Operation))
				hashWriteUint32(h, uint32(t.Blend.Alpha.SrcFactor))
				hashWriteUint32(h, uint32(t.Blend.Alpha.DstFactor))
				hashWriteUint32(h, uint32(t.Blend.Alpha.Operation))
			} else {
				hashWriteBool(h, false)
			}
		}
	} else {
		hashWriteBool(h, false)
	}

	return h.Sum64()
}

// hashComputePipelineDescriptor computes an FNV-1a hash over the fields that
// affect the compiled VkPipeline for a compute pipeline.
func hashComputePipelineDescriptor(desc *hal.ComputePipelineDescriptor) uint64 {
	h := fnv.New64a()
	hashWriteShaderModule(h, desc.Compute.Module)
	hashWriteString(h, desc.Compute.EntryPoint)
	return h.Sum64()
}

// hashWriteShaderModule hashes the VkShaderModule handle backing a
// hal.ShaderModule. Two descriptors referencing the same compiled module
// hash identically; different modules (even with identical bytecode) hash
// differently, since module identity - not bytecode content - is what
// determines which VkShaderModule a pipeline binds to.
func hashWriteShaderModule(h hash.Hash64, module hal.ShaderModule) {
	vkModule, ok := module.(*ShaderModule)
	if !ok || vkModule == nil {
		hashWriteUint64(h, 0)
		return
	}
	hashWriteUint64(h, uint64(vkModule.handle))
}

func hashWriteUint32(h hash.Hash64, v uint32) {
	var buf [4]byte
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v >> 16)
	buf[3] = byte(v >> 24)
	_, _ = h.Write(buf[:])
}

func hashWriteUint64(h hash.Hash64, v uint64) {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	_, _ = h.Write(buf[:])
}

func hashWriteString(h hash.Hash64, s string) {
	hashWriteUint32(h, uint32(len(s)))
	_, _ = h.Write([]byte(s))
}

func hashWriteBool(h hash.Hash64, v bool) {
	if v {
		_, _ = h.Write([]byte{1})
		return
	}
	_, _ = h.Write([]byte{0})
}
