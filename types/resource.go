package types

// ResourceFormat is the closed set of pixel/vertex formats a Resource or
// View may carry.
type ResourceFormat uint32

const (
	ResourceFormatUnknown ResourceFormat = iota
	ResourceFormatR8Uint
	ResourceFormatR16Float
	ResourceFormatR32Float
	ResourceFormatR8G8B8A8Unorm
	ResourceFormatR8G8B8A8Srgb
	ResourceFormatB8G8R8A8Unorm
	ResourceFormatB8G8R8A8Srgb
	ResourceFormatR16G16B16A16Float
	ResourceFormatR32G32B32A32Float
	ResourceFormatR32G32B32A32Uint
	ResourceFormatR32G32Float
	ResourceFormatR32G32Uint
	ResourceFormatR11G11B10Float
	ResourceFormatD16Unorm
	ResourceFormatD24UnormS8Uint
	ResourceFormatD32Float
	ResourceFormatD32FloatS8Uint
	ResourceFormatBC1Unorm
	ResourceFormatBC2Unorm
	ResourceFormatBC3Unorm
	ResourceFormatBC4Unorm
	ResourceFormatBC5Unorm
	ResourceFormatBC7Unorm
	ResourceFormatR24UnormX8Typeless
)

// IsDepthFormat reports whether the format carries a depth aspect.
func (f ResourceFormat) IsDepthFormat() bool {
	switch f {
	case ResourceFormatD16Unorm, ResourceFormatD24UnormS8Uint, ResourceFormatD32Float, ResourceFormatD32FloatS8Uint:
		return true
	default:
		return false
	}
}

// HasStencil reports whether the depth format also carries a stencil aspect.
func (f ResourceFormat) HasStencil() bool {
	return f == ResourceFormatD24UnormS8Uint || f == ResourceFormatD32FloatS8Uint
}

// ResourceUsage is a bitset of the ways a Resource may be bound.
type ResourceUsage uint32

const (
	ResourceUsageVertexBuffer ResourceUsage = 1 << iota
	ResourceUsageIndexBuffer
	ResourceUsageConstantBuffer
	ResourceUsageShaderResource
	ResourceUsageUnorderedAccess
	ResourceUsageRenderTarget
	ResourceUsageDepthStencil
	ResourceUsageCopySource
	ResourceUsageCopyDestination
	ResourceUsageIndirectBuffer
)

// ResourceMemoryUsage selects the memory-type search strategy in
// Adapter.findMemoryType (see spec §4.1's required/preferred table).
type ResourceMemoryUsage uint32

const (
	ResourceMemoryUsageCpuOnly ResourceMemoryUsage = iota
	ResourceMemoryUsageCpuToGpu
	ResourceMemoryUsageGpuToCpu
	ResourceMemoryUsageGpuOnly
	ResourceMemoryUsageCpuVisible
)

// ResourceDimension distinguishes buffers from 1D/2D/3D images.
type ResourceDimension uint32

const (
	ResourceDimensionBuffer ResourceDimension = iota
	ResourceDimension1D
	ResourceDimension2D
	ResourceDimension3D
)

// ResourceState is the closed set of states a Resource (or a subresource
// range of one) may be tracked in. Each state maps to a backend-specific
// (layout, access-mask) pair; see hal/vulkan/convert.go.
type ResourceState uint32

const (
	ResourceStateCommon ResourceState = iota
	ResourceStateVertexBuffer
	ResourceStateIndexBuffer
	ResourceStateConstantBuffer
	ResourceStateIndirectArgs
	ResourceStateShaderResource
	ResourceStateUnorderedAccess
	ResourceStateRenderTarget
	ResourceStateDepthStencilReadOnly
	ResourceStateDepthStencilWrite
	ResourceStateCopySource
	ResourceStateCopyDestination
	ResourceStatePresent
	ResourceStateAccelerationStructure
)

// ViewType is the closed set of view kinds a Resource may expose.
type ViewType uint32

const (
	ViewTypeRenderTarget ViewType = iota
	ViewTypeDepthStencil
	ViewTypeShaderResource
	ViewTypeUnorderedAccess
)

// FrameBuffering selects the swapchain's buffering depth.
type FrameBuffering uint32

const (
	FrameBufferingSingle FrameBuffering = iota
	FrameBufferingDouble
	FrameBufferingTriple
)

// PresentConfig is a bitset of present-time behaviors.
type PresentConfig uint32

const (
	PresentConfigPresent     PresentConfig = 1 << iota // default
	PresentConfigSkipPresent
)

// IndexType selects the width of indices in an index buffer.
type IndexType uint32

const (
	IndexTypeUnsigned16 IndexType = iota
	IndexTypeUnsigned32
)
