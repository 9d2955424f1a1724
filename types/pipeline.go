package types

// ShaderStage is a bitset of the programmable pipeline stages a binding
// may be visible to.
type ShaderStage uint32

const (
	ShaderStageVertex ShaderStage = 1 << iota
	ShaderStagePixel
	ShaderStageGeometry
	ShaderStageHull
	ShaderStageDomain
	ShaderStageCompute
	ShaderStageTask
	ShaderStageMesh

	ShaderStageAll = ShaderStageVertex | ShaderStagePixel | ShaderStageGeometry |
		ShaderStageHull | ShaderStageDomain | ShaderStageCompute | ShaderStageTask | ShaderStageMesh
)

// PrimitiveTopology selects how vertices are assembled into primitives.
type PrimitiveTopology uint32

const (
	PrimitiveTopologyPointList PrimitiveTopology = iota
	PrimitiveTopologyLineList
	PrimitiveTopologyLineStrip
	PrimitiveTopologyTriangleList
	PrimitiveTopologyTriangleStrip
)

// PolygonMode selects fill vs. wireframe rasterization.
type PolygonMode uint32

const (
	PolygonModeFill PolygonMode = iota
	PolygonModeLine
	PolygonModePoint
)

// CullMode selects which triangle winding is culled.
type CullMode uint32

const (
	CullModeNone CullMode = iota
	CullModeFront
	CullModeBack
)

// FrontFace selects the winding order considered front-facing.
type FrontFace uint32

const (
	FrontFaceCounterClockwise FrontFace = iota
	FrontFaceClockwise
)

// CompareOp is the closed set of depth/stencil comparison functions.
type CompareOp uint32

const (
	CompareOpNever CompareOp = iota
	CompareOpLess
	CompareOpEqual
	CompareOpLessOrEqual
	CompareOpGreater
	CompareOpNotEqual
	CompareOpGreaterOrEqual
	CompareOpAlways
)

// StencilOp is the closed set of stencil update operations.
type StencilOp uint32

const (
	StencilOpKeep StencilOp = iota
	StencilOpZero
	StencilOpReplace
	StencilOpIncrementAndClamp
	StencilOpDecrementAndClamp
	StencilOpInvert
	StencilOpIncrementAndWrap
	StencilOpDecrementAndWrap
)

// BlendFactor is the closed set of source/destination blend factors.
type BlendFactor uint32

const (
	BlendFactorZero BlendFactor = iota
	BlendFactorOne
	BlendFactorSrcColor
	BlendFactorOneMinusSrcColor
	BlendFactorDstColor
	BlendFactorOneMinusDstColor
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
	BlendFactorConstantColor
	BlendFactorOneMinusConstantColor
	BlendFactorSrcAlphaSaturate
)

// BlendOp is the closed set of blend combine operations.
type BlendOp uint32

const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

// LogicOp is the closed set of color-blend logic operations.
type LogicOp uint32

const (
	LogicOpClear LogicOp = iota
	LogicOpCopy
	LogicOpNoOp
	LogicOpSet
)

// Filter selects nearest vs. linear sampling.
type Filter uint32

const (
	FilterNearest Filter = iota
	FilterLinear
)

// SamplerAddressMode is the closed set of texture-coordinate wrap modes.
type SamplerAddressMode uint32

const (
	SamplerAddressModeRepeat SamplerAddressMode = iota
	SamplerAddressModeMirroredRepeat
	SamplerAddressModeClampToEdge
	SamplerAddressModeClampToBorder
)

// SamplerMipMapMode selects nearest vs. linear mip filtering.
type SamplerMipMapMode uint32

const (
	SamplerMipMapModeNearest SamplerMipMapMode = iota
	SamplerMipMapModeLinear
)

// BorderColor is the closed set of sampler border colors.
type BorderColor uint32

const (
	BorderColorTransparentBlack BorderColor = iota
	BorderColorOpaqueBlack
	BorderColorOpaqueWhite
)

// LayerFlags is a bitset of instance-level validation/diagnostic layers
// requested at Instance.initialize (spec §4.1).
type LayerFlags uint32

const (
	LayerFlagDebugValidation LayerFlags = 1 << iota
	LayerFlagGpuDebugValidation
	LayerFlagApiDump
	LayerFlagDebugMarking
	LayerFlagRaytracing
	LayerFlagMeshShading
)

// Api identifies a concrete backend driver.
type Api uint32

const (
	ApiVulkan Api = iota
	ApiD3D12
	ApiNoop
)

func (a Api) String() string {
	switch a {
	case ApiVulkan:
		return "Vulkan"
	case ApiD3D12:
		return "D3D12"
	case ApiNoop:
		return "Noop"
	default:
		return "Unknown"
	}
}
