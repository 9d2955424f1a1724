// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

// This file supplies the Vulkan 1.2/1.3 core handle, enum, and struct
// definitions that the vk-gen tool would normally emit from vk.xml (see
// doc.go). The generator output for this checkout was not available, so
// these declarations were written by hand against the public Vulkan
// specification, scoped to exactly the surface hal/vulkan references.
// Field order matches the C layout so the syscall.SyscallN/ffi call sites
// in commands.go, commands_manual.go and memory.go can take their address
// directly.

import "unsafe"

// --- Dispatchable handles (opaque pointers in the C API) ---

type (
	Instance       uintptr
	PhysicalDevice uintptr
	Device         uintptr
	Queue          uintptr
	CommandBuffer  uintptr
)

// --- Non-dispatchable handles (64-bit opaque integers in the C API) ---

type (
	Buffer                  uint64
	Image                   uint64
	ImageView               uint64
	DeviceMemory            uint64
	Sampler                 uint64
	ShaderModule            uint64
	PipelineLayout          uint64
	Pipeline                uint64
	PipelineCache           uint64
	RenderPass              uint64
	Framebuffer             uint64
	DescriptorSetLayout     uint64
	DescriptorPool          uint64
	DescriptorSet           uint64
	CommandPool             uint64
	Semaphore               uint64
	Fence                   uint64
	Event                   uint64
	QueryPool               uint64
	SurfaceKHR              uint64
	SwapchainKHR            uint64
	DebugUtilsMessengerEXT  uint64
)

// --- Scalar aliases ---

type (
	Bool32     uint32
	DeviceSize uint64
	SampleMask uint32
)

const (
	True  Bool32 = 1
	False Bool32 = 0
)

const (
	WholeSize           DeviceSize = ^DeviceSize(0)
	RemainingMipLevels  uint32     = ^uint32(0)
	RemainingArrayLayers uint32    = ^uint32(0)
	QueueFamilyIgnored  uint32     = ^uint32(0)
	AttachmentUnused    uint32     = ^uint32(0)
)

// Timeout is the sentinel passed to wait calls to block indefinitely.
const Timeout uint64 = ^uint64(0)

// --- Result ---

type Result int32

const (
	Success                   Result = 0
	Timeout_                 Result = 2
	ErrorOutOfHostMemory      Result = -1
	ErrorOutOfDeviceMemory    Result = -2
	ErrorInitializationFailed Result = -3
	ErrorDeviceLost           Result = -4
	ErrorExtensionNotPresent  Result = -7
	ErrorOutOfDateKhr         Result = -1000001004
	SuboptimalKhr             Result = 1000001003
)

// --- StructureType ---

type StructureType int32

const (
	StructureTypeApplicationInfo                       StructureType = 0
	StructureTypeInstanceCreateInfo                     StructureType = 1
	StructureTypeDeviceQueueCreateInfo                  StructureType = 2
	StructureTypeDeviceCreateInfo                       StructureType = 3
	StructureTypeSubmitInfo                             StructureType = 4
	StructureTypeMemoryAllocateInfo                     StructureType = 5
	StructureTypeFenceCreateInfo                        StructureType = 8
	StructureTypeSemaphoreCreateInfo                    StructureType = 9
	StructureTypeBufferCreateInfo                       StructureType = 12
	StructureTypeImageCreateInfo                        StructureType = 14
	StructureTypeImageViewCreateInfo                    StructureType = 15
	StructureTypeShaderModuleCreateInfo                  StructureType = 16
	StructureTypePipelineLayoutCreateInfo                StructureType = 30
	StructureTypeSamplerCreateInfo                       StructureType = 31
	StructureTypeDescriptorSetLayoutCreateInfo           StructureType = 32
	StructureTypeWriteDescriptorSet                      StructureType = 35
	StructureTypeCopyDescriptorSet                       StructureType = 36
	StructureTypePipelineShaderStageCreateInfo          StructureType = 18
	StructureTypePipelineVertexInputStateCreateInfo     StructureType = 19
	StructureTypePipelineInputAssemblyStateCreateInfo   StructureType = 20
	StructureTypePipelineViewportStateCreateInfo        StructureType = 22
	StructureTypePipelineRasterizationStateCreateInfo   StructureType = 23
	StructureTypePipelineMultisampleStateCreateInfo     StructureType = 24
	StructureTypePipelineDepthStencilStateCreateInfo    StructureType = 25
	StructureTypePipelineColorBlendStateCreateInfo      StructureType = 26
	StructureTypePipelineDynamicStateCreateInfo         StructureType = 27
	StructureTypeGraphicsPipelineCreateInfo             StructureType = 28
	StructureTypeComputePipelineCreateInfo              StructureType = 29
	StructureTypeDescriptorPoolCreateInfo               StructureType = 33
	StructureTypeDescriptorSetAllocateInfo              StructureType = 34
	StructureTypeCommandPoolCreateInfo                  StructureType = 39
	StructureTypeCommandBufferAllocateInfo              StructureType = 40
	StructureTypeCommandBufferInheritanceInfo           StructureType = 41
	StructureTypeCommandBufferBeginInfo                 StructureType = 42
	StructureTypeRenderPassCreateInfo                   StructureType = 38
	StructureTypeFramebufferCreateInfo                  StructureType = 37
	StructureTypeRenderPassBeginInfo                    StructureType = 43
	StructureTypeImageMemoryBarrier                     StructureType = 45
	StructureTypeBufferMemoryBarrier                    StructureType = 44
	StructureTypeQueryPoolCreateInfo                    StructureType = 11
	StructureTypeSwapchainCreateInfoKhr                 StructureType = 1000001000
	StructureTypePresentInfoKhr                         StructureType = 1000001001
	StructureTypeWin32SurfaceCreateInfoKhr               StructureType = 1000009000
	StructureTypeWaylandSurfaceCreateInfoKhr             StructureType = 1000006000
	StructureTypeXlibSurfaceCreateInfoKhr                StructureType = 1000004000
	StructureTypeMetalSurfaceCreateInfoExt               StructureType = 1000217000
	StructureTypeDebugUtilsMessengerCreateInfoExt        StructureType = 1000128004
	StructureTypeDebugUtilsObjectNameInfoExt             StructureType = 1000128000
)

// --- Format ---

type Format int32

const (
	FormatUndefined Format = 0

	FormatR8Unorm  Format = 9
	FormatR8Snorm  Format = 10
	FormatR8Uint   Format = 13
	FormatR8Sint   Format = 14

	FormatR8g8Unorm Format = 16
	FormatR8g8Snorm Format = 17
	FormatR8g8Uint  Format = 20
	FormatR8g8Sint  Format = 21

	FormatR8g8b8a8Unorm Format = 37
	FormatR8g8b8a8Snorm Format = 38
	FormatR8g8b8a8Uint  Format = 41
	FormatR8g8b8a8Sint  Format = 42
	FormatR8g8b8a8Srgb  Format = 43

	FormatB8g8r8a8Unorm Format = 44
	FormatB8g8r8a8Srgb  Format = 50

	FormatA2b10g10r10UnormPack32 Format = 64
	FormatA2b10g10r10UintPack32  Format = 66

	FormatR16Uint  Format = 74
	FormatR16Sint  Format = 75
	FormatR16Sfloat Format = 76

	FormatR16g16Uint   Format = 81
	FormatR16g16Sint   Format = 82
	FormatR16g16Sfloat Format = 83

	FormatR16g16b16a16Uint   Format = 95
	FormatR16g16b16a16Sint   Format = 96
	FormatR16g16b16a16Sfloat Format = 97

	FormatR32Uint   Format = 98
	FormatR32Sint   Format = 99
	FormatR32Sfloat Format = 100

	FormatR32g32Uint   Format = 101
	FormatR32g32Sint   Format = 102
	FormatR32g32Sfloat Format = 103

	FormatR32g32b32Sfloat Format = 106

	FormatR32g32b32a32Uint   Format = 107
	FormatR32g32b32a32Sint   Format = 108
	FormatR32g32b32a32Sfloat Format = 109

	FormatB10g11r11UfloatPack32 Format = 122
	FormatE5b9g9r9UfloatPack32  Format = 123

	FormatD16Unorm        Format = 124
	FormatX8D24UnormPack32 Format = 125
	FormatD32Sfloat       Format = 126
	FormatS8Uint          Format = 127
	FormatD24UnormS8Uint  Format = 129
	FormatD32SfloatS8Uint Format = 130

	FormatBc1RgbaUnormBlock Format = 133
	FormatBc1RgbaSrgbBlock  Format = 134
	FormatBc2UnormBlock     Format = 135
	FormatBc2SrgbBlock      Format = 136
	FormatBc3UnormBlock     Format = 137
	FormatBc3SrgbBlock      Format = 138
	FormatBc4UnormBlock     Format = 139
	FormatBc4SnormBlock     Format = 140
	FormatBc5UnormBlock     Format = 141
	FormatBc5SnormBlock     Format = 142
	FormatBc6hUfloatBlock   Format = 143
	FormatBc6hSfloatBlock   Format = 144
	FormatBc7UnormBlock     Format = 145
	FormatBc7SrgbBlock      Format = 146

	FormatEtc2R8g8b8UnormBlock   Format = 147
	FormatEtc2R8g8b8SrgbBlock    Format = 148
	FormatEtc2R8g8b8a1UnormBlock Format = 149
	FormatEtc2R8g8b8a1SrgbBlock  Format = 150
	FormatEtc2R8g8b8a8UnormBlock Format = 151
	FormatEtc2R8g8b8a8SrgbBlock  Format = 152

	FormatEacR11UnormBlock   Format = 153
	FormatEacR11SnormBlock   Format = 154
	FormatEacR11g11UnormBlock Format = 155
	FormatEacR11g11SnormBlock Format = 156

	FormatAstc4x4UnormBlock   Format = 157
	FormatAstc4x4SrgbBlock    Format = 158
	FormatAstc5x4UnormBlock   Format = 159
	FormatAstc5x4SrgbBlock    Format = 160
	FormatAstc5x5UnormBlock   Format = 161
	FormatAstc5x5SrgbBlock    Format = 162
	FormatAstc6x5UnormBlock   Format = 163
	FormatAstc6x5SrgbBlock    Format = 164
	FormatAstc6x6UnormBlock   Format = 165
	FormatAstc6x6SrgbBlock    Format = 166
	FormatAstc8x5UnormBlock   Format = 167
	FormatAstc8x5SrgbBlock    Format = 168
	FormatAstc8x6UnormBlock   Format = 169
	FormatAstc8x6SrgbBlock    Format = 170
	FormatAstc8x8UnormBlock   Format = 171
	FormatAstc8x8SrgbBlock    Format = 172
	FormatAstc10x5UnormBlock  Format = 173
	FormatAstc10x5SrgbBlock   Format = 174
	FormatAstc10x6UnormBlock  Format = 175
	FormatAstc10x6SrgbBlock   Format = 176
	FormatAstc10x8UnormBlock  Format = 177
	FormatAstc10x8SrgbBlock   Format = 178
	FormatAstc10x10UnormBlock Format = 179
	FormatAstc10x10SrgbBlock  Format = 180
	FormatAstc12x10UnormBlock Format = 181
	FormatAstc12x10SrgbBlock  Format = 182
	FormatAstc12x12UnormBlock Format = 183
	FormatAstc12x12SrgbBlock  Format = 184
)

// --- ImageLayout ---

type ImageLayout int32

const (
	ImageLayoutUndefined                    ImageLayout = 0
	ImageLayoutGeneral                      ImageLayout = 1
	ImageLayoutColorAttachmentOptimal       ImageLayout = 2
	ImageLayoutDepthStencilAttachmentOptimal ImageLayout = 3
	ImageLayoutShaderReadOnlyOptimal        ImageLayout = 5
	ImageLayoutTransferSrcOptimal           ImageLayout = 6
	ImageLayoutTransferDstOptimal           ImageLayout = 7
	ImageLayoutPresentSrcKhr                ImageLayout = 1000001002
)

// --- ImageType / ImageViewType / ImageTiling ---

type ImageType int32

const (
	ImageType1d ImageType = 0
	ImageType2d ImageType = 1
	ImageType3d ImageType = 2
)

type ImageViewType int32

const (
	ImageViewType1d      ImageViewType = 0
	ImageViewType2d      ImageViewType = 1
	ImageViewType3d      ImageViewType = 2
	ImageViewTypeCube    ImageViewType = 3
	ImageViewType2dArray ImageViewType = 5
	ImageViewTypeCubeArray ImageViewType = 6
)

type ImageTiling int32

const (
	ImageTilingOptimal ImageTiling = 0
	ImageTilingLinear  ImageTiling = 1
)

// --- Usage / access / stage / aspect flag bits ---

type (
	ImageUsageFlags      uint32
	BufferUsageFlags     uint32
	MemoryPropertyFlags  uint32
	MemoryHeapFlags      uint32
	ImageAspectFlags     uint32
	AccessFlags          uint32
	PipelineStageFlags   uint32
	DependencyFlags      uint32
	ShaderStageFlags     uint32
	CullModeFlags        uint32
	ColorComponentFlags  uint32
	SampleCountFlagBits  uint32
	CommandBufferUsageFlags    uint32
	CommandPoolCreateFlags     uint32
	CommandPoolResetFlags      uint32
	DescriptorPoolCreateFlags  uint32
	StencilFaceFlags     uint32
	QueueFlags           uint32
	DebugUtilsMessageSeverityFlagsEXT   uint32
	DebugUtilsMessageSeverityFlagBitsEXT uint32
	DebugUtilsMessageTypeFlagsEXT        uint32
	DebugUtilsMessageTypeFlagBitsEXT     uint32
)

const (
	ImageUsageTransferSrcBit      = ImageUsageFlags(0x00000001)
	ImageUsageTransferDstBit      = ImageUsageFlags(0x00000002)
	ImageUsageSampledBit          = ImageUsageFlags(0x00000004)
	ImageUsageStorageBit          = ImageUsageFlags(0x00000008)
	ImageUsageColorAttachmentBit  = ImageUsageFlags(0x00000010)
	ImageUsageDepthStencilAttachmentBit = ImageUsageFlags(0x00000020)
)

const (
	BufferUsageTransferSrcBit   = BufferUsageFlags(0x00000001)
	BufferUsageTransferDstBit   = BufferUsageFlags(0x00000002)
	BufferUsageUniformTexelBufferBit = BufferUsageFlags(0x00000004)
	BufferUsageStorageTexelBufferBit = BufferUsageFlags(0x00000008)
	BufferUsageUniformBufferBit = BufferUsageFlags(0x00000010)
	BufferUsageStorageBufferBit = BufferUsageFlags(0x00000020)
	BufferUsageIndexBufferBit   = BufferUsageFlags(0x00000040)
	BufferUsageVertexBufferBit  = BufferUsageFlags(0x00000080)
	BufferUsageIndirectBufferBit = BufferUsageFlags(0x00000100)
)

const (
	MemoryPropertyDeviceLocalBit     = MemoryPropertyFlags(0x00000001)
	MemoryPropertyHostVisibleBit     = MemoryPropertyFlags(0x00000002)
	MemoryPropertyHostCoherentBit    = MemoryPropertyFlags(0x00000004)
	MemoryPropertyHostCachedBit      = MemoryPropertyFlags(0x00000008)
	MemoryPropertyLazilyAllocatedBit = MemoryPropertyFlags(0x00000010)
)

const (
	ImageAspectColorBit   = ImageAspectFlags(0x00000001)
	ImageAspectDepthBit   = ImageAspectFlags(0x00000002)
	ImageAspectStencilBit = ImageAspectFlags(0x00000004)
)

const (
	AccessIndirectCommandReadBit       = AccessFlags(0x00000001)
	AccessIndexReadBit                 = AccessFlags(0x00000002)
	AccessVertexAttributeReadBit       = AccessFlags(0x00000004)
	AccessUniformReadBit               = AccessFlags(0x00000008)
	AccessShaderReadBit                = AccessFlags(0x00000020)
	AccessShaderWriteBit               = AccessFlags(0x00000040)
	AccessColorAttachmentReadBit       = AccessFlags(0x00000080)
	AccessColorAttachmentWriteBit      = AccessFlags(0x00000100)
	AccessDepthStencilAttachmentReadBit  = AccessFlags(0x00000200)
	AccessDepthStencilAttachmentWriteBit = AccessFlags(0x00000400)
	AccessTransferReadBit              = AccessFlags(0x00000800)
	AccessTransferWriteBit             = AccessFlags(0x00001000)
)

const (
	PipelineStageTopOfPipeBit              = PipelineStageFlags(0x00000001)
	PipelineStageDrawIndirectBit           = PipelineStageFlags(0x00000002)
	PipelineStageVertexInputBit            = PipelineStageFlags(0x00000004)
	PipelineStageVertexShaderBit           = PipelineStageFlags(0x00000008)
	PipelineStageFragmentShaderBit         = PipelineStageFlags(0x00000080)
	PipelineStageColorAttachmentOutputBit  = PipelineStageFlags(0x00000400)
	PipelineStageComputeShaderBit          = PipelineStageFlags(0x00000800)
	PipelineStageTransferBit               = PipelineStageFlags(0x00001000)
	PipelineStageBottomOfPipeBit           = PipelineStageFlags(0x00002000)
	PipelineStageAllCommandsBit            = PipelineStageFlags(0x00010000)
)

const DependencyByRegionBit = DependencyFlags(0x00000001)

const (
	ShaderStageVertexBit   = ShaderStageFlags(0x00000001)
	ShaderStageFragmentBit = ShaderStageFlags(0x00000010)
	ShaderStageComputeBit  = ShaderStageFlags(0x00000020)
)

const (
	CullModeNone     = CullModeFlags(0)
	CullModeFrontBit = CullModeFlags(0x00000001)
	CullModeBackBit  = CullModeFlags(0x00000002)
)

const (
	ColorComponentRBit = ColorComponentFlags(0x00000001)
	ColorComponentGBit = ColorComponentFlags(0x00000002)
	ColorComponentBBit = ColorComponentFlags(0x00000004)
	ColorComponentABit = ColorComponentFlags(0x00000008)
)

const (
	CommandBufferUsageOneTimeSubmitBit      = CommandBufferUsageFlags(0x00000001)
	CommandBufferUsageRenderPassContinueBit = CommandBufferUsageFlags(0x00000002)
	CommandBufferUsageSimultaneousUseBit    = CommandBufferUsageFlags(0x00000004)
)

const CommandPoolCreateResetCommandBufferBit = CommandPoolCreateFlags(0x00000002)

const DescriptorPoolCreateFreeDescriptorSetBit = DescriptorPoolCreateFlags(0x00000001)

const StencilFaceFrontAndBack = StencilFaceFlags(0x00000003)

const QueueGraphicsBit = QueueFlags(0x00000001)

const (
	DebugUtilsMessageSeverityInfoBitExt    = DebugUtilsMessageSeverityFlagBitsEXT(0x00000010)
	DebugUtilsMessageSeverityWarningBitExt = DebugUtilsMessageSeverityFlagBitsEXT(0x00000100)
	DebugUtilsMessageSeverityErrorBitExt   = DebugUtilsMessageSeverityFlagBitsEXT(0x00001000)
)

const (
	DebugUtilsMessageTypeGeneralBitExt     = DebugUtilsMessageTypeFlagBitsEXT(0x00000001)
	DebugUtilsMessageTypeValidationBitExt  = DebugUtilsMessageTypeFlagBitsEXT(0x00000002)
	DebugUtilsMessageTypePerformanceBitExt = DebugUtilsMessageTypeFlagBitsEXT(0x00000004)
)

// --- small enums ---

type SharingMode int32

const SharingModeExclusive SharingMode = 0

type AttachmentLoadOp int32

const (
	AttachmentLoadOpLoad     AttachmentLoadOp = 0
	AttachmentLoadOpClear    AttachmentLoadOp = 1
	AttachmentLoadOpDontCare AttachmentLoadOp = 2
)

type AttachmentStoreOp int32

const (
	AttachmentStoreOpStore    AttachmentStoreOp = 0
	AttachmentStoreOpDontCare AttachmentStoreOp = 1
)

type PipelineBindPoint int32

const (
	PipelineBindPointGraphics PipelineBindPoint = 0
	PipelineBindPointCompute  PipelineBindPoint = 1
)

type IndexType int32

const (
	IndexTypeUint16 IndexType = 0
	IndexTypeUint32 IndexType = 1
)

type DescriptorType int32

const (
	DescriptorTypeSampler              DescriptorType = 0
	DescriptorTypeCombinedImageSampler DescriptorType = 1
	DescriptorTypeSampledImage         DescriptorType = 2
	DescriptorTypeStorageImage         DescriptorType = 3
	DescriptorTypeUniformTexelBuffer   DescriptorType = 4
	DescriptorTypeStorageTexelBuffer   DescriptorType = 5
	DescriptorTypeUniformBuffer        DescriptorType = 6
	DescriptorTypeStorageBuffer        DescriptorType = 7
	DescriptorTypeInputAttachment      DescriptorType = 10
)

type CommandBufferLevel int32

const (
	CommandBufferLevelPrimary   CommandBufferLevel = 0
	CommandBufferLevelSecondary CommandBufferLevel = 1
)

type QueryType int32

const (
	QueryTypeOcclusion QueryType = 0
	QueryTypeTimestamp QueryType = 2
)

type PresentModeKHR int32

const (
	PresentModeImmediateKhr   PresentModeKHR = 0
	PresentModeMailboxKhr     PresentModeKHR = 1
	PresentModeFifoKhr        PresentModeKHR = 2
	PresentModeFifoRelaxedKhr PresentModeKHR = 3
)

type ColorSpaceKHR int32

const ColorSpaceSrgbNonlinearKhr ColorSpaceKHR = 0

type CompositeAlphaFlagsKHR uint32

const CompositeAlphaOpaqueBitKhr = CompositeAlphaFlagsKHR(0x00000001)

type SurfaceTransformFlagsKHR uint32

const SurfaceTransformIdentityBitKhr = SurfaceTransformFlagsKHR(0x00000001)

type Filter int32

const (
	FilterNearest Filter = 0
	FilterLinear  Filter = 1
)

type SamplerAddressMode int32

const (
	SamplerAddressModeRepeat         SamplerAddressMode = 0
	SamplerAddressModeMirroredRepeat SamplerAddressMode = 1
	SamplerAddressModeClampToEdge    SamplerAddressMode = 2
	SamplerAddressModeClampToBorder  SamplerAddressMode = 3
)

type SamplerMipmapMode int32

const (
	SamplerMipmapModeNearest SamplerMipmapMode = 0
	SamplerMipmapModeLinear  SamplerMipmapMode = 1
)

type BorderColor int32

const (
	BorderColorFloatTransparentBlack BorderColor = 0
	BorderColorFloatOpaqueBlack      BorderColor = 2
	BorderColorFloatOpaqueWhite      BorderColor = 4
)

type CompareOp int32

const (
	CompareOpNever          CompareOp = 0
	CompareOpLess           CompareOp = 1
	CompareOpEqual          CompareOp = 2
	CompareOpLessOrEqual    CompareOp = 3
	CompareOpGreater        CompareOp = 4
	CompareOpNotEqual       CompareOp = 5
	CompareOpGreaterOrEqual CompareOp = 6
	CompareOpAlways         CompareOp = 7
)

type StencilOp int32

const (
	StencilOpKeep              StencilOp = 0
	StencilOpZero              StencilOp = 1
	StencilOpReplace           StencilOp = 2
	StencilOpIncrementAndClamp StencilOp = 3
	StencilOpDecrementAndClamp StencilOp = 4
	StencilOpInvert            StencilOp = 5
	StencilOpIncrementAndWrap  StencilOp = 6
	StencilOpDecrementAndWrap  StencilOp = 7
)

type BlendFactor int32

const (
	BlendFactorZero                  BlendFactor = 0
	BlendFactorOne                   BlendFactor = 1
	BlendFactorSrcColor              BlendFactor = 2
	BlendFactorOneMinusSrcColor      BlendFactor = 3
	BlendFactorDstColor              BlendFactor = 4
	BlendFactorOneMinusDstColor      BlendFactor = 5
	BlendFactorSrcAlpha              BlendFactor = 6
	BlendFactorOneMinusSrcAlpha      BlendFactor = 7
	BlendFactorDstAlpha              BlendFactor = 8
	BlendFactorOneMinusDstAlpha      BlendFactor = 9
	BlendFactorConstantColor         BlendFactor = 10
	BlendFactorOneMinusConstantColor BlendFactor = 11
	BlendFactorSrcAlphaSaturate      BlendFactor = 14
)

type BlendOp int32

const (
	BlendOpAdd             BlendOp = 0
	BlendOpSubtract        BlendOp = 1
	BlendOpReverseSubtract BlendOp = 2
	BlendOpMin             BlendOp = 3
	BlendOpMax             BlendOp = 4
)

type LogicOp int32

const (
	LogicOpClear LogicOp = 0
	LogicOpCopy  LogicOp = 3
	LogicOpNoOp  LogicOp = 5
	LogicOpSet   LogicOp = 15
)

type FrontFace int32

const (
	FrontFaceCounterClockwise FrontFace = 0
	FrontFaceClockwise        FrontFace = 1
)

type PolygonMode int32

const (
	PolygonModeFill  PolygonMode = 0
	PolygonModeLine  PolygonMode = 1
	PolygonModePoint PolygonMode = 2
)

type PrimitiveTopology int32

const (
	PrimitiveTopologyPointList     PrimitiveTopology = 0
	PrimitiveTopologyLineList      PrimitiveTopology = 1
	PrimitiveTopologyLineStrip     PrimitiveTopology = 2
	PrimitiveTopologyTriangleList  PrimitiveTopology = 3
	PrimitiveTopologyTriangleStrip PrimitiveTopology = 4
)

type VertexInputRate int32

const (
	VertexInputRateVertex   VertexInputRate = 0
	VertexInputRateInstance VertexInputRate = 1
)

type DynamicState int32

const (
	DynamicStateViewport DynamicState = 0
	DynamicStateScissor  DynamicState = 1
)

type ResolveModeFlagBits uint32

const ResolveModeAverageBit = ResolveModeFlagBits(0x00000002)

type SemaphoreType int32

const (
	SemaphoreTypeBinary   SemaphoreType = 0
	SemaphoreTypeTimeline SemaphoreType = 1
)

type QueryResultFlags uint32

const (
	QueryResult64Bit = QueryResultFlags(0x00000001)
	QueryResultWaitBit = QueryResultFlags(0x00000002)
)

type PipelineStageFlagBits = PipelineStageFlags

type ObjectType int32

const (
	ObjectTypeRenderPass  ObjectType = 6
	ObjectTypeFramebuffer ObjectType = 23
	ObjectTypeQueryPool   ObjectType = 26
)

type PhysicalDeviceType int32

const (
	PhysicalDeviceTypeIntegratedGpu PhysicalDeviceType = 1
	PhysicalDeviceTypeDiscreteGpu   PhysicalDeviceType = 2
	PhysicalDeviceTypeVirtualGpu    PhysicalDeviceType = 3
	PhysicalDeviceTypeCpu           PhysicalDeviceType = 4
)

// --- geometry / common structs ---

type Offset2D struct {
	X, Y int32
}

type Offset3D struct {
	X, Y, Z int32
}

type Extent2D struct {
	Width, Height uint32
}

type Extent3D struct {
	Width, Height, Depth uint32
}

type Rect2D struct {
	Offset Offset2D
	Extent Extent2D
}

type Viewport struct {
	X, Y, Width, Height, MinDepth, MaxDepth float32
}

type ComponentMapping struct {
	R, G, B, A int32 // ComponentSwizzle
}

const ComponentSwizzleIdentity int32 = 0

type ClearColorValue [4]float32

type ClearDepthStencilValue struct {
	Depth   float32
	Stencil uint32
}

// ClearValue is a tagged C union; GoGPU's const_ext.go provides byte-level
// accessors (ClearValueColor, GetDepthStencil, ...) instead of a Go union.
type ClearValue [4]uint32

type ClearAttachment struct {
	AspectMask      ImageAspectFlags
	ColorAttachment uint32
	ClearValue      ClearValue
}

type ClearRect struct {
	Rect           Rect2D
	BaseArrayLayer uint32
	LayerCount     uint32
}

// SubpassContents selects how commands within a subpass are provided.
type SubpassContents int32

const (
	SubpassContentsInline                  SubpassContents = 0
	SubpassContentsSecondaryCommandBuffers SubpassContents = 1
)

// RenderPassBeginInfo parameterizes vkCmdBeginRenderPass.
type RenderPassBeginInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	RenderPass      RenderPass
	Framebuffer     Framebuffer
	RenderArea      Rect2D
	ClearValueCount uint32
	PClearValues    *ClearValue
}

// --- instance / device ---

type ApplicationInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	PApplicationName  *byte
	ApplicationVersion uint32
	PEngineName       *byte
	EngineVersion     uint32
	ApiVersion        uint32
}

type InstanceCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   uint32
	PApplicationInfo        *ApplicationInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     *uintptr
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames *uintptr
}

type DeviceQueueCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            uint32
	QueueFamilyIndex uint32
	QueueCount       uint32
	PQueuePriorities *float32
}

type DeviceCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   uint32
	QueueCreateInfoCount    uint32
	PQueueCreateInfos       *DeviceQueueCreateInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     *uintptr
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames *uintptr
	PEnabledFeatures        *PhysicalDeviceFeatures
}

// PhysicalDeviceFeatures is truncated to the fields GoGPU's Vulkan backend
// actually inspects; the remaining boolean feature flags are not part of
// this repository's surface.
type PhysicalDeviceFeatures struct {
	RobustBufferAccess                     Bool32
	FullDrawIndexUint32                    Bool32
	ImageCubeArray                         Bool32
	IndependentBlend                       Bool32
	GeometryShader                         Bool32
	TessellationShader                     Bool32
	SampleRateShading                      Bool32
	DualSrcBlend                           Bool32
	SamplerAnisotropy                      Bool32
	TextureCompressionBC                   Bool32
	OcclusionQueryPrecise                  Bool32
	PipelineStatisticsQuery                Bool32
	FragmentStoresAndAtomics               Bool32
	ShaderStorageImageExtendedFormats      Bool32
	ShaderUniformBufferArrayDynamicIndexing Bool32
	ShaderSampledImageArrayDynamicIndexing Bool32
	VariableMultisampleRate                Bool32
}

type QueueFamilyProperties struct {
	QueueFlags                  QueueFlags
	QueueCount                  uint32
	TimestampValidBits          uint32
	MinImageTransferGranularity Extent3D
}

type MemoryType struct {
	PropertyFlags MemoryPropertyFlags
	HeapIndex     uint32
}

type MemoryHeap struct {
	Size  DeviceSize
	Flags MemoryHeapFlags
}

const maxMemoryTypes = 32
const maxMemoryHeaps = 16

type PhysicalDeviceMemoryProperties struct {
	MemoryTypeCount uint32
	MemoryTypes     [maxMemoryTypes]MemoryType
	MemoryHeapCount uint32
	MemoryHeaps     [maxMemoryHeaps]MemoryHeap
}

type PhysicalDeviceLimits struct {
	MaxImageDimension1D                uint32
	MaxImageDimension2D                uint32
	MaxImageDimension3D                uint32
	MaxImageDimensionCube              uint32
	MaxImageArrayLayers                uint32
	MaxUniformBufferRange               uint32
	MaxStorageBufferRange               uint32
	MaxPushConstantsSize                uint32
	MaxBoundDescriptorSets              uint32
	MaxPerStageDescriptorSamplers       uint32
	MaxPerStageDescriptorUniformBuffers uint32
	MaxPerStageDescriptorStorageBuffers uint32
	MaxPerStageDescriptorSampledImages  uint32
	MaxPerStageDescriptorStorageImages  uint32
	MaxVertexInputAttributes            uint32
	MaxVertexInputBindings              uint32
	MinUniformBufferOffsetAlignment     DeviceSize
	MinStorageBufferOffsetAlignment     DeviceSize
	MinTexelBufferOffsetAlignment       DeviceSize
	NonCoherentAtomSize                 DeviceSize
	BufferImageGranularity              DeviceSize
	MaxSamplerAnisotropy                float32
	FramebufferColorSampleCounts        SampleCountFlagBits
	FramebufferDepthSampleCounts        SampleCountFlagBits
}

// PhysicalDeviceProperties carries only the subset this repository reads
// (vendor/device identity, device class, and the limits block).
type PhysicalDeviceProperties struct {
	ApiVersion       uint32
	DriverVersion    uint32
	VendorID         uint32
	DeviceID         uint32
	DeviceType       PhysicalDeviceType
	DeviceName       [256]byte
	PipelineCacheUUID [16]byte
	Limits           PhysicalDeviceLimits
}

type ExtensionProperties struct {
	ExtensionName [256]byte
	SpecVersion   uint32
}

type LayerProperties struct {
	LayerName             [256]byte
	SpecVersion           uint32
	ImplementationVersion uint32
	Description           [256]byte
}

// --- memory ---

type MemoryRequirements struct {
	Size           DeviceSize
	Alignment      DeviceSize
	MemoryTypeBits uint32
}

type MemoryRequirements2 struct {
	SType              StructureType
	PNext              unsafe.Pointer
	MemoryRequirements MemoryRequirements
}

type MemoryAllocateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	AllocationSize  DeviceSize
	MemoryTypeIndex uint32
}

// AllocationCallbacks is never populated by this repository; a nil
// pointer tells the driver to use its default allocator.
type AllocationCallbacks struct {
	_ unsafe.Pointer
}

// --- buffer / image ---

type BufferCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 uint32
	Size                  DeviceSize
	Usage                 BufferUsageFlags
	SharingMode           SharingMode
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   *uint32
}

type ImageCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 uint32
	ImageType             ImageType
	Format                Format
	Extent                Extent3D
	MipLevels             uint32
	ArrayLayers           uint32
	Samples               SampleCountFlagBits
	Tiling                ImageTiling
	Usage                 ImageUsageFlags
	SharingMode           SharingMode
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   *uint32
	InitialLayout         ImageLayout
}

type ImageSubresourceRange struct {
	AspectMask     ImageAspectFlags
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type ImageSubresourceLayers struct {
	AspectMask     ImageAspectFlags
	MipLevel       uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type ImageViewCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            uint32
	Image            Image
	ViewType         ImageViewType
	Format           Format
	Components       ComponentMapping
	SubresourceRange ImageSubresourceRange
}

type SamplerCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   uint32
	MagFilter               Filter
	MinFilter               Filter
	MipmapMode              SamplerMipmapMode
	AddressModeU            SamplerAddressMode
	AddressModeV            SamplerAddressMode
	AddressModeW            SamplerAddressMode
	MipLodBias              float32
	AnisotropyEnable        Bool32
	MaxAnisotropy           float32
	CompareEnable           Bool32
	CompareOp               CompareOp
	MinLod                  float32
	MaxLod                  float32
	BorderColor              BorderColor
	UnnormalizedCoordinates Bool32
}

type ShaderModuleCreateInfo struct {
	SType    StructureType
	PNext    unsafe.Pointer
	Flags    uint32
	CodeSize uintptr
	PCode    *uint32
}

// --- descriptors ---

type DescriptorSetLayoutBinding struct {
	Binding            uint32
	DescriptorType     DescriptorType
	DescriptorCount    uint32
	StageFlags         ShaderStageFlags
	PImmutableSamplers *Sampler
}

type DescriptorSetLayoutCreateInfo struct {
	SType        StructureType
	PNext        unsafe.Pointer
	Flags        uint32
	BindingCount uint32
	PBindings    *DescriptorSetLayoutBinding
}

type PushConstantRange struct {
	StageFlags ShaderStageFlags
	Offset     uint32
	Size       uint32
}

type PipelineLayoutCreateInfo struct {
	SType                  StructureType
	PNext                  unsafe.Pointer
	Flags                  uint32
	SetLayoutCount         uint32
	PSetLayouts            *DescriptorSetLayout
	PushConstantRangeCount uint32
	PPushConstantRanges    *PushConstantRange
}

type DescriptorPoolSize struct {
	Type            DescriptorType
	DescriptorCount uint32
}

type DescriptorPoolCreateInfo struct {
	SType         StructureType
	PNext         unsafe.Pointer
	Flags         DescriptorPoolCreateFlags
	MaxSets       uint32
	PoolSizeCount uint32
	PPoolSizes    *DescriptorPoolSize
}

type DescriptorSetAllocateInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	DescriptorPool     DescriptorPool
	DescriptorSetCount uint32
	PSetLayouts        *DescriptorSetLayout
}

type DescriptorImageInfo struct {
	Sampler     Sampler
	ImageView   ImageView
	ImageLayout ImageLayout
}

type DescriptorBufferInfo struct {
	Buffer Buffer
	Offset DeviceSize
	Range  DeviceSize
}

type WriteDescriptorSet struct {
	SType            StructureType
	PNext            unsafe.Pointer
	DstSet           DescriptorSet
	DstBinding       uint32
	DstArrayElement  uint32
	DescriptorCount  uint32
	DescriptorType   DescriptorType
	PImageInfo       *DescriptorImageInfo
	PBufferInfo      *DescriptorBufferInfo
	PTexelBufferView *unsafe.Pointer
}

type CopyDescriptorSet struct {
	SType           StructureType
	PNext           unsafe.Pointer
	SrcSet          DescriptorSet
	SrcBinding      uint32
	SrcArrayElement uint32
	DstSet          DescriptorSet
	DstBinding      uint32
	DstArrayElement uint32
	DescriptorCount uint32
}

// --- render pass / framebuffer ---

type AttachmentDescription struct {
	Flags          uint32
	Format         Format
	Samples        SampleCountFlagBits
	LoadOp         AttachmentLoadOp
	StoreOp        AttachmentStoreOp
	StencilLoadOp  AttachmentLoadOp
	StencilStoreOp AttachmentStoreOp
	InitialLayout  ImageLayout
	FinalLayout    ImageLayout
}

type AttachmentReference struct {
	Attachment uint32
	Layout     ImageLayout
}

type SubpassDescription struct {
	Flags                   uint32
	PipelineBindPoint       PipelineBindPoint
	InputAttachmentCount    uint32
	PInputAttachments       *AttachmentReference
	ColorAttachmentCount    uint32
	PColorAttachments       *AttachmentReference
	PResolveAttachments     *AttachmentReference
	PDepthStencilAttachment *AttachmentReference
	PreserveAttachmentCount uint32
	PPreserveAttachments    *uint32
}

type SubpassDependency struct {
	SrcSubpass      uint32
	DstSubpass      uint32
	SrcStageMask    PipelineStageFlags
	DstStageMask    PipelineStageFlags
	SrcAccessMask   AccessFlags
	DstAccessMask   AccessFlags
	DependencyFlags DependencyFlags
}

type RenderPassCreateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           uint32
	AttachmentCount uint32
	PAttachments    *AttachmentDescription
	SubpassCount    uint32
	PSubpasses      *SubpassDescription
	DependencyCount uint32
	PDependencies   *SubpassDependency
}

type FramebufferCreateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           uint32
	RenderPass      RenderPass
	AttachmentCount uint32
	PAttachments    *ImageView
	Width           uint32
	Height          uint32
	Layers          uint32
}

// --- dynamic rendering (Vulkan 1.3) ---

type RenderingAttachmentInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	ImageView          ImageView
	ImageLayout        ImageLayout
	ResolveMode        ResolveModeFlagBits
	ResolveImageView   ImageView
	ResolveImageLayout ImageLayout
	LoadOp             AttachmentLoadOp
	StoreOp            AttachmentStoreOp
	ClearValue         ClearValue
}

type RenderingInfo struct {
	SType                StructureType
	PNext                unsafe.Pointer
	Flags                uint32
	RenderArea           Rect2D
	LayerCount           uint32
	ViewMask             uint32
	ColorAttachmentCount uint32
	PColorAttachments    *RenderingAttachmentInfo
	PDepthAttachment     *RenderingAttachmentInfo
	PStencilAttachment   *RenderingAttachmentInfo
}

type PipelineRenderingCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	ViewMask                uint32
	ColorAttachmentCount    uint32
	PColorAttachmentFormats *Format
	DepthAttachmentFormat   Format
	StencilAttachmentFormat Format
}

// --- command pools/buffers ---

type CommandPoolCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            CommandPoolCreateFlags
	QueueFamilyIndex uint32
}

type CommandBufferAllocateInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	CommandPool        CommandPool
	Level              CommandBufferLevel
	CommandBufferCount uint32
}

type CommandBufferInheritanceInfo struct {
	SType                StructureType
	PNext                unsafe.Pointer
	RenderPass           RenderPass
	Subpass              uint32
	Framebuffer          Framebuffer
	OcclusionQueryEnable Bool32
	QueryFlags           uint32
	PipelineStatistics   uint32
}

type CommandBufferBeginInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            CommandBufferUsageFlags
	PInheritanceInfo *CommandBufferInheritanceInfo
}

// --- sync ---

type SemaphoreCreateInfo struct {
	SType StructureType
	PNext unsafe.Pointer
	Flags uint32
}

type SemaphoreTypeCreateInfo struct {
	SType         StructureType
	PNext         unsafe.Pointer
	SemaphoreType SemaphoreType
	InitialValue  uint64
}

type SemaphoreWaitInfo struct {
	SType          StructureType
	PNext          unsafe.Pointer
	Flags          uint32
	SemaphoreCount uint32
	PSemaphores    *Semaphore
	PValues        *uint64
}

type FenceCreateInfo struct {
	SType StructureType
	PNext unsafe.Pointer
	Flags uint32
}

const FenceCreateSignaledBit uint32 = 0x00000001

type SubmitInfo struct {
	SType                StructureType
	PNext                unsafe.Pointer
	WaitSemaphoreCount   uint32
	PWaitSemaphores      *Semaphore
	PWaitDstStageMask    *PipelineStageFlags
	CommandBufferCount   uint32
	PCommandBuffers      *CommandBuffer
	SignalSemaphoreCount uint32
	PSignalSemaphores    *Semaphore
}

// --- copy regions ---

type BufferCopy struct {
	SrcOffset DeviceSize
	DstOffset DeviceSize
	Size      DeviceSize
}

type BufferImageCopy struct {
	BufferOffset      DeviceSize
	BufferRowLength   uint32
	BufferImageHeight uint32
	ImageSubresource  ImageSubresourceLayers
	ImageOffset       Offset3D
	ImageExtent       Extent3D
}

type ImageCopy struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffset      Offset3D
	DstSubresource ImageSubresourceLayers
	DstOffset      Offset3D
	Extent         Extent3D
}

type ImageBlit struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffsets     [2]Offset3D
	DstSubresource ImageSubresourceLayers
	DstOffsets     [2]Offset3D
}

// --- barriers ---

type MemoryBarrier struct {
	SType         StructureType
	PNext         unsafe.Pointer
	SrcAccessMask AccessFlags
	DstAccessMask AccessFlags
}

type BufferMemoryBarrier struct {
	SType               StructureType
	PNext               unsafe.Pointer
	SrcAccessMask       AccessFlags
	DstAccessMask       AccessFlags
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Buffer              Buffer
	Offset              DeviceSize
	Size                DeviceSize
}

type ImageMemoryBarrier struct {
	SType               StructureType
	PNext               unsafe.Pointer
	SrcAccessMask       AccessFlags
	DstAccessMask       AccessFlags
	OldLayout           ImageLayout
	NewLayout           ImageLayout
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Image               Image
	SubresourceRange    ImageSubresourceRange
}

// --- vertex input ---

type VertexInputBindingDescription struct {
	Binding   uint32
	Stride    uint32
	InputRate VertexInputRate
}

type VertexInputAttributeDescription struct {
	Location uint32
	Binding  uint32
	Format   Format
	Offset   uint32
}

type PipelineVertexInputStateCreateInfo struct {
	SType                           StructureType
	PNext                           unsafe.Pointer
	Flags                           uint32
	VertexBindingDescriptionCount   uint32
	PVertexBindingDescriptions      *VertexInputBindingDescription
	VertexAttributeDescriptionCount uint32
	PVertexAttributeDescriptions    *VertexInputAttributeDescription
}

type PipelineInputAssemblyStateCreateInfo struct {
	SType                  StructureType
	PNext                  unsafe.Pointer
	Flags                  uint32
	Topology               PrimitiveTopology
	PrimitiveRestartEnable Bool32
}

type PipelineViewportStateCreateInfo struct {
	SType         StructureType
	PNext         unsafe.Pointer
	Flags         uint32
	ViewportCount uint32
	PViewports    *Viewport
	ScissorCount  uint32
	PScissors     *Rect2D
}

type PipelineRasterizationStateCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   uint32
	DepthClampEnable        Bool32
	RasterizerDiscardEnable Bool32
	PolygonMode             PolygonMode
	CullMode                CullModeFlags
	FrontFace               FrontFace
	DepthBiasEnable         Bool32
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	LineWidth               float32
}

type PipelineMultisampleStateCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 uint32
	RasterizationSamples  SampleCountFlagBits
	SampleShadingEnable   Bool32
	MinSampleShading      float32
	PSampleMask           *SampleMask
	AlphaToCoverageEnable Bool32
	AlphaToOneEnable      Bool32
}

type StencilOpState struct {
	FailOp      StencilOp
	PassOp      StencilOp
	DepthFailOp StencilOp
	CompareOp   CompareOp
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
}

type PipelineDepthStencilStateCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 uint32
	DepthTestEnable       Bool32
	DepthWriteEnable      Bool32
	DepthCompareOp        CompareOp
	DepthBoundsTestEnable Bool32
	StencilTestEnable     Bool32
	Front                 StencilOpState
	Back                  StencilOpState
	MinDepthBounds        float32
	MaxDepthBounds        float32
}

type PipelineColorBlendAttachmentState struct {
	BlendEnable         Bool32
	SrcColorBlendFactor BlendFactor
	DstColorBlendFactor BlendFactor
	ColorBlendOp        BlendOp
	SrcAlphaBlendFactor BlendFactor
	DstAlphaBlendFactor BlendFactor
	AlphaBlendOp        BlendOp
	ColorWriteMask      ColorComponentFlags
}

type PipelineColorBlendStateCreateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           uint32
	LogicOpEnable   Bool32
	LogicOp         LogicOp
	AttachmentCount uint32
	PAttachments    *PipelineColorBlendAttachmentState
	BlendConstants  [4]float32
}

type PipelineDynamicStateCreateInfo struct {
	SType             StructureType
	PNext             unsafe.Pointer
	Flags             uint32
	DynamicStateCount uint32
	PDynamicStates    *DynamicState
}

type SpecializationMapEntry struct {
	ConstantID uint32
	Offset     uint32
	Size       uintptr
}

type SpecializationInfo struct {
	MapEntryCount uint32
	PMapEntries   *SpecializationMapEntry
	DataSize      uintptr
	PData         unsafe.Pointer
}

type PipelineShaderStageCreateInfo struct {
	SType               StructureType
	PNext               unsafe.Pointer
	Flags               uint32
	Stage               ShaderStageFlags
	Module              ShaderModule
	PName               *byte
	PSpecializationInfo *SpecializationInfo
}

type GraphicsPipelineCreateInfo struct {
	SType               StructureType
	PNext               unsafe.Pointer
	Flags               uint32
	StageCount          uint32
	PStages             *PipelineShaderStageCreateInfo
	PVertexInputState   *PipelineVertexInputStateCreateInfo
	PInputAssemblyState *PipelineInputAssemblyStateCreateInfo
	PTessellationState  unsafe.Pointer
	PViewportState      *PipelineViewportStateCreateInfo
	PRasterizationState *PipelineRasterizationStateCreateInfo
	PMultisampleState   *PipelineMultisampleStateCreateInfo
	PDepthStencilState  *PipelineDepthStencilStateCreateInfo
	PColorBlendState    *PipelineColorBlendStateCreateInfo
	PDynamicState       *PipelineDynamicStateCreateInfo
	Layout              PipelineLayout
	RenderPass          RenderPass
	Subpass             uint32
	BasePipelineHandle  Pipeline
	BasePipelineIndex   int32
}

type ComputePipelineCreateInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	Flags              uint32
	Stage              PipelineShaderStageCreateInfo
	Layout             PipelineLayout
	BasePipelineHandle Pipeline
	BasePipelineIndex  int32
}

type QueryPoolCreateInfo struct {
	SType               StructureType
	PNext               unsafe.Pointer
	Flags               uint32
	QueryType           QueryType
	QueryCount          uint32
	PipelineStatistics  uint32
}

// --- surface / swapchain ---

type SurfaceCapabilitiesKHR struct {
	MinImageCount           uint32
	MaxImageCount           uint32
	CurrentExtent           Extent2D
	MinImageExtent          Extent2D
	MaxImageExtent          Extent2D
	MaxImageArrayLayers     uint32
	SupportedTransforms     SurfaceTransformFlagsKHR
	CurrentTransform        SurfaceTransformFlagsKHR
	SupportedCompositeAlpha CompositeAlphaFlagsKHR
	SupportedUsageFlags     ImageUsageFlags
}

type SurfaceFormatKHR struct {
	Format     Format
	ColorSpace ColorSpaceKHR
}

type SwapchainCreateInfoKHR struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 uint32
	Surface               SurfaceKHR
	MinImageCount         uint32
	ImageFormat           Format
	ImageColorSpace       ColorSpaceKHR
	ImageExtent           Extent2D
	ImageArrayLayers      uint32
	ImageUsage            ImageUsageFlags
	ImageSharingMode      SharingMode
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   *uint32
	PreTransform          SurfaceTransformFlagsKHR
	CompositeAlpha        CompositeAlphaFlagsKHR
	PresentMode           PresentModeKHR
	Clipped               Bool32
	OldSwapchain          SwapchainKHR
}

type PresentInfoKHR struct {
	SType              StructureType
	PNext              unsafe.Pointer
	WaitSemaphoreCount uint32
	PWaitSemaphores    *Semaphore
	SwapchainCount     uint32
	PSwapchains        *SwapchainKHR
	PImageIndices      *uint32
	PResults           *Result
}

type Win32SurfaceCreateInfoKHR struct {
	SType     StructureType
	PNext     unsafe.Pointer
	Flags     uint32
	Hinstance uintptr
	Hwnd      uintptr
}

type WaylandSurfaceCreateInfoKHR struct {
	SType   StructureType
	PNext   unsafe.Pointer
	Flags   uint32
	Display unsafe.Pointer
	Surface unsafe.Pointer
}

type XlibSurfaceCreateInfoKHR struct {
	SType  StructureType
	PNext  unsafe.Pointer
	Flags  uint32
	Dpy    unsafe.Pointer
	Window uintptr
}

type XlibWindow = uintptr

type CAMetalLayer = unsafe.Pointer

type MetalSurfaceCreateInfoEXT struct {
	SType  StructureType
	PNext  unsafe.Pointer
	Flags  uint32
	PLayer CAMetalLayer
}

// --- debug utils ---

type DebugUtilsObjectNameInfoEXT struct {
	SType        StructureType
	PNext        unsafe.Pointer
	ObjectType   ObjectType
	ObjectHandle uint64
	PObjectName  *byte
}

type DebugUtilsMessengerCallbackDataEXT struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           uint32
	PMessageIdName  *byte
	MessageIdNumber int32
	PMessage        *byte
}

type DebugUtilsMessengerCreateInfoEXT struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           uint32
	MessageSeverity DebugUtilsMessageSeverityFlagsEXT
	MessageType     DebugUtilsMessageTypeFlagsEXT
	PfnUserCallback uintptr
	PUserData       unsafe.Pointer
}
