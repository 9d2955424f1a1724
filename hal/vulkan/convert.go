// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package vulkan

import (
	"github.com/gogpu/rhi/hal"
	"github.com/gogpu/rhi/hal/vulkan/vk"
	"github.com/gogpu/gputypes"
)

// bufferUsageToVk converts WebGPU buffer usage flags to Vulkan buffer usage flags.
func bufferUsageToVk(usage gputypes.BufferUsage) vk.BufferUsageFlags {
	var flags vk.BufferUsageFlags

	if usage&gputypes.BufferUsageCopySrc != 0 {
		flags |= vk.BufferUsageFlags(vk.BufferUsageTransferSrcBit)
	}
	if usage&gputypes.BufferUsageCopyDst != 0 {
		flags |= vk.BufferUsageFlags(vk.BufferUsageTransferDstBit)
	}
	if usage&gputypes.BufferUsageIndex != 0 {
		flags |= vk.BufferUsageFlags(vk.BufferUsageIndexBufferBit)
	}
	if usage&gputypes.BufferUsageVertex != 0 {
		flags |= vk.BufferUsageFlags(vk.BufferUsageVertexBufferBit)
	}
	if usage&gputypes.BufferUsageUniform != 0 {
		flags |= vk.BufferUsageFlags(vk.BufferUsageUniformBufferBit)
	}
	if usage&gputypes.BufferUsageStorage != 0 {
		flags |= vk.BufferUsageFlags(vk.BufferUsageStorageBufferBit)
	}
	if usage&gputypes.BufferUsageIndirect != 0 {
		flags |= vk.BufferUsageFlags(vk.BufferUsageIndirectBufferBit)
	}

	return flags
}

// textureUsageToVk converts WebGPU texture usage flags to Vulkan image usage flags.
func textureUsageToVk(usage gputypes.TextureUsage) vk.ImageUsageFlags {
	var flags vk.ImageUsageFlags

	if usage&gputypes.TextureUsageCopySrc != 0 {
		flags |= vk.ImageUsageFlags(vk.ImageUsageTransferSrcBit)
	}
	if usage&gputypes.TextureUsageCopyDst != 0 {
		flags |= vk.ImageUsageFlags(vk.ImageUsageTransferDstBit)
	}
	if usage&gputypes.TextureUsageTextureBinding != 0 {
		flags |= vk.ImageUsageFlags(vk.ImageUsageSampledBit)
	}
	if usage&gputypes.TextureUsageStorageBinding != 0 {
		flags |= vk.ImageUsageFlags(vk.ImageUsageStorageBit)
	}
	if usage&gputypes.TextureUsageRenderAttachment != 0 {
		flags |= vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit)
	}

	return flags
}

// textureDimensionToVkImageType converts WebGPU texture dimension to Vulkan image type.
func textureDimensionToVkImageType(dim gputypes.TextureDimension) vk.ImageType {
	switch dim {
	case gputypes.TextureDimension1D:
		return vk.ImageType1d
	case gputypes.TextureDimension2D:
		return vk.ImageType2d
	case gputypes.TextureDimension3D:
		return vk.ImageType3d
	default:
		return vk.ImageType2d
	}
}

// textureFormatToVk converts WebGPU texture format to Vulkan format.
// Uses a lookup table for efficient O(1) conversion.
func textureFormatToVk(format gputypes.TextureFormat) vk.Format {
	if f, ok := textureFormatMap[format]; ok {
		return f
	}
	return vk.FormatUndefined
}

// textureFormatMap maps WebGPU texture formats to Vulkan formats.
var textureFormatMap = map[gputypes.TextureFormat]vk.Format{
	// 8-bit formats
	gputypes.TextureFormatR8Unorm: vk.FormatR8Unorm,
	gputypes.TextureFormatR8Snorm: vk.FormatR8Snorm,
	gputypes.TextureFormatR8Uint:  vk.FormatR8Uint,
	gputypes.TextureFormatR8Sint:  vk.FormatR8Sint,

	// 16-bit formats
	gputypes.TextureFormatR16Uint:  vk.FormatR16Uint,
	gputypes.TextureFormatR16Sint:  vk.FormatR16Sint,
	gputypes.TextureFormatR16Float: vk.FormatR16Sfloat,
	gputypes.TextureFormatRG8Unorm: vk.FormatR8g8Unorm,
	gputypes.TextureFormatRG8Snorm: vk.FormatR8g8Snorm,
	gputypes.TextureFormatRG8Uint:  vk.FormatR8g8Uint,
	gputypes.TextureFormatRG8Sint:  vk.FormatR8g8Sint,

	// 32-bit formats
	gputypes.TextureFormatR32Uint:        vk.FormatR32Uint,
	gputypes.TextureFormatR32Sint:        vk.FormatR32Sint,
	gputypes.TextureFormatR32Float:       vk.FormatR32Sfloat,
	gputypes.TextureFormatRG16Uint:       vk.FormatR16g16Uint,
	gputypes.TextureFormatRG16Sint:       vk.FormatR16g16Sint,
	gputypes.TextureFormatRG16Float:      vk.FormatR16g16Sfloat,
	gputypes.TextureFormatRGBA8Unorm:     vk.FormatR8g8b8a8Unorm,
	gputypes.TextureFormatRGBA8UnormSrgb: vk.FormatR8g8b8a8Srgb,
	gputypes.TextureFormatRGBA8Snorm:     vk.FormatR8g8b8a8Snorm,
	gputypes.TextureFormatRGBA8Uint:      vk.FormatR8g8b8a8Uint,
	gputypes.TextureFormatRGBA8Sint:      vk.FormatR8g8b8a8Sint,
	gputypes.TextureFormatBGRA8Unorm:     vk.FormatB8g8r8a8Unorm,
	gputypes.TextureFormatBGRA8UnormSrgb: vk.FormatB8g8r8a8Srgb,

	// Packed formats
	gputypes.TextureFormatRGB9E5Ufloat:  vk.FormatE5b9g9r9UfloatPack32,
	gputypes.TextureFormatRGB10A2Uint:   vk.FormatA2b10g10r10UintPack32,
	gputypes.TextureFormatRGB10A2Unorm:  vk.FormatA2b10g10r10UnormPack32,
	gputypes.TextureFormatRG11B10Ufloat: vk.FormatB10g11r11UfloatPack32,

	// 64-bit formats
	gputypes.TextureFormatRG32Uint:    vk.FormatR32g32Uint,
	gputypes.TextureFormatRG32Sint:    vk.FormatR32g32Sint,
	gputypes.TextureFormatRG32Float:   vk.FormatR32g32Sfloat,
	gputypes.TextureFormatRGBA16Uint:  vk.FormatR16g16b16a16Uint,
	gputypes.TextureFormatRGBA16Sint:  vk.FormatR16g16b16a16Sint,
	gputypes.TextureFormatRGBA16Float: vk.FormatR16g16b16a16Sfloat,

	// 128-bit formats
	gputypes.TextureFormatRGBA32Uint:  vk.FormatR32g32b32a32Uint,
	gputypes.TextureFormatRGBA32Sint:  vk.FormatR32g32b32a32Sint,
	gputypes.TextureFormatRGBA32Float: vk.FormatR32g32b32a32Sfloat,

	// Depth/stencil formats
	gputypes.TextureFormatStencil8:             vk.FormatS8Uint,
	gputypes.TextureFormatDepth16Unorm:         vk.FormatD16Unorm,
	gputypes.TextureFormatDepth24Plus:          vk.FormatX8D24UnormPack32,
	gputypes.TextureFormatDepth24PlusStencil8:  vk.FormatD24UnormS8Uint,
	gputypes.TextureFormatDepth32Float:         vk.FormatD32Sfloat,
	gputypes.TextureFormatDepth32FloatStencil8: vk.FormatD32SfloatS8Uint,

	// BC compressed formats
	gputypes.TextureFormatBC1RGBAUnorm:     vk.FormatBc1RgbaUnormBlock,
	gputypes.TextureFormatBC1RGBAUnormSrgb: vk.FormatBc1RgbaSrgbBlock,
	gputypes.TextureFormatBC2RGBAUnorm:     vk.FormatBc2UnormBlock,
	gputypes.TextureFormatBC2RGBAUnormSrgb: vk.FormatBc2SrgbBlock,
	gputypes.TextureFormatBC3RGBAUnorm:     vk.FormatBc3UnormBlock,
	gputypes.TextureFormatBC3RGBAUnormSrgb: vk.FormatBc3SrgbBlock,
	gputypes.TextureFormatBC4RUnorm:        vk.FormatBc4UnormBlock,
	gputypes.TextureFormatBC4RSnorm:        vk.FormatBc4SnormBlock,
	gputypes.TextureFormatBC5RGUnorm:       vk.FormatBc5UnormBlock,
	gputypes.TextureFormatBC5RGSnorm:       vk.FormatBc5SnormBlock,
	gputypes.TextureFormatBC6HRGBUfloat:    vk.FormatBc6hUfloatBlock,
	gputypes.TextureFormatBC6HRGBFloat:     vk.FormatBc6hSfloatBlock,
	gputypes.TextureFormatBC7RGBAUnorm:     vk.FormatBc7UnormBlock,
	gputypes.TextureFormatBC7RGBAUnormSrgb: vk.FormatBc7SrgbBlock,

	// ETC2 compressed formats
	gputypes.TextureFormatETC2RGB8Unorm:       vk.FormatEtc2R8g8b8UnormBlock,
	gputypes.TextureFormatETC2RGB8UnormSrgb:   vk.FormatEtc2R8g8b8SrgbBlock,
	gputypes.TextureFormatETC2RGB8A1Unorm:     vk.FormatEtc2R8g8b8a1UnormBlock,
	gputypes.TextureFormatETC2RGB8A1UnormSrgb: vk.FormatEtc2R8g8b8a1SrgbBlock,
	gputypes.TextureFormatETC2RGBA8Unorm:      vk.FormatEtc2R8g8b8a8UnormBlock,
	gputypes.TextureFormatETC2RGBA8UnormSrgb:  vk.FormatEtc2R8g8b8a8SrgbBlock,
	gputypes.TextureFormatEACR11Unorm:         vk.FormatEacR11UnormBlock,
	gputypes.TextureFormatEACR11Snorm:         vk.FormatEacR11SnormBlock,
	gputypes.TextureFormatEACRG11Unorm:        vk.FormatEacR11g11UnormBlock,
	gputypes.TextureFormatEACRG11Snorm:        vk.FormatEacR11g11SnormBlock,

	// ASTC compressed formats
	gputypes.TextureFormatASTC4x4Unorm:       vk.FormatAstc4x4UnormBlock,
	gputypes.TextureFormatASTC4x4UnormSrgb:   vk.FormatAstc4x4SrgbBlock,
	gputypes.TextureFormatASTC5x4Unorm:       vk.FormatAstc5x4UnormBlock,
	gputypes.TextureFormatASTC5x4UnormSrgb:   vk.FormatAstc5x4SrgbBlock,
	gputypes.TextureFormatASTC5x5Unorm:       vk.FormatAstc5x5UnormBlock,
	gputypes.TextureFormatASTC5x5UnormSrgb:   vk.FormatAstc5x5SrgbBlock,
	gputypes.TextureFormatASTC6x5Unorm:       vk.FormatAstc6x5UnormBlock,
	gputypes.TextureFormatASTC6x5UnormSrgb:   vk.FormatAstc6x5SrgbBlock,
	gputypes.TextureFormatASTC6x6Unorm:       vk.FormatAstc6x6UnormBlock,
	gputypes.TextureFormatASTC6x6UnormSrgb:   vk.FormatAstc6x6SrgbBlock,
	gputypes.TextureFormatASTC8x5Unorm:       vk.FormatAstc8x5UnormBlock,
	gputypes.TextureFormatASTC8x5UnormSrgb:   vk.FormatAstc8x5SrgbBlock,
	gputypes.TextureFormatASTC8x6Unorm:       vk.FormatAstc8x6UnormBlock,
	gputypes.TextureFormatASTC8x6UnormSrgb:   vk.FormatAstc8x6SrgbBlock,
	gputypes.TextureFormatASTC8x8Unorm:       vk.FormatAstc8x8UnormBlock,
	gputypes.TextureFormatASTC8x8UnormSrgb:   vk.FormatAstc8x8SrgbBlock,
	gputypes.TextureFormatASTC10x5Unorm:      vk.FormatAstc10x5UnormBlock,
	gputypes.TextureFormatASTC10x5UnormSrgb:  vk.FormatAstc10x5SrgbBlock,
	gputypes.TextureFormatASTC10x6Unorm:      vk.FormatAstc10x6UnormBlock,
	gputypes.TextureFormatASTC10x6UnormSrgb:  vk.FormatAstc10x6SrgbBlock,
	gputypes.TextureFormatASTC10x8Unorm:      vk.FormatAstc10x8UnormBlock,
	gputypes.TextureFormatASTC10x8UnormSrgb:  vk.FormatAstc10x8SrgbBlock,
	gputypes.TextureFormatASTC10x10Unorm:     vk.FormatAstc10x10UnormBlock,
	gputypes.TextureFormatASTC10x10UnormSrgb: vk.FormatAstc10x10SrgbBlock,
	gputypes.TextureFormatASTC12x10Unorm:     vk.FormatAstc12x10UnormBlock,
	gputypes.TextureFormatASTC12x10UnormSrgb: vk.FormatAstc12x10SrgbBlock,
	gputypes.TextureFormatASTC12x12Unorm:     vk.FormatAstc12x12UnormBlock,
	gputypes.TextureFormatASTC12x12UnormSrgb: vk.FormatAstc12x12SrgbBlock,
}

// isDepthStencilFormat reports whether format carries a depth and/or stencil aspect.
func isDepthStencilFormat(format gputypes.TextureFormat) bool {
	switch format {
	case gputypes.TextureFormatStencil8,
		gputypes.TextureFormatDepth16Unorm,
		gputypes.TextureFormatDepth24Plus,
		gputypes.TextureFormatDepth24PlusStencil8,
		gputypes.TextureFormatDepth32Float,
		gputypes.TextureFormatDepth32FloatStencil8:
		return true
	default:
		return false
	}
}

// hasStencilAspect reports whether format carries a stencil aspect.
func hasStencilAspect(format gputypes.TextureFormat) bool {
	switch format {
	case gputypes.TextureFormatStencil8,
		gputypes.TextureFormatDepth24PlusStencil8,
		gputypes.TextureFormatDepth32FloatStencil8:
		return true
	default:
		return false
	}
}

// textureAspectToVk converts a WebGPU texture aspect to Vulkan aspect flags,
// using format to resolve TextureAspectAll for depth/stencil formats.
func textureAspectToVk(aspect gputypes.TextureAspect, format gputypes.TextureFormat) vk.ImageAspectFlags {
	switch aspect {
	case gputypes.TextureAspectDepthOnly:
		return vk.ImageAspectFlags(vk.ImageAspectDepthBit)
	case gputypes.TextureAspectStencilOnly:
		return vk.ImageAspectFlags(vk.ImageAspectStencilBit)
	default:
		if !isDepthStencilFormat(format) {
			return vk.ImageAspectFlags(vk.ImageAspectColorBit)
		}
		flags := vk.ImageAspectFlags(vk.ImageAspectDepthBit)
		if format == gputypes.TextureFormatStencil8 {
			flags = 0
		}
		if hasStencilAspect(format) {
			flags |= vk.ImageAspectFlags(vk.ImageAspectStencilBit)
		}
		return flags
	}
}

// textureViewDimensionToVk converts a WebGPU texture view dimension to a Vulkan image view type.
func textureViewDimensionToVk(dim gputypes.TextureViewDimension) vk.ImageViewType {
	switch dim {
	case gputypes.TextureViewDimension1D:
		return vk.ImageViewType1d
	case gputypes.TextureViewDimension2D:
		return vk.ImageViewType2d
	case gputypes.TextureViewDimension2DArray:
		return vk.ImageViewType2dArray
	case gputypes.TextureViewDimensionCube:
		return vk.ImageViewTypeCube
	case gputypes.TextureViewDimensionCubeArray:
		return vk.ImageViewTypeCubeArray
	case gputypes.TextureViewDimension3D:
		return vk.ImageViewType3d
	default:
		return vk.ImageViewType2d
	}
}

// textureDimensionToViewType converts a WebGPU texture dimension to a Vulkan image view type,
// used when a view descriptor doesn't override the dimension of its parent texture.
func textureDimensionToViewType(dim gputypes.TextureDimension) vk.ImageViewType {
	switch dim {
	case gputypes.TextureDimension1D:
		return vk.ImageViewType1d
	case gputypes.TextureDimension3D:
		return vk.ImageViewType3d
	default:
		return vk.ImageViewType2d
	}
}

// compareFunctionToVk converts a WebGPU compare function to a Vulkan compare op.
func compareFunctionToVk(fn gputypes.CompareFunction) vk.CompareOp {
	switch fn {
	case gputypes.CompareFunctionNever:
		return vk.CompareOpNever
	case gputypes.CompareFunctionLess:
		return vk.CompareOpLess
	case gputypes.CompareFunctionEqual:
		return vk.CompareOpEqual
	case gputypes.CompareFunctionLessEqual:
		return vk.CompareOpLessOrEqual
	case gputypes.CompareFunctionGreater:
		return vk.CompareOpGreater
	case gputypes.CompareFunctionNotEqual:
		return vk.CompareOpNotEqual
	case gputypes.CompareFunctionGreaterEqual:
		return vk.CompareOpGreaterOrEqual
	case gputypes.CompareFunctionAlways:
		return vk.CompareOpAlways
	default:
		return vk.CompareOpAlways
	}
}

// stencilOperationToVk converts a stencil operation to its Vulkan equivalent.
func stencilOperationToVk(op hal.StencilOperation) vk.StencilOp {
	switch op {
	case hal.StencilOperationKeep:
		return vk.StencilOpKeep
	case hal.StencilOperationZero:
		return vk.StencilOpZero
	case hal.StencilOperationReplace:
		return vk.StencilOpReplace
	case hal.StencilOperationInvert:
		return vk.StencilOpInvert
	case hal.StencilOperationIncrementClamp:
		return vk.StencilOpIncrementAndClamp
	case hal.StencilOperationDecrementClamp:
		return vk.StencilOpDecrementAndClamp
	case hal.StencilOperationIncrementWrap:
		return vk.StencilOpIncrementAndWrap
	case hal.StencilOperationDecrementWrap:
		return vk.StencilOpDecrementAndWrap
	default:
		return vk.StencilOpKeep
	}
}

// stencilFaceStateToVk converts a stencil face state to a Vulkan stencil op state.
// CompareMask, WriteMask and Reference are left zero; callers fill those in from
// the shared read/write masks and the currently bound stencil reference value.
func stencilFaceStateToVk(state hal.StencilFaceState) vk.StencilOpState {
	return vk.StencilOpState{
		FailOp:      stencilOperationToVk(state.FailOp),
		PassOp:      stencilOperationToVk(state.PassOp),
		DepthFailOp: stencilOperationToVk(state.DepthFailOp),
		CompareOp:   compareFunctionToVk(state.Compare),
	}
}

// addressModeToVk converts a WebGPU address mode to a Vulkan sampler address mode.
func addressModeToVk(mode gputypes.AddressMode) vk.SamplerAddressMode {
	switch mode {
	case gputypes.AddressModeRepeat:
		return vk.SamplerAddressModeRepeat
	case gputypes.AddressModeMirrorRepeat:
		return vk.SamplerAddressModeMirroredRepeat
	case gputypes.AddressModeClampToEdge:
		return vk.SamplerAddressModeClampToEdge
	default:
		return vk.SamplerAddressModeClampToEdge
	}
}

// filterModeToVk converts a WebGPU filter mode to a Vulkan filter.
func filterModeToVk(mode gputypes.FilterMode) vk.Filter {
	if mode == gputypes.FilterModeLinear {
		return vk.FilterLinear
	}
	return vk.FilterNearest
}

// samplerMipmapModeToVk converts a WebGPU mipmap filter mode to a Vulkan sampler mipmap mode.
func samplerMipmapModeToVk(mode gputypes.FilterMode) vk.SamplerMipmapMode {
	if mode == gputypes.FilterModeLinear {
		return vk.SamplerMipmapModeLinear
	}
	return vk.SamplerMipmapModeNearest
}

// shaderStagesToVk converts WebGPU shader stage flags to Vulkan shader stage flags.
func shaderStagesToVk(stages gputypes.ShaderStages) vk.ShaderStageFlags {
	var flags vk.ShaderStageFlags
	if stages&gputypes.ShaderStageVertex != 0 {
		flags |= vk.ShaderStageVertexBit
	}
	if stages&gputypes.ShaderStageFragment != 0 {
		flags |= vk.ShaderStageFragmentBit
	}
	if stages&gputypes.ShaderStageCompute != 0 {
		flags |= vk.ShaderStageComputeBit
	}
	return flags
}

// descriptorTypeForEntry resolves the Vulkan descriptor type for a bind group layout entry.
// Exactly one of Buffer, Sampler, Texture or Storage is expected to be set.
func descriptorTypeForEntry(entry gputypes.BindGroupLayoutEntry) (vk.DescriptorType, DescriptorCounts) {
	switch {
	case entry.Buffer != nil:
		if entry.Buffer.Type == gputypes.BufferBindingTypeStorage || entry.Buffer.Type == gputypes.BufferBindingTypeReadOnlyStorage {
			return vk.DescriptorTypeStorageBuffer, DescriptorCounts{StorageBuffers: 1}
		}
		return vk.DescriptorTypeUniformBuffer, DescriptorCounts{UniformBuffers: 1}
	case entry.Sampler != nil:
		return vk.DescriptorTypeSampler, DescriptorCounts{Samplers: 1}
	case entry.Texture != nil:
		return vk.DescriptorTypeSampledImage, DescriptorCounts{SampledImages: 1}
	case entry.Storage != nil:
		return vk.DescriptorTypeStorageImage, DescriptorCounts{StorageImages: 1}
	default:
		return vk.DescriptorTypeUniformBuffer, DescriptorCounts{UniformBuffers: 1}
	}
}
