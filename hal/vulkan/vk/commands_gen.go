// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Commands holds the Vulkan function pointers resolved by LoadGlobal,
// LoadInstance and LoadDevice. The struct itself, plus the typed
// accessors below, are generated against the subset of vk.xml this
// checkout exercises; see doc.go for the intended vk-gen path.
//
// This file is the cross-platform half of the command surface: every
// method here goes through goffi's ffi.CallFunction (see commands_manual.go
// for the calling convention), so it compiles and runs on any GOOS goffi
// supports. commands_ext.go carries the legacy syscall.SyscallN-based
// accessors used by the windows-only parts of the backend; the two never
// wrap the same field twice.

package vk

import (
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
)

// Commands is the table of resolved Vulkan function pointers for a single
// loader scope (global, instance, or device). Fields are nil until the
// corresponding Load* method has been called.
type Commands struct {
	// --- Global ---
	createInstance                        unsafe.Pointer
	enumerateInstanceVersion              unsafe.Pointer
	enumerateInstanceLayerProperties      unsafe.Pointer
	enumerateInstanceExtensionProperties  unsafe.Pointer

	// --- Instance ---
	destroyInstance                               unsafe.Pointer
	enumeratePhysicalDevices                      unsafe.Pointer
	getPhysicalDeviceProperties                   unsafe.Pointer
	getPhysicalDeviceQueueFamilyProperties        unsafe.Pointer
	getPhysicalDeviceMemoryProperties             unsafe.Pointer
	getPhysicalDeviceFeatures                     unsafe.Pointer
	getPhysicalDeviceFormatProperties             unsafe.Pointer
	getPhysicalDeviceImageFormatProperties        unsafe.Pointer
	createDevice                                  unsafe.Pointer
	getDeviceProcAddr                             unsafe.Pointer
	enumerateDeviceLayerProperties                unsafe.Pointer
	enumerateDeviceExtensionProperties            unsafe.Pointer
	getPhysicalDeviceSparseImageFormatProperties  unsafe.Pointer
	destroySurfaceKHR                             unsafe.Pointer
	getPhysicalDeviceSurfaceSupportKHR            unsafe.Pointer
	getPhysicalDeviceSurfaceCapabilitiesKHR        unsafe.Pointer
	getPhysicalDeviceSurfaceFormatsKHR             unsafe.Pointer
	getPhysicalDeviceSurfacePresentModesKHR        unsafe.Pointer
	createWin32SurfaceKHR                          unsafe.Pointer
	getPhysicalDeviceFeatures2                     unsafe.Pointer
	getPhysicalDeviceProperties2                   unsafe.Pointer

	// VK_EXT_debug_utils (instance-level creation, device-level naming).
	createDebugUtilsMessengerEXT  unsafe.Pointer
	destroyDebugUtilsMessengerEXT unsafe.Pointer
	setDebugUtilsObjectNameEXT    unsafe.Pointer

	// --- Device ---
	destroyDevice                     unsafe.Pointer
	getDeviceQueue                    unsafe.Pointer
	queueSubmit                       unsafe.Pointer
	queueWaitIdle                     unsafe.Pointer
	deviceWaitIdle                    unsafe.Pointer
	allocateMemory                    unsafe.Pointer
	freeMemory                        unsafe.Pointer
	mapMemory                         unsafe.Pointer
	unmapMemory                       unsafe.Pointer
	flushMappedMemoryRanges           unsafe.Pointer
	invalidateMappedMemoryRanges      unsafe.Pointer
	getDeviceMemoryCommitment         unsafe.Pointer
	getBufferMemoryRequirements       unsafe.Pointer
	bindBufferMemory                  unsafe.Pointer
	getImageMemoryRequirements        unsafe.Pointer
	bindImageMemory                   unsafe.Pointer
	getImageSparseMemoryRequirements  unsafe.Pointer
	queueBindSparse                   unsafe.Pointer
	createFence                       unsafe.Pointer
	destroyFence                      unsafe.Pointer
	resetFences                       unsafe.Pointer
	getFenceStatus                    unsafe.Pointer
	waitForFences                     unsafe.Pointer
	createSemaphore                   unsafe.Pointer
	destroySemaphore                  unsafe.Pointer
	createEvent                       unsafe.Pointer
	destroyEvent                      unsafe.Pointer
	getEventStatus                    unsafe.Pointer
	setEvent                          unsafe.Pointer
	resetEvent                        unsafe.Pointer
	createQueryPool                   unsafe.Pointer
	destroyQueryPool                  unsafe.Pointer
	getQueryPoolResults               unsafe.Pointer
	resetQueryPool                    unsafe.Pointer
	createBuffer                      unsafe.Pointer
	destroyBuffer                     unsafe.Pointer
	createBufferView                  unsafe.Pointer
	destroyBufferView                 unsafe.Pointer
	createImage                       unsafe.Pointer
	destroyImage                      unsafe.Pointer
	getImageSubresourceLayout         unsafe.Pointer
	createImageView                  unsafe.Pointer
	destroyImageView                 unsafe.Pointer
	createShaderModule                unsafe.Pointer
	destroyShaderModule               unsafe.Pointer
	createPipelineCache               unsafe.Pointer
	destroyPipelineCache              unsafe.Pointer
	getPipelineCacheData              unsafe.Pointer
	mergePipelineCaches               unsafe.Pointer
	createGraphicsPipelines           unsafe.Pointer
	createComputePipelines            unsafe.Pointer
	destroyPipeline                   unsafe.Pointer
	createPipelineLayout              unsafe.Pointer
	destroyPipelineLayout             unsafe.Pointer
	createSampler                     unsafe.Pointer
	destroySampler                    unsafe.Pointer
	createDescriptorSetLayout         unsafe.Pointer
	destroyDescriptorSetLayout        unsafe.Pointer
	createDescriptorPool              unsafe.Pointer
	destroyDescriptorPool             unsafe.Pointer
	resetDescriptorPool               unsafe.Pointer
	allocateDescriptorSets            unsafe.Pointer
	freeDescriptorSets                unsafe.Pointer
	updateDescriptorSets              unsafe.Pointer
	createFramebuffer                 unsafe.Pointer
	destroyFramebuffer                unsafe.Pointer
	createRenderPass                  unsafe.Pointer
	destroyRenderPass                 unsafe.Pointer
	getRenderAreaGranularity          unsafe.Pointer
	createCommandPool                 unsafe.Pointer
	destroyCommandPool                unsafe.Pointer
	resetCommandPool                  unsafe.Pointer
	allocateCommandBuffers            unsafe.Pointer
	freeCommandBuffers                unsafe.Pointer
	beginCommandBuffer                unsafe.Pointer
	endCommandBuffer                  unsafe.Pointer
	resetCommandBuffer                unsafe.Pointer
	cmdBindPipeline                   unsafe.Pointer
	cmdSetViewport                    unsafe.Pointer
	cmdSetScissor                     unsafe.Pointer
	cmdSetLineWidth                   unsafe.Pointer
	cmdSetDepthBias                   unsafe.Pointer
	cmdSetBlendConstants              unsafe.Pointer
	cmdSetDepthBounds                 unsafe.Pointer
	cmdSetStencilCompareMask          unsafe.Pointer
	cmdSetStencilWriteMask            unsafe.Pointer
	cmdSetStencilReference            unsafe.Pointer
	cmdBindDescriptorSets             unsafe.Pointer
	cmdBindIndexBuffer                unsafe.Pointer
	cmdBindVertexBuffers              unsafe.Pointer
	cmdDraw                           unsafe.Pointer
	cmdDrawIndexed                    unsafe.Pointer
	cmdDrawIndirect                   unsafe.Pointer
	cmdDrawIndexedIndirect            unsafe.Pointer
	cmdDispatch                       unsafe.Pointer
	cmdDispatchIndirect               unsafe.Pointer
	cmdCopyBuffer                     unsafe.Pointer
	cmdCopyImage                      unsafe.Pointer
	cmdBlitImage                      unsafe.Pointer
	cmdCopyBufferToImage              unsafe.Pointer
	cmdCopyImageToBuffer              unsafe.Pointer
	cmdUpdateBuffer                   unsafe.Pointer
	cmdFillBuffer                     unsafe.Pointer
	cmdClearColorImage                unsafe.Pointer
	cmdClearDepthStencilImage         unsafe.Pointer
	cmdClearAttachments               unsafe.Pointer
	cmdResolveImage                   unsafe.Pointer
	cmdSetEvent                       unsafe.Pointer
	cmdResetEvent                     unsafe.Pointer
	cmdWaitEvents                     unsafe.Pointer
	cmdPipelineBarrier                unsafe.Pointer
	cmdBeginQuery                     unsafe.Pointer
	cmdEndQuery                       unsafe.Pointer
	cmdResetQueryPool                 unsafe.Pointer
	cmdWriteTimestamp                 unsafe.Pointer
	cmdCopyQueryPoolResults           unsafe.Pointer
	cmdPushConstants                  unsafe.Pointer
	cmdBeginRenderPass                unsafe.Pointer
	cmdNextSubpass                    unsafe.Pointer
	cmdEndRenderPass                  unsafe.Pointer
	cmdExecuteCommands                unsafe.Pointer

	// Vulkan 1.3 dynamic rendering. Loaded opportunistically; callers must
	// check HasDynamicRendering before use.
	cmdBeginRendering  unsafe.Pointer
	cmdEndRendering    unsafe.Pointer
	cmdPipelineBarrier2 unsafe.Pointer

	// Vulkan 1.2+ timeline semaphore functions.
	getSemaphoreCounterValue unsafe.Pointer
	waitSemaphores           unsafe.Pointer
	signalSemaphore          unsafe.Pointer

	// Swapchain functions (WSI).
	createSwapchainKHR    unsafe.Pointer
	destroySwapchainKHR   unsafe.Pointer
	getSwapchainImagesKHR unsafe.Pointer
	acquireNextImageKHR   unsafe.Pointer
	queuePresentKHR       unsafe.Pointer
}

// HasDynamicRendering returns true if VK_KHR_dynamic_rendering (core in
// Vulkan 1.3) function pointers were loaded.
func (c *Commands) HasDynamicRendering() bool {
	return c.cmdBeginRendering != nil && c.cmdEndRendering != nil
}

// HasCreateWin32SurfaceKHR returns true if vkCreateWin32SurfaceKHR was
// loaded. Only ever true on Windows instances with VK_KHR_win32_surface
// enabled.
func (c *Commands) HasCreateWin32SurfaceKHR() bool {
	return c.createWin32SurfaceKHR != nil
}

// HasDebugUtils returns true if the VK_EXT_debug_utils entry points were
// resolved by LoadDebugUtils.
func (c *Commands) HasDebugUtils() bool {
	return c.createDebugUtilsMessengerEXT != nil &&
		c.destroyDebugUtilsMessengerEXT != nil &&
		c.setDebugUtilsObjectNameEXT != nil
}

// LoadDebugUtils resolves the VK_EXT_debug_utils entry points. instance
// must be non-zero; device may be zero if only messenger creation is
// needed (object naming additionally requires a device).
//
// Safe to call when the extension is not present: the Has* probes above
// simply report false and callers fall back to unnamed objects / no
// validation messenger.
func (c *Commands) LoadDebugUtils(instance Instance, device Device) {
	c.createDebugUtilsMessengerEXT = GetInstanceProcAddr(instance, "vkCreateDebugUtilsMessengerEXT")
	c.destroyDebugUtilsMessengerEXT = GetInstanceProcAddr(instance, "vkDestroyDebugUtilsMessengerEXT")
	if device != 0 {
		c.setDebugUtilsObjectNameEXT = GetDeviceProcAddr(device, "vkSetDebugUtilsObjectNameEXT")
	}
}

// CreateWin32SurfaceKHR wraps vkCreateWin32SurfaceKHR.
func (c *Commands) CreateWin32SurfaceKHR(instance Instance, createInfo *Win32SurfaceCreateInfoKHR, allocator unsafe.Pointer, surface *SurfaceKHR) Result {
	if c.createWin32SurfaceKHR == nil {
		return ErrorInitializationFailed
	}
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&instance),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&surface),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createWin32SurfaceKHR, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// CreateDebugUtilsMessengerEXT wraps vkCreateDebugUtilsMessengerEXT.
func (c *Commands) CreateDebugUtilsMessengerEXT(instance Instance, createInfo *DebugUtilsMessengerCreateInfoEXT, allocator unsafe.Pointer, messenger *DebugUtilsMessengerEXT) Result {
	if c.createDebugUtilsMessengerEXT == nil {
		return ErrorExtensionNotPresent
	}
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&instance),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&messenger),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createDebugUtilsMessengerEXT, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// DestroyDebugUtilsMessengerEXT wraps vkDestroyDebugUtilsMessengerEXT.
func (c *Commands) DestroyDebugUtilsMessengerEXT(instance Instance, messenger DebugUtilsMessengerEXT, allocator unsafe.Pointer) {
	if c.destroyDebugUtilsMessengerEXT == nil {
		return
	}
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&instance),
		unsafe.Pointer(&messenger),
		unsafe.Pointer(&allocator),
	}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyDebugUtilsMessengerEXT, nil, args[:])
}

// SetDebugUtilsObjectNameEXT wraps vkSetDebugUtilsObjectNameEXT.
func (c *Commands) SetDebugUtilsObjectNameEXT(device Device, nameInfo *DebugUtilsObjectNameInfoEXT) Result {
	if c.setDebugUtilsObjectNameEXT == nil {
		return ErrorExtensionNotPresent
	}
	var result int32
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&nameInfo),
	}
	if err := ffi.CallFunction(&SigResultHandlePtr, c.setDebugUtilsObjectNameEXT, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// CreateDescriptorPool wraps vkCreateDescriptorPool.
func (c *Commands) CreateDescriptorPool(device Device, createInfo *DescriptorPoolCreateInfo, allocator unsafe.Pointer, pool *DescriptorPool) Result {
	if c.createDescriptorPool == nil {
		return ErrorInitializationFailed
	}
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&pool),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createDescriptorPool, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// DestroyDescriptorPool wraps vkDestroyDescriptorPool.
func (c *Commands) DestroyDescriptorPool(device Device, pool DescriptorPool, allocator unsafe.Pointer) {
	if c.destroyDescriptorPool == nil {
		return
	}
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pool),
		unsafe.Pointer(&allocator),
	}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyDescriptorPool, nil, args[:])
}

// AllocateDescriptorSets wraps vkAllocateDescriptorSets.
func (c *Commands) AllocateDescriptorSets(device Device, allocInfo *DescriptorSetAllocateInfo, sets *DescriptorSet) Result {
	if c.allocateDescriptorSets == nil {
		return ErrorInitializationFailed
	}
	var result int32
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&allocInfo),
		unsafe.Pointer(&sets),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtr, c.allocateDescriptorSets, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// FreeDescriptorSets wraps vkFreeDescriptorSets.
func (c *Commands) FreeDescriptorSets(device Device, pool DescriptorPool, count uint32, sets *DescriptorSet) Result {
	if c.freeDescriptorSets == nil {
		return ErrorInitializationFailed
	}
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pool),
		unsafe.Pointer(&count),
		unsafe.Pointer(&sets),
	}
	if err := ffi.CallFunction(&SigResultHandleHandleU32Ptr, c.freeDescriptorSets, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// UpdateDescriptorSets wraps vkUpdateDescriptorSets.
func (c *Commands) UpdateDescriptorSets(device Device, writeCount uint32, writes *WriteDescriptorSet, copyCount uint32, copies *CopyDescriptorSet) {
	if c.updateDescriptorSets == nil {
		return
	}
	args := [5]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&writeCount),
		unsafe.Pointer(&writes),
		unsafe.Pointer(&copyCount),
		unsafe.Pointer(&copies),
	}
	_ = ffi.CallFunction(&SigVoidDeviceUpdateDescriptorSets, c.updateDescriptorSets, nil, args[:])
}

// CreateRenderPass wraps vkCreateRenderPass.
func (c *Commands) CreateRenderPass(device Device, createInfo *RenderPassCreateInfo, allocator unsafe.Pointer, renderPass *RenderPass) Result {
	if c.createRenderPass == nil {
		return ErrorInitializationFailed
	}
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&renderPass),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createRenderPass, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// DestroyRenderPass wraps vkDestroyRenderPass.
func (c *Commands) DestroyRenderPass(device Device, renderPass RenderPass, allocator unsafe.Pointer) {
	if c.destroyRenderPass == nil {
		return
	}
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&renderPass),
		unsafe.Pointer(&allocator),
	}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyRenderPass, nil, args[:])
}

// CreateFramebuffer wraps vkCreateFramebuffer.
func (c *Commands) CreateFramebuffer(device Device, createInfo *FramebufferCreateInfo, allocator unsafe.Pointer, framebuffer *Framebuffer) Result {
	if c.createFramebuffer == nil {
		return ErrorInitializationFailed
	}
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&framebuffer),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createFramebuffer, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// DestroyFramebuffer wraps vkDestroyFramebuffer.
func (c *Commands) DestroyFramebuffer(device Device, framebuffer Framebuffer, allocator unsafe.Pointer) {
	if c.destroyFramebuffer == nil {
		return
	}
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&framebuffer),
		unsafe.Pointer(&allocator),
	}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyFramebuffer, nil, args[:])
}

// CreateFence wraps vkCreateFence.
func (c *Commands) CreateFence(device Device, createInfo *FenceCreateInfo, allocator unsafe.Pointer, fence *Fence) Result {
	if c.createFence == nil {
		return ErrorInitializationFailed
	}
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&fence),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createFence, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// DestroyFence wraps vkDestroyFence.
func (c *Commands) DestroyFence(device Device, fence Fence, allocator unsafe.Pointer) {
	if c.destroyFence == nil {
		return
	}
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&fence),
		unsafe.Pointer(&allocator),
	}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyFence, nil, args[:])
}

// GetFenceStatus wraps vkGetFenceStatus.
func (c *Commands) GetFenceStatus(device Device, fence Fence) Result {
	if c.getFenceStatus == nil {
		return ErrorInitializationFailed
	}
	var result int32
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&fence),
	}
	if err := ffi.CallFunction(&SigResultHandleHandle, c.getFenceStatus, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// ResetFences wraps vkResetFences.
func (c *Commands) ResetFences(device Device, count uint32, fences *Fence) Result {
	if c.resetFences == nil {
		return ErrorInitializationFailed
	}
	var result int32
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&count),
		unsafe.Pointer(&fences),
	}
	if err := ffi.CallFunction(&SigResultHandleU32Ptr, c.resetFences, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// WaitForFences wraps vkWaitForFences.
func (c *Commands) WaitForFences(device Device, count uint32, fences *Fence, waitAll Bool32, timeout uint64) Result {
	if c.waitForFences == nil {
		return ErrorInitializationFailed
	}
	var result int32
	args := [5]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&count),
		unsafe.Pointer(&fences),
		unsafe.Pointer(&waitAll),
		unsafe.Pointer(&timeout),
	}
	if err := ffi.CallFunction(&SigResultWaitForFences, c.waitForFences, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// CreateSemaphore wraps vkCreateSemaphore.
func (c *Commands) CreateSemaphore(device Device, createInfo *SemaphoreCreateInfo, allocator unsafe.Pointer, semaphore *Semaphore) Result {
	if c.createSemaphore == nil {
		return ErrorInitializationFailed
	}
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&semaphore),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createSemaphore, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// DestroySemaphore wraps vkDestroySemaphore.
func (c *Commands) DestroySemaphore(device Device, semaphore Semaphore, allocator unsafe.Pointer) {
	if c.destroySemaphore == nil {
		return
	}
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&semaphore),
		unsafe.Pointer(&allocator),
	}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroySemaphore, nil, args[:])
}

// CreateQueryPool wraps vkCreateQueryPool.
func (c *Commands) CreateQueryPool(device Device, createInfo *QueryPoolCreateInfo, allocator unsafe.Pointer, pool *QueryPool) Result {
	if c.createQueryPool == nil {
		return ErrorInitializationFailed
	}
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&pool),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createQueryPool, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// DestroyQueryPool wraps vkDestroyQueryPool.
func (c *Commands) DestroyQueryPool(device Device, pool QueryPool, allocator unsafe.Pointer) {
	if c.destroyQueryPool == nil {
		return
	}
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pool),
		unsafe.Pointer(&allocator),
	}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyQueryPool, nil, args[:])
}

// ResetQueryPool wraps vkResetQueryPool (Vulkan 1.2 core, formerly
// VK_EXT_host_query_reset).
func (c *Commands) ResetQueryPool(device Device, pool QueryPool, firstQuery, queryCount uint32) {
	if c.resetQueryPool == nil {
		return
	}
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pool),
		unsafe.Pointer(&firstQuery),
		unsafe.Pointer(&queryCount),
	}
	_ = ffi.CallFunction(&SigVoidHandleHandleU32U32, c.resetQueryPool, nil, args[:])
}
