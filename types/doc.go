// Package types defines the closed enum sets and plain descriptor structs
// shared across the RHI's public surface and its backends.
//
//   - Resource description (ResourceFormat, ResourceUsage, ResourceMemoryUsage)
//   - Presentation (FrameBuffering, PresentConfig)
//   - Pipeline fixed-function state (BlendFactor, BlendOp, CompareOp, ...)
//   - Shader stage and index-buffer enums
//
// None of these types carry backend-specific values; hal/vulkan and
// hal/dx12 each own the conversion tables from these enums to native ones.
package types
