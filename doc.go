// Package rhi provides a backend-agnostic rendering hardware interface for
// Go applications, dispatching GPU resource creation, command recording,
// and frame presentation across the Vulkan and Direct3D 12 backends.
//
// This package wraps the lower-level hal/ and core/ packages into a
// user-friendly facade over a single active backend.
//
// # Quick Start
//
// Import this package and a backend registration package:
//
//	import (
//	    "github.com/gogpu/rhi"
//	    _ "github.com/gogpu/rhi/hal/vulkan"
//	)
//
//	instance, err := rhi.CreateInstance(nil)
//	// ...
//
// # Resource Lifecycle
//
// All GPU resources must be explicitly released with Release().
// Resources are not reference-counted. Operations with an error result
// return ErrReleased when called on a released resource.
//
// # Backend Registration
//
// Backends are registered via blank imports:
//
//	_ "github.com/gogpu/rhi/hal/vulkan"        // Vulkan
//	_ "github.com/gogpu/rhi/hal/dx12"          // Direct3D 12 (Windows)
//	_ "github.com/gogpu/rhi/hal/noop"           // testing
//
// # Thread Safety
//
// Instance, Adapter, and Device are safe for concurrent use.
// Encoders (CommandEncoder, RenderPassEncoder, ComputePassEncoder) are NOT thread-safe.
package rhi
