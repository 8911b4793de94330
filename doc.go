// Package raster3d implements the geometry and fill core of a software 3D
// triangle rasterizer: programmable vertex shading, homogeneous-space
// clipping against the canonical view frustum, perspective division and
// viewport mapping, backface culling, and scanline triangle filling with a
// programmable pixel shader, a depth buffer, and a fixed-point texture
// sampler.
//
// The package does not load models, walk a scene graph, own a window, or
// pick among materials — callers drive [Rasterizer] directly with an
// already-assembled vertex/index buffer and a bound [Surface] / [ZBuffer].
//
// # Shader composition
//
// A rendering pipeline is specialized at construction time over three type
// parameters: the caller's vertex record type, the shader-constants record
// type, and a concrete [Program] implementation. This follows the
// generic-specialization strategy: the compiler produces one monomorphized
// [Rasterizer] per (Vtx, Constants, Program) combination, so vertex/pixel
// shader calls in the per-pixel inner loop are direct calls rather than
// interface dispatch through a shared vtable.
package raster3d
