package raster3d

// matrixCache holds a Rasterizer's world/view/projection matrices and their
// derived products, refreshed eagerly so callers can read any derived
// matrix at any time without triggering recomputation. The world-normal
// matrix is recomputed only when the world matrix changes, matching the
// original engine's behavior (normals are world-space and do not depend on
// view or projection).
type matrixCache struct {
	world, view, proj Mat4
	normal            Mat4
	worldView         Mat4
	worldViewProj     Mat4
}

func newMatrixCache() matrixCache {
	mc := matrixCache{world: Identity4(), view: Identity4(), proj: Identity4()}
	mc.recomputeNormal()
	mc.recomputeProducts()
	return mc
}

func (mc *matrixCache) setWorld(m Mat4) {
	mc.world = m
	mc.recomputeNormal()
	mc.recomputeProducts()
}

func (mc *matrixCache) setView(m Mat4) {
	mc.view = m
	mc.recomputeProducts()
}

func (mc *matrixCache) setProjection(m Mat4) {
	mc.proj = m
	mc.recomputeProducts()
}

func (mc *matrixCache) recomputeNormal() {
	mc.normal = mc.world.Inverse().Transpose()
}

// recomputeProducts refreshes WV = V*W and WVP = P*WV. Called by every
// setter above before it returns, so derived matrices are always
// consistent with the latest inputs.
func (mc *matrixCache) recomputeProducts() {
	mc.worldView = mc.view.Multiply(mc.world)
	mc.worldViewProj = mc.proj.Multiply(mc.worldView)
}
