// Package glpp wraps the OpenGL 4.5 object model in Go types that own their
// native resource.
//
// Every object (Buffer, VertexArray, Shader, Program, Texture1D, Texture2D,
// TextureCubemap) allocates its native resource in its constructor and keeps
// the identifier in a Handle. Ownership is exclusive: Move hands the
// identifier to a new object and leaves the source empty, Assign releases
// the receiver's identifier before taking the source's, and Destroy releases
// it. Releasing an empty object is a no-op, so
//
//	buf := glpp.NewBuffer(d)
//	defer buf.Destroy()
//
// is always safe.
//
// All calls go through a driver.Driver and must be made on the goroutine
// that owns the current GL context. Objects carry no finalizers.
package glpp
