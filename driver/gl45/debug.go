package gl45

import (
	"unsafe"

	gl "github.com/go-gl/gl/v4.5-core/gl"
	"go.uber.org/zap"
)

// EnableDebugOutput routes KHR_debug messages from the driver to logger.
// The context must have been created with the debug hint for messages to be
// delivered.
func (*Driver) EnableDebugOutput(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		fields := []zap.Field{
			zap.Uint32("source", source),
			zap.Uint32("type", gltype),
			zap.Uint32("id", id),
		}
		switch severity {
		case gl.DEBUG_SEVERITY_HIGH:
			logger.Error(message, fields...)
		case gl.DEBUG_SEVERITY_MEDIUM:
			logger.Warn(message, fields...)
		case gl.DEBUG_SEVERITY_LOW:
			logger.Info(message, fields...)
		default:
			logger.Debug(message, fields...)
		}
	}, nil)
}
