package driver

// GL enum values, copied from the Khronos registry. Only the values used by
// glpp and the demos are listed.
const (
	FALSE = 0
	TRUE  = 1

	NO_ERROR          = 0
	INVALID_ENUM      = 0x0500
	INVALID_VALUE     = 0x0501
	INVALID_OPERATION = 0x0502

	// Buffer targets
	ARRAY_BUFFER          = 0x8892
	ELEMENT_ARRAY_BUFFER  = 0x8893
	PIXEL_PACK_BUFFER     = 0x88EB
	PIXEL_UNPACK_BUFFER   = 0x88EC
	UNIFORM_BUFFER        = 0x8A11
	COPY_READ_BUFFER      = 0x8F36
	COPY_WRITE_BUFFER     = 0x8F37
	SHADER_STORAGE_BUFFER = 0x90D2

	// Buffer storage flags
	MAP_READ_BIT        = 0x0001
	MAP_WRITE_BIT       = 0x0002
	MAP_PERSISTENT_BIT  = 0x0040
	MAP_COHERENT_BIT    = 0x0080
	DYNAMIC_STORAGE_BIT = 0x0100
	CLIENT_STORAGE_BIT  = 0x0200

	// Shader stages
	FRAGMENT_SHADER        = 0x8B30
	VERTEX_SHADER          = 0x8B31
	GEOMETRY_SHADER        = 0x8DD9
	TESS_EVALUATION_SHADER = 0x8E87
	TESS_CONTROL_SHADER    = 0x8E88
	COMPUTE_SHADER         = 0x91B9

	// Shader and program queries
	COMPILE_STATUS              = 0x8B81
	LINK_STATUS                 = 0x8B82
	INFO_LOG_LENGTH             = 0x8B84
	ATTACHED_SHADERS            = 0x8B85
	ACTIVE_UNIFORMS             = 0x8B86
	ACTIVE_UNIFORM_MAX_LENGTH   = 0x8B87
	ACTIVE_ATTRIBUTES           = 0x8B89
	ACTIVE_ATTRIBUTE_MAX_LENGTH = 0x8B8A
	SHADER_TYPE                 = 0x8B4F
	SHADER_SOURCE_LENGTH        = 0x8B88
	DELETE_STATUS               = 0x8B80

	// Data types
	BYTE                   = 0x1400
	UNSIGNED_BYTE          = 0x1401
	SHORT                  = 0x1402
	UNSIGNED_SHORT         = 0x1403
	INT                    = 0x1404
	UNSIGNED_INT           = 0x1405
	FLOAT                  = 0x1406
	UNSIGNED_SHORT_4_4_4_4 = 0x8033
	FLOAT_VEC2             = 0x8B50
	FLOAT_VEC3             = 0x8B51
	FLOAT_VEC4             = 0x8B52
	INT_VEC2               = 0x8B53
	INT_VEC3               = 0x8B54
	INT_VEC4               = 0x8B55
	BOOL                   = 0x8B56
	FLOAT_MAT2             = 0x8B5A
	FLOAT_MAT3             = 0x8B5B
	FLOAT_MAT4             = 0x8B5C
	SAMPLER_1D             = 0x8B5D
	SAMPLER_2D             = 0x8B5E
	SAMPLER_3D             = 0x8B5F
	SAMPLER_CUBE           = 0x8B60
	UNSIGNED_INT_VEC2      = 0x8DC6
	UNSIGNED_INT_VEC3      = 0x8DC7
	UNSIGNED_INT_VEC4      = 0x8DC8

	// Textures
	TEXTURE_1D                  = 0x0DE0
	TEXTURE_2D                  = 0x0DE1
	TEXTURE_3D                  = 0x806F
	TEXTURE_CUBE_MAP            = 0x8513
	TEXTURE_CUBE_MAP_POSITIVE_X = 0x8515
	TEXTURE0                    = 0x84C0
	TEXTURE_MAG_FILTER          = 0x2800
	TEXTURE_MIN_FILTER          = 0x2801
	TEXTURE_WRAP_S              = 0x2802
	TEXTURE_WRAP_T              = 0x2803
	TEXTURE_WRAP_R              = 0x8072
	NEAREST                     = 0x2600
	LINEAR                      = 0x2601
	NEAREST_MIPMAP_NEAREST      = 0x2700
	LINEAR_MIPMAP_NEAREST       = 0x2701
	NEAREST_MIPMAP_LINEAR       = 0x2702
	LINEAR_MIPMAP_LINEAR        = 0x2703
	REPEAT                      = 0x2901
	CLAMP_TO_EDGE               = 0x812F
	MIRRORED_REPEAT             = 0x8370

	// Pixel formats
	RED          = 0x1903
	RGB          = 0x1907
	RGBA         = 0x1908
	RGBA4        = 0x8056
	RGBA8        = 0x8058
	SRGB8_ALPHA8 = 0x8C43
	RGBA16F      = 0x881A
	RGBA32F      = 0x8814

	// Object label namespaces
	BUFFER       = 0x82E0
	SHADER       = 0x82E1
	PROGRAM      = 0x82E2
	VERTEX_ARRAY = 0x8074
	TEXTURE      = 0x1702

	// Capabilities
	CULL_FACE                = 0x0B44
	DEPTH_TEST               = 0x0B71
	BLEND                    = 0x0BE2
	PROGRAM_POINT_SIZE       = 0x8642
	DEBUG_OUTPUT             = 0x92E0
	DEBUG_OUTPUT_SYNCHRONOUS = 0x8242

	// Clear masks
	DEPTH_BUFFER_BIT = 0x00000100
	COLOR_BUFFER_BIT = 0x00004000

	// Primitives
	POINTS     = 0x0000
	LINES      = 0x0001
	LINE_STRIP = 0x0003
	TRIANGLES  = 0x0004

	// Memory barriers
	VERTEX_ATTRIB_ARRAY_BARRIER_BIT = 0x00000001
	SHADER_STORAGE_BARRIER_BIT      = 0x00002000
	ALL_BARRIER_BITS                = 0xFFFFFFFF

	// Debug severities
	DEBUG_SEVERITY_HIGH         = 0x9146
	DEBUG_SEVERITY_MEDIUM       = 0x9147
	DEBUG_SEVERITY_LOW          = 0x9148
	DEBUG_SEVERITY_NOTIFICATION = 0x826B
)
