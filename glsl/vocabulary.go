package glsl

// Fixed GLSL vocabulary, based on GLSL 4.60 with the deprecated symbols of
// the 1.xx compatibility profile kept in their own sets so highlighting can
// flag them. Membership is case-sensitive throughout.

// glslTypes contains the scalar, vector, matrix, sampler, and image types.
var glslTypes = map[string]struct{}{
	"void": {}, "bool": {}, "int": {}, "uint": {}, "float": {}, "double": {},

	"vec2": {}, "vec3": {}, "vec4": {},
	"ivec2": {}, "ivec3": {}, "ivec4": {},
	"uvec2": {}, "uvec3": {}, "uvec4": {},
	"bvec2": {}, "bvec3": {}, "bvec4": {},
	"dvec2": {}, "dvec3": {}, "dvec4": {},

	"mat2": {}, "mat3": {}, "mat4": {},
	"mat2x2": {}, "mat2x3": {}, "mat2x4": {},
	"mat3x2": {}, "mat3x3": {}, "mat3x4": {},
	"mat4x2": {}, "mat4x3": {}, "mat4x4": {},
	"dmat2": {}, "dmat3": {}, "dmat4": {},
	"dmat2x2": {}, "dmat2x3": {}, "dmat2x4": {},
	"dmat3x2": {}, "dmat3x3": {}, "dmat3x4": {},
	"dmat4x2": {}, "dmat4x3": {}, "dmat4x4": {},

	"sampler1D": {}, "sampler2D": {}, "sampler3D": {},
	"samplerCube": {}, "sampler2DRect": {},
	"sampler1DShadow": {}, "sampler2DShadow": {}, "samplerCubeShadow": {}, "sampler2DRectShadow": {},
	"sampler1DArray": {}, "sampler2DArray": {},
	"sampler1DArrayShadow": {}, "sampler2DArrayShadow": {},
	"samplerCubeArray": {}, "samplerCubeArrayShadow": {},
	"samplerBuffer": {}, "sampler2DMS": {}, "sampler2DMSArray": {},

	"isampler1D": {}, "isampler2D": {}, "isampler3D": {},
	"isamplerCube": {}, "isampler2DRect": {},
	"isampler1DArray": {}, "isampler2DArray": {}, "isamplerCubeArray": {},
	"isamplerBuffer": {}, "isampler2DMS": {}, "isampler2DMSArray": {},

	"usampler1D": {}, "usampler2D": {}, "usampler3D": {},
	"usamplerCube": {}, "usampler2DRect": {},
	"usampler1DArray": {}, "usampler2DArray": {}, "usamplerCubeArray": {},
	"usamplerBuffer": {}, "usampler2DMS": {}, "usampler2DMSArray": {},

	"image1D": {}, "image2D": {}, "image3D": {},
	"imageCube": {}, "image2DRect": {},
	"image1DArray": {}, "image2DArray": {}, "imageCubeArray": {},
	"imageBuffer": {}, "image2DMS": {}, "image2DMSArray": {},
	"iimage1D": {}, "iimage2D": {}, "iimage3D": {},
	"iimageCube": {}, "iimage2DRect": {},
	"iimage1DArray": {}, "iimage2DArray": {}, "iimageCubeArray": {},
	"iimageBuffer": {}, "iimage2DMS": {}, "iimage2DMSArray": {},
	"uimage1D": {}, "uimage2D": {}, "uimage3D": {},
	"uimageCube": {}, "uimage2DRect": {},
	"uimage1DArray": {}, "uimage2DArray": {}, "uimageCubeArray": {},
	"uimageBuffer": {}, "uimage2DMS": {}, "uimage2DMSArray": {},

	"atomic_uint": {},
}

// glslQualifiers contains storage, layout, precision, interpolation, and
// parameter qualifiers.
var glslQualifiers = map[string]struct{}{
	"const": {}, "uniform": {}, "buffer": {}, "shared": {},
	"in": {}, "out": {}, "inout": {},
	"coherent": {}, "volatile": {}, "restrict": {}, "readonly": {}, "writeonly": {},
	"layout": {}, "centroid": {}, "flat": {}, "smooth": {}, "noperspective": {},
	"patch": {}, "sample": {},
	"invariant": {}, "precise": {},
	"precision": {}, "highp": {}, "mediump": {}, "lowp": {},
	"subroutine": {},
}

// glslKeywords contains control flow and declaration keywords.
var glslKeywords = map[string]struct{}{
	"if": {}, "else": {}, "switch": {}, "case": {}, "default": {},
	"for": {}, "while": {}, "do": {},
	"break": {}, "continue": {}, "return": {}, "discard": {},
	"struct": {},
	"true":   {}, "false": {},
}

// glslReserved contains words reserved for future use by the GLSL
// specification. Using one is an error in a shader, so they get their own
// category.
var glslReserved = map[string]struct{}{
	"common": {}, "partition": {}, "active": {},
	"asm": {}, "class": {}, "union": {}, "enum": {}, "typedef": {},
	"template": {}, "this": {}, "resource": {},
	"goto": {}, "inline": {}, "noinline": {}, "public": {}, "static": {},
	"extern": {}, "external": {}, "interface": {},
	"long": {}, "short": {}, "half": {}, "fixed": {}, "unsigned": {}, "superp": {},
	"input": {}, "output": {},
	"hvec2": {}, "hvec3": {}, "hvec4": {},
	"fvec2": {}, "fvec3": {}, "fvec4": {},
	"filter": {}, "sizeof": {}, "cast": {}, "namespace": {}, "using": {},
	"sampler3DRect": {},
}

// glslBuiltins contains built-in functions and variables. Functions and
// variables share one set: the classifier only needs membership.
var glslBuiltins = map[string]struct{}{
	// Angle and trigonometry
	"radians": {}, "degrees": {},
	"sin": {}, "cos": {}, "tan": {}, "asin": {}, "acos": {}, "atan": {},
	"sinh": {}, "cosh": {}, "tanh": {}, "asinh": {}, "acosh": {}, "atanh": {},

	// Exponential
	"pow": {}, "exp": {}, "log": {}, "exp2": {}, "log2": {},
	"sqrt": {}, "inversesqrt": {},

	// Common
	"abs": {}, "sign": {}, "floor": {}, "trunc": {}, "round": {}, "roundEven": {},
	"ceil": {}, "fract": {}, "mod": {}, "modf": {}, "min": {}, "max": {},
	"clamp": {}, "mix": {}, "step": {}, "smoothstep": {},
	"isnan": {}, "isinf": {},
	"floatBitsToInt": {}, "floatBitsToUint": {}, "intBitsToFloat": {}, "uintBitsToFloat": {},
	"fma": {}, "frexp": {}, "ldexp": {},

	// Packing
	"packUnorm2x16": {}, "packSnorm2x16": {}, "packUnorm4x8": {}, "packSnorm4x8": {},
	"unpackUnorm2x16": {}, "unpackSnorm2x16": {}, "unpackUnorm4x8": {}, "unpackSnorm4x8": {},
	"packHalf2x16": {}, "unpackHalf2x16": {}, "packDouble2x32": {}, "unpackDouble2x32": {},

	// Geometric
	"length": {}, "distance": {}, "dot": {}, "cross": {}, "normalize": {},
	"faceforward": {}, "reflect": {}, "refract": {},

	// Matrix
	"matrixCompMult": {}, "outerProduct": {}, "transpose": {},
	"determinant": {}, "inverse": {},

	// Vector relational
	"lessThan": {}, "lessThanEqual": {}, "greaterThan": {}, "greaterThanEqual": {},
	"equal": {}, "notEqual": {}, "any": {}, "all": {}, "not": {},

	// Integer
	"uaddCarry": {}, "usubBorrow": {}, "umulExtended": {}, "imulExtended": {},
	"bitfieldExtract": {}, "bitfieldInsert": {}, "bitfieldReverse": {},
	"bitCount": {}, "findLSB": {}, "findMSB": {},

	// Texture
	"texture": {}, "textureSize": {}, "textureQueryLod": {}, "textureQueryLevels": {},
	"textureSamples": {},
	"textureProj": {}, "textureLod": {}, "textureOffset": {}, "texelFetch": {},
	"texelFetchOffset": {}, "textureProjOffset": {}, "textureLodOffset": {},
	"textureProjLod": {}, "textureProjLodOffset": {}, "textureGrad": {},
	"textureGradOffset": {}, "textureProjGrad": {}, "textureProjGradOffset": {},
	"textureGather": {}, "textureGatherOffset": {}, "textureGatherOffsets": {},

	// Image
	"imageSize": {}, "imageSamples": {}, "imageLoad": {}, "imageStore": {},
	"imageAtomicAdd": {}, "imageAtomicMin": {}, "imageAtomicMax": {},
	"imageAtomicAnd": {}, "imageAtomicOr": {}, "imageAtomicXor": {},
	"imageAtomicExchange": {}, "imageAtomicCompSwap": {},

	// Atomic counter and memory
	"atomicCounterIncrement": {}, "atomicCounterDecrement": {}, "atomicCounter": {},
	"atomicAdd": {}, "atomicMin": {}, "atomicMax": {}, "atomicAnd": {},
	"atomicOr": {}, "atomicXor": {}, "atomicExchange": {}, "atomicCompSwap": {},

	// Fragment processing
	"dFdx": {}, "dFdy": {}, "dFdxFine": {}, "dFdyFine": {},
	"dFdxCoarse": {}, "dFdyCoarse": {},
	"fwidth": {}, "fwidthFine": {}, "fwidthCoarse": {},
	"interpolateAtCentroid": {}, "interpolateAtSample": {}, "interpolateAtOffset": {},

	// Geometry shading
	"EmitVertex": {}, "EndPrimitive": {},
	"EmitStreamVertex": {}, "EndStreamPrimitive": {},

	// Shader invocation control
	"barrier": {}, "memoryBarrier": {}, "memoryBarrierAtomicCounter": {},
	"memoryBarrierBuffer": {}, "memoryBarrierShared": {}, "memoryBarrierImage": {},
	"groupMemoryBarrier": {},

	// Noise (kept: still in the grammar even though implementations stub it)
	"noise1": {}, "noise2": {}, "noise3": {}, "noise4": {},

	// Built-in variables
	"gl_Position": {}, "gl_PointSize": {}, "gl_ClipDistance": {}, "gl_CullDistance": {},
	"gl_VertexID": {}, "gl_InstanceID": {},
	"gl_FragCoord": {}, "gl_FrontFacing": {}, "gl_PointCoord": {}, "gl_FragDepth": {},
	"gl_SampleID": {}, "gl_SamplePosition": {}, "gl_SampleMask": {}, "gl_SampleMaskIn": {},
	"gl_PrimitiveID": {}, "gl_PrimitiveIDIn": {}, "gl_InvocationID": {},
	"gl_Layer": {}, "gl_ViewportIndex": {},
	"gl_TessLevelOuter": {}, "gl_TessLevelInner": {}, "gl_TessCoord": {},
	"gl_PatchVerticesIn": {},
	"gl_NumWorkGroups": {}, "gl_WorkGroupSize": {}, "gl_WorkGroupID": {},
	"gl_LocalInvocationID": {}, "gl_GlobalInvocationID": {}, "gl_LocalInvocationIndex": {},
	"gl_HelperInvocation": {},
	"gl_MaxVertexAttribs": {}, "gl_MaxVertexUniformComponents": {},
	"gl_MaxFragmentUniformComponents": {}, "gl_MaxDrawBuffers": {},
}

// glslDeprecatedBuiltins contains builtin functions removed from the core
// profile, chiefly the pre-1.30 texture lookup family.
var glslDeprecatedBuiltins = map[string]struct{}{
	"texture1D": {}, "texture1DProj": {}, "texture1DLod": {}, "texture1DProjLod": {},
	"texture2D": {}, "texture2DProj": {}, "texture2DLod": {}, "texture2DProjLod": {},
	"texture3D": {}, "texture3DProj": {}, "texture3DLod": {}, "texture3DProjLod": {},
	"textureCube": {}, "textureCubeLod": {},
	"shadow1D": {}, "shadow1DProj": {}, "shadow1DLod": {}, "shadow1DProjLod": {},
	"shadow2D": {}, "shadow2DProj": {}, "shadow2DLod": {}, "shadow2DProjLod": {},
	"ftransform": {},
}

// glslDeprecatedQualifiers contains storage qualifiers removed in GLSL 1.30
// in favour of in/out.
var glslDeprecatedQualifiers = map[string]struct{}{
	"attribute": {}, "varying": {},
}

// glslDeprecatedVariables contains compatibility-profile built-in variables.
var glslDeprecatedVariables = map[string]struct{}{
	"gl_FragColor": {}, "gl_FragData": {}, "gl_MaxVarying": {},
	"gl_TexCoord": {}, "gl_FogFragCoord": {},
	"gl_Vertex": {}, "gl_Normal": {}, "gl_Color": {}, "gl_SecondaryColor": {},
	"gl_FogCoord": {},
	"gl_MultiTexCoord0": {}, "gl_MultiTexCoord1": {}, "gl_MultiTexCoord2": {},
	"gl_MultiTexCoord3": {}, "gl_MultiTexCoord4": {}, "gl_MultiTexCoord5": {},
	"gl_MultiTexCoord6": {}, "gl_MultiTexCoord7": {},
	"gl_FrontColor": {}, "gl_BackColor": {},
	"gl_FrontSecondaryColor": {}, "gl_BackSecondaryColor": {},
	"gl_ModelViewMatrix": {}, "gl_ProjectionMatrix": {},
	"gl_ModelViewProjectionMatrix": {}, "gl_NormalMatrix": {},
	"gl_TextureMatrix": {}, "gl_ClipVertex": {},
	"gl_LightSource": {}, "gl_FrontMaterial": {}, "gl_BackMaterial": {},
	"gl_Fog": {},
}

// glslDirectives contains the directive names valid after '#'.
var glslDirectives = map[string]struct{}{
	"define": {}, "undef": {},
	"if": {}, "ifdef": {}, "ifndef": {}, "else": {}, "elif": {}, "endif": {},
	"error": {}, "pragma": {}, "extension": {}, "version": {}, "line": {},
}

// glslPreprocessorBuiltins contains macro names predefined by the
// preprocessor, plus the defined operator usable in #if expressions.
var glslPreprocessorBuiltins = map[string]struct{}{
	"__LINE__": {}, "__FILE__": {}, "__VERSION__": {},
	"GL_ES":                    {},
	"GL_core_profile":          {},
	"GL_compatibility_profile": {},
	"defined":                  {},
}
