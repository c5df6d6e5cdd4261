package sickl

// CompileGLSLSource runs src.Parse inside a fresh capture and lowers the
// result straight to GLSL, the single-call convenience entry point for the
// common case: parse, then lower in one step, with a *Config threaded
// through.
func CompileGLSLSource(src Source, cfg *Config) (string, error) {
	root := Parse(src)
	return CompileGLSL(root, cfg)
}

// CompileOpenCLSource is CompileGLSLSource's OpenCL counterpart.
func CompileOpenCLSource(src Source, cfg *Config) (string, error) {
	root := Parse(src)
	return CompileOpenCL(root, cfg)
}
