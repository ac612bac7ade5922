package services

// SeedTerm is a keyword/description pair inserted by SeedService.
type SeedTerm struct {
	Keyword     string
	Description string
}

// DefaultTerms is the WebGL/WebGPU glossary seeded into an empty store.
var DefaultTerms = []SeedTerm{
	{
		Keyword:     "WebGL",
		Description: "Web Graphics Library: a JavaScript API for rendering 2D and 3D graphics in the browser without plugins.",
	},
	{
		Keyword:     "WebGPU",
		Description: "A modern low-level API for graphics and computation in web browsers, the successor of WebGL.",
	},
	{
		Keyword:     "Vertex Shader",
		Description: "A shader that processes the vertices of 3D models, transforming vertex coordinates from local space into camera space.",
	},
	{
		Keyword:     "Fragment Shader",
		Description: "A shader that determines the color of each pixel of a rendered object. Also known as a Pixel Shader.",
	},
	{
		Keyword:     "GPU",
		Description: "Graphics Processing Unit: a specialized processor for graphics and parallel computation.",
	},
	{
		Keyword:     "Shader",
		Description: "A program executed on the GPU to process vertices or fragments in the graphics pipeline.",
	},
	{
		Keyword:     "Buffer",
		Description: "A region of GPU memory that stores data such as vertices, indices, textures or uniform data.",
	},
	{
		Keyword:     "Texture",
		Description: "A two- or three-dimensional image mapped onto 3D models to create detailed surfaces.",
	},
	{
		Keyword:     "Render Pipeline",
		Description: "The graphics pipeline that turns vertex data into the final image on screen.",
	},
	{
		Keyword:     "Uniform",
		Description: "A global shader variable that stays constant for all vertices or fragments within a single draw call.",
	},
	{
		Keyword:     "VBO",
		Description: "Vertex Buffer Object: an OpenGL/WebGL buffer object that stores vertex data in GPU memory.",
	},
	{
		Keyword:     "FBO",
		Description: "Framebuffer Object: renders into a texture instead of the screen, used for post-processing and effects.",
	},
	{
		Keyword:     "GLSL",
		Description: "OpenGL Shading Language: the shader programming language of OpenGL and WebGL.",
	},
	{
		Keyword:     "WGSL",
		Description: "WebGPU Shading Language: the shader programming language of the WebGPU API.",
	},
	{
		Keyword:     "Compute Shader",
		Description: "A shader for general-purpose computation on the GPU that is not directly tied to rendering.",
	},
}
