package defs

// Common file names used across the project.
const (
	// ProjectFile is the marker written to the root of every generated project.
	ProjectFile = ".vslice.yaml"

	// EnvFile holds environment variables loaded by the generated app.
	EnvFile = ".env"

	// ServiceSuffix is appended to an ingredient name to form its service module.
	ServiceSuffix = "_service"

	// PythonExt is the extension of every generated source file.
	PythonExt = ".py"
)

// Template sets embedded in the binary.
const (
	AppTemplates        = "app"
	IngredientTemplates = "ingredient"

	ModelTemplate   = "model.py.tmpl"
	RouteTemplate   = "route.py.tmpl"
	ServiceTemplate = "service.py.tmpl"
)
