package defs

import "io/fs"

// Directory layout of a generated project.
const (
	// FeaturesDir holds every slice, relative to the project root.
	FeaturesDir = "app/features"

	RoutesDir = "routes"
	ModelsDir = "models"
	DomainDir = "domain"
)

// SliceDirs lists the fixed subdirectories of every slice, in creation order.
var SliceDirs = []string{RoutesDir, ModelsDir, DomainDir}

// Permissions for created directories and files.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)
