package backend

import (
	"errors"

	"github.com/gopaint/easel"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU compositor (always available).
	BackendSoftware = "software"

	// BackendGPU is the name under which hosts register GPU-accelerated
	// backends. None ships with the module; hosts bind their own through
	// DeviceHandle.
	BackendGPU = "gpu"
)

// Backend presents canvas textures on screen. It abstracts the graphics
// API behind two steps: initialize against a host device, then mint
// renderers for the paint surface to draw through.
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type Backend interface {
	// Name returns the backend identifier (e.g., "software", "gpu").
	Name() string

	// Init binds the backend to a host GPU device. Backends that render
	// on the CPU accept a nil handle.
	Init(dev DeviceHandle) error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()

	// NewRenderer creates a renderer with the given output size in
	// pixels. Returns ErrNotInitialized before Init.
	NewRenderer(width, height int) (easel.Renderer, error)
}
