// Package backend provides a pluggable presentation backend abstraction.
//
// The backend package lets the paint engine present its canvas through
// multiple rendering implementations. A CPU compositor ships with the
// module and is always available; GPU-accelerated backends bind to a host
// device through DeviceHandle and register themselves at runtime.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// The software backend is automatically registered on import:
//
//	import _ "github.com/gopaint/easel/backend"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	// Get the default (best available) backend
//	b := backend.Default()
//
//	// Or request a specific backend
//	b := backend.Get("software")
//
// # Usage with Surface
//
// The backend mints renderers that the paint surface draws through:
//
//	b, err := backend.InitDefault(nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	r, err := b.NewRenderer(800, 600)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	s := easel.NewSurface(512, 512, easel.WithViewport(800, 600))
//	if err := s.Draw(r); err != nil {
//		log.Fatal(err)
//	}
//
// # Available Backends
//
// - "software": CPU compositor (always available)
// - "gpu": host-registered GPU backends bound through DeviceHandle
package backend
