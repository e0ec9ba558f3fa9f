package pkg

import (
	"github.com/Ninja-cloud-sorce/back-end/internal/api"
)

// App is a thin wrapper to mirror the reference project layout.
// It starts the HTTP server.
func App() {
	api.StartServer()
}
