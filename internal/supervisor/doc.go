// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

/*
Package supervisor runs the long-lived services of the API process under a
suture v4 supervisor tree.

Tree layout:

	steamstats (root)
	├── maintenance-layer   cache reporter
	└── api-layer           HTTP server

A service that returns an error is restarted with suture's backoff. Failures
in the maintenance layer never stop the API layer from serving.

Supervisor events are logged through sutureslog, bridged to zerolog by
logging.NewSlogLogger:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err = tree.Serve(ctx) // blocks until ctx is canceled
*/
package supervisor
