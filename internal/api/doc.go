// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

/*
Package api serves the catalog over HTTP using the chi router.

Endpoints:

	GET /                      welcome message
	GET /genero/{year}         five most frequent genres
	GET /juegos/{year}         release names
	GET /specs/{year}          five most frequent feature tags
	GET /earlyaccess/{year}    early access release count
	GET /sentiment/{year}      sentiment label counts
	GET /metascore/{year}      five best metascores
	GET /prediccion            price estimate (release_date, developer, genre)
	GET /api/v1/health/live    liveness check
	GET /api/v1/health/ready   readiness check
	GET /metrics               Prometheus exposition
	GET /swagger/*             OpenAPI document and Swagger UI

Successful queries return the result object as the whole body. Rejected
queries return {"error": "<message>"} with status 200 so clients branch on the
body rather than the status. Failures that are not the client's doing return
the same shape with status 500 and a generic message; the cause is logged.

Middleware stack, outermost first: request ID, real IP, access log, panic
recovery, CORS, Prometheus instrumentation, gzip. Query routes are additionally
rate limited per client IP and carry security headers.
*/
package api
