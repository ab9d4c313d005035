// Package http implements the REST API of the remote vault service.
//
// Every account owns exactly one vault document, addressed as
// /api/vault/{accountID}. Tracing, access logging, compression,
// authentication and the integrity check of uploaded documents are handled
// here before requests reach the service layer.
package http
