// Package api implements the domain.Client interface over the vault
// backend's JSON REST API.
//
// The backend is a plain CRUD collaborator: it authenticates users,
// hands out the per-user encryption salt, and stores credential records
// whose secret field is an opaque ciphertext+nonce blob it never
// decrypts. All requests are JSON over HTTP, accept a context, and carry
// a bearer token where the route requires one. Non-2xx statuses are
// returned as errors with the method, path, and status text.
package api
