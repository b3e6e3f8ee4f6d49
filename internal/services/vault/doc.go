// Package vault reads and writes credential records. Every secret field
// passes through the codec immediately before transmission and
// immediately after retrieval; the backend and the local cache only ever
// see sealed blobs.
package vault
